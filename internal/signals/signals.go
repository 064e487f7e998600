package signals

import "strings"

// KnowledgeLabel is the coarse tier derived from the learner's own
// description of their background.
type KnowledgeLabel string

const (
	KnowledgeUnknown  KnowledgeLabel = "unknown"
	KnowledgeBeginner KnowledgeLabel = "beginner"
	KnowledgeAdvanced KnowledgeLabel = "advanced"
	KnowledgeMixed    KnowledgeLabel = "mixed"
)

// Profile holds the normalized signals extracted from the learner's
// prior-knowledge text. Recomputed on every call, never stored.
type Profile struct {
	// Text is the trimmed input with its original casing, kept for display.
	Text string

	IsEmpty          bool
	MentionsAdvanced bool
	MentionsBeginner bool
	MentionsExamples bool
	MentionsVisual   bool

	Knowledge KnowledgeLabel
}

// keywordRule binds a named keyword set to the profile flag it raises.
// Matching is case-insensitive substring matching, so the table is easy
// to extend without touching the derivation logic.
type keywordRule struct {
	name     string
	keywords []string
	apply    func(*Profile)
}

func keywordRules() []keywordRule {
	return []keywordRule{
		{
			name:     "advanced",
			keywords: []string{"advanced", "advance", "expert", "comfortable", "strong"},
			apply:    func(p *Profile) { p.MentionsAdvanced = true },
		},
		{
			name:     "beginner",
			keywords: []string{"beginner", "new", "never", "not much", "basic", "little"},
			apply:    func(p *Profile) { p.MentionsBeginner = true },
		},
		{
			name:     "examples",
			keywords: []string{"example", "practice", "exercise", "problem", "quiz"},
			apply:    func(p *Profile) { p.MentionsExamples = true },
		},
		{
			name:     "visual",
			keywords: []string{"diagram", "visual", "chart", "graph", "picture"},
			apply:    func(p *Profile) { p.MentionsVisual = true },
		},
	}
}

// Normalize cleans the raw prior-knowledge text into a Profile.
// It never fails: empty or garbage input yields the unknown tier with
// every flag false.
func Normalize(raw string) Profile {
	trimmed := strings.TrimSpace(raw)
	lowered := strings.ToLower(trimmed)

	p := Profile{
		Text:    trimmed,
		IsEmpty: trimmed == "",
	}

	for _, rule := range keywordRules() {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				rule.apply(&p)
				break
			}
		}
	}

	p.Knowledge = deriveKnowledge(p)
	return p
}

// deriveKnowledge picks the tier: unknown only for empty text, advanced
// or beginner only when exactly one side's keywords appear, mixed for
// everything else including the both-present case.
func deriveKnowledge(p Profile) KnowledgeLabel {
	switch {
	case p.IsEmpty:
		return KnowledgeUnknown
	case p.MentionsAdvanced && !p.MentionsBeginner:
		return KnowledgeAdvanced
	case p.MentionsBeginner && !p.MentionsAdvanced:
		return KnowledgeBeginner
	default:
		return KnowledgeMixed
	}
}
