package signals

import "testing"

func TestNormalize_KnowledgeLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want KnowledgeLabel
	}{
		{"", KnowledgeUnknown},
		{"   \t\n", KnowledgeUnknown},
		{"I'm a total beginner, never done this", KnowledgeBeginner},
		{"Basic", KnowledgeBeginner},
		{"pretty comfortable with the material", KnowledgeAdvanced},
		{"EXPERT level, honestly", KnowledgeAdvanced},
		{"I'm pretty advanced but still new to this part", KnowledgeMixed},
		{"I like cats", KnowledgeMixed},
	}

	for _, tt := range tests {
		got := Normalize(tt.raw)
		if got.Knowledge != tt.want {
			t.Errorf("Normalize(%q).Knowledge = %q, want %q", tt.raw, got.Knowledge, tt.want)
		}
	}
}

func TestNormalize_Flags(t *testing.T) {
	p := Normalize("I want diagrams and practice problems, I'm strong on basics")

	if !p.MentionsVisual {
		t.Error("expected MentionsVisual")
	}
	if !p.MentionsExamples {
		t.Error("expected MentionsExamples")
	}
	if !p.MentionsAdvanced {
		t.Error("expected MentionsAdvanced (contains \"strong\")")
	}
	if !p.MentionsBeginner {
		t.Error("expected MentionsBeginner (contains \"basic\")")
	}
	if p.Knowledge != KnowledgeMixed {
		t.Errorf("Knowledge = %q, want mixed when both sides match", p.Knowledge)
	}
}

func TestNormalize_PreservesOriginalCase(t *testing.T) {
	p := Normalize("  Never touched Algebra  ")
	if p.Text != "Never touched Algebra" {
		t.Errorf("Text = %q, want trimmed original-case string", p.Text)
	}
	if !p.MentionsBeginner {
		t.Error("keyword matching should be case-insensitive")
	}
}

func TestNormalize_EmptyYieldsAllFalse(t *testing.T) {
	p := Normalize("")
	if !p.IsEmpty {
		t.Error("expected IsEmpty")
	}
	if p.MentionsAdvanced || p.MentionsBeginner || p.MentionsExamples || p.MentionsVisual {
		t.Errorf("expected all flags false, got %+v", p)
	}
}
