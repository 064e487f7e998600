package styles

// Style is one of the three lesson delivery formats the advisor
// chooses between.
type Style string

const (
	StyleVisual Style = "visual"
	StyleText   Style = "text"
	StyleQuiz   Style = "quiz"
)

// All returns every style in the fixed tie-break order: text wins ties,
// then visual, then quiz.
func All() []Style {
	return []Style{StyleText, StyleVisual, StyleQuiz}
}

// Parse maps a raw string to a Style. Unrecognized input falls back to
// StyleText, the most neutral format.
func Parse(raw string) Style {
	switch raw {
	case string(StyleVisual):
		return StyleVisual
	case string(StyleQuiz):
		return StyleQuiz
	default:
		return StyleText
	}
}

// DisplayName returns a human-readable label for the style.
func (s Style) DisplayName() string {
	switch s {
	case StyleVisual:
		return "Visual"
	case StyleText:
		return "Text"
	case StyleQuiz:
		return "Quiz"
	default:
		return string(s)
	}
}
