package advisor

import (
	"fmt"

	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
)

// buildReasons emits the explanation clauses in a fixed source order.
// Each clause either fires or not; there is no search. The resulting
// list is 3-6 entries long.
func buildReasons(in ExplainInput, profile signals.Profile, cal calibration.State, winner styles.Style) []string {
	var reasons []string

	// 1. Confidence guidance/practice statement, always.
	switch cal.Confidence {
	case calibration.ConfidenceLow:
		reasons = append(reasons, "Your confidence is low, so the next lesson leans on worked guidance before asking you to perform.")
	case calibration.ConfidenceMedium:
		reasons = append(reasons, "Your confidence sits in the middle band, so the next lesson keeps a balanced mix of explanation and practice.")
	default:
		reasons = append(reasons, "Your confidence is high, so the next lesson gives you more room to practice independently.")
	}

	// 2. Exactly one knowledge statement. The mixed branch is the
	// catch-all: it also covers text that matched both keyword sets or
	// neither.
	switch profile.Knowledge {
	case signals.KnowledgeUnknown:
		reasons = append(reasons, "Your background answer was brief, so the plan assumes no prior exposure and starts gently.")
	case signals.KnowledgeAdvanced:
		reasons = append(reasons, "Your background reads as advanced, which favors tighter explanations and harder practice.")
	case signals.KnowledgeBeginner:
		reasons = append(reasons, "Your background reads as beginner-level, which favors more scaffolding and visual anchors.")
	default:
		reasons = append(reasons, "Your background mixes strong and shaky areas, so a structured written walkthrough keeps both covered.")
	}

	// 3. Delta band statement, always.
	delta := formatDelta(in.Delta)
	switch cal.Delta {
	case calibration.DeltaSmall:
		reasons = append(reasons, fmt.Sprintf("Your measured gain of +%s is small, so the plan slows down and reinforces fundamentals.", delta))
	case calibration.DeltaModerate:
		reasons = append(reasons, fmt.Sprintf("Your measured gain of +%s is moderate, which suggests the current pace is working.", delta))
	default:
		reasons = append(reasons, fmt.Sprintf("Your measured gain of +%s is large, which signals momentum worth converting into practice.", delta))
	}

	// 4-5. Calibration statements, mutually exclusive.
	if cal.Overconfident {
		reasons = append(reasons, "Heads up: your confidence is high but the measured gain is small, so the plan pulls back from unchecked practice toward explanation.")
	}
	if cal.Underconfident {
		reasons = append(reasons, "Good news: your confidence is low but the measured gain is large, so the plan nudges you into practice earlier than you might pick yourself.")
	}

	// 6. Visual affinity, only when it reinforced the winning pick.
	if winner == styles.StyleVisual && profile.MentionsVisual {
		reasons = append(reasons, "You mentioned visual material in your background, which reinforces the visual-first pick.")
	}

	// 7. Practice readiness, only for a quiz pick with supporting signal.
	if winner == styles.StyleQuiz && (profile.MentionsExamples || cal.Confidence == calibration.ConfidenceHigh) {
		reasons = append(reasons, "You look ready for practice, so quiz-first lessons should stick.")
	}

	return reasons
}
