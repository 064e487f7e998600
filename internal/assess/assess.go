// Package assess holds the pre/post score heuristic that sits upstream
// of the advisor engine. It is deliberately separate: the engine never
// assumes where a delta came from, and this component can be replaced
// per deployment without touching the scoring policy.
package assess

import (
	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/signals"
)

const (
	confidencePoints = 6
	preScoreCap      = 45

	// DemoPostScore is the fixed post-lesson score used when no real
	// assessment ran.
	DemoPostScore = 70
)

// knowledgeBonus awards pre-score points for self-described background.
func knowledgeBonus(knowledge signals.KnowledgeLabel) int {
	switch knowledge {
	case signals.KnowledgeAdvanced:
		return 12
	case signals.KnowledgeMixed:
		return 8
	case signals.KnowledgeBeginner:
		return 4
	default:
		return 0
	}
}

// PreScore estimates a bounded starting score from the knowledge tier
// and the 1-5 confidence rating.
func PreScore(knowledge signals.KnowledgeLabel, confidence int) int {
	score := knowledgeBonus(knowledge) + calibration.ClampConfidence(confidence)*confidencePoints
	if score > preScoreCap {
		return preScoreCap
	}
	return score
}

// SuggestedDelta is the demo learning gain: fixed post score minus the
// estimated pre score, never negative.
func SuggestedDelta(knowledge signals.KnowledgeLabel, confidence int) int {
	d := DemoPostScore - PreScore(knowledge, confidence)
	if d < 0 {
		return 0
	}
	return d
}
