package scoring

import (
	"math"
	"sort"

	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
)

// Signal names as they appear in the decision trace.
const (
	SignalDelta      = "delta"
	SignalConfidence = "confidence"
	SignalKnowledge  = "knowledge"
	SignalStart      = "start"
)

// Input carries the numeric signals and the learner's starting format.
type Input struct {
	Confidence    int
	Delta         float64
	StartingStyle styles.Style
}

// Result is the scored outcome: one additive score per style, the
// winning style, and the two most influential signal names.
type Result struct {
	Scores     map[styles.Style]float64
	Winner     styles.Style
	TopSignals [2]string
}

// Score converts normalized signals into per-style scores and picks the
// winner. All numeric inputs are clamped before use, so it never fails.
func Score(in Input, knowledge signals.KnowledgeLabel, cal calibration.State, pol policy.Policy) Result {
	confNorm := confidenceNorm(in.Confidence)
	deltaNorm := deltaNorm(in.Delta, pol.DeltaSaturation)
	w := pol.Weights

	scores := map[styles.Style]float64{
		styles.StyleVisual: 0,
		styles.StyleText:   0,
		styles.StyleQuiz:   0,
	}

	// Low gain and low confidence call for guidance; high for practice;
	// the text style peaks at mid-range (a triangular "stay steady"
	// preference).
	scores[styles.StyleVisual] += w.Delta*(1-deltaNorm) + w.Confidence*(1-confNorm)
	scores[styles.StyleText] += w.Delta*(1-2*math.Abs(deltaNorm-0.5)) + w.Confidence*(1-2*math.Abs(confNorm-0.5))
	scores[styles.StyleQuiz] += w.Delta*deltaNorm + w.Confidence*confNorm

	scores[knowledgeTarget(knowledge)] += w.Knowledge

	// Bias toward the current format to reduce flip-flopping on
	// borderline signals.
	scores[in.StartingStyle] += w.StartBias

	// At most one of these applies: the mismatch flags require
	// different confidence bands.
	if cal.Overconfident {
		applyAdjustment(scores, pol.Overconfident)
	}
	if cal.Underconfident {
		applyAdjustment(scores, pol.Underconfident)
	}

	return Result{
		Scores:     scores,
		Winner:     pickWinner(scores),
		TopSignals: topSignals(confNorm, deltaNorm, knowledge, w),
	}
}

// knowledgeTarget maps the knowledge tier to the style that receives
// the full prior-knowledge weight.
func knowledgeTarget(knowledge signals.KnowledgeLabel) styles.Style {
	switch knowledge {
	case signals.KnowledgeAdvanced:
		return styles.StyleQuiz
	case signals.KnowledgeMixed:
		return styles.StyleText
	default: // beginner or unknown
		return styles.StyleVisual
	}
}

func applyAdjustment(scores map[styles.Style]float64, adj policy.Adjustment) {
	scores[styles.StyleVisual] += adj.Visual
	scores[styles.StyleText] += adj.Text
	scores[styles.StyleQuiz] += adj.Quiz
}

// pickWinner iterates styles in the fixed order [text, visual, quiz]
// and replaces the best only on a strictly greater score, which makes
// ties resolve deterministically in that order.
func pickWinner(scores map[styles.Style]float64) styles.Style {
	order := styles.All()
	best := order[0]
	for _, s := range order[1:] {
		if scores[s] > scores[best] {
			best = s
		}
	}
	return best
}

// topSignals ranks the four weighted contributions by an influence
// magnitude. The magnitude is a presentation heuristic for the audit
// trace, not a probability.
func topSignals(confNorm, deltaNorm float64, knowledge signals.KnowledgeLabel, w policy.Weights) [2]string {
	knowledgeFactor := 1.0
	if knowledge == signals.KnowledgeMixed {
		knowledgeFactor = 0.6
	}

	type influence struct {
		name      string
		magnitude float64
	}
	ranked := []influence{
		{SignalDelta, w.Delta * (math.Abs(deltaNorm-0.5) + 0.25)},
		{SignalConfidence, w.Confidence * (math.Abs(confNorm-0.5) + 0.25)},
		{SignalKnowledge, w.Knowledge * knowledgeFactor},
		{SignalStart, w.StartBias},
	}

	// Stable sort keeps the declaration order on equal magnitudes.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].magnitude > ranked[j].magnitude
	})

	return [2]string{ranked[0].name, ranked[1].name}
}

// confidenceNorm maps the clamped 1-5 rating onto [0,1].
func confidenceNorm(confidence int) float64 {
	return float64(calibration.ClampConfidence(confidence)-1) / 4
}

// deltaNorm maps delta onto [0,1], saturating at the policy bound.
func deltaNorm(delta, saturation float64) float64 {
	d := calibration.ClampDelta(delta) / saturation
	if d > 1 {
		return 1
	}
	return d
}
