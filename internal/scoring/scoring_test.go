package scoring

import (
	"math"
	"testing"

	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
)

const epsilon = 1e-12

func neutralState() calibration.State {
	return calibration.Detect(3, 30)
}

func TestScore_TieBreakFavorsText(t *testing.T) {
	// A zero-weight policy forces every score to exactly zero, so the
	// winner is decided purely by the fixed iteration order.
	pol := policy.Default()
	pol.Weights = policy.Weights{}

	res := Score(Input{Confidence: 3, Delta: 30, StartingStyle: styles.StyleQuiz},
		signals.KnowledgeMixed, neutralState(), pol)

	for s, v := range res.Scores {
		if v != 0 {
			t.Fatalf("score[%s] = %v, want 0", s, v)
		}
	}
	if res.Winner != styles.StyleText {
		t.Errorf("Winner = %q, want text on full tie", res.Winner)
	}
}

func TestScore_DeltaMonotonicity(t *testing.T) {
	pol := policy.Default()
	cal := neutralState()

	prevQuiz := math.Inf(-1)
	prevVisual := math.Inf(1)
	for delta := 0.0; delta < 60; delta += 5 {
		res := Score(Input{Confidence: 3, Delta: delta, StartingStyle: styles.StyleText},
			signals.KnowledgeMixed, cal, pol)

		if res.Scores[styles.StyleQuiz] <= prevQuiz {
			t.Fatalf("quiz score not strictly increasing at delta=%v", delta)
		}
		if res.Scores[styles.StyleVisual] >= prevVisual {
			t.Fatalf("visual score not strictly decreasing at delta=%v", delta)
		}
		prevQuiz = res.Scores[styles.StyleQuiz]
		prevVisual = res.Scores[styles.StyleVisual]
	}
}

func TestScore_KnowledgeRouting(t *testing.T) {
	tests := []struct {
		knowledge signals.KnowledgeLabel
		target    styles.Style
	}{
		{signals.KnowledgeAdvanced, styles.StyleQuiz},
		{signals.KnowledgeBeginner, styles.StyleVisual},
		{signals.KnowledgeUnknown, styles.StyleVisual},
		{signals.KnowledgeMixed, styles.StyleText},
	}

	pol := policy.Default()
	in := Input{Confidence: 3, Delta: 30, StartingStyle: styles.StyleText}
	cal := neutralState()

	for _, tt := range tests {
		with := Score(in, tt.knowledge, cal, pol)

		// Zeroing the knowledge weight isolates its contribution.
		bare := pol
		bare.Weights.Knowledge = 0
		without := Score(in, tt.knowledge, cal, bare)

		diff := with.Scores[tt.target] - without.Scores[tt.target]
		if math.Abs(diff-pol.Weights.Knowledge) > epsilon {
			t.Errorf("knowledge %q: target %q gained %v, want %v",
				tt.knowledge, tt.target, diff, pol.Weights.Knowledge)
		}
	}
}

func TestScore_StartingStyleBias(t *testing.T) {
	pol := policy.Default()
	cal := neutralState()

	base := Score(Input{Confidence: 3, Delta: 30, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, cal, pol)
	biased := Score(Input{Confidence: 3, Delta: 30, StartingStyle: styles.StyleVisual},
		signals.KnowledgeMixed, cal, pol)

	diff := biased.Scores[styles.StyleVisual] - base.Scores[styles.StyleVisual]
	if math.Abs(diff-pol.Weights.StartBias) > epsilon {
		t.Errorf("visual gained %v from the starting bias, want %v", diff, pol.Weights.StartBias)
	}
}

func TestScore_CalibrationAdjustments(t *testing.T) {
	pol := policy.Default()
	in := Input{Confidence: 5, Delta: 5, StartingStyle: styles.StyleText}

	flagged := Score(in, signals.KnowledgeMixed, calibration.Detect(5, 5), pol)
	unflagged := Score(in, signals.KnowledgeMixed, calibration.State{}, pol)

	if diff := flagged.Scores[styles.StyleQuiz] - unflagged.Scores[styles.StyleQuiz]; math.Abs(diff+0.08) > epsilon {
		t.Errorf("overconfident quiz adjustment = %v, want -0.08", diff)
	}
	if diff := flagged.Scores[styles.StyleText] - unflagged.Scores[styles.StyleText]; math.Abs(diff-0.05) > epsilon {
		t.Errorf("overconfident text adjustment = %v, want +0.05", diff)
	}
	if diff := flagged.Scores[styles.StyleVisual] - unflagged.Scores[styles.StyleVisual]; math.Abs(diff-0.03) > epsilon {
		t.Errorf("overconfident visual adjustment = %v, want +0.03", diff)
	}

	under := Score(Input{Confidence: 1, Delta: 45, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, calibration.Detect(1, 45), pol)
	underBase := Score(Input{Confidence: 1, Delta: 45, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, calibration.State{}, pol)

	if diff := under.Scores[styles.StyleQuiz] - underBase.Scores[styles.StyleQuiz]; math.Abs(diff-0.07) > epsilon {
		t.Errorf("underconfident quiz adjustment = %v, want +0.07", diff)
	}
}

func TestScore_TopSignals(t *testing.T) {
	pol := policy.Default()

	// delta=50 is far from mid-range, so delta dominates; beginner
	// knowledge carries its full weight and outranks mid confidence.
	res := Score(Input{Confidence: 3, Delta: 50, StartingStyle: styles.StyleVisual},
		signals.KnowledgeBeginner, calibration.Detect(3, 50), pol)
	if res.TopSignals != [2]string{SignalDelta, SignalKnowledge} {
		t.Errorf("TopSignals = %v, want [delta knowledge]", res.TopSignals)
	}

	// Everything mid-range: knowledge (0.15) beats delta (0.1125).
	mid := Score(Input{Confidence: 3, Delta: 30, StartingStyle: styles.StyleVisual},
		signals.KnowledgeBeginner, neutralState(), pol)
	if mid.TopSignals != [2]string{SignalKnowledge, SignalDelta} {
		t.Errorf("TopSignals = %v, want [knowledge delta]", mid.TopSignals)
	}
}

func TestScore_ClampsInputs(t *testing.T) {
	pol := policy.Default()
	cal := neutralState()

	low := Score(Input{Confidence: -3, Delta: -10, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, cal, pol)
	clamped := Score(Input{Confidence: 1, Delta: 0, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, cal, pol)

	for _, s := range styles.All() {
		if low.Scores[s] != clamped.Scores[s] {
			t.Errorf("score[%s]: out-of-range input %v != clamped input %v", s, low.Scores[s], clamped.Scores[s])
		}
	}

	high := Score(Input{Confidence: 9, Delta: 500, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, cal, pol)
	sat := Score(Input{Confidence: 5, Delta: 60, StartingStyle: styles.StyleText},
		signals.KnowledgeMixed, cal, pol)

	for _, s := range styles.All() {
		if high.Scores[s] != sat.Scores[s] {
			t.Errorf("score[%s]: saturated input %v != bound input %v", s, high.Scores[s], sat.Scores[s])
		}
	}
}
