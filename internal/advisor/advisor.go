// Package advisor is the decision engine behind TutorLens. Given a
// learner's self-reported check-in it picks the next lesson format and
// produces an auditable explanation of the choice. Every output is a
// pure function of the input and the policy table: same input, same
// bytes, on every platform.
package advisor

import (
	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/scoring"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
)

// ExplainInput is the check-in record supplied by the UI layer. It is
// not pre-validated: the engine clamps confidence to [1,5] and treats
// negative deltas as zero.
type ExplainInput struct {
	Topic          string       `json:"topic"`
	PriorKnowledge string       `json:"prior_knowledge"`
	Confidence     int          `json:"confidence"`
	Delta          float64      `json:"delta"`
	StartingStyle  styles.Style `json:"starting_style"`
}

// Advice is the full output record rendered by the UI layer.
type Advice struct {
	// Decision is the human-readable title of the chosen adaptation.
	Decision string `json:"decision"`

	// NextStyle is the winning lesson format.
	NextStyle styles.Style `json:"next_style"`

	// Reasons justify the decision, in a fixed clause order.
	Reasons []string `json:"reasons"`

	// Trace is the single-line audit string. Its field order and
	// separators are a parsed contract; see BuildTrace.
	Trace string `json:"decision_trace"`

	// TutorInsight is the longer narrative, segments joined by newlines.
	TutorInsight string `json:"tutor_insight"`

	// Scores carries the per-style totals for display. Only the
	// relative order matters; calibration penalties may push a score
	// slightly below zero.
	Scores map[styles.Style]float64 `json:"scores"`
}

// Advise runs the full chain: normalize signals, detect calibration
// mismatch, score the styles, compose decision and narrative. It never
// fails; malformed numeric input is clamped and blank text degrades to
// safe defaults.
func Advise(in ExplainInput, pol policy.Policy) Advice {
	profile := signals.Normalize(in.PriorKnowledge)
	cal := calibration.Detect(in.Confidence, in.Delta)
	scored := scoring.Score(scoring.Input{
		Confidence:    in.Confidence,
		Delta:         in.Delta,
		StartingStyle: in.StartingStyle,
	}, profile.Knowledge, cal, pol)

	winner := scored.Winner

	return Advice{
		Decision:     DecisionTitle(winner),
		NextStyle:    winner,
		Reasons:      buildReasons(in, profile, cal, winner),
		Trace:        BuildTrace(in, profile, cal, scored, pol),
		TutorInsight: buildInsight(in, profile, cal, winner),
		Scores:       scored.Scores,
	}
}
