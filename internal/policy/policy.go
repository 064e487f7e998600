package policy

import (
	"fmt"
	"math"
)

// DefaultVersion tags the built-in weight table. Any change to the
// weights below must come with a new version string, since the version
// is printed in every decision trace.
const DefaultVersion = "v1"

// Weights are the four scoring weights. They must sum to 1.0.
type Weights struct {
	Delta      float64 `json:"delta"`
	Confidence float64 `json:"confidence"`
	Knowledge  float64 `json:"knowledge"`
	StartBias  float64 `json:"start_bias"`
}

// Adjustment is a per-style score correction applied when a calibration
// mismatch is detected. Corrections must net to zero so a mismatch
// redistributes score rather than inflating it.
type Adjustment struct {
	Visual float64 `json:"visual"`
	Text   float64 `json:"text"`
	Quiz   float64 `json:"quiz"`
}

// Policy is the immutable weight/threshold table behind the scorer.
// It is built once per process and passed explicitly into every call,
// so the engine stays a pure function with no ambient state.
type Policy struct {
	Version string  `json:"version"`
	Weights Weights `json:"weights"`

	// DeltaSaturation is the gain beyond which extra delta adds no
	// further score weight. It bounds the normalization, not the raw
	// value shown to the user.
	DeltaSaturation float64 `json:"delta_saturation"`

	Overconfident  Adjustment `json:"overconfident"`
	Underconfident Adjustment `json:"underconfident"`
}

// Default returns the built-in policy table.
func Default() Policy {
	return Policy{
		Version: DefaultVersion,
		Weights: Weights{
			Delta:      0.45,
			Confidence: 0.35,
			Knowledge:  0.15,
			StartBias:  0.05,
		},
		DeltaSaturation: 60,
		Overconfident:   Adjustment{Visual: 0.03, Text: 0.05, Quiz: -0.08},
		Underconfident:  Adjustment{Visual: -0.03, Text: -0.04, Quiz: 0.07},
	}
}

const sumTolerance = 1e-9

// Validate checks the structural invariants of a policy table.
func (p Policy) Validate() error {
	if p.Version == "" {
		return fmt.Errorf("policy version must not be empty")
	}
	sum := p.Weights.Delta + p.Weights.Confidence + p.Weights.Knowledge + p.Weights.StartBias
	if math.Abs(sum-1.0) > sumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	if p.DeltaSaturation <= 0 {
		return fmt.Errorf("delta saturation must be positive, got %v", p.DeltaSaturation)
	}
	if err := p.Overconfident.validate("overconfident"); err != nil {
		return err
	}
	return p.Underconfident.validate("underconfident")
}

func (a Adjustment) validate(name string) error {
	if net := a.Visual + a.Text + a.Quiz; math.Abs(net) > sumTolerance {
		return fmt.Errorf("%s adjustment must net to zero, got %v", name, net)
	}
	return nil
}
