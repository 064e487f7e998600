package calibration

// ConfidenceBand buckets the 1-5 self-reported confidence rating.
type ConfidenceBand string

const (
	ConfidenceLow    ConfidenceBand = "low"    // <= 2
	ConfidenceMedium ConfidenceBand = "medium" // == 3
	ConfidenceHigh   ConfidenceBand = "high"   // >= 4
)

// DeltaBand buckets the measured learning gain.
type DeltaBand string

const (
	DeltaSmall    DeltaBand = "small"    // < 20
	DeltaModerate DeltaBand = "moderate" // < 40
	DeltaLarge    DeltaBand = "large"    // >= 40
)

const (
	deltaSmallMax    = 20.0
	deltaModerateMax = 40.0
)

// State compares self-reported confidence against the observed gain.
// Overconfident and Underconfident are mutually exclusive by
// construction: they require different confidence bands.
type State struct {
	Confidence     ConfidenceBand
	Delta          DeltaBand
	Overconfident  bool
	Underconfident bool
}

// Detect derives the calibration state. Out-of-range inputs are clamped
// before banding; there are no failure modes.
func Detect(confidence int, delta float64) State {
	s := State{
		Confidence: BandConfidence(confidence),
		Delta:      BandDelta(delta),
	}
	s.Overconfident = s.Confidence == ConfidenceHigh && s.Delta == DeltaSmall
	s.Underconfident = s.Confidence == ConfidenceLow && s.Delta == DeltaLarge
	return s
}

// BandConfidence clamps confidence to [1,5] and returns its band.
func BandConfidence(confidence int) ConfidenceBand {
	c := ClampConfidence(confidence)
	switch {
	case c <= 2:
		return ConfidenceLow
	case c == 3:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}

// BandDelta treats negative deltas as zero and returns the band.
func BandDelta(delta float64) DeltaBand {
	d := ClampDelta(delta)
	switch {
	case d < deltaSmallMax:
		return DeltaSmall
	case d < deltaModerateMax:
		return DeltaModerate
	default:
		return DeltaLarge
	}
}

// ClampConfidence restricts a raw confidence value to [1,5].
func ClampConfidence(confidence int) int {
	if confidence < 1 {
		return 1
	}
	if confidence > 5 {
		return 5
	}
	return confidence
}

// ClampDelta restricts a raw delta to be non-negative.
func ClampDelta(delta float64) float64 {
	if delta < 0 {
		return 0
	}
	return delta
}
