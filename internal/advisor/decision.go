package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/scoring"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
)

// DecisionTitle returns the fixed title for the chosen style.
func DecisionTitle(s styles.Style) string {
	switch s {
	case styles.StyleVisual:
		return "Increase guidance with visuals"
	case styles.StyleQuiz:
		return "Shift toward practice with quizzes"
	default:
		return "Keep a steady, structured explanation"
	}
}

// traceSeparator joins the trace fields. Downstream rendering splits on
// it to pull out individual fields, so it must not change.
const traceSeparator = " • "

// BuildTrace renders the single-line audit string:
//
//	policy=<v> • start=<style> → next=<style> • conf=<n>/5(<band>) • knowledge=<label> • delta=+<n>(<band>) • top=<sig1>,<sig2>
//
// Field order and separators are part of the external contract: the UI
// extracts the substring after "top=" to display the most influential
// signals.
func BuildTrace(in ExplainInput, profile signals.Profile, cal calibration.State, scored scoring.Result, pol policy.Policy) string {
	fields := []string{
		"policy=" + pol.Version,
		fmt.Sprintf("start=%s → next=%s", in.StartingStyle, scored.Winner),
		fmt.Sprintf("conf=%d/5(%s)", calibration.ClampConfidence(in.Confidence), cal.Confidence),
		"knowledge=" + string(profile.Knowledge),
		fmt.Sprintf("delta=+%s(%s)", formatDelta(in.Delta), cal.Delta),
		fmt.Sprintf("top=%s,%s", scored.TopSignals[0], scored.TopSignals[1]),
	}
	return strings.Join(fields, traceSeparator)
}

// TopSignalsFromTrace recovers the top-signal names from a trace line,
// the same way the rendering layer does. Returns nil if the trace does
// not carry a top= field.
func TopSignalsFromTrace(trace string) []string {
	idx := strings.Index(trace, "top=")
	if idx < 0 {
		return nil
	}
	rest := trace[idx+len("top="):]
	if end := strings.Index(rest, traceSeparator); end >= 0 {
		rest = rest[:end]
	}
	return strings.Split(rest, ",")
}

// formatDelta prints the clamped delta without a trailing ".0" for
// whole values, so the common integer case reads as "delta=+50".
func formatDelta(delta float64) string {
	return strconv.FormatFloat(calibration.ClampDelta(delta), 'f', -1, 64)
}
