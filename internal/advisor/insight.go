package advisor

import (
	"fmt"
	"strings"

	"github.com/arindam/tutorlens/internal/calibration"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
)

// Calibration lines are exported as constants because the rendering
// layer highlights them verbatim.
const (
	InsightOverconfident  = "One flag: your confidence outpaces your measured gain, so we'll double-check understanding before more practice."
	InsightUnderconfident = "One encouraging note: your results are stronger than your confidence suggests — trust the numbers."
	InsightAligned        = "Your confidence and your measured gain line up, which makes planning straightforward."
)

// buildInsight composes the tutor narrative from fixed ordered
// segments: opener, profile line, knowledge line, confidence line,
// calibration line, adaptation line, one or two plan lines, a
// micro-task nudge, and a next-lesson preview. Segments are joined with
// line breaks and no segment references another style's content.
func buildInsight(in ExplainInput, profile signals.Profile, cal calibration.State, winner styles.Style) string {
	segments := []string{
		openerLine(cal.Delta),
		profileLine(in),
		knowledgeLine(profile.Knowledge),
		confidenceLine(in.Confidence),
		calibrationLine(cal),
		adaptationLine(winner),
	}
	segments = append(segments, planLines(profile.Knowledge, in.Confidence)...)
	segments = append(segments, nudgeLine(winner), previewLine(winner))
	return strings.Join(segments, "\n")
}

func openerLine(band calibration.DeltaBand) string {
	switch band {
	case calibration.DeltaSmall:
		return "Let's take stock of where you are."
	case calibration.DeltaModerate:
		return "You're making steady progress — let's keep the momentum."
	default:
		return "Big jump this round — nice work."
	}
}

func profileLine(in ExplainInput) string {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		topic = "this topic"
	}
	return fmt.Sprintf("We're looking at %s, and you started from %s-style lessons.", topic, in.StartingStyle)
}

func knowledgeLine(knowledge signals.KnowledgeLabel) string {
	switch knowledge {
	case signals.KnowledgeUnknown:
		return "I didn't get much detail about your background, so I'll assume you're starting fresh."
	case signals.KnowledgeBeginner:
		return "You described yourself as new to this, so we'll build from the ground up."
	case signals.KnowledgeAdvanced:
		return "You sound comfortable with the fundamentals, so we can move quickly."
	default:
		return "Your background has both strong and uncertain patches, so we'll shore up the gaps as we go."
	}
}

// confidenceLine is keyed by the exact 1-5 rating, not the band, so
// each step gets its own hand-written message.
func confidenceLine(confidence int) string {
	switch calibration.ClampConfidence(confidence) {
	case 1:
		return "A confidence of 1 tells me this feels daunting right now — that's okay, we'll go step by step."
	case 2:
		return "A confidence of 2 says you're unsure — expect plenty of support in the next lesson."
	case 3:
		return "A confidence of 3 is a solid middle ground — we'll balance explanation with practice."
	case 4:
		return "A confidence of 4 means you trust your grasp — we'll lean into that."
	default:
		return "A confidence of 5 is full confidence — time to prove it under a bit of pressure."
	}
}

func calibrationLine(cal calibration.State) string {
	switch {
	case cal.Overconfident:
		return InsightOverconfident
	case cal.Underconfident:
		return InsightUnderconfident
	default:
		return InsightAligned
	}
}

func adaptationLine(winner styles.Style) string {
	switch winner {
	case styles.StyleVisual:
		return "Because of all this, the next lesson leads with diagrams and visual walkthroughs."
	case styles.StyleQuiz:
		return "Because of all this, the next lesson shifts weight toward quiz-style practice."
	default:
		return "Because of all this, the next lesson stays with a structured written explanation."
	}
}

// planLines is a 2D lookup over knowledge tier and confidence. The
// confidence split is tier-dependent: the lower tiers split at <=2,
// the upper tiers at >=4.
func planLines(knowledge signals.KnowledgeLabel, confidence int) []string {
	c := calibration.ClampConfidence(confidence)

	switch knowledge {
	case signals.KnowledgeUnknown:
		if c <= 2 {
			return []string{
				"We'll start with a short orientation pass so nothing important gets skipped.",
				"Early questions will be low-stakes, just to map what you already know.",
			}
		}
		return []string{"We'll fold a quick diagnostic into the lesson to place you accurately."}

	case signals.KnowledgeBeginner:
		if c <= 2 {
			return []string{
				"The plan keeps each step small, with one idea introduced at a time.",
				"Every new term will come with a concrete example before you're asked to use it.",
			}
		}
		return []string{"The plan introduces fundamentals briskly, since your confidence can carry a faster ramp."}

	case signals.KnowledgeAdvanced:
		if c >= 4 {
			return []string{"The plan skips the basics and opens with a challenge problem."}
		}
		return []string{
			"The plan reviews the fundamentals at speed before raising difficulty.",
			"If the review holds up, difficulty climbs in the second half.",
		}

	default: // mixed
		if c >= 4 {
			return []string{"The plan alternates between your strong areas and your gaps so neither goes stale."}
		}
		return []string{
			"The plan starts from your strong areas to build footing, then crosses into the gaps.",
			"Expect a brief recap before each new section.",
		}
	}
}

func nudgeLine(winner styles.Style) string {
	switch winner {
	case styles.StyleVisual:
		return "Micro-task: sketch the main idea as a diagram from memory before the lesson starts."
	case styles.StyleQuiz:
		return "Micro-task: answer one warm-up question cold, before any review."
	default:
		return "Micro-task: write a two-sentence summary of what you remember before reading on."
	}
}

func previewLine(winner styles.Style) string {
	switch winner {
	case styles.StyleVisual:
		return "Next up: a visual-first lesson with annotated diagrams."
	case styles.StyleQuiz:
		return "Next up: a quiz-led lesson with instant feedback after each answer."
	default:
		return "Next up: a structured written lesson with worked explanations."
	}
}
