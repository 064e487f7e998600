package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arindam/tutorlens/internal/ui/theme"
)

// ScoreBar displays one style's score as a horizontal bar with the raw
// value alongside. Scores may dip slightly below zero under calibration
// penalties; the bar clamps at empty while the printed value stays raw.
type ScoreBar struct {
	Label   string
	Score   float64
	MaxUnit float64 // score treated as a full bar
	Width   int
	Winner  bool
}

// View renders the score bar.
func (b ScoreBar) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	fillColor := theme.Border
	if b.Winner {
		labelStyle = theme.Highlight
		fillColor = theme.Secondary
	}

	label := labelStyle.Render(fmt.Sprintf("%-7s", b.Label))

	barWidth := b.Width - lipgloss.Width(label) - 10
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if b.MaxUnit > 0 {
		frac = b.Score / b.MaxUnit
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.BgCard).Render(strings.Repeat(" ", barWidth-filled))

	value := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %+.3f", b.Score))

	return label + " " + bar + value
}
