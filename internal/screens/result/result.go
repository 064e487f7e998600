package result

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arindam/tutorlens/internal/advisor"
	"github.com/arindam/tutorlens/internal/router"
	"github.com/arindam/tutorlens/internal/screen"
	"github.com/arindam/tutorlens/internal/styles"
	"github.com/arindam/tutorlens/internal/ui/components"
	"github.com/arindam/tutorlens/internal/ui/layout"
	"github.com/arindam/tutorlens/internal/ui/theme"
)

// scoreBarUnit is the score rendered as a full bar. Totals live well
// inside [0,1] under the default policy.
const scoreBarUnit = 1.0

// ResultScreen presents the advisor's decision: the chosen format,
// per-style scores, the audit trace and the tutor narrative.
type ResultScreen struct {
	advice    advisor.Advice
	sessionID string
	statusMsg string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for the given advice.
func New(advice advisor.Advice, sessionID string) *ResultScreen {
	return &ResultScreen{
		advice:    advice,
		sessionID: sessionID,
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	case "e":
		path := ExportFilename(r.sessionID)
		if err := os.WriteFile(path, []byte(ExportText(r.advice)), 0o644); err != nil {
			r.statusMsg = "Export failed: " + err.Error()
		} else {
			r.statusMsg = "Saved to " + path
		}
	}

	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var sections []string

	sections = append(sections, titleStyle.Render(r.advice.Decision))

	barWidth := width - 8
	if barWidth > 48 {
		barWidth = 48
	}
	var bars []string
	for _, st := range []styles.Style{styles.StyleVisual, styles.StyleText, styles.StyleQuiz} {
		bar := components.ScoreBar{
			Label:   st.DisplayName(),
			Score:   r.advice.Scores[st],
			MaxUnit: scoreBarUnit,
			Width:   barWidth,
			Winner:  st == r.advice.NextStyle,
		}
		bars = append(bars, bar.View())
	}
	sections = append(sections, strings.Join(bars, "\n"))

	top := advisor.TopSignalsFromTrace(r.advice.Trace)
	traceBlock := dimStyle.Render(r.advice.Trace)
	if len(top) > 0 {
		traceBlock += "\n" + dimStyle.Render("strongest signals: "+strings.Join(top, ", "))
	}
	sections = append(sections, traceBlock)

	var reasons []string
	reasons = append(reasons, sectionStyle.Render("Why"))
	for i, reason := range r.advice.Reasons {
		reasons = append(reasons, bodyStyle.Render(fmt.Sprintf("  %d. %s", i+1, reason)))
	}
	sections = append(sections, strings.Join(reasons, "\n"))

	sections = append(sections,
		sectionStyle.Render("Tutor's note")+"\n"+bodyStyle.Render(r.advice.TutorInsight))

	if r.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Render(r.statusMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultScreen) Title() string {
	return "Recommendation"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "E", Description: "Export"},
		{Key: "Esc", Description: "Back"},
	}
}

// ExportFilename builds the export path from the session ID. Only the
// first ID segment is used to keep the name short.
func ExportFilename(sessionID string) string {
	short := sessionID
	if idx := strings.Index(short, "-"); idx > 0 {
		short = short[:idx]
	}
	return "tutorlens-advice-" + short + ".txt"
}

// ExportText renders the advice as a plain-text report.
func ExportText(advice advisor.Advice) string {
	var b strings.Builder

	b.WriteString(advice.Decision + "\n")
	b.WriteString("Next format: " + advice.NextStyle.DisplayName() + "\n\n")

	b.WriteString("Why:\n")
	for i, reason := range advice.Reasons {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, reason)
	}

	b.WriteString("\nTutor's note:\n")
	b.WriteString(advice.TutorInsight + "\n")

	b.WriteString("\nTrace: " + advice.Trace + "\n")

	return b.String()
}
