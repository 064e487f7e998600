package policyview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/screen"
	"github.com/arindam/tutorlens/internal/ui/theme"
)

// PolicyScreen shows the active policy table so a learner (or a
// curious auditor) can see exactly what drives the recommendation.
type PolicyScreen struct {
	policy policy.Policy
}

var _ screen.Screen = (*PolicyScreen)(nil)

// New creates a PolicyScreen for the given policy.
func New(pol policy.Policy) *PolicyScreen {
	return &PolicyScreen{policy: pol}
}

func (p *PolicyScreen) Init() tea.Cmd {
	return nil
}

func (p *PolicyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PolicyScreen) View(width, height int) string {
	sectionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	row := func(key string, format string, args ...any) string {
		return keyStyle.Render(fmt.Sprintf("  %-16s", key)) + valStyle.Render(fmt.Sprintf(format, args...))
	}

	pol := p.policy
	var sections []string

	sections = append(sections, sectionStyle.Render("Policy "+pol.Version))

	sections = append(sections, strings.Join([]string{
		sectionStyle.Render("Weights"),
		row("delta", "%.2f", pol.Weights.Delta),
		row("confidence", "%.2f", pol.Weights.Confidence),
		row("knowledge", "%.2f", pol.Weights.Knowledge),
		row("start bias", "%.2f", pol.Weights.StartBias),
		row("saturation", "%.0f points", pol.DeltaSaturation),
	}, "\n"))

	sections = append(sections, strings.Join([]string{
		sectionStyle.Render("Overconfidence adjustment"),
		row("visual", "%+.2f", pol.Overconfident.Visual),
		row("text", "%+.2f", pol.Overconfident.Text),
		row("quiz", "%+.2f", pol.Overconfident.Quiz),
	}, "\n"))

	sections = append(sections, strings.Join([]string{
		sectionStyle.Render("Underconfidence adjustment"),
		row("visual", "%+.2f", pol.Underconfident.Visual),
		row("text", "%+.2f", pol.Underconfident.Text),
		row("quiz", "%+.2f", pol.Underconfident.Quiz),
	}, "\n"))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PolicyScreen) Title() string {
	return "Policy"
}
