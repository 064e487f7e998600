package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/router"
	"github.com/arindam/tutorlens/internal/screen"
	"github.com/arindam/tutorlens/internal/screens/policyview"
	"github.com/arindam/tutorlens/internal/screens/survey"
	"github.com/arindam/tutorlens/internal/ui/components"
	"github.com/arindam/tutorlens/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(pol policy.Policy) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW CHECK-IN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: survey.New(pol)}
			}
		}},
		{Label: "POLICY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: policyview.New(pol)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("TutorLens")

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Tell me how the last lesson went, and I'll pick the next format.")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, tagline)
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
