package survey

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/arindam/tutorlens/internal/advisor"
	"github.com/arindam/tutorlens/internal/assess"
	"github.com/arindam/tutorlens/internal/policy"
	"github.com/arindam/tutorlens/internal/router"
	"github.com/arindam/tutorlens/internal/screen"
	"github.com/arindam/tutorlens/internal/screens/result"
	"github.com/arindam/tutorlens/internal/signals"
	"github.com/arindam/tutorlens/internal/styles"
	"github.com/arindam/tutorlens/internal/ui/components"
	"github.com/arindam/tutorlens/internal/ui/layout"
	"github.com/arindam/tutorlens/internal/ui/theme"
)

type step int

const (
	stepTopic step = iota
	stepBackground
	stepConfidence
	stepStyle
	stepDelta
)

var confidenceOptions = []components.PickerOption{
	{Label: "1", Description: "totally lost"},
	{Label: "2", Description: "shaky"},
	{Label: "3", Description: "okay, with gaps"},
	{Label: "4", Description: "solid"},
	{Label: "5", Description: "could teach it"},
}

// SurveyScreen walks the learner through a post-lesson check-in, one
// question per step, then hands the answers to the advisor.
type SurveyScreen struct {
	policy    policy.Policy
	sessionID string

	step       step
	topicInput components.TextInput
	bgInput    components.TextInput
	confPicker components.Picker
	stylePick  components.Picker
	deltaInput components.TextInput

	topic      string
	background string
	confidence int
	errMsg     string
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)

// New creates a new SurveyScreen bound to the given policy.
func New(pol policy.Policy) *SurveyScreen {
	styleOptions := make([]components.PickerOption, 0, 3)
	for _, st := range []styles.Style{styles.StyleVisual, styles.StyleText, styles.StyleQuiz} {
		styleOptions = append(styleOptions, components.PickerOption{
			Label:       st.DisplayName(),
			Description: styleHint(st),
		})
	}

	return &SurveyScreen{
		policy:     pol,
		sessionID:  uuid.NewString(),
		topicInput: components.NewTextInput("e.g. Algebra basics", false, 60),
		bgInput:    components.NewTextInput("in your own words, or leave blank", false, 120),
		confPicker: components.NewPicker(confidenceOptions),
		stylePick:  components.NewPicker(styleOptions),
	}
}

func styleHint(st styles.Style) string {
	switch st {
	case styles.StyleVisual:
		return "diagrams and worked pictures"
	case styles.StyleQuiz:
		return "practice questions"
	default:
		return "written explanation"
	}
}

func (s *SurveyScreen) Init() tea.Cmd {
	return s.topicInput.Init()
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s.advance()
	}

	var cmd tea.Cmd
	switch s.step {
	case stepTopic:
		s.topicInput, cmd = s.topicInput.Update(msg)
	case stepBackground:
		s.bgInput, cmd = s.bgInput.Update(msg)
	case stepConfidence:
		s.confPicker = s.confPicker.Update(msg)
	case stepStyle:
		s.stylePick = s.stylePick.Update(msg)
	case stepDelta:
		s.deltaInput, cmd = s.deltaInput.Update(msg)
	}
	return s, cmd
}

// advance commits the current step's answer and moves to the next one.
func (s *SurveyScreen) advance() (screen.Screen, tea.Cmd) {
	s.errMsg = ""

	switch s.step {
	case stepTopic:
		s.topic = strings.TrimSpace(s.topicInput.Value())
		s.step = stepBackground
		return s, s.bgInput.Init()

	case stepBackground:
		s.background = s.bgInput.Value()
		s.step = stepConfidence
		return s, nil

	case stepConfidence:
		s.confidence = s.confPicker.Selected + 1
		s.step = stepStyle
		return s, nil

	case stepStyle:
		s.step = stepDelta
		knowledge := signals.Normalize(s.background).Knowledge
		suggested := assess.SuggestedDelta(knowledge, s.confidence)
		s.deltaInput = components.NewTextInput(fmt.Sprintf("points gained, e.g. %d", suggested), true, 3)
		return s, s.deltaInput.Init()

	case stepDelta:
		delta, err := s.deltaInput.NumericValue()
		if err != nil {
			s.errMsg = "Enter the score gain as a whole number."
			return s, nil
		}

		in := advisor.ExplainInput{
			Topic:          s.topic,
			PriorKnowledge: s.background,
			Confidence:     s.confidence,
			Delta:          float64(delta),
			StartingStyle:  s.selectedStyle(),
		}
		advice := advisor.Advise(in, s.policy)

		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: result.New(advice, s.sessionID)}
		}
	}

	return s, nil
}

func (s *SurveyScreen) selectedStyle() styles.Style {
	order := []styles.Style{styles.StyleVisual, styles.StyleText, styles.StyleQuiz}
	if s.stylePick.Selected >= 0 && s.stylePick.Selected < len(order) {
		return order[s.stylePick.Selected]
	}
	return styles.StyleText
}

func (s *SurveyScreen) View(width, height int) string {
	question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hint := lipgloss.NewStyle().Foreground(theme.TextDim)

	var sections []string
	sections = append(sections, hint.Render(fmt.Sprintf("Check-in %d of 5", int(s.step)+1)))

	switch s.step {
	case stepTopic:
		sections = append(sections, question.Render("What topic did you just study?"))
		sections = append(sections, s.topicInput.View())

	case stepBackground:
		sections = append(sections, question.Render("How would you describe your background with it?"))
		sections = append(sections, s.bgInput.View())

	case stepConfidence:
		sections = append(sections, question.Render("How confident do you feel right now?"))
		sections = append(sections, s.confPicker.View())

	case stepStyle:
		sections = append(sections, question.Render("What format was this lesson in?"))
		sections = append(sections, s.stylePick.View())

	case stepDelta:
		sections = append(sections, question.Render("How many points did your quiz score improve?"))
		sections = append(sections, s.deltaInput.View())
		sections = append(sections, hint.Render("Use 0 if it didn't move."))
	}

	if s.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.Error)
		sections = append(sections, errStyle.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SurveyScreen) Title() string {
	return "Check-In"
}

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepConfidence, stepStyle:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
