package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arindam/tutorlens/internal/ui/theme"
)

// PickerOption is a selectable entry with an optional description shown
// next to the label.
type PickerOption struct {
	Label       string
	Description string
}

// Picker is a vertical single-choice selector. The parent decides what
// Enter means; the picker only tracks the highlighted option.
type Picker struct {
	Options  []PickerOption
	Selected int
}

// NewPicker creates a picker with the given options.
func NewPicker(options []PickerOption) Picker {
	return Picker{Options: options}
}

// Update handles keyboard navigation.
func (p Picker) Update(msg tea.Msg) Picker {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p
}

// View renders the picker.
func (p Picker) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var s string
	for i, opt := range p.Options {
		prefix := "    "
		labelStyle := theme.Unselected
		if i == p.Selected {
			prefix = "  ▸ "
			labelStyle = theme.Selected
		}

		s += labelStyle.Render(prefix + opt.Label)
		if opt.Description != "" {
			s += "  " + dim.Render(opt.Description)
		}
		s += "\n"
	}
	return s
}
