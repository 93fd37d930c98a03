package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an inline error line.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Required bool
	Err      string
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, required bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		Required: required,
	}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update forwards messages to the wrapped model. Editing clears the error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.Err = ""
	}
	return t, cmd
}

// View renders the label, the input and any error.
func (t TextInput) View() string {
	label := t.Label
	if t.Required {
		label += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("*")
	}
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if t.Focused() {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}

	view := labelStyle.Render(label) + "\n" + t.Model.View()
	if t.Err != "" {
		view += "\n" + theme.ErrorText.Render(t.Err)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
