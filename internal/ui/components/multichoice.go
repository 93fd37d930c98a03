package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/ui/theme"
)

// MultiChoice is a single-answer radio selector. Nothing is chosen until
// the user marks an option with space or a number key.
type MultiChoice struct {
	Question  string
	Options   []string
	Cursor    int
	Chosen    int
	Submitted bool
}

// NewMultiChoice creates a selector with the given option pre-chosen.
// Pass -1 for no initial choice.
func NewMultiChoice(question string, options []string, chosen int) MultiChoice {
	if chosen < -1 || chosen >= len(options) {
		chosen = -1
	}
	cursor := 0
	if chosen >= 0 {
		cursor = chosen
	}
	return MultiChoice{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, choosing and submitting.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", "x":
		m.Chosen = m.Cursor
	case "enter":
		m.Submitted = true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Cursor = n - 1
			m.Chosen = n - 1
		}
	}

	return m, nil
}

// HasChoice reports whether an option is marked.
func (m MultiChoice) HasChoice() bool {
	return m.Chosen >= 0 && m.Chosen < len(m.Options)
}

// View renders the selector.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		radio := "( )"
		if i == m.Chosen {
			radio = "(●)"
		}

		line := fmt.Sprintf("%s%d. %s %s", prefix, i+1, radio, opt)

		switch {
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
