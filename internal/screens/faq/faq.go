package faq

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/faq"
	"github.com/abhisek/shindan/internal/screen"
	"github.com/abhisek/shindan/internal/ui/layout"
	"github.com/abhisek/shindan/internal/ui/theme"
)

// FAQScreen shows the FAQ as an accordion with at most one answer open.
type FAQScreen struct {
	accordion *faq.Accordion
	selected  int
}

var _ screen.Screen = (*FAQScreen)(nil)
var _ screen.KeyHintProvider = (*FAQScreen)(nil)

// New creates a FAQScreen over items.
func New(items []faq.Item) *FAQScreen {
	return &FAQScreen{accordion: faq.NewAccordion(items)}
}

func (s *FAQScreen) Init() tea.Cmd { return nil }

func (s *FAQScreen) Title() string { return "よくある質問" }

func (s *FAQScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "開く/閉じる"},
		{Key: "↑↓", Description: "移動"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *FAQScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.accordion.Len()-1 {
			s.selected++
		}
	case "enter", "space":
		s.accordion.Toggle(s.selected)
	}
	return s, nil
}

func (s *FAQScreen) View(width, height int) string {
	textWidth := width - 8
	if textWidth > 72 {
		textWidth = 72
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, item := range s.accordion.Items() {
		marker := "+"
		if s.accordion.IsOpen(i) {
			marker = "-"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
		prefix := "  "
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		b.WriteString(style.Render(prefix + marker + " Q. " + item.Question))
		b.WriteString("\n")

		if s.accordion.IsOpen(i) {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(textWidth).
				PaddingLeft(6).
				Render("A. " + item.Answer))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
