package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/format"
	"github.com/abhisek/shindan/internal/router"
	"github.com/abhisek/shindan/internal/screen"
	"github.com/abhisek/shindan/internal/store"
	"github.com/abhisek/shindan/internal/ui/layout"
	"github.com/abhisek/shindan/internal/ui/theme"
)

type historyLoadedMsg struct {
	Runs []store.RunRecord
	Err  error
}

// HistoryScreen lists past diagnosis runs, newest first.
type HistoryScreen struct {
	service  *diagnosis.Service
	limit    int
	runs     []store.RunRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen showing up to limit runs.
func New(service *diagnosis.Service, limit int) *HistoryScreen {
	return &HistoryScreen{
		service:  service,
		limit:    limit,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	svc, limit := s.service, s.limit
	return func() tea.Msg {
		if svc == nil {
			return historyLoadedMsg{}
		}
		runs, err := svc.History(context.Background(), limit)
		return historyLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "診断履歴"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "回答を表示"},
		{Key: "↑↓", Description: "移動"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(theme.ErrorText.Render(fmt.Sprintf("エラー: %s", s.errMsg)), width, height)
	}
	if !s.loaded {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("読み込み中..."), width, height)
	}
	if len(s.runs) == 0 {
		return layout.Centered(theme.Hint.Render("まだ診断履歴はありません"), width, height)
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s",
			prefix, format.Date(run.CompletedAt.Local()), run.Title, format.Amount(run.MaxAmount))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, l := range answerLines(run.Answers) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+l)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// answerLines renders answers as "question: option label" in question order.
func answerLines(answers map[string]string) []string {
	var lines []string
	for _, q := range diagnosis.Questions() {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		label := v
		if i := q.OptionIndex(v); i >= 0 {
			label = q.Options[i].Label
		}
		lines = append(lines, q.Title+": "+label)
	}
	return lines
}
