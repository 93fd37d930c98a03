package result

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
	"github.com/abhisek/shindan/internal/ui/components"
	"github.com/abhisek/shindan/internal/ui/layout"
	"github.com/abhisek/shindan/internal/ui/theme"
)

// Linker turns a result's detail path into the link shown to the user.
type Linker func(path string) string

type savedLoadedMsg struct {
	Result *diagnosis.Result
	Err    error
}

type savedClearedMsg struct {
	Err error
}

// ResultScreen shows a diagnosis result. It either displays a freshly
// resolved result or loads the saved one from the service.
type ResultScreen struct {
	service *diagnosis.Service
	link    Linker
	restart func() screen.Screen

	result  *diagnosis.Result
	saved   bool
	loaded  bool
	cleared bool
	errMsg  string
	buttons components.ButtonRow
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a screen for a result that was just resolved. restart builds
// the screen that "もう一度診断する" switches to.
func New(res diagnosis.Result, link Linker, restart func() screen.Screen) *ResultScreen {
	s := &ResultScreen{
		link:    link,
		restart: restart,
		result:  &res,
		loaded:  true,
	}
	s.buttons = s.newButtons()
	return s
}

// NewSaved creates a screen that loads the stored result on Init.
func NewSaved(service *diagnosis.Service, link Linker, restart func() screen.Screen) *ResultScreen {
	s := &ResultScreen{
		service: service,
		link:    link,
		restart: restart,
		saved:   true,
	}
	s.buttons = s.newButtons()
	return s
}

func (s *ResultScreen) newButtons() components.ButtonRow {
	var buttons []components.Button
	if s.restart != nil {
		buttons = append(buttons, components.NewButton("もう一度診断する", s.restartCmd))
	}
	buttons = append(buttons, components.NewButton("ホームに戻る", func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}))
	return components.NewButtonRow(buttons...)
}

func (s *ResultScreen) restartCmd() tea.Cmd {
	if s.restart == nil {
		return nil
	}
	next := s.restart()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *ResultScreen) Init() tea.Cmd {
	if !s.saved || s.service == nil {
		s.loaded = true
		return nil
	}
	svc := s.service
	return func() tea.Msg {
		res, err := svc.Latest(context.Background())
		return savedLoadedMsg{Result: res, Err: err}
	}
}

func (s *ResultScreen) Title() string {
	if s.saved {
		return "前回の診断結果"
	}
	return "診断結果"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "移動"},
		{Key: "Enter", Description: "決定"},
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "もう一度診断"})
	}
	if s.saved && s.result != nil {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "削除"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "戻る"})
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = msg.Result
		return s, nil

	case savedClearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = nil
		s.cleared = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.restartCmd()
		case "d":
			if s.saved && s.result != nil && s.service != nil {
				svc := s.service
				return s, func() tea.Msg {
					return savedClearedMsg{Err: svc.Clear(context.Background())}
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	switch {
	case s.errMsg != "":
		return layout.Centered(theme.ErrorText.Render("エラー: "+s.errMsg), width, height)
	case !s.loaded:
		return layout.Centered(theme.Hint.Render("読み込み中..."), width, height)
	case s.result == nil:
		msg := "保存された診断結果はありません"
		if s.cleared {
			msg = "保存された診断結果を削除しました"
		}
		return layout.Centered(lipgloss.JoinVertical(lipgloss.Center,
			theme.Hint.Render(msg), "", s.buttons.View()), width, height)
	}

	cardWidth := width - 8
	if cardWidth > 72 {
		cardWidth = 72
	}

	card := theme.Card.Width(cardWidth).Render(renderResult(*s.result, s.link, cardWidth-6))
	return "\n" + center(card) + "\n\n" + center(s.buttons.View())
}

func renderResult(r diagnosis.Result, link Linker, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(width).Render(r.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(format.Amount(r.MaxAmount)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("受給期間: " + r.Period))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(r.Description))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("次のステップ"))
	b.WriteString("\n")
	for i, step := range r.Steps {
		b.WriteString(theme.Body.Width(width).Render(fmt.Sprintf("  %d. %s", i+1, step)))
		b.WriteString("\n")
	}

	detail := r.DetailURL
	if link != nil {
		detail = link(detail)
	}
	if detail != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("詳しくはこちら: " + detail))
	}

	return b.String()
}
