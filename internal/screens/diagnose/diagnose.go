package diagnose

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/quiz"
	"github.com/abhisek/shindan/internal/router"
	"github.com/abhisek/shindan/internal/screen"
	"github.com/abhisek/shindan/internal/screens/result"
	"github.com/abhisek/shindan/internal/ui/components"
	"github.com/abhisek/shindan/internal/ui/layout"
	"github.com/abhisek/shindan/internal/ui/theme"
)

// MsgNoSelection is shown when the user tries to move on without choosing.
const MsgNoSelection = "選択肢を選んでください"

type completedMsg struct {
	Result diagnosis.Result
	Err    error
}

// DiagnoseScreen walks the user through the questionnaire one question at
// a time and hands the answers to the diagnosis service when done.
type DiagnoseScreen struct {
	service *diagnosis.Service
	link    result.Linker

	engine     *quiz.Engine
	choice     components.MultiChoice
	errMsg     string
	submitting bool
}

var _ screen.Screen = (*DiagnoseScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnoseScreen)(nil)

// New creates a DiagnoseScreen positioned on the first question.
func New(service *diagnosis.Service, link result.Linker) *DiagnoseScreen {
	if service == nil {
		service = diagnosis.NewService(nil, nil)
	}
	s := &DiagnoseScreen{
		service: service,
		link:    link,
		engine:  diagnosis.NewEngine(),
	}
	s.syncChoice()
	return s
}

// syncChoice rebuilds the selector for the current question, pre-choosing
// any answer already recorded for it.
func (s *DiagnoseScreen) syncChoice() {
	q, ok := s.engine.CurrentQuestion()
	if !ok {
		return
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	chosen := -1
	if v, ok := s.engine.Answer(q.ID); ok {
		chosen = q.OptionIndex(v)
	}
	s.choice = components.NewMultiChoice(q.Title, labels, chosen)
}

func (s *DiagnoseScreen) Init() tea.Cmd {
	return nil
}

func (s *DiagnoseScreen) Title() string {
	return "受給診断"
}

func (s *DiagnoseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "移動"},
		{Key: "Space", Description: "選択"},
		{Key: "Enter", Description: "次へ"},
	}
	if s.engine.Step() > 0 {
		hints = append(hints, layout.KeyHint{Key: "B", Description: "前の質問"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "中断"})
}

func (s *DiagnoseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completedMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		next := result.New(msg.Result, s.link, s.restartScreen)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "b", "backspace":
			if s.engine.Step() > 0 {
				if err := s.engine.Retreat(); err != nil {
					s.errMsg = err.Error()
					return s, nil
				}
				s.errMsg = ""
				s.syncChoice()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.HasChoice() {
		s.errMsg = ""
	}
	if !s.choice.Submitted {
		return s, cmd
	}
	s.choice.Submitted = false
	return s, s.submit()
}

func (s *DiagnoseScreen) submit() tea.Cmd {
	q, ok := s.engine.CurrentQuestion()
	if !ok {
		return nil
	}

	value := ""
	if s.choice.HasChoice() {
		value = q.Options[s.choice.Chosen].Value
	}
	if err := s.engine.Advance(value); err != nil {
		s.errMsg = errorText(err)
		return nil
	}
	s.errMsg = ""

	if !s.engine.IsComplete() {
		s.syncChoice()
		return nil
	}

	s.submitting = true
	svc := s.service
	answers := s.engine.Answers()
	return func() tea.Msg {
		res, err := svc.Complete(context.Background(), answers)
		return completedMsg{Result: res, Err: err}
	}
}

// restartScreen rewinds the engine to the first question and hands back
// this screen, so the result screen can route straight back to it.
func (s *DiagnoseScreen) restartScreen() screen.Screen {
	s.engine.Restart()
	s.errMsg = ""
	s.submitting = false
	s.syncChoice()
	return s
}

func errorText(err error) string {
	if errors.Is(err, quiz.ErrNoSelection) {
		return MsgNoSelection
	}
	return err.Error()
}

func (s *DiagnoseScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	cardWidth := width - 8
	if cardWidth > 64 {
		cardWidth = 64
	}

	var b strings.Builder
	b.WriteString("\n")

	step := s.engine.Step() + 1
	if step > s.engine.Len() {
		step = s.engine.Len()
	}
	b.WriteString(center(components.NewStepProgress(step, s.engine.Len(), s.engine.ProgressFraction(), cardWidth).View()))
	b.WriteString("\n\n")

	if s.submitting {
		b.WriteString(center(theme.Hint.Render("診断結果を計算しています...")))
		return b.String()
	}

	b.WriteString(center(theme.Card.Width(cardWidth).Render(s.choice.View())))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(center(theme.ErrorText.Render(s.errMsg)))
	}

	return b.String()
}
