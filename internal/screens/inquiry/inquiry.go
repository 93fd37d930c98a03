package inquiry

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/form"
	"github.com/abhisek/shindan/internal/router"
	"github.com/abhisek/shindan/internal/screen"
	"github.com/abhisek/shindan/internal/store"
	"github.com/abhisek/shindan/internal/ui/components"
	"github.com/abhisek/shindan/internal/ui/layout"
	"github.com/abhisek/shindan/internal/ui/theme"
)

var errNoRepo = errors.New("お問い合わせの保存先が設定されていません")

type submittedMsg struct {
	ID  string
	Err error
}

// InquiryScreen is the free consultation request form.
type InquiryScreen struct {
	repo       store.InquiryRepo
	names      []string
	inputs     []components.TextInput
	focus      int
	submitting bool
	doneID     string
	errMsg     string
}

var _ screen.Screen = (*InquiryScreen)(nil)
var _ screen.KeyHintProvider = (*InquiryScreen)(nil)

// New creates an InquiryScreen that stores submissions in repo.
func New(repo store.InquiryRepo) *InquiryScreen {
	s := &InquiryScreen{repo: repo}
	placeholders := map[string]string{
		form.FieldName:    "山田 太郎",
		form.FieldEmail:   "example@example.com",
		form.FieldPhone:   "090-1234-5678",
		form.FieldMessage: "ご相談内容をご記入ください",
	}
	for _, f := range (form.Inquiry{}).Fields() {
		s.names = append(s.names, f.Name)
		s.inputs = append(s.inputs, components.NewTextInput(f.Label, placeholders[f.Name], f.Required, 200))
	}
	return s
}

func (s *InquiryScreen) Init() tea.Cmd {
	return s.inputs[0].Focus()
}

func (s *InquiryScreen) Title() string {
	return "無料相談の申し込み"
}

func (s *InquiryScreen) KeyHints() []layout.KeyHint {
	if s.doneID != "" {
		return []layout.KeyHint{{Key: "Enter", Description: "ホームに戻る"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "次の項目"},
		{Key: "Enter", Description: "次へ/送信"},
		{Key: "Ctrl+S", Description: "送信"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *InquiryScreen) inquiry() form.Inquiry {
	values := make(map[string]string, len(s.inputs))
	for i, in := range s.inputs {
		values[s.names[i]] = in.Value()
	}
	return form.Inquiry{
		Name:    values[form.FieldName],
		Email:   values[form.FieldEmail],
		Phone:   values[form.FieldPhone],
		Message: values[form.FieldMessage],
	}
}

func (s *InquiryScreen) setFocus(i int) tea.Cmd {
	n := len(s.inputs)
	i = ((i % n) + n) % n
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[i].Focus()
}

func (s *InquiryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.doneID = msg.ID
		return s, nil

	case tea.KeyMsg:
		if s.doneID != "" {
			if msg.String() == "enter" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "enter":
			if s.focus < len(s.inputs)-1 {
				return s, s.setFocus(s.focus + 1)
			}
			return s, s.submit()
		case "ctrl+s":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

// submit validates every field, shows per-field errors and, when the form
// is valid, stores the inquiry.
func (s *InquiryScreen) submit() tea.Cmd {
	in := s.inquiry()
	errs := in.Validate()

	first := -1
	for i := range s.inputs {
		s.inputs[i].Err = ""
		if err := errs.Get(s.names[i]); err != nil {
			s.inputs[i].Err = err.Error()
			if first < 0 {
				first = i
			}
		}
	}
	if first >= 0 {
		return s.setFocus(first)
	}

	s.errMsg = ""
	s.submitting = true
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return submittedMsg{Err: errNoRepo}
		}
		id, err := repo.AppendInquiry(context.Background(), in.Data())
		return submittedMsg{ID: id, Err: err}
	}
}

func (s *InquiryScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	if s.doneID != "" {
		return center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("\n\nお申し込みありがとうございました。\n担当者より折り返しご連絡いたします。"))
	}

	cardWidth := width - 8
	if cardWidth > 64 {
		cardWidth = 64
	}

	var b strings.Builder
	for i, in := range s.inputs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(in.View())
	}

	out := "\n" + center(theme.Card.Width(cardWidth).Render(b.String()))
	if s.submitting {
		out += "\n\n" + center(theme.Hint.Render("送信中..."))
	}
	if s.errMsg != "" {
		out += "\n\n" + center(theme.ErrorText.Render(s.errMsg))
	}
	return out
}
