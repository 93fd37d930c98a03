package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/faq"
	"github.com/abhisek/shindan/internal/format"
	"github.com/abhisek/shindan/internal/router"
	"github.com/abhisek/shindan/internal/screen"
	"github.com/abhisek/shindan/internal/screens/diagnose"
	faqscreen "github.com/abhisek/shindan/internal/screens/faq"
	"github.com/abhisek/shindan/internal/screens/history"
	"github.com/abhisek/shindan/internal/screens/inquiry"
	"github.com/abhisek/shindan/internal/screens/placeholder"
	"github.com/abhisek/shindan/internal/screens/result"
	"github.com/abhisek/shindan/internal/store"
	"github.com/abhisek/shindan/internal/ui/components"
	"github.com/abhisek/shindan/internal/ui/layout"
	"github.com/abhisek/shindan/internal/ui/theme"
)

// Options carries the dependencies reachable from the home menu.
// Nil repos disable the features that need them.
type Options struct {
	Service      *diagnosis.Service
	Inquiries    store.InquiryRepo
	Link         result.Linker
	HistoryLimit int
	Persistent   bool
}

type latestLoadedMsg struct {
	Result *diagnosis.Result
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	latest *diagnosis.Result
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Service == nil {
		opts.Service = diagnosis.NewService(nil, nil)
	}
	h := &HomeScreen{opts: opts}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	opts := h.opts
	unavailable := func(title string) tea.Cmd {
		return push(placeholder.New(title, "データベースが利用できないため、この機能は使えません。"))
	}

	return []components.MenuItem{
		{
			Label:       "診断を始める",
			Description: "5つの質問に答えて、あなたに合った受給プランを診断します",
			Action: func() tea.Cmd {
				return push(diagnose.New(opts.Service, opts.Link))
			},
		},
		{
			Label:       "前回の診断結果",
			Description: "保存されている最新の診断結果を表示します",
			Action: func() tea.Cmd {
				if !opts.Persistent {
					return unavailable("前回の診断結果")
				}
				restart := func() screen.Screen { return diagnose.New(opts.Service, opts.Link) }
				return push(result.NewSaved(opts.Service, opts.Link, restart))
			},
		},
		{
			Label:       "診断履歴",
			Description: "これまでの診断結果の一覧を表示します",
			Action: func() tea.Cmd {
				if !opts.Persistent {
					return unavailable("診断履歴")
				}
				return push(history.New(opts.Service, opts.HistoryLimit))
			},
		},
		{
			Label:       "よくある質問",
			Description: "失業給付と傷病手当金についてのよくある質問",
			Action: func() tea.Cmd {
				return push(faqscreen.New(faq.DefaultItems()))
			},
		},
		{
			Label:       "無料相談の申し込み",
			Description: "専門家への無料相談を申し込みます",
			Action: func() tea.Cmd {
				if opts.Inquiries == nil {
					return unavailable("無料相談の申し込み")
				}
				return push(inquiry.New(opts.Inquiries))
			},
		},
		{
			Label:       "終了",
			Description: "アプリケーションを終了します",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.opts.Service
	return func() tea.Msg {
		res, _ := svc.Latest(context.Background())
		return latestLoadedMsg{Result: res}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(latestLoadedMsg); ok {
		h.latest = msg.Result
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("失業給付・傷病手当金 受給診断"),
		theme.Subtitle.Render("かんたんな質問に答えるだけで、受給できる金額の目安がわかります"),
	)

	if h.latest != nil {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			"前回の診断: "+h.latest.Title+"（"+format.Amount(h.latest.MaxAmount)+"）"))
	}

	sections = append(sections, theme.Card.Render(h.menu.View()))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return layout.Centered(strings.TrimRight(content, "\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}
