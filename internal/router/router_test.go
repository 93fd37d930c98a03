package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/shindan/internal/screen"
)

// stubScreen records Init calls and the last message it saw.
type stubScreen struct {
	title   string
	initRan bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "view:" + s.title }
func (s *stubScreen) Title() string        { return s.title }

type pingMsg struct{}

func TestPushScreenMsg(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "quiz", r.Active().Title())
	assert.True(t, quiz.initRan)
	assert.Nil(t, home.lastMsg, "navigation messages are not forwarded")
}

func TestPopScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "faq"})

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth(), "root screen is never popped")
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	result := &stubScreen{title: "result"}
	r.Update(ReplaceScreenMsg{Screen: result})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "result", r.Active().Title())
	assert.True(t, result.initRan)

	r.Pop()
	assert.Equal(t, "home", r.Active().Title(), "replaced screen is gone from the stack")
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	faq := &stubScreen{title: "faq"}
	r := New(home)
	r.Push(faq)

	r.Update(pingMsg{})
	assert.Equal(t, pingMsg{}, faq.lastMsg)
	assert.Nil(t, home.lastMsg)
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	assert.Equal(t, "view:home", r.View(80, 24))
}
