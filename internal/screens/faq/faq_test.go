package faq

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/shindan/internal/faq"
)

func testItems() []faq.Item {
	return []faq.Item{
		{Question: "first?", Answer: "one"},
		{Question: "second?", Answer: "two"},
	}
}

func TestFAQScreen_ToggleSelected(t *testing.T) {
	s := New(testItems())
	assert.NotContains(t, s.View(80, 24), "A. one")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.accordion.IsOpen(0))
	assert.Contains(t, s.View(80, 24), "A. one")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, s.accordion.IsOpen(0), "opening another item closes the first")
	assert.True(t, s.accordion.IsOpen(1))

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	assert.Equal(t, -1, s.accordion.Open())
}

func TestFAQScreen_SelectionBounds(t *testing.T) {
	s := New(testItems())
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)

	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 1, s.selected)
}

func TestFAQScreen_DefaultItems(t *testing.T) {
	s := New(faq.DefaultItems())
	assert.Equal(t, "よくある質問", s.Title())
	assert.Contains(t, s.View(100, 40), faq.DefaultItems()[0].Question)
}
