package diagnose

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/router"
	"github.com/abhisek/shindan/internal/screens/result"
	"github.com/abhisek/shindan/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func openService(t *testing.T) (*diagnosis.Service, store.HistoryRepo) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return diagnosis.NewService(st.KVRepo(), st.HistoryRepo()), st.HistoryRepo()
}

// answer picks the option with the given 1-based number and submits it.
func answer(t *testing.T, s *DiagnoseScreen, n rune) tea.Cmd {
	t.Helper()
	s.Update(keyPress(n))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestDiagnoseScreen_Title(t *testing.T) {
	s := New(nil, nil)
	assert.Equal(t, "受給診断", s.Title())
	assert.Equal(t, 0, s.engine.Step())
}

func TestDiagnoseScreen_EnterWithoutChoiceShowsError(t *testing.T) {
	s := New(nil, nil)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, MsgNoSelection, s.errMsg)
	assert.Equal(t, 0, s.engine.Step(), "cursor does not move")
	assert.Contains(t, s.View(80, 24), MsgNoSelection)

	s.Update(specialKey(tea.KeySpace))
	assert.Empty(t, s.errMsg, "choosing clears the error")
}

func TestDiagnoseScreen_BackRestoresPreviousAnswer(t *testing.T) {
	s := New(nil, nil)

	// b on the first question is a no-op
	s.Update(keyPress('b'))
	assert.Equal(t, 0, s.engine.Step())
	assert.Empty(t, s.errMsg)

	answer(t, s, '2')
	require.Equal(t, 1, s.engine.Step())
	assert.False(t, s.choice.HasChoice(), "new question starts unchosen")

	s.Update(keyPress('b'))
	assert.Equal(t, 0, s.engine.Step())
	assert.Equal(t, 1, s.choice.Chosen, "previous answer is pre-chosen")
}

func TestDiagnoseScreen_KeyHints(t *testing.T) {
	s := New(nil, nil)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "B", h.Key, "no back hint on the first question")
	}

	answer(t, s, '1')
	keys := make([]string, 0)
	for _, h := range s.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.Contains(t, keys, "B")
}

func TestDiagnoseScreen_CompleteFlow(t *testing.T) {
	svc, history := openService(t)
	s := New(svc, func(p string) string { return "https://example.jp" + p })

	// before_resignation, voluntary, yes, no, maximize_amount
	for _, n := range []rune{'1', '1', '1', '2'} {
		assert.Nil(t, answer(t, s, n))
	}
	cmd := answer(t, s, '1')
	require.NotNil(t, cmd, "last answer triggers completion")
	assert.True(t, s.submitting)
	assert.Contains(t, s.View(80, 24), "計算しています")

	msg := cmd()
	done, ok := msg.(completedMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, "傷病手当金 + 失業給付の最適化プラン", done.Result.Title)

	_, cmd = s.Update(done)
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, isResult := replace.Screen.(*result.ResultScreen)
	assert.True(t, isResult)

	saved, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "250", saved.MaxAmount)

	runs, err := history.RecentRuns(context.Background(), store.QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, diagnosis.No, runs[0].Answers[diagnosis.QuestionImmediateJobSearch])
}

func TestDiagnoseScreen_IgnoresKeysWhileSubmitting(t *testing.T) {
	s := New(nil, nil)
	for _, n := range []rune{'2', '2', '2', '2'} {
		answer(t, s, n)
	}
	require.NotNil(t, answer(t, s, '2'))

	_, cmd := s.Update(keyPress('b'))
	assert.Nil(t, cmd)
	assert.True(t, s.engine.IsComplete())
}

func TestDiagnoseScreen_RestartReusesEngine(t *testing.T) {
	s := New(nil, nil)
	engine := s.engine
	for _, n := range []rune{'2', '2', '2', '2'} {
		answer(t, s, n)
	}
	cmd := answer(t, s, '2')
	require.NotNil(t, cmd)

	_, cmd = s.Update(cmd())
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)

	_, cmd = replace.Screen.Update(keyPress('r'))
	require.NotNil(t, cmd)
	back, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)

	assert.Same(t, s, back.Screen)
	assert.Same(t, engine, s.engine)
	assert.Equal(t, 0, s.engine.Step())
	assert.Empty(t, s.engine.Answers())
	assert.False(t, s.choice.HasChoice())
	assert.False(t, s.submitting)
}
