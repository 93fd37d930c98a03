package result

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/router"
	"github.com/abhisek/shindan/internal/screen"
	"github.com/abhisek/shindan/internal/store"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func sampleResult() diagnosis.Result {
	return diagnosis.Resolve(diagnosis.Answers{
		EmploymentStatus:   diagnosis.EmploymentAfterResignation,
		ResignationReason:  diagnosis.ReasonVoluntary,
		MedicalDiagnosis:   diagnosis.No,
		ImmediateJobSearch: diagnosis.Yes,
		BenefitPriority:    diagnosis.PriorityQuickStart,
	})
}

func openService(t *testing.T) *diagnosis.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return diagnosis.NewService(st.KVRepo(), st.HistoryRepo())
}

func TestResultScreen_View(t *testing.T) {
	res := sampleResult()
	s := New(res, func(p string) string { return "https://example.jp" + p }, nil)

	view := s.View(100, 40)
	assert.Contains(t, view, res.Title)
	assert.Contains(t, view, "最大 90万円")
	assert.Contains(t, view, "https://example.jp/diagnosis/quick-start.html")
	assert.Equal(t, "診断結果", s.Title())
}

func TestResultScreen_RestartKey(t *testing.T) {
	s := New(sampleResult(), nil, func() screen.Screen { return stubScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, stubScreen{}, msg.Screen)
}

func TestResultScreen_HomeButton(t *testing.T) {
	s := New(sampleResult(), nil, func() screen.Screen { return stubScreen{} })

	// focus moves from "もう一度診断する" to "ホームに戻る"
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestResultScreen_SavedEmpty(t *testing.T) {
	s := NewSaved(openService(t), nil, nil)
	cmd := s.Init()
	require.NotNil(t, cmd)

	s.Update(cmd())
	assert.Contains(t, s.View(80, 24), "保存された診断結果はありません")
	assert.Equal(t, "前回の診断結果", s.Title())
}

func TestResultScreen_SavedLoadAndClear(t *testing.T) {
	svc := openService(t)
	ctx := context.Background()
	_, err := svc.Complete(ctx, sampleResult2Answers())
	require.NoError(t, err)

	s := NewSaved(svc, nil, nil)
	s.Update(s.Init()())
	require.NotNil(t, s.result)
	assert.Contains(t, s.View(100, 40), "会社都合退職の優遇プラン")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Nil(t, s.result)
	assert.Contains(t, s.View(80, 24), "削除しました")

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func sampleResult2Answers() map[string]string {
	return map[string]string{
		diagnosis.QuestionEmploymentStatus:   diagnosis.EmploymentAfterResignation,
		diagnosis.QuestionResignationReason:  diagnosis.ReasonCompanyCircumstances,
		diagnosis.QuestionMedicalDiagnosis:   diagnosis.No,
		diagnosis.QuestionImmediateJobSearch: diagnosis.No,
		diagnosis.QuestionBenefitPriority:    diagnosis.PriorityMaximizeAmount,
	}
}
