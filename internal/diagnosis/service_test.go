package diagnosis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shindan/internal/quiz"
	"github.com/abhisek/shindan/internal/store"
)

// memKV implements store.KVRepo in memory.
type memKV struct {
	data   map[string]string
	getErr error
}

func newMemKV() *memKV { return &memKV{data: make(map[string]string)} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}
func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}
func (m *memKV) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// memHistory implements store.HistoryRepo in memory.
type memHistory struct {
	runs []store.RunData
	err  error
}

func (m *memHistory) AppendRun(_ context.Context, data store.RunData) error {
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, data)
	return nil
}
func (m *memHistory) RecentRuns(_ context.Context, opts store.QueryOpts) ([]store.RunRecord, error) {
	var out []store.RunRecord
	for i := len(m.runs) - 1; i >= 0; i-- {
		out = append(out, store.RunRecord{RunData: m.runs[i], Sequence: int64(i + 1)})
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memHistory) RuleCounts(context.Context) (map[string]int, int, error) {
	counts := make(map[string]int)
	for _, r := range m.runs {
		counts[r.Rule]++
	}
	return counts, len(m.runs), nil
}
func (m *memHistory) ClearRuns(context.Context) (int64, error) {
	n := int64(len(m.runs))
	m.runs = nil
	return n, nil
}

func completeAnswerSet() quiz.AnswerSet {
	return quiz.AnswerSet{
		QuestionEmploymentStatus:   EmploymentBeforeResignation,
		QuestionResignationReason:  ReasonVoluntary,
		QuestionMedicalDiagnosis:   Yes,
		QuestionImmediateJobSearch: No,
		QuestionBenefitPriority:    PriorityMaximizeAmount,
	}
}

func TestAnswersFrom_Missing(t *testing.T) {
	for _, id := range RequiredQuestions {
		t.Run(id, func(t *testing.T) {
			set := completeAnswerSet()
			delete(set, id)

			_, err := AnswersFrom(set)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingAnswer)
			assert.Contains(t, err.Error(), id)
		})
	}
}

func TestAnswersFrom_RoundTrip(t *testing.T) {
	set := completeAnswerSet()
	a, err := AnswersFrom(set)
	require.NoError(t, err)
	assert.Equal(t, set, a.AnswerSet())
}

func TestService_Complete(t *testing.T) {
	kv := newMemKV()
	hist := &memHistory{}
	svc := NewService(kv, hist)
	fixed := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	res, err := svc.Complete(context.Background(), completeAnswerSet())
	require.NoError(t, err)
	assert.Equal(t, "250", res.MaxAmount)

	stored, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, res, *stored)

	require.Len(t, hist.runs, 1)
	run := hist.runs[0]
	assert.Equal(t, "medical-optimized", run.Rule)
	assert.Equal(t, res.Title, run.Title)
	assert.Equal(t, fixed, run.CompletedAt)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, No, run.Answers[QuestionImmediateJobSearch])

	runs, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestService_CompleteIncomplete(t *testing.T) {
	kv := newMemKV()
	hist := &memHistory{}
	svc := NewService(kv, hist)

	set := completeAnswerSet()
	delete(set, QuestionBenefitPriority)

	_, err := svc.Complete(context.Background(), set)
	assert.ErrorIs(t, err, ErrMissingAnswer)
	assert.Empty(t, kv.data)
	assert.Empty(t, hist.runs)
}

func TestService_HistoryFailureIsNotFatal(t *testing.T) {
	svc := NewService(newMemKV(), &memHistory{err: errors.New("disk full")})

	res, err := svc.Complete(context.Background(), completeAnswerSet())
	require.NoError(t, err)
	assert.Equal(t, "250", res.MaxAmount)
}

func TestService_NilRepos(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.Complete(context.Background(), completeAnswerSet())
	require.NoError(t, err)

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.NoError(t, svc.Clear(context.Background()))

	runs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestService_Clear(t *testing.T) {
	kv := newMemKV()
	svc := NewService(kv, nil)

	_, err := svc.Complete(context.Background(), completeAnswerSet())
	require.NoError(t, err)
	require.NoError(t, svc.Clear(context.Background()))

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestEngineDrivesService(t *testing.T) {
	e := NewEngine()
	for _, v := range []string{EmploymentAfterResignation, ReasonCompanyCircumstances, No, Yes, PriorityQuickStart} {
		require.NoError(t, e.Advance(v))
	}
	require.True(t, e.IsComplete())

	res, err := NewService(nil, nil).Complete(context.Background(), e.Answers())
	require.NoError(t, err)
	assert.Equal(t, "120", res.MaxAmount)
}

func TestService_RuleCountsAndReset(t *testing.T) {
	kv := newMemKV()
	hist := &memHistory{}
	svc := NewService(kv, hist)
	ctx := context.Background()

	quick := completeAnswerSet()
	quick[QuestionMedicalDiagnosis] = No
	quick[QuestionBenefitPriority] = PriorityQuickStart
	for _, set := range []quiz.AnswerSet{completeAnswerSet(), quick, quick} {
		_, err := svc.Complete(ctx, set)
		require.NoError(t, err)
	}

	counts, total, err := svc.RuleCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, map[string]int{"medical-optimized": 1, "quick-start": 2}, counts)

	n, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, total, err = svc.RuleCounts(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	counts, total, err = NewService(nil, nil).RuleCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Zero(t, total)
}
