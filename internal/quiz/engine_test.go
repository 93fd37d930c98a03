package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:    fmt.Sprintf("q%d", i),
			Title: fmt.Sprintf("Question %d", i),
			Options: []Option{
				{Value: "a", Label: "A"},
				{Value: "b", Label: "B"},
			},
		}
	}
	return qs
}

func newTestEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e, err := New(testQuestions(n))
	require.NoError(t, err)
	return e
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
	}{
		{"empty", nil},
		{"empty id", []Question{{ID: "", Options: []Option{{Value: "a"}}}}},
		{"duplicate id", []Question{
			{ID: "x", Options: []Option{{Value: "a"}}},
			{ID: "x", Options: []Option{{Value: "a"}}},
		}},
		{"no options", []Question{{ID: "x"}}},
		{"empty option value", []Question{{ID: "x", Options: []Option{{Value: ""}}}}},
		{"duplicate option", []Question{{ID: "x", Options: []Option{{Value: "a"}, {Value: "a"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.questions)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNew_CopiesQuestions(t *testing.T) {
	qs := testQuestions(2)
	e, err := New(qs)
	require.NoError(t, err)

	qs[0].Title = "mutated"
	qs[0].Options[0].Value = "z"

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Question 0", q.Title)
	assert.Equal(t, "a", q.Options[0].Value)
}

func TestAccessorsReturnCopies(t *testing.T) {
	e := newTestEngine(t, 2)

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	q.Options[0].Value = "z"
	q.Options[1].Label = "mutated"

	listed := e.Questions()
	listed[0].Options[0].Value = "y"
	listed[1].Options = nil

	q, ok = e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "a", q.Options[0].Value)
	assert.Equal(t, "B", q.Options[1].Label)
	assert.Len(t, e.Questions()[1].Options, 2)

	require.NoError(t, e.Advance("a"))
	assert.Equal(t, "a", e.Answers()["q0"])
}

func TestAdvance_SequencesEveryStep(t *testing.T) {
	const n = 5
	for i := 0; i < n; i++ {
		e := newTestEngine(t, n)
		for j := 0; j <= i; j++ {
			require.NoError(t, e.Advance("a"))
		}

		if e.Step() != i+1 {
			t.Errorf("after %d advances: step = %d, want %d", i+1, e.Step(), i+1)
		}

		q, ok := e.CurrentQuestion()
		if i+1 == n {
			if ok {
				t.Errorf("expected complete after %d advances, got question %q", n, q.ID)
			}
			if !e.IsComplete() {
				t.Error("expected IsComplete")
			}
			continue
		}
		if !ok {
			t.Fatalf("expected question %d, got complete", i+1)
		}
		if q.ID != fmt.Sprintf("q%d", i+1) {
			t.Errorf("current question = %q, want q%d", q.ID, i+1)
		}
	}
}

func TestAdvance_RecordsAnswer(t *testing.T) {
	e := newTestEngine(t, 3)
	require.NoError(t, e.Advance("b"))
	require.NoError(t, e.Advance("a"))

	assert.Equal(t, AnswerSet{"q0": "b", "q1": "a"}, e.Answers())
}

func TestAdvance_NoSelectionNeverMutates(t *testing.T) {
	const n = 4
	e := newTestEngine(t, n)

	for step := 0; step < n; step++ {
		before := e.Answers()
		err := e.Advance("")

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.ErrorIs(t, err, ErrNoSelection)
		assert.Equal(t, fmt.Sprintf("q%d", step), ve.QuestionID)
		assert.Equal(t, step, e.Step())
		assert.Equal(t, before, e.Answers())

		require.NoError(t, e.Advance("a"))
	}
}

func TestAdvance_UnknownOption(t *testing.T) {
	e := newTestEngine(t, 2)
	err := e.Advance("nope")

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, 0, e.Step())
	assert.Empty(t, e.Answers())
}

func TestAdvance_WhenComplete(t *testing.T) {
	e := newTestEngine(t, 1)
	require.NoError(t, e.Advance("a"))
	require.True(t, e.IsComplete())

	err := e.Advance("a")
	require.Error(t, err)
	assert.True(t, IsState(err))
	assert.ErrorIs(t, err, ErrComplete)
	assert.Equal(t, 1, e.Step())
}

func TestRetreat_RestoresPreviousQuestion(t *testing.T) {
	e := newTestEngine(t, 3)
	require.NoError(t, e.Advance("a"))
	require.NoError(t, e.Advance("b"))

	require.NoError(t, e.Retreat())

	q, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
	assert.Len(t, e.Answers(), 2)

	v, ok := e.Answer("q1")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestRetreat_FromComplete(t *testing.T) {
	e := newTestEngine(t, 2)
	require.NoError(t, e.Advance("a"))
	require.NoError(t, e.Advance("a"))

	require.NoError(t, e.Retreat())
	assert.False(t, e.IsComplete())
	assert.Equal(t, 1, e.Step())
}

func TestRetreat_AtStart(t *testing.T) {
	e := newTestEngine(t, 2)

	err := e.Retreat()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAtStart)

	var se *StateError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "retreat", se.Op)
	assert.Equal(t, 0, e.Step())
}

func TestReAnswerOverwrites(t *testing.T) {
	e := newTestEngine(t, 2)
	require.NoError(t, e.Advance("a"))
	require.NoError(t, e.Retreat())
	require.NoError(t, e.Advance("b"))

	assert.Equal(t, AnswerSet{"q0": "b"}, e.Answers())
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name     string
		advances int
	}{
		{"fresh", 0},
		{"midway", 2},
		{"complete", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 3)
			for i := 0; i < tt.advances; i++ {
				require.NoError(t, e.Advance("a"))
			}

			e.Restart()

			assert.Equal(t, 0, e.Step())
			assert.Empty(t, e.Answers())
			q, ok := e.CurrentQuestion()
			require.True(t, ok)
			assert.Equal(t, "q0", q.ID)
		})
	}
}

func TestProgressFraction(t *testing.T) {
	for n := 1; n <= 6; n++ {
		e := newTestEngine(t, n)
		if got, want := e.ProgressFraction(), 1/float64(n); got != want {
			t.Errorf("n=%d fresh: progress = %v, want %v", n, got, want)
		}

		for i := 0; i < n; i++ {
			require.NoError(t, e.Advance("a"))
		}
		if got := e.ProgressFraction(); got != 1.0 {
			t.Errorf("n=%d complete: progress = %v, want 1.0", n, got)
		}
	}
}

func TestProgressFraction_LastStepInProgress(t *testing.T) {
	e := newTestEngine(t, 4)
	for i := 0; i < 3; i++ {
		require.NoError(t, e.Advance("a"))
	}
	assert.Equal(t, 1.0, e.ProgressFraction())
	assert.False(t, e.IsComplete())
}

func TestAnswersReturnsCopy(t *testing.T) {
	e := newTestEngine(t, 2)
	require.NoError(t, e.Advance("a"))

	got := e.Answers()
	got["q0"] = "b"
	got["extra"] = "x"

	assert.Equal(t, AnswerSet{"q0": "a"}, e.Answers())
}

func TestQuestion_OptionIndex(t *testing.T) {
	q := testQuestions(1)[0]
	assert.Equal(t, 1, q.OptionIndex("b"))
	assert.Equal(t, -1, q.OptionIndex("z"))
}
