package quiz

import "fmt"

// Engine sequences a fixed, ordered list of questions and collects one answer
// per question. The cursor ranges over [0, Len()]; Len() means complete.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	questions []Question
	cursor    int
	answers   AnswerSet
}

// New creates an Engine positioned at the first question.
func New(questions []Question) (*Engine, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return &Engine{
		questions: cloneQuestions(questions),
		answers:   make(AnswerSet),
	}, nil
}

func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has empty id", ErrInvalidConfig, i)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidConfig, q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %q has no options", ErrInvalidConfig, q.ID)
		}
		values := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Value == "" {
				return fmt.Errorf("%w: question %q has an option with empty value", ErrInvalidConfig, q.ID)
			}
			if values[o.Value] {
				return fmt.Errorf("%w: question %q has duplicate option %q", ErrInvalidConfig, q.ID, o.Value)
			}
			values[o.Value] = true
		}
	}
	return nil
}

// Len returns the number of questions.
func (e *Engine) Len() int {
	return len(e.questions)
}

// Step returns the zero-based cursor.
func (e *Engine) Step() int {
	return e.cursor
}

// Questions returns a copy of the question list.
func (e *Engine) Questions() []Question {
	return cloneQuestions(e.questions)
}

func cloneQuestions(questions []Question) []Question {
	qs := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]Option(nil), q.Options...)
		qs[i] = q
	}
	return qs
}

// CurrentQuestion returns the question at the cursor. ok is false once the
// quiz is complete.
func (e *Engine) CurrentQuestion() (q Question, ok bool) {
	if e.IsComplete() {
		return Question{}, false
	}
	q = e.questions[e.cursor]
	q.Options = append([]Option(nil), q.Options...)
	return q, true
}

// IsComplete reports whether every question has been answered in sequence.
func (e *Engine) IsComplete() bool {
	return e.cursor == len(e.questions)
}

// Advance records value as the answer to the current question and moves to
// the next one. Nothing is mutated when an error is returned.
func (e *Engine) Advance(value string) error {
	q, ok := e.CurrentQuestion()
	if !ok {
		return &StateError{Op: "advance", Step: e.cursor, Err: ErrComplete}
	}
	if value == "" {
		return &ValidationError{QuestionID: q.ID, Err: ErrNoSelection}
	}
	if !q.HasOption(value) {
		return &ValidationError{QuestionID: q.ID, Value: value, Err: ErrUnknownOption}
	}

	e.answers[q.ID] = value
	e.cursor++
	return nil
}

// Retreat moves back one question. Recorded answers are kept.
func (e *Engine) Retreat() error {
	if e.cursor == 0 {
		return &StateError{Op: "retreat", Step: e.cursor, Err: ErrAtStart}
	}
	e.cursor--
	return nil
}

// Restart returns to the first question and discards all answers.
func (e *Engine) Restart() {
	e.cursor = 0
	e.answers = make(AnswerSet)
}

// ProgressFraction returns (step+1)/n while a question is in progress and
// 1.0 once complete.
func (e *Engine) ProgressFraction() float64 {
	if e.IsComplete() {
		return 1.0
	}
	return float64(e.cursor+1) / float64(len(e.questions))
}

// Answers returns a copy of the collected answers.
func (e *Engine) Answers() AnswerSet {
	return e.answers.Clone()
}

// Answer returns the recorded answer for a question, if any.
func (e *Engine) Answer(questionID string) (string, bool) {
	v, ok := e.answers[questionID]
	return v, ok
}
