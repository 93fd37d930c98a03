package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid quiz configuration")
	ErrNoSelection   = errors.New("no selection")
	ErrUnknownOption = errors.New("unknown option")
	ErrComplete      = errors.New("quiz already complete")
	ErrAtStart       = errors.New("already at first question")
)

// ValidationError indicates the caller supplied an unusable answer for the
// current question. The engine state is unchanged.
type ValidationError struct {
	QuestionID string
	Value      string
	Err        error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("question %q: %v", e.QuestionID, e.Err)
	}
	return fmt.Sprintf("question %q: %v %q", e.QuestionID, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StateError indicates an operation was invoked at a cursor position where
// it is not allowed. It signals a bug in the caller.
type StateError struct {
	Op   string
	Step int
	Err  error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s at step %d: %v", e.Op, e.Step, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsState reports whether err is (or wraps) a StateError.
func IsState(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
