package quiz

// Option is a single selectable answer for a question.
type Option struct {
	Value string `json:"value"` // recorded in the AnswerSet when chosen
	Label string `json:"label"` // display text
}

// Question is one step of a quiz. Questions are fixed configuration.
type Question struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Options []Option `json:"options"`
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionIndex returns the index of the option with the given value, or -1.
func (q Question) OptionIndex(value string) int {
	for i, o := range q.Options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// AnswerSet maps question IDs to the chosen option value.
type AnswerSet map[string]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
