package diagnosis

import (
	"errors"
	"fmt"

	"github.com/abhisek/shindan/internal/quiz"
)

// ErrMissingAnswer indicates an AnswerSet lacks a required question.
var ErrMissingAnswer = errors.New("missing answer")

// Answers is the typed form of a completed diagnosis AnswerSet.
type Answers struct {
	EmploymentStatus   string `json:"employment_status"`
	ResignationReason  string `json:"resignation_reason"`
	MedicalDiagnosis   string `json:"medical_diagnosis"`
	ImmediateJobSearch string `json:"immediate_job_search"` // collected, never consulted by the rules
	BenefitPriority    string `json:"benefit_priority"`
}

// AnswersFrom converts an engine AnswerSet, requiring every question.
func AnswersFrom(set quiz.AnswerSet) (Answers, error) {
	for _, id := range RequiredQuestions {
		if set[id] == "" {
			return Answers{}, fmt.Errorf("%w: %s", ErrMissingAnswer, id)
		}
	}
	return Answers{
		EmploymentStatus:   set[QuestionEmploymentStatus],
		ResignationReason:  set[QuestionResignationReason],
		MedicalDiagnosis:   set[QuestionMedicalDiagnosis],
		ImmediateJobSearch: set[QuestionImmediateJobSearch],
		BenefitPriority:    set[QuestionBenefitPriority],
	}, nil
}

// AnswerSet converts back to the engine's map form.
func (a Answers) AnswerSet() quiz.AnswerSet {
	return quiz.AnswerSet{
		QuestionEmploymentStatus:   a.EmploymentStatus,
		QuestionResignationReason:  a.ResignationReason,
		QuestionMedicalDiagnosis:   a.MedicalDiagnosis,
		QuestionImmediateJobSearch: a.ImmediateJobSearch,
		QuestionBenefitPriority:    a.BenefitPriority,
	}
}

// Result is a recommended benefit plan.
type Result struct {
	Title       string   `json:"title"`
	MaxAmount   string   `json:"maxAmount"` // in 万円
	Description string   `json:"description"`
	Period      string   `json:"period"`
	Steps       []string `json:"steps"`
	DetailURL   string   `json:"detailUrl"`
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	r.Steps = append([]string(nil), r.Steps...)
	return r
}
