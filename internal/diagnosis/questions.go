package diagnosis

import "github.com/abhisek/shindan/internal/quiz"

// Question IDs, in the order they are asked.
const (
	QuestionEmploymentStatus   = "employment_status"
	QuestionResignationReason  = "resignation_reason"
	QuestionMedicalDiagnosis   = "medical_diagnosis"
	QuestionImmediateJobSearch = "immediate_job_search"
	QuestionBenefitPriority    = "benefit_priority"
)

// Option values.
const (
	EmploymentBeforeResignation = "before_resignation"
	EmploymentAfterResignation  = "after_resignation"

	ReasonVoluntary            = "voluntary"
	ReasonCompanyCircumstances = "company_circumstances"

	Yes = "yes"
	No  = "no"

	PriorityMaximizeAmount = "maximize_amount"
	PriorityQuickStart     = "quick_start"
)

// RequiredQuestions lists every question ID an AnswerSet must contain before
// it can be resolved.
var RequiredQuestions = []string{
	QuestionEmploymentStatus,
	QuestionResignationReason,
	QuestionMedicalDiagnosis,
	QuestionImmediateJobSearch,
	QuestionBenefitPriority,
}

// Questions returns the diagnosis questionnaire.
func Questions() []quiz.Question {
	return []quiz.Question{
		{
			ID:    QuestionEmploymentStatus,
			Title: "現在の状況を教えてください",
			Options: []quiz.Option{
				{Value: EmploymentBeforeResignation, Label: "退職前（在職中）"},
				{Value: EmploymentAfterResignation, Label: "退職後"},
			},
		},
		{
			ID:    QuestionResignationReason,
			Title: "退職理由を教えてください",
			Options: []quiz.Option{
				{Value: ReasonVoluntary, Label: "自己都合退職"},
				{Value: ReasonCompanyCircumstances, Label: "会社都合退職"},
			},
		},
		{
			ID:    QuestionMedicalDiagnosis,
			Title: "医師による診断書はありますか？",
			Options: []quiz.Option{
				{Value: Yes, Label: "はい（診断書あり）"},
				{Value: No, Label: "いいえ（診断書なし）"},
			},
		},
		{
			ID:    QuestionImmediateJobSearch,
			Title: "すぐに転職したいですか？",
			Options: []quiz.Option{
				{Value: Yes, Label: "はい（すぐに転職したい）"},
				{Value: No, Label: "いいえ（時間をかけたい）"},
			},
		},
		{
			ID:    QuestionBenefitPriority,
			Title: "受給に関する優先度は？",
			Options: []quiz.Option{
				{Value: PriorityMaximizeAmount, Label: "受給金額を最大化したい"},
				{Value: PriorityQuickStart, Label: "とにかく早く受給を開始したい"},
			},
		},
	}
}

// NewEngine creates a quiz engine over the diagnosis questionnaire.
func NewEngine() *quiz.Engine {
	e, err := quiz.New(Questions())
	if err != nil {
		// The questionnaire is static; a failure here is a programming error.
		panic(err)
	}
	return e
}
