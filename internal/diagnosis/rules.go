package diagnosis

// Rule pairs a predicate over Answers with the plan it recommends.
type Rule struct {
	Name   string
	Match  func(a Answers) bool
	Result Result
}

// DefaultRules returns the decision table in priority order.
// The last rule matches every answer set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "medical-optimized",
			Match: func(a Answers) bool {
				return a.MedicalDiagnosis == Yes && a.EmploymentStatus == EmploymentBeforeResignation
			},
			Result: resultMedicalOptimized,
		},
		{
			Name: "post-resignation-medical",
			Match: func(a Answers) bool {
				return a.MedicalDiagnosis == Yes
			},
			Result: resultPostResignationMedical,
		},
		{
			Name: "company-circumstances",
			Match: func(a Answers) bool {
				return a.ResignationReason == ReasonCompanyCircumstances
			},
			Result: resultCompanyCircumstances,
		},
		{
			Name: "quick-start",
			Match: func(a Answers) bool {
				return a.BenefitPriority == PriorityQuickStart
			},
			Result: resultQuickStart,
		},
		{
			Name:   "standard",
			Match:  func(Answers) bool { return true },
			Result: resultStandard,
		},
	}
}

// Resolver evaluates a decision table top to bottom; the first matching rule
// wins.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a Resolver. A nil or empty table uses DefaultRules.
func NewResolver(rules []Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Resolver{rules: rules}
}

// Match returns the first rule that applies to a, and false if none does.
func (r *Resolver) Match(a Answers) (Rule, bool) {
	for _, rule := range r.rules {
		if rule.Match(a) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Resolve returns a copy of the first matching rule's Result.
// It returns the zero Result if no rule matches.
func (r *Resolver) Resolve(a Answers) Result {
	rule, ok := r.Match(a)
	if !ok {
		return Result{}
	}
	return rule.Result.Clone()
}

var defaultResolver = NewResolver(nil)

// Resolve maps a completed answer set to its recommended plan using the
// default decision table.
func Resolve(a Answers) Result {
	return defaultResolver.Resolve(a)
}
