package scoring

// Predicate is a declarative visibility condition evaluated against the
// answers collected so far. Every populated clause must hold; an empty
// predicate is always true.
type Predicate struct {
	AnswerIn *AnswerIn   `json:"answerIn,omitempty" yaml:"answer_in,omitempty"`
	All      []Predicate `json:"all,omitempty" yaml:"all,omitempty"`
	Any      []Predicate `json:"any,omitempty" yaml:"any,omitempty"`
	Not      *Predicate  `json:"not,omitempty" yaml:"not,omitempty"`
}

// AnswerIn holds when the referenced question has been answered with one of
// Values. Non-text answers are compared by their canonical string form.
type AnswerIn struct {
	QuestionID string   `json:"questionId" yaml:"question_id"`
	Values     []string `json:"values" yaml:"values"`
}

// WhenAnswerIn builds a predicate on a single question's answer.
func WhenAnswerIn(questionID string, values ...string) *Predicate {
	return &Predicate{AnswerIn: &AnswerIn{QuestionID: questionID, Values: values}}
}

func (p Predicate) Eval(answers Answers) bool {
	if p.AnswerIn != nil && !p.AnswerIn.eval(answers) {
		return false
	}
	for _, sub := range p.All {
		if !sub.Eval(answers) {
			return false
		}
	}
	if len(p.Any) > 0 {
		matched := false
		for _, sub := range p.Any {
			if sub.Eval(answers) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if p.Not != nil && p.Not.Eval(answers) {
		return false
	}
	return true
}

func (a AnswerIn) eval(answers Answers) bool {
	v, ok := answers[a.QuestionID]
	if !ok || !v.IsSet() {
		return false
	}
	got := v.String()
	for _, want := range a.Values {
		if got == want {
			return true
		}
	}
	return false
}

// References lists every question id the predicate depends on.
func (p Predicate) References() []string {
	var ids []string
	if p.AnswerIn != nil {
		ids = append(ids, p.AnswerIn.QuestionID)
	}
	for _, sub := range p.All {
		ids = append(ids, sub.References()...)
	}
	for _, sub := range p.Any {
		ids = append(ids, sub.References()...)
	}
	if p.Not != nil {
		ids = append(ids, p.Not.References()...)
	}
	return ids
}

// IsActive reports whether q is part of the active question set for the
// given answers: ShowIf must hold and SkipIf must not.
func IsActive(q Question, answers Answers) bool {
	if q.ShowIf != nil && !q.ShowIf.Eval(answers) {
		return false
	}
	if q.SkipIf != nil && q.SkipIf.Eval(answers) {
		return false
	}
	return true
}

// ActiveQuestions returns the ordered subsequence of currently visible
// questions.
func ActiveQuestions(catalog []Question, answers Answers) []Question {
	active := make([]Question, 0, len(catalog))
	for _, q := range catalog {
		if IsActive(q, answers) {
			active = append(active, q)
		}
	}
	return active
}
