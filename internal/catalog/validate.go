package catalog

import (
	"fmt"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// Check returns every problem found in questions, keyed by
// "questions[i].field". An empty map means the catalog is usable.
func Check(questions []scoring.Question) map[string]string {
	issues := make(map[string]string)
	if len(questions) == 0 {
		issues["questions"] = "catalog has no questions"
		return issues
	}

	ids := make(map[string]int, len(questions))
	for i, q := range questions {
		key := func(field string) string { return fmt.Sprintf("questions[%d].%s", i, field) }

		switch {
		case q.ID == "":
			issues[key("id")] = "id is required"
		case !scoring.ValidQuestionID(q.ID):
			issues[key("id")] = fmt.Sprintf("id %q must be lowercase letters, digits and underscores (max 64)", q.ID)
		default:
			if first, dup := ids[q.ID]; dup {
				issues[key("id")] = fmt.Sprintf("duplicate id %q (first at questions[%d])", q.ID, first)
			} else {
				ids[q.ID] = i
			}
		}

		if !q.Category.Valid() {
			issues[key("category")] = fmt.Sprintf("unknown category %q", q.Category)
		}
		if !q.Type.Valid() {
			issues[key("type")] = fmt.Sprintf("unknown type %q", q.Type)
		}
		if q.Weight < 0 {
			issues[key("weight")] = "weight must not be negative"
		}

		switch q.Type {
		case scoring.TypeMultiple:
			if len(q.Options) == 0 {
				issues[key("options")] = "multiple choice needs at least one option"
			}
		case scoring.TypeSlider:
			if q.Max != nil && *q.Max <= 0 {
				issues[key("max")] = "slider max must be positive"
			}
		case scoring.TypeScale:
			lo, hi := 1.0, 5.0
			if q.Min != nil {
				lo = *q.Min
			}
			if q.Max != nil && *q.Max != 0 {
				hi = *q.Max
			}
			if lo >= hi {
				issues[key("max")] = "scale min must be below max"
			}
		}
	}

	for i, q := range questions {
		for field, p := range map[string]*scoring.Predicate{"show_if": q.ShowIf, "skip_if": q.SkipIf} {
			if p == nil {
				continue
			}
			for _, ref := range p.References() {
				if _, ok := ids[ref]; !ok {
					issues[fmt.Sprintf("questions[%d].%s", i, field)] = fmt.Sprintf("references unknown question %q", ref)
				}
			}
		}
	}

	return issues
}

// Validate reports catalog problems as a single validation error.
func Validate(questions []scoring.Question) error {
	if issues := Check(questions); len(issues) > 0 {
		return apperrors.NewValidationErrorWithMap("invalid question catalog", issues)
	}
	return nil
}
