package scoring

// AggregateCategories scores every category over the questions that are both
// active and answered. All categories are always present, in iteration order.
// Unanswered questions are excluded from the numerator and the denominator.
func AggregateCategories(catalog []Question, answers Answers) []CategoryScore {
	active := ActiveQuestions(catalog, answers)

	scores := make([]CategoryScore, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		cs := CategoryScore{Category: c}
		for _, q := range active {
			if q.Category != c {
				continue
			}
			v, ok := answers[q.ID]
			if !ok || !v.IsSet() {
				continue
			}
			cs.Score += Normalize(q, v) * q.Weight
			cs.MaxScore += q.Weight
		}
		if cs.MaxScore > 0 {
			cs.Percentage = cs.Score / cs.MaxScore * 100
		}
		scores = append(scores, cs)
	}
	return scores
}

// OverallScore is the weight-proportional aggregate across all categories,
// unrounded, in [0, 100] for in-range answers.
func OverallScore(scores []CategoryScore) float64 {
	var total, max float64
	for _, cs := range scores {
		total += cs.Score
		max += cs.MaxScore
	}
	if max == 0 {
		return 0
	}
	return total / max * 100
}
