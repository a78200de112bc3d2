// Package scoring turns questionnaire answers into category scores, an
// overall score, an archetype and recommendations. Everything here is pure:
// no I/O, no shared mutable state, safe for concurrent use.
package scoring

import "math"

const (
	minPercentile = 1
	maxPercentile = 99
)

// ComputeResult scores answers against the catalog. It never fails and
// returns identical output for identical input.
func ComputeResult(answers Answers, catalog []Question) Result {
	scores := AggregateCategories(catalog, answers)
	overall := OverallScore(scores)
	archetype := Classify(overall, scores, answers)

	return Result{
		OverallScore:    int(math.Round(overall)),
		Percentile:      ProvisionalPercentile(overall),
		Archetype:       archetype,
		CategoryScores:  scores,
		Answers:         answers.Clone(),
		Recommendations: Recommend(archetype, scores),
	}
}

// ProvisionalPercentile is the stand-in placement used until a population
// percentile is available: the rounded score clamped to [1, 99].
func ProvisionalPercentile(overall float64) int {
	return ClampPercentile(int(math.Round(overall)))
}

func ClampPercentile(p int) int {
	if p < minPercentile {
		return minPercentile
	}
	if p > maxPercentile {
		return maxPercentile
	}
	return p
}
