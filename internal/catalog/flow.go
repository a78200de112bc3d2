package catalog

import (
	"math"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// Progress describes how far a respondent is through the active question set.
type Progress struct {
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
}

// Next returns the first active question without an answer. The boolean is
// false once every active question is answered.
func Next(questions []scoring.Question, answers scoring.Answers) (scoring.Question, Progress, bool) {
	active := scoring.ActiveQuestions(questions, answers)

	progress := Progress{Total: len(active)}
	var next scoring.Question
	found := false
	for _, q := range active {
		if answers.Has(q.ID) {
			progress.Answered++
			continue
		}
		if !found {
			next, found = q, true
		}
	}

	if progress.Total > 0 {
		progress.Percent = math.Round(float64(progress.Answered)/float64(progress.Total)*1000) / 10
	} else {
		progress.Percent = 100
	}

	return next, progress, found
}

// Position is the 1-based index of id within the active set, as shown to a
// respondent ("Question N of M"). Zero means the question is not active.
func Position(questions []scoring.Question, answers scoring.Answers, id string) (int, int) {
	active := scoring.ActiveQuestions(questions, answers)
	for i, q := range active {
		if q.ID == id {
			return i + 1, len(active)
		}
	}
	return 0, len(active)
}
