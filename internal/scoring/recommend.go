package scoring

const (
	maxRecommendations = 5
	weakCategoryCutoff = 40
)

var weakCategoryAdvice = map[Category]string{
	CategoryAutonomy:       "Try letting AI handle one small task end-to-end",
	CategorySophistication: "Learn basic API usage or try local models",
	CategoryPrivacy:        "Explore privacy-preserving AI tools or local options",
	CategoryHabits:         "Integrate AI into one daily workflow",
}

// WeakestCategory returns the first category holding the strict minimum
// percentage, scanning in the order given.
func WeakestCategory(scores []CategoryScore) (CategoryScore, bool) {
	if len(scores) == 0 {
		return CategoryScore{}, false
	}
	weakest := scores[0]
	for _, cs := range scores[1:] {
		if cs.Percentage < weakest.Percentage {
			weakest = cs
		}
	}
	return weakest, true
}

// Recommend builds the recommendation list: the archetype's growth path,
// followed by advice for the weakest category when it scores below 40%.
func Recommend(a Archetype, scores []CategoryScore) []string {
	profile, _ := Profile(a)
	recs := make([]string, 0, maxRecommendations)
	recs = append(recs, profile.GrowthPath...)

	if weakest, ok := WeakestCategory(scores); ok && weakest.Percentage < weakCategoryCutoff {
		if advice, ok := weakCategoryAdvice[weakest.Category]; ok {
			recs = append(recs, advice)
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
