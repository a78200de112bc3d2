package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeakestCategory(t *testing.T) {
	t.Run("first strict minimum wins ties", func(t *testing.T) {
		scores := percentages(map[Category]float64{
			CategoryHabits:         20,
			CategoryWork:           50,
			CategoryPrivacy:        50,
			CategoryAutonomy:       20,
			CategorySophistication: 50,
			CategoryEmotional:      50,
			CategoryBudget:         50,
			CategoryPhilosophy:     50,
		})
		weakest, ok := WeakestCategory(scores)
		require.True(t, ok)
		assert.Equal(t, CategoryHabits, weakest.Category)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := WeakestCategory(nil)
		assert.False(t, ok)
	})
}

func TestRecommend(t *testing.T) {
	allHigh := map[Category]float64{
		CategoryHabits: 80, CategoryWork: 80, CategoryPrivacy: 80, CategoryAutonomy: 80,
		CategorySophistication: 80, CategoryEmotional: 80, CategoryBudget: 80, CategoryPhilosophy: 80,
	}
	with := func(c Category, v float64) map[Category]float64 {
		out := make(map[Category]float64, len(allHigh))
		for k, p := range allHigh {
			out[k] = p
		}
		out[c] = v
		return out
	}

	tests := []struct {
		name      string
		archetype Archetype
		pct       map[Category]float64
		extra     string
	}{
		{"weak autonomy", ArchetypePowerUser, with(CategoryAutonomy, 10), "Try letting AI handle one small task end-to-end"},
		{"weak sophistication", ArchetypeAICurious, with(CategorySophistication, 39.9), "Learn basic API usage or try local models"},
		{"weak privacy", ArchetypePragmaticAdopter, with(CategoryPrivacy, 0), "Explore privacy-preserving AI tools or local options"},
		{"weak habits", ArchetypeAISkeptic, with(CategoryHabits, 5), "Integrate AI into one daily workflow"},
		{"weak category without advice", ArchetypeAINative, with(CategoryEmotional, 5), ""},
		{"weakest at cutoff adds nothing", ArchetypeAINative, with(CategoryPrivacy, 40), ""},
		{"nothing weak", ArchetypePowerUser, allHigh, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(tt.archetype, percentages(tt.pct))
			profile, _ := Profile(tt.archetype)

			assert.LessOrEqual(t, len(recs), 5)
			require.GreaterOrEqual(t, len(recs), len(profile.GrowthPath))
			assert.Equal(t, profile.GrowthPath, recs[:len(profile.GrowthPath)])

			if tt.extra == "" {
				assert.Len(t, recs, len(profile.GrowthPath))
				return
			}
			assert.Len(t, recs, len(profile.GrowthPath)+1)
			assert.Equal(t, tt.extra, recs[len(recs)-1])
		})
	}
}
