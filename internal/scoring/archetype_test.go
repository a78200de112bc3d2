package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percentages(p map[Category]float64) []CategoryScore {
	scores := make([]CategoryScore, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		scores = append(scores, CategoryScore{Category: c, Percentage: p[c]})
	}
	return scores
}

func TestClassify(t *testing.T) {
	builder := Answers{BuildingQuestionID: Text("I build AI agents/tools")}
	chainer := Answers{BuildingQuestionID: Text("I customize and chain AI tools")}
	user := Answers{BuildingQuestionID: Text("I use AI tools as-is")}

	tests := []struct {
		name     string
		overall  float64
		pct      map[Category]float64
		answers  Answers
		expected Archetype
	}{
		{
			name:     "AI Native builder",
			overall:  75,
			pct:      map[Category]float64{CategorySophistication: 70, CategoryAutonomy: 60},
			answers:  builder,
			expected: ArchetypeAINative,
		},
		{
			name:     "AI Native chainer",
			overall:  75,
			pct:      map[Category]float64{CategorySophistication: 90, CategoryAutonomy: 90},
			answers:  chainer,
			expected: ArchetypeAINative,
		},
		{
			name:     "AI Native wins over Skeptic",
			overall:  10,
			pct:      map[Category]float64{CategorySophistication: 80, CategoryAutonomy: 70},
			answers:  builder,
			expected: ArchetypeAINative,
		},
		{
			name:     "sophisticated user without building answer",
			overall:  75,
			pct:      map[Category]float64{CategorySophistication: 80, CategoryAutonomy: 80, CategoryHabits: 80},
			answers:  user,
			expected: ArchetypePragmaticAdopter,
		},
		{
			name:     "Power User boundary",
			overall:  60,
			pct:      map[Category]float64{CategoryHabits: 60, CategorySophistication: 69.9},
			answers:  user,
			expected: ArchetypePowerUser,
		},
		{
			name:     "high sophistication blocks Power User",
			overall:  60,
			pct:      map[Category]float64{CategoryHabits: 60, CategorySophistication: 70},
			answers:  user,
			expected: ArchetypePragmaticAdopter,
		},
		{
			name:     "Skeptic below 30",
			overall:  29.99,
			pct:      map[Category]float64{CategoryHabits: 90},
			answers:  nil,
			expected: ArchetypeAISkeptic,
		},
		{
			name:     "Curious with habits above 30",
			overall:  40,
			pct:      map[Category]float64{CategoryHabits: 31},
			answers:  nil,
			expected: ArchetypeAICurious,
		},
		{
			name:     "habits exactly 30 is not Curious",
			overall:  40,
			pct:      map[Category]float64{CategoryHabits: 30},
			answers:  nil,
			expected: ArchetypePragmaticAdopter,
		},
		{
			name:     "fallback",
			overall:  55,
			pct:      map[Category]float64{CategoryHabits: 50},
			answers:  nil,
			expected: ArchetypePragmaticAdopter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.overall, percentages(tt.pct), tt.answers))
		})
	}
}

func TestClassify_Total(t *testing.T) {
	answers := []Answers{nil, {BuildingQuestionID: Text("I build AI agents/tools")}}
	levels := []float64{0, 29.9, 30, 49.9, 50, 60, 70, 100}

	for _, a := range answers {
		for _, overall := range levels {
			for _, habits := range levels {
				for _, soph := range levels {
					got := Classify(overall, percentages(map[Category]float64{
						CategoryHabits:         habits,
						CategorySophistication: soph,
						CategoryAutonomy:       soph,
					}), a)
					assert.True(t, got.Valid())
				}
			}
		}
	}
}

func TestProfile(t *testing.T) {
	for _, a := range Archetypes() {
		t.Run(string(a), func(t *testing.T) {
			p, ok := Profile(a)
			require.True(t, ok)
			assert.Equal(t, a, p.Name)
			assert.NotEmpty(t, p.Description)
			assert.Len(t, p.Traits, 5)
			assert.Len(t, p.GrowthPath, 4)
		})
	}

	_, ok := Profile(Archetype("Unknown"))
	assert.False(t, ok)
}

func TestProfile_ReturnsCopy(t *testing.T) {
	p, _ := Profile(ArchetypeAISkeptic)
	p.GrowthPath[0] = "mutated"
	p.Traits[0] = "mutated"

	fresh, _ := Profile(ArchetypeAISkeptic)
	assert.Equal(t, "Try AI for low-stakes tasks", fresh.GrowthPath[0])
	assert.Equal(t, "Prefers human judgment", fresh.Traits[0])
}
