package scoring

import (
	"fmt"
	"regexp"
)

// Category is one of the fixed thematic tags a question belongs to.
type Category string

const (
	CategoryHabits         Category = "habits"
	CategoryWork           Category = "work"
	CategoryPrivacy        Category = "privacy"
	CategoryAutonomy       Category = "autonomy"
	CategorySophistication Category = "sophistication"
	CategoryEmotional      Category = "emotional"
	CategoryBudget         Category = "budget"
	CategoryPhilosophy     Category = "philosophy"
)

// categoryOrder is the iteration order used for aggregation and for
// weakest-category tie breaking.
var categoryOrder = [...]Category{
	CategoryHabits,
	CategoryWork,
	CategoryPrivacy,
	CategoryAutonomy,
	CategorySophistication,
	CategoryEmotional,
	CategoryBudget,
	CategoryPhilosophy,
}

// Categories returns all categories in iteration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a tag string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// QuestionType determines how an answer is normalized.
type QuestionType string

const (
	TypeBinary   QuestionType = "binary"
	TypeMultiple QuestionType = "multiple"
	TypeSlider   QuestionType = "slider"
	TypeScale    QuestionType = "scale"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeBinary, TypeMultiple, TypeSlider, TypeScale:
		return true
	}
	return false
}

// Archetype is the respondent classification label.
type Archetype string

const (
	ArchetypeAINative         Archetype = "AI Native"
	ArchetypePowerUser        Archetype = "Power User"
	ArchetypePragmaticAdopter Archetype = "Pragmatic Adopter"
	ArchetypeAICurious        Archetype = "AI Curious"
	ArchetypeAISkeptic        Archetype = "AI Skeptic"
)

var archetypeOrder = [...]Archetype{
	ArchetypeAINative,
	ArchetypePowerUser,
	ArchetypePragmaticAdopter,
	ArchetypeAICurious,
	ArchetypeAISkeptic,
}

// Archetypes returns every archetype label.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypeOrder))
	copy(out, archetypeOrder[:])
	return out
}

func (a Archetype) Valid() bool {
	for _, known := range archetypeOrder {
		if a == known {
			return true
		}
	}
	return false
}

// questionIDPattern is the id format shared by catalogs and answer payloads.
var questionIDPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// ValidQuestionID reports whether id is usable as a question id: lowercase
// letters, digits and underscores, at most 64 characters.
func ValidQuestionID(id string) bool {
	return questionIDPattern.MatchString(id)
}

// Question is a single catalog entry.
type Question struct {
	ID       string       `json:"id" yaml:"id"`
	Text     string       `json:"text" yaml:"text"`
	Type     QuestionType `json:"type" yaml:"type"`
	Category Category     `json:"category" yaml:"category"`
	Options  []string     `json:"options,omitempty" yaml:"options,omitempty"`
	Min      *float64     `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64     `json:"max,omitempty" yaml:"max,omitempty"`
	Weight   float64      `json:"weight" yaml:"weight"`
	ShowIf   *Predicate   `json:"showIf,omitempty" yaml:"show_if,omitempty"`
	SkipIf   *Predicate   `json:"skipIf,omitempty" yaml:"skip_if,omitempty"`
}

// CategoryScore is the weighted aggregate of one category's answered questions.
type CategoryScore struct {
	Category   Category `json:"category"`
	Score      float64  `json:"score"`
	MaxScore   float64  `json:"maxScore"`
	Percentage float64  `json:"percentage"`
}

// Result is the full outcome of scoring one respondent.
type Result struct {
	OverallScore    int             `json:"overallScore"`
	Percentile      int             `json:"percentile"`
	Archetype       Archetype       `json:"archetype"`
	CategoryScores  []CategoryScore `json:"categoryScores"`
	Answers         Answers         `json:"answers"`
	Recommendations []string        `json:"recommendations"`
}

// Score returns the category score for c, or a zero entry when absent.
func (r Result) Score(c Category) CategoryScore {
	return lookupScore(r.CategoryScores, c)
}

func lookupScore(scores []CategoryScore, c Category) CategoryScore {
	for _, s := range scores {
		if s.Category == c {
			return s
		}
	}
	return CategoryScore{Category: c}
}

// Float returns a pointer to v, for populating optional question bounds.
func Float(v float64) *float64 { return &v }
