package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

func TestCheck(t *testing.T) {
	valid := scoring.Question{ID: "ok", Type: scoring.TypeBinary, Category: scoring.CategoryWork, Weight: 1}

	tests := []struct {
		name     string
		question scoring.Question
		field    string
	}{
		{"missing id", scoring.Question{Type: scoring.TypeBinary, Category: scoring.CategoryWork}, "questions[1].id"},
		{"uppercase id", scoring.Question{ID: "Q1", Type: scoring.TypeBinary, Category: scoring.CategoryWork}, "questions[1].id"},
		{"hyphenated id", scoring.Question{ID: "ai-tools", Type: scoring.TypeBinary, Category: scoring.CategoryWork}, "questions[1].id"},
		{"duplicate id", scoring.Question{ID: "ok", Type: scoring.TypeBinary, Category: scoring.CategoryWork}, "questions[1].id"},
		{"unknown category", scoring.Question{ID: "q", Type: scoring.TypeBinary, Category: "vibes"}, "questions[1].category"},
		{"unknown type", scoring.Question{ID: "q", Type: "dial", Category: scoring.CategoryWork}, "questions[1].type"},
		{"negative weight", scoring.Question{ID: "q", Type: scoring.TypeBinary, Category: scoring.CategoryWork, Weight: -1}, "questions[1].weight"},
		{"multiple without options", scoring.Question{ID: "q", Type: scoring.TypeMultiple, Category: scoring.CategoryWork}, "questions[1].options"},
		{"slider negative max", scoring.Question{ID: "q", Type: scoring.TypeSlider, Category: scoring.CategoryHabits, Max: scoring.Float(-5)}, "questions[1].max"},
		{"scale inverted", scoring.Question{ID: "q", Type: scoring.TypeScale, Category: scoring.CategoryEmotional, Min: scoring.Float(5), Max: scoring.Float(1)}, "questions[1].max"},
		{"dangling show_if", scoring.Question{ID: "q", Type: scoring.TypeBinary, Category: scoring.CategoryWork, ShowIf: scoring.WhenAnswerIn("ghost", "x")}, "questions[1].show_if"},
		{"dangling skip_if", scoring.Question{ID: "q", Type: scoring.TypeBinary, Category: scoring.CategoryWork, SkipIf: &scoring.Predicate{Not: scoring.WhenAnswerIn("ghost")}}, "questions[1].skip_if"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Check([]scoring.Question{valid, tt.question})
			assert.Contains(t, issues, tt.field)
		})
	}
}

func TestCheck_DefaultBounds(t *testing.T) {
	questions := []scoring.Question{
		{ID: "s", Type: scoring.TypeSlider, Category: scoring.CategoryHabits, Max: scoring.Float(0)},
		{ID: "c", Type: scoring.TypeScale, Category: scoring.CategoryEmotional},
		{ID: "f", Type: scoring.TypeBinary, Category: scoring.CategoryWork, ShowIf: scoring.WhenAnswerIn("s", "1")},
	}
	assert.Empty(t, Check(questions))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Default()))

	err := Validate(nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CategoryValidation, appErr.Category)
	assert.Equal(t, "catalog has no questions", appErr.Fields["questions"])
}
