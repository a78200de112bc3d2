package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	binary := Question{ID: "b", Type: TypeBinary}
	multiple := Question{ID: "m", Type: TypeMultiple, Options: []string{"a", "b", "c", "d"}}
	single := Question{ID: "s", Type: TypeMultiple, Options: []string{"only"}}
	slider := Question{ID: "sl", Type: TypeSlider, Min: Float(0), Max: Float(20)}
	sliderDefault := Question{ID: "sld", Type: TypeSlider}
	scale := Question{ID: "sc", Type: TypeScale, Min: Float(1), Max: Float(5)}
	scaleDefault := Question{ID: "scd", Type: TypeScale}

	tests := []struct {
		name     string
		question Question
		value    AnswerValue
		expected float64
	}{
		{"binary true", binary, Bool(true), 1},
		{"binary false", binary, Bool(false), 0},
		{"binary yes text", binary, Text("yes"), 1},
		{"binary other text", binary, Text("no"), 0},
		{"binary number is not true", binary, Number(1), 0},
		{"multiple first option", multiple, Text("a"), 0},
		{"multiple second option", multiple, Text("b"), 1.0 / 3.0},
		{"multiple last option", multiple, Text("d"), 1},
		{"multiple unknown option", multiple, Text("z"), 0},
		{"multiple non text", multiple, Number(2), 0},
		{"single option matched", single, Text("only"), 1},
		{"single option unmatched", single, Text("other"), 0},
		{"slider midpoint", slider, Number(10), 0.5},
		{"slider default max", sliderDefault, Number(50), 0.5},
		{"slider numeric text", sliderDefault, Text("25"), 0.25},
		{"slider above max is not clamped", sliderDefault, Number(150), 1.5},
		{"slider non numeric", slider, Bool(true), 0},
		{"slider NaN text", slider, Text("NaN"), 0},
		{"slider infinite text", slider, Text("Inf"), 0},
		{"slider negative infinite text", slider, Text("-Inf"), 0},
		{"scale NaN number", scale, Number(math.NaN()), 0},
		{"scale minimum", scale, Number(1), 0},
		{"scale midpoint", scale, Number(3), 0.5},
		{"scale maximum", scale, Number(5), 1},
		{"scale default bounds", scaleDefault, Number(4), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Normalize(tt.question, tt.value), 1e-9)
		})
	}
}

func TestNormalize_ScaleBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
		value    float64
		expected float64
	}{
		{"zero based scale", Float(0), Float(4), 2, 0.5},
		{"ten point scale", Float(1), Float(10), 10, 1},
		{"degenerate range", Float(3), Float(3), 3, 0},
		{"zero max falls back to default", nil, Float(0), 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ID: "q", Type: TypeScale, Min: tt.min, Max: tt.max}
			assert.InDelta(t, tt.expected, Normalize(q, Number(tt.value)), 1e-9)
		})
	}
}

func TestNormalizeByID(t *testing.T) {
	catalog := []Question{
		{ID: "known", Type: TypeBinary, Category: CategoryWork, Weight: 1},
	}

	assert.Equal(t, 1.0, NormalizeByID(catalog, "known", Bool(true)))
	assert.Equal(t, 0.0, NormalizeByID(catalog, "unknown", Bool(true)))
}

func TestNormalize_UnknownType(t *testing.T) {
	q := Question{ID: "x", Type: QuestionType("freeform")}
	assert.Equal(t, 0.0, Normalize(q, Text("anything")))
}
