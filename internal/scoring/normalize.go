package scoring

const (
	defaultSliderMax = 100
	defaultScaleMin  = 1
	defaultScaleMax  = 5
)

// Normalize maps a raw answer onto [0, 1] according to the question type.
// Slider values are not clamped: a value above max yields more than 1.
func Normalize(q Question, v AnswerValue) float64 {
	switch q.Type {
	case TypeBinary:
		if b, ok := v.AsBool(); ok && b {
			return 1
		}
		if s, ok := v.AsText(); ok && s == "yes" {
			return 1
		}
		return 0

	case TypeSlider:
		n, ok := v.AsNumber()
		if !ok {
			return 0
		}
		max := boundOr(q.Max, defaultSliderMax)
		return n / max

	case TypeScale:
		n, ok := v.AsNumber()
		if !ok {
			return 0
		}
		min := float64(defaultScaleMin)
		if q.Min != nil {
			min = *q.Min
		}
		return scaleRange(n, min, boundOr(q.Max, defaultScaleMax))

	case TypeMultiple:
		s, ok := v.AsText()
		if !ok {
			return 0
		}
		idx := indexOf(q.Options, s)
		if idx < 0 {
			return 0
		}
		if len(q.Options) == 1 {
			return 1
		}
		return float64(idx) / float64(len(q.Options)-1)
	}
	return 0
}

// NormalizeByID normalizes an answer for the question with the given id.
// Unknown ids normalize to 0.
func NormalizeByID(catalog []Question, id string, v AnswerValue) float64 {
	q, ok := Find(catalog, id)
	if !ok {
		return 0
	}
	return Normalize(q, v)
}

// Find returns the catalog question with the given id.
func Find(catalog []Question, id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func scaleRange(n, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (n - min) / (max - min)
}

// boundOr treats an unset or zero bound as absent.
func boundOr(b *float64, def float64) float64 {
	if b == nil || *b == 0 {
		return def
	}
	return *b
}

func indexOf(options []string, s string) int {
	for i, o := range options {
		if o == s {
			return i
		}
	}
	return -1
}
