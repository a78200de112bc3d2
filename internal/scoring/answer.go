package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueKind tags the concrete type held by an AnswerValue.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindBool
	KindNumber
	KindText
)

// AnswerValue is a raw answer: a boolean, a number or a text value.
type AnswerValue struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
}

// Answers maps question ids to raw answers.
type Answers map[string]AnswerValue

func Bool(b bool) AnswerValue      { return AnswerValue{kind: KindBool, b: b} }
func Number(n float64) AnswerValue { return AnswerValue{kind: KindNumber, n: n} }
func Text(s string) AnswerValue    { return AnswerValue{kind: KindText, s: s} }

func (v AnswerValue) Kind() ValueKind { return v.kind }

// IsSet reports whether the value holds an answer.
func (v AnswerValue) IsSet() bool { return v.kind != KindNone }

func (v AnswerValue) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the numeric value. Text holding a decimal number is
// accepted as well. NaN and infinities are never numbers here.
func (v AnswerValue) AsNumber() (float64, bool) {
	var n float64
	switch v.kind {
	case KindNumber:
		n = v.n
	case KindText:
		parsed, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if !isFinite(n) {
		return 0, false
	}
	return n, true
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

func (v AnswerValue) AsText() (string, bool) {
	return v.s, v.kind == KindText
}

func (v AnswerValue) Equal(o AnswerValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindText:
		return v.s == o.s
	}
	return true
}

func (v AnswerValue) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindText:
		return v.s
	}
	return ""
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindText:
		return json.Marshal(v.s)
	}
	return []byte("null"), nil
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ValueOf converts a decoded JSON or YAML scalar into an AnswerValue.
func ValueOf(raw any) (AnswerValue, error) {
	switch x := raw.(type) {
	case nil:
		return AnswerValue{}, nil
	case AnswerValue:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return Text(x), nil
	case float64:
		return finiteNumber(x)
	case float32:
		return finiteNumber(float64(x))
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return AnswerValue{}, fmt.Errorf("invalid numeric answer %q: %w", x, err)
		}
		return finiteNumber(n)
	}
	return AnswerValue{}, fmt.Errorf("unsupported answer value of type %T", raw)
}

func finiteNumber(n float64) (AnswerValue, error) {
	if !isFinite(n) {
		return AnswerValue{}, fmt.Errorf("numeric answer must be finite, got %v", n)
	}
	return Number(n), nil
}

// AnswersFromMap converts a generic decoded mapping into Answers.
func AnswersFromMap(m map[string]any) (Answers, error) {
	answers := make(Answers, len(m))
	for id, raw := range m {
		v, err := ValueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", id, err)
		}
		if v.IsSet() {
			answers[id] = v
		}
	}
	return answers, nil
}

// Clone returns a shallow copy of the mapping.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Has reports whether id carries a set answer.
func (a Answers) Has(id string) bool {
	v, ok := a[id]
	return ok && v.IsSet()
}
