package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// ParseAnswers decodes a JSON or YAML mapping of question id to answer.
// Null values are dropped.
func ParseAnswers(data []byte) (scoring.Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	return scoring.AnswersFromMap(raw)
}
