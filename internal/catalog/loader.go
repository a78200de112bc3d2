package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// document is the on-disk shape of a catalog override.
type document struct {
	Questions []scoring.Question `yaml:"questions"`
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) ([]scoring.Question, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := Validate(doc.Questions); err != nil {
		return nil, err
	}

	return doc.Questions, nil
}

// LoadFile reads and validates a catalog from path.
func LoadFile(path string) ([]scoring.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Marshal renders questions in the same YAML layout Parse accepts.
func Marshal(questions []scoring.Question) ([]byte, error) {
	return yaml.Marshal(document{Questions: questions})
}

// Lookup finds a question by id.
func Lookup(questions []scoring.Question, id string) (scoring.Question, bool) {
	return scoring.Find(questions, id)
}
