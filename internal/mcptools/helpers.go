// Package mcptools exposes the scoring engine as MCP tools.
package mcptools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// answersArg decodes the "answers" argument, accepting either a JSON string
// or an object.
func answersArg(req mcp.CallToolRequest) (scoring.Answers, error) {
	raw, ok := req.GetArguments()["answers"]
	if !ok || raw == nil {
		return scoring.Answers{}, nil
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			return scoring.Answers{}, nil
		}
		return catalog.ParseAnswers([]byte(v))
	case map[string]any:
		return scoring.AnswersFromMap(v)
	default:
		return nil, fmt.Errorf("'answers' must be a JSON object")
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
