package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// NextQuestionTool handles the next_question MCP tool.
type NextQuestionTool struct {
	questions []scoring.Question
}

// NewNextQuestionTool creates a NextQuestionTool.
func NewNextQuestionTool(questions []scoring.Question) *NextQuestionTool {
	return &NextQuestionTool{questions: questions}
}

// Definition returns the MCP tool definition for next_question.
func (t *NextQuestionTool) Definition() mcp.Tool {
	return mcp.NewTool("next_question",
		mcp.WithDescription(
			"Return the next unanswered question given the answers so far, honouring "+
				"conditional questions, plus progress through the active question set.",
		),
		mcp.WithString("answers",
			mcp.Description("JSON object of answers given so far (default: none)"),
		),
	)
}

type nextPayload struct {
	Complete bool              `json:"complete"`
	Question *scoring.Question `json:"question,omitempty"`
	Position int               `json:"position,omitempty"`
	Progress catalog.Progress  `json:"progress"`
}

// Handle processes the next_question tool call.
func (t *NextQuestionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := answersArg(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	q, progress, ok := catalog.Next(t.questions, answers)
	payload := nextPayload{Complete: !ok, Progress: progress}
	if ok {
		payload.Question = &q
		payload.Position, _ = catalog.Position(t.questions, answers, q.ID)
	}

	return jsonResult(payload)
}
