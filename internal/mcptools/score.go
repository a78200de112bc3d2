package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/share"
)

// ScoreTool handles the compute_adoption_score MCP tool.
type ScoreTool struct {
	questions []scoring.Question
}

// NewScoreTool creates a ScoreTool over questions.
func NewScoreTool(questions []scoring.Question) *ScoreTool {
	return &ScoreTool{questions: questions}
}

// ScoreReport is the tool's JSON payload
type ScoreReport struct {
	scoring.Result
	Profile    scoring.ArchetypeProfile `json:"profile"`
	TopPercent int                      `json:"topPercent"`
	ShareText  string                   `json:"shareText"`
}

// Definition returns the MCP tool definition for compute_adoption_score.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("compute_adoption_score",
		mcp.WithDescription(
			"Score a set of AI adoption survey answers. Returns the overall score (0-100), "+
				"per-category scores, the archetype with its profile, a provisional percentile "+
				"and up to five recommendations.",
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description(`JSON object of question id to answer, e.g. {"terminal_ai": true, "ai_tools_count": 5}`),
		),
	)
}

// Handle processes the compute_adoption_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := answersArg(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	result := scoring.ComputeResult(answers, t.questions)
	profile, _ := scoring.Profile(result.Archetype)

	return jsonResult(ScoreReport{
		Result:     result,
		Profile:    profile,
		TopPercent: share.TopPercent(result.Percentile),
		ShareText:  share.Text(result),
	})
}
