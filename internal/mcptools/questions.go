package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// ListQuestionsTool handles the list_questions MCP tool.
type ListQuestionsTool struct {
	questions []scoring.Question
}

// NewListQuestionsTool creates a ListQuestionsTool.
func NewListQuestionsTool(questions []scoring.Question) *ListQuestionsTool {
	return &ListQuestionsTool{questions: questions}
}

// Definition returns the MCP tool definition for list_questions.
func (t *ListQuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription("List the survey questions with their ids, types, options and ranges."),
		mcp.WithString("category",
			mcp.Description("Filter by category: habits, work, privacy, autonomy, sophistication, emotional, budget, philosophy"),
		),
	)
}

// Handle processes the list_questions tool call.
func (t *ListQuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := req.GetString("category", "")
	if filter != "" {
		if _, err := scoring.ParseCategory(filter); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var b strings.Builder
	n := 0
	for _, q := range t.questions {
		if filter != "" && string(q.Category) != filter {
			continue
		}
		n++
		fmt.Fprintf(&b, "%s [%s/%s, weight %g]\n    %s\n", q.ID, q.Category, q.Type, q.Weight, q.Text)
		describeAnswer(&b, q)
	}

	if n == 0 {
		return mcp.NewToolResultText("No questions found."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d questions:\n\n%s", n, b.String())), nil
}

func describeAnswer(b *strings.Builder, q scoring.Question) {
	switch q.Type {
	case scoring.TypeMultiple:
		for _, opt := range q.Options {
			fmt.Fprintf(b, "    - %s\n", opt)
		}
	case scoring.TypeBinary:
		b.WriteString("    answer: true | false\n")
	case scoring.TypeSlider, scoring.TypeScale:
		fmt.Fprintf(b, "    range: %s to %s\n", bound(q.Min), bound(q.Max))
	}
	if q.ShowIf != nil || q.SkipIf != nil {
		b.WriteString("    conditional: shown only for some earlier answers\n")
	}
}

func bound(v *float64) string {
	if v == nil {
		return "default"
	}
	return fmt.Sprintf("%g", *v)
}
