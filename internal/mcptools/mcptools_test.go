package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestScoreTool_Definition(t *testing.T) {
	def := NewScoreTool(catalog.Default()).Definition()
	assert.Equal(t, "compute_adoption_score", def.Name)
	assert.Contains(t, def.InputSchema.Properties, "answers")
	assert.Contains(t, def.InputSchema.Required, "answers")
}

func TestScoreTool_Handle(t *testing.T) {
	tool := NewScoreTool(catalog.Default())

	t.Run("no answers", func(t *testing.T) {
		res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"answers": "{}"}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var report ScoreReport
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &report))
		assert.Equal(t, 0, report.OverallScore)
		assert.Equal(t, 1, report.Percentile)
		assert.Equal(t, scoring.ArchetypeAISkeptic, report.Archetype)
		assert.Equal(t, scoring.ArchetypeAISkeptic, report.Profile.Name)
		assert.Equal(t, 99, report.TopPercent)
		assert.Len(t, report.CategoryScores, len(scoring.Categories()))
	})

	t.Run("object argument", func(t *testing.T) {
		res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
			"answers": map[string]interface{}{"local_models": true, "api_usage": true},
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Contains(t, resultText(res), `"sophistication"`)
	})

	t.Run("malformed json", func(t *testing.T) {
		res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"answers": "[1,2"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "invalid answers")
	})
}

func TestListQuestionsTool_Handle(t *testing.T) {
	tool := NewListQuestionsTool(catalog.Default())

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	require.NoError(t, err)
	text := resultText(res)
	assert.Contains(t, text, "27 questions")
	assert.Contains(t, text, "user_type")
	assert.Contains(t, text, "conditional")

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"category": "budget"}))
	require.NoError(t, err)
	text = resultText(res)
	assert.Contains(t, text, "1 questions")
	assert.Contains(t, text, "monthly_spend")
	assert.Contains(t, text, "$100+")

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"category": "vibes"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestNextQuestionTool_Handle(t *testing.T) {
	tool := NewNextQuestionTool(catalog.Default())

	decode := func(res *mcp.CallToolResult) nextPayload {
		t.Helper()
		var payload nextPayload
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &payload))
		return payload
	}

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	require.NoError(t, err)
	first := decode(res)
	assert.False(t, first.Complete)
	require.NotNil(t, first.Question)
	assert.Equal(t, catalog.UserTypeQuestionID, first.Question.ID)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 23, first.Progress.Total)

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"answers": `{"user_type": "I write code professionally"}`,
	}))
	require.NoError(t, err)
	second := decode(res)
	require.NotNil(t, second.Question)
	assert.Equal(t, "search_behavior", second.Question.ID)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 27, second.Progress.Total)
	assert.InDelta(t, 3.7, second.Progress.Percent, 1e-9)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("test", catalog.Default()))
}
