package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

const serverInstructions = `Tools for the AI Adoption Score survey.
Use list_questions to see the questionnaire, next_question to walk a respondent
through it one question at a time, and compute_adoption_score to score the
collected answers.`

// NewServer registers the survey tools over questions.
func NewServer(version string, questions []scoring.Question) *server.MCPServer {
	s := server.NewMCPServer(
		"ai-adoption-score",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	scoreTool := NewScoreTool(questions)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	listTool := NewListQuestionsTool(questions)
	s.AddTool(listTool.Definition(), listTool.Handle)

	nextTool := NewNextQuestionTool(questions)
	s.AddTool(nextTool.Definition(), nextTool.Handle)

	return s
}
