package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the scoring tools over MCP (stdio transport)",
	Long: `Starts an MCP server on stdin/stdout exposing compute_adoption_score,
list_questions and next_question. Logs go to stderr.

Add to an MCP client config:

  {"mcpServers": {"ai-adoption-score": {"command": "adoptctl", "args": ["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	questions, err := loadQuestions()
	if err != nil {
		return err
	}

	if err := server.ServeStdio(mcptools.NewServer(version, questions)); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
