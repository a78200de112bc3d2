package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/monitoring"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

var (
	catalogFile string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "adoptctl",
	Short: "Score AI adoption survey answers",
	Long: `adoptctl computes AI adoption scores, archetypes and recommendations
from a file of answers, walks the questionnaire, and serves the same tools
to MCP clients over stdio.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// stdout belongs to command output and the MCP transport
		logger := monitoring.NewLoggerWithWriter(os.Stderr, monitoring.ParseLevel(logLevel))
		slog.SetDefault(logger.Logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "YAML question catalog (defaults to the built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadQuestions returns the catalog named by --catalog, or the built-in one
func loadQuestions() ([]scoring.Question, error) {
	if catalogFile == "" {
		return catalog.Default(), nil
	}

	questions, err := catalog.LoadFile(catalogFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded question catalog", "path", catalogFile, "questions", len(questions))
	return questions, nil
}

// loadAnswers reads a YAML or JSON answers file. "-" reads stdin.
func loadAnswers(cmd *cobra.Command, path string) (scoring.Answers, error) {
	if path == "" {
		return nil, fmt.Errorf("--answers is required")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	answers, err := catalog.ParseAnswers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}
	return answers, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the adoptctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "adoptctl v%s\n", version)
	},
}
