package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/catalog"
)

var nextAnswers string

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next unanswered question",
	Long: `Given the answers so far, prints the next question a respondent would
see, skipping questions hidden by earlier answers.`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().StringVarP(&nextAnswers, "answers", "a", "", "answers file (YAML or JSON, - for stdin)")
}

func runNext(cmd *cobra.Command, args []string) error {
	questions, err := loadQuestions()
	if err != nil {
		return err
	}
	answers, err := loadAnswers(cmd, nextAnswers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	q, progress, ok := catalog.Next(questions, answers)
	if !ok {
		fmt.Fprintf(out, "Complete: %d of %d questions answered\n", progress.Answered, progress.Total)
		return nil
	}

	position, total := catalog.Position(questions, answers, q.ID)
	fmt.Fprintf(out, "Question %d of %d (%.0f%% complete)\n", position, total, progress.Percent)
	fmt.Fprintf(out, "%s: %s\n", q.ID, q.Text)
	for _, opt := range q.Options {
		fmt.Fprintf(out, "  - %s\n", opt)
	}
	return nil
}
