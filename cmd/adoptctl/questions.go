package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

var questionsCategory string

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the survey questions",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().StringVarP(&questionsCategory, "category", "c", "", "only list questions in this category")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	questions, err := loadQuestions()
	if err != nil {
		return err
	}

	var category scoring.Category
	if questionsCategory != "" {
		category, err = scoring.ParseCategory(questionsCategory)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	n := 0
	for _, q := range questions {
		if category != "" && q.Category != category {
			continue
		}
		n++
		fmt.Fprintf(out, "%-24s %-14s %-8s %s\n", q.ID, q.Category, q.Type, q.Text)
		if len(q.Options) > 0 {
			fmt.Fprintf(out, "%-24s options: %s\n", "", strings.Join(q.Options, " | "))
		}
	}

	fmt.Fprintf(out, "\n%d questions\n", n)
	return nil
}
