package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/share"
)

var (
	scoreAnswers string
	scoreFormat  string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a file of answers",
	Long: `Reads answers keyed by question id from a YAML or JSON file and prints
the overall score, category breakdown, archetype and recommendations.`,
	Example: `  adoptctl score --answers answers.yaml
  adoptctl score --answers answers.json --format json
  cat answers.json | adoptctl score --answers -`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswers, "answers", "a", "", "answers file (YAML or JSON, - for stdin)")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "text", "output format: text or json")
}

type scoreOutput struct {
	scoring.Result
	Profile    scoring.ArchetypeProfile `json:"profile"`
	TopPercent int                      `json:"topPercent"`
	ShareText  string                   `json:"shareText"`
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreFormat != "text" && scoreFormat != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", scoreFormat)
	}

	questions, err := loadQuestions()
	if err != nil {
		return err
	}
	answers, err := loadAnswers(cmd, scoreAnswers)
	if err != nil {
		return err
	}

	result := scoring.ComputeResult(answers, questions)
	profile, _ := scoring.Profile(result.Archetype)

	out := cmd.OutOrStdout()
	if scoreFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scoreOutput{
			Result:     result,
			Profile:    profile,
			TopPercent: share.TopPercent(result.Percentile),
			ShareText:  share.Text(result),
		})
	}

	return printResult(out, result, profile)
}

func printResult(w io.Writer, result scoring.Result, profile scoring.ArchetypeProfile) error {
	fmt.Fprintf(w, "AI Adoption Score: %d/100\n", result.OverallScore)
	fmt.Fprintf(w, "Archetype:         %s\n", result.Archetype)
	fmt.Fprintf(w, "Percentile:        %d (top %d%%)\n", result.Percentile, share.TopPercent(result.Percentile))
	if profile.Description != "" {
		fmt.Fprintf(w, "\n%s\n", profile.Description)
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSCORE\tMAX\tPERCENT")
	for _, cs := range result.CategoryScores {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.0f%%\n", cs.Category, cs.Score, cs.MaxScore, cs.Percentage)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
	return nil
}
