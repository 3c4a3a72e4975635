package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepiq/internal/readiness"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/theme"
	"github.com/abhisek/prepiq/internal/weakness"
)

func newWeaknessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weakness",
		Short: "Rank topics from weakest to strongest",
		RunE: func(cmd *cobra.Command, args []string) error {
			weakOnly, _ := cmd.Flags().GetBool("weak")

			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			perf, err := e.svc.Performance(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if weakOnly {
				for _, t := range weakness.WeakTopics(perf, e.cfg.Roadmap.WeakTopics) {
					fmt.Fprintln(w, t)
				}
				return nil
			}

			avg := make(map[string]float64, len(perf))
			for _, p := range perf {
				avg[p.Topic] = p.AvgTime
			}

			results := weakness.AnalyzeWeaknesses(perf)
			printHeader(w, fmt.Sprintf("%-16s %6s %9s %9s  %-8s", "Topic", "Score", "Accuracy", "Avg time", "Class"))
			for _, r := range results {
				row := fmt.Sprintf("%-16s %6.2f %8.1f%% %7.1fm  ", r.Topic, r.Score, r.Accuracy, avg[r.Topic])
				lipgloss.Fprintln(w, row+colored(theme.ClassificationColor(string(r.Classification)), string(r.Classification)))
			}

			counts := weakness.CountByClassification(results)
			fmt.Fprintln(w)
			lipgloss.Fprintln(w, hintStyle.Render(fmt.Sprintf("%d weak, %d average, %d strong",
				counts[weakness.Weak], counts[weakness.Average], counts[weakness.Strong])))
			return nil
		},
	}
	cmd.Flags().Bool("weak", false, "Print only the top weak topic names")
	return cmd
}

func newReadinessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Show overall and per-company interview readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			company, _ := cmd.Flags().GetString("company")
			focus, _ := cmd.Flags().GetInt("focus")

			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			perf, err := e.svc.Performance(cmd.Context())
			if err != nil {
				return err
			}
			patterns := e.svc.Dataset().Companies
			w := cmd.OutOrStdout()

			if company != "" {
				weights, ok := patterns[company]
				if !ok {
					return fmt.Errorf("unknown company %q (known: %s)", company, strings.Join(patterns.Companies(), ", "))
				}
				lipgloss.Fprintln(w, components.NewProgressBar(company, readiness.Calculate(perf, weights), 50).View())
				printFocus(w, readiness.Focus(perf, weights, focus))
				return nil
			}

			printTitle(w, fmt.Sprintf("Overall readiness: %d%%", readiness.Overall(perf, patterns)))
			fmt.Fprintln(w)
			for _, c := range readiness.Breakdown(perf, patterns) {
				bar := components.NewProgressBar(c.Company, c.Readiness, 50)
				bar.LabelWidth = 10
				lipgloss.Fprintln(w, bar.View())
			}
			return nil
		},
	}
	cmd.Flags().String("company", "", "Show a single company with its focus topics")
	cmd.Flags().Int("focus", 3, "Number of focus topics to list with --company")
	return cmd
}

func printFocus(w io.Writer, topics []string) {
	if len(topics) == 0 {
		return
	}
	lipgloss.Fprintln(w, hintStyle.Render("Focus: "+strings.Join(topics, ", ")))
}
