package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepiq/internal/mocktest"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

func newMockTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mocktest",
		Aliases: []string{"mock"},
		Short:   "Run simulated mock tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			w := cmd.OutOrStdout()
			for _, t := range e.svc.MockTests().Catalog().Tests() {
				lipgloss.Fprintln(w, fmt.Sprintf("%-10s ", t.Name)+
					colored(theme.TextDim, fmt.Sprintf("%-8s %s", t.Type, t.Description)))
			}
			return nil
		},
	}
	cmd.AddCommand(newMockTestRunCmd(), newMockTestHistoryCmd())
	return cmd
}

func newMockTestRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <category>",
		Short: "Simulate a pattern or company mock test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			r, err := e.svc.MockTests().Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, r.Category+" mock test")
			lipgloss.Fprintln(w, components.NewProgressBar("Score", r.Score, 50).View())
			v := string(mocktest.VerdictFor(r.Score))
			lipgloss.Fprintln(w, fmt.Sprintf("%d questions in %d minutes, ", r.TotalQuestions, r.TimeTaken)+colored(theme.VerdictColor(v), v))
			lipgloss.Fprintln(w, colored(theme.Success, "Strengths:  ")+strings.Join(r.Strengths, ", "))
			lipgloss.Fprintln(w, colored(theme.Error, "Weaknesses: ")+strings.Join(r.Weaknesses, ", "))
			fmt.Fprintln(w)
			fmt.Fprintln(w, mocktest.Comment(r.Score, r.Category))
			return nil
		},
	}
}

func newMockTestHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past mock tests, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			history, err := e.svc.MockTests().History(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(w, "No mock tests yet.")
				return nil
			}

			printHeader(w, fmt.Sprintf("%-10s %-10s %-8s %5s %6s  %s", "Date", "Category", "Type", "Score", "Time", "Status"))
			for _, r := range history {
				score := colored(theme.ScoreColor(r.Score), fmt.Sprintf("%4d%%", r.Score))
				v := string(mocktest.VerdictFor(r.Score))
				lipgloss.Fprintln(w, fmt.Sprintf("%-10s %-10s %-8s %s %5dm  ", r.Date, r.Category, r.Type, score, r.TimeTaken)+colored(theme.VerdictColor(v), v))
			}
			fmt.Fprintln(w)
			lipgloss.Fprintln(w, hintStyle.Render(fmt.Sprintf("%d tests, average %d%%", len(history), mocktest.Average(history))))
			return nil
		},
	}
}
