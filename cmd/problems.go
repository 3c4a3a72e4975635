package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepiq/internal/tracker"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

func newProblemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Browse and update the problem log",
	}
	cmd.AddCommand(newProblemsListCmd(), newProblemsSolveCmd(), newProblemsReviewCmd(), newProblemsImportCmd())
	return cmd
}

func newProblemsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List problems, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			topic, _ := cmd.Flags().GetString("topic")
			diff, _ := cmd.Flags().GetString("difficulty")

			q := tracker.Query{Search: search, Topic: topic}
			if diff != "" {
				d, err := tracker.ParseDifficulty(diff)
				if err != nil {
					return err
				}
				q.Difficulty = d
			}

			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			all, err := e.svc.Tracker().List(cmd.Context())
			if err != nil {
				return err
			}
			problems := tracker.Filter(all, q)
			w := cmd.OutOrStdout()

			if len(problems) == 0 {
				fmt.Fprintln(w, "No problems found.")
				return nil
			}

			printHeader(w, fmt.Sprintf("%-5s %-36s %-14s %-6s %-6s %s", "ID", "Title", "Topic", "Level", "Status", "Time"))
			for _, p := range problems {
				status := colored(theme.TextDim, "todo  ")
				if p.Solved {
					status = colored(theme.Success, "solved")
				}
				t := "-"
				if p.TimeTaken != nil {
					t = fmt.Sprintf("%dm", *p.TimeTaken)
				}
				lipgloss.Fprintln(w, fmt.Sprintf("%-5s %-36s %-14s %-6s %s %s",
					p.ID, truncate(p.Title, 36), p.Topic, p.Difficulty, status, t))
			}

			st := tracker.Summarize(all)
			fmt.Fprintln(w)
			lipgloss.Fprintln(w, hintStyle.Render(fmt.Sprintf("%d/%d solved (%d easy, %d medium, %d hard)",
				st.Solved, st.Total, st.Easy, st.Medium, st.Hard)))
			return nil
		},
	}
	cmd.Flags().String("search", "", "Match title or topic")
	cmd.Flags().String("topic", "", "Exact topic")
	cmd.Flags().String("difficulty", "", "Easy, Medium or Hard")
	return cmd
}

func newProblemsSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <id>",
		Short: "Record a solved problem and get feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := tracker.SolveInput{}
			in.TimeTaken, _ = cmd.Flags().GetInt("time")
			in.Attempts, _ = cmd.Flags().GetInt("attempts")
			in.Confidence, _ = cmd.Flags().GetInt("confidence")
			in.Date, _ = cmd.Flags().GetString("date")

			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			res, err := e.svc.Tracker().RecordSolve(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "Solved "+res.Problem.Title)
			for _, f := range res.Feedback {
				fmt.Fprintln(w, "  - "+f)
			}
			return nil
		},
	}
	cmd.Flags().Int("time", 0, "Minutes taken (required)")
	cmd.Flags().Int("attempts", 1, "Number of attempts")
	cmd.Flags().Int("confidence", 3, "Confidence from 1 to 5")
	cmd.Flags().String("date", "", "Solve date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newProblemsReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "List solved problems due for another pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			due, err := e.svc.Tracker().Due(cmd.Context())
			if err != nil {
				return err
			}
			streak, err := e.svc.Tracker().Streak(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			lipgloss.Fprintln(w, hintStyle.Render(fmt.Sprintf("Streak: %d days (next milestone %d)",
				streak, tracker.NextStreakMilestone(streak))))
			if len(due) == 0 {
				fmt.Fprintln(w, "Nothing due for review.")
				return nil
			}

			printHeader(w, fmt.Sprintf("%-5s %-36s %-14s %-10s %s", "ID", "Title", "Topic", "Due", "Overdue"))
			for _, r := range due {
				overdue := fmt.Sprintf("%dd", r.OverdueDays)
				if r.OverdueDays > 0 {
					overdue = colored(theme.Warning, overdue)
				}
				lipgloss.Fprintln(w, fmt.Sprintf("%-5s %-36s %-14s %-10s %s",
					r.Problem.ID, truncate(r.Problem.Title, 36), r.Problem.Topic,
					r.Due.Format(tracker.DateLayout), overdue))
			}
			return nil
		},
	}
}

func newProblemsImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import problems from an .xlsx or .csv file",
		Long: "Import problems from a spreadsheet with columns id, title, topic, difficulty, " +
			"solved, time, attempts, confidence and solved date (A..I). Existing ids are updated.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ic := tracker.DefaultImportConfig()
			ic.SheetName, _ = cmd.Flags().GetString("sheet")
			ic.StartRow, _ = cmd.Flags().GetInt("start-row")

			res, err := tracker.Import(args[0], ic)
			if err != nil {
				return err
			}

			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			w := cmd.OutOrStdout()
			for _, msg := range res.Errors {
				lipgloss.Fprintln(w, colored(theme.Warning, "skip: "+msg))
			}
			if len(res.Problems) == 0 {
				fmt.Fprintln(w, "Nothing to import.")
				return nil
			}

			merged, err := e.svc.Tracker().Merge(cmd.Context(), res.Problems)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Imported %d problems (%d new, %d updated, %d skipped).\n",
				len(res.Problems), merged.Created, merged.Updated, res.Skipped)
			return nil
		},
	}
	cmd.Flags().String("sheet", "", "Sheet name (default first sheet)")
	cmd.Flags().Int("start-row", 2, "First data row, 1-based")
	return cmd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
