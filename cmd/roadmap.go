package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepiq/internal/roadmap"
	"github.com/abhisek/prepiq/internal/ui/components"
	"github.com/abhisek/prepiq/internal/ui/theme"
)

func newRoadmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Show the 30-day practice roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			r, err := e.svc.Report(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			printHeader(w, fmt.Sprintf("%-4s %-18s %-8s %s", "Day", "Topic", "Problems", "Status"))
			for _, d := range r.Roadmap {
				topic := d.Topic
				if d.IsMockInterview {
					topic = colored(theme.Accent, fmt.Sprintf("%-18s", topic))
				} else {
					topic = fmt.Sprintf("%-18s", topic)
				}
				status := colored(theme.TextDim, "pending")
				if d.Completed {
					status = colored(theme.Success, "done")
				}
				lipgloss.Fprintln(w, fmt.Sprintf("%-4d %s %-8d %s", d.Day, topic, d.Problems, status))
			}

			fmt.Fprintln(w)
			lipgloss.Fprintln(w, components.NewProgressBar("Progress", r.Progress, 50).View())
			lipgloss.Fprintln(w, hintStyle.Render(fmt.Sprintf("%d problems planned", roadmap.TotalProblems(r.Roadmap))))
			return nil
		},
	}

	cmd.AddCommand(newRoadmapCompleteCmd(), newRoadmapTopicsCmd(), newRoadmapResetCmd())
	return cmd
}

func newRoadmapCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <day>",
		Short: "Mark a roadmap day as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}

			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			completed, err := e.svc.Roadmap().MarkDayComplete(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Day %d completed (%d/%d days done).\n",
				day, len(completed), roadmap.TotalDays)
			return nil
		},
	}
}

func newRoadmapTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "Show roadmap progress per topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			r, err := e.svc.Report(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range r.TopicProgress {
				bar := components.NewProgressBar(t.Topic, t.Percentage, 60)
				bar.LabelWidth = 16
				lipgloss.Fprintln(w, bar.View()+hintStyle.Render(fmt.Sprintf("  %d/%d", t.Completed, t.Total)))
			}
			return nil
		},
	}
}

func newRoadmapResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear roadmap progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.svc.Roadmap().Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Roadmap progress cleared.")
			return nil
		},
	}
}
