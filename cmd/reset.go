package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepiq/internal/store"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear roadmap progress, the problem log and mock-test history",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer e.close()

			if err := store.Reset(cmd.Context(), e.kv,
				e.cfg.Keys.Progress, e.cfg.Keys.Problems, e.cfg.Keys.MockTests); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All progress cleared.")
			return nil
		},
	}
}
