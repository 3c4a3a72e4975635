package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prepiq",
		Short: "Placement preparation analytics",
		Long: "PrepIQ ranks weak topics, estimates readiness for target companies and " +
			"plans a 30-day practice roadmap from your problem-solving record.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides PREPIQ_DB env var)")
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/prepiq/config.yaml)")
	pf.String("store", "", "Storage backend: sqlite, memory or redis")
	pf.String("dataset", "", "Path to a YAML or JSON dataset (default built-in sample)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		newWeaknessCmd(),
		newReadinessCmd(),
		newRoadmapCmd(),
		newProblemsCmd(),
		newMockTestCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. Cancelling ctx stops a running dashboard.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
