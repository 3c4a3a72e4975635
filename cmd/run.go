package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prepiq/internal/app"
)

// runApp opens the store, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Info("starting dashboard", zap.String("store", e.cfg.Store.Backend))
	return app.Run(cmd.Context(), e.svc)
}
