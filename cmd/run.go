package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arindam/tutorlens/internal/app"
)

// runApp resolves the policy and launches the TUI.
func runApp(cmd *cobra.Command) error {
	pol, err := resolvePolicy(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{Policy: pol})
}
