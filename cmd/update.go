package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arindam/tutorlens/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer tutorlens release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{
			Version: version,
		})

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot check updates for a development build. Install a release build first.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}

		fmt.Printf("New version available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
		if result.ReleaseURL != "" {
			fmt.Println("Release notes:", result.ReleaseURL)
		}
		return nil
	},
}
