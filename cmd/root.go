package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arindam/tutorlens/internal/policy"
)

var rootCmd = &cobra.Command{
	Use:   "tutorlens",
	Short: "Adaptive lesson-format advisor",
	Long:  "TutorLens — terminal advisor that reads a learner's post-lesson check-in and picks the next lesson format, with a full explanation of why.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("policy", "", "Path to a policy JSON file (defaults to the built-in v1 table)")

	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(policyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolvePolicy loads the policy file named by --policy, or falls back
// to the built-in default table.
func resolvePolicy(cmd *cobra.Command) (policy.Policy, error) {
	path, _ := cmd.Flags().GetString("policy")
	if path == "" {
		return policy.Default(), nil
	}
	pol, err := policy.Load(path)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("load policy %s: %w", path, err)
	}
	return pol, nil
}
