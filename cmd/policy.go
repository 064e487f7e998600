package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the active policy table",
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, err := resolvePolicy(cmd)
		if err != nil {
			return err
		}

		fmt.Println("policy", pol.Version)
		fmt.Println()
		fmt.Println("weights:")
		fmt.Printf("  delta       %.2f\n", pol.Weights.Delta)
		fmt.Printf("  confidence  %.2f\n", pol.Weights.Confidence)
		fmt.Printf("  knowledge   %.2f\n", pol.Weights.Knowledge)
		fmt.Printf("  start bias  %.2f\n", pol.Weights.StartBias)
		fmt.Printf("delta saturation: %.0f points\n", pol.DeltaSaturation)
		fmt.Println()
		fmt.Println("overconfident adjustment:")
		fmt.Printf("  visual %+.2f  text %+.2f  quiz %+.2f\n",
			pol.Overconfident.Visual, pol.Overconfident.Text, pol.Overconfident.Quiz)
		fmt.Println("underconfident adjustment:")
		fmt.Printf("  visual %+.2f  text %+.2f  quiz %+.2f\n",
			pol.Underconfident.Visual, pol.Underconfident.Text, pol.Underconfident.Quiz)
		return nil
	},
}
