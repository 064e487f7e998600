package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arindam/tutorlens/internal/advisor"
	"github.com/arindam/tutorlens/internal/styles"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Run one check-in without the TUI",
	Long:  "Advise runs a single check-in from flags and prints the recommendation, for scripting or quick inspection.",
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, err := resolvePolicy(cmd)
		if err != nil {
			return err
		}

		topic, _ := cmd.Flags().GetString("topic")
		background, _ := cmd.Flags().GetString("background")
		confidence, _ := cmd.Flags().GetInt("confidence")
		delta, _ := cmd.Flags().GetFloat64("delta")
		style, _ := cmd.Flags().GetString("style")
		asJSON, _ := cmd.Flags().GetBool("json")

		advice := advisor.Advise(advisor.ExplainInput{
			Topic:          topic,
			PriorKnowledge: background,
			Confidence:     confidence,
			Delta:          delta,
			StartingStyle:  styles.Parse(style),
		}, pol)

		if asJSON {
			out, err := json.MarshalIndent(advice, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(advice.Decision)
		fmt.Println("Next format:", advice.NextStyle.DisplayName())
		fmt.Println()
		fmt.Println("Why:")
		for i, reason := range advice.Reasons {
			fmt.Printf("  %d. %s\n", i+1, reason)
		}
		fmt.Println()
		fmt.Println("Tutor's note:")
		fmt.Println(advice.TutorInsight)
		fmt.Println()
		fmt.Println("Trace:", advice.Trace)
		return nil
	},
}

func init() {
	adviseCmd.Flags().String("topic", "", "Topic of the lesson just finished")
	adviseCmd.Flags().String("background", "", "Learner's own words about their prior knowledge")
	adviseCmd.Flags().Int("confidence", 3, "Self-reported confidence, 1-5")
	adviseCmd.Flags().Float64("delta", 0, "Quiz score improvement in points")
	adviseCmd.Flags().String("style", "text", "Format of the finished lesson: visual, text or quiz")
	adviseCmd.Flags().Bool("json", false, "Print the full advice record as JSON")
}
