package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score your leads with AI",
	Long: `Ask the backend to score your leads. Each lead gets a quality score
between 0 and 1; higher means more likely to convert.`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	scores, err := a.Client.ScoreLeads(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to score leads: %w", err)
	}

	if flagJSON {
		return printJSON(scores)
	}

	if len(scores) == 0 {
		fmt.Println("No leads to score.")
		return nil
	}

	fmt.Printf("%-26s %s\n", a.Styles.Key.Render("NAME"), a.Styles.Key.Render("SCORE"))
	for _, s := range scores {
		name := s.FullName
		if name == "" {
			name = fmt.Sprintf("lead #%d", s.LeadID)
		}
		fmt.Printf("%-26s %.2f\n", truncate(name, 24), s.QualityScore)
	}
	warnIfUnsubscribed(cmd, a)
	return nil
}
