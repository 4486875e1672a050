package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		stats := a.scheduler.Stats(cmd.Context())
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Words learned:   %d\n", stats.TotalWordsLearned)
		fmt.Fprintf(w, "Due for review:  %d\n", stats.WordsForReview)
		fmt.Fprintf(w, "Mastered:        %d\n", stats.MasteredWords)
		fmt.Fprintf(w, "Day streak:      %d\n", stats.ReviewStreak)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
