package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	srs "github.com/example/thaivocab/internal/spaced_repetition"
)

var reviewCmd = &cobra.Command{
	Use:   "review <word-id> <quality 0-5>",
	Short: "Record how well you recalled a word",
	Long: `Record a review of a word.

Quality is 0 (complete blackout) to 5 (perfect recall); 3 and above
count as a successful recall.`,
	Args: cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quality must be a number between 0 and 5, got %q", args[1])
		}

		ctx := cmd.Context()
		if err := a.scheduler.RecordReview(ctx, args[0], srs.QualityResponse(q)); err != nil {
			return err
		}

		rs, _ := a.scheduler.ReviewState(ctx, args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded. Next review in %d %s (%s), ease %.2f.\n",
			rs.Interval, plural(rs.Interval, "day", "days"),
			rs.NextReviewDate.In(a.cfg.Review.Location).Format("2006-01-02 15:04"), rs.EaseFactor)
		return nil
	}),
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
