package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/thaivocab/pkg/models"
)

var dueLimit int

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List words due for review, most overdue first",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		items := a.scheduler.DueItems(cmd.Context())
		if dueLimit > 0 && len(items) > dueLimit {
			items = items[:dueLimit]
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No words due for review.")
			return nil
		}
		printItems(cmd.OutOrStdout(), items)
		return nil
	}),
}

func printItems(w io.Writer, items []models.VocabularyItem) {
	for _, item := range items {
		fmt.Fprintf(w, "%-20s %-16s %-24s %s\n", item.ID, item.Text, item.Translation, item.Difficulty)
	}
}

func init() {
	dueCmd.Flags().IntVarP(&dueLimit, "limit", "n", 0, "show at most n words (0 = all)")
	rootCmd.AddCommand(dueCmd)
}
