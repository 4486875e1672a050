package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [count]",
	Short: "Suggest words you have not started yet, easiest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		count := 5
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("count must be a non-negative number, got %q", args[0])
			}
			count = n
		}

		items := a.scheduler.NewItems(cmd.Context(), count)
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No new words left in the deck.")
			return nil
		}
		printItems(cmd.OutOrStdout(), items)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(newCmd)
}
