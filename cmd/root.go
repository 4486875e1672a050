package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thaivocab",
	Short: "Spaced repetition review for Thai vocabulary",
	Long: `thaivocab keeps track of the Thai words you are learning and
schedules reviews with the SM-2 algorithm.

Storage, deck and time zone are configured through environment
variables or a .env file (DB_TYPE, SQLITE_PATH, DATABASE_URL,
CATALOG_PATH, TIMEZONE, ...).`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
