package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/thaivocab/pkg/models"
)

var (
	saveText        string
	saveTranslation string
	saveDifficulty  string
)

var saveCmd = &cobra.Command{
	Use:   "save <word-id>",
	Short: "Add a word to your reviews without reviewing it",
	Long: `Add a word to your reviews. Words outside the deck can be saved
with --text and --translation.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		ctx := cmd.Context()
		id := args[0]

		meta := models.VocabularyItem{Text: saveText, Translation: saveTranslation}
		if saveDifficulty != "" {
			d, err := models.ParseDifficulty(saveDifficulty)
			if err != nil {
				return err
			}
			meta.Difficulty = d
		}

		if a.scheduler.IsItemSaved(ctx, id) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already saved.\n", id)
			return nil
		}
		if err := a.scheduler.AddItemToReview(ctx, id, meta); err != nil {
			return err
		}
		if !a.scheduler.IsKnownItem(id) && meta.Text == "" && meta.Translation == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (not in the deck, no text given).\n", id)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", id)
		return nil
	}),
}

func init() {
	saveCmd.Flags().StringVar(&saveText, "text", "", "Thai text of a custom word")
	saveCmd.Flags().StringVar(&saveTranslation, "translation", "", "translation of a custom word")
	saveCmd.Flags().StringVar(&saveDifficulty, "difficulty", "", "beginner, intermediate or advanced")
	rootCmd.AddCommand(saveCmd)
}
