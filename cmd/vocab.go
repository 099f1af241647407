package cmd

import (
	"fmt"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/spf13/cobra"
)

var flagVocabLanguages string

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the language vocabulary the scraper will count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Languages:    splitList(flagVocabLanguages),
		})
		if err != nil {
			return err
		}

		v, err := vocabulary(cfg)
		if err != nil {
			return err
		}

		for _, term := range v.Terms() {
			fmt.Fprintln(cmd.OutOrStdout(), term)
		}
		return nil
	},
}

func init() {
	vocabCmd.Flags().StringVar(&flagVocabLanguages, "languages", "", "comma separated vocabulary to validate instead of the configured one")
	rootCmd.AddCommand(vocabCmd)
}
