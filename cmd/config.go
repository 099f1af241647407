package cmd

import (
	"fmt"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config profiles for langtally",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		if used == "" {
			fmt.Println("Loaded config from:\n  (default config in memory)")
			fmt.Println("Run `langtally config init` to create an actual config")
		} else {
			fmt.Printf("Loaded config from:\n  %s\n", used)
		}
		fmt.Println()
		cfg.Print()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
