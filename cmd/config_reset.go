package cmd

import (
	"fmt"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/spf13/cobra"
)

var resetYes bool

var configResetCmd = &cobra.Command{
	Use:   "reset [label]",
	Short: "Overwrite the active or specified config with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			path string
			err  error
		)
		if len(args) == 1 {
			path, err = config.ConfigPathByLabel(args[0])
		} else {
			path, err = config.ActiveConfigPath()
			if err != nil {
				err = fmt.Errorf("%w, run `langtally config init` first", err)
			}
		}
		if err != nil {
			return err
		}

		if !resetYes && !confirm(fmt.Sprintf("Discard all settings in %s", path)) {
			fmt.Println("Aborted.")
			return nil
		}

		def := config.DefaultConfig()
		if err := config.SaveYAML(def, path); err != nil {
			return err
		}

		fmt.Printf("Reset config: %s\n\n", path)
		def.Print()
		return nil
	},
}

func init() {
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")
	configCmd.AddCommand(configResetCmd)
}
