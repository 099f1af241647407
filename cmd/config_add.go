package cmd

import (
	"fmt"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/spf13/cobra"
)

var addSwitch bool

var configAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Create a new config with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			var err error
			label, err = askLabel("Label for the new config", config.CheckLabel)
			if err != nil {
				return err
			}
		}

		path, err := config.CreateConfig(label)
		if err != nil {
			return err
		}
		fmt.Printf("Created new config: %s\n", path)

		if addSwitch {
			if err := config.SwitchConfig(label); err != nil {
				return err
			}
			fmt.Println("Switched to:", label)
		}
		return nil
	},
}

func init() {
	configAddCmd.Flags().BoolVarP(&addSwitch, "switch", "s", false, "make the new config active")
	configCmd.AddCommand(configAddCmd)
}
