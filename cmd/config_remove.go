package cmd

import (
	"fmt"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/spf13/cobra"
)

var forceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]
		active, _ := config.CurrentLabel()

		if label == active && !forceRemove && !confirm(fmt.Sprintf("Config %q is active, remove it anyway", label)) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := config.RemoveConfig(label); err != nil {
			return err
		}
		fmt.Printf("Removed configuration %q\n", label)

		if label != active {
			return nil
		}
		if now, err := config.CurrentLabel(); err == nil {
			fmt.Println("Active config is now:", now)
		} else {
			fmt.Println("No config is active, defaults apply.")
		}
		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "do not ask before removing the active config")
	configCmd.AddCommand(configRemoveCmd)
}
