package cmd

import (
	"fmt"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/spf13/cobra"
)

var configRenameCmd = &cobra.Command{
	Use:   "rename <old_label> [new_label]",
	Short: "Rename a config, prompting for the new label when omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from := args[0]
		if _, err := config.ConfigPathByLabel(from); err != nil {
			return err
		}

		var to string
		if len(args) == 2 {
			to = args[1]
		} else {
			var err error
			to, err = askLabel(fmt.Sprintf("New label for %q", from), config.CheckLabel)
			if err != nil {
				return err
			}
		}

		if err := config.RenameConfig(from, to); err != nil {
			return err
		}

		fmt.Printf("Renamed config %q → %q\n", from, to)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configRenameCmd)
}
