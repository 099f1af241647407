package cmd

import (
	"fmt"
	"strconv"

	"github.com/brogergvhs/langtally/internal/config"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available configs with their main settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := config.ListConfigs()
		if err != nil {
			return fmt.Errorf("cannot read configs directory: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No configs yet, run `langtally config init`.")
			return nil
		}

		tbl := table.New("", "LABEL", "PAGES", "PARSER", "FORMAT", "PATH").WithWriter(cmd.OutOrStdout())
		for _, c := range list {
			mark := ""
			if c.Active {
				mark = "*"
			}

			pages, parser, format := "?", "?", "?"
			if cfg, err := config.LoadLabel(c.Label); err == nil {
				pages, parser, format = strconv.Itoa(cfg.Pages), cfg.Parser, cfg.Format
			}

			tbl.AddRow(mark, c.Label, pages, parser, format, c.Path)
		}
		tbl.Print()

		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
}
