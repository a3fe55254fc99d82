package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/eslintgen/src/output"
	"github.com/sofmeright/eslintgen/src/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := presets.All()
		if err != nil {
			return err
		}

		color := output.UseColor()
		sec := output.NewSection(cmd.OutOrStdout(), fmt.Sprintf("Presets (%d)", len(list)), 0, color)
		for _, p := range list {
			sec.KV(p.Name, p.Description)
		}
		sec.Close()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
