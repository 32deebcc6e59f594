package cmd

import (
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Single limit-state capacities of a bolted joint",
	Long: `Calculate one allowable capacity of a bolted joint from its inputs,
without a project file.

Subcommands:
  shear        - Bolt shear capacity of a bolt group
  tensile      - Bolt tensile capacity of a bolt group
  bearing      - Bolt bearing on a ply
  block-shear  - Block shear rupture of a bolt pattern on a ply

All calculations follow AISC 360 allowable strength design (kip, in, ksi).
Fu and the safety factors default to the configured values.`,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}

// flagOr returns v when the flag was set on the command line, def otherwise
func flagOr(cmd *cobra.Command, name string, v, def float64) float64 {
	if cmd.Flags().Changed(name) {
		return v
	}
	return def
}
