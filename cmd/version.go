package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobolt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobolt v%s\n", version.Version)
		fmt.Println("Bolted Steel Connection Capacity Checker")
		fmt.Println("Based on AISC 360 (ASD)")
		if version.GitCommit != "unknown" || version.BuildTime != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
