package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the section catalog and steel grades",
	Run:   runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("SECTIONS (AISC Shapes Database):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tClass\tA (in²)\td (in)\ttw (in)\ttf (in)\n")
	fmt.Fprintf(w, "  ────\t─────\t───────\t──────\t───────\t───────\n")
	for _, s := range aisc.Sections() {
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.3f\t%.3f\n", s.Name, s.Class, s.Area, s.Depth, s.WebThickness, s.FlangeThickness)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STEEL GRADES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tFy (ksi)\tFu (ksi)\n")
	fmt.Fprintf(w, "  ─────\t────────\t────────\n")
	for _, m := range aisc.Materials() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\n", m.Grade, m.Fy, m.Fu)
	}
	w.Flush()
	fmt.Println()
}
