package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/capacity"
)

var (
	tensileBolts    int
	tensileDiameter float64
	tensileArea     float64
	tensileFu       float64
	tensileOmega    float64
)

var capacityTensileCmd = &cobra.Command{
	Use:   "tensile",
	Short: "Calculate the bolt tensile capacity of a bolt group",
	Long: `Calculate the allowable bolt tensile capacity:

  Tr = n × 0.75 × Fu × As / Ω

The stress area As defaults to the gross bolt area π·d²/4.

Examples:
  gobolt capacity tensile --bolts 14 -d 0.875
  gobolt capacity tensile --bolts 4 --area 0.462`,
	Run: runCapacityTensile,
}

func init() {
	capacityCmd.AddCommand(capacityTensileCmd)

	capacityTensileCmd.Flags().IntVarP(&tensileBolts, "bolts", "n", 1, "Number of bolts")
	capacityTensileCmd.Flags().Float64VarP(&tensileDiameter, "diameter", "d", 0.875, "Bolt diameter (in)")
	capacityTensileCmd.Flags().Float64Var(&tensileArea, "area", 0, "Bolt stress area As (in²), default π·d²/4")
	capacityTensileCmd.Flags().Float64Var(&tensileFu, "fu", 0, "Bolt ultimate strength (ksi), default from configuration")
	capacityTensileCmd.Flags().Float64Var(&tensileOmega, "omega", 0, "Safety factor Ω, default from configuration")
}

func runCapacityTensile(cmd *cobra.Command, args []string) {
	if tensileBolts < 1 {
		fmt.Println("Error: number of bolts must be at least 1")
		return
	}
	fu := flagOr(cmd, "fu", tensileFu, cfg.BoltFu)
	omega := flagOr(cmd, "omega", tensileOmega, cfg.ShearSafetyFactor)
	as := flagOr(cmd, "area", tensileArea, capacity.BoltArea(tensileDiameter))
	tr := capacity.BoltTensile(tensileBolts, as, fu, omega)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BOLT TENSILE CAPACITY - AISC 360 (ASD)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Number of bolts (n):\t%d\n", tensileBolts)
	fmt.Fprintf(w, "  Stress area (As):\t%.4f in²\n", as)
	fmt.Fprintf(w, "  Fu:\t%.1f ksi\n", fu)
	fmt.Fprintf(w, "  Ω:\t%.2f\n", omega)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  BOLT TENSION (Tr) = %.2f kip  \n", tr)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
