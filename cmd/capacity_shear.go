package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/capacity"
)

var (
	shearBolts    int
	shearDiameter float64
	shearFu       float64
	shearOmega    float64
)

var capacityShearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Calculate the bolt shear capacity of a bolt group",
	Long: `Calculate the allowable bolt shear capacity:

  Vr = n × 0.6 × Fu × (π·d²/4) / Ω

Examples:
  # 14 bolts of 7/8"
  gobolt capacity shear --bolts 14 -d 0.875

  # Different ultimate strength and safety factor
  gobolt capacity shear --bolts 4 -d 0.75 --fu 90 --omega 2.0`,
	Run: runCapacityShear,
}

func init() {
	capacityCmd.AddCommand(capacityShearCmd)

	capacityShearCmd.Flags().IntVarP(&shearBolts, "bolts", "n", 1, "Number of bolts")
	capacityShearCmd.Flags().Float64VarP(&shearDiameter, "diameter", "d", 0.875, "Bolt diameter (in)")
	capacityShearCmd.Flags().Float64Var(&shearFu, "fu", 0, "Bolt ultimate strength (ksi), default from configuration")
	capacityShearCmd.Flags().Float64Var(&shearOmega, "omega", 0, "Safety factor Ω, default from configuration")
}

func runCapacityShear(cmd *cobra.Command, args []string) {
	if shearBolts < 1 {
		fmt.Println("Error: number of bolts must be at least 1")
		return
	}
	fu := flagOr(cmd, "fu", shearFu, cfg.BoltFu)
	omega := flagOr(cmd, "omega", shearOmega, cfg.ShearSafetyFactor)
	area := capacity.BoltArea(shearDiameter)
	vr := capacity.BoltShear(shearBolts, shearDiameter, fu, omega)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BOLT SHEAR CAPACITY - AISC 360 (ASD)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Number of bolts (n):\t%d\n", shearBolts)
	fmt.Fprintf(w, "  Bolt diameter (d):\t%.3f in\n", shearDiameter)
	fmt.Fprintf(w, "  Bolt area (Ab):\t%.4f in²\n", area)
	fmt.Fprintf(w, "  Fu:\t%.1f ksi\n", fu)
	fmt.Fprintf(w, "  Ω:\t%.2f\n", omega)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Per bolt: %.2f kip\n", vr/float64(shearBolts))
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  BOLT SHEAR (Vr) = %.2f kip  \n", vr)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
