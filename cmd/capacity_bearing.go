package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/capacity"
)

var (
	bearingBolts     int
	bearingDiameter  float64
	bearingThickness float64
	bearingMaterial  string
	bearingFu        float64
	bearingGamma     float64
)

var capacityBearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Calculate the bolt bearing capacity on a ply",
	Long: `Calculate the allowable bearing capacity of bolts on a ply:

  Br = 3.0 × d × t × Fu / γb     per bolt

Fu is the ultimate strength of the ply material unless given directly.

Examples:
  gobolt capacity bearing -d 0.875 -t 0.5 --bolts 14
  gobolt capacity bearing -d 0.75 -t 0.375 --material A36`,
	Run: runCapacityBearing,
}

func init() {
	capacityCmd.AddCommand(capacityBearingCmd)

	capacityBearingCmd.Flags().IntVarP(&bearingBolts, "bolts", "n", 1, "Number of bolts")
	capacityBearingCmd.Flags().Float64VarP(&bearingDiameter, "diameter", "d", 0.875, "Bolt diameter (in)")
	capacityBearingCmd.Flags().Float64VarP(&bearingThickness, "thickness", "t", 0, "Ply thickness (in) [required]")
	capacityBearingCmd.Flags().StringVarP(&bearingMaterial, "material", "m", aisc.DefaultMaterial, "Ply steel grade (A992, A572_GR50, A36)")
	capacityBearingCmd.Flags().Float64Var(&bearingFu, "fu", 0, "Ply ultimate strength (ksi), overrides the material")
	capacityBearingCmd.Flags().Float64Var(&bearingGamma, "gamma", 0, "Bearing factor γb, default from configuration")

	capacityBearingCmd.MarkFlagRequired("thickness")
}

func runCapacityBearing(cmd *cobra.Command, args []string) {
	if bearingBolts < 1 {
		fmt.Println("Error: number of bolts must be at least 1")
		return
	}
	if bearingThickness <= 0 {
		fmt.Println("Error: ply thickness must be positive")
		return
	}
	mat, ok := aisc.LookupMaterial(bearingMaterial)
	if !ok {
		fmt.Printf("Error: unknown material %q\n", bearingMaterial)
		return
	}
	fu := flagOr(cmd, "fu", bearingFu, mat.Fu)
	gamma := flagOr(cmd, "gamma", bearingGamma, cfg.BearingSafetyFactor)
	perBolt := capacity.Bearing(bearingDiameter, bearingThickness, fu, gamma)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BOLT BEARING CAPACITY - AISC 360 (ASD)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Number of bolts (n):\t%d\n", bearingBolts)
	fmt.Fprintf(w, "  Bolt diameter (d):\t%.3f in\n", bearingDiameter)
	fmt.Fprintf(w, "  Ply thickness (t):\t%.3f in\n", bearingThickness)
	fmt.Fprintf(w, "  Material:\t%s\n", mat.Grade)
	fmt.Fprintf(w, "  Fu:\t%.1f ksi\n", fu)
	fmt.Fprintf(w, "  γb:\t%.2f\n", gamma)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Per bolt: %.2f kip\n", perBolt)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  BEARING (Br) = %.2f kip  \n", perBolt*float64(bearingBolts))
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
