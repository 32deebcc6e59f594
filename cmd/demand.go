package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/loads"
)

var (
	// Load vector (kip, kip-in)
	demandFx, demandFy, demandFz float64
	demandMx, demandMy, demandMz float64
	demandDirect                 float64
	demandEccentricity           float64

	// Unfactored direct loads (kip)
	demandDead       float64
	demandLive       float64
	demandRoof       float64
	demandWind       float64
	demandEarthquake float64
	demandRain       float64

	demandShowAll bool
	demandLegacy  bool
)

var demandCmd = &cobra.Command{
	Use:   "demand",
	Short: "Reduce a load case to the demand on a bolt group",
	Long: `Calculate the demand on a bolt group from a load case:

  P = √(Fx² + Fy² + Fz²) + √(Mx² + My² + Mz²) / e + P_direct

When unfactored direct loads are given by load type, the governing
ASCE 7-16 ASD combination (Section 2.4.1) is used as P_direct.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Force and moment resultants
  gobolt demand --fx 18 --fy 24 --mz 120 -e 4

  # Direct load from ASD combinations
  gobolt demand --dead 50 --live 30 --wind 20 --all`,
	Run: runDemand,
}

func init() {
	rootCmd.AddCommand(demandCmd)

	demandCmd.Flags().Float64Var(&demandFx, "fx", 0, "Force Fx (kip)")
	demandCmd.Flags().Float64Var(&demandFy, "fy", 0, "Force Fy (kip)")
	demandCmd.Flags().Float64Var(&demandFz, "fz", 0, "Force Fz (kip)")
	demandCmd.Flags().Float64Var(&demandMx, "mx", 0, "Moment Mx (kip-in)")
	demandCmd.Flags().Float64Var(&demandMy, "my", 0, "Moment My (kip-in)")
	demandCmd.Flags().Float64Var(&demandMz, "mz", 0, "Moment Mz (kip-in)")
	demandCmd.Flags().Float64VarP(&demandDirect, "direct", "p", 0, "Direct load (kip)")
	demandCmd.Flags().Float64VarP(&demandEccentricity, "eccentricity", "e", 0, "Eccentricity for the moment resultant (in), default from configuration")

	demandCmd.Flags().Float64Var(&demandDead, "dead", 0, "Direct load due to dead load (kip)")
	demandCmd.Flags().Float64Var(&demandLive, "live", 0, "Direct load due to live load (kip)")
	demandCmd.Flags().Float64Var(&demandRoof, "roof", 0, "Direct load due to roof live load (kip)")
	demandCmd.Flags().Float64Var(&demandWind, "wind", 0, "Direct load due to wind load (kip)")
	demandCmd.Flags().Float64Var(&demandEarthquake, "earthquake", 0, "Direct load due to earthquake load (kip)")
	demandCmd.Flags().Float64Var(&demandRain, "rain", 0, "Direct load due to rain load (kip)")

	demandCmd.Flags().BoolVarP(&demandShowAll, "all", "a", false, "Show all load combination results")
	demandCmd.Flags().BoolVar(&demandLegacy, "legacy-demand", false, "Use the direct load alone as the demand")
}

func runDemand(cmd *cobra.Command, args []string) {
	components := loads.Components{
		Dead:       demandDead,
		Live:       demandLive,
		Roof:       demandRoof,
		Wind:       demandWind,
		Earthquake: demandEarthquake,
		Rain:       demandRain,
	}
	useCombinations := components != (loads.Components{})
	if useCombinations && cmd.Flags().Changed("direct") {
		fmt.Println("Error: give either --direct or loads by type, not both.")
		return
	}

	v := loads.Vector{Fx: demandFx, Fy: demandFy, Fz: demandFz, Mx: demandMx, My: demandMy, Mz: demandMz}
	e := loads.EffectiveEccentricity(flagOr(cmd, "eccentricity", demandEccentricity, cfg.Eccentricity))
	mode := loads.ModeResultant
	if demandLegacy {
		mode = loads.ModeDirect
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BOLT GROUP DEMAND - AISC 360 (ASD)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("LOAD VECTOR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Forces (Fx, Fy, Fz):\t%.2f, %.2f, %.2f kip\n", v.Fx, v.Fy, v.Fz)
	fmt.Fprintf(w, "  Moments (Mx, My, Mz):\t%.2f, %.2f, %.2f kip-in\n", v.Mx, v.My, v.Mz)
	fmt.Fprintf(w, "  Eccentricity (e):\t%.2f in\n", e)
	w.Flush()
	fmt.Println()

	direct := demandDirect
	if useCombinations {
		var governing loads.Combination
		direct, governing = loads.Governing(components, loads.ASDCombinations)

		if demandShowAll {
			fmt.Println("LOAD COMBINATIONS (ASCE 7-16 Section 2.4.1):")
			fmt.Println("───────────────────────────────────────────────────────────────")
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  #\tCombination\tP (kip)\n")
			fmt.Fprintf(w, "  ─\t───────────\t───────\n")
			for _, combo := range loads.ASDCombinations {
				marker := ""
				if combo.ID == governing.ID {
					marker = " ← GOVERNS"
				}
				fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(components), marker)
			}
			w.Flush()
			fmt.Println()
		}

		fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
		fmt.Println()
	}

	p := loads.Demand(mode, v, direct, e)

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mode:\t%s\n", mode)
	fmt.Fprintf(w, "  Direct load:\t%.2f kip\n", direct)
	w.Flush()
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  DEMAND (P) = %.2f kip  \n", p)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
