package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/capacity"
	"github.com/alexiusacademia/gobolt/internal/diagram"
	"github.com/alexiusacademia/gobolt/internal/model"
)

var (
	blockRows          int
	blockColumns       int
	blockRowSpacing    float64
	blockColumnSpacing float64
	blockEdgeVertical  float64
	blockEdgeHoriz     float64
	blockDiameter      float64
	blockThickness     float64
	blockMaterial      string
	blockUbs           float64
	blockOmega         float64
	blockShowDiagram   bool
	blockExportFile    string
)

var capacityBlockShearCmd = &cobra.Command{
	Use:   "block-shear",
	Short: "Calculate the block shear rupture capacity of a bolt pattern",
	Long: `Calculate the block shear rupture capacity of a bolt pattern on a ply
(AISC 360 Section J4.3):

  Rn = min(0.6·Fu·Anv + Ubs·Fu·Ant, 0.6·Fy·Agv + Ubs·Fu·Ant)
  Ra = Rn / Ω

The shear planes run along the columns to the horizontal edge, the tension
plane across the rows to the vertical edge. Holes are d + 1/8".

Examples:
  gobolt capacity block-shear -t 0.5 --rows 2 --columns 7
  gobolt capacity block-shear -t 0.375 --material A36 --ubs 0.5 --diagram
  gobolt capacity block-shear -t 0.5 -o pattern.svg`,
	Run: runCapacityBlockShear,
}

func init() {
	capacityCmd.AddCommand(capacityBlockShearCmd)

	capacityBlockShearCmd.Flags().IntVar(&blockRows, "rows", model.DefaultRows, "Number of bolt rows")
	capacityBlockShearCmd.Flags().IntVar(&blockColumns, "columns", model.DefaultColumns, "Number of bolt columns")
	capacityBlockShearCmd.Flags().Float64Var(&blockRowSpacing, "row-spacing", model.DefaultRowSpacing, "Spacing between rows (in)")
	capacityBlockShearCmd.Flags().Float64Var(&blockColumnSpacing, "column-spacing", model.DefaultColumnSpacing, "Spacing between columns (in)")
	capacityBlockShearCmd.Flags().Float64Var(&blockEdgeVertical, "edge-vertical", model.DefaultEdgeVertical, "Edge distance at the end of the tension plane (in)")
	capacityBlockShearCmd.Flags().Float64Var(&blockEdgeHoriz, "edge-horizontal", model.DefaultEdgeHorizontal, "Edge distance at the end of the shear planes (in)")
	capacityBlockShearCmd.Flags().Float64VarP(&blockDiameter, "diameter", "d", 0.875, "Bolt diameter (in)")
	capacityBlockShearCmd.Flags().Float64VarP(&blockThickness, "thickness", "t", 0, "Ply thickness (in) [required]")
	capacityBlockShearCmd.Flags().StringVarP(&blockMaterial, "material", "m", aisc.DefaultMaterial, "Ply steel grade (A992, A572_GR50, A36)")
	capacityBlockShearCmd.Flags().Float64Var(&blockUbs, "ubs", 0, "Tension stress factor Ubs (1.0 uniform, 0.5 non-uniform), default from configuration")
	capacityBlockShearCmd.Flags().Float64Var(&blockOmega, "omega", 0, "Safety factor Ω, default from configuration")
	capacityBlockShearCmd.Flags().BoolVar(&blockShowDiagram, "diagram", false, "Show ASCII bolt pattern")
	capacityBlockShearCmd.Flags().StringVarP(&blockExportFile, "output", "o", "", "Export bolt pattern plot to file (png, svg, pdf)")

	capacityBlockShearCmd.MarkFlagRequired("thickness")
}

func runCapacityBlockShear(cmd *cobra.Command, args []string) {
	if blockRows < 1 || blockColumns < 1 {
		fmt.Println("Error: bolt pattern must have at least one row and column")
		return
	}
	if blockThickness <= 0 {
		fmt.Println("Error: ply thickness must be positive")
		return
	}
	mat, ok := aisc.LookupMaterial(blockMaterial)
	if !ok {
		fmt.Printf("Error: unknown material %q\n", blockMaterial)
		return
	}
	ubs := flagOr(cmd, "ubs", blockUbs, cfg.Ubs)
	omega := flagOr(cmd, "omega", blockOmega, cfg.BlockShearSafetyFactor)
	if omega <= 0 {
		fmt.Println("Error: safety factor must be positive")
		return
	}

	g := capacity.BlockShearGeometry{
		Rows:           blockRows,
		Columns:        blockColumns,
		RowSpacing:     blockRowSpacing,
		ColumnSpacing:  blockColumnSpacing,
		EdgeVertical:   blockEdgeVertical,
		EdgeHorizontal: blockEdgeHoriz,
	}
	areas := g.Areas(blockThickness, blockDiameter)
	rn := capacity.BlockShear(mat.Fu, mat.Fy, areas.Anv, areas.Ant, areas.Agv, ubs)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BLOCK SHEAR RUPTURE - AISC 360 (ASD)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pattern:\t%d rows × %d columns\n", blockRows, blockColumns)
	fmt.Fprintf(w, "  Spacing (row / column):\t%.2f / %.2f in\n", blockRowSpacing, blockColumnSpacing)
	fmt.Fprintf(w, "  Edge (vertical / horizontal):\t%.2f / %.2f in\n", blockEdgeVertical, blockEdgeHoriz)
	fmt.Fprintf(w, "  Bolt diameter (d):\t%.3f in\n", blockDiameter)
	fmt.Fprintf(w, "  Ply thickness (t):\t%.3f in\n", blockThickness)
	fmt.Fprintf(w, "  Material:\t%s (Fy = %.1f ksi, Fu = %.1f ksi)\n", mat.Grade, mat.Fy, mat.Fu)
	fmt.Fprintf(w, "  Ubs:\t%.2f\n", ubs)
	fmt.Fprintf(w, "  Ω:\t%.2f\n", omega)
	w.Flush()
	fmt.Println()

	fmt.Println("AREAS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gross shear (Agv):\t%.3f in²\n", areas.Agv)
	fmt.Fprintf(w, "  Net shear (Anv):\t%.3f in²\n", areas.Anv)
	fmt.Fprintf(w, "  Net tension (Ant):\t%.3f in²\n", areas.Ant)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Nominal (Rn): %.2f kip\n", rn)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  BLOCK SHEAR (Rn/Ω) = %.2f kip  \n", rn/omega)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()

	if blockShowDiagram {
		fmt.Println(diagram.DrawBoltPattern(g))
	}

	if blockExportFile != "" {
		if err := diagram.ExportBoltPattern(g, blockDiameter, blockExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", blockExportFile)
		}
	}
}
