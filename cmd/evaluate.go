package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobolt/internal/diagram"
	"github.com/alexiusacademia/gobolt/internal/loads"
	"github.com/alexiusacademia/gobolt/internal/project"
	"github.com/alexiusacademia/gobolt/internal/report"
	"github.com/alexiusacademia/gobolt/internal/store"
)

var (
	evaluateFile        string
	evaluateConnections []string
	evaluateFormat      string
	evaluatePDF         string
	evaluateXLSX        string
	evaluateChart       string
	evaluatePatternPlot string
	evaluateDiagram     bool
	evaluateStrict      bool
	evaluateLegacy      bool

	notices io.Writer = os.Stdout
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the connections of a project file",
	Long: `Evaluate bolted connections described in a project file (YAML or JSON).

The file lists members, bolt configurations, load cases and connections.
Entries are given keys and connections refer to the other entries by key.

Each connection is checked for bolt shear, block shear and bearing on the
thinner connected ply. The smallest capacity governs and the demand from
the load case is compared against it:

  P = √(Fx² + Fy² + Fz²) + √(Mx² + My² + Mz²) / e + P_direct

Connections whose bolt configuration or load case cannot be resolved are
reported as CANNOT EVALUATE, separately from UNSAFE connections.

Examples:
  # Evaluate every connection
  gobolt evaluate -f model.yaml

  # One connection, by key, with diagrams
  gobolt evaluate -f model.yaml -c splice --diagram

  # JSON report plus PDF and Excel copies
  gobolt evaluate -f model.yaml --format json --pdf report.pdf --xlsx report.xlsx

  # Capacity chart of a connection
  gobolt evaluate -f model.yaml -c splice -o splice.png`,
	Run: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVarP(&evaluateFile, "file", "f", "", "Path to project file (.yaml, .yml, .json) [required]")
	evaluateCmd.Flags().StringSliceVarP(&evaluateConnections, "connection", "c", nil, "Connection key or id to evaluate (repeatable, default all)")
	evaluateCmd.Flags().StringVar(&evaluateFormat, "format", "text", "Report format: text or json")
	evaluateCmd.Flags().StringVar(&evaluatePDF, "pdf", "", "Also write the report as PDF")
	evaluateCmd.Flags().StringVar(&evaluateXLSX, "xlsx", "", "Also write the results as an Excel workbook")
	evaluateCmd.Flags().StringVarP(&evaluateChart, "output", "o", "", "Export capacity chart to file (png, svg, pdf)")
	evaluateCmd.Flags().StringVar(&evaluatePatternPlot, "pattern-plot", "", "Export bolt pattern plot to file (png, svg, pdf)")
	evaluateCmd.Flags().BoolVar(&evaluateDiagram, "diagram", false, "Show ASCII utilization and bolt pattern diagrams")
	evaluateCmd.Flags().BoolVar(&evaluateStrict, "strict", false, "Reject numeric fields that do not parse instead of using defaults")
	evaluateCmd.Flags().BoolVar(&evaluateLegacy, "legacy-demand", false, "Use the direct load alone as the demand")

	evaluateCmd.MarkFlagRequired("file")
}

func runEvaluate(cmd *cobra.Command, args []string) {
	format := strings.ToLower(evaluateFormat)
	if format != "text" && format != "json" {
		fmt.Printf("Error: unknown format %q (use text or json)\n", evaluateFormat)
		return
	}

	doc, err := project.Load(evaluateFile)
	if err != nil {
		fmt.Printf("Error loading project: %v\n", err)
		return
	}

	ecfg := cfg.Evaluator()
	if evaluateLegacy {
		ecfg.DemandMode = loads.ModeDirect
	}

	sess, err := project.Open(doc, ecfg, project.SessionOptions{
		Strict:      evaluateStrict,
		IDGenerator: store.GeneratorFor(cfg.IDScheme),
		Logger:      logger,
	})
	if err != nil {
		fmt.Printf("Error applying project: %v\n", err)
		return
	}

	rep := sess.Report(evaluateConnections...)
	if rep.Title == "" {
		rep.Title = filepath.Base(evaluateFile)
	}

	// Keep stdout clean for the JSON document
	notices = os.Stdout
	if format == "json" {
		notices = os.Stderr
		err = report.WriteJSON(os.Stdout, rep)
	} else {
		err = report.WriteText(os.Stdout, rep)
	}
	if err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}

	if evaluateDiagram {
		printDiagrams(rep)
	}

	if evaluatePDF != "" {
		exportFile(evaluatePDF, "PDF report", func(w io.Writer) error { return report.WritePDF(w, rep) })
	}
	if evaluateXLSX != "" {
		exportFile(evaluateXLSX, "Excel workbook", func(w io.Writer) error { return report.WriteXLSX(w, rep) })
	}
	if evaluateChart != "" || evaluatePatternPlot != "" {
		exportPlots(rep)
	}
}

func printDiagrams(rep report.Report) {
	for _, e := range rep.Entries {
		if e.Result == nil {
			continue
		}
		r := e.Result
		fmt.Fprintf(notices, "DIAGRAMS: %s (%s)\n", r.Connection.Name, r.Connection.ID)
		fmt.Fprintln(notices, "───────────────────────────────────────────────────────────────")
		fmt.Fprint(notices, diagram.DrawUtilizationBars(diagram.FromResult(r)))
		fmt.Fprint(notices, diagram.DrawBoltPattern(r.BoltConfiguration.Geometry()))
		fmt.Fprintln(notices)
		fmt.Fprint(notices, diagram.DrawSummaryBox("RESULT", diagram.ResultSummary(r)))
		fmt.Fprintln(notices)
	}
}

// exportPlots writes one chart per evaluated connection. With more than
// one connection the id is added to the file name.
func exportPlots(rep report.Report) {
	var n int
	for _, e := range rep.Entries {
		if e.Result != nil {
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(notices, "Error exporting diagram: no connection could be evaluated")
		return
	}

	for _, e := range rep.Entries {
		r := e.Result
		if r == nil {
			continue
		}
		if evaluateChart != "" {
			name := plotName(evaluateChart, r.Connection.ID, n)
			if err := diagram.ExportCapacityChart(diagram.FromResult(r), name); err != nil {
				fmt.Fprintf(notices, "Error exporting diagram: %v\n", err)
			} else {
				fmt.Fprintf(notices, "Diagram exported to: %s\n", name)
			}
		}
		if evaluatePatternPlot != "" {
			name := plotName(evaluatePatternPlot, r.Connection.ID, n)
			b := r.BoltConfiguration
			if err := diagram.ExportBoltPattern(b.Geometry(), b.Diameter, name); err != nil {
				fmt.Fprintf(notices, "Error exporting diagram: %v\n", err)
			} else {
				fmt.Fprintf(notices, "Diagram exported to: %s\n", name)
			}
		}
	}
}

func plotName(filename, id string, count int) string {
	if count <= 1 {
		return filename
	}
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "-" + id + ext
}

func exportFile(path, what string, write func(io.Writer) error) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(notices, "Error exporting %s: %v\n", what, err)
		return
	}
	if err := write(f); err != nil {
		f.Close()
		fmt.Fprintf(notices, "Error exporting %s: %v\n", what, err)
		return
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(notices, "Error exporting %s: %v\n", what, err)
		return
	}
	fmt.Fprintf(notices, "%s exported to: %s\n", what, path)
}
