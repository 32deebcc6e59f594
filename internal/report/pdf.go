package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes the report as an A4 PDF document. The core fonts only
// cover Latin-1, so the PDF uses plain ASCII units.
func WritePDF(w io.Writer, rep Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfTitle(rep), false)
	pdf.SetCreator("gobolt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Bolted Connection Capacity Check")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	if rep.Title != "" {
		pdf.Cell(0, 6, rep.Title)
		pdf.Ln(6)
	}
	cfg := rep.Config
	pdf.Cell(0, 6, fmt.Sprintf("AISC 360 (ASD): Fu = %.1f ksi, Omega = %.2f, gamma_b = %.2f, Omega_bs = %.2f, Ubs = %.2f, e = %.2f in, demand: %s",
		cfg.BoltFu, cfg.ShearSafetyFactor, cfg.BearingSafetyFactor, cfg.BlockShearSafetyFactor, cfg.Ubs, cfg.Eccentricity, cfg.DemandMode))
	pdf.Ln(10)

	summaryTable(pdf, rep)

	for _, e := range rep.Entries {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s  %s", e.ConnectionID, e.Name))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)

		if e.Result == nil {
			pdf.SetTextColor(160, 0, 0)
			pdf.MultiCell(0, 5, "CANNOT EVALUATE: "+errorText(e), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		r := e.Result
		b := r.BoltConfiguration
		lines := []string{
			fmt.Sprintf("Bolts: %d x %d = %d, d = %.3f in (%s), Ab = %.4f in2", b.Rows, b.Columns, r.NBolts, b.Diameter, b.Grade, r.BoltArea),
			fmt.Sprintf("Ply: t = %.3f in, %s (Fy = %.1f ksi, Fu = %.1f ksi)", r.Ply.Thickness, r.Ply.Material.Grade, r.Ply.Material.Fy, r.Ply.Material.Fu),
			fmt.Sprintf("Agv = %.3f in2, Anv = %.3f in2, Ant = %.3f in2", r.Areas.Agv, r.Areas.Anv, r.Areas.Ant),
			fmt.Sprintf("Demand P = %.2f kip (%s)", r.Demand, r.DemandMode),
		}
		for _, l := range lines {
			pdf.Cell(0, 5, l)
			pdf.Ln(5)
		}
		pdf.Ln(2)

		header := []string{"Limit state", "Capacity (kip)", "Utilization", ""}
		widths := []float64{50, 40, 30, 40}
		tableRow(pdf, header, widths, true)
		for _, ch := range r.Checks() {
			note := ""
			switch {
			case ch.Governs:
				note = "governs"
			case ch.Informational:
				note = "reported only"
			}
			tableRow(pdf, []string{ch.LimitState.Label(), fmt.Sprintf("%.2f", ch.Capacity), asciiRatio(ch.Utilization), note}, widths, false)
		}
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Ratio = %s  %s", asciiRatio(r.Ratio), r.Verdict))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}

func summaryTable(pdf *gofpdf.Fpdf, rep Report) {
	widths := []float64{40, 50, 35, 25, 35}
	tableRow(pdf, []string{"Connection", "Name", "Governing", "Ratio", "Status"}, widths, true)
	for _, e := range rep.Entries {
		if e.Result == nil {
			tableRow(pdf, []string{e.ConnectionID, e.Name, "-", "-", StatusCannotEvaluate}, widths, false)
			continue
		}
		r := e.Result
		tableRow(pdf, []string{e.ConnectionID, e.Name, r.Governing.Label(), asciiRatio(r.Ratio), string(r.Verdict)}, widths, false)
	}
}

func tableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, c := range cells {
		pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func pdfTitle(rep Report) string {
	if rep.Title == "" {
		return "Bolted Connection Capacity Check"
	}
	return rep.Title
}

func errorText(e Entry) string {
	if e.Err == nil {
		return "unknown error"
	}
	return strings.ToValidUTF8(e.Err.Error(), "?")
}

func asciiRatio(v float64) string {
	s := formatRatio(v)
	if s == "∞" {
		return "inf"
	}
	return s
}
