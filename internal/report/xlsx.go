package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook
const (
	SheetSummary  = "Summary"
	SheetSettings = "Settings"
)

var summaryHeader = []any{
	"Connection", "Name", "Status", "Governing", "Ratio",
	"Demand (kip)", "Bolt shear (kip)", "Block shear (kip)", "Bearing (kip)", "Bolt tension (kip)",
	"Bolts", "Ply t (in)", "Ply material", "Error",
}

// WriteXLSX writes the report as a workbook with one row per connection
func WriteXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetSummary, "A1", &summaryHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(summaryHeader), 1)
	if err := f.SetCellStyle(SheetSummary, "A1", last, bold); err != nil {
		return err
	}

	for i, e := range rep.Entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{e.ConnectionID, e.Name, e.Status()}
		if r := e.Result; r != nil {
			var ratio any = r.Ratio
			if r.RatioInfinite() {
				ratio = "inf"
			}
			row = append(row, r.Governing.Label(), ratio,
				r.Demand, r.BoltShear, r.BlockShear, r.Bearing, r.BoltTensile,
				r.NBolts, r.Ply.Thickness, r.Ply.Material.Grade, "")
		} else {
			row = append(row, "", "", "", "", "", "", "", "", "", "", e.Err.Error())
		}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetSummary, "A", "N", 16); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSettings); err != nil {
		return err
	}
	cfg := rep.Config
	settings := [][]any{
		{"Setting", "Value"},
		{"Bolt Fu (ksi)", cfg.BoltFu},
		{"Shear safety factor", cfg.ShearSafetyFactor},
		{"Bearing safety factor", cfg.BearingSafetyFactor},
		{"Block shear safety factor", cfg.BlockShearSafetyFactor},
		{"Ubs", cfg.Ubs},
		{"Eccentricity (in)", cfg.Eccentricity},
		{"Demand mode", string(cfg.DemandMode)},
	}
	for i, row := range settings {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSettings, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetSettings, "A", "A", 28); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
