package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobolt/internal/capacity"
)

var (
	barColor       = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	governingColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	demandColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	boltColor      = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportCapacityChart exports a bar chart of the capacities with the demand
// drawn across it. The format follows the file extension (.png, .svg, .pdf);
// other names get .png appended.
func ExportCapacityChart(data ChartData, filename string) error {
	if len(data.Bars) == 0 {
		return fmt.Errorf("no capacities to chart")
	}

	p := plot.New()
	p.Title.Text = "Capacity vs Demand"
	if data.Title != "" {
		p.Title.Text += ": " + data.Title
	}
	p.Y.Label.Text = "Force (kip)"
	p.Y.Min = 0

	values := make(plotter.Values, len(data.Bars))
	labels := make([]string, len(data.Bars))
	for i, b := range data.Bars {
		values[i] = b.Capacity
		labels[i] = b.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)
	p.NominalX(labels...)

	// Overlay the governing bar in a darker shade
	for i, b := range data.Bars {
		if !b.Governs {
			continue
		}
		only := make(plotter.Values, len(data.Bars))
		only[i] = b.Capacity
		gov, err := plotter.NewBarChart(only, vg.Points(40))
		if err != nil {
			return err
		}
		gov.Color = governingColor
		p.Add(gov)
		p.Legend.Add("governing", gov)
	}

	demand, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: data.Demand},
		{X: float64(len(data.Bars)) - 0.5, Y: data.Demand},
	})
	if err != nil {
		return err
	}
	demand.LineStyle.Width = vg.Points(1.5)
	demand.LineStyle.Color = demandColor
	demand.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(demand)
	p.Legend.Add(fmt.Sprintf("demand %.1f kip", data.Demand), demand)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportBoltPattern exports a plan view of the bolt pattern with the block
// shear failure path
func ExportBoltPattern(g capacity.BlockShearGeometry, diameter float64, filename string) error {
	if g.Rows <= 0 || g.Columns <= 0 {
		return fmt.Errorf("bolt pattern has no bolts")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bolt Pattern %d × %d", g.Rows, g.Columns)
	p.X.Label.Text = "Along load (in)"
	p.Y.Label.Text = "Across load (in)"

	pts := make(plotter.XYs, 0, g.Rows*g.Columns)
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Columns; j++ {
			pts = append(pts, plotter.XY{
				X: g.EdgeHorizontal + float64(j)*g.ColumnSpacing,
				Y: g.EdgeVertical + float64(i)*g.RowSpacing,
			})
		}
	}
	bolts, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	bolts.GlyphStyle.Color = boltColor
	bolts.GlyphStyle.Radius = vg.Points(4)
	bolts.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bolts)
	p.Legend.Add(fmt.Sprintf("bolts d = %.3f in", diameter), bolts)

	// Shear plane along the outer row, then tension plane to the side edge
	xLast := g.EdgeHorizontal + float64(g.Columns-1)*g.ColumnSpacing
	yLast := g.EdgeVertical + float64(g.Rows-1)*g.RowSpacing
	path, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: yLast},
		{X: xLast, Y: yLast},
		{X: xLast, Y: 0},
	})
	if err != nil {
		return err
	}
	path.LineStyle.Width = vg.Points(1.5)
	path.LineStyle.Color = demandColor
	path.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(path)
	p.Legend.Add("block shear path", path)

	p.X.Min, p.Y.Min = 0, 0
	p.X.Max = xLast + g.EdgeHorizontal
	p.Y.Max = yLast + g.EdgeVertical

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
