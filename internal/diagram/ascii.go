package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gobolt/internal/capacity"
	"github.com/alexiusacademia/gobolt/internal/evaluator"
)

// Bar is one limit state in a capacity chart
type Bar struct {
	Label         string
	Capacity      float64 // kip
	Governs       bool
	Informational bool
}

// ChartData holds data for drawing capacities against the demand
type ChartData struct {
	Title  string
	Demand float64 // kip
	Bars   []Bar
}

// FromResult builds chart data from an evaluation result
func FromResult(r *evaluator.Result) ChartData {
	data := ChartData{
		Title:  fmt.Sprintf("%s (%s)", r.Connection.Name, r.Connection.ID),
		Demand: r.Demand,
	}
	for _, ch := range r.Checks() {
		data.Bars = append(data.Bars, Bar{
			Label:         ch.LimitState.Label(),
			Capacity:      ch.Capacity,
			Governs:       ch.Governs,
			Informational: ch.Informational,
		})
	}
	return data
}

// utilizationWidth is the bar length of a utilization of 1.0
const utilizationWidth = 40

// DrawUtilizationBars creates an ASCII bar per limit state showing demand /
// capacity. The 1.0 mark is drawn as │; bars past it end in ▶.
func DrawUtilizationBars(data ChartData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  UTILIZATION (demand / capacity)\n")
	sb.WriteString("  ───────────────────────────────\n")

	labelWidth := 0
	for _, b := range data.Bars {
		labelWidth = max(labelWidth, utf8.RuneCountInString(b.Label))
	}

	for _, b := range data.Bars {
		u := math.Inf(1)
		if b.Capacity > 0 {
			u = data.Demand / b.Capacity
		}

		filled := utilizationWidth + 1
		if !math.IsInf(u, 1) {
			filled = int(math.Round(u * utilizationWidth))
		}

		var bar string
		switch {
		case filled > utilizationWidth:
			bar = strings.Repeat("█", utilizationWidth) + "▶"
		case filled == utilizationWidth:
			bar = strings.Repeat("█", utilizationWidth) + "│"
		default:
			bar = strings.Repeat("█", filled) + strings.Repeat(" ", utilizationWidth-filled) + "│"
		}

		ratio := "∞"
		if !math.IsInf(u, 1) {
			ratio = fmt.Sprintf("%.3f", u)
		}
		mark := ""
		switch {
		case b.Governs:
			mark = " ◄ governs"
		case b.Informational:
			mark = " (reported only)"
		}
		sb.WriteString(fmt.Sprintf("  %-*s %s %s%s\n", labelWidth, b.Label, bar, ratio, mark))
	}

	sb.WriteString(fmt.Sprintf("  %*s %s1.0\n", labelWidth, "", strings.Repeat(" ", utilizationWidth)))
	return sb.String()
}

// DrawBoltPattern creates a plan view of the bolt pattern on the connected
// ply. The load acts along the columns; the block shear path runs from the
// end edge along the outer row and across to the side edge.
func DrawBoltPattern(g capacity.BlockShearGeometry) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  BOLT PATTERN (%d rows × %d columns)\n", g.Rows, g.Columns))
	sb.WriteString("  ─────────────────────────────────\n")

	if g.Rows <= 0 || g.Columns <= 0 {
		sb.WriteString("  (no bolts)\n")
		return sb.String()
	}

	cols := g.Columns
	inner := cols*4 + 2
	sb.WriteString(fmt.Sprintf("  ┌%s  ◄── P\n", strings.Repeat("─", inner)))
	for i := 0; i < g.Rows; i++ {
		row := "  │ " + strings.Repeat(" ●  ", cols)
		sb.WriteString(strings.TrimRight(row, " ") + "\n")
		if i < g.Rows-1 {
			sb.WriteString("  │\n")
		}
	}
	sb.WriteString(fmt.Sprintf("  └%s\n", strings.Repeat("─", inner)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Row spacing:       %.2f in\n", g.RowSpacing))
	sb.WriteString(fmt.Sprintf("  Column spacing:    %.2f in\n", g.ColumnSpacing))
	sb.WriteString(fmt.Sprintf("  Edge (vertical):   %.2f in\n", g.EdgeVertical))
	sb.WriteString(fmt.Sprintf("  Edge (horizontal): %.2f in\n", g.EdgeHorizontal))
	sb.WriteString(fmt.Sprintf("  Shear plane:       %.2f in\n", g.EdgeHorizontal+float64(g.Columns-1)*g.ColumnSpacing))
	sb.WriteString(fmt.Sprintf("  Tension plane:     %.2f in\n", g.EdgeVertical+float64(g.Rows-1)*g.RowSpacing))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// ResultSummary returns the lines of the summary box for a result
func ResultSummary(r *evaluator.Result) []string {
	ratio := "∞"
	if !r.RatioInfinite() {
		ratio = fmt.Sprintf("%.3f", r.Ratio)
	}
	return []string{
		fmt.Sprintf("Governing:  %s", r.Governing.Label()),
		fmt.Sprintf("Capacity:   %.2f kip", r.GoverningCapacity),
		fmt.Sprintf("Demand:     %.2f kip", r.Demand),
		fmt.Sprintf("Ratio:      %s", ratio),
		fmt.Sprintf("Verdict:    %s", r.Verdict),
	}
}
