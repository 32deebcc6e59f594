package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/model"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// WriteText writes the human-readable report
func WriteText(w io.Writer, rep Report) error {
	p := &printer{w: w}

	p.line("")
	p.line(heavyRule)
	p.line("     BOLTED CONNECTION CAPACITY CHECK - AISC 360 (ASD)")
	p.line(heavyRule)
	if rep.Title != "" {
		p.line("  " + rep.Title)
	}
	p.line("")

	for _, e := range rep.Entries {
		if e.Result == nil {
			p.failure(e)
			continue
		}
		p.result(e.Result)
	}

	p.summary(rep)
	return p.err
}

// printer remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(title string) {
	p.line(title)
	p.line(lightRule)
}

func (p *printer) table(rows [][]string) {
	if p.err != nil {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "  %s\n", strings.Join(row, "\t"))
	}
	p.err = tw.Flush()
}

func (p *printer) failure(e Entry) {
	p.heading("CONNECTION: " + e.ConnectionID)
	p.line("  CANNOT EVALUATE")
	if e.Err != nil {
		p.printf("  %v\n", e.Err)
	}
	p.line("")
}

func (p *printer) result(r *evaluator.Result) {
	c := r.Connection
	b := r.BoltConfiguration

	p.heading(fmt.Sprintf("CONNECTION: %s (%s)", c.Name, c.ID))
	p.table([][]string{
		{"Member A:", describeMember(c.MemberA, c.ComponentA)},
		{"Member B:", describeMember(c.MemberB, c.ComponentB)},
		{"Bolt configuration:", fmt.Sprintf("%s (%s)", b.Name, b.ID)},
		{"Load case:", fmt.Sprintf("%s (%s)", r.GlobalLoads.Name, r.GlobalLoads.ID)},
	})
	p.line("")

	p.heading("BOLT GROUP:")
	p.table([][]string{
		{"Pattern:", fmt.Sprintf("%d rows × %d columns = %d bolts", b.Rows, b.Columns, r.NBolts)},
		{"Diameter (d):", fmt.Sprintf("%.3f in (%s)", b.Diameter, b.Grade)},
		{"Bolt area (Ab):", fmt.Sprintf("%.4f in²", r.BoltArea)},
		{"Fu:", fmt.Sprintf("%.1f ksi", r.BoltFu)},
	})
	p.line("")

	p.heading("CONNECTED PLY:")
	ply := "none (thickness unknown)"
	if r.Ply.Member != "" {
		ply = fmt.Sprintf("Member %s (%s)", r.Ply.Member, r.Ply.Component)
	}
	p.table([][]string{
		{"Governing ply:", ply},
		{"Thickness (t):", fmt.Sprintf("%.3f in", r.Ply.Thickness)},
		{"Material:", fmt.Sprintf("%s (Fy = %.1f ksi, Fu = %.1f ksi)", r.Ply.Material.Grade, r.Ply.Material.Fy, r.Ply.Material.Fu)},
		{"Agv / Anv / Ant:", fmt.Sprintf("%.3f / %.3f / %.3f in²", r.Areas.Agv, r.Areas.Anv, r.Areas.Ant)},
	})
	p.line("")

	p.heading("CAPACITIES:")
	rows := [][]string{{"Limit state", "Capacity", "Utilization", ""}}
	for _, ch := range r.Checks() {
		note := ""
		switch {
		case ch.Governs:
			note = "◄ governs"
		case ch.Informational:
			note = "(reported only)"
		}
		rows = append(rows, []string{ch.LimitState.Label(), fmt.Sprintf("%.2f kip", ch.Capacity), formatRatio(ch.Utilization), note})
	}
	p.table(rows)
	p.line("")

	p.heading("DEMAND:")
	p.table([][]string{
		{"Mode:", r.DemandMode},
		{"Applied demand (P):", fmt.Sprintf("%.2f kip", r.Demand)},
	})
	p.line("")

	p.line("  ╔═════════════════════════════════════════╗")
	p.printf("  ║  RATIO = %-8s %-6s\n", formatRatio(r.Ratio), r.Verdict)
	p.line("  ╚═════════════════════════════════════════╝")
	p.line("")

	p.heading("STATUS:")
	p.printf("  %s\n", r.Message)
	p.line("")
}

func (p *printer) summary(rep Report) {
	if len(rep.Entries) == 0 {
		p.line("  No connections to evaluate.")
		p.line("")
		return
	}
	p.heading("SUMMARY:")
	rows := [][]string{{"Connection", "Governing", "Ratio", "Status"}}
	for _, e := range rep.Entries {
		if e.Result == nil {
			rows = append(rows, []string{e.ConnectionID, "-", "-", StatusCannotEvaluate + " (" + e.ErrorCode() + ")"})
			continue
		}
		r := e.Result
		rows = append(rows, []string{e.ConnectionID, r.Governing.Label(), formatRatio(r.Ratio), string(r.Verdict)})
	}
	p.table(rows)
	safe, unsafe, failed := rep.Counts()
	p.printf("\n  %d safe, %d unsafe, %d not evaluated\n\n", safe, unsafe, failed)
}

func describeMember(m model.Member, c model.Component) string {
	switch s := m.Shape.(type) {
	case model.SteelSection:
		return fmt.Sprintf("%s (%s %s, %s)", m.Name, s.SectionName, strings.ToLower(string(s.Role)), c)
	case model.Plate:
		return fmt.Sprintf("%s (plate %.3f × %.2f in, %s)", m.Name, s.Thickness, s.Width, c)
	}
	return m.Name
}

func formatRatio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3f", v)
}
