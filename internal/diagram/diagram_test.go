package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobolt/internal/capacity"
)

func sample() ChartData {
	return ChartData{
		Title:  "Connection 1 (connection-1)",
		Demand: 150,
		Bars: []Bar{
			{Label: "Bolt shear", Capacity: 164.16, Governs: true},
			{Label: "Block shear", Capacity: 183.625},
			{Label: "Bearing", Capacity: 955.5},
			{Label: "Bolt tension", Capacity: 205.2, Informational: true},
		},
	}
}

var pattern = capacity.BlockShearGeometry{
	Rows: 2, Columns: 7, RowSpacing: 3, ColumnSpacing: 3, EdgeVertical: 2, EdgeHorizontal: 1.5,
}

func TestDrawUtilizationBars(t *testing.T) {
	out := DrawUtilizationBars(sample())
	assert.Contains(t, out, "Bolt shear")
	assert.Contains(t, out, "0.914 ◄ governs")
	assert.Contains(t, out, "(reported only)")
	assert.NotContains(t, out, "▶")

	over := sample()
	over.Demand = 400
	assert.Contains(t, DrawUtilizationBars(over), "▶")

	zero := ChartData{Demand: 10, Bars: []Bar{{Label: "Bearing", Capacity: 0}}}
	assert.Contains(t, DrawUtilizationBars(zero), "▶ ∞")
}

func TestDrawBoltPattern(t *testing.T) {
	out := DrawBoltPattern(pattern)
	assert.Contains(t, out, "2 rows × 7 columns")
	assert.Equal(t, 14, strings.Count(out, "●"))
	assert.Contains(t, out, "Shear plane:       19.50 in")
	assert.Contains(t, out, "Tension plane:     5.00 in")

	assert.Contains(t, DrawBoltPattern(capacity.BlockShearGeometry{}), "(no bolts)")
}

func TestDrawSummaryBox_Aligned(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Ratio: 0.914", "Verdict: SAFE ✓"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestExportCapacityChart(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "chart.png")
	require.NoError(t, ExportCapacityChart(sample(), png))
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	noExt := filepath.Join(dir, "nested", "chart")
	require.NoError(t, ExportCapacityChart(sample(), noExt))
	_, err = os.Stat(noExt + ".png")
	assert.NoError(t, err)

	assert.Error(t, ExportCapacityChart(ChartData{}, filepath.Join(dir, "empty.png")))
}

func TestExportBoltPattern(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "pattern.svg")
	require.NoError(t, ExportBoltPattern(pattern, 0.875, svg))

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	assert.Error(t, ExportBoltPattern(capacity.BlockShearGeometry{}, 0.875, svg))
}
