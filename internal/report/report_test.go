package report

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/model"
	"github.com/alexiusacademia/gobolt/internal/store"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// sampleReport evaluates the reference splice, a connection whose load case
// was removed and a connection the store refused
func sampleReport(t *testing.T) Report {
	t.Helper()
	s := store.New(store.WithLogger(quiet))

	a := s.AddMember(model.Member{
		Shape:    model.SteelSection{SectionClass: "W_shapes", SectionName: "W21X83", ShapeType: "W", Role: model.RoleBeam},
		Material: aisc.DefaultMaterial,
	})
	b := s.AddMember(model.Member{Shape: model.Plate{Thickness: 0.5, Width: 10}, Material: aisc.DefaultMaterial})
	bc := s.AddBoltConfiguration(model.BoltConfiguration{
		RowSpacing: 3, ColumnSpacing: 3, Rows: 2, Columns: 7,
		EdgeVertical: 2, EdgeHorizontal: 1.5,
		Diameter: 0.875, Grade: aisc.A325X, ConnectionType: model.ConnectionTypeBolted,
	})
	gl := s.AddGlobalLoads(model.GlobalLoads{DirectLoad: 150})
	gone := s.AddGlobalLoads(model.GlobalLoads{DirectLoad: 10})

	_, err := s.AddConnection(model.ConnectionSpec{MemberAID: a, MemberBID: b, BoltConfigurationID: bc, GlobalLoadsID: gl})
	require.NoError(t, err)
	_, err = s.AddConnection(model.ConnectionSpec{MemberAID: a, MemberBID: b, BoltConfigurationID: bc, GlobalLoadsID: gone})
	require.NoError(t, err)
	s.RemoveGlobalLoads(gone)

	_, rejected := s.AddConnection(model.ConnectionSpec{MemberAID: "ghost", MemberBID: b, BoltConfigurationID: bc, GlobalLoadsID: gl})
	require.Error(t, rejected)

	ev := evaluator.New(s, evaluator.Defaults(), evaluator.WithLogger(quiet))
	rep := New("Beam to plate splice", ev.Config(), ev.EvaluateAll(s))
	rep.Add("orphan", nil, rejected)
	return rep
}

func TestWriteJSON_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "end_to_end", buf.Bytes())
}

func TestWriteJSON_InfiniteRatio(t *testing.T) {
	r := &evaluator.Result{Ratio: math.Inf(1), Verdict: evaluator.Unsafe, Governing: evaluator.LimitBlockShear}
	rep := Report{Config: evaluator.Defaults()}
	rep.Add("connection-1", r, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	result := doc["connections"].([]any)[0].(map[string]any)["result"].(map[string]any)
	assert.Nil(t, result["ratio"])
	assert.Equal(t, true, result["ratio_infinite"])
	assert.Equal(t, "UNSAFE", result["verdict"])
}

func TestEntry_Status(t *testing.T) {
	rep := sampleReport(t)
	require.Len(t, rep.Entries, 3)

	assert.Equal(t, StatusSafe, rep.Entries[0].Status())
	assert.Equal(t, StatusCannotEvaluate, rep.Entries[1].Status())
	assert.Equal(t, "UNRESOLVED_GLOBAL_LOADS", rep.Entries[1].ErrorCode())
	assert.Equal(t, "MISSING_MEMBER_A", rep.Entries[2].ErrorCode())

	safe, unsafe, failed := rep.Counts()
	assert.Equal(t, []int{1, 0, 2}, []int{safe, unsafe, failed})
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "BOLTED CONNECTION CAPACITY CHECK")
	assert.Contains(t, out, "CONNECTION: Connection 1 (connection-1)")
	assert.Contains(t, out, "2 rows × 7 columns = 14 bolts")
	assert.Contains(t, out, "164.16 kip")
	assert.Contains(t, out, "Block shear")
	assert.Contains(t, out, "955.50 kip")
	assert.Contains(t, out, "◄ governs")
	assert.Contains(t, out, "RATIO = 0.914")
	assert.Contains(t, out, "Bolt shear governs: demand 150.00 kip ≤ capacity 164.16 kip")

	// resolution failures are not verdicts
	assert.Contains(t, out, "CONNECTION: connection-2\n")
	assert.Contains(t, out, "CANNOT EVALUATE (UNRESOLVED_GLOBAL_LOADS)")
	assert.Contains(t, out, "CANNOT EVALUATE (MISSING_MEMBER_A)")
	assert.NotContains(t, out, "UNSAFE")
	assert.Contains(t, out, "1 safe, 0 unsafe, 2 not evaluated")
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Report{}))
	assert.Contains(t, buf.String(), "No connections to evaluate.")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleReport(t)))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Connection", rows[0][0])
	assert.Equal(t, []string{"connection-1", "Connection 1", "SAFE", "Bolt shear"}, rows[1][:4])
	assert.Equal(t, "CANNOT EVALUATE", rows[2][2])
	assert.Contains(t, rows[3][len(rows[3])-1], "MISSING_MEMBER_A")

	settings, err := f.GetRows(SheetSettings)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bolt Fu (ksi)", "65"}, settings[1])
}
