package evaluator

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobolt/internal/loads"
	"github.com/alexiusacademia/gobolt/internal/model"
	"github.com/alexiusacademia/gobolt/internal/store"
)

const tol = 1e-9

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	store *store.Store
	eval  *Evaluator
	a, b  string
	bolts string
	loads string
}

// newFixture builds the reference model: a W21X83 beam bolted to a 1/2"
// plate with 2×7 7/8" A325-X bolts carrying a 150 kip direct load
func newFixture(t *testing.T, plate model.MemberInput, lc model.GlobalLoadsInput) *fixture {
	t.Helper()
	s := store.New(store.WithLogger(quiet))

	beam, err := model.MemberInput{Kind: "steel-section", SectionName: "W21X83"}.Build(true)
	require.NoError(t, err)
	plateMember, err := plate.Build(true)
	require.NoError(t, err)
	bolts, err := model.BoltConfigurationInput{Rows: "2", Columns: "7", Diameter: "0.875", Grade: "A325-X"}.Build(true)
	require.NoError(t, err)
	load, err := lc.Build(true)
	require.NoError(t, err)

	f := &fixture{store: s}
	f.a = s.AddMember(beam)
	f.b = s.AddMember(plateMember)
	f.bolts = s.AddBoltConfiguration(bolts)
	f.loads = s.AddGlobalLoads(load)
	f.eval = New(s, Defaults(), WithLogger(quiet))
	return f
}

func defaultFixture(t *testing.T) *fixture {
	return newFixture(t,
		model.MemberInput{Kind: "plate", Thickness: "0.5"},
		model.GlobalLoadsInput{DirectLoad: "150"},
	)
}

func (f *fixture) connect(t *testing.T, in model.ConnectionInput) string {
	t.Helper()
	if in.MemberA == "" {
		in.MemberA = f.a
	}
	if in.MemberB == "" {
		in.MemberB = f.b
	}
	if in.BoltConfiguration == "" {
		in.BoltConfiguration = f.bolts
	}
	if in.GlobalLoads == "" {
		in.GlobalLoads = f.loads
	}
	spec, err := in.Build(true)
	require.NoError(t, err)
	id, err := f.store.AddConnection(spec)
	require.NoError(t, err)
	return id
}

func TestEvaluate_EndToEnd(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{})

	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)

	assert.Equal(t, 14, r.NBolts)
	assert.InDelta(t, 0.6013204688511713, r.BoltArea, tol)
	assert.InDelta(t, 164.16048799636977, r.BoltShear, tol)
	assert.InDelta(t, 205.2006099954622, r.BoltTensile, tol)

	assert.Equal(t, "B", r.Ply.Member)
	assert.Equal(t, 0.5, r.Ply.Thickness)
	assert.Equal(t, "A992", r.Ply.Material.Grade)

	assert.InDelta(t, 9.75, r.Areas.Agv, tol)
	assert.InDelta(t, 6.5, r.Areas.Anv, tol)
	assert.InDelta(t, 1.75, r.Areas.Ant, tol)
	assert.InDelta(t, 367.25, r.BlockShearNominal, tol)
	assert.InDelta(t, 183.625, r.BlockShear, tol)

	assert.InDelta(t, 68.25, r.BearingPerBolt, tol)
	assert.InDelta(t, 955.5, r.Bearing, tol)

	assert.Equal(t, 150.0, r.Demand)
	assert.Equal(t, LimitBoltShear, r.Governing)
	assert.InDelta(t, 164.16048799636977, r.GoverningCapacity, tol)
	assert.InDelta(t, 0.9137399737951382, r.Ratio, tol)
	assert.Equal(t, Safe, r.Verdict)
	assert.True(t, r.IsSafe())
	assert.False(t, r.RatioInfinite())
	assert.Contains(t, r.Message, "Bolt shear governs")
}

func TestEvaluate_A36PlateBlockShearGoverns(t *testing.T) {
	f := newFixture(t,
		model.MemberInput{Kind: "plate", Thickness: "0.5", Material: "A36"},
		model.GlobalLoadsInput{DirectLoad: "150"},
	)
	id := f.connect(t, model.ConnectionInput{})

	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)

	// min(0.6·58·6.5 + 58·1.75, 0.6·36·9.75 + 58·1.75) / 2
	assert.InDelta(t, 312.1, r.BlockShearNominal, 1e-6)
	assert.InDelta(t, 156.05, r.BlockShear, 1e-6)
	assert.Equal(t, LimitBlockShear, r.Governing)
	assert.Equal(t, Safe, r.Verdict)
}

func TestEvaluate_ThinnerPlySelected(t *testing.T) {
	f := newFixture(t,
		model.MemberInput{Kind: "plate", Thickness: "0.75"},
		model.GlobalLoadsInput{DirectLoad: "150"},
	)
	id := f.connect(t, model.ConnectionInput{ComponentA: "WEB"})

	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, "A", r.Ply.Member)
	assert.Equal(t, model.ComponentWeb, r.Ply.Component)
	assert.Equal(t, 0.515, r.Ply.Thickness)
}

func TestEvaluate_OverrideAg(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{OverrideAg: "1.0"})

	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)

	// shear yielding path: 0.6·50·1.0 + 65·1.75 = 143.75
	assert.Equal(t, 1.0, r.Areas.Agv)
	assert.InDelta(t, 143.75, r.BlockShearNominal, tol)
	assert.InDelta(t, 71.875, r.BlockShear, tol)
	assert.Equal(t, LimitBlockShear, r.Governing)
	assert.Equal(t, Unsafe, r.Verdict)
	assert.Contains(t, r.Message, "demand 150.00 kip > capacity 71.88 kip")
}

func TestEvaluate_ResultsDoNotShareOverrideAg(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{OverrideAg: "1.0"})

	conn, ok := f.store.Connection(id)
	require.True(t, ok)
	*conn.OverrideAg = 50

	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)
	assert.InDelta(t, 71.875, r.BlockShear, tol)
	*r.Connection.OverrideAg = 50

	stored, ok := f.eval.Result(id)
	require.True(t, ok)
	assert.Equal(t, 1.0, *stored.Connection.OverrideAg)
	*stored.Connection.OverrideAg = 50

	again, ok := f.eval.Result(id)
	require.True(t, ok)
	assert.Equal(t, 1.0, *again.Connection.OverrideAg)

	r, err = f.eval.Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Areas.Agv)
	assert.InDelta(t, 71.875, r.BlockShear, tol)
}

func TestEvaluate_UnknownThicknessIsUnsafe(t *testing.T) {
	s := store.New(store.WithLogger(quiet))
	a := s.AddMember(model.Member{Shape: model.SteelSection{SectionName: "HSS8X8X1/2"}})
	b := s.AddMember(model.Member{Shape: model.SteelSection{SectionName: "HSS6X6X3/8"}})
	bc := s.AddBoltConfiguration(model.BoltConfiguration{Rows: 2, Columns: 7, Diameter: 0.875, RowSpacing: 3, ColumnSpacing: 3, EdgeVertical: 2, EdgeHorizontal: 1.5})
	gl := s.AddGlobalLoads(model.GlobalLoads{DirectLoad: 10})
	id, err := s.AddConnection(model.ConnectionSpec{MemberAID: a, MemberBID: b, BoltConfigurationID: bc, GlobalLoadsID: gl})
	require.NoError(t, err)

	r, err := New(s, Defaults(), WithLogger(quiet)).Evaluate(id)
	require.NoError(t, err)

	assert.Empty(t, r.Ply.Member)
	assert.Zero(t, r.Ply.Thickness)
	assert.Zero(t, r.BlockShear)
	assert.Zero(t, r.Bearing)
	// block shear and bearing tie at zero; block shear comes first
	assert.Equal(t, LimitBlockShear, r.Governing)
	assert.True(t, math.IsInf(r.Ratio, 1))
	assert.True(t, r.RatioInfinite())
	assert.Equal(t, Unsafe, r.Verdict)
}

func TestEvaluate_DemandModes(t *testing.T) {
	lc := model.GlobalLoadsInput{Fx: "18", Fy: "24", DirectLoad: "150"}

	f := newFixture(t, model.MemberInput{Kind: "plate", Thickness: "0.5"}, lc)
	id := f.connect(t, model.ConnectionInput{})
	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, 180.0, r.Demand)
	assert.Equal(t, Unsafe, r.Verdict)

	cfg := Defaults()
	cfg.DemandMode = loads.ModeDirect
	r, err = New(f.store, cfg, WithLogger(quiet)).Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, r.Demand)
	assert.Equal(t, "direct", r.DemandMode)
	assert.Equal(t, Safe, r.Verdict)
}

func TestEvaluate_MomentUsesEccentricity(t *testing.T) {
	f := newFixture(t,
		model.MemberInput{Kind: "plate", Thickness: "0.5"},
		model.GlobalLoadsInput{Mz: "120", DirectLoad: "0"},
	)
	id := f.connect(t, model.ConnectionInput{})

	cfg := Defaults()
	cfg.Eccentricity = 4
	r, err := New(f.store, cfg, WithLogger(quiet)).Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, 30.0, r.Demand)
}

func TestEvaluate_ConnectionNotFound(t *testing.T) {
	f := defaultFixture(t)

	_, err := f.eval.Evaluate("connection-9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnectionNotFound))
	assert.True(t, IsEvaluationError(err))
	assert.Contains(t, err.Error(), `"connection-9"`)
}

func TestEvaluate_RemovedBoltConfiguration(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{})

	_, err := f.eval.Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, Evaluated, f.eval.Status(id))

	f.store.RemoveBoltConfiguration(f.bolts)
	assert.Len(t, f.store.Connections(), 1)

	_, err = f.eval.Evaluate(id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvedBoltConfiguration))
	assert.False(t, errors.Is(err, ErrUnresolvedGlobalLoads))
	assert.Equal(t, Unevaluated, f.eval.Status(id))

	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, f.bolts, ee.Reference)
}

func TestEvaluate_RemovedGlobalLoads(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{})
	f.store.RemoveGlobalLoads(f.loads)

	_, err := f.eval.Evaluate(id)
	assert.True(t, errors.Is(err, ErrUnresolvedGlobalLoads))
}

func TestEvaluate_MemberRemovalDoesNotMatter(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{})
	f.store.RemoveMember(f.a)
	f.store.RemoveMember(f.b)

	r, err := f.eval.Evaluate(id)
	require.NoError(t, err)
	assert.Equal(t, Safe, r.Verdict)
}

func TestEvaluate_StatusAndReplacement(t *testing.T) {
	f := defaultFixture(t)
	id := f.connect(t, model.ConnectionInput{})
	assert.Equal(t, Unevaluated, f.eval.Status(id))

	first, err := f.eval.Evaluate(id)
	require.NoError(t, err)
	second, err := f.eval.Evaluate(id)
	require.NoError(t, err)

	assert.Equal(t, Evaluated, f.eval.Status(id))
	assert.NotSame(t, first, second)
	latest, ok := f.eval.Result(id)
	require.True(t, ok)
	assert.Equal(t, second, latest)
	assert.NotSame(t, second, latest)
}

func TestEvaluateAll(t *testing.T) {
	f := defaultFixture(t)
	first := f.connect(t, model.ConnectionInput{})

	extra := f.store.AddBoltConfiguration(model.BoltConfiguration{Rows: 1, Columns: 1, Diameter: 0.75})
	second := f.connect(t, model.ConnectionInput{BoltConfiguration: extra})
	f.store.RemoveBoltConfiguration(extra)

	out := f.eval.EvaluateAll(f.store)
	require.Len(t, out, 2)
	assert.Equal(t, first, out[0].ConnectionID)
	assert.NoError(t, out[0].Err)
	require.NotNil(t, out[0].Result)

	assert.Equal(t, second, out[1].ConnectionID)
	assert.Nil(t, out[1].Result)
	assert.True(t, errors.Is(out[1].Err, ErrUnresolvedBoltConfiguration))
}

func TestGoverning_TiePrecedence(t *testing.T) {
	tests := []struct {
		name              string
		shear, block, brg float64
		want              LimitState
	}{
		{"all equal", 10, 10, 10, LimitBoltShear},
		{"block and bearing tie", 20, 10, 10, LimitBlockShear},
		{"bearing lowest", 20, 15, 10, LimitBearing},
		{"shear and bearing tie", 10, 15, 10, LimitBoltShear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := governing(tt.shear, tt.block, tt.brg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerdictMatchesRatio(t *testing.T) {
	for _, direct := range []string{"0", "50", "164", "164.16048799636977", "165", "400"} {
		f := newFixture(t, model.MemberInput{Kind: "plate", Thickness: "0.5"}, model.GlobalLoadsInput{DirectLoad: model.Raw(direct)})
		r, err := f.eval.Evaluate(f.connect(t, model.ConnectionInput{}))
		require.NoError(t, err)

		assert.LessOrEqual(t, r.GoverningCapacity, r.BoltShear)
		assert.LessOrEqual(t, r.GoverningCapacity, r.BlockShear)
		assert.LessOrEqual(t, r.GoverningCapacity, r.Bearing)
		assert.Equal(t, r.Ratio <= 1.0, r.Verdict == Safe, "direct load %s", direct)
	}
}

func TestResult_Checks(t *testing.T) {
	f := defaultFixture(t)
	r, err := f.eval.Evaluate(f.connect(t, model.ConnectionInput{}))
	require.NoError(t, err)

	checks := r.Checks()
	require.Len(t, checks, 4)
	assert.Equal(t, LimitBoltShear, checks[0].LimitState)
	assert.True(t, checks[0].Governs)
	assert.InDelta(t, r.Ratio, checks[0].Utilization, tol)
	assert.False(t, checks[1].Governs)
	assert.Equal(t, LimitBoltTension, checks[3].LimitState)
	assert.True(t, checks[3].Informational)
}

func TestNew_FillsZeroConfig(t *testing.T) {
	e := New(store.New(), Config{BoltFu: 58})
	cfg := e.Config()
	assert.Equal(t, 58.0, cfg.BoltFu)
	assert.Equal(t, Defaults().ShearSafetyFactor, cfg.ShearSafetyFactor)
	assert.Equal(t, Defaults().Eccentricity, cfg.Eccentricity)
	assert.Equal(t, loads.ModeResultant, cfg.DemandMode)
}
