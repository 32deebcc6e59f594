package loads

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultant_DirectLoadOnly(t *testing.T) {
	assert.Equal(t, 150.0, Resultant(0, 0, 0, 0, 0, 0, 150, 1.0))
}

func TestResultant_ForceAndMoment(t *testing.T) {
	// |F| = 5, |M| = 13, e = 2 → 5 + 6.5 + 10
	got := Resultant(3, 4, 0, 5, 12, 0, 10, 2.0)
	assert.InDelta(t, 21.5, got, 1e-12)
}

func TestResultant_EccentricityFallback(t *testing.T) {
	want := Resultant(0, 0, 0, 0, 0, 10, 0, 1.0)
	assert.Equal(t, want, Resultant(0, 0, 0, 0, 0, 10, 0, 0))
	assert.Equal(t, want, Resultant(0, 0, 0, 0, 0, 10, 0, -4))
	assert.Equal(t, want, Resultant(0, 0, 0, 0, 0, 10, 0, math.NaN()))
}

func TestResultant_NonFiniteComponents(t *testing.T) {
	got := Resultant(math.NaN(), 4, 0, math.Inf(1), 0, 0, math.NaN(), 1.0)
	assert.Equal(t, 4.0, got)
}

func TestDemand_Modes(t *testing.T) {
	v := Vector{Fx: 3, Fy: 4}
	assert.Equal(t, 105.0, Demand(ModeResultant, v, 100, 1.0))
	assert.Equal(t, 100.0, Demand(ModeDirect, v, 100, 1.0))
	assert.Equal(t, 105.0, Demand("", v, 100, 1.0), "unknown mode uses the resultant")
}

func TestEffectiveEccentricity(t *testing.T) {
	assert.Equal(t, 4.0, EffectiveEccentricity(4))
	for _, e := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		assert.Equal(t, 1.0, EffectiveEccentricity(e), "e = %v", e)
	}
}

func TestCombination_Factored(t *testing.T) {
	l := Components{Dead: 50, Live: 30}
	assert.Equal(t, 80.0, ASDCombinations[1].Factored(l))
	assert.InDelta(t, 72.5, ASDCombinations[3].Factored(l), 1e-12)
}

func TestGoverning(t *testing.T) {
	l := Components{Dead: 50, Live: 30, Wind: 40}

	p, combo := Governing(l, ASDCombinations)
	// 6a: 50 + 22.5 + 18 = 90.5
	assert.InDelta(t, 90.5, p, 1e-12)
	assert.Equal(t, "6a", combo.ID)
}

func TestCombination_RoofOrRain(t *testing.T) {
	l := Components{Dead: 20, Roof: 10, Rain: 10}
	assert.InDelta(t, 30, ASDCombinations[2].Factored(l), 1e-12, "D + (Lr or R)")
	assert.InDelta(t, 27.5, ASDCombinations[3].Factored(l), 1e-12, "D + 0.75(Lr or R)")

	l = Components{Dead: 20, Roof: 4, Rain: 12}
	assert.InDelta(t, 32, ASDCombinations[2].Factored(l), 1e-12, "rain governs")
	l = Components{Dead: 20, Roof: 12, Rain: 4}
	assert.InDelta(t, 32, ASDCombinations[2].Factored(l), 1e-12, "roof live governs")

	p, combo := Governing(Components{Dead: 20, Roof: 10, Rain: 10}, ASDCombinations)
	assert.InDelta(t, 30, p, 1e-12)
	assert.Equal(t, "3", combo.ID)
}

func TestGoverning_NoLoads(t *testing.T) {
	p, combo := Governing(Components{}, ASDCombinations)
	assert.Zero(t, p)
	assert.Equal(t, "1", combo.ID)
	assert.Equal(t, "D", combo.Description)

	p, combo = Governing(Components{Dead: 10}, nil)
	assert.Zero(t, p)
	assert.Empty(t, combo.ID)
}
