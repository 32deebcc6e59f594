// Package capacity implements the closed-form limit-state capacities of a
// bolted joint. All functions are pure: they never fail, and invalid input
// yields a degenerate (zero) capacity instead of an error.
package capacity

import (
	"math"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

// BoltArea returns the gross bolt area π·d²/4 (in²)
func BoltArea(d float64) float64 {
	d = boltDiameter(d)
	return math.Pi * d * d / 4
}

// BoltShear calculates the allowable shear capacity of a bolt group (kip)
//
//	Vr = n × 0.6 × Fu × (π·d²/4) / Ω
//
// A diameter that is non-positive or not a number falls back to 7/8".
// Zero fu or omega select 65 ksi and 2.0.
func BoltShear(nBolts int, d, fu, omega float64) float64 {
	if nBolts <= 0 {
		return 0
	}
	fu = orDefault(fu, aisc.BoltFu)
	omega = orDefault(omega, aisc.ShearSafetyFactor)
	return float64(nBolts) * 0.6 * fu * BoltArea(d) / omega
}

// BoltTensile calculates the allowable tensile capacity of a bolt group (kip)
//
//	Tr = n × 0.75 × Fu × As / Ω
func BoltTensile(nBolts int, as, fu, omega float64) float64 {
	if nBolts <= 0 {
		return 0
	}
	fu = orDefault(fu, aisc.BoltFu)
	omega = orDefault(omega, aisc.ShearSafetyFactor)
	return float64(nBolts) * 0.75 * fu * nonNegative(as) / omega
}

// BlockShear calculates the nominal block shear rupture strength (kip)
// AISC 360 Section J4.3
//
//	Rn = min(0.6·Fu·Anv + Ubs·Fu·Ant, 0.6·Fy·Agv + Ubs·Fu·Ant)
//
// A non-positive ubs selects 1.0 (uniform tension stress).
func BlockShear(fu, fy, anv, ant, agv, ubs float64) float64 {
	fu, fy = nonNegative(fu), nonNegative(fy)
	anv, ant, agv = nonNegative(anv), nonNegative(ant), nonNegative(agv)
	ubs = orDefault(ubs, aisc.UbsUniform)

	tension := ubs * fu * ant
	rupture := 0.6*fu*anv + tension
	yield := 0.6*fy*agv + tension
	return math.Min(rupture, yield)
}

// Bearing calculates the allowable bearing capacity of one bolt on a ply (kip)
//
//	Br = 3.0 × d × t × Fu / γb
//
// Zero fu or omega select 65 ksi and 1.25.
func Bearing(d, t, fu, omega float64) float64 {
	fu = orDefault(fu, aisc.BoltFu)
	omega = orDefault(omega, aisc.BearingSafetyFactor)
	return 3.0 * boltDiameter(d) * nonNegative(t) * fu / omega
}

// boltDiameter applies the documented 7/8" fallback
func boltDiameter(d float64) float64 {
	if !finite(d) || d <= 0 {
		return aisc.DefaultBoltDiameter
	}
	return d
}

func orDefault(v, def float64) float64 {
	if !finite(v) || v <= 0 {
		return def
	}
	return v
}

func nonNegative(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
