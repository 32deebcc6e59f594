// Package loads turns a load case into a single applied demand on the bolt
// group.
package loads

import (
	"math"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

// Mode selects how a load case is reduced to a demand
type Mode string

const (
	// ModeResultant combines force and moment resultants with the direct load
	ModeResultant Mode = "resultant"
	// ModeDirect uses the direct load alone and ignores the load vector
	ModeDirect Mode = "direct"
)

// Vector is the six-component load vector of a load case
type Vector struct {
	Fx, Fy, Fz float64 // kip
	Mx, My, Mz float64 // kip-in
}

// Resultant calculates the demand on the bolt group (kip)
//
//	P = √(Fx² + Fy² + Fz²) + √(Mx² + My² + Mz²) / e + P_direct
//
// Non-finite components count as zero. A non-positive or non-finite
// eccentricity selects 1.0 in.
func Resultant(fx, fy, fz, mx, my, mz, direct, e float64) float64 {
	force := math.Sqrt(sq(fx) + sq(fy) + sq(fz))
	moment := math.Sqrt(sq(mx) + sq(my) + sq(mz))
	return force + moment/EffectiveEccentricity(e) + finiteOrZero(direct)
}

// EffectiveEccentricity returns the eccentricity Resultant divides by: e
// itself, or 1.0 in when e is non-positive or non-finite
func EffectiveEccentricity(e float64) float64 {
	if !finite(e) || e <= 0 {
		return aisc.DefaultEccentricity
	}
	return e
}

// DirectOnly returns the direct load as the demand, ignoring the load vector
func DirectOnly(direct float64) float64 {
	return finiteOrZero(direct)
}

// Demand reduces a load vector and direct load to a demand using the given mode
func Demand(mode Mode, v Vector, direct, e float64) float64 {
	if mode == ModeDirect {
		return DirectOnly(direct)
	}
	return Resultant(v.Fx, v.Fy, v.Fz, v.Mx, v.My, v.Mz, direct, e)
}

func sq(v float64) float64 {
	v = finiteOrZero(v)
	return v * v
}

func finiteOrZero(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
