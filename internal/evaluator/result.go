package evaluator

import (
	"math"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/capacity"
	"github.com/alexiusacademia/gobolt/internal/model"
)

// LimitState names a failure mode of the joint
type LimitState string

const (
	LimitBoltShear   LimitState = "bolt_shear"
	LimitBlockShear  LimitState = "block_shear"
	LimitBearing     LimitState = "bearing"
	LimitBoltTension LimitState = "bolt_tension"
)

// Label returns the display name of the limit state
func (l LimitState) Label() string {
	switch l {
	case LimitBoltShear:
		return "Bolt shear"
	case LimitBlockShear:
		return "Block shear"
	case LimitBearing:
		return "Bearing"
	case LimitBoltTension:
		return "Bolt tension"
	}
	return string(l)
}

// Verdict is the outcome of the capacity check
type Verdict string

const (
	Safe   Verdict = "SAFE"
	Unsafe Verdict = "UNSAFE"
)

// Ply is the connected element whose thickness and steel govern bearing and
// block shear
type Ply struct {
	Member    string // "A" or "B", empty when no thickness is known
	MemberID  string
	Component model.Component
	Thickness float64 // in
	Material  aisc.Material
}

// Result holds the outcome of one evaluation. It is never modified after
// Evaluate returns it.
type Result struct {
	Connection        model.Connection
	BoltConfiguration model.BoltConfiguration
	GlobalLoads       model.GlobalLoads

	// Bolt group
	NBolts   int
	BoltArea float64 // in²
	BoltFu   float64 // ksi

	// Connected ply
	Ply   Ply
	Areas capacity.BlockShearAreas // in², Agv replaced by the override when set

	// Capacities (kip)
	BoltShear         float64
	BoltTensile       float64 // reported only, never governs
	BlockShearNominal float64
	BlockShear        float64 // allowable, nominal / Ω
	BearingPerBolt    float64
	Bearing           float64 // whole group

	// Check
	DemandMode        string
	Demand            float64 // kip
	Governing         LimitState
	GoverningCapacity float64 // kip
	Ratio             float64 // +Inf when the governing capacity is not positive
	Verdict           Verdict
	Message           string
}

// clone copies r so that callers never hold the stored result
func (r *Result) clone() *Result {
	out := *r
	out.Connection = r.Connection.Clone()
	return &out
}

// IsSafe reports whether the connection passed the check
func (r *Result) IsSafe() bool {
	return r.Verdict == Safe
}

// RatioInfinite reports whether the utilization ratio is unbounded
func (r *Result) RatioInfinite() bool {
	return math.IsInf(r.Ratio, 1)
}

// Check is one limit state with its capacity and utilization
type Check struct {
	LimitState  LimitState
	Capacity    float64
	Utilization float64
	Governs     bool
	// Informational checks are shown but do not take part in the verdict
	Informational bool
}

// Checks lists the limit states in precedence order followed by the
// informational bolt tension check
func (r *Result) Checks() []Check {
	checks := []Check{
		{LimitState: LimitBoltShear, Capacity: r.BoltShear},
		{LimitState: LimitBlockShear, Capacity: r.BlockShear},
		{LimitState: LimitBearing, Capacity: r.Bearing},
		{LimitState: LimitBoltTension, Capacity: r.BoltTensile, Informational: true},
	}
	for i := range checks {
		checks[i].Utilization = utilization(r.Demand, checks[i].Capacity)
		checks[i].Governs = checks[i].LimitState == r.Governing
	}
	return checks
}

// utilization returns demand / capacity, or +Inf when the capacity is not
// positive
func utilization(demand, capacity float64) float64 {
	if capacity <= 0 || math.IsNaN(capacity) {
		return math.Inf(1)
	}
	return demand / capacity
}

// governing selects the smallest capacity; ties go to the earlier limit state
func governing(boltShear, blockShear, bearing float64) (LimitState, float64) {
	state, value := LimitBoltShear, boltShear
	if blockShear < value {
		state, value = LimitBlockShear, blockShear
	}
	if bearing < value {
		state, value = LimitBearing, bearing
	}
	return state, value
}
