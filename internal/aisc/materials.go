package aisc

import (
	"fmt"
	"sort"
	"strings"
)

// AISC 360 / ASD constants used by the connection checks (kip, inch, ksi)

const (
	// Ultimate strength used for bolt shear and tension
	// The reference checks apply 65 ksi to every bolt grade
	BoltFu = 65.0 // ksi

	// Safety factors
	ShearSafetyFactor      = 2.0  // Ω for bolt shear and bolt tension
	BearingSafetyFactor    = 1.25 // γb for bolt bearing
	BlockShearSafetyFactor = 2.0  // Ω for block shear rupture (Section J4.3)

	// Bolt geometry
	DefaultBoltDiameter = 0.875 // in (7/8")
	HoleAllowance       = 0.125 // in, standard hole d+1/16 plus 1/16 for damage (Section B4.3b)

	// Block shear tension stress factor (Section J4.3)
	UbsUniform    = 1.0
	UbsNonUniform = 0.5

	// Effective eccentricity used to turn a moment resultant into a force
	DefaultEccentricity = 1.0 // in
)

// Material is a structural steel grade
type Material struct {
	Grade string
	Fy    float64 // Yield strength (ksi)
	Fu    float64 // Tensile strength (ksi)
}

// DefaultMaterial is the grade assumed when a member names an unknown material
const DefaultMaterial = "A992"

var materials = map[string]Material{
	"A992":      {Grade: "A992", Fy: 50, Fu: 65},
	"A572_GR50": {Grade: "A572_GR50", Fy: 50, Fu: 65},
	"A36":       {Grade: "A36", Fy: 36, Fu: 58},
}

// LookupMaterial finds a steel grade by name (case-insensitive)
func LookupMaterial(grade string) (Material, bool) {
	m, ok := materials[strings.ToUpper(strings.TrimSpace(grade))]
	return m, ok
}

// MaterialOrDefault returns the named grade or A992 when the grade is unknown
func MaterialOrDefault(grade string) Material {
	if m, ok := LookupMaterial(grade); ok {
		return m
	}
	return materials[DefaultMaterial]
}

// Materials lists the known steel grades sorted by name
func Materials() []Material {
	out := make([]Material, 0, len(materials))
	for _, m := range materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Grade < out[j].Grade })
	return out
}

// BoltGrade is an ASTM bolt designation with its thread condition
// X = threads excluded from the shear plane, N = threads included
type BoltGrade string

const (
	A325X BoltGrade = "A325-X"
	A325N BoltGrade = "A325-N"
	A490X BoltGrade = "A490-X"
	A490N BoltGrade = "A490-N"
)

// DefaultBoltGrade is used when no grade is given
const DefaultBoltGrade = A325X

// ParseBoltGrade validates a grade designation; blank selects the default
func ParseBoltGrade(s string) (BoltGrade, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultBoltGrade, nil
	}
	switch g := BoltGrade(s); g {
	case A325X, A325N, A490X, A490N:
		return g, nil
	}
	return "", fmt.Errorf("unknown bolt grade %q", s)
}

// ThreadsExcluded reports whether threads are excluded from the shear plane
func (g BoltGrade) ThreadsExcluded() bool {
	return strings.HasSuffix(string(g), "-X")
}

// TensileStrength returns the specified minimum tensile strength of the bolt (ksi)
func (g BoltGrade) TensileStrength() float64 {
	if strings.HasPrefix(string(g), "A490") {
		return 150
	}
	return 120
}
