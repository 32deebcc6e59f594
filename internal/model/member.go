// Package model defines the entities of a connection model: members, bolt
// configurations, load cases and connections.
package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

// MemberKind selects which shape payload a member carries
type MemberKind string

const (
	KindSteelSection MemberKind = "steel-section"
	KindPlate        MemberKind = "plate"
)

// ParseMemberKind validates a member kind; "steelpy" is accepted as an alias
// of steel-section and blank selects steel-section.
func ParseMemberKind(s string) (MemberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(KindSteelSection), "steelpy":
		return KindSteelSection, nil
	case string(KindPlate):
		return KindPlate, nil
	}
	return "", fmt.Errorf("unknown member kind %q", s)
}

// Role is the structural role of a steel section
type Role string

const (
	RoleBeam   Role = "BEAM"
	RoleColumn Role = "COLUMN"
	RoleBrace  Role = "BRACE"
)

// ParseRole validates a role; blank selects BEAM
func ParseRole(s string) (Role, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return RoleBeam, nil
	}
	switch r := Role(s); r {
	case RoleBeam, RoleColumn, RoleBrace:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Component is the part of a member that takes part in the connection
type Component string

const (
	ComponentTotal  Component = "TOTAL"
	ComponentWeb    Component = "WEB"
	ComponentFlange Component = "FLANGE"
)

// ParseComponent validates a component tag; blank selects TOTAL
func ParseComponent(s string) (Component, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ComponentTotal, nil
	}
	switch c := Component(s); c {
	case ComponentTotal, ComponentWeb, ComponentFlange:
		return c, nil
	}
	return "", fmt.Errorf("unknown component %q", s)
}

// Shape is the kind-specific payload of a member. It is implemented only by
// SteelSection and Plate.
type Shape interface {
	Kind() MemberKind
	isShape()
}

// SteelSection is a rolled shape from the section catalog
type SteelSection struct {
	SectionClass string // W_shapes, L_shapes, C_shapes, HSS_shapes
	SectionName  string // e.g. W21X83
	ShapeType    string // W, L, C, HSS
	Role         Role
}

func (SteelSection) Kind() MemberKind { return KindSteelSection }
func (SteelSection) isShape()         {}

// Plate is a custom plate
type Plate struct {
	Thickness float64 // in
	Width     float64 // in
	Clipping  float64 // in
}

func (Plate) Kind() MemberKind { return KindPlate }
func (Plate) isShape()         {}

// Member is a structural element used as one side of a connection.
// Members are values: copying one yields an independent snapshot.
type Member struct {
	ID               string
	Name             string
	Shape            Shape
	Material         string  // steel grade, e.g. A992
	LoadingCondition string  // 1 normal, 2 bracing, 3 special
	Length           float64 // ft
}

// Kind returns the member kind selected by its shape
func (m Member) Kind() MemberKind {
	if m.Shape == nil {
		return ""
	}
	return m.Shape.Kind()
}

// DefaultName is the display name given to an unnamed member
func (m Member) DefaultName(seq int) string {
	if s, ok := m.Shape.(SteelSection); ok {
		return fmt.Sprintf("%s %d", s.SectionName, seq)
	}
	return fmt.Sprintf("Plate %d", seq)
}

// Thickness returns the thickness of the connected element of the member.
// Steel sections are looked up in the section catalog: WEB and FLANGE select
// tw and tf, TOTAL the thinner of the two. The second result is false when
// the thickness is unknown.
func (m Member) Thickness(c Component) (float64, bool) {
	switch s := m.Shape.(type) {
	case Plate:
		return s.Thickness, s.Thickness > 0
	case SteelSection:
		sec, ok := aisc.LookupSection(s.SectionName)
		if !ok {
			return 0, false
		}
		switch c {
		case ComponentWeb:
			return sec.WebThickness, true
		case ComponentFlange:
			return sec.FlangeThickness, true
		default:
			return math.Min(sec.WebThickness, sec.FlangeThickness), true
		}
	}
	return 0, false
}

// Steel returns the material properties of the member
func (m Member) Steel() aisc.Material {
	return aisc.MaterialOrDefault(m.Material)
}
