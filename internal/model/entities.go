package model

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/capacity"
	"github.com/alexiusacademia/gobolt/internal/loads"
)

// ConnectionTypeBolted is the only supported connection type
const ConnectionTypeBolted = "bolted"

// ParseConnectionType validates a connection type; blank selects bolted
func ParseConnectionType(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == ConnectionTypeBolted {
		return ConnectionTypeBolted, nil
	}
	return "", fmt.Errorf("unsupported connection type %q", s)
}

// BoltConfiguration is a reusable bolt pattern template
type BoltConfiguration struct {
	ID             string
	Name           string
	RowSpacing     float64 // in
	ColumnSpacing  float64 // in
	Rows           int
	Columns        int
	EdgeVertical   float64 // in
	EdgeHorizontal float64 // in
	Diameter       float64 // in
	Grade          aisc.BoltGrade
	Angle          float64 // degrees
	ConnectionType string
}

// BoltCount returns the number of bolts in the pattern
func (b BoltConfiguration) BoltCount() int {
	return b.Rows * b.Columns
}

// Validate checks the pattern invariants
func (b BoltConfiguration) Validate() error {
	if b.Rows < 1 || b.Columns < 1 {
		return &ValidationError{Field: "rows/columns", Msg: fmt.Sprintf("bolt pattern must have at least one row and column, got %d×%d", b.Rows, b.Columns)}
	}
	if b.Diameter <= 0 {
		return &ValidationError{Field: "bolt_diameter", Msg: fmt.Sprintf("bolt diameter must be positive, got %g", b.Diameter)}
	}
	return nil
}

// Geometry returns the block shear geometry of the pattern
func (b BoltConfiguration) Geometry() capacity.BlockShearGeometry {
	return capacity.BlockShearGeometry{
		Rows:           b.Rows,
		Columns:        b.Columns,
		RowSpacing:     b.RowSpacing,
		ColumnSpacing:  b.ColumnSpacing,
		EdgeVertical:   b.EdgeVertical,
		EdgeHorizontal: b.EdgeHorizontal,
	}
}

// GlobalLoads is a reusable load case
type GlobalLoads struct {
	ID         string
	Name       string
	Fx, Fy, Fz float64 // kip
	Mx, My, Mz float64 // kip-in
	DirectLoad float64 // kip
}

// Vector returns the six-component load vector
func (l GlobalLoads) Vector() loads.Vector {
	return loads.Vector{Fx: l.Fx, Fy: l.Fy, Fz: l.Fz, Mx: l.Mx, My: l.My, Mz: l.Mz}
}

// Connection is a bolted joint between two members. Members A and B are
// snapshots taken when the connection was created; the bolt configuration
// and load case are referenced by identifier and may disappear later.
type Connection struct {
	ID                  string
	Name                string
	MemberA             Member
	MemberB             Member
	ComponentA          Component
	ComponentB          Component
	ConnectionType      string
	BoltConfigurationID string
	GlobalLoadsID       string
	OverrideAg          *float64 // in², replaces the gross shear area when set
}

// Clone returns a copy of c that shares no memory with it
func (c Connection) Clone() Connection {
	if c.OverrideAg != nil {
		ag := *c.OverrideAg
		c.OverrideAg = &ag
	}
	return c
}

// ValidationError reports an input that cannot be turned into an entity
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}
