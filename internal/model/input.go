package model

import (
	"errors"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

// Form defaults for fields left blank or, in lenient mode, not parsable
const (
	DefaultSectionClass     = "W_shapes"
	DefaultSectionName      = "W21X83"
	DefaultShapeType        = "W"
	DefaultLoadingCondition = "1"
	DefaultPlateThickness   = 0.625
	DefaultPlateWidth       = 10.0
	DefaultPlateClipping    = 0.0
	DefaultMemberLength     = 25.0

	DefaultRowSpacing     = 3.0
	DefaultColumnSpacing  = 3.0
	DefaultRows           = 2
	DefaultColumns        = 7
	DefaultEdgeVertical   = 2.0
	DefaultEdgeHorizontal = 1.5
	DefaultAngle          = 47.2
)

// MemberInput is the raw member form
type MemberInput struct {
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	Kind             string `json:"kind,omitempty" yaml:"kind,omitempty"`
	SectionClass     string `json:"section_class,omitempty" yaml:"section_class,omitempty"`
	SectionName      string `json:"section_name,omitempty" yaml:"section_name,omitempty"`
	ShapeType        string `json:"shape_type,omitempty" yaml:"shape_type,omitempty"`
	Role             string `json:"role,omitempty" yaml:"role,omitempty"`
	Thickness        Raw    `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Width            Raw    `json:"width,omitempty" yaml:"width,omitempty"`
	Clipping         Raw    `json:"clipping,omitempty" yaml:"clipping,omitempty"`
	Material         string `json:"material,omitempty" yaml:"material,omitempty"`
	LoadingCondition string `json:"loading_condition,omitempty" yaml:"loading_condition,omitempty"`
	Length           Raw    `json:"length,omitempty" yaml:"length,omitempty"`
}

// Build validates the form and returns the member it describes.
// Only the payload matching the kind is read.
func (in MemberInput) Build(strict bool) (Member, error) {
	p := &Parser{Strict: strict}

	kind, err := ParseMemberKind(in.Kind)
	if err != nil {
		return Member{}, &ValidationError{Field: "kind", Msg: err.Error()}
	}

	m := Member{
		Name:             in.Name,
		Material:         orString(in.Material, aisc.DefaultMaterial),
		LoadingCondition: orString(in.LoadingCondition, DefaultLoadingCondition),
		Length:           p.Float("length", in.Length, DefaultMemberLength),
	}

	switch kind {
	case KindSteelSection:
		role, err := ParseRole(in.Role)
		if err != nil {
			return Member{}, &ValidationError{Field: "role", Msg: err.Error()}
		}
		m.Shape = SteelSection{
			SectionClass: orString(in.SectionClass, DefaultSectionClass),
			SectionName:  orString(in.SectionName, DefaultSectionName),
			ShapeType:    orString(in.ShapeType, DefaultShapeType),
			Role:         role,
		}
	case KindPlate:
		m.Shape = Plate{
			Thickness: p.Float("thickness", in.Thickness, DefaultPlateThickness),
			Width:     p.Float("width", in.Width, DefaultPlateWidth),
			Clipping:  p.Float("clipping", in.Clipping, DefaultPlateClipping),
		}
	}

	if err := p.Err(); err != nil {
		return Member{}, err
	}
	return m, nil
}

// BoltConfigurationInput is the raw bolt configuration form
type BoltConfigurationInput struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	RowSpacing     Raw    `json:"row_spacing,omitempty" yaml:"row_spacing,omitempty"`
	ColumnSpacing  Raw    `json:"column_spacing,omitempty" yaml:"column_spacing,omitempty"`
	Rows           Raw    `json:"rows,omitempty" yaml:"rows,omitempty"`
	Columns        Raw    `json:"columns,omitempty" yaml:"columns,omitempty"`
	EdgeVertical   Raw    `json:"edge_distance_vertical,omitempty" yaml:"edge_distance_vertical,omitempty"`
	EdgeHorizontal Raw    `json:"edge_distance_horizontal,omitempty" yaml:"edge_distance_horizontal,omitempty"`
	Diameter       Raw    `json:"bolt_diameter,omitempty" yaml:"bolt_diameter,omitempty"`
	Grade          string `json:"bolt_grade,omitempty" yaml:"bolt_grade,omitempty"`
	Angle          Raw    `json:"angle,omitempty" yaml:"angle,omitempty"`
	ConnectionType string `json:"connection_type,omitempty" yaml:"connection_type,omitempty"`
}

// Build validates the form and returns the bolt configuration it describes.
// A diameter that is not positive falls back to 7/8"; a pattern without
// bolts is rejected.
func (in BoltConfigurationInput) Build(strict bool) (BoltConfiguration, error) {
	p := &Parser{Strict: strict}

	grade, err := aisc.ParseBoltGrade(in.Grade)
	if err != nil {
		return BoltConfiguration{}, &ValidationError{Field: "bolt_grade", Msg: err.Error()}
	}
	ctype, err := ParseConnectionType(in.ConnectionType)
	if err != nil {
		return BoltConfiguration{}, &ValidationError{Field: "connection_type", Msg: err.Error()}
	}

	b := BoltConfiguration{
		Name:           in.Name,
		RowSpacing:     p.Float("row_spacing", in.RowSpacing, DefaultRowSpacing),
		ColumnSpacing:  p.Float("column_spacing", in.ColumnSpacing, DefaultColumnSpacing),
		Rows:           p.Int("rows", in.Rows, DefaultRows),
		Columns:        p.Int("columns", in.Columns, DefaultColumns),
		EdgeVertical:   p.Float("edge_distance_vertical", in.EdgeVertical, DefaultEdgeVertical),
		EdgeHorizontal: p.Float("edge_distance_horizontal", in.EdgeHorizontal, DefaultEdgeHorizontal),
		Diameter:       p.Float("bolt_diameter", in.Diameter, aisc.DefaultBoltDiameter),
		Grade:          grade,
		Angle:          p.Float("angle", in.Angle, DefaultAngle),
		ConnectionType: ctype,
	}
	if b.Diameter <= 0 {
		b.Diameter = aisc.DefaultBoltDiameter
	}

	if err := p.Err(); err != nil {
		return BoltConfiguration{}, err
	}
	if err := b.Validate(); err != nil {
		return BoltConfiguration{}, err
	}
	return b, nil
}

// GlobalLoadsInput is the raw load case form
type GlobalLoadsInput struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Fx         Raw    `json:"fx,omitempty" yaml:"fx,omitempty"`
	Fy         Raw    `json:"fy,omitempty" yaml:"fy,omitempty"`
	Fz         Raw    `json:"fz,omitempty" yaml:"fz,omitempty"`
	Mx         Raw    `json:"mx,omitempty" yaml:"mx,omitempty"`
	My         Raw    `json:"my,omitempty" yaml:"my,omitempty"`
	Mz         Raw    `json:"mz,omitempty" yaml:"mz,omitempty"`
	DirectLoad Raw    `json:"direct_load,omitempty" yaml:"direct_load,omitempty"`
}

// Build returns the load case described by the form. Unparsable components
// count as zero.
func (in GlobalLoadsInput) Build(strict bool) (GlobalLoads, error) {
	p := &Parser{Strict: strict}
	l := GlobalLoads{
		Name:       in.Name,
		Fx:         p.Float("fx", in.Fx, 0),
		Fy:         p.Float("fy", in.Fy, 0),
		Fz:         p.Float("fz", in.Fz, 0),
		Mx:         p.Float("mx", in.Mx, 0),
		My:         p.Float("my", in.My, 0),
		Mz:         p.Float("mz", in.Mz, 0),
		DirectLoad: p.Float("direct_load", in.DirectLoad, 0),
	}
	if err := p.Err(); err != nil {
		return GlobalLoads{}, err
	}
	return l, nil
}

// ConnectionInput is the raw connection form. Member, bolt configuration and
// load case fields hold identifiers.
type ConnectionInput struct {
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	MemberA           string `json:"member_a" yaml:"member_a"`
	MemberB           string `json:"member_b" yaml:"member_b"`
	ComponentA        string `json:"component_a,omitempty" yaml:"component_a,omitempty"`
	ComponentB        string `json:"component_b,omitempty" yaml:"component_b,omitempty"`
	ConnectionType    string `json:"connection_type,omitempty" yaml:"connection_type,omitempty"`
	BoltConfiguration string `json:"bolt_configuration" yaml:"bolt_configuration"`
	GlobalLoads       string `json:"global_loads" yaml:"global_loads"`
	OverrideAg        Raw    `json:"override_ag,omitempty" yaml:"override_ag,omitempty"`
}

// ConnectionSpec is a validated connection form, ready to be resolved
// against the stored entities
type ConnectionSpec struct {
	Name                string
	MemberAID           string
	MemberBID           string
	ComponentA          Component
	ComponentB          Component
	ConnectionType      string
	BoltConfigurationID string
	GlobalLoadsID       string
	OverrideAg          *float64
}

// Build validates the tags and numeric fields of the form. References are
// not checked here; the store checks them when the connection is created.
func (in ConnectionInput) Build(strict bool) (ConnectionSpec, error) {
	p := &Parser{Strict: strict}

	ca, errA := ParseComponent(in.ComponentA)
	cb, errB := ParseComponent(in.ComponentB)
	ctype, errT := ParseConnectionType(in.ConnectionType)
	if err := errors.Join(wrapField("component_a", errA), wrapField("component_b", errB), wrapField("connection_type", errT)); err != nil {
		return ConnectionSpec{}, err
	}

	spec := ConnectionSpec{
		Name:                in.Name,
		MemberAID:           in.MemberA,
		MemberBID:           in.MemberB,
		ComponentA:          ca,
		ComponentB:          cb,
		ConnectionType:      ctype,
		BoltConfigurationID: in.BoltConfiguration,
		GlobalLoadsID:       in.GlobalLoads,
		OverrideAg:          p.OptionalFloat("override_ag", in.OverrideAg),
	}
	if err := p.Err(); err != nil {
		return ConnectionSpec{}, err
	}
	return spec, nil
}

func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Msg: err.Error()}
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
