package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

func TestMemberInput_SteelSection(t *testing.T) {
	m, err := MemberInput{Kind: "steel-section", SectionName: "W18X76", Role: "column", Length: "12"}.Build(false)
	require.NoError(t, err)

	assert.Equal(t, KindSteelSection, m.Kind())
	s, ok := m.Shape.(SteelSection)
	require.True(t, ok)
	assert.Equal(t, "W18X76", s.SectionName)
	assert.Equal(t, RoleColumn, s.Role)
	assert.Equal(t, DefaultSectionClass, s.SectionClass)
	assert.Equal(t, 12.0, m.Length)
	assert.Equal(t, "A992", m.Material)
}

func TestMemberInput_SteelpyAlias(t *testing.T) {
	m, err := MemberInput{Kind: "steelpy"}.Build(false)
	require.NoError(t, err)
	assert.Equal(t, KindSteelSection, m.Kind())
	assert.Equal(t, "W21X83 4", m.DefaultName(4))
}

func TestMemberInput_PlateIgnoresSectionFields(t *testing.T) {
	m, err := MemberInput{Kind: "plate", SectionName: "W21X83", Role: "nonsense", Thickness: "0.5"}.Build(false)
	require.NoError(t, err)

	p, ok := m.Shape.(Plate)
	require.True(t, ok)
	assert.Equal(t, 0.5, p.Thickness)
	assert.Equal(t, DefaultPlateWidth, p.Width)
	assert.Equal(t, "Plate 2", m.DefaultName(2))
}

func TestMemberInput_LenientFallback(t *testing.T) {
	m, err := MemberInput{Kind: "plate", Thickness: "half an inch", Length: "?"}.Build(false)
	require.NoError(t, err)
	assert.Equal(t, DefaultPlateThickness, m.Shape.(Plate).Thickness)
	assert.Equal(t, DefaultMemberLength, m.Length)
}

func TestMemberInput_StrictRejects(t *testing.T) {
	_, err := MemberInput{Kind: "plate", Thickness: "half an inch", Width: "wide"}.Build(true)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), "thickness")
	assert.Contains(t, err.Error(), "width")
}

func TestMemberInput_UnknownKindAndRole(t *testing.T) {
	_, err := MemberInput{Kind: "timber"}.Build(false)
	assert.Error(t, err)

	_, err = MemberInput{Kind: "steel-section", Role: "GIRDER"}.Build(false)
	assert.Error(t, err)
}

func TestMember_Thickness(t *testing.T) {
	beam := Member{Shape: SteelSection{SectionName: "W21X83"}}

	tw, ok := beam.Thickness(ComponentWeb)
	require.True(t, ok)
	assert.Equal(t, 0.515, tw)

	tf, _ := beam.Thickness(ComponentFlange)
	assert.Equal(t, 0.835, tf)

	total, _ := beam.Thickness(ComponentTotal)
	assert.Equal(t, 0.515, total)

	plate := Member{Shape: Plate{Thickness: 0.5}}
	tp, ok := plate.Thickness(ComponentFlange)
	require.True(t, ok)
	assert.Equal(t, 0.5, tp)

	_, ok = Member{Shape: SteelSection{SectionName: "HSS8X8X1/2"}}.Thickness(ComponentTotal)
	assert.False(t, ok)

	_, ok = Member{}.Thickness(ComponentTotal)
	assert.False(t, ok)
}

func TestBoltConfigurationInput_Defaults(t *testing.T) {
	b, err := BoltConfigurationInput{}.Build(false)
	require.NoError(t, err)

	assert.Equal(t, 14, b.BoltCount())
	assert.Equal(t, aisc.DefaultBoltDiameter, b.Diameter)
	assert.Equal(t, aisc.A325X, b.Grade)
	assert.Equal(t, ConnectionTypeBolted, b.ConnectionType)
	assert.Equal(t, DefaultAngle, b.Angle)
}

func TestBoltConfigurationInput_DiameterFallback(t *testing.T) {
	for _, raw := range []Raw{"0", "-0.5", "seven-eighths"} {
		b, err := BoltConfigurationInput{Diameter: raw}.Build(false)
		require.NoError(t, err, "diameter %q", raw)
		assert.Equal(t, 0.875, b.Diameter, "diameter %q", raw)
	}
}

func TestBoltConfigurationInput_RejectsEmptyPattern(t *testing.T) {
	_, err := BoltConfigurationInput{Rows: "0", Columns: "7"}.Build(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one row")
}

func TestBoltConfigurationInput_RowsAsDecimal(t *testing.T) {
	b, err := BoltConfigurationInput{Rows: "3.0", Columns: "4"}.Build(true)
	require.NoError(t, err)
	assert.Equal(t, 12, b.BoltCount())

	_, err = BoltConfigurationInput{Rows: "2.5"}.Build(true)
	assert.Error(t, err)
}

func TestBoltConfigurationInput_UnknownGrade(t *testing.T) {
	_, err := BoltConfigurationInput{Grade: "A307"}.Build(false)
	assert.Error(t, err)
}

func TestGlobalLoadsInput(t *testing.T) {
	l, err := GlobalLoadsInput{Fx: "3", Fy: "4", DirectLoad: "150"}.Build(false)
	require.NoError(t, err)
	assert.Equal(t, 150.0, l.DirectLoad)
	assert.Equal(t, 3.0, l.Vector().Fx)

	l, err = GlobalLoadsInput{DirectLoad: "lots"}.Build(false)
	require.NoError(t, err)
	assert.Zero(t, l.DirectLoad)

	_, err = GlobalLoadsInput{DirectLoad: "lots"}.Build(true)
	assert.Error(t, err)
}

func TestConnectionInput_Build(t *testing.T) {
	spec, err := ConnectionInput{
		MemberA:           "member-1",
		MemberB:           "member-2",
		ComponentA:        "web",
		BoltConfiguration: "bolt-config-1",
		GlobalLoads:       "global-loads-1",
		OverrideAg:        "12.5",
	}.Build(false)
	require.NoError(t, err)

	assert.Equal(t, ComponentWeb, spec.ComponentA)
	assert.Equal(t, ComponentTotal, spec.ComponentB)
	require.NotNil(t, spec.OverrideAg)
	assert.Equal(t, 12.5, *spec.OverrideAg)

	spec, err = ConnectionInput{}.Build(false)
	require.NoError(t, err)
	assert.Nil(t, spec.OverrideAg)
}

func TestConnectionInput_InvalidTags(t *testing.T) {
	_, err := ConnectionInput{ComponentA: "STIFFENER", ConnectionType: "welded"}.Build(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component_a")
	assert.Contains(t, err.Error(), "connection_type")
}

func TestRaw_UnmarshalJSON(t *testing.T) {
	var in BoltConfigurationInput
	require.NoError(t, json.Unmarshal([]byte(`{"rows": 2, "columns": "7", "bolt_diameter": null}`), &in))

	assert.Equal(t, Raw("2"), in.Rows)
	assert.Equal(t, Raw("7"), in.Columns)
	assert.Equal(t, Raw(""), in.Diameter)
}

func TestParser_Lenient(t *testing.T) {
	p := &Parser{}
	assert.Equal(t, 1.5, p.Float("x", "1.5", 9))
	assert.Equal(t, 9.0, p.Float("x", "abc", 9))
	assert.Equal(t, 9.0, p.Float("x", "NaN", 9))
	assert.Equal(t, 9.0, p.Float("x", "  ", 9))
	assert.NoError(t, p.Err())
}

func TestParser_StrictCollects(t *testing.T) {
	p := &Parser{Strict: true}
	p.Float("a", "x", 0)
	p.Int("b", "y", 0)
	p.OptionalFloat("c", "z")

	err := p.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a:")
	assert.Contains(t, err.Error(), "b:")
	assert.Contains(t, err.Error(), "c:")
}
