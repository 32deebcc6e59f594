package capacity

import (
	"math"

	"github.com/alexiusacademia/gobolt/internal/aisc"
)

// BlockShearGeometry describes a rectangular bolt pattern on one ply.
// The load acts along the column direction: the shear planes run along the
// columns and the tension plane runs across the rows.
type BlockShearGeometry struct {
	Rows           int
	Columns        int
	RowSpacing     float64 // in
	ColumnSpacing  float64 // in
	EdgeVertical   float64 // in, edge distance at the end of the tension plane
	EdgeHorizontal float64 // in, edge distance at the end of the shear planes
}

// BlockShearAreas holds the failure-path areas of a block shear check (in²)
type BlockShearAreas struct {
	Agv float64 // Gross area subject to shear
	Anv float64 // Net area subject to shear
	Ant float64 // Net area subject to tension
}

// Areas calculates the block shear areas for a ply of thickness t and bolts
// of diameter d, using the standard hole width d + 1/8".
func (g BlockShearGeometry) Areas(t, d float64) BlockShearAreas {
	t = nonNegative(t)
	if g.Rows <= 0 || g.Columns <= 0 || t == 0 {
		return BlockShearAreas{}
	}
	dh := boltDiameter(d) + aisc.HoleAllowance

	// Shear plane: end edge plus the spacing between columns
	lgv := nonNegative(g.EdgeHorizontal) + float64(g.Columns-1)*nonNegative(g.ColumnSpacing)
	lnv := lgv - (float64(g.Columns)-0.5)*dh

	// Tension plane: side edge plus the spacing between rows
	lgt := nonNegative(g.EdgeVertical) + float64(g.Rows-1)*nonNegative(g.RowSpacing)
	lnt := lgt - (float64(g.Rows)-0.5)*dh

	return BlockShearAreas{
		Agv: lgv * t,
		Anv: math.Max(lnv, 0) * t,
		Ant: math.Max(lnt, 0) * t,
	}
}
