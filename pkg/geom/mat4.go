package geom

import "math"

// Mat4 is a 4x4 homogeneous transform in row-major order.
type Mat4 [4][4]float64

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Placement builds a rigid transform rotating by angle (radians) about
// the vertical Z axis and translating by t. Rotation is always about the
// single vertical axis; tilt is expressed in element geometry, never here.
func Placement(angle float64, t Vec3) Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat4{
		{c, -s, 0, t.X},
		{s, c, 0, t.Y},
		{0, 0, 1, t.Z},
		{0, 0, 0, 1},
	}
}

// Apply transforms the point p by m.
func (m Mat4) Apply(p Vec3) Vec3 {
	return Vec3{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// Translation returns the translation column of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[0][3], m[1][3], m[2][3]}
}

// IsIdentity reports whether m is the identity transform within eps.
func (m Mat4) IsIdentity(eps float64) bool {
	id := Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(m[i][j]-id[i][j]) > eps {
				return false
			}
		}
	}
	return true
}
