package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTargetRemap(t *testing.T) {
	p := Vec3{X: 10, Y: 2, Z: 5} // easting, elevation, northing
	got := ToTarget(p, Vec3{}, ModeAbsolute)
	assert.Equal(t, Vec3{X: 10, Y: 5, Z: 2}, got)
}

func TestToTargetProjectRelative(t *testing.T) {
	p := Vec3{X: 10, Y: 2, Z: 5}
	origin := Vec3{X: 10, Y: 0, Z: 5}
	got := ToTarget(p, origin, ModeProjectRelative)
	assert.Equal(t, Vec3{X: 0, Y: 0, Z: 2}, got)
}

func TestRoundTrip(t *testing.T) {
	points := []Vec3{
		{1.5, -2.25, 300.125},
		{0, 0, 0},
		{-1e6, 42.42, 1e-9},
	}
	origins := []Vec3{
		{0, 0, 0},
		{123.456, -7.89, 1000},
	}
	for _, p := range points {
		for _, o := range origins {
			q := ToTarget(p, o, ModeProjectRelative)
			back := FromTarget(q).Add(o)
			assert.InDelta(t, p.X, back.X, 1e-9)
			assert.InDelta(t, p.Y, back.Y, 1e-9)
			assert.InDelta(t, p.Z, back.Z, 1e-9)
		}
	}
}

func TestZeroOriginCollapsesModes(t *testing.T) {
	p := Vec3{X: 3.7, Y: -1.1, Z: 9.9}
	abs := ToTarget(p, Vec3{}, ModeAbsolute)
	rel := ToTarget(p, Vec3{}, ModeProjectRelative)
	assert.Equal(t, abs, rel)
}

func TestDirectionToTargetIgnoresTranslation(t *testing.T) {
	d := Vec3{X: 1, Y: 0, Z: 0}
	assert.Equal(t, Vec3{X: 1, Y: 0, Z: 0}, DirectionToTarget(d))
	assert.Equal(t, Vec3{X: 0, Y: 1, Z: 0}, DirectionToTarget(Vec3{Z: 1}))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeProjectRelative, ParseMode("project"))
	assert.Equal(t, ModeProjectRelative, ParseMode(" Project "))
	assert.Equal(t, ModeAbsolute, ParseMode("absolute"))
	assert.Equal(t, ModeAbsolute, ParseMode(""))
	assert.Equal(t, ModeAbsolute, ParseMode("bogus"))
}

func TestPlacementRotation(t *testing.T) {
	m := Placement(math.Pi/2, Vec3{X: 1, Y: 2, Z: 3})
	got := m.Apply(Vec3{X: 1, Y: 0, Z: 0})
	require.InDelta(t, 1, got.X, 1e-9) // rotated onto +Y, then translated
	require.InDelta(t, 3, got.Y, 1e-9)
	require.InDelta(t, 3, got.Z, 1e-9)
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, m.Translation())
}

func TestPlacementVerticalAxisOnly(t *testing.T) {
	m := Placement(1.234, Vec3{})
	// Z is untouched by vertical-axis rotation.
	got := m.Apply(Vec3{Z: 5})
	assert.InDelta(t, 5, got.Z, 1e-12)
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)
}

func TestIsIdentity(t *testing.T) {
	assert.True(t, Identity().IsIdentity(1e-12))
	assert.False(t, Placement(0.1, Vec3{}).IsIdentity(1e-9))
	assert.False(t, Placement(0, Vec3{X: 1}).IsIdentity(1e-9))
}

func TestVecOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.Equal(t, Vec3{-3, 6, -3}, a.Cross(b))
	n := Vec3{3, 0, 4}.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
