// Package ifc is the exchange-document sink for the geometry pipeline.
// It models the subset of the target format the builders need (spatial
// hierarchy, elements, solid geometry items, surface styles and property
// sets) behind a small concrete Document that hides the serialization
// details from the rest of the pipeline.
package ifc

import "github.com/infragrid/ifcforge/pkg/geom"

// Profile is a closed 2D cross-section. Coordinates are in the profile's
// local XY plane, meters.
type Profile interface {
	profile()
}

// RectangleProfile is an axis-aligned rectangle centered at Center.
type RectangleProfile struct {
	XDim   float64
	YDim   float64
	Center [2]float64
}

// CircleProfile is a disk of the given radius centered at Center.
type CircleProfile struct {
	Radius float64
	Center [2]float64
}

// HollowCircleProfile is an annulus: outer Radius with a wall of the
// given thickness.
type HollowCircleProfile struct {
	Radius        float64
	WallThickness float64
}

// PolygonProfile is an arbitrary closed polygon. The last point is
// implicitly connected back to the first.
type PolygonProfile struct {
	Points [][2]float64
}

// ProfileWithVoids is an outer profile with inner profiles cut out of it
// (wall rings, lid vent holes, sign-shape holes).
type ProfileWithVoids struct {
	Outer Profile
	Voids []Profile
}

func (RectangleProfile) profile()    {}
func (CircleProfile) profile()       {}
func (HollowCircleProfile) profile() {}
func (PolygonProfile) profile()      {}
func (ProfileWithVoids) profile()    {}

// Axis3 is a local coordinate frame: a location plus an extrusion axis
// and a reference direction perpendicular to it.
type Axis3 struct {
	Location     geom.Vec3
	Axis         geom.Vec3 // local Z
	RefDirection geom.Vec3 // local X
}

// WorldAxis returns the canonical frame at the given location (Z up,
// X as reference).
func WorldAxis(at geom.Vec3) Axis3 {
	return Axis3{
		Location:     at,
		Axis:         geom.Vec3{Z: 1},
		RefDirection: geom.Vec3{X: 1},
	}
}

// Solid is one solid geometry item. Each builder owns the items it
// creates until they are attached to an element; items are never shared
// or mutated afterwards.
type Solid interface {
	solid()
}

// ExtrudedSolid extrudes Profile from Position along Direction (in the
// frame's coordinates) by Depth meters.
type ExtrudedSolid struct {
	Profile   Profile
	Position  Axis3
	Direction geom.Vec3
	Depth     float64
}

// SweptDiskSolid sweeps a disk of Radius along the polyline Path. Path
// points are absolute target-convention coordinates.
type SweptDiskSolid struct {
	Path        []geom.Vec3
	Radius      float64
	InnerRadius float64 // zero for a solid section
}

// TriangulatedMesh is explicit vertex + triangle-index geometry in
// absolute target-convention coordinates.
type TriangulatedMesh struct {
	Vertices  []geom.Vec3
	Triangles [][3]int
}

func (ExtrudedSolid) solid()    {}
func (SweptDiskSolid) solid()   {}
func (TriangulatedMesh) solid() {}

// Extrude is shorthand for a vertical extrusion of a profile from a
// world-frame location.
func Extrude(p Profile, at geom.Vec3, depth float64) ExtrudedSolid {
	return ExtrudedSolid{
		Profile:   p,
		Position:  WorldAxis(at),
		Direction: geom.Vec3{Z: 1},
		Depth:     depth,
	}
}
