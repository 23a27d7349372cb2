package builder

import (
	"math"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
)

const (
	// minSegment is the shortest usable segment; anything under 1 mm is
	// treated as a duplicate point and skipped.
	minSegment = 0.001
	// bendOverlap is the fraction of the section radius by which
	// interior segment ends are extended so consecutive extrusions
	// overlap at bends instead of leaving gaps.
	bendOverlap = 0.5
)

// segmentRef returns a unit reference direction perpendicular to the
// extrusion axis dir. For mostly-horizontal segments it is derived from
// the world-up cross product; near-vertical segments fall back to world X.
func segmentRef(dir geom.Vec3) geom.Vec3 {
	if math.Abs(dir.Z) < 0.9 {
		// up x dir, so the profile's y axis stays upward.
		ref := geom.Vec3{X: -dir.Y, Y: dir.X}
		if ref.Length() > 1e-6 {
			return ref.Normalize()
		}
	}
	return geom.Vec3{X: 1}
}

// sweepCircular builds one circular-profile extrusion per usable path
// segment. Points are absolute target-convention coordinates, so every
// produced solid is baked: callers must emit them under an identity
// placement. When extendAtBends is set, interior segment ends are pushed
// out by radius*bendOverlap along their own direction; the global path
// start and end are never extended.
func sweepCircular(points []geom.Vec3, radius float64, extendAtBends bool) []ifc.Solid {
	return sweepSections(points, func() ifc.Profile {
		return ifc.CircleProfile{Radius: radius}
	}, radius, extendAtBends)
}

// sweepProfile sweeps an arbitrary profile along the path with no bend
// extension, one extrusion per segment.
func sweepProfile(points []geom.Vec3, profile ifc.Profile) []ifc.Solid {
	return sweepSections(points, func() ifc.Profile { return profile }, 0, false)
}

func sweepSections(points []geom.Vec3, profile func() ifc.Profile, radius float64, extendAtBends bool) []ifc.Solid {
	if len(points) < 2 {
		return nil
	}
	var solids []ifc.Solid
	last := len(points) - 1
	for i := 0; i < last; i++ {
		start, end := points[i], points[i+1]
		delta := end.Sub(start)
		length := delta.Length()
		if length < minSegment {
			continue
		}
		dir := delta.Scale(1 / length)

		if extendAtBends {
			ext := radius * bendOverlap
			if i > 0 {
				start = start.Sub(dir.Scale(ext))
				length += ext
			}
			if i+1 < last {
				length += ext
			}
		}

		solids = append(solids, ifc.ExtrudedSolid{
			Profile: profile(),
			Position: ifc.Axis3{
				Location:     start,
				Axis:         dir,
				RefDirection: segmentRef(dir),
			},
			Direction: geom.Vec3{Z: 1},
			Depth:     length,
		})
	}
	return solids
}
