package builder

import (
	"math"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// defaultShapeDepth is the relief depth of a sign face shape, 1 mm.
const defaultShapeDepth = 0.001

// signAxis orients a profile so its plane is the local XZ plane and the
// extrusion runs toward local -y, which puts the profile's y axis
// upward. The plate front face sits at the location's y.
func signAxis(at geom.Vec3) ifc.Axis3 {
	return ifc.Axis3{
		Location:     at,
		Axis:         geom.Vec3{Y: -1},
		RefDirection: geom.Vec3{X: 1},
	}
}

// signParts adds the sign plate, its border and its face shapes to the
// post element. The plate is centered below the pole top and faces local
// +y; shapes are grouped by fill color and raised off the face.
func signParts(e *ifc.Element, s *model.SignConfig, p model.PoleConfig) {
	plate, plateH := signPlate(s)
	if plate == nil {
		return
	}
	thickness := mm(s.Thickness)
	poleR := mm(p.Diameter) / 2 * p.TaperRatio
	centerZ := p.Height - plateH/2
	faceY := poleR + thickness

	background := plate
	border := signBorder(s)
	if s.VentHoles > 0 {
		background = ventedProfile(background, plateH, s.VentHoles)
	}

	e.AddPart("plate", ifc.ParseHexColor(s.BackgroundColor), ifc.ExtrudedSolid{
		Profile:   background,
		Position:  signAxis(geom.Vec3{Y: faceY, Z: centerZ}),
		Direction: geom.Vec3{Z: 1},
		Depth:     thickness,
	})
	if border != nil {
		e.AddPart("border", ifc.ParseHexColor(s.BorderColor), ifc.ExtrudedSolid{
			Profile:   border,
			Position:  signAxis(geom.Vec3{Y: faceY + defaultShapeDepth, Z: centerZ}),
			Direction: geom.Vec3{Z: 1},
			Depth:     defaultShapeDepth,
		})
	}

	for color, profiles := range shapesByColor(s.Shapes) {
		solids := make([]ifc.Solid, 0, len(profiles))
		for _, sp := range profiles {
			solids = append(solids, ifc.ExtrudedSolid{
				Profile:   sp.profile,
				Position:  signAxis(geom.Vec3{Y: faceY + sp.depth, Z: centerZ}),
				Direction: geom.Vec3{Z: 1},
				Depth:     sp.depth,
			})
		}
		e.AddPart("face", ifc.ParseHexColor(color), solids...)
	}
}

// signPlate resolves the plate outline profile and its overall height in
// meters. Returns nil when no usable dimensions are given.
func signPlate(s *model.SignConfig) (ifc.Profile, float64) {
	switch {
	case s.Shape == "circle" && s.Diameter > 0:
		d := mm(s.Diameter)
		return ifc.CircleProfile{Radius: d / 2}, d
	case s.Shape == "custom" && len(s.Outline) >= 3:
		pts, h := polygonMM(s.Outline)
		return ifc.PolygonProfile{Points: pts}, h
	case s.Width > 0 && s.Height > 0:
		return ifc.RectangleProfile{XDim: mm(s.Width), YDim: mm(s.Height)}, mm(s.Height)
	}
	return nil, 0
}

// signBorder returns the raised border ring, or nil when no border width
// is configured or the plate is a custom outline.
func signBorder(s *model.SignConfig) ifc.Profile {
	b := mm(s.BorderWidth)
	if b <= 0 {
		return nil
	}
	if s.Shape == "circle" && s.Diameter > 0 {
		return ifc.HollowCircleProfile{Radius: mm(s.Diameter) / 2, WallThickness: b}
	}
	if s.Width > 0 && s.Height > 0 {
		w, h := mm(s.Width), mm(s.Height)
		if w <= 2*b || h <= 2*b {
			return nil
		}
		return ifc.ProfileWithVoids{
			Outer: ifc.RectangleProfile{XDim: w, YDim: h},
			Voids: []ifc.Profile{ifc.RectangleProfile{XDim: w - 2*b, YDim: h - 2*b}},
		}
	}
	return nil
}

// ventedProfile cuts drain holes near the plate's bottom edge.
func ventedProfile(plate ifc.Profile, plateH float64, count int) ifc.Profile {
	holes := make([]ifc.Profile, 0, count)
	span := plateH * 0.6
	for i := 0; i < count; i++ {
		x := -span/2 + span*float64(i)/float64(max(count-1, 1))
		if count == 1 {
			x = 0
		}
		holes = append(holes, ifc.CircleProfile{
			Radius: ventHoleRadius / 4,
			Center: [2]float64{x, -plateH * 0.4},
		})
	}
	return ifc.ProfileWithVoids{Outer: plate, Voids: holes}
}

type coloredShape struct {
	profile ifc.Profile
	depth   float64
}

// shapesByColor converts face shapes to profiles grouped by fill color,
// so each color becomes one styled part.
func shapesByColor(shapes []model.SignShape) map[string][]coloredShape {
	out := make(map[string][]coloredShape)
	for _, s := range shapes {
		if len(s.Points) < 3 {
			continue
		}
		pts, _ := polygonMM(s.Points)
		var profile ifc.Profile = ifc.PolygonProfile{Points: pts}
		if len(s.Holes) > 0 {
			voids := make([]ifc.Profile, 0, len(s.Holes))
			for _, h := range s.Holes {
				if len(h) < 3 {
					continue
				}
				hp, _ := polygonMM(h)
				voids = append(voids, ifc.PolygonProfile{Points: hp})
			}
			if len(voids) > 0 {
				profile = ifc.ProfileWithVoids{Outer: profile, Voids: voids}
			}
		}
		depth := mm(s.Depth)
		if depth <= 0 {
			depth = defaultShapeDepth
		}
		out[s.Color] = append(out[s.Color], coloredShape{profile: profile, depth: depth})
	}
	return out
}

// polygonMM converts a millimeter point loop to meters and reports its
// vertical extent.
func polygonMM(points [][2]float64) ([][2]float64, float64) {
	out := make([][2]float64, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		out[i] = [2]float64{mm(p[0]), mm(p[1])}
		minY = math.Min(minY, out[i][1])
		maxY = math.Max(maxY, out[i][1])
	}
	return out, maxY - minY
}
