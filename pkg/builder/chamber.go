package builder

import (
	"math"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// Chamber builds a manhole chamber and, when configured, its access lid
// as a second element sharing the chamber's rotation. Both use absolute
// local placement.
//
// The producing app anchors chamber positions at the cover, so the
// element origin is dropped to the base of the solid stack: half a
// height below the invert, less the base-slab thickness.
func Chamber(ctx Context, c model.Chamber) []*ifc.Element {
	pos := ctx.Point(c.Position)
	height := math.Max(c.CoverLevel-c.InvertLevel, model.MinChamberHeight)

	coverElev := pos.Z
	invertElev := coverElev - height
	bottomElev := invertElev - height/2 - c.BaseThickness

	e := ifc.NewElement(ifc.ClassProxy, c.Label())
	e.PredefinedType = "USERDEFINED"
	e.PlacementKind = ifc.PlacementAbsolute
	e.Placement = geom.Placement(c.Rotation, geom.Vec3{X: pos.X, Y: pos.Y, Z: bottomElev})

	color := ifc.ParseHexColor(c.Color)
	hasThickness := c.WallThickness > 0 || c.BaseThickness > 0 || c.TopThickness > 0
	if hasThickness {
		e.AddPart("structure", color, chamberStack(c, height)...)
	} else {
		// No construction thicknesses: a single simple extrusion.
		e.AddPart("body", color, ifc.Extrude(chamberPlan(c), geom.Vec3{}, height))
	}

	e.AddPropertySet(ifc.PropertySet{
		Name: "Pset_ChamberCommon",
		Properties: []ifc.Property{
			{Name: "CoverLevel", Value: c.CoverLevel},
			{Name: "InvertLevel", Value: c.InvertLevel},
			{Name: "Shape", Value: c.Shape},
			{Name: "Material", Value: c.Material},
			{Name: "WallThickness", Value: c.WallThickness},
		},
	})

	elements := []*ifc.Element{e}
	if c.Lid != nil {
		lidTop := bottomElev + c.BaseThickness + height
		if lid := chamberLid(c, pos, lidTop); lid != nil {
			elements = append(elements, lid)
		}
	}
	return elements
}

// chamberPlan resolves the shape-dependent plan profile. For circular
// chambers the diameter wins over width/length.
func chamberPlan(c model.Chamber) ifc.Profile {
	if c.Shape == "circle" && c.Diameter > 0 {
		return ifc.CircleProfile{Radius: c.Diameter / 2}
	}
	return ifc.RectangleProfile{XDim: c.Width, YDim: c.Length}
}

// chamberStack builds the base slab, hollow walls and top slab in local
// coordinates, z=0 at the bottom of the base slab.
func chamberStack(c model.Chamber, height float64) []ifc.Solid {
	var solids []ifc.Solid

	if c.BaseThickness > 0 {
		solids = append(solids, ifc.Extrude(chamberPlan(c), geom.Vec3{}, c.BaseThickness))
	}

	wallBottom := geom.Vec3{Z: c.BaseThickness}
	solids = append(solids, ifc.Extrude(chamberWalls(c), wallBottom, height))

	if c.TopThickness > 0 {
		top := chamberTopSlab(c)
		at := geom.Vec3{Z: c.BaseThickness + height - c.TopThickness}
		solids = append(solids, ifc.Extrude(top, at, c.TopThickness))
	}
	return solids
}

// chamberWalls returns the wall cross-section: a hollow ring or
// rectangle, or the solid plan when no wall thickness is given.
func chamberWalls(c model.Chamber) ifc.Profile {
	if c.WallThickness <= 0 {
		return chamberPlan(c)
	}
	if c.Shape == "circle" && c.Diameter > 0 {
		return ifc.HollowCircleProfile{Radius: c.Diameter / 2, WallThickness: c.WallThickness}
	}
	inner := ifc.RectangleProfile{
		XDim: math.Max(c.Width-2*c.WallThickness, 0.001),
		YDim: math.Max(c.Length-2*c.WallThickness, 0.001),
	}
	return ifc.ProfileWithVoids{Outer: chamberPlan(c), Voids: []ifc.Profile{inner}}
}

// chamberTopSlab returns the top slab profile with an access opening
// sized to the lid's outer frame footprint. The opening is omitted when
// it would not fit inside the chamber plan.
func chamberTopSlab(c model.Chamber) ifc.Profile {
	plan := chamberPlan(c)
	if c.Lid == nil {
		return plan
	}
	if c.Lid.Shape == "circle" || (c.Lid.Shape == "" && c.Shape == "circle") {
		openingRadius := mm(c.Lid.Diameter)/2 + mm(c.Lid.FrameThickness)
		if openingRadius <= 0 || !openingFits(c, openingRadius*2, openingRadius*2) {
			return plan
		}
		return ifc.ProfileWithVoids{Outer: plan, Voids: []ifc.Profile{
			ifc.CircleProfile{Radius: openingRadius},
		}}
	}
	openW := mm(c.Lid.Width) + mm(c.Lid.FrameThickness)
	openL := mm(c.Lid.Length) + mm(c.Lid.FrameThickness)
	if openW <= 0 || openL <= 0 || !openingFits(c, openW, openL) {
		return plan
	}
	return ifc.ProfileWithVoids{Outer: plan, Voids: []ifc.Profile{
		ifc.RectangleProfile{XDim: openW, YDim: openL},
	}}
}

func openingFits(c model.Chamber, w, l float64) bool {
	if c.Shape == "circle" && c.Diameter > 0 {
		return w < c.Diameter && l < c.Diameter
	}
	return w < c.Width && l < c.Length
}

// ventHoleRadius is the radius of a lid vent hole, 20 mm.
const ventHoleRadius = 0.02

// chamberLid builds the lid sub-element: frame ring plus cover plate
// with optional vent holes, positioned so the frame's vertical center
// sits on top of the chamber's wall stack.
func chamberLid(c model.Chamber, pos geom.Vec3, topElev float64) *ifc.Element {
	lid := c.Lid
	thickness := mm(lid.Thickness)
	if thickness <= 0 {
		thickness = 0.05
	}
	frame := mm(lid.FrameThickness)

	circular := lid.Shape == "circle" || (lid.Shape == "" && c.Shape == "circle")
	lidR := mm(lid.Diameter) / 2
	lidW := mm(lid.Width)
	lidL := mm(lid.Length)
	if circular && lidR <= 0 {
		return nil
	}
	if !circular && (lidW <= 0 || lidL <= 0) {
		return nil
	}

	e := ifc.NewElement(ifc.ClassSlab, c.Label()+" Lid")
	e.PredefinedType = "USERDEFINED"
	e.PlacementKind = ifc.PlacementAbsolute
	e.Placement = geom.Placement(c.Rotation, geom.Vec3{X: pos.X, Y: pos.Y, Z: topElev})

	bottom := geom.Vec3{Z: -thickness / 2}
	color := ifc.ParseHexColor(c.Color)

	if frame > 0 {
		var frameProfile ifc.Profile
		if circular {
			frameProfile = ifc.HollowCircleProfile{Radius: lidR + frame, WallThickness: frame}
		} else {
			frameProfile = ifc.ProfileWithVoids{
				Outer: ifc.RectangleProfile{XDim: lidW + 2*frame, YDim: lidL + 2*frame},
				Voids: []ifc.Profile{ifc.RectangleProfile{XDim: lidW, YDim: lidL}},
			}
		}
		e.AddPart("frame", color, ifc.Extrude(frameProfile, bottom, thickness))
	}

	var coverProfile ifc.Profile
	if circular {
		coverProfile = ifc.CircleProfile{Radius: lidR}
	} else {
		coverProfile = ifc.RectangleProfile{XDim: lidW, YDim: lidL}
	}
	if lid.VentHoles > 0 {
		ring := lidR / 2
		if !circular {
			ring = math.Min(lidW, lidL) / 4
		}
		holes := make([]ifc.Profile, 0, lid.VentHoles)
		for i := 0; i < lid.VentHoles; i++ {
			a := 2 * math.Pi * float64(i) / float64(lid.VentHoles)
			holes = append(holes, ifc.CircleProfile{
				Radius: ventHoleRadius,
				Center: [2]float64{ring * math.Cos(a), ring * math.Sin(a)},
			})
		}
		coverProfile = ifc.ProfileWithVoids{Outer: coverProfile, Voids: holes}
	}
	e.AddPart("cover", color, ifc.Extrude(coverProfile, bottom, thickness))
	return e
}
