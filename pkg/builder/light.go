package builder

import (
	"math"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// embedDepth is how far an embedded pole continues below grade, 500 mm.
const embedDepth = 0.5

// PublicLight builds a lighting column or signpost. The element origin
// sits at grade under the pole; local z is up and the arm (or sign face)
// points along local +x / +y before the placement rotation is applied.
// Signposts get a second part group for the plate; lights get arms and
// luminaire heads per the fixture style.
func PublicLight(ctx Context, l model.PublicLight) []*ifc.Element {
	pos := ctx.Point(l.Position)

	class := ifc.ClassLightFixture
	if l.IsSign() {
		class = ifc.ClassSign
	}
	e := ifc.NewElement(class, l.Label())
	e.PredefinedType = "USERDEFINED"
	e.PlacementKind = ifc.PlacementAbsolute
	e.Placement = geom.Placement(l.Rotation, pos)

	poleColor := ifc.ParseHexColor(l.Pole.Color)
	e.AddPart("pole", poleColor, poleSolids(l.Pole)...)

	elements := []*ifc.Element{e}
	if foot := lightFoundation(l, pos); foot != nil {
		elements = append(elements, foot)
	}

	if l.IsSign() && l.Sign != nil {
		signParts(e, l.Sign, l.Pole)
	} else if !l.IsSign() {
		fixtureParts(e, l.Pole, l.Fixture)
	}

	e.AddPropertySet(ifc.PropertySet{
		Name: "Pset_PoleCommon",
		Properties: []ifc.Property{
			{Name: "PoleHeight", Value: l.Pole.Height},
			{Name: "BaseType", Value: l.Pole.BaseType},
			{Name: "Type", Value: l.Type},
		},
	})
	return elements
}

// poleSolids builds the pole shaft plus its base hardware. The taper is
// approximated by a cylinder at the mean of the bottom and top radii.
func poleSolids(p model.PoleConfig) []ifc.Solid {
	bottomR := mm(p.Diameter) / 2
	topR := bottomR * p.TaperRatio
	avgR := (bottomR + topR) / 2

	shaftBase, shaftLen := 0.0, p.Height
	if p.BaseType == model.BaseEmbedded {
		shaftBase = -embedDepth
		shaftLen += embedDepth
	}
	solids := []ifc.Solid{
		ifc.Extrude(ifc.CircleProfile{Radius: avgR}, geom.Vec3{Z: shaftBase}, shaftLen),
	}
	if p.BaseType == model.BaseBaseplate {
		solids = append(solids, baseplateSolids(p, bottomR)...)
	}
	return solids
}

// baseplateSolids builds the square plate, gussets and anchor bolt
// assemblies of a baseplate-mounted pole.
func baseplateSolids(p model.PoleConfig, poleR float64) []ifc.Solid {
	plateW := mm(p.BaseplateWidth)
	plateT := mm(p.BaseplateThickness)

	solids := []ifc.Solid{
		ifc.Extrude(ifc.RectangleProfile{XDim: plateW, YDim: plateW}, geom.Vec3{}, plateT),
	}

	gussets := p.GussetCount
	if gussets <= 0 {
		gussets = 4
	}
	gh := mm(p.GussetHeight)
	gt := mm(p.GussetThickness)
	gLen := (plateW/2 - poleR) * 0.8
	if gLen > 0 && gh > 0 {
		for i := 0; i < gussets; i++ {
			a := 2 * math.Pi * float64(i) / float64(gussets)
			mid := poleR + gLen/2
			solids = append(solids, ifc.ExtrudedSolid{
				Profile: ifc.RectangleProfile{XDim: gLen, YDim: gt},
				Position: ifc.Axis3{
					Location:     geom.Vec3{X: mid * math.Cos(a), Y: mid * math.Sin(a), Z: plateT},
					Axis:         geom.Vec3{Z: 1},
					RefDirection: geom.Vec3{X: math.Cos(a), Y: math.Sin(a)},
				},
				Direction: geom.Vec3{Z: 1},
				Depth:     gh,
			})
		}
	}

	boltR := mm(p.BoltDiameter) / 2
	boltLen := mm(p.BoltLength)
	for _, c := range boltPattern(p.BoltCount, mm(p.BoltCircle)/2) {
		stickout := boltR * 4
		solids = append(solids,
			// Anchor shaft: mostly below the plate, threads poking through.
			ifc.Extrude(ifc.CircleProfile{Radius: boltR},
				geom.Vec3{X: c.X, Y: c.Y, Z: plateT + stickout - boltLen}, boltLen),
			// Washer, then hex nut approximated by a short wide cylinder.
			ifc.Extrude(ifc.CircleProfile{Radius: boltR * 2.2},
				geom.Vec3{X: c.X, Y: c.Y, Z: plateT}, boltR*0.3),
			ifc.Extrude(ifc.CircleProfile{Radius: boltR * 1.8},
				geom.Vec3{X: c.X, Y: c.Y, Z: plateT + boltR*0.3}, boltR*1.6))
	}
	return solids
}

// boltPattern returns anchor bolt centers: four bolts sit on the plate
// diagonals, any other count spreads evenly around the bolt circle.
func boltPattern(count int, circleR float64) []geom.Vec3 {
	pts := make([]geom.Vec3, 0, count)
	if count == 4 {
		d := circleR / math.Sqrt2
		for _, s := range [][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}} {
			pts = append(pts, geom.Vec3{X: s[0] * d, Y: s[1] * d})
		}
		return pts
	}
	for i := 0; i < count; i++ {
		a := 2 * math.Pi * float64(i) / float64(count)
		pts = append(pts, geom.Vec3{X: circleR * math.Cos(a), Y: circleR * math.Sin(a)})
	}
	return pts
}

// lightFoundation builds the below-grade concrete block as a separate
// footing element when the pole is foundation-mounted.
func lightFoundation(l model.PublicLight, pos geom.Vec3) *ifc.Element {
	if l.Pole.BaseType != model.BaseFoundation {
		return nil
	}
	w := mm(l.Pole.FoundationWidth)
	d := mm(l.Pole.FoundationHeight)

	e := ifc.NewElement(ifc.ClassFooting, l.Label()+" Foundation")
	e.PredefinedType = "PAD_FOOTING"
	e.PlacementKind = ifc.PlacementAbsolute
	e.Placement = geom.Placement(l.Rotation, pos)
	e.AddPart("foundation", ifc.ParseHexColor("#999999"),
		ifc.Extrude(ifc.RectangleProfile{XDim: w, YDim: w}, geom.Vec3{Z: -d}, d))
	return e
}

// fixtureParts adds luminaire heads per the configured style. Multiple
// heads are spread at equal azimuths around the pole top.
func fixtureParts(e *ifc.Element, p model.PoleConfig, f model.FixtureConfig) {
	color := ifc.ParseHexColor(f.HousingColor)
	topZ := p.Height
	topR := mm(p.Diameter) / 2 * p.TaperRatio

	switch f.Style {
	case model.FixturePostTop:
		e.AddPart("head", color, postTopSolids(topZ, topR)...)
		return
	case model.FixtureLantern:
		e.AddPart("head", color, lanternSolids(topZ, f)...)
		return
	}

	// Shoebox and flood heads hang off arms.
	var arms, heads []ifc.Solid
	for i := 0; i < f.Count; i++ {
		azimuth := 2 * math.Pi * float64(i) / float64(f.Count)
		arm, head := armAndHead(topZ, topR, azimuth, f)
		arms = append(arms, arm...)
		heads = append(heads, head)
	}
	if len(arms) > 0 {
		e.AddPart("arms", color, arms...)
	}
	e.AddPart("heads", color, heads...)
}

// armAndHead builds one bracket arm leaving the pole top at the given
// azimuth with the configured downward tilt, and the housing box at its
// end.
func armAndHead(topZ, topR, azimuth float64, f model.FixtureConfig) ([]ifc.Solid, ifc.Solid) {
	tilt := f.ArmAngle * math.Pi / 180
	out := geom.Vec3{X: math.Cos(azimuth), Y: math.Sin(azimuth)}

	start := out.Scale(topR).Add(geom.Vec3{Z: topZ})
	reach := f.ArmLength
	var arm []ifc.Solid
	var end geom.Vec3
	if reach > 0 {
		end = start.
			Add(out.Scale(reach * math.Cos(tilt))).
			Add(geom.Vec3{Z: -reach * math.Sin(tilt)})
		arm = append(arm, ifc.SweptDiskSolid{
			Path:   []geom.Vec3{start, end},
			Radius: mm(f.ArmDiameter) / 2,
		})
	} else {
		end = geom.Vec3{Z: topZ}
	}

	w, h, d := mm(f.Width), mm(f.Height), mm(f.Depth)
	head := ifc.ExtrudedSolid{
		Profile: ifc.RectangleProfile{XDim: w, YDim: d},
		Position: ifc.Axis3{
			Location:     geom.Vec3{X: end.X, Y: end.Y, Z: end.Z - h},
			Axis:         geom.Vec3{Z: 1},
			RefDirection: out,
		},
		Direction: geom.Vec3{Z: 1},
		Depth:     h,
	}
	return arm, head
}

// Disc counts for the sphere and cone approximations.
const (
	sphereSteps = 8
	roofSteps   = 5
)

// sphereDiscs approximates a sphere of radius r resting on baseZ as a
// stack of n discs whose radius follows the sphere section at each
// disc's midplane.
func sphereDiscs(r, baseZ float64, n int) []ifc.Solid {
	step := 2 * r / float64(n)
	solids := make([]ifc.Solid, 0, n)
	for i := 0; i < n; i++ {
		d := (float64(i)+0.5)*step - r
		sect := math.Sqrt(math.Max(r*r-d*d, 0))
		if sect <= 0 {
			continue
		}
		solids = append(solids, ifc.Extrude(ifc.CircleProfile{Radius: sect},
			geom.Vec3{Z: baseZ + float64(i)*step}, step))
	}
	return solids
}

// postTopSolids builds a decorative post-top head: a short collar with
// a globe luminaire above it, the globe a sphere disc stack.
func postTopSolids(topZ, topR float64) []ifc.Solid {
	globeR := math.Max(topR*2.5, 0.15)
	solids := []ifc.Solid{
		ifc.Extrude(ifc.CircleProfile{Radius: topR * 1.2}, geom.Vec3{Z: topZ}, 0.05),
	}
	return append(solids, sphereDiscs(globeR, topZ+0.05, sphereSteps)...)
}

// lanternSolids builds a traditional lantern: base cap, hexagonal glass
// body, a tapered conical roof as a stack of shrinking discs, and a
// small spherical finial.
func lanternSolids(topZ float64, f model.FixtureConfig) []ifc.Solid {
	w := mm(f.Width)
	h := mm(f.Height)
	if w <= 0 {
		w = 0.3
	}
	if h <= 0 {
		h = 0.45
	}
	r := w / 2
	solids := []ifc.Solid{
		ifc.Extrude(ifc.CircleProfile{Radius: r * 0.5}, geom.Vec3{Z: topZ}, h*0.1),
		ifc.Extrude(hexagon(r), geom.Vec3{Z: topZ + h*0.1}, h*0.55),
	}
	roofBase := topZ + h*0.65
	roofH := h * 0.25
	step := roofH / roofSteps
	for i := 0; i < roofSteps; i++ {
		taper := 1 - (float64(i)+0.5)/roofSteps
		solids = append(solids, ifc.Extrude(
			ifc.CircleProfile{Radius: r * 1.1 * taper},
			geom.Vec3{Z: roofBase + float64(i)*step}, step))
	}
	return append(solids, sphereDiscs(r*0.12, roofBase+roofH, sphereSteps)...)
}

func hexagon(r float64) ifc.Profile {
	pts := make([][2]float64, 6)
	for i := range pts {
		a := math.Pi/6 + 2*math.Pi*float64(i)/6
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	return ifc.PolygonProfile{Points: pts}
}
