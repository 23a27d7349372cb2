package builder

import (
	"math"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// Hanger builds a trapeze hanger: two threaded rods dropping from the
// anchor point with a channel crossbar at the bottom. The local origin
// sits at the ceiling anchor, one drop above the given position, so the
// bottom bar comes out centered at the tray level. The crossbar spans
// perpendicular to the tray run, so the placement rotation is the run
// direction plus a quarter turn.
func Hanger(ctx Context, h model.Hanger) *ifc.Element {
	drop := mm(h.Height)
	pos := ctx.Point(h.Position.Vec()).Add(geom.Vec3{Z: drop})

	angle := h.Rotation
	if angle == 0 {
		dir := ctx.Direction(h.Direction.Vec())
		if dir.X != 0 || dir.Y != 0 {
			angle = math.Atan2(dir.Y, dir.X)
		}
	}
	angle += math.Pi / 2

	name := h.ID
	if name == "" {
		name = "Hanger"
	}
	e := ifc.NewElement(ifc.ClassMechanicalFastener, name)
	e.PredefinedType = "USERDEFINED"
	e.PlacementKind = ifc.PlacementAbsolute
	e.Placement = geom.Placement(angle, pos)

	rodR := mm(h.RodDiameter) / 2
	spread := mm(h.TrayWidth) / 2
	barW := mm(h.CrossbarWidth)
	barD := mm(h.CrossbarDepth)

	color := ifc.ParseHexColor(h.Color)

	rod := func(x float64) ifc.Solid {
		return ifc.Extrude(ifc.CircleProfile{Radius: rodR},
			geom.Vec3{X: x, Z: -drop}, drop)
	}
	e.AddPart("rods", color, rod(-spread), rod(spread))

	// Channel bars across the local X, each centered on its level: one
	// at the ceiling, one under the rods carrying the tray.
	span := 2*spread + 2*barW
	bar := func(z float64) ifc.Solid {
		return ifc.Extrude(
			ifc.RectangleProfile{XDim: span, YDim: barD},
			geom.Vec3{Z: z - barW/2}, barW)
	}
	e.AddPart("topbar", color, bar(0))
	e.AddPart("crossbar", color, bar(-drop))

	e.AddPropertySet(ifc.PropertySet{
		Name: "Pset_MechanicalFastenerCommon",
		Properties: []ifc.Property{
			{Name: "NominalLength", Value: h.Height},
			{Name: "NominalDiameter", Value: h.RodDiameter},
		},
	})
	return e
}
