package builder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// pipePredefinedType maps a utility classification to the segment's
// predefined type.
func pipePredefinedType(utility string) string {
	u := strings.ToLower(utility)
	if strings.Contains(u, "sewer") || strings.Contains(u, "drainage") || strings.Contains(u, "waste") {
		return "CULVERT"
	}
	return "RIGIDSEGMENT"
}

// Pipe builds a pipe run as one circular extrusion per path segment with
// overlap at bends. Geometry is baked in absolute coordinates; the
// element placement stays at identity. Returns nil when the path has no
// usable segment.
func Pipe(ctx Context, p model.Pipe) *ifc.Element {
	path := ctx.Path(p.Path())
	radius := mm(p.Diameter) / 2

	solids := sweepCircular(path, radius, true)
	if len(solids) == 0 {
		ctx.logger().Warn("skipping pipe with no usable segments",
			zap.String("pipe", p.ID), zap.Int("points", len(path)))
		return nil
	}

	name := p.ID
	if name == "" {
		name = "Pipe"
	}
	e := ifc.NewElement(ifc.ClassPipeSegment, name)
	e.PredefinedType = pipePredefinedType(p.UtilityType)
	e.PlacementKind = ifc.PlacementBaked
	e.AddPart("run", ifc.ParseHexColor(p.Color), solids...)
	e.AddPropertySet(ifc.PropertySet{
		Name: "Pset_PipeSegmentCommon",
		Properties: []ifc.Property{
			{Name: "NominalDiameter", Value: p.Diameter},
			{Name: "UtilityType", Value: p.UtilityType},
		},
	})
	return e
}

// LightConnection builds an electrical conduit feeding a public light,
// using the same per-segment sweep as pipes. Returns nil when fewer than
// two usable points are given.
func LightConnection(ctx Context, lc model.LightConnection) *ifc.Element {
	if len(lc.Points) < 2 {
		ctx.logger().Warn("skipping light connection with fewer than 2 points",
			zap.String("connection", lc.ID))
		return nil
	}
	path := ctx.Path(lc.Points)
	radius := mm(lc.Diameter) / 2

	solids := sweepCircular(path, radius, true)
	if len(solids) == 0 {
		ctx.logger().Warn("skipping light connection with no usable segments",
			zap.String("connection", lc.ID))
		return nil
	}

	name := lc.ID
	if name == "" {
		name = "LightConnection"
	}
	e := ifc.NewElement(ifc.ClassPipeSegment, name)
	e.PredefinedType = "CONDUIT"
	e.PlacementKind = ifc.PlacementBaked
	e.AddPart("conduit", ifc.ParseHexColor(lc.Color), solids...)
	return e
}

// schemePathRadius is the section radius used to make reference scheme
// lines visible, 10 mm.
const schemePathRadius = 0.01

// SchemePath builds a DWG scheme polyline as a single thin swept disk
// along the full path. Returns nil when fewer than two vertices are
// given.
func SchemePath(ctx Context, sp model.SchemePath) *ifc.Element {
	if len(sp.Vertices) < 2 {
		ctx.logger().Warn("skipping scheme path with fewer than 2 vertices",
			zap.String("path", sp.ID), zap.String("layer", sp.Layer))
		return nil
	}
	path := ctx.Path(sp.Vertices)

	name := sp.ID
	if name == "" {
		name = "Path_" + sp.Layer
	}
	e := ifc.NewElement(ifc.ClassPipeSegment, name)
	e.PredefinedType = "RIGIDSEGMENT"
	e.PlacementKind = ifc.PlacementBaked
	e.AddPart("scheme", ifc.ParseHexColor(sp.Color), ifc.SweptDiskSolid{
		Path:   path,
		Radius: schemePathRadius,
	})
	return e
}
