package builder

import (
	"go.uber.org/zap"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// Road builds one road component: swept types (kerb, haunch, footway,
// bedding) become per-segment profile extrusions along the centerline
// with no bend overlap; everything else is a triangulated surface mesh.
// Both are baked in absolute coordinates. Returns nil when the input
// geometry is unusable.
func Road(ctx Context, rc model.RoadComponent) *ifc.Element {
	var solids []ifc.Solid
	if rc.IsSwept() && len(rc.Centerline) >= 2 {
		solids = sweepProfile(ctx.Path(rc.Centerline), roadProfile(rc))
	} else {
		mesh := roadMesh(ctx, rc)
		if mesh != nil {
			solids = []ifc.Solid{*mesh}
		}
	}
	if len(solids) == 0 {
		ctx.logger().Warn("skipping road component with unusable geometry",
			zap.String("component", rc.Label()), zap.String("type", rc.Type))
		return nil
	}

	e := ifc.NewElement(ifc.ClassGeographicElement, rc.Label())
	e.PredefinedType = "USERDEFINED"
	e.PlacementKind = ifc.PlacementBaked
	e.AddPart("surface", ifc.ParseHexColor(rc.Color), solids...)
	e.AddPropertySet(ifc.PropertySet{
		Name: "Pset_RoadComponent",
		Properties: []ifc.Property{
			{Name: "ComponentType", Value: rc.Type},
			{Name: "Side", Value: rc.Side},
		},
	})
	return e
}

// roadProfile returns the cross-section for a swept component: a
// trapezoid for kerbs and haunches, a rectangle resting on the
// centerline for footways and beddings. Kerbs keep the road-side face
// vertical per their side.
func roadProfile(rc model.RoadComponent) ifc.Profile {
	p := rc.Profile
	switch rc.Type {
	case model.RoadKerb, model.RoadHaunch:
		return trapezoid(p.Width, p.TopWidth, p.Height, rc.Side)
	default:
		return ifc.RectangleProfile{
			XDim:   p.Width,
			YDim:   p.Height,
			Center: [2]float64{0, p.Height / 2},
		}
	}
}

// trapezoid builds a cross-section with its base centered on the path.
// side "left" keeps the left face vertical, "right" the right face;
// anything else tapers symmetrically.
func trapezoid(width, top, height float64, side string) ifc.Profile {
	if top <= 0 || top > width {
		top = width
	}
	var tl, tr float64
	switch side {
	case "left":
		tl, tr = -width/2, -width/2+top
	case "right":
		tl, tr = width/2-top, width/2
	default:
		tl, tr = -top/2, top/2
	}
	return ifc.PolygonProfile{Points: [][2]float64{
		{-width / 2, 0},
		{width / 2, 0},
		{tr, height},
		{tl, height},
	}}
}

// roadMesh validates and converts a triangulated component. Vertices are
// transformed point-wise; triangles with out-of-range indices invalidate
// the whole component.
func roadMesh(ctx Context, rc model.RoadComponent) *ifc.TriangulatedMesh {
	if len(rc.Vertices) < 3 || len(rc.Triangles) == 0 {
		return nil
	}
	n := len(rc.Vertices)
	for _, tri := range rc.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= n {
				ctx.logger().Warn("road mesh references out-of-range vertex",
					zap.String("component", rc.Label()), zap.Int("index", idx))
				return nil
			}
		}
	}
	verts := make([]geom.Vec3, n)
	for i, v := range rc.Vertices {
		verts[i] = ctx.Point(v.Vec())
	}
	return &ifc.TriangulatedMesh{Vertices: verts, Triangles: rc.Triangles}
}
