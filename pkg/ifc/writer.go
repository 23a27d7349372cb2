package ifc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/infragrid/ifcforge/pkg/geom"
)

// writer emits the document as ISO-10303-21 (SPF) text. Entity instance
// names are assigned sequentially in emission order, which keeps output
// deterministic for a given document.
type writer struct {
	sb   strings.Builder
	next int
}

func (w *writer) entity(name string, args ...string) int {
	w.next++
	fmt.Fprintf(&w.sb, "#%d=%s(%s);\n", w.next, name, strings.Join(args, ","))
	return w.next
}

func ref(id int) string   { return fmt.Sprintf("#%d", id) }
func str(s string) string { return "'" + strings.ReplaceAll(s, "'", "\\'") + "'" }
func enum(s string) string { return "." + s + "." }

// num formats an SPF real; the trailing dot marks it as a real literal.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

func opt(s string, ok bool) string {
	if ok {
		return s
	}
	return "$"
}

func (w *writer) point3(p geom.Vec3) int {
	return w.entity("IFCCARTESIANPOINT", "("+num(p.X)+","+num(p.Y)+","+num(p.Z)+")")
}

func (w *writer) point2(x, y float64) int {
	return w.entity("IFCCARTESIANPOINT", "("+num(x)+","+num(y)+")")
}

func (w *writer) direction(d geom.Vec3) int {
	return w.entity("IFCDIRECTION", "("+num(d.X)+","+num(d.Y)+","+num(d.Z)+")")
}

func (w *writer) axis3(a Axis3) int {
	loc := w.point3(a.Location)
	axis := w.direction(a.Axis)
	rd := w.direction(a.RefDirection)
	return w.entity("IFCAXIS2PLACEMENT3D", ref(loc), ref(axis), ref(rd))
}

// placementFor emits the element's object placement. Both disciplines
// produce a placement with no parent frame: baked geometry gets the
// identity frame at the origin, absolute geometry gets its own matrix.
func (w *writer) placementFor(e *Element) int {
	a := WorldAxis(geom.Vec3{})
	if e.PlacementKind == PlacementAbsolute {
		m := e.Placement
		a = Axis3{
			Location:     m.Translation(),
			Axis:         geom.Vec3{Z: 1},
			RefDirection: geom.Vec3{X: m[0][0], Y: m[1][0]},
		}
	}
	frame := w.axis3(a)
	return w.entity("IFCLOCALPLACEMENT", "$", ref(frame))
}

func (w *writer) profile(p Profile) int {
	switch p := p.(type) {
	case RectangleProfile:
		pos := w.axis2dAt(p.Center)
		return w.entity("IFCRECTANGLEPROFILEDEF", enum("AREA"), "$", ref(pos), num(p.XDim), num(p.YDim))
	case CircleProfile:
		pos := w.axis2dAt(p.Center)
		return w.entity("IFCCIRCLEPROFILEDEF", enum("AREA"), "$", ref(pos), num(p.Radius))
	case HollowCircleProfile:
		pos := w.axis2dAt([2]float64{})
		return w.entity("IFCCIRCLEHOLLOWPROFILEDEF", enum("AREA"), "$", ref(pos), num(p.Radius), num(p.WallThickness))
	case PolygonProfile:
		poly := w.polyline2(p.Points)
		return w.entity("IFCARBITRARYCLOSEDPROFILEDEF", enum("AREA"), "$", ref(poly))
	case ProfileWithVoids:
		outer := w.outerCurve(p.Outer)
		voids := make([]string, 0, len(p.Voids))
		for _, v := range p.Voids {
			voids = append(voids, ref(w.outerCurve(v)))
		}
		return w.entity("IFCARBITRARYPROFILEDEFWITHVOIDS", enum("AREA"), "$", ref(outer), "("+strings.Join(voids, ",")+")")
	default:
		// Unknown profiles degrade to a point-sized circle rather than
		// corrupting the file.
		pos := w.axis2dAt([2]float64{})
		return w.entity("IFCCIRCLEPROFILEDEF", enum("AREA"), "$", ref(pos), num(0.001))
	}
}

// outerCurve emits a profile as a bounding curve for void-carrying
// profiles, which require curves rather than profile defs.
func (w *writer) outerCurve(p Profile) int {
	switch p := p.(type) {
	case RectangleProfile:
		hx, hy := p.XDim/2, p.YDim/2
		cx, cy := p.Center[0], p.Center[1]
		return w.polyline2([][2]float64{
			{cx - hx, cy - hy}, {cx + hx, cy - hy}, {cx + hx, cy + hy}, {cx - hx, cy + hy},
		})
	case CircleProfile:
		pos := w.axis2dAt(p.Center)
		return w.entity("IFCCIRCLE", ref(pos), num(p.Radius))
	case PolygonProfile:
		return w.polyline2(p.Points)
	default:
		return w.polyline2([][2]float64{{0, 0}, {0.001, 0}, {0, 0.001}})
	}
}

func (w *writer) axis2dAt(center [2]float64) int {
	loc := w.point2(center[0], center[1])
	dir := w.entity("IFCDIRECTION", "(1.,0.)")
	return w.entity("IFCAXIS2PLACEMENT2D", ref(loc), ref(dir))
}

func (w *writer) polyline2(points [][2]float64) int {
	refs := make([]string, 0, len(points)+1)
	first := -1
	for i, p := range points {
		id := w.point2(p[0], p[1])
		if i == 0 {
			first = id
		}
		refs = append(refs, ref(id))
	}
	// Close the loop.
	if first > 0 {
		refs = append(refs, ref(first))
	}
	return w.entity("IFCPOLYLINE", "("+strings.Join(refs, ",")+")")
}

func (w *writer) polyline3(points []geom.Vec3) int {
	refs := make([]string, 0, len(points))
	for _, p := range points {
		refs = append(refs, ref(w.point3(p)))
	}
	return w.entity("IFCPOLYLINE", "("+strings.Join(refs, ",")+")")
}

func (w *writer) solid(s Solid) int {
	switch s := s.(type) {
	case ExtrudedSolid:
		prof := w.profile(s.Profile)
		pos := w.axis3(s.Position)
		dir := w.direction(s.Direction)
		return w.entity("IFCEXTRUDEDAREASOLID", ref(prof), ref(pos), ref(dir), num(s.Depth))
	case SweptDiskSolid:
		poly := w.polyline3(s.Path)
		inner := opt(num(s.InnerRadius), s.InnerRadius > 0)
		return w.entity("IFCSWEPTDISKSOLID", ref(poly), num(s.Radius), inner, "$", "$")
	case TriangulatedMesh:
		coords := make([]string, 0, len(s.Vertices))
		for _, v := range s.Vertices {
			coords = append(coords, "("+num(v.X)+","+num(v.Y)+","+num(v.Z)+")")
		}
		pl := w.entity("IFCCARTESIANPOINTLIST3D", "("+strings.Join(coords, ",")+")")
		tris := make([]string, 0, len(s.Triangles))
		for _, t := range s.Triangles {
			// SPF triangle indices are 1-based.
			tris = append(tris, fmt.Sprintf("(%d,%d,%d)", t[0]+1, t[1]+1, t[2]+1))
		}
		return w.entity("IFCTRIANGULATEDFACESET", ref(pl), "$", ".T.", "("+strings.Join(tris, ",")+")", "$")
	default:
		return w.entity("IFCGEOMETRICSET", "()")
	}
}

func (w *writer) surfaceStyle(c RGB) int {
	rgb := w.entity("IFCCOLOURRGB", "$", num(c.R), num(c.G), num(c.B))
	shading := w.entity("IFCSURFACESTYLERENDERING", ref(rgb), "$", "$", "$", "$", "$", "$", "$", enum("FLAT"))
	return w.entity("IFCSURFACESTYLE", "$", enum("BOTH"), "("+ref(shading)+")")
}

func (w *writer) propertySet(ps PropertySet, elemRef int, ctx *writeContext) {
	props := make([]string, 0, len(ps.Properties))
	for _, p := range ps.Properties {
		var val string
		switch v := p.Value.(type) {
		case float64:
			val = "IFCREAL(" + num(v) + ")"
		case int:
			val = fmt.Sprintf("IFCINTEGER(%d)", v)
		case bool:
			if v {
				val = "IFCBOOLEAN(.T.)"
			} else {
				val = "IFCBOOLEAN(.F.)"
			}
		default:
			val = "IFCLABEL(" + str(fmt.Sprint(v)) + ")"
		}
		id := w.entity("IFCPROPERTYSINGLEVALUE", str(p.Name), "$", val, "$")
		props = append(props, ref(id))
	}
	set := w.entity("IFCPROPERTYSET", str(ps.Name), ctx.owner, str(ps.Name), "$", "("+strings.Join(props, ",")+")")
	w.entity("IFCRELDEFINESBYPROPERTIES", str(ps.Name), ctx.owner, "$", "$", "("+ref(elemRef)+")", ref(set))
}

type writeContext struct {
	owner   string
	context int
}

// Write serializes the document as SPF text.
func (d *Document) Write(out io.Writer) error {
	w := &writer{}

	ctx := &writeContext{}
	ctx.owner = "$"

	// Representation context and units.
	origin := w.point3(geom.Vec3{})
	axis := w.entity("IFCAXIS2PLACEMENT3D", ref(origin), "$", "$")
	ctx.context = w.entity("IFCGEOMETRICREPRESENTATIONCONTEXT", "$", str("Model"), "3", num(1e-5), ref(axis), "$")
	unitIDs := w.units(d.Unit)
	ua := w.entity("IFCUNITASSIGNMENT", "("+strings.Join(unitIDs, ",")+")")

	// Containment chain.
	projRef := w.entity("IFCPROJECT", str(d.Project.GlobalID), ctx.owner, str(d.Project.Name), "$", "$", "$", "$", "("+ref(ctx.context)+")", ref(ua))
	siteRef := w.spatial(d.Site)
	buildingRef := w.spatial(d.Building)
	storeyRef := w.spatial(d.Storey)
	w.entity("IFCRELAGGREGATES", str(d.Site.GlobalID), ctx.owner, "$", "$", ref(projRef), "("+ref(siteRef)+")")
	w.entity("IFCRELAGGREGATES", str(d.Building.GlobalID), ctx.owner, "$", "$", ref(siteRef), "("+ref(buildingRef)+")")
	w.entity("IFCRELAGGREGATES", str(d.Storey.GlobalID), ctx.owner, "$", "$", ref(buildingRef), "("+ref(storeyRef)+")")

	if d.Georef != nil {
		w.georeference(d.Georef, ctx.context)
	}

	// Elements.
	var contained []string
	for _, e := range d.Elements {
		placement := w.placementFor(e)
		var items []string
		for _, part := range e.Parts {
			style := -1
			if part.Color != nil {
				style = w.surfaceStyle(*part.Color)
			}
			for _, s := range part.Solids {
				id := w.solid(s)
				items = append(items, ref(id))
				if style > 0 {
					assign := w.entity("IFCPRESENTATIONSTYLEASSIGNMENT", "("+ref(style)+")")
					w.entity("IFCSTYLEDITEM", ref(id), "("+ref(assign)+")", "$")
				}
			}
		}
		shape := w.entity("IFCSHAPEREPRESENTATION", ref(ctx.context), str("Body"), str("SweptSolid"), "("+strings.Join(items, ",")+")")
		prodShape := w.entity("IFCPRODUCTDEFINITIONSHAPE", "$", "$", "("+ref(shape)+")")
		elemRef := w.entity(strings.ToUpper(e.Class),
			str(e.GlobalID), ctx.owner, str(e.Name), "$", "$",
			ref(placement), ref(prodShape), "$",
			opt(enum(e.PredefinedType), e.PredefinedType != ""))
		contained = append(contained, ref(elemRef))
		for _, ps := range e.PropertySets {
			w.propertySet(ps, elemRef, ctx)
		}
	}
	if len(contained) > 0 {
		w.entity("IFCRELCONTAINEDINSPATIALSTRUCTURE",
			str(d.Storey.GlobalID), ctx.owner, "$", "$",
			"("+strings.Join(contained, ",")+")", ref(storeyRef))
	}

	// Assemble header + data sections.
	var final strings.Builder
	final.WriteString("ISO-10303-21;\nHEADER;\n")
	final.WriteString("FILE_DESCRIPTION((''),'2;1');\n")
	fmt.Fprintf(&final, "FILE_NAME('%s','%s',(''),(''),'ifcforge','','');\n",
		d.Project.Name, time.Now().UTC().Format(time.RFC3339))
	final.WriteString("FILE_SCHEMA(('IFC4'));\nENDSEC;\nDATA;\n")
	final.WriteString(w.sb.String())
	final.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")

	_, err := io.WriteString(out, final.String())
	return err
}

func (w *writer) spatial(c SpatialContainer) int {
	frame := w.axis3(Axis3{
		Location:     c.Placement.Translation(),
		Axis:         geom.Vec3{Z: 1},
		RefDirection: geom.Vec3{X: 1},
	})
	placement := w.entity("IFCLOCALPLACEMENT", "$", ref(frame))
	elev := "$"
	if c.Elevation != nil {
		elev = num(*c.Elevation)
	}
	switch c.Class {
	case "IfcBuildingStorey":
		return w.entity("IFCBUILDINGSTOREY", str(c.GlobalID), "$", str(c.Name), "$", "$", ref(placement), "$", "$", enum("ELEMENT"), elev)
	case "IfcSite":
		return w.entity("IFCSITE", str(c.GlobalID), "$", str(c.Name), "$", "$", ref(placement), "$", "$", enum("ELEMENT"), "$", "$", elev, "$", "$")
	default:
		return w.entity("IFCBUILDING", str(c.GlobalID), "$", str(c.Name), "$", "$", ref(placement), "$", "$", enum("ELEMENT"), elev, "$", "$")
	}
}

func (w *writer) units(u Unit) []string {
	var length int
	switch {
	case u.Metric && u.Raw == "MILLIMETERS":
		length = w.entity("IFCSIUNIT", "*", enum("LENGTHUNIT"), enum("MILLI"), enum("METRE"))
	case u.Metric:
		length = w.entity("IFCSIUNIT", "*", enum("LENGTHUNIT"), "$", enum("METRE"))
	default:
		metre := w.entity("IFCSIUNIT", "*", enum("LENGTHUNIT"), "$", enum("METRE"))
		factor := 0.3048
		name := "FOOT"
		if u.Raw == "INCHES" {
			factor = 0.0254
			name = "INCH"
		}
		measure := w.entity("IFCMEASUREWITHUNIT", "IFCLENGTHMEASURE("+num(factor)+")", ref(metre))
		dim := w.entity("IFCDIMENSIONALEXPONENTS", "1", "0", "0", "0", "0", "0", "0")
		length = w.entity("IFCCONVERSIONBASEDUNIT", ref(dim), enum("LENGTHUNIT"), str(name), ref(measure))
	}
	area := w.entity("IFCSIUNIT", "*", enum("AREAUNIT"), "$", enum("SQUARE_METRE"))
	volume := w.entity("IFCSIUNIT", "*", enum("VOLUMEUNIT"), "$", enum("CUBIC_METRE"))
	return []string{ref(length), ref(area), ref(volume)}
}

func (w *writer) georeference(g *Georeference, contextRef int) {
	crsName := g.CRSName
	if crsName == "" {
		crsName = "EPSG:0"
	}
	crs := w.entity("IFCPROJECTEDCRS", str(crsName), "$", "$", "$", "$", "$", "$")
	abscissa := "$"
	ordinate := "$"
	if g.XAxisAbscissa != nil && g.XAxisOrdinate != nil {
		abscissa = num(*g.XAxisAbscissa)
		ordinate = num(*g.XAxisOrdinate)
	}
	w.entity("IFCMAPCONVERSION", ref(contextRef), ref(crs),
		num(g.Eastings), num(g.Northings), num(g.OrthogonalHeight),
		abscissa, ordinate, "$")
}
