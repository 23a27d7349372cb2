// Package preview tessellates exchange-document elements into triangle
// meshes for interactive display, using SDF-based solid modeling with
// marching-cubes surface extraction. Triangulated road surfaces pass
// through directly; everything else is evaluated as a signed distance
// field first, so booleans (hollow walls, lid openings) come out as
// closed watertight surfaces.
package preview

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
)

// DefaultCells is the marching-cubes grid resolution used when the
// caller passes 0. Preview quality, not export quality.
const DefaultCells = 64

// Document tessellates every element of the document, one mesh per part.
func Document(doc *ifc.Document, cells int) ([]*Mesh, error) {
	var meshes []*Mesh
	for _, e := range doc.Elements {
		ms, err := Element(e, cells)
		if err != nil {
			return nil, fmt.Errorf("preview: element %q: %w", e.Name, err)
		}
		meshes = append(meshes, ms...)
	}
	return meshes, nil
}

// Element tessellates one element into one mesh per part. The element's
// placement is applied, so returned vertices are in world coordinates
// for both placement disciplines.
func Element(e *ifc.Element, cells int) ([]*Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	var meshes []*Mesh
	for pi := range e.Parts {
		p := &e.Parts[pi]
		m, err := partMesh(e, p, cells)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", p.Category, err)
		}
		if m == nil || m.IsEmpty() {
			continue
		}
		m.Element = e.Name
		m.Part = p.Category
		if p.Color != nil {
			m.Color = p.Color.Hex()
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// partMesh evaluates one part. SDF-representable solids are unioned and
// rendered together; triangulated meshes are concatenated verbatim.
func partMesh(e *ifc.Element, p *ifc.Part, cells int) (*Mesh, error) {
	var sdfs []sdf.SDF3
	out := &Mesh{}

	for _, s := range p.Solids {
		if tm, ok := s.(ifc.TriangulatedMesh); ok {
			appendTriangulated(out, e.Placement, tm)
			continue
		}
		s3, err := solidSDF(s)
		if err != nil {
			return nil, err
		}
		if s3 != nil {
			sdfs = append(sdfs, s3)
		}
	}
	if len(sdfs) == 0 {
		return out, nil
	}

	combined := sdf.Union3D(sdfs...)
	combined = placeSDF(combined, e.Placement)

	renderer := render.NewMarchingCubesUniform(cells)
	for _, tri := range render.ToTriangles(combined, renderer) {
		n := tri.Normal()
		base := uint32(len(out.Vertices) / 3)
		for j := 0; j < 3; j++ {
			v := tri[j]
			out.Vertices = append(out.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			out.Indices = append(out.Indices, base+uint32(j))
		}
	}
	return out, nil
}

// solidSDF converts one solid geometry item to a signed distance field.
func solidSDF(s ifc.Solid) (sdf.SDF3, error) {
	switch s := s.(type) {
	case ifc.ExtrudedSolid:
		return extrudedSDF(s)
	case ifc.SweptDiskSolid:
		return sweptDiskSDF(s)
	default:
		return nil, fmt.Errorf("unsupported solid %T", s)
	}
}

// extrudedSDF extrudes the profile and orients it along the position
// frame's axis. The frame's in-plane roll is not reproduced, which is
// irrelevant for circular sections and invisible at preview resolution
// for the rest.
func extrudedSDF(s ifc.ExtrudedSolid) (sdf.SDF3, error) {
	p2, err := profileSDF(s.Profile)
	if err != nil {
		return nil, err
	}
	s3 := sdf.Extrude3D(p2, s.Depth)
	// Extrude3D is symmetric about z=0; shift so the profile plane sits
	// at the frame location.
	s3 = sdf.Transform3D(s3, sdf.Translate3d(v3.Vec{Z: s.Depth / 2}))

	axis := s.Position.Axis
	if axis.Length() == 0 {
		axis = geom.Vec3{Z: 1}
	}
	axis = axis.Normalize()
	polar := math.Acos(clamp(axis.Z, -1, 1))
	azimuth := math.Atan2(axis.Y, axis.X)
	if polar != 0 {
		m := sdf.RotateZ(azimuth).Mul(sdf.RotateY(polar))
		s3 = sdf.Transform3D(s3, m)
	}

	at := s.Position.Location
	return sdf.Transform3D(s3, sdf.Translate3d(v3.Vec{X: at.X, Y: at.Y, Z: at.Z})), nil
}

// sweptDiskSDF approximates a swept disk as one cylinder per directrix
// segment. Bends are left unfilleted.
func sweptDiskSDF(s ifc.SweptDiskSolid) (sdf.SDF3, error) {
	var parts []sdf.SDF3
	for i := 0; i+1 < len(s.Path); i++ {
		start, end := s.Path[i], s.Path[i+1]
		delta := end.Sub(start)
		length := delta.Length()
		if length == 0 {
			continue
		}
		cyl, err := sdf.Cylinder3D(length, s.Radius, 0)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
		}
		dir := delta.Scale(1 / length)
		polar := math.Acos(clamp(dir.Z, -1, 1))
		azimuth := math.Atan2(dir.Y, dir.X)
		m := sdf.RotateZ(azimuth).Mul(sdf.RotateY(polar))
		cyl = sdf.Transform3D(cyl, m)

		mid := start.Add(delta.Scale(0.5))
		parts = append(parts, sdf.Transform3D(cyl, sdf.Translate3d(v3.Vec{X: mid.X, Y: mid.Y, Z: mid.Z})))
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return sdf.Union3D(parts...), nil
}

// profileSDF converts a cross-section to a 2D field.
func profileSDF(p ifc.Profile) (sdf.SDF2, error) {
	switch p := p.(type) {
	case ifc.CircleProfile:
		circle, err := sdf.Circle2D(p.Radius)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
		}
		return offset2(circle, p.Center), nil
	case ifc.RectangleProfile:
		return offset2(sdf.Box2D(v2.Vec{X: p.XDim, Y: p.YDim}, 0), p.Center), nil
	case ifc.HollowCircleProfile:
		outer, err := sdf.Circle2D(p.Radius)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
		}
		inner, err := sdf.Circle2D(p.Radius - p.WallThickness)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
		}
		return sdf.Difference2D(outer, inner), nil
	case ifc.PolygonProfile:
		pts := make([]v2.Vec, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = v2.Vec{X: pt[0], Y: pt[1]}
		}
		poly, err := sdf.Polygon2D(pts)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
		}
		return poly, nil
	case ifc.ProfileWithVoids:
		outer, err := profileSDF(p.Outer)
		if err != nil {
			return nil, err
		}
		for _, v := range p.Voids {
			void, err := profileSDF(v)
			if err != nil {
				return nil, err
			}
			outer = sdf.Difference2D(outer, void)
		}
		return outer, nil
	default:
		return nil, fmt.Errorf("unsupported profile %T", p)
	}
}

func offset2(s sdf.SDF2, center [2]float64) sdf.SDF2 {
	if center == ([2]float64{}) {
		return s
	}
	return sdf.Transform2D(s, sdf.Translate2d(v2.Vec{X: center[0], Y: center[1]}))
}

// placeSDF applies an element placement: a rotation about the vertical
// axis followed by a translation.
func placeSDF(s sdf.SDF3, m geom.Mat4) sdf.SDF3 {
	if m.IsIdentity(1e-12) {
		return s
	}
	angle := math.Atan2(m[1][0], m[0][0])
	if angle != 0 {
		s = sdf.Transform3D(s, sdf.RotateZ(angle))
	}
	t := m.Translation()
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: t.X, Y: t.Y, Z: t.Z}))
}

// appendTriangulated copies explicit mesh geometry, applying the element
// placement point-wise and emitting per-face normals.
func appendTriangulated(out *Mesh, placement geom.Mat4, tm ifc.TriangulatedMesh) {
	for _, tri := range tm.Triangles {
		a := placement.Apply(tm.Vertices[tri[0]])
		b := placement.Apply(tm.Vertices[tri[1]])
		c := placement.Apply(tm.Vertices[tri[2]])
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()

		base := uint32(len(out.Vertices) / 3)
		for j, v := range []geom.Vec3{a, b, c} {
			out.Vertices = append(out.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			out.Indices = append(out.Indices, base+uint32(j))
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
