package ifc

import (
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/infragrid/ifcforge/pkg/geom"
)

// Sink receives produced elements and serializes the finished document.
// Document is the in-memory implementation; the interface keeps the
// orchestrator independent of the output format, the way the solid
// backends elsewhere hide behind a kernel interface.
type Sink interface {
	AddElement(*Element) error
	Write(io.Writer) error
}

var _ Sink = (*Document)(nil)

// ProjectInfo configures the one-time hierarchy and georeference setup.
// Origin is in the producing app's Y-up convention; it is remapped here.
type ProjectInfo struct {
	Name       string
	UnitLabel  string
	Origin     geom.Vec3
	NorthAngle *float64 // degrees
	CRSName    string   // EPSG code or CRS name
	Elevation  *float64 // storey elevation, meters

	// Georeferenced attaches survey metadata. Only set in
	// project-relative mode; absolute-mode geometry already carries
	// real-world coordinates.
	Georeferenced bool
}

// Georeference is the survey metadata reconstructing real-world position
// from project-relative coordinates.
type Georeference struct {
	Eastings         float64
	Northings        float64
	OrthogonalHeight float64
	XAxisAbscissa    *float64 // cos(north angle)
	XAxisOrdinate    *float64 // sin(north angle)
	CRSName          string
}

// SpatialContainer is one level of the project containment chain.
type SpatialContainer struct {
	GlobalID  string
	Class     string
	Name      string
	Elevation *float64
	Placement geom.Mat4
}

// Document is the in-memory exchange document: one containment chain,
// unit settings, optional georeference, and the produced elements. It is
// built by a single export and never shared between exports.
type Document struct {
	Project  SpatialContainer
	Site     SpatialContainer
	Building SpatialContainer
	Storey   SpatialContainer

	Unit     Unit
	Georef   *Georeference
	Elements []*Element
}

// NewDocument creates a document with the full project/site/building/
// storey chain. The storey sits at the world origin with an identity
// placement regardless of coordinate mode.
func NewDocument(info ProjectInfo) *Document {
	name := info.Name
	if name == "" {
		name = "Project"
	}
	d := &Document{
		Project:  container("IfcProject", name),
		Site:     container("IfcSite", "Site"),
		Building: container("IfcBuilding", "Building"),
		Storey:   container("IfcBuildingStorey", "Ground"),
		Unit:     ParseUnit(info.UnitLabel),
	}
	if info.Elevation != nil {
		e := *info.Elevation
		d.Storey.Elevation = &e
	}
	if info.Georeferenced {
		d.Georef = buildGeoreference(info)
	}
	return d
}

// NewBlankDocument creates an empty georeferenced document at the
// origin, used to establish a project's coordinate system up front.
func NewBlankDocument(name string) *Document {
	return NewDocument(ProjectInfo{
		Name:          name,
		UnitLabel:     "meters",
		Georeferenced: true,
	})
}

func container(class, name string) SpatialContainer {
	return SpatialContainer{
		GlobalID:  uuid.NewString(),
		Class:     class,
		Name:      name,
		Placement: geom.Identity(),
	}
}

func buildGeoreference(info ProjectInfo) *Georeference {
	// Origin arrives Y-up: x=easting, y=elevation, z=northing.
	g := &Georeference{
		Eastings:         info.Origin.X,
		Northings:        info.Origin.Z,
		OrthogonalHeight: info.Origin.Y,
		CRSName:          info.CRSName,
	}
	if info.NorthAngle != nil {
		rad := *info.NorthAngle * math.Pi / 180
		abscissa := math.Cos(rad)
		ordinate := math.Sin(rad)
		g.XAxisAbscissa = &abscissa
		g.XAxisOrdinate = &ordinate
	}
	return g
}

// AddElement validates the element's placement discipline and appends it
// to the document. Baked-vertex elements must carry an identity
// placement; applying both disciplines to one element is an error.
func (d *Document) AddElement(e *Element) error {
	if e == nil {
		return fmt.Errorf("ifc: nil element")
	}
	if e.PlacementKind == PlacementBaked && !e.Placement.IsIdentity(1e-9) {
		return fmt.Errorf("ifc: element %q has baked vertices but a non-identity placement", e.Name)
	}
	d.Elements = append(d.Elements, e)
	return nil
}

// ElementCount returns the number of elements in the document.
func (d *Document) ElementCount() int {
	return len(d.Elements)
}
