// Package model defines the typed infrastructure records consumed by the
// geometry builders, with defaults substituted once at ingestion rather
// than scattered across builders.
package model

import (
	"github.com/infragrid/ifcforge/pkg/geom"
)

// Point is a 3D point in the producing app's Y-up convention:
// [x=easting, y=elevation, z=northing].
type Point [3]float64

// Vec converts a Point to a geom.Vec3.
func (p Point) Vec() geom.Vec3 {
	return geom.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// ProjectCoordinates describes the project coordinate system. Origin is
// expressed in the app's Y-up convention.
type ProjectCoordinates struct {
	Name       string     `json:"name"`
	Unit       string     `json:"unit"`
	Origin     geom.Vec3  `json:"origin"`
	NorthAngle *float64   `json:"northAngle,omitempty"` // degrees
	EPSGCode   string     `json:"epsgCode,omitempty"`
	Elevation  *float64   `json:"elevation,omitempty"` // storey elevation
}

// LidConfig describes a chamber access lid. All dimensions are in
// millimeters.
type LidConfig struct {
	Shape          string  `json:"shape"` // "circle" or "rectangle"
	Diameter       float64 `json:"diameter" validate:"gte=0"`
	Width          float64 `json:"width" validate:"gte=0"`
	Length         float64 `json:"length" validate:"gte=0"`
	Thickness      float64 `json:"thickness" validate:"gte=0"`
	FrameThickness float64 `json:"frameThickness" validate:"gte=0"`
	VentHoles      int     `json:"ventHoles" validate:"gte=0"`
}

// Chamber is a manhole or inspection chamber. Plan dimensions and
// thicknesses are in meters; rotation is radians about the vertical axis.
type Chamber struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Position      geom.Vec3 `json:"position"`
	Shape         string    `json:"shape"` // "rectangle" or "circle"
	Width         float64   `json:"width"`
	Length        float64   `json:"length"`
	Diameter      float64   `json:"diameter"`
	CoverLevel    float64   `json:"coverLevel"`
	InvertLevel   float64   `json:"invertLevel"`
	WallThickness float64   `json:"wallThickness" validate:"gte=0"`
	BaseThickness float64   `json:"baseThickness" validate:"gte=0"`
	TopThickness  float64   `json:"topThickness" validate:"gte=0"`
	Rotation      float64   `json:"rotation"`
	Material      string    `json:"material"`
	Color         string    `json:"color"`
	Lid           *LidConfig `json:"lid,omitempty"`
}

// Label returns the display name of the chamber, falling back to its ID.
func (c Chamber) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Pipe is a drainage or utility pipe run. Diameter is in millimeters;
// path points are in meters, Y-up.
type Pipe struct {
	ID          string  `json:"pipeId"`
	UtilityType string  `json:"utilityType"`
	Diameter    float64 `json:"diameter" validate:"gte=0"`
	Start       Point   `json:"startPoint"`
	End         Point   `json:"endPoint"`
	Points      []Point `json:"points,omitempty"`
	Color       string  `json:"color,omitempty"`
}

// Path returns the pipe's polyline, falling back to [start, end] when no
// explicit point list was supplied.
func (p Pipe) Path() []Point {
	if len(p.Points) >= 2 {
		return p.Points
	}
	return []Point{p.Start, p.End}
}

// CableTray is a U-channel cable carrier. Cross-section dimensions are in
// millimeters.
type CableTray struct {
	ID              string  `json:"trayId"`
	UtilityType     string  `json:"utilityType"`
	Width           float64 `json:"width" validate:"gte=0"`
	Height          float64 `json:"height" validate:"gte=0"`
	WallThickness   float64 `json:"wallThickness" validate:"gte=0"`
	BottomThickness float64 `json:"bottomThickness" validate:"gte=0"`
	Start           Point   `json:"startPoint"`
	End             Point   `json:"endPoint"`
	Points          []Point `json:"points,omitempty"`
	Color           string  `json:"color,omitempty"`
}

// Path returns the tray centerline, falling back to [start, end].
func (t CableTray) Path() []Point {
	if len(t.Points) >= 2 {
		return t.Points
	}
	return []Point{t.Start, t.End}
}

// Hanger is a trapeze hanger supporting a cable tray. Dimensions are in
// millimeters; rotation is radians about the vertical axis.
type Hanger struct {
	ID            string  `json:"hangerId"`
	Position      Point   `json:"position"`
	Height        float64 `json:"height" validate:"gte=0"`
	RodDiameter   float64 `json:"rodDiameter" validate:"gte=0"`
	TrayWidth     float64 `json:"trayWidth" validate:"gte=0"`
	CrossbarWidth float64 `json:"crossbarWidth" validate:"gte=0"`
	CrossbarDepth float64 `json:"crossbarDepth" validate:"gte=0"`
	Rotation      float64 `json:"rotation"`
	Direction     Point   `json:"direction"`
	Color         string  `json:"color,omitempty"`
}

// LightConnection is an electrical conduit feeding a public light.
// Diameter is in millimeters.
type LightConnection struct {
	ID       string  `json:"id"`
	Diameter float64 `json:"diameter" validate:"gte=0"`
	Points   []Point `json:"points,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// SchemePath is a connected polyline imported from a DWG scheme drawing,
// exported as a thin swept path for reference geometry.
type SchemePath struct {
	ID       string  `json:"id"`
	Layer    string  `json:"layer"`
	Vertices []Point `json:"vertices"`
	Color    string  `json:"color,omitempty"`
}

// ExportRequest is the full set of collections handed to one export.
type ExportRequest struct {
	Project          ProjectCoordinates `json:"project"`
	CoordinateMode   string             `json:"coordinateMode"` // "absolute" or "project"
	Chambers         []Chamber          `json:"chambers" validate:"dive"`
	Pipes            []Pipe             `json:"pipes" validate:"dive"`
	CableTrays       []CableTray        `json:"cableTrays" validate:"dive"`
	Hangers          []Hanger           `json:"hangers" validate:"dive"`
	PublicLights     []PublicLight      `json:"publicLights" validate:"dive"`
	LightConnections []LightConnection  `json:"lightConnections" validate:"dive"`
	Roads            []RoadComponent    `json:"roads" validate:"dive"`
	SchemePaths      []SchemePath       `json:"connectedPaths" validate:"dive"`
}

// Mode returns the parsed coordinate mode, falling back to absolute for
// unrecognized values.
func (r *ExportRequest) Mode() geom.Mode {
	return geom.ParseMode(r.CoordinateMode)
}
