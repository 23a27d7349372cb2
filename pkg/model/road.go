package model

// Road component types.
const (
	RoadCarriageway = "carriageway"
	RoadKerb        = "kerb"
	RoadFootway     = "footway"
	RoadBedding     = "bedding"
	RoadHaunch      = "haunch"
	RoadFootpath    = "footpath"
	RoadVerge       = "verge"
	RoadSwale       = "swale"
	RoadDitch       = "ditch"
	RoadWall        = "wall"
	RoadFence       = "fence"
	RoadHedge       = "hedge"
	RoadCustom      = "custom"
)

// RoadProfile is the cross-section of a swept road component, in meters.
// Kerbs and haunches are trapezoids (TopWidth may differ from Width);
// footways and beddings are plain rectangles.
type RoadProfile struct {
	Width    float64 `json:"width" validate:"gte=0"`
	TopWidth float64 `json:"topWidth" validate:"gte=0"`
	Height   float64 `json:"height" validate:"gte=0"`
}

// RoadComponent is one piece of a road cross-section: either a
// triangulated surface mesh (vertex + triangle index arrays, Y-up meters)
// or a centerline with a swept cross-section profile.
type RoadComponent struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Side       string      `json:"side,omitempty"` // "left", "right" or ""
	Color      string      `json:"color,omitempty"`
	Vertices   []Point     `json:"vertices,omitempty"`
	Triangles  [][3]int    `json:"triangles,omitempty"`
	Centerline []Point     `json:"centerline,omitempty"`
	Profile    RoadProfile `json:"profile"`
}

// Label returns the display name, falling back to the ID, then the type.
func (r RoadComponent) Label() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return r.Type
}

// IsSwept reports whether this component type is built by sweeping a
// cross-section profile along a centerline rather than from a mesh.
func (r RoadComponent) IsSwept() bool {
	switch r.Type {
	case RoadKerb, RoadHaunch, RoadFootway, RoadBedding:
		return true
	}
	return false
}
