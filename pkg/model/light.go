package model

import "github.com/infragrid/ifcforge/pkg/geom"

// Pole base types.
const (
	BaseEmbedded   = "embedded"
	BaseBaseplate  = "baseplate"
	BaseFoundation = "foundation"
)

// Fixture styles.
const (
	FixtureShoebox  = "shoebox"
	FixturePostTop  = "post-top"
	FixtureLantern  = "lantern"
	FixtureFlood    = "flood"
)

// PoleConfig describes a lighting pole and its base. Height is in meters;
// remaining dimensions are in millimeters unless noted.
type PoleConfig struct {
	Height     float64 `json:"height" validate:"gte=0"` // meters
	Diameter   float64 `json:"diameter" validate:"gte=0"`
	TaperRatio float64 `json:"taperRatio" validate:"gte=0,lte=1"` // top/bottom diameter
	BaseType   string  `json:"baseType"`
	Color      string  `json:"color,omitempty"`

	BaseplateWidth     float64 `json:"baseplateWidth" validate:"gte=0"`
	BaseplateThickness float64 `json:"baseplateThickness" validate:"gte=0"`

	FoundationWidth  float64 `json:"foundationWidth" validate:"gte=0"`
	FoundationHeight float64 `json:"foundationHeight" validate:"gte=0"`

	BoltCount    int     `json:"boltCount" validate:"gte=0"`
	BoltDiameter float64 `json:"boltDiameter" validate:"gte=0"`
	BoltLength   float64 `json:"boltLength" validate:"gte=0"`
	BoltCircle   float64 `json:"boltCircle" validate:"gte=0"` // bolt pattern diameter

	GussetCount     int     `json:"gussetCount" validate:"gte=0"`
	GussetHeight    float64 `json:"gussetHeight" validate:"gte=0"`
	GussetThickness float64 `json:"gussetThickness" validate:"gte=0"`
}

// FixtureConfig describes the luminaire heads mounted on a pole.
// Dimensions are in millimeters; arm length is in meters and arm angle is
// the downward tilt in degrees.
type FixtureConfig struct {
	Style        string  `json:"style"`
	Count        int     `json:"count" validate:"gte=0"`
	Spacing      float64 `json:"spacing" validate:"gte=0"` // meters between heads
	Width        float64 `json:"width" validate:"gte=0"`
	Height       float64 `json:"height" validate:"gte=0"`
	Depth        float64 `json:"depth" validate:"gte=0"`
	HousingColor string  `json:"housingColor,omitempty"`
	ArmLength    float64 `json:"armLength" validate:"gte=0"` // meters
	ArmAngle     float64 `json:"armAngle"`                   // degrees below horizontal
	ArmDiameter  float64 `json:"armDiameter" validate:"gte=0"`
}

// SignShape is one vector-graphic sub-shape on a sign face. Points are in
// millimeters relative to the plate center; holes are closed loops cut
// out of the shape.
type SignShape struct {
	Points [][2]float64   `json:"points"`
	Holes  [][][2]float64 `json:"holes,omitempty"`
	Color  string         `json:"color,omitempty"`
	Depth  float64        `json:"depth" validate:"gte=0"` // millimeters
}

// SignConfig describes a sign plate mounted on a pole. Dimensions are in
// millimeters.
type SignConfig struct {
	Shape           string      `json:"shape"` // "circle", "rectangle" or "custom"
	Width           float64     `json:"width" validate:"gte=0"`
	Height          float64     `json:"height" validate:"gte=0"`
	Diameter        float64     `json:"diameter" validate:"gte=0"`
	Thickness       float64     `json:"thickness" validate:"gte=0"`
	BorderWidth     float64     `json:"borderWidth" validate:"gte=0"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	BorderColor     string      `json:"borderColor,omitempty"`
	Outline         [][2]float64 `json:"outline,omitempty"` // custom plate outline
	Shapes          []SignShape `json:"shapes,omitempty"`
	VentHoles       int         `json:"ventHoles" validate:"gte=0"`
}

// PublicLight is a lighting column or, when Type is "sign", a signpost.
// Position is Y-up; rotation is radians about the vertical axis.
type PublicLight struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type"` // "light" or "sign"
	Position geom.Vec3     `json:"position"`
	Rotation float64       `json:"rotation"`
	Pole     PoleConfig    `json:"pole"`
	Fixture  FixtureConfig `json:"fixture"`
	Sign     *SignConfig   `json:"sign,omitempty"`
}

// Label returns the display name, falling back to the ID.
func (l PublicLight) Label() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// IsSign reports whether this element is a signpost rather than a light.
func (l PublicLight) IsSign() bool {
	return l.Type == "sign"
}
