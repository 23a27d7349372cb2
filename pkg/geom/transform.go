package geom

import "strings"

// Mode selects how source coordinates are interpreted during conversion
// to the target convention.
type Mode int

const (
	// ModeAbsolute passes world coordinates through unchanged into the
	// target convention.
	ModeAbsolute Mode = iota
	// ModeProjectRelative subtracts the project origin componentwise
	// before the axis remap.
	ModeProjectRelative
)

// ParseMode maps a request mode string to a Mode. Unrecognized values
// fall back to ModeAbsolute.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "project", "projectrelative", "relative":
		return ModeProjectRelative
	default:
		return ModeAbsolute
	}
}

func (m Mode) String() string {
	if m == ModeProjectRelative {
		return "project"
	}
	return "absolute"
}

// ToTarget converts a point from the producing app's Y-up convention to
// the target Z-up convention. The axis remap is fixed:
//
//	target X = source X (easting)
//	target Y = source Z (northing)
//	target Z = source Y (elevation)
//
// In ModeProjectRelative the origin (also Y-up) is subtracted before the
// remap.
func ToTarget(p, origin Vec3, mode Mode) Vec3 {
	if mode == ModeProjectRelative {
		p = p.Sub(origin)
	}
	return Vec3{p.X, p.Z, p.Y}
}

// DirectionToTarget converts a direction vector from Y-up to Z-up. It is
// the same axis remap as ToTarget without any translation.
func DirectionToTarget(d Vec3) Vec3 {
	return Vec3{d.X, d.Z, d.Y}
}

// FromTarget is the inverse axis remap, converting a Z-up point back into
// the Y-up convention. It does not re-add any origin; callers composing
// with ModeProjectRelative must add the origin themselves.
func FromTarget(p Vec3) Vec3 {
	return Vec3{p.X, p.Z, p.Y}
}
