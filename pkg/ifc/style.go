package ifc

import (
	"fmt"
	"strings"
)

// RGB is a surface color with components in the 0..1 range.
type RGB struct {
	R, G, B float64
}

// ParseHexColor converts "#RRGGBB" (leading '#' optional) to an RGB.
// Invalid or empty input returns nil so callers can skip styling.
func ParseHexColor(hex string) *RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return nil
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil
	}
	return &RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Hex renders the color back to "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}
