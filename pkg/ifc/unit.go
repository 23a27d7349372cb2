package ifc

import "strings"

// Unit is a resolved length unit.
type Unit struct {
	Metric bool
	Raw    string
}

var unitMapping = map[string]Unit{
	"meters":      {Metric: true, Raw: "METERS"},
	"meter":       {Metric: true, Raw: "METERS"},
	"m":           {Metric: true, Raw: "METERS"},
	"millimeters": {Metric: true, Raw: "MILLIMETERS"},
	"millimetres": {Metric: true, Raw: "MILLIMETERS"},
	"mm":          {Metric: true, Raw: "MILLIMETERS"},
	"feet":        {Metric: false, Raw: "FEET"},
	"foot":        {Metric: false, Raw: "FEET"},
	"ft":          {Metric: false, Raw: "FEET"},
	"inches":      {Metric: false, Raw: "INCHES"},
	"inch":        {Metric: false, Raw: "INCHES"},
	"in":          {Metric: false, Raw: "INCHES"},
}

// ParseUnit resolves a length-unit label case-insensitively. Unknown or
// empty labels default to meters.
func ParseUnit(label string) Unit {
	if u, ok := unitMapping[strings.ToLower(strings.TrimSpace(label))]; ok {
		return u
	}
	return unitMapping["meters"]
}
