// Package builder turns typed infrastructure records into positioned
// exchange-format elements. Each builder consumes one record plus the
// shared transform context and produces an element whose parts are
// tagged solids; insufficient geometric input yields a nil element, not
// an error.
package builder

import (
	"go.uber.org/zap"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/model"
)

// Context carries the per-export transform configuration shared by all
// builders: the project origin (Y-up), the coordinate mode, and a logger
// for skip diagnostics.
type Context struct {
	Origin geom.Vec3
	Mode   geom.Mode
	Log    *zap.Logger
}

// NewContext builds a Context from project coordinates. A nil logger is
// replaced with a no-op logger.
func NewContext(origin geom.Vec3, mode geom.Mode, log *zap.Logger) Context {
	if log == nil {
		log = zap.NewNop()
	}
	return Context{Origin: origin, Mode: mode, Log: log}
}

// Point converts a Y-up point into the target convention under the
// context's mode.
func (c Context) Point(p geom.Vec3) geom.Vec3 {
	return geom.ToTarget(p, c.Origin, c.Mode)
}

// Path converts a Y-up polyline into target-convention points.
func (c Context) Path(points []model.Point) []geom.Vec3 {
	out := make([]geom.Vec3, 0, len(points))
	for _, p := range points {
		out = append(out, c.Point(p.Vec()))
	}
	return out
}

// Direction converts a Y-up direction into the target convention.
func (c Context) Direction(d geom.Vec3) geom.Vec3 {
	return geom.DirectionToTarget(d)
}

func (c Context) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// mm converts millimeters to meters.
func mm(v float64) float64 {
	return v / 1000
}
