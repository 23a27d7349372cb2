package builder

import (
	"go.uber.org/zap"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

// CableTray builds a cable tray run as a single swept disk along its
// centerline. The U-channel section is approximated by a disk whose
// radius is a third of the larger cross-section dimension, which keeps
// the swept solid valid through tight bends. Geometry is baked; returns
// nil when the centerline has no usable segment.
func CableTray(ctx Context, t model.CableTray) *ifc.Element {
	path := prunePath(ctx.Path(t.Path()))
	if len(path) < 2 {
		ctx.logger().Warn("skipping cable tray with no usable segments",
			zap.String("tray", t.ID))
		return nil
	}

	radius := max(mm(t.Width), mm(t.Height)) / 3

	name := t.ID
	if name == "" {
		name = "CableTray"
	}
	e := ifc.NewElement(ifc.ClassCableCarrier, name)
	e.PredefinedType = "CABLETRAYSEGMENT"
	e.PlacementKind = ifc.PlacementBaked
	e.AddPart("channel", ifc.ParseHexColor(t.Color), ifc.SweptDiskSolid{
		Path:   path,
		Radius: radius,
	})
	e.AddPropertySet(ifc.PropertySet{
		Name: "Pset_CableCarrierSegmentCommon",
		Properties: []ifc.Property{
			{Name: "NominalWidth", Value: t.Width},
			{Name: "NominalHeight", Value: t.Height},
			{Name: "WallThickness", Value: t.WallThickness},
			{Name: "UtilityType", Value: t.UtilityType},
		},
	})
	return e
}

// prunePath drops consecutive points closer than the minimum segment
// length. Swept disks reject zero-length directrix segments.
func prunePath(points []geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && p.Sub(out[len(out)-1]).Length() < minSegment {
			continue
		}
		out = append(out, p)
	}
	return out
}
