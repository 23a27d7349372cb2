package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

func TestCableTraySweep(t *testing.T) {
	tray := model.CableTray{
		ID:     "CT-1",
		Width:  300,
		Height: 50,
		Points: []model.Point{
			{0, 3, 0},
			{5, 3, 0},
			{5, 3, 0}, // duplicate dropped
			{5, 3, 5},
		},
	}
	e := CableTray(absoluteCtx(), tray)
	require.NotNil(t, e)
	assert.Equal(t, ifc.ClassCableCarrier, e.Class)
	assert.Equal(t, ifc.PlacementBaked, e.PlacementKind)

	part := e.PartByCategory("channel")
	require.NotNil(t, part)
	require.Len(t, part.Solids, 1)
	swept := part.Solids[0].(ifc.SweptDiskSolid)
	assert.Len(t, swept.Path, 3)
	// max(0.3, 0.05) / 3
	assert.InDelta(t, 0.1, swept.Radius, 1e-9)
	// Mounting elevation survives the axis remap.
	assert.InDelta(t, 3.0, swept.Path[0].Z, 1e-9)
}

func TestCableTrayCollapsedSkipped(t *testing.T) {
	tray := model.CableTray{
		ID:    "CT-2",
		Width: 300,
		Start: model.Point{1, 3, 1},
		End:   model.Point{1, 3, 1},
	}
	assert.Nil(t, CableTray(absoluteCtx(), tray))
}

func TestHangerGeometry(t *testing.T) {
	h := model.Hanger{
		ID:            "H-1",
		Position:      model.Point{2, 3, 4}, // anchor at 3 m elevation
		Height:        500,
		RodDiameter:   12,
		TrayWidth:     300,
		CrossbarWidth: 41,
		CrossbarDepth: 41,
		Rotation:      0.25,
	}
	e := Hanger(absoluteCtx(), h)
	require.NotNil(t, e)
	assert.Equal(t, ifc.ClassMechanicalFastener, e.Class)
	assert.Equal(t, ifc.PlacementAbsolute, e.PlacementKind)

	// Anchored at the ceiling, one drop above the tray elevation.
	tr := e.Placement.Translation()
	assert.InDelta(t, 2.0, tr.X, 1e-9)
	assert.InDelta(t, 4.0, tr.Y, 1e-9)
	assert.InDelta(t, 3.5, tr.Z, 1e-9)

	rods := e.PartByCategory("rods")
	require.NotNil(t, rods)
	require.Len(t, rods.Solids, 2)
	rod := rods.Solids[0].(ifc.ExtrudedSolid)
	assert.InDelta(t, 0.006, rod.Profile.(ifc.CircleProfile).Radius, 1e-9)
	assert.InDelta(t, 0.5, rod.Depth, 1e-9)
	assert.InDelta(t, -0.5, rod.Position.Location.Z, 1e-9)
	assert.InDelta(t, -0.15, rod.Position.Location.X, 1e-9)

	// Bars are centered on their levels.
	top := e.PartByCategory("topbar")
	require.NotNil(t, top)
	assert.InDelta(t, -0.0205, top.Solids[0].(ifc.ExtrudedSolid).Position.Location.Z, 1e-9)

	bar := e.PartByCategory("crossbar")
	require.NotNil(t, bar)
	cross := bar.Solids[0].(ifc.ExtrudedSolid)
	// Spans the tray width plus a margin each side.
	assert.InDelta(t, 0.382, cross.Profile.(ifc.RectangleProfile).XDim, 1e-9)
	assert.InDelta(t, -0.5205, cross.Position.Location.Z, 1e-9)
	// Bottom bar center lands back on the tray elevation.
	assert.InDelta(t, 3.0, tr.Z-0.5, 1e-9)
}

func TestHangerRotationFromDirection(t *testing.T) {
	h := model.Hanger{
		ID:        "H-2",
		Position:  model.Point{0, 3, 0},
		Direction: model.Point{0, 0, 1}, // run heads north (Y-up z)
	}
	e := Hanger(absoluteCtx(), h)
	require.NotNil(t, e)
	// Run azimuth pi/2 plus the crossbar quarter turn: pointing -x.
	assert.InDelta(t, -1.0, e.Placement[0][0], 1e-9)
	assert.InDelta(t, -1.0, e.Placement[1][1], 1e-9)
}
