package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

func absoluteCtx() Context {
	return NewContext(geom.Vec3{}, geom.ModeAbsolute, nil)
}

func TestChamberAbsolutePlacement(t *testing.T) {
	c := model.Chamber{
		ID:          "MH1",
		Position:    geom.Vec3{X: 10, Y: 2, Z: 5}, // Y-up input
		Shape:       "rectangle",
		Width:       1.2,
		Length:      1.2,
		CoverLevel:  2.0,
		InvertLevel: 0.0,
	}

	els := Chamber(absoluteCtx(), c)
	require.Len(t, els, 1)
	e := els[0]

	assert.Equal(t, ifc.PlacementAbsolute, e.PlacementKind)
	tr := e.Placement.Translation()
	assert.InDelta(t, 10.0, tr.X, 1e-9)
	assert.InDelta(t, 5.0, tr.Y, 1e-9) // northing from Y-up z
	assert.InDelta(t, -1.0, tr.Z, 1e-9)
}

func TestChamberProjectRelativePlacement(t *testing.T) {
	ctx := NewContext(geom.Vec3{X: 10, Y: 0, Z: 5}, geom.ModeProjectRelative, nil)
	c := model.Chamber{
		ID:          "MH1",
		Position:    geom.Vec3{X: 10, Y: 2, Z: 5},
		Width:       1.2,
		Length:      1.2,
		CoverLevel:  2.0,
		InvertLevel: 0.0,
	}

	els := Chamber(ctx, c)
	require.Len(t, els, 1)
	tr := els[0].Placement.Translation()
	assert.InDelta(t, 0.0, tr.X, 1e-9)
	assert.InDelta(t, 0.0, tr.Y, 1e-9)
	assert.InDelta(t, -1.0, tr.Z, 1e-9)
}

func TestChamberHeightFloor(t *testing.T) {
	c := model.Chamber{
		ID:          "MH2",
		Position:    geom.Vec3{Y: 5},
		Width:       1,
		Length:      1,
		CoverLevel:  3.0,
		InvertLevel: 3.0, // degenerate: cover == invert
	}
	els := Chamber(absoluteCtx(), c)
	require.Len(t, els, 1)

	part := els[0].PartByCategory("body")
	require.NotNil(t, part)
	require.Len(t, part.Solids, 1)
	ext, ok := part.Solids[0].(ifc.ExtrudedSolid)
	require.True(t, ok)
	assert.InDelta(t, model.MinChamberHeight, ext.Depth, 1e-9)
}

func TestChamberStackedConstruction(t *testing.T) {
	c := model.Chamber{
		ID:            "MH3",
		Position:      geom.Vec3{Y: 2},
		Shape:         "circle",
		Diameter:      1.5,
		CoverLevel:    2.0,
		InvertLevel:   0.0,
		WallThickness: 0.15,
		BaseThickness: 0.2,
		TopThickness:  0.15,
	}
	els := Chamber(absoluteCtx(), c)
	require.Len(t, els, 1)

	part := els[0].PartByCategory("structure")
	require.NotNil(t, part)
	require.Len(t, part.Solids, 3) // base, walls, top

	walls, ok := part.Solids[1].(ifc.ExtrudedSolid)
	require.True(t, ok)
	hollow, ok := walls.Profile.(ifc.HollowCircleProfile)
	require.True(t, ok)
	assert.InDelta(t, 0.75, hollow.Radius, 1e-9)
	assert.InDelta(t, 0.15, hollow.WallThickness, 1e-9)
	assert.InDelta(t, 0.2, walls.Position.Location.Z, 1e-9)

	// Translation drops by the base thickness too.
	tr := els[0].Placement.Translation()
	assert.InDelta(t, -1.2, tr.Z, 1e-9)
}

func TestChamberLidOpeningRadius(t *testing.T) {
	c := model.Chamber{
		ID:            "MH4",
		Position:      geom.Vec3{Y: 2},
		Shape:         "circle",
		Diameter:      1.5,
		CoverLevel:    2.0,
		InvertLevel:   0.0,
		WallThickness: 0.15,
		TopThickness:  0.15,
		Lid: &model.LidConfig{
			Shape:          "circle",
			Diameter:       600,
			Thickness:      100,
			FrameThickness: 50,
			VentHoles:      4,
		},
	}
	els := Chamber(absoluteCtx(), c)
	require.Len(t, els, 2)

	part := els[0].PartByCategory("structure")
	require.NotNil(t, part)
	top, ok := part.Solids[len(part.Solids)-1].(ifc.ExtrudedSolid)
	require.True(t, ok)
	voided, ok := top.Profile.(ifc.ProfileWithVoids)
	require.True(t, ok)
	require.Len(t, voided.Voids, 1)
	opening, ok := voided.Voids[0].(ifc.CircleProfile)
	require.True(t, ok)
	// 600/2000 + 50/1000
	assert.InDelta(t, 0.35, opening.Radius, 1e-9)

	lid := els[1]
	assert.Equal(t, ifc.PlacementAbsolute, lid.PlacementKind)
	// Frame vertical center at the top of the chamber stack.
	assert.InDelta(t, 1.0, lid.Placement.Translation().Z, 1e-9)
	assert.NotNil(t, lid.PartByCategory("frame"))

	cover := lid.PartByCategory("cover")
	require.NotNil(t, cover)
	plate, ok := cover.Solids[0].(ifc.ExtrudedSolid)
	require.True(t, ok)
	vented, ok := plate.Profile.(ifc.ProfileWithVoids)
	require.True(t, ok)
	assert.Len(t, vented.Voids, 4)
}

func TestChamberOversizedLidKeepsSolidTop(t *testing.T) {
	c := model.Chamber{
		ID:           "MH5",
		Position:     geom.Vec3{Y: 2},
		Width:        0.5,
		Length:       0.5,
		CoverLevel:   2.0,
		InvertLevel:  0.0,
		TopThickness: 0.1,
		Lid: &model.LidConfig{
			Shape:     "rectangle",
			Width:     800, // wider than the chamber plan
			Length:    800,
			Thickness: 100,
		},
	}
	els := Chamber(absoluteCtx(), c)
	require.NotEmpty(t, els)

	part := els[0].PartByCategory("structure")
	require.NotNil(t, part)
	top := part.Solids[len(part.Solids)-1].(ifc.ExtrudedSolid)
	_, voided := top.Profile.(ifc.ProfileWithVoids)
	assert.False(t, voided, "opening larger than the plan must be dropped")
}
