package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

func streetlight() model.PublicLight {
	l := model.PublicLight{
		ID:       "PL-1",
		Type:     "light",
		Position: geom.Vec3{X: 4, Y: 0.2, Z: 7},
		Rotation: 0.5,
	}
	l.Pole = model.PoleConfig{
		Height: 8, Diameter: 160, TaperRatio: 0.5, BaseType: model.BaseEmbedded,
	}
	l.Fixture = model.FixtureConfig{
		Style: model.FixtureShoebox, Count: 1,
		Width: 600, Height: 120, Depth: 300,
		ArmLength: 1.5, ArmAngle: 10, ArmDiameter: 60,
	}
	return l
}

func TestPublicLightPoleAndArm(t *testing.T) {
	els := PublicLight(absoluteCtx(), streetlight())
	require.Len(t, els, 1)
	e := els[0]
	assert.Equal(t, ifc.ClassLightFixture, e.Class)
	assert.Equal(t, ifc.PlacementAbsolute, e.PlacementKind)

	tr := e.Placement.Translation()
	assert.InDelta(t, 4.0, tr.X, 1e-9)
	assert.InDelta(t, 7.0, tr.Y, 1e-9)
	assert.InDelta(t, 0.2, tr.Z, 1e-9)

	pole := e.PartByCategory("pole")
	require.NotNil(t, pole)
	shaft := pole.Solids[0].(ifc.ExtrudedSolid)
	// Tapered shaft approximated at the mean radius: (0.08 + 0.04) / 2.
	assert.InDelta(t, 0.06, shaft.Profile.(ifc.CircleProfile).Radius, 1e-9)
	// Embedded poles continue below grade.
	assert.InDelta(t, -embedDepth, shaft.Position.Location.Z, 1e-9)
	assert.InDelta(t, 8+embedDepth, shaft.Depth, 1e-9)

	arms := e.PartByCategory("arms")
	require.NotNil(t, arms)
	arm := arms.Solids[0].(ifc.SweptDiskSolid)
	assert.InDelta(t, 0.03, arm.Radius, 1e-9)
	assert.InDelta(t, 8.0, arm.Path[0].Z, 1e-9)
	// The arm droops by its tilt.
	assert.Less(t, arm.Path[1].Z, arm.Path[0].Z)

	heads := e.PartByCategory("heads")
	require.NotNil(t, heads)
	require.Len(t, heads.Solids, 1)
}

func TestPublicLightBaseplate(t *testing.T) {
	l := streetlight()
	l.Pole.BaseType = model.BaseBaseplate
	l.Pole.BaseplateWidth = 400
	l.Pole.BaseplateThickness = 20
	l.Pole.BoltCount = 4
	l.Pole.BoltDiameter = 24
	l.Pole.BoltLength = 400
	l.Pole.BoltCircle = 280
	l.Pole.GussetHeight = 100
	l.Pole.GussetThickness = 10

	els := PublicLight(absoluteCtx(), l)
	require.Len(t, els, 1)
	pole := els[0].PartByCategory("pole")
	require.NotNil(t, pole)
	// Shaft + plate + 4 gussets + 4 bolt assemblies (shaft/washer/nut).
	assert.Equal(t, 1+1+4+12, len(pole.Solids))

	plate := pole.Solids[1].(ifc.ExtrudedSolid)
	assert.InDelta(t, 0.4, plate.Profile.(ifc.RectangleProfile).XDim, 1e-9)
	assert.InDelta(t, 0.02, plate.Depth, 1e-9)
}

func TestPublicLightFoundation(t *testing.T) {
	l := streetlight()
	l.Pole.BaseType = model.BaseFoundation
	l.Pole.FoundationWidth = 600
	l.Pole.FoundationHeight = 800

	els := PublicLight(absoluteCtx(), l)
	require.Len(t, els, 2)
	foot := els[1]
	assert.Equal(t, ifc.ClassFooting, foot.Class)
	block := foot.PartByCategory("foundation").Solids[0].(ifc.ExtrudedSolid)
	assert.InDelta(t, 0.6, block.Profile.(ifc.RectangleProfile).XDim, 1e-9)
	assert.InDelta(t, 0.8, block.Depth, 1e-9)
	assert.InDelta(t, -0.8, block.Position.Location.Z, 1e-9)
}

func TestPublicLightPostTop(t *testing.T) {
	l := streetlight()
	l.Fixture.Style = model.FixturePostTop

	els := PublicLight(absoluteCtx(), l)
	require.Len(t, els, 1)
	head := els[0].PartByCategory("head")
	require.NotNil(t, head)
	// Collar plus the globe disc stack.
	require.Len(t, head.Solids, 1+sphereSteps)
	assert.Nil(t, els[0].PartByCategory("arms"))

	// Disc radii follow the sphere section: widest near the equator,
	// symmetric about it. Globe radius 0.15 here.
	radius := func(i int) float64 {
		return head.Solids[1+i].(ifc.ExtrudedSolid).Profile.(ifc.CircleProfile).Radius
	}
	assert.InDelta(t, 0.0726184, radius(0), 1e-6)
	assert.InDelta(t, 0.1488235, radius(3), 1e-6)
	assert.InDelta(t, radius(0), radius(sphereSteps-1), 1e-9)
	assert.Greater(t, radius(3), radius(1))
}

func TestPublicLightLantern(t *testing.T) {
	l := streetlight()
	l.Fixture.Style = model.FixtureLantern

	els := PublicLight(absoluteCtx(), l)
	require.Len(t, els, 1)
	head := els[0].PartByCategory("head")
	require.NotNil(t, head)
	// Cap, hex body, conical roof discs, spherical finial discs.
	require.Len(t, head.Solids, 2+roofSteps+sphereSteps)
	_, isHex := head.Solids[1].(ifc.ExtrudedSolid).Profile.(ifc.PolygonProfile)
	assert.True(t, isHex)

	// The roof tapers: each disc is narrower than the one below.
	for i := 3; i < 2+roofSteps; i++ {
		lower := head.Solids[i-1].(ifc.ExtrudedSolid).Profile.(ifc.CircleProfile).Radius
		upper := head.Solids[i].(ifc.ExtrudedSolid).Profile.(ifc.CircleProfile).Radius
		assert.Less(t, upper, lower)
	}
}

func TestBoltPattern(t *testing.T) {
	corners := boltPattern(4, 0.14)
	require.Len(t, corners, 4)
	d := 0.14 / 1.4142135623730951
	assert.InDelta(t, d, corners[0].X, 1e-9)
	assert.InDelta(t, d, corners[0].Y, 1e-9)

	ring := boltPattern(6, 0.2)
	require.Len(t, ring, 6)
	assert.InDelta(t, 0.2, ring[0].X, 1e-9)
}

func TestSignpost(t *testing.T) {
	l := model.PublicLight{
		ID:       "SGN-1",
		Type:     "sign",
		Position: geom.Vec3{X: 1, Y: 0, Z: 2},
		Pole: model.PoleConfig{
			Height: 2.5, Diameter: 76, TaperRatio: 1, BaseType: model.BaseEmbedded,
		},
		Sign: &model.SignConfig{
			Shape:           "circle",
			Diameter:        600,
			Thickness:       3,
			BorderWidth:     20,
			BackgroundColor: "#FFFFFF",
			BorderColor:     "#CC0000",
			Shapes: []model.SignShape{
				{
					Points: [][2]float64{{-100, -100}, {100, -100}, {0, 120}},
					Color:  "#000000",
					Depth:  1,
				},
			},
		},
	}
	els := PublicLight(absoluteCtx(), l)
	require.Len(t, els, 1)
	e := els[0]
	assert.Equal(t, ifc.ClassSign, e.Class)

	plate := e.PartByCategory("plate")
	require.NotNil(t, plate)
	face := plate.Solids[0].(ifc.ExtrudedSolid)
	assert.InDelta(t, 0.3, face.Profile.(ifc.CircleProfile).Radius, 1e-9)
	assert.InDelta(t, 0.003, face.Depth, 1e-9)
	// Plate center hangs half the plate height below the pole top.
	assert.InDelta(t, 2.5-0.3, face.Position.Location.Z, 1e-9)

	border := e.PartByCategory("border")
	require.NotNil(t, border)
	ring := border.Solids[0].(ifc.ExtrudedSolid).Profile.(ifc.HollowCircleProfile)
	assert.InDelta(t, 0.02, ring.WallThickness, 1e-9)

	shapes := e.PartByCategory("face")
	require.NotNil(t, shapes)
	require.NotNil(t, shapes.Color)
	assert.InDelta(t, 0.0, shapes.Color.R, 1e-9)
	poly := shapes.Solids[0].(ifc.ExtrudedSolid).Profile.(ifc.PolygonProfile)
	assert.InDelta(t, -0.1, poly.Points[0][0], 1e-9)
}

func TestSignBorderTooWideDropped(t *testing.T) {
	s := &model.SignConfig{Shape: "rectangle", Width: 100, Height: 100, BorderWidth: 60}
	assert.Nil(t, signBorder(s))
}
