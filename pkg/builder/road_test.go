package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
)

func TestRoadMesh(t *testing.T) {
	rc := model.RoadComponent{
		ID:   "RD-1",
		Type: model.RoadCarriageway,
		Vertices: []model.Point{
			{0, 0.1, 0},
			{10, 0.1, 0},
			{10, 0.1, 6},
			{0, 0.1, 6},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
	e := Road(absoluteCtx(), rc)
	require.NotNil(t, e)
	assert.Equal(t, ifc.ClassGeographicElement, e.Class)
	assert.Equal(t, ifc.PlacementBaked, e.PlacementKind)

	mesh := e.PartByCategory("surface").Solids[0].(ifc.TriangulatedMesh)
	require.Len(t, mesh.Vertices, 4)
	assert.InDelta(t, 0.1, mesh.Vertices[0].Z, 1e-9) // elevation to z
	assert.InDelta(t, 6.0, mesh.Vertices[2].Y, 1e-9) // northing to y
	assert.Len(t, mesh.Triangles, 2)
}

func TestRoadMeshBadIndicesSkipped(t *testing.T) {
	rc := model.RoadComponent{
		ID:        "RD-2",
		Type:      model.RoadCarriageway,
		Vertices:  []model.Point{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}},
		Triangles: [][3]int{{0, 1, 7}},
	}
	assert.Nil(t, Road(absoluteCtx(), rc))
}

func TestRoadMeshTooFewVertices(t *testing.T) {
	rc := model.RoadComponent{
		ID:        "RD-3",
		Type:      model.RoadVerge,
		Vertices:  []model.Point{{0, 0, 0}, {1, 0, 0}},
		Triangles: [][3]int{{0, 1, 0}},
	}
	assert.Nil(t, Road(absoluteCtx(), rc))
}

func TestRoadKerbSweep(t *testing.T) {
	rc := model.RoadComponent{
		ID:   "KRB-1",
		Type: model.RoadKerb,
		Side: "left",
		Centerline: []model.Point{
			{0, 0.2, 0},
			{20, 0.2, 0},
		},
		Profile: model.RoadProfile{Width: 0.15, TopWidth: 0.125, Height: 0.255},
	}
	e := Road(absoluteCtx(), rc)
	require.NotNil(t, e)

	part := e.PartByCategory("surface")
	require.Len(t, part.Solids, 1)
	ext := part.Solids[0].(ifc.ExtrudedSolid)
	assert.InDelta(t, 20.0, ext.Depth, 1e-9) // no bend extension for roads

	poly := ext.Profile.(ifc.PolygonProfile)
	require.Len(t, poly.Points, 4)
	// Left face stays vertical.
	assert.InDelta(t, -0.075, poly.Points[0][0], 1e-9)
	assert.InDelta(t, -0.075, poly.Points[3][0], 1e-9)
	assert.InDelta(t, 0.255, poly.Points[2][1], 1e-9)
}

func TestRoadFootwayRectangle(t *testing.T) {
	rc := model.RoadComponent{
		ID:         "FW-1",
		Type:       model.RoadFootway,
		Centerline: []model.Point{{0, 0, 0}, {5, 0, 0}, {5, 0, 5}},
		Profile:    model.RoadProfile{Width: 2.0, Height: 0.15},
	}
	e := Road(absoluteCtx(), rc)
	require.NotNil(t, e)
	part := e.PartByCategory("surface")
	require.Len(t, part.Solids, 2)

	rect := part.Solids[0].(ifc.ExtrudedSolid).Profile.(ifc.RectangleProfile)
	assert.InDelta(t, 2.0, rect.XDim, 1e-9)
	assert.InDelta(t, 0.15, rect.YDim, 1e-9)
	// Section rests on the centerline rather than straddling it.
	assert.InDelta(t, 0.075, rect.Center[1], 1e-9)
}

func TestRoadEmptySkipped(t *testing.T) {
	assert.Nil(t, Road(absoluteCtx(), model.RoadComponent{ID: "X", Type: model.RoadKerb}))
}
