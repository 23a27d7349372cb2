package preview

// Mesh is a triangle mesh suitable for client-side rendering. All arrays
// are flat: vertices has 3 floats per vertex (x,y,z), normals has 3
// floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Element  string    `json:"element"` // source element name
	Part     string    `json:"part"`    // part category within the element
	Color    string    `json:"color,omitempty"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
