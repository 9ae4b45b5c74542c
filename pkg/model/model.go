// Package model holds the generic in-memory representation that format
// importers decode into: a Model owns meshes, a mesh owns faces, a face owns
// an ordered list of vertices.
package model

// Point3 is a single vertex position. Coordinates are 32-bit floats, the
// precision binary mesh file formats store.
type Point3 struct {
	X, Y, Z float32
}

// NewPoint3 creates a new point
func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Face is a planar polygon with at least 3 vertices in significant order.
// Importers in this module always produce triangles.
type Face struct {
	Vertices []Point3
}

// Mesh is a collection of faces
type Mesh struct {
	Faces []Face
}

// AddFace appends a face to the mesh
func (m *Mesh) AddFace(face Face) {
	m.Faces = append(m.Faces, face)
}

// FaceCount returns the number of faces in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Model represents a complete decoded 3D model
type Model struct {
	Meshes []Mesh
}

// NewModel creates an empty model
func NewModel() *Model {
	return &Model{Meshes: make([]Mesh, 0)}
}

// FaceCount returns the total number of faces across all meshes
func (m *Model) FaceCount() int {
	total := 0
	for i := range m.Meshes {
		total += len(m.Meshes[i].Faces)
	}
	return total
}

// IsEmpty returns true if the model contains no faces
func (m *Model) IsEmpty() bool {
	return m.FaceCount() == 0
}
