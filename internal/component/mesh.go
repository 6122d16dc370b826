package component

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the per-vertex layout uploaded to the vertex buffer.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
	Color    mgl32.Vec3
}

// Mesh is CPU-side geometry: a vertex list and triangle indices into it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Vertices) }
func (m *Mesh) IndexCount() int  { return len(m.Indices) }

// TriangleCount is the number of complete triangles described by Indices.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }
