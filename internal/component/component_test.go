package component

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSharpCube(t *testing.T) {
	m := SharpCube()
	assert.Equal(t, 24, m.VertexCount())
	assert.Equal(t, 36, m.IndexCount())
	assert.Equal(t, 12, m.TriangleCount())
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestPlaneSizes(t *testing.T) {
	tests := []struct {
		name       string
		mesh       *Mesh
		vertices   int
		triangles  int
		firstPoint mgl32.Vec3
	}{
		{"xz clamps to 2x2", PlaneXZ(0, 1), 4, 2, mgl32.Vec3{-0.5, 0, 0.5}},
		{"xy 3x2", PlaneXY(3, 2), 6, 4, mgl32.Vec3{-0.5, -0.5, 0}},
		{"yz 4x4", PlaneYZ(4, 4), 16, 18, mgl32.Vec3{0, -0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.vertices, tt.mesh.VertexCount())
			assert.Equal(t, tt.triangles, tt.mesh.TriangleCount())
			assertVec3Near(t, tt.firstPoint, tt.mesh.Vertices[0].Position)
		})
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	assertMat4Near(t, mgl32.Ident4(), tr.Matrix())

	tr.Translate(mgl32.Vec3{1, 2, 3}).ScaleBy(mgl32.Vec3{2, 2, 2})
	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3Near(t, mgl32.Vec3{3, 2, 3}, p)
}

func TestTransformRotate(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(mgl32.Vec3{0, 2, 0}, math.Pi/2)

	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDeltaSlice(t, []float32{0, 0, -1}, p[:], 1e-5)

	before := tr.Rotation
	tr.Rotate(mgl32.Vec3{}, 1)
	assert.Equal(t, before, tr.Rotation)
}

func assertVec3Near(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "got %v", got)
}

func assertMat4Near(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5)
}
