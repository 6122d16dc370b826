package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraBasis(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -2}, mgl32.Vec3{0, 1, 0})

	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestCameraMovement(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})

	c.MoveRight(2)
	c.MoveUp(1)
	c.MoveForward(3)
	assertVec3Near(t, mgl32.Vec3{2, 1, -3}, c.Position())

	c.MoveLeft(2)
	c.MoveDown(1)
	c.MoveBackward(3)
	assertVec3Near(t, mgl32.Vec3{}, c.Position())
}

func TestViewMovesWorldOppositeToCamera(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})

	origin := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVec3Near(t, mgl32.Vec3{0, 0, -5}, origin.Vec3())
}

func assertVec3Near(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "got %v", got)
}
