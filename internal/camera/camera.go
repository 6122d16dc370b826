package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a free-moving perspective camera. Its basis is fixed at
// construction; movement translates along that basis.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3

	FovY float32 // radians
	Near float32
	Far  float32
}

// New builds a camera at position looking along front. front and up are
// normalised; right is front × up.
func New(position, front, up mgl32.Vec3) *Camera {
	front = front.Normalize()
	up = up.Normalize()
	return &Camera{
		position: position,
		front:    front,
		right:    front.Cross(up).Normalize(),
		up:       up,
		FovY:     mgl32.DegToRad(60),
		Near:     0.1,
		Far:      100,
	}
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }

func (c *Camera) MoveUp(amount float32)    { c.position = c.position.Add(c.up.Mul(amount)) }
func (c *Camera) MoveDown(amount float32)  { c.position = c.position.Sub(c.up.Mul(amount)) }
func (c *Camera) MoveLeft(amount float32)  { c.position = c.position.Sub(c.right.Mul(amount)) }
func (c *Camera) MoveRight(amount float32) { c.position = c.position.Add(c.right.Mul(amount)) }

func (c *Camera) MoveForward(amount float32)  { c.position = c.position.Add(c.front.Mul(amount)) }
func (c *Camera) MoveBackward(amount float32) { c.position = c.position.Sub(c.front.Mul(amount)) }

// View is the right-handed world→view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Projection is the perspective matrix for the given width/height ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}
