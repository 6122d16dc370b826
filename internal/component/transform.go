package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is a translation/rotation/scale triple. Matrix composes them as
// T * R * S.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) Translate(d mgl32.Vec3) *Transform {
	t.Translation = t.Translation.Add(d)
	return t
}

// Rotate applies a further rotation of angle radians about axis. A zero
// axis leaves the rotation unchanged.
func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) *Transform {
	if axis.Len() == 0 {
		return t
	}
	q := mgl32.QuatRotate(angle, axis.Normalize())
	t.Rotation = q.Mul(t.Rotation).Normalize()
	return t
}

// ScaleBy multiplies the scale component-wise.
func (t *Transform) ScaleBy(s mgl32.Vec3) *Transform {
	t.Scale = mgl32.Vec3{t.Scale[0] * s[0], t.Scale[1] * s[1], t.Scale[2] * s[2]}
	return t
}

func (t Transform) Matrix() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	sc := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}
