package material

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Type selects the shading model (and so the pipeline) for a material.
type Type int

const (
	TypeSimple Type = iota
	TypeBlinnPhong
	TypeGLTF2
)

func (t Type) String() string {
	switch t {
	case TypeSimple:
		return "simple"
	case TypeBlinnPhong:
		return "blinn_phong"
	case TypeGLTF2:
		return "gltf2"
	}
	return "unknown"
}

// Material is anything that can be uploaded as a fragment-stage uniform block.
type Material interface {
	Type() Type
	ShaderData() []byte
}

// Simple is a flat colour.
type Simple struct {
	Color mgl32.Vec3
}

func NewSimple(r, g, b float32) Simple {
	return Simple{Color: mgl32.Vec3{r, g, b}}
}

func (Simple) Type() Type { return TypeSimple }

// ShaderData packs the colour as three little-endian float32s.
func (m Simple) ShaderData() []byte {
	out := make([]byte, 0, 12)
	for _, c := range m.Color {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(c))
	}
	return out
}
