package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/l1jgo/scene/internal/component"
	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/material"
)

// DrawCall is everything a backend needs to draw one mesh row.
type DrawCall struct {
	Entity      ecs.Entity
	Mesh        *component.Mesh
	Material    material.ID
	Model       mgl32.Mat4
	MVP         mgl32.Mat4
	IndexCount  int
	VertexCount int
}

// Frame is one frame's draw list, in MeshComponent column order.
type Frame struct {
	Number     uint64
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Draws      []DrawCall
	Skipped    int // rows with no mesh or an unknown material
}

// Triangles sums the triangle count of every draw call.
func (f *Frame) Triangles() int {
	n := 0
	for i := range f.Draws {
		n += f.Draws[i].IndexCount / 3
	}
	return n
}
