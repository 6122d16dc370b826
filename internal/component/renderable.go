package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/l1jgo/scene/internal/material"
)

// MeshComponent is the component the renderer draws: shared geometry, a
// per-entity model transform and a material handle.
type MeshComponent struct {
	Mesh     *Mesh
	Model    Transform
	Material material.ID
}

// Spin rotates an entity's model transform about Axis at Speed radians
// per second.
type Spin struct {
	Axis  mgl32.Vec3
	Speed float32
}

// Name labels an entity for logs and scripts.
type Name string
