package render

import (
	"context"
	"fmt"

	"github.com/l1jgo/scene/internal/camera"
	"github.com/l1jgo/scene/internal/component"
	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/material"
)

// Backend consumes finished frames. A GPU backend would record command
// buffers here; the headless build only logs.
type Backend interface {
	Submit(ctx context.Context, f *Frame) error
}

// Renderer reads the MeshComponent column once per frame and turns it into
// a draw list. It never mutates the store.
type Renderer struct {
	backend   Backend
	camera    *camera.Camera
	materials *material.Manager
	aspect    float32
	frames    uint64
}

func NewRenderer(backend Backend, cam *camera.Camera, materials *material.Manager, width, height int) *Renderer {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return &Renderer{
		backend:   backend,
		camera:    cam,
		materials: materials,
		aspect:    aspect,
	}
}

func (r *Renderer) Camera() *camera.Camera { return r.camera }

// SetCamera replaces the active camera.
func (r *Renderer) SetCamera(cam *camera.Camera) { r.camera = cam }

// Frames reports how many frames have been built.
func (r *Renderer) Frames() uint64 { return r.frames }

// BuildFrame produces the draw list for the current store contents. A store
// with no MeshComponent column yields an empty frame.
func (r *Renderer) BuildFrame(store *ecs.Store) *Frame {
	r.frames++
	f := &Frame{
		Number:     r.frames,
		View:       r.camera.View(),
		Projection: r.camera.Projection(r.aspect),
	}
	meshes, ok := ecs.Components[component.MeshComponent](store)
	if !ok {
		return f
	}
	viewProj := f.Projection.Mul4(f.View)
	f.Draws = make([]DrawCall, 0, meshes.Len())
	for _, row := range meshes.Rows() {
		mc := row.Value
		if mc.Mesh == nil || !r.materials.Has(mc.Material) {
			f.Skipped++
			continue
		}
		model := mc.Model.Matrix()
		f.Draws = append(f.Draws, DrawCall{
			Entity:      row.Entity,
			Mesh:        mc.Mesh,
			Material:    mc.Material,
			Model:       model,
			MVP:         viewProj.Mul4(model),
			IndexCount:  mc.Mesh.IndexCount(),
			VertexCount: mc.Mesh.VertexCount(),
		})
	}
	return f
}

// Render builds the current frame and submits it to the backend.
func (r *Renderer) Render(ctx context.Context, store *ecs.Store) (*Frame, error) {
	f := r.BuildFrame(store)
	if err := r.backend.Submit(ctx, f); err != nil {
		return f, fmt.Errorf("submit frame %d: %w", f.Number, err)
	}
	return f, nil
}
