package system

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/l1jgo/scene/internal/camera"
	"github.com/l1jgo/scene/internal/component"
	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/core/event"
	coresys "github.com/l1jgo/scene/internal/core/system"
	"github.com/l1jgo/scene/internal/material"
	"github.com/l1jgo/scene/internal/render"
	"github.com/l1jgo/scene/internal/scripting"
)

type harness struct {
	store    *ecs.Store
	bus      *event.Bus
	mats     *material.Manager
	runner   *coresys.Runner
	lua      *scripting.Engine
	script   *ScriptSystem
	renderer *RenderSystem
	cleanup  *CleanupSystem
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := zap.NewNop()
	h := &harness{
		store:  ecs.NewStore(),
		bus:    event.NewBus(),
		mats:   material.NewManager(),
		runner: coresys.NewRunner(),
	}
	lua, err := scripting.NewEngine("", h.store, h.bus, log)
	require.NoError(t, err)
	t.Cleanup(lua.Close)
	h.lua = lua

	cam := camera.New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	r := render.NewRenderer(render.NewLogBackend(log), cam, h.mats, 640, 480)

	h.script = NewScriptSystem(lua, log)
	h.renderer = NewRenderSystem(context.Background(), h.store, r, log)
	h.cleanup = NewCleanupSystem(h.store, h.bus, true, log)

	h.runner.Register(h.cleanup)
	h.runner.Register(h.renderer)
	h.runner.Register(NewSpinSystem(h.store))
	h.runner.Register(h.script)
	h.runner.Register(NewEventDispatchSystem(h.bus))
	return h
}

func (h *harness) addCube(t *testing.T, spin *component.Spin) ecs.Entity {
	t.Helper()
	if h.mats.Len() == 0 {
		h.mats.New(material.NewSimple(1, 1, 1))
	}
	e := h.store.Spawn()
	mc := component.MeshComponent{Mesh: component.SharpCube(), Model: component.NewTransform(), Material: 0}
	require.NoError(t, ecs.AddComponent(h.store, e, mc))
	if spin != nil {
		require.NoError(t, ecs.AddComponent(h.store, e, *spin))
	}
	return e
}

func TestFrameRendersMeshes(t *testing.T) {
	h := newHarness(t)
	h.addCube(t, nil)
	h.addCube(t, nil)

	h.runner.Tick(16 * time.Millisecond)

	f := h.renderer.LastFrame()
	require.NotNil(t, f)
	assert.Len(t, f.Draws, 2)
	assert.Equal(t, 0, h.cleanup.Violations())
}

func TestSpinRotatesOnlySpinningMeshes(t *testing.T) {
	h := newHarness(t)
	still := h.addCube(t, nil)
	spinning := h.addCube(t, &component.Spin{Axis: mgl32.Vec3{0, 1, 0}, Speed: math.Pi})

	h.runner.Tick(500 * time.Millisecond)

	stillMesh, err := ecs.ComponentsOf[component.MeshComponent](h.store, still)
	require.NoError(t, err)
	assert.Equal(t, mgl32.QuatIdent(), stillMesh[0].Model.Rotation)

	spinMesh, err := ecs.ComponentsOf[component.MeshComponent](h.store, spinning)
	require.NoError(t, err)
	p := spinMesh[0].Model.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDeltaSlice(t, []float32{0, 0, -1}, p[:], 1e-5, "quarter turn")
}

func TestScriptDespawnFlowsThroughCleanupAndEvents(t *testing.T) {
	h := newHarness(t)
	var despawned []event.EntityDespawned
	event.Subscribe(h.bus, func(ev event.EntityDespawned) { despawned = append(despawned, ev) })

	victim := h.addCube(t, nil)
	h.addCube(t, nil)
	require.NoError(t, h.lua.DoString(`
		function on_update(dt)
			if scene.exists(0) then scene.mark(0) end
		end
	`))

	h.runner.Tick(time.Millisecond)
	assert.False(t, h.store.Contains(victim))
	assert.Len(t, h.renderer.LastFrame().Draws, 2, "render runs before cleanup")
	assert.Empty(t, despawned, "events arrive next frame")

	h.runner.Tick(time.Millisecond)
	assert.Equal(t, []event.EntityDespawned{{Entity: victim, Deferred: true}}, despawned)
	assert.Len(t, h.renderer.LastFrame().Draws, 1)
	assert.Equal(t, 0, h.cleanup.Violations())
	assert.Equal(t, 0, h.script.Errors())
}

func TestScriptErrorsAreCounted(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.lua.DoString(`function on_update(dt) scene.despawn(12345) end`))

	h.runner.Tick(time.Millisecond)
	h.runner.Tick(time.Millisecond)
	assert.Equal(t, 2, h.script.Errors())
}
