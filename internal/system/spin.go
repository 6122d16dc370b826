package system

import (
	"time"

	"github.com/l1jgo/scene/internal/component"
	"github.com/l1jgo/scene/internal/core/ecs"
	coresys "github.com/l1jgo/scene/internal/core/system"
)

// SpinSystem rotates the model transform of every entity that owns both a
// Spin and a MeshComponent. Phase 2 (Update).
//
// The store has no joins, so the system walks the Spin column and resolves
// each owner's meshes through its references.
type SpinSystem struct {
	store *ecs.Store
}

func NewSpinSystem(store *ecs.Store) *SpinSystem {
	return &SpinSystem{store: store}
}

func (s *SpinSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *SpinSystem) Update(dt time.Duration) {
	spins, ok := ecs.Components[component.Spin](s.store)
	if !ok {
		return
	}
	secs := float32(dt.Seconds())
	for _, row := range spins.Rows() {
		meshes, err := ecs.ComponentsOf[component.MeshComponent](s.store, row.Entity)
		if err != nil {
			continue
		}
		for _, mc := range meshes {
			mc.Model.Rotate(row.Value.Axis, row.Value.Speed*secs)
		}
	}
}
