package event

import "github.com/l1jgo/scene/internal/core/ecs"

// EntitySpawned is emitted when a script spawns an entity.
type EntitySpawned struct {
	Entity ecs.Entity
}

// EntityDespawned is emitted after an entity and all its components are
// removed. Deferred is set when the removal came from the despawn queue.
type EntityDespawned struct {
	Entity   ecs.Entity
	Deferred bool
}
