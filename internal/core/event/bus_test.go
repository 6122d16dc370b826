package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversNextFrame(t *testing.T) {
	b := NewBus()
	var spawned []EntitySpawned
	var despawned []EntityDespawned
	Subscribe(b, func(ev EntitySpawned) { spawned = append(spawned, ev) })
	Subscribe(b, func(ev EntityDespawned) { despawned = append(despawned, ev) })

	Emit(b, EntitySpawned{Entity: 1})
	Emit(b, EntitySpawned{Entity: 2})
	Emit(b, EntityDespawned{Entity: 1, Deferred: true})
	assert.Equal(t, 3, b.Pending())

	b.DispatchAll()
	assert.Empty(t, spawned, "events stay in the back buffer until swapped")

	b.SwapBuffers()
	assert.Equal(t, 0, b.Pending())
	b.DispatchAll()
	assert.Equal(t, []EntitySpawned{{1}, {2}}, spawned)
	assert.Equal(t, []EntityDespawned{{Entity: 1, Deferred: true}}, despawned)

	b.SwapBuffers()
	b.DispatchAll()
	assert.Len(t, spawned, 2, "front buffer is cleared by the next swap")
}
