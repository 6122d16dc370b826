package material

import (
	"errors"
	"fmt"
)

var ErrUnknownMaterial = errors.New("unknown material")

// ID is a handle returned by Manager.New. IDs are dense and sequential.
type ID uint64

type entry struct {
	material Material
	uniform  []byte
}

// Manager owns every material of a scene and the uniform bytes uploaded for
// each. It is independent of the entity store: entities refer to materials
// only by ID.
type Manager struct {
	materials []entry
}

func NewManager() *Manager {
	return &Manager{
		materials: make([]entry, 0, 16),
	}
}

// New registers m and returns its ID.
func (mgr *Manager) New(m Material) ID {
	id := ID(len(mgr.materials))
	mgr.materials = append(mgr.materials, entry{
		material: m,
		uniform:  m.ShaderData(),
	})
	return id
}

func (mgr *Manager) Len() int { return len(mgr.materials) }

func (mgr *Manager) Has(id ID) bool { return id < ID(len(mgr.materials)) }

func (mgr *Manager) Type(id ID) (Type, error) {
	e, err := mgr.get(id)
	if err != nil {
		return 0, err
	}
	return e.material.Type(), nil
}

// ShaderData returns the uniform bytes captured when id was created.
func (mgr *Manager) ShaderData(id ID) ([]byte, error) {
	e, err := mgr.get(id)
	if err != nil {
		return nil, err
	}
	return e.uniform, nil
}

func (mgr *Manager) get(id ID) (*entry, error) {
	if !mgr.Has(id) {
		return nil, fmt.Errorf("material %d: %w", id, ErrUnknownMaterial)
	}
	return &mgr.materials[id], nil
}
