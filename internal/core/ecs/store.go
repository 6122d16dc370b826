package ecs

// Store is the scene's entity/component table. It owns the entity directory,
// the column registry, and a deferred despawn queue flushed once per frame.
//
// A Store has a single owner; it performs no locking. Callers that share one
// across goroutines must guard the whole Store with one lock, since the
// directory and columns are updated together.
type Store struct {
	dir          *Directory
	registry     *Registry
	despawnQueue []Entity
}

func NewStore() *Store {
	return &Store{
		dir:          NewDirectory(),
		registry:     NewRegistry(),
		despawnQueue: make([]Entity, 0, 64),
	}
}

func (s *Store) Spawn() Entity {
	return s.dir.Spawn()
}

func (s *Store) Contains(e Entity) bool { return s.dir.Contains(e) }
func (s *Store) EntityCount() int       { return s.dir.Len() }
func (s *Store) ColumnCount() int       { return s.registry.Len() }

// Entities returns all live handles in ascending order.
func (s *Store) Entities() []Entity { return s.dir.Entities() }

// Refs returns e's component references, last-added last.
func (s *Store) Refs(e Entity) ([]ComponentRef, error) {
	return s.dir.Refs(e)
}

// Despawn removes every component of e, newest first, then deletes e.
func (s *Store) Despawn(e Entity) error {
	if !s.dir.Contains(e) {
		return &EntityError{Op: "despawn", Entity: e}
	}
	for s.removeLast(e) {
	}
	return s.dir.remove(e)
}

// PopComponent removes e's most recently added component and reports its
// type. ok is false when e owns no components.
func (s *Store) PopComponent(e Entity) (key TypeKey, ok bool, err error) {
	refs, err := s.dir.Refs(e)
	if err != nil {
		return nil, false, &EntityError{Op: "pop component", Entity: e}
	}
	if len(refs) == 0 {
		return nil, false, nil
	}
	key = refs[len(refs)-1].Type
	s.removeLast(e)
	return key, true, nil
}

// removeLast pops e's last reference and swap-removes its row. If another
// row was moved into the hole, its owner's reference is repointed.
func (s *Store) removeLast(e Entity) bool {
	ref, ok := s.dir.pop(e)
	if !ok {
		return false
	}
	col, ok := s.registry.Column(ref.Type)
	if !ok {
		panic("ecs: reference to missing column " + ref.Type.String())
	}
	oldLast := col.Len() - 1
	col.SwapRemove(ref.Index)
	if ref.Index == oldLast {
		return true
	}
	moved, ok := col.EntityAt(ref.Index)
	if !ok || !s.dir.repoint(moved, ref.Type, oldLast, ref.Index) {
		panic("ecs: lost back-reference while compacting " + col.TypeName())
	}
	return true
}

// MarkForDespawn queues e for removal at the next FlushDespawnQueue.
func (s *Store) MarkForDespawn(e Entity) {
	s.despawnQueue = append(s.despawnQueue, e)
}

// PendingDespawns reports how many entities are queued.
func (s *Store) PendingDespawns() int { return len(s.despawnQueue) }

// FlushDespawnQueue despawns all queued entities in queue order and returns
// the ones actually removed. Entities that are already gone (including
// duplicates) are reported as errors, not fatal.
func (s *Store) FlushDespawnQueue() (despawned []Entity, errs []error) {
	for _, e := range s.despawnQueue {
		if err := s.Despawn(e); err != nil {
			errs = append(errs, err)
			continue
		}
		despawned = append(despawned, e)
	}
	s.despawnQueue = s.despawnQueue[:0]
	return despawned, errs
}

// AddComponent attaches v to e, creating the column for T on first use.
func AddComponent[T any](s *Store, e Entity, v T) error {
	if !s.dir.Contains(e) {
		return &EntityError{Op: "add component", Entity: e}
	}
	col := resolve[T](s.registry)
	idx := col.Push(e, v)
	s.dir.push(e, ComponentRef{Type: col.TypeKey(), Index: idx})
	return nil
}

// Components returns the column for T. ok is false until a component of
// type T has been added; after that the column exists for the Store's
// lifetime, even when empty.
func Components[T any](s *Store) (*Column[T], bool) {
	col := lookup[T](s.registry)
	return col, col != nil
}

// ComponentsMut is Components for callers that intend to mutate row values
// in place. Values may be changed; rows must not be added or removed except
// through the Store.
func ComponentsMut[T any](s *Store) (*Column[T], bool) {
	return Components[T](s)
}

// ComponentsOf returns pointers to every T owned by e, in the order they
// were added.
func ComponentsOf[T any](s *Store, e Entity) ([]*T, error) {
	refs, err := s.dir.Refs(e)
	if err != nil {
		return nil, &EntityError{Op: "components of", Entity: e}
	}
	col := lookup[T](s.registry)
	if col == nil {
		return nil, nil
	}
	var out []*T
	for _, ref := range refs {
		if ref.Type == col.TypeKey() {
			out = append(out, col.Value(ref.Index))
		}
	}
	return out, nil
}
