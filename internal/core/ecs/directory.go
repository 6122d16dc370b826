package ecs

import "fmt"

// refList is the ordered list of component references owned by one entity.
// The last element is always the most recently added component.
type refList []ComponentRef

// ComponentRef names exactly one row in exactly one column.
type ComponentRef struct {
	Type  TypeKey
	Index int
}

// Directory maps each live entity to the references of every component it owns.
type Directory struct {
	refs map[Entity]refList
	next Entity
}

func NewDirectory() *Directory {
	return &Directory{
		refs: make(map[Entity]refList, 256),
	}
}

// Spawn allocates a fresh handle with an empty reference list.
func (d *Directory) Spawn() Entity {
	e := d.next
	d.next++
	d.refs[e] = make(refList, 0, 4)
	return e
}

func (d *Directory) Contains(e Entity) bool {
	_, ok := d.refs[e]
	return ok
}

func (d *Directory) Len() int { return len(d.refs) }

// Refs returns e's references in insertion order. The slice is a view into
// the directory and must not be modified.
func (d *Directory) Refs(e Entity) ([]ComponentRef, error) {
	refs, ok := d.refs[e]
	if !ok {
		return nil, &EntityError{Op: "refs", Entity: e}
	}
	return refs, nil
}

// remove deletes e's entry. It refuses while e still owns rows, which would
// otherwise be left behind without an owner.
func (d *Directory) remove(e Entity) error {
	refs, ok := d.refs[e]
	if !ok {
		return &EntityError{Op: "remove", Entity: e}
	}
	if len(refs) > 0 {
		return fmt.Errorf("ecs: remove: entity %d still owns %d components", e, len(refs))
	}
	delete(d.refs, e)
	return nil
}

// Entities returns all live handles in ascending order.
func (d *Directory) Entities() []Entity {
	out := make([]Entity, 0, len(d.refs))
	for e := range d.refs {
		out = append(out, e)
	}
	sortEntities(out)
	return out
}

func (d *Directory) push(e Entity, ref ComponentRef) {
	d.refs[e] = append(d.refs[e], ref)
}

// pop removes and returns e's last reference.
func (d *Directory) pop(e Entity) (ComponentRef, bool) {
	refs := d.refs[e]
	if len(refs) == 0 {
		return ComponentRef{}, false
	}
	last := refs[len(refs)-1]
	d.refs[e] = refs[:len(refs)-1]
	return last, true
}

// repoint rewrites e's reference (key, from) to (key, to). Linear scan: an
// entity owns at most a handful of components.
func (d *Directory) repoint(e Entity, key TypeKey, from, to int) bool {
	refs := d.refs[e]
	for i := range refs {
		if refs[i].Type == key && refs[i].Index == from {
			refs[i].Index = to
			return true
		}
	}
	return false
}
