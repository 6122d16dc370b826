package ecs

// Registry holds one column per component type. Columns are created on first
// use and live as long as the registry.
type Registry struct {
	columns map[TypeKey]AnyColumn
}

func NewRegistry() *Registry {
	return &Registry{
		columns: make(map[TypeKey]AnyColumn, 16),
	}
}

// Column returns the type-erased column for key.
func (r *Registry) Column(key TypeKey) (AnyColumn, bool) {
	c, ok := r.columns[key]
	return c, ok
}

func (r *Registry) Len() int { return len(r.columns) }

// Each visits every column in unspecified order.
func (r *Registry) Each(fn func(AnyColumn)) {
	for _, c := range r.columns {
		fn(c)
	}
}

// lookup resolves the typed column for T, or nil if none exists yet.
func lookup[T any](r *Registry) *Column[T] {
	c, ok := r.columns[typeKeyOf[T]()]
	if !ok {
		return nil
	}
	// The key was derived from T, so the assertion cannot fail.
	return c.(*Column[T])
}

// resolve returns the typed column for T, creating it on first use.
func resolve[T any](r *Registry) *Column[T] {
	if c := lookup[T](r); c != nil {
		return c
	}
	c := NewColumn[T]()
	r.columns[c.TypeKey()] = c
	return c
}
