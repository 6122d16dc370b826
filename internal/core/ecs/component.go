package ecs

import "reflect"

// TypeKey identifies a component type. It is derived from the same type
// parameter that is later used to recover the concrete column, so a lookup
// can never resolve to a column of another type.
type TypeKey = reflect.Type

func typeKeyOf[T any]() TypeKey {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AnyColumn is implemented by every Column so the Store can compact and
// inspect columns without knowing their element type.
type AnyColumn interface {
	Len() int
	EntityAt(i int) (Entity, bool)
	SwapRemove(i int)
	TypeKey() TypeKey
	TypeName() string
}

// Row is one (entity, value) pair of a column.
type Row[T any] struct {
	Entity Entity
	Value  T
}

// Column is a homogeneous, append-only sequence of rows for one component
// type. Rows are removed by swapping with the tail.
type Column[T any] struct {
	rows []Row[T]
	key  TypeKey
}

func NewColumn[T any]() *Column[T] {
	return &Column[T]{
		rows: make([]Row[T], 0, 64),
		key:  typeKeyOf[T](),
	}
}

// Push appends a row and returns its index.
func (c *Column[T]) Push(e Entity, v T) int {
	c.rows = append(c.rows, Row[T]{Entity: e, Value: v})
	return len(c.rows) - 1
}

// SwapRemove moves the last row into slot i and truncates by one.
// Out-of-range indices are ignored.
func (c *Column[T]) SwapRemove(i int) {
	last := len(c.rows) - 1
	if i < 0 || i > last {
		return
	}
	c.rows[i] = c.rows[last]
	var zero Row[T]
	c.rows[last] = zero
	c.rows = c.rows[:last]
}

func (c *Column[T]) EntityAt(i int) (Entity, bool) {
	if i < 0 || i >= len(c.rows) {
		return 0, false
	}
	return c.rows[i].Entity, true
}

func (c *Column[T]) Len() int { return len(c.rows) }

func (c *Column[T]) TypeKey() TypeKey { return c.key }

// TypeName returns the unqualified Go type name, e.g. "MeshComponent".
func (c *Column[T]) TypeName() string {
	if n := c.key.Name(); n != "" {
		return n
	}
	return c.key.String()
}

// At returns a copy of row i. It panics if i is out of range.
func (c *Column[T]) At(i int) Row[T] {
	return c.rows[i]
}

// Value returns a pointer to the value in row i, valid until the next
// insertion or removal on this column.
func (c *Column[T]) Value(i int) *T {
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	return &c.rows[i].Value
}

// Rows exposes the rows in column order. Callers must not append to or
// reslice the returned slice.
func (c *Column[T]) Rows() []Row[T] {
	return c.rows
}

// Each calls fn for every row in column order with a mutable value pointer.
func (c *Column[T]) Each(fn func(Entity, *T)) {
	for i := range c.rows {
		fn(c.rows[i].Entity, &c.rows[i].Value)
	}
}
