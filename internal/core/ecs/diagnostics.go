package ecs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ColumnStats is the row count of one component column.
type ColumnStats struct {
	Type string
	Rows int
}

// Stats is a point-in-time summary of the store.
type Stats struct {
	Entities int
	Columns  []ColumnStats
}

// Stats summarises the store, columns sorted by type name.
func (s *Store) Stats() Stats {
	st := Stats{Entities: s.dir.Len()}
	for _, c := range s.sortedColumns() {
		st.Columns = append(st.Columns, ColumnStats{Type: c.TypeName(), Rows: c.Len()})
	}
	return st
}

// String dumps entity→component references followed by, for every
// component type, the owning entities in column order. Output is
// deterministic: entities ascend and columns are ordered by type name.
func (s *Store) String() string {
	var b strings.Builder
	b.WriteString("Entities: {\n")
	for _, e := range s.dir.Entities() {
		fmt.Fprintf(&b, "\t%d: [", e)
		for i, ref := range s.dir.refs[e] {
			if i > 0 {
				b.WriteByte(' ')
			}
			name := ref.Type.String()
			if c, ok := s.registry.Column(ref.Type); ok {
				name = c.TypeName()
			}
			fmt.Fprintf(&b, "(%s, %d)", name, ref.Index)
		}
		b.WriteString("]\n")
	}
	b.WriteString("}\n")

	for _, c := range s.sortedColumns() {
		owners := make([]string, 0, c.Len())
		for i := 0; i < c.Len(); i++ {
			e, _ := c.EntityAt(i)
			owners = append(owners, fmt.Sprint(e))
		}
		fmt.Fprintf(&b, "%s: [%s]\n", c.TypeName(), strings.Join(owners, " "))
	}
	return b.String()
}

func (s *Store) sortedColumns() []AnyColumn {
	cols := make([]AnyColumn, 0, s.registry.Len())
	s.registry.Each(func(c AnyColumn) { cols = append(cols, c) })
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].TypeName() != cols[j].TypeName() {
			return cols[i].TypeName() < cols[j].TypeName()
		}
		return cols[i].TypeKey().String() < cols[j].TypeKey().String()
	})
	return cols
}

// Verify scans the whole store and reports every broken cross-reference
// between the directory and the columns. A nil result means the store is
// consistent.
func (s *Store) Verify() error {
	var errs []error

	refCount := make(map[TypeKey]int, s.registry.Len())
	for _, e := range s.dir.Entities() {
		for _, ref := range s.dir.refs[e] {
			refCount[ref.Type]++
			c, ok := s.registry.Column(ref.Type)
			if !ok {
				errs = append(errs, fmt.Errorf("entity %d references missing column %s", e, ref.Type))
				continue
			}
			owner, ok := c.EntityAt(ref.Index)
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("entity %d references %s row %d beyond length %d", e, c.TypeName(), ref.Index, c.Len()))
			case owner != e:
				errs = append(errs, fmt.Errorf("entity %d references %s row %d owned by %d", e, c.TypeName(), ref.Index, owner))
			}
		}
	}

	for _, c := range s.sortedColumns() {
		if n := refCount[c.TypeKey()]; n != c.Len() {
			errs = append(errs, fmt.Errorf("column %s has %d rows but %d references", c.TypeName(), c.Len(), n))
		}
		for i := 0; i < c.Len(); i++ {
			owner, _ := c.EntityAt(i)
			refs, ok := s.dir.refs[owner]
			if !ok {
				errs = append(errs, fmt.Errorf("column %s row %d owned by dead entity %d", c.TypeName(), i, owner))
				continue
			}
			matches := 0
			for _, ref := range refs {
				if ref.Type == c.TypeKey() && ref.Index == i {
					matches++
				}
			}
			if matches != 1 {
				errs = append(errs, fmt.Errorf("column %s row %d: entity %d holds %d references to it", c.TypeName(), i, owner, matches))
			}
		}
	}
	return errors.Join(errs...)
}
