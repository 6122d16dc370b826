package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringIsSortedAndDeterministic(t *testing.T) {
	s := NewStore()
	e0, _, e2 := s.Spawn(), s.Spawn(), s.Spawn()
	require.NoError(t, AddComponent(s, e2, Vel{1}))
	require.NoError(t, AddComponent(s, e0, Pos{1}))
	require.NoError(t, AddComponent(s, e0, Vel{2}))
	require.NoError(t, AddComponent(s, e2, Pos{3}))

	want := "Entities: {\n" +
		"\t0: [(Pos, 0) (Vel, 1)]\n" +
		"\t1: []\n" +
		"\t2: [(Vel, 0) (Pos, 1)]\n" +
		"}\n" +
		"Pos: [0 2]\n" +
		"Vel: [2 0]\n"
	assert.Equal(t, want, s.String())
	assert.Equal(t, want, s.String())
}

func TestStats(t *testing.T) {
	s := NewStore()
	e := s.Spawn()
	s.Spawn()
	require.NoError(t, AddComponent(s, e, Vel{1}))
	require.NoError(t, AddComponent(s, e, Pos{1}))
	require.NoError(t, AddComponent(s, e, Pos{2}))

	assert.Equal(t, Stats{
		Entities: 2,
		Columns: []ColumnStats{
			{Type: "Pos", Rows: 2},
			{Type: "Vel", Rows: 1},
		},
	}, s.Stats())
}

func TestVerifyReportsCorruption(t *testing.T) {
	s := NewStore()
	a, b := s.Spawn(), s.Spawn()
	require.NoError(t, AddComponent(s, a, Pos{1}))
	require.NoError(t, AddComponent(s, b, Pos{2}))
	require.NoError(t, s.Verify())

	// Point a at b's row behind the store's back.
	s.dir.refs[a][0].Index = 1

	err := s.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity 0 references Pos row 1 owned by 1")
	assert.Contains(t, err.Error(), "column Pos row 0: entity 0 holds 0 references to it")
}

func TestColumnTypeName(t *testing.T) {
	assert.Equal(t, "Pos", NewColumn[Pos]().TypeName())
	assert.Equal(t, "int", NewColumn[int]().TypeName())
	assert.Equal(t, "[]string", NewColumn[[]string]().TypeName())
}

func TestColumnSwapRemove(t *testing.T) {
	c := NewColumn[int]()
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, c.Push(Entity(i), i*10))
	}

	c.SwapRemove(1)
	assert.Equal(t, []Row[int]{{0, 0}, {3, 30}, {2, 20}}, c.Rows())

	c.SwapRemove(2)
	assert.Equal(t, []Row[int]{{0, 0}, {3, 30}}, c.Rows())

	c.SwapRemove(5)
	assert.Equal(t, 2, c.Len())

	_, ok := c.EntityAt(2)
	assert.False(t, ok)
	assert.Nil(t, c.Value(-1))
}
