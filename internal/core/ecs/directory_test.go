package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryRemoveRefusesOwner(t *testing.T) {
	s := NewStore()
	e := s.Spawn()
	require.NoError(t, AddComponent(s, e, Pos{1}))

	err := s.dir.remove(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still owns 1 components")
	assert.True(t, s.Contains(e))
	assert.NoError(t, s.Verify())

	require.NoError(t, s.Despawn(e))
	assert.False(t, s.Contains(e))
	assert.NoError(t, s.Verify())
}

func TestDirectoryRemoveUnknown(t *testing.T) {
	d := NewDirectory()
	err := d.remove(3)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}
