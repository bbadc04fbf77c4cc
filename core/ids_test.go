package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorMonotonic(t *testing.T) {
	a := NewAllocator()

	for want := RecordID(0); want < 100; want++ {
		id, err := a.Allocate(nil)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestAllocatorCollision(t *testing.T) {
	a := NewAllocator()

	_, err := a.Allocate(func(RecordID) bool { return true })
	require.ErrorIs(t, err, ErrExhausted)

	// A failed allocation must not advance the counter.
	id, err := a.Allocate(func(RecordID) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, RecordID(0), id)
}

func TestAllocatorCloneAndReset(t *testing.T) {
	a := NewAllocator()
	for i := 0; i < 5; i++ {
		_, err := a.Allocate(nil)
		require.NoError(t, err)
	}

	c := a.Clone()
	id, err := c.Allocate(nil)
	require.NoError(t, err)
	assert.Equal(t, RecordID(5), id)

	// Advancing the clone must not move the original.
	id, err = a.Allocate(nil)
	require.NoError(t, err)
	assert.Equal(t, RecordID(5), id)

	a.Reset()
	id, err = a.Allocate(nil)
	require.NoError(t, err)
	assert.Equal(t, RecordID(0), id)
}
