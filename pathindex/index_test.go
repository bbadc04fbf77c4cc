package pathindex

import (
	"testing"

	"github.com/KeXu001/polykey-map/core"
	"github.com/KeXu001/polykey-map/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexInsertLookup(t *testing.T) {
	idx := New(0)

	err := idx.Insert(model.Uint64Key(13), 0)
	require.NoError(t, err)
	err = idx.Insert(model.Uint64Key(14), 1)
	require.NoError(t, err)

	id, ok := idx.Lookup(model.Uint64Key(13))
	assert.True(t, ok)
	assert.Equal(t, core.RecordID(0), id)

	_, ok = idx.Lookup(model.Uint64Key(99))
	assert.False(t, ok)

	assert.True(t, idx.Contains(model.Uint64Key(14)))
	assert.Equal(t, 2, idx.Len())
}

func TestIndexDuplicate(t *testing.T) {
	idx := New(0)

	require.NoError(t, idx.Insert(model.StringKey("a"), 0))
	err := idx.Insert(model.StringKey("a"), 1)
	require.ErrorIs(t, err, ErrDuplicateKey)

	// The original entry must be untouched.
	id, ok := idx.Lookup(model.StringKey("a"))
	require.True(t, ok)
	assert.Equal(t, core.RecordID(0), id)
	assert.Equal(t, 1, idx.Len())
}

func TestIndexDelete(t *testing.T) {
	idx := New(0)

	require.NoError(t, idx.Insert(model.Uint64Key(1), 10))
	require.NoError(t, idx.Delete(model.Uint64Key(1)))
	assert.False(t, idx.Contains(model.Uint64Key(1)))
	assert.Equal(t, 0, idx.Len())

	err := idx.Delete(model.Uint64Key(1))
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestIndexLinkedCount(t *testing.T) {
	internal := New(0)
	external := New(0)

	// Records 0..3 on the internal path, 1 and 3 also on the external.
	for i := core.RecordID(0); i < 4; i++ {
		require.NoError(t, internal.Insert(model.Uint64Key(uint64(i)), i))
	}
	require.NoError(t, external.Insert(model.StringKey("x1"), 1))
	require.NoError(t, external.Insert(model.StringKey("x3"), 3))

	assert.Equal(t, 2, internal.LinkedCount(external))
	assert.Equal(t, 2, external.LinkedCount(internal))

	require.NoError(t, external.Delete(model.StringKey("x1")))
	assert.Equal(t, 1, internal.LinkedCount(external))
}

func TestIndexClone(t *testing.T) {
	idx := New(0)
	require.NoError(t, idx.Insert(model.Uint64Key(1), 10))
	require.NoError(t, idx.Insert(model.Uint64Key(2), 20))

	cp := idx.Clone()
	require.NoError(t, cp.Delete(model.Uint64Key(1)))
	require.NoError(t, cp.Insert(model.Uint64Key(3), 30))

	assert.True(t, idx.Contains(model.Uint64Key(1)))
	assert.False(t, idx.Contains(model.Uint64Key(3)))
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 2, cp.Len())
}

func TestIndexAll(t *testing.T) {
	idx := New(0)
	require.NoError(t, idx.Insert(model.Uint64Key(1), 10))
	require.NoError(t, idx.Insert(model.Uint64Key(2), 20))

	seen := make(map[model.Key]core.RecordID)
	for key, id := range idx.All() {
		seen[key] = id
	}

	assert.Equal(t, map[model.Key]core.RecordID{
		model.Uint64Key(1): 10,
		model.Uint64Key(2): 20,
	}, seen)
}
