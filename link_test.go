package polykeymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polykeymap "github.com/KeXu001/polykey-map"
	"github.com/KeXu001/polykey-map/model"
)

func TestLinkAttachesSecondPath(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(13), Order{Ticker: "AAPL", SVol: 100}))
	require.NoError(t, m.Link(byInternalID, model.Uint64Key(13), byExternalID, model.StringKey("1337")))

	// Both paths must resolve to the same record.
	ref1, err := m.At(byInternalID, model.Uint64Key(13))
	require.NoError(t, err)
	ref2, err := m.At(byExternalID, model.StringKey("1337"))
	require.NoError(t, err)
	assert.Same(t, ref1, ref2)

	ref2.SVol = 50
	got, err := m.Value(byInternalID, model.Uint64Key(13))
	require.NoError(t, err)
	assert.Equal(t, 50, got.SVol)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.PathLen(byInternalID))
	assert.Equal(t, 1, m.PathLen(byExternalID))
}

func TestLinkSymmetric(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byExternalID, model.StringKey("9865"), Order{Ticker: "FB"}))

	// The existing key may appear on either side.
	require.NoError(t, m.Link(byInternalID, model.Uint64Key(19), byExternalID, model.StringKey("9865")))

	got, err := m.Value(byInternalID, model.Uint64Key(19))
	require.NoError(t, err)
	assert.Equal(t, "FB", got.Ticker)
}

func TestLinkNeitherKeyExists(t *testing.T) {
	m := newOrderTracker(t)

	err := m.Link(byInternalID, model.Uint64Key(1), byExternalID, model.StringKey("x"))
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestLinkBothKeysExist(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(1), Order{Ticker: "AAPL"}))
	require.NoError(t, m.Insert(byExternalID, model.StringKey("x"), Order{Ticker: "MSFT"}))

	err := m.Link(byInternalID, model.Uint64Key(1), byExternalID, model.StringKey("x"))
	require.ErrorIs(t, err, polykeymap.ErrKeyConflict)
}

func TestLinkBothKeysSameRecord(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(1), Order{Ticker: "AAPL"}))
	require.NoError(t, m.Link(byInternalID, model.Uint64Key(1), byExternalID, model.StringKey("x")))

	// Re-linking two keys that already point at the same record is still
	// a conflict; Link is never idempotent.
	err := m.Link(byInternalID, model.Uint64Key(1), byExternalID, model.StringKey("x"))
	require.ErrorIs(t, err, polykeymap.ErrKeyConflict)
}

func TestLinkReplacesKeyOnOccupiedPath(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(1), Order{Ticker: "AAPL"}))
	require.NoError(t, m.Link(byInternalID, model.Uint64Key(1), byExternalID, model.StringKey("B")))
	require.NoError(t, m.Link(byInternalID, model.Uint64Key(1), byExternalID, model.StringKey("C")))

	// The replaced key must stop resolving anywhere.
	assert.False(t, m.Contains(byExternalID, model.StringKey("B")))
	assert.True(t, m.Contains(byExternalID, model.StringKey("C")))
	assert.Equal(t, 1, m.PathLen(byExternalID))

	_, err := m.At(byExternalID, model.StringKey("B"))
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)

	key, err := m.ConvertKey(byInternalID, model.Uint64Key(1), byExternalID)
	require.NoError(t, err)
	assert.Equal(t, model.StringKey("C"), key)

	got, err := m.Value(byExternalID, model.StringKey("C"))
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Ticker)

	n, err := m.LinkedCount(byInternalID, byExternalID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Erasing the record must leave no stragglers on either path.
	require.NoError(t, m.Erase(byInternalID, model.Uint64Key(1)))
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Contains(byExternalID, model.StringKey("B")))
	assert.False(t, m.Contains(byExternalID, model.StringKey("C")))
	assert.Equal(t, 0, m.PathLen(byExternalID))

	_, err = m.At(byExternalID, model.StringKey("B"))
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)
	err = m.Erase(byExternalID, model.StringKey("B"))
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)
}

func TestLinkSamePath(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(1), Order{}))

	err := m.Link(byInternalID, model.Uint64Key(1), byInternalID, model.Uint64Key(2))
	require.ErrorIs(t, err, polykeymap.ErrPathsEqual)
	assert.False(t, m.Contains(byInternalID, model.Uint64Key(2)))
}

func TestIsLinked(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(19), Order{Ticker: "FB"}))

	linked, err := m.IsLinked(byInternalID, model.Uint64Key(19), byExternalID)
	require.NoError(t, err)
	assert.False(t, linked)

	require.NoError(t, m.Link(byInternalID, model.Uint64Key(19), byExternalID, model.StringKey("9865")))

	linked, err = m.IsLinked(byInternalID, model.Uint64Key(19), byExternalID)
	require.NoError(t, err)
	assert.True(t, linked)

	_, err = m.IsLinked(byInternalID, model.Uint64Key(404), byExternalID)
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)
}

func TestConvertKey(t *testing.T) {
	m := newOrderTracker(t)

	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(19), Order{Ticker: "FB"}))
	require.NoError(t, m.Link(byInternalID, model.Uint64Key(19), byExternalID, model.StringKey("9865")))

	key, err := m.ConvertKey(byInternalID, model.Uint64Key(19), byExternalID)
	require.NoError(t, err)
	assert.Equal(t, model.StringKey("9865"), key)

	// And back.
	key, err = m.ConvertKey(byExternalID, model.StringKey("9865"), byInternalID)
	require.NoError(t, err)
	assert.Equal(t, model.Uint64Key(19), key)

	// First key absent.
	_, err = m.ConvertKey(byInternalID, model.Uint64Key(404), byExternalID)
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)

	// First key present but the record has no key on the second path.
	require.NoError(t, m.Insert(byInternalID, model.Uint64Key(20), Order{}))
	_, err = m.ConvertKey(byInternalID, model.Uint64Key(20), byExternalID)
	require.ErrorIs(t, err, polykeymap.ErrKeyNotFound)
}

func TestLinkThreePaths(t *testing.T) {
	m, err := polykeymap.New[string](3)
	require.NoError(t, err)

	require.NoError(t, m.Insert(0, model.Uint64Key(1), "v"))
	require.NoError(t, m.Link(0, model.Uint64Key(1), 1, model.StringKey("one")))
	require.NoError(t, m.Link(1, model.StringKey("one"), 2, model.BytesKey([]byte{0x01})))

	got, err := m.Value(2, model.BytesKey([]byte{0x01}))
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	// Erasing through any path removes all three keys.
	require.NoError(t, m.Erase(1, model.StringKey("one")))
	assert.False(t, m.Contains(0, model.Uint64Key(1)))
	assert.False(t, m.Contains(2, model.BytesKey([]byte{0x01})))
	assert.Equal(t, 0, m.Len())
}
