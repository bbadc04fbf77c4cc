package store

import (
	"errors"
	"iter"

	"github.com/KeXu001/polykey-map/core"
)

// ErrNotFound is returned when a store cannot find a record id.
var ErrNotFound = errors.New("record not found")

// MapStore is an id-addressed slot table backed by a Go map. It has no key
// awareness; callers address it exclusively through record ids resolved
// elsewhere. It serves both the value store and the keyset registry.
//
// MapStore is not safe for concurrent use; callers serialize externally.
type MapStore[T any] struct {
	data map[core.RecordID]*T
}

// NewMapStore creates an empty store. capacity sizes the initial map and
// may be zero.
func NewMapStore[T any](capacity int) *MapStore[T] {
	return &MapStore[T]{
		data: make(map[core.RecordID]*T, capacity),
	}
}

// Put stores v under id, replacing any previous slot.
func (m *MapStore[T]) Put(id core.RecordID, v T) {
	m.data[id] = &v
}

// Ref returns a pointer into the slot for id. The pointer stays valid
// until the slot is deleted or overwritten.
func (m *MapStore[T]) Ref(id core.RecordID) (*T, bool) {
	p, ok := m.data[id]
	return p, ok
}

// Get returns a copy of the slot for id.
func (m *MapStore[T]) Get(id core.RecordID) (T, bool) {
	if p, ok := m.data[id]; ok {
		return *p, true
	}

	var zero T
	return zero, false
}

// Has reports whether a slot exists for id.
func (m *MapStore[T]) Has(id core.RecordID) bool {
	_, ok := m.data[id]
	return ok
}

// Delete removes the slot for id.
func (m *MapStore[T]) Delete(id core.RecordID) error {
	if _, ok := m.data[id]; !ok {
		return ErrNotFound
	}

	delete(m.data, id)
	return nil
}

// Len returns the number of occupied slots.
func (m *MapStore[T]) Len() int {
	return len(m.data)
}

// IDs returns the occupied record ids in enumeration order. The order is
// unspecified and may differ between calls.
func (m *MapStore[T]) IDs() []core.RecordID {
	ids := make([]core.RecordID, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}

	return ids
}

// All returns an iterator over id/slot pairs. The store must not be
// mutated while iterating.
func (m *MapStore[T]) All() iter.Seq2[core.RecordID, *T] {
	return func(yield func(core.RecordID, *T) bool) {
		for id, p := range m.data {
			if !yield(id, p) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the store. copyFn copies one slot value;
// pass an identity function for plainly copyable values.
func (m *MapStore[T]) Clone(copyFn func(T) T) *MapStore[T] {
	c := NewMapStore[T](len(m.data))
	for id, p := range m.data {
		v := copyFn(*p)
		c.data[id] = &v
	}

	return c
}

// Clear removes all slots.
func (m *MapStore[T]) Clear() {
	m.data = make(map[core.RecordID]*T)
}
