// Package keyset implements the per-record tuple of optional keys, one
// slot per access path.
//
// A slot holds either a valid key or the zero model.Key, which marks the
// slot as empty. Slots are owned directly by the keyset; there is no
// per-slot allocation. A live record's keyset always has at least one
// occupied slot; reaching zero slots only happens while the whole record
// is being erased.
package keyset

import (
	"github.com/KeXu001/polykey-map/model"
)

// Keyset is a fixed-arity tuple of optional keys. The arity is set at
// construction and matches the map's number of access paths.
type Keyset struct {
	slots []model.Key
}

// New creates a keyset with numPaths empty slots.
func New(numPaths int) Keyset {
	return Keyset{
		slots: make([]model.Key, numPaths),
	}
}

// Arity returns the number of slots.
func (k Keyset) Arity() int {
	return len(k.slots)
}

// Set fills the slot for path, overwriting any existing key. path must be
// in range; callers validate before calling.
func (k *Keyset) Set(path int, key model.Key) {
	k.slots[path] = key
}

// Clear empties the slot for path.
func (k *Keyset) Clear(path int) {
	k.slots[path] = model.Key{}
}

// Has reports whether the slot for path holds a key.
func (k Keyset) Has(path int) bool {
	return k.slots[path].IsValid()
}

// Get returns the key in the slot for path. ok is false when the slot is
// empty.
func (k Keyset) Get(path int) (key model.Key, ok bool) {
	key = k.slots[path]
	return key, key.IsValid()
}

// Occupied returns the number of filled slots.
func (k Keyset) Occupied() int {
	n := 0
	for _, key := range k.slots {
		if key.IsValid() {
			n++
		}
	}

	return n
}

// Clone returns a slot-by-slot deep copy. Two maps never alias stored
// keys.
func (k Keyset) Clone() Keyset {
	c := New(len(k.slots))
	copy(c.slots, k.slots)

	return c
}
