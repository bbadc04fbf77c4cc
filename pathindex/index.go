// Package pathindex implements the unique key-to-record mapping for one
// access path.
package pathindex

import (
	"errors"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/KeXu001/polykey-map/core"
	"github.com/KeXu001/polykey-map/model"
)

var (
	// ErrDuplicateKey is returned when an insert would violate key
	// uniqueness within the path.
	ErrDuplicateKey = errors.New("duplicate key for path")

	// ErrKeyNotFound is returned when a delete names a key the path does
	// not hold.
	ErrKeyNotFound = errors.New("key not found for path")
)

// Index maps keys of one path's domain to record ids. Keys are unique
// within the index. Alongside the map it keeps a Roaring bitmap of the
// owning record ids, so that cross-path cardinalities reduce to bitmap
// intersections.
//
// Index is not safe for concurrent use; callers serialize externally.
type Index struct {
	m  map[model.Key]core.RecordID
	rb *roaring64.Bitmap
}

// New creates an empty index. capacity sizes the initial map and may be
// zero.
func New(capacity int) *Index {
	return &Index{
		m:  make(map[model.Key]core.RecordID, capacity),
		rb: roaring64.NewBitmap(),
	}
}

// Lookup returns the record id owning key.
func (idx *Index) Lookup(key model.Key) (core.RecordID, bool) {
	id, ok := idx.m[key]
	return id, ok
}

// Contains reports whether key is present.
func (idx *Index) Contains(key model.Key) bool {
	_, ok := idx.m[key]
	return ok
}

// Insert adds a key -> id entry. Fails with ErrDuplicateKey if the key is
// already present, leaving the index untouched.
func (idx *Index) Insert(key model.Key, id core.RecordID) error {
	if _, ok := idx.m[key]; ok {
		return ErrDuplicateKey
	}

	idx.m[key] = id
	idx.rb.Add(uint64(id))

	return nil
}

// Delete removes the entry for key.
func (idx *Index) Delete(key model.Key) error {
	id, ok := idx.m[key]
	if !ok {
		return ErrKeyNotFound
	}

	delete(idx.m, key)
	idx.rb.Remove(uint64(id))

	return nil
}

// Len returns the number of keys in the index.
func (idx *Index) Len() int {
	return len(idx.m)
}

// LinkedCount returns the number of records that hold a key on this path
// and on other.
func (idx *Index) LinkedCount(other *Index) int {
	both := idx.rb.Clone()
	both.And(other.rb)

	return int(both.GetCardinality())
}

// All returns an iterator over key/record pairs in unspecified order. The
// index must not be mutated while iterating.
func (idx *Index) All() iter.Seq2[model.Key, core.RecordID] {
	return func(yield func(model.Key, core.RecordID) bool) {
		for key, id := range idx.m {
			if !yield(key, id) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the index.
func (idx *Index) Clone() *Index {
	c := New(len(idx.m))
	for key, id := range idx.m {
		c.m[key] = id
	}
	c.rb = idx.rb.Clone()

	return c
}
