package core

import "errors"

// ErrExhausted is returned when the allocator cannot produce a fresh,
// collision-free record id.
var ErrExhausted = errors.New("record id space exhausted")

// RecordID is the internal identifier joining the value store, the keyset
// registry and the path indices. It is assigned once per inserted value
// and never reused within the lifetime of a map instance.
type RecordID uint64

// MaxRecordID is the largest possible record id.
const MaxRecordID = ^RecordID(0)

// Allocator issues strictly increasing record ids starting at zero.
type Allocator struct {
	next RecordID
}

// NewAllocator creates an allocator positioned at the first record id.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate returns the next record id and advances the counter. taken
// reports whether an id is already in use; if the candidate id is taken
// the counter has wrapped and Allocate fails with ErrExhausted before
// touching anything.
func (a *Allocator) Allocate(taken func(RecordID) bool) (RecordID, error) {
	if taken != nil && taken(a.next) {
		return 0, ErrExhausted
	}

	id := a.next
	a.next++

	return id, nil
}

// Clone returns an allocator that continues from the same position.
func (a *Allocator) Clone() *Allocator {
	return &Allocator{next: a.next}
}

// Reset rewinds the allocator to its initial position.
func (a *Allocator) Reset() {
	a.next = 0
}
