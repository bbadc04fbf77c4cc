package polykeymap

import (
	"iter"
	"time"

	"github.com/KeXu001/polykey-map/core"
	"github.com/KeXu001/polykey-map/model"
)

// Iterator walks the stored values in the value store's enumeration order.
// No ordering is guaranteed across insert/erase history.
//
// The iterator snapshots only the record-id order at creation; values and
// keys are read through the live map. Records erased after creation are
// skipped, so Delete mid-walk leaves the remainder visiting every other
// live record exactly once. Values inserted after creation are not
// visited; create a fresh iterator to observe them.
type Iterator[V any] struct {
	m   *Map[V]
	ids []core.RecordID
	pos int
	cur core.RecordID
	ok  bool
}

// Iter returns an iterator positioned before the first value. Call Next
// to advance.
func (m *Map[V]) Iter() *Iterator[V] {
	return &Iterator[V]{
		m:   m,
		ids: m.values.IDs(),
		pos: -1,
	}
}

// Next advances to the next live value. It returns false when the walk is
// exhausted.
func (it *Iterator[V]) Next() bool {
	it.ok = false
	for it.pos+1 < len(it.ids) {
		it.pos++
		id := it.ids[it.pos]
		if it.m.values.Has(id) {
			it.cur = id
			it.ok = true
			return true
		}
	}

	return false
}

// Value returns a mutable reference to the current value. Valid only
// after Next returned true.
func (it *Iterator[V]) Value() *V {
	ref, ok := it.m.values.Ref(it.mustCurrent())
	if !ok {
		panic("polykeymap: iterator value vanished mid-position")
	}
	return ref
}

// Set replaces the current value.
func (it *Iterator[V]) Set(v V) {
	*it.Value() = v
}

// HasKey reports whether the current value carries a key on path.
func (it *Iterator[V]) HasKey(path int) bool {
	if path < 0 || path >= it.m.NumPaths() {
		return false
	}
	ks, _ := it.m.keysets.Ref(it.mustCurrent())
	return ks.Has(path)
}

// Key returns the current value's key on path. ok is false when the value
// has no key there.
func (it *Iterator[V]) Key(path int) (key model.Key, ok bool) {
	if path < 0 || path >= it.m.NumPaths() {
		return model.Key{}, false
	}
	ks, _ := it.m.keysets.Ref(it.mustCurrent())
	return ks.Get(path)
}

// Delete erases the current value and every key pointing to it, exactly
// like Map.Erase, without requiring any of the record's keys. The
// iterator stays usable: the following Next moves to the next live value.
func (it *Iterator[V]) Delete() {
	start := time.Now()
	id := it.mustCurrent()
	removed := it.m.eraseRecord(id)
	it.ok = false
	it.m.metrics.RecordErase(time.Since(start), nil)
	it.m.logger.LogEraseAt(removed)
}

func (it *Iterator[V]) mustCurrent() core.RecordID {
	if !it.ok {
		panic("polykeymap: iterator is not positioned on a value; call Next first")
	}
	return it.cur
}

// Entry is a read-through view of one stored value, exposing per-path key
// introspection without materializing keys into the value.
type Entry[V any] struct {
	m  *Map[V]
	id core.RecordID
}

// Value returns a mutable reference to the entry's value.
func (e Entry[V]) Value() *V {
	ref, ok := e.m.values.Ref(e.id)
	if !ok {
		panic("polykeymap: entry refers to an erased value")
	}
	return ref
}

// HasKey reports whether the entry carries a key on path.
func (e Entry[V]) HasKey(path int) bool {
	if path < 0 || path >= e.m.NumPaths() {
		return false
	}
	ks, ok := e.m.keysets.Ref(e.id)
	return ok && ks.Has(path)
}

// Key returns the entry's key on path. ok is false when no key is set
// there.
func (e Entry[V]) Key(path int) (key model.Key, ok bool) {
	if path < 0 || path >= e.m.NumPaths() {
		return model.Key{}, false
	}
	ks, ok := e.m.keysets.Ref(e.id)
	if !ok {
		return model.Key{}, false
	}
	return ks.Get(path)
}

// All returns an iterator over entries. The map must not be mutated while
// ranging; use Iter for erase-during-iteration.
func (m *Map[V]) All() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for id := range m.values.All() {
			if !yield(Entry[V]{m: m, id: id}) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the stored values. The map
// must not be mutated while ranging.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range m.values.All() {
			if !yield(*p) {
				return
			}
		}
	}
}
