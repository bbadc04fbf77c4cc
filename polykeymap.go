package polykeymap

import (
	"fmt"
	"time"

	"github.com/KeXu001/polykey-map/core"
	"github.com/KeXu001/polykey-map/keyset"
	"github.com/KeXu001/polykey-map/model"
	"github.com/KeXu001/polykey-map/pathindex"
	"github.com/KeXu001/polykey-map/store"
)

// Map is a many-to-one associative container: every stored value is
// reachable through up to NumPaths independent access paths, each
// contributing at most one key per value. Keys are unique within a path.
// Erasing a value removes every key that points to it.
//
// The container is the relational analogue of a table with one value
// column and NumPaths nullable key columns, each carrying its own
// uniqueness constraint.
//
// Map is not safe for concurrent use. Callers needing concurrent access
// serialize externally, e.g. one exclusive lock per Map instance.
type Map[V any] struct {
	ids     *core.Allocator
	values  *store.MapStore[V]
	keysets *store.MapStore[keyset.Keyset]
	paths   []*pathindex.Index
	kinds   []model.Kind
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Map with numPaths access paths (numPaths >= 1). The path
// count is fixed for the lifetime of the map; path indices are
// [0, numPaths).
func New[V any](numPaths int, opts ...Option) (*Map[V], error) {
	if numPaths < 1 {
		return nil, fmt.Errorf("polykeymap: %w: %d", ErrInvalidPathCount, numPaths)
	}

	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.pathKinds) != 0 && len(o.pathKinds) != numPaths {
		return nil, fmt.Errorf("polykeymap: %w: %d kinds for %d paths", ErrInvalidPathCount, len(o.pathKinds), numPaths)
	}

	paths := make([]*pathindex.Index, numPaths)
	for i := range paths {
		paths[i] = pathindex.New(o.initialCapacity)
	}

	return &Map[V]{
		ids:     core.NewAllocator(),
		values:  store.NewMapStore[V](o.initialCapacity),
		keysets: store.NewMapStore[keyset.Keyset](o.initialCapacity),
		paths:   paths,
		kinds:   o.pathKinds,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// NumPaths returns the number of access paths.
func (m *Map[V]) NumPaths() int {
	return len(m.paths)
}

// Len returns the number of stored values.
func (m *Map[V]) Len() int {
	return m.values.Len()
}

// PathLen returns the number of keys currently set on path. It can be
// smaller than Len because not every value carries a key on every path.
// Returns 0 for an out-of-range path.
func (m *Map[V]) PathLen(path int) int {
	if path < 0 || path >= len(m.paths) {
		return 0
	}
	return m.paths[path].Len()
}

// Insert stores value under key on path. Fails with ErrKeyConflict if the
// key already exists for the path, and with ErrCapacityExhausted if the
// identifier space is used up. A failed insert has no side effects.
func (m *Map[V]) Insert(path int, key model.Key, value V) error {
	start := time.Now()
	err := m.insert(path, key, value)
	m.metrics.RecordInsert(time.Since(start), err)
	m.logger.LogInsert(path, key, err)

	return err
}

func (m *Map[V]) insert(path int, key model.Key, value V) error {
	if err := m.checkPath("insert", path); err != nil {
		return err
	}
	if err := m.checkKey("insert", path, key); err != nil {
		return err
	}

	if m.paths[path].Contains(key) {
		return keyError("insert", path, key, ErrKeyConflict)
	}

	id, err := m.ids.Allocate(m.values.Has)
	if err != nil {
		return keyError("insert", path, key, ErrCapacityExhausted)
	}

	m.values.Put(id, value)

	ks := keyset.New(len(m.paths))
	ks.Set(path, key)
	m.keysets.Put(id, ks)

	// Cannot fail: absence was checked above.
	_ = m.paths[path].Insert(key, id)

	return nil
}

// At resolves key through path and returns a mutable reference to the
// stored value. The reference stays valid until the owning record is
// erased. Fails with ErrKeyNotFound.
func (m *Map[V]) At(path int, key model.Key) (*V, error) {
	start := time.Now()
	ref, err := m.at(path, key)
	m.metrics.RecordLookup(time.Since(start), err)

	return ref, err
}

func (m *Map[V]) at(path int, key model.Key) (*V, error) {
	id, err := m.resolve("at", path, key)
	if err != nil {
		return nil, err
	}

	ref, ok := m.values.Ref(id)
	if !ok {
		panic("polykeymap: value store out of sync with path index")
	}

	return ref, nil
}

// Value resolves key through path and returns a copy of the stored value.
// Fails with ErrKeyNotFound.
func (m *Map[V]) Value(path int, key model.Key) (V, error) {
	ref, err := m.At(path, key)
	if err != nil {
		var zero V
		return zero, err
	}

	return *ref, nil
}

// Contains reports whether path currently has an entry for key. It never
// fails; out-of-range paths and mismatched key domains read as absent.
func (m *Map[V]) Contains(path int, key model.Key) bool {
	if path < 0 || path >= len(m.paths) {
		return false
	}
	return m.paths[path].Contains(key)
}

// Link attaches a second key, on a different path, to an already stored
// value. Exactly one of the two keys must resolve to a record; the other
// is then set on that record's free slot for its path.
//
// Fails with ErrKeyNotFound when neither key resolves and with
// ErrKeyConflict when both do, even if both resolve to the same record:
// Link strictly attaches an unlinked key and is never an idempotent
// re-link. path1 and path2 must differ (ErrPathsEqual).
//
// If the record already carries a key on the attached path, the new key
// replaces it and the old key stops resolving.
func (m *Map[V]) Link(path1 int, key1 model.Key, path2 int, key2 model.Key) error {
	start := time.Now()
	err := m.link(path1, key1, path2, key2)
	m.metrics.RecordLink(time.Since(start), err)
	m.logger.LogLink(path1, key1, path2, key2, err)

	return err
}

func (m *Map[V]) link(path1 int, key1 model.Key, path2 int, key2 model.Key) error {
	if err := m.checkPath("link", path1); err != nil {
		return err
	}
	if err := m.checkPath("link", path2); err != nil {
		return err
	}
	if path1 == path2 {
		return fmt.Errorf("polykeymap: link: %w: path %d on both sides", ErrPathsEqual, path1)
	}
	if err := m.checkKey("link", path1, key1); err != nil {
		return err
	}
	if err := m.checkKey("link", path2, key2); err != nil {
		return err
	}

	id1, ok1 := m.paths[path1].Lookup(key1)
	id2, ok2 := m.paths[path2].Lookup(key2)

	switch {
	case !ok1 && !ok2:
		return fmt.Errorf("polykeymap: link: %w: neither path %d key %s nor path %d key %s",
			ErrKeyNotFound, path1, key1, path2, key2)
	case ok1 && ok2:
		return fmt.Errorf("polykeymap: link: %w: both path %d key %s and path %d key %s already exist",
			ErrKeyConflict, path1, key1, path2, key2)
	case ok1:
		return m.attach(id1, path2, key2)
	default:
		return m.attach(id2, path1, key1)
	}
}

// attach sets key in the slot for path on record id and registers the
// path-index entry. A key already occupying the slot is unregistered
// first, so every index entry always matches a keyset slot.
func (m *Map[V]) attach(id core.RecordID, path int, key model.Key) error {
	ks, ok := m.keysets.Ref(id)
	if !ok {
		panic("polykeymap: keyset registry out of sync with path index")
	}

	if old, ok := ks.Get(path); ok {
		_ = m.paths[path].Delete(old)
	}

	ks.Set(path, key)
	_ = m.paths[path].Insert(key, id)

	return nil
}

// IsLinked resolves key1 through path1 and reports whether the owning
// record also carries a key on path2. Fails with ErrKeyNotFound when key1
// does not resolve.
func (m *Map[V]) IsLinked(path1 int, key1 model.Key, path2 int) (bool, error) {
	if err := m.checkPath("is_linked", path2); err != nil {
		return false, err
	}

	id, err := m.resolve("is_linked", path1, key1)
	if err != nil {
		return false, err
	}

	ks, _ := m.keysets.Ref(id)
	return ks.Has(path2), nil
}

// ConvertKey resolves key1 through path1 and returns the owning record's
// key on path2. Fails with ErrKeyNotFound when key1 does not resolve or
// when the record has no key on path2.
func (m *Map[V]) ConvertKey(path1 int, key1 model.Key, path2 int) (model.Key, error) {
	if err := m.checkPath("convert_key", path2); err != nil {
		return model.Key{}, err
	}

	id, err := m.resolve("convert_key", path1, key1)
	if err != nil {
		return model.Key{}, err
	}

	ks, _ := m.keysets.Ref(id)
	key2, ok := ks.Get(path2)
	if !ok {
		return model.Key{}, fmt.Errorf("polykeymap: convert_key: %w: no key on path %d for the record of path %d key %s",
			ErrKeyNotFound, path2, path1, key1)
	}

	return key2, nil
}

// Erase removes the value that key resolves to, along with every key on
// any path that points to it. The whole record is destroyed atomically.
// Fails with ErrKeyNotFound.
func (m *Map[V]) Erase(path int, key model.Key) error {
	start := time.Now()

	id, err := m.resolve("erase", path, key)
	if err != nil {
		m.metrics.RecordErase(time.Since(start), err)
		m.logger.LogErase(path, key, 0, err)
		return err
	}

	removed := m.eraseRecord(id)
	m.metrics.RecordErase(time.Since(start), nil)
	m.logger.LogErase(path, key, removed, nil)

	return nil
}

// eraseRecord cascades over the record's occupied keyset slots, removes
// each path-index entry, then drops the keyset and the value. Returns the
// number of keys removed.
func (m *Map[V]) eraseRecord(id core.RecordID) int {
	ks, ok := m.keysets.Ref(id)
	if !ok {
		return 0
	}

	removed := 0
	for p := range m.paths {
		if key, ok := ks.Get(p); ok {
			_ = m.paths[p].Delete(key)
			ks.Clear(p)
			removed++
		}
	}

	_ = m.keysets.Delete(id)
	_ = m.values.Delete(id)

	return removed
}

// LinkedCount returns the number of values that carry keys on both path1
// and path2.
func (m *Map[V]) LinkedCount(path1, path2 int) (int, error) {
	if err := m.checkPath("linked_count", path1); err != nil {
		return 0, err
	}
	if err := m.checkPath("linked_count", path2); err != nil {
		return 0, err
	}
	if path1 == path2 {
		return 0, fmt.Errorf("polykeymap: linked_count: %w: path %d on both sides", ErrPathsEqual, path1)
	}

	return m.paths[path1].LinkedCount(m.paths[path2]), nil
}

// Clone returns a deep copy: the copy has its own value store, keyset
// registry and path indices, and continues id allocation from the same
// position. Value payloads are copied by assignment; a pointer-bearing V
// shares pointees between the two maps. Logger and metrics collector are
// shared.
func (m *Map[V]) Clone() *Map[V] {
	paths := make([]*pathindex.Index, len(m.paths))
	for i, idx := range m.paths {
		paths[i] = idx.Clone()
	}

	return &Map[V]{
		ids:     m.ids.Clone(),
		values:  m.values.Clone(func(v V) V { return v }),
		keysets: m.keysets.Clone(keyset.Keyset.Clone),
		paths:   paths,
		kinds:   m.kinds,
		logger:  m.logger,
		metrics: m.metrics,
	}
}

// Move transfers the map's contents to a new Map and leaves the receiver
// equivalent to a freshly constructed empty map (Len() == 0, allocator
// rewound). It is the Go rendering of move semantics.
func (m *Map[V]) Move() *Map[V] {
	moved := &Map[V]{
		ids:     m.ids,
		values:  m.values,
		keysets: m.keysets,
		paths:   m.paths,
		kinds:   m.kinds,
		logger:  m.logger,
		metrics: m.metrics,
	}

	m.ids = core.NewAllocator()
	m.values = store.NewMapStore[V](0)
	m.keysets = store.NewMapStore[keyset.Keyset](0)
	paths := make([]*pathindex.Index, len(moved.paths))
	for i := range paths {
		paths[i] = pathindex.New(0)
	}
	m.paths = paths

	return moved
}

// resolve validates path and key and looks key up in the path's index.
func (m *Map[V]) resolve(op string, path int, key model.Key) (core.RecordID, error) {
	if err := m.checkPath(op, path); err != nil {
		return 0, err
	}
	if err := m.checkKey(op, path, key); err != nil {
		return 0, err
	}

	id, ok := m.paths[path].Lookup(key)
	if !ok {
		return 0, keyError(op, path, key, ErrKeyNotFound)
	}

	return id, nil
}

func (m *Map[V]) checkPath(op string, path int) error {
	if path < 0 || path >= len(m.paths) {
		return &PathError{Op: op, Path: path, NumPaths: len(m.paths)}
	}
	return nil
}

// checkKey rejects the invalid zero key everywhere and, when WithPathKinds
// is in effect, keys outside the path's domain.
func (m *Map[V]) checkKey(op string, path int, key model.Key) error {
	if !key.IsValid() {
		return keyError(op, path, key, ErrKindMismatch)
	}
	if len(m.kinds) != 0 && m.kinds[path] != key.Kind() {
		return keyError(op, path, key, ErrKindMismatch)
	}
	return nil
}
