package polykeymap

import (
	"errors"
	"fmt"

	"github.com/KeXu001/polykey-map/model"
)

var (
	// ErrKeyNotFound is returned when an operation requires a key to
	// already resolve to a record and it does not.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyConflict is returned when an operation would violate key
	// uniqueness within a path: a duplicate insert key, or a Link whose
	// keys both already resolve.
	ErrKeyConflict = errors.New("key conflict")

	// ErrCapacityExhausted is returned when the allocator cannot produce
	// a fresh, collision-free record id.
	ErrCapacityExhausted = errors.New("record id space exhausted")

	// ErrPathOutOfRange is returned when a path index is not in
	// [0, NumPaths).
	ErrPathOutOfRange = errors.New("path index out of range")

	// ErrPathsEqual is returned when Link or LinkedCount is called with
	// the same path on both sides.
	ErrPathsEqual = errors.New("access paths must differ")

	// ErrKindMismatch is returned when WithPathKinds is in effect and a
	// key's domain does not match its path's configured domain.
	ErrKindMismatch = errors.New("key kind does not match path domain")

	// ErrInvalidPathCount is returned by New when numPaths is not
	// positive, or when WithPathKinds supplies the wrong number of kinds.
	ErrInvalidPathCount = errors.New("invalid number of access paths")
)

// KeyError carries the operation, path and key of a failed lookup or
// insert. The underlying sentinel can be accessed via errors.Is.
type KeyError struct {
	Op   string
	Path int
	Key  model.Key
	kind error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("polykeymap: %s: %v (path %d, key %s)", e.Op, e.kind, e.Path, e.Key)
}

func (e *KeyError) Unwrap() error { return e.kind }

// PathError reports a path index outside the configured arity.
type PathError struct {
	Op       string
	Path     int
	NumPaths int
}

func (e *PathError) Error() string {
	return fmt.Sprintf("polykeymap: %s: path index %d out of range [0, %d)", e.Op, e.Path, e.NumPaths)
}

func (e *PathError) Unwrap() error { return ErrPathOutOfRange }

func keyError(op string, path int, key model.Key, kind error) error {
	return &KeyError{Op: op, Path: path, Key: key, kind: kind}
}
