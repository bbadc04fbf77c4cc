// Package polykeymap provides a many-to-one in-memory container: one
// stored value, reachable through several independent access paths, each
// contributing at most one key per value.
//
// The container is analogous to a relational table with N nullable key
// columns (the paths), each under its own uniqueness constraint, plus a
// column for the stored value. Internally every value is addressed by a
// never-reused record id; path indices resolve keys to record ids, and a
// per-record keyset remembers which paths currently point at the value so
// that erasure cascades over all of them:
//
//	key  <----\
//	key  <-----+----->  record id  ----->  value
//	key  <----/
//
// # Quick Start
//
//	type Order struct {
//	    Ticker string
//	    SVol   int
//	}
//
//	const (
//	    ByInternalID = iota // uint64 keys
//	    ByExternalID        // string keys
//	)
//
//	m, _ := polykeymap.New[Order](2)
//
//	_ = m.Insert(ByInternalID, model.Uint64Key(13), Order{Ticker: "AAPL", SVol: 100})
//	_ = m.Link(ByInternalID, model.Uint64Key(13), ByExternalID, model.StringKey("1337"))
//
//	ref, _ := m.At(ByExternalID, model.StringKey("1337"))
//	ref.SVol = 50 // visible through every path
//
//	_ = m.Erase(ByInternalID, model.Uint64Key(13)) // removes "1337" too
//
// # Iteration
//
// Iter returns a cursor that also exposes, per access path, whether the
// current value carries a key there and what it is; Delete at the cursor
// erases the full record and the walk continues over the remaining live
// values. All and Values are range-over-func views for read-only walks.
//
// # Concurrency
//
// A Map is not safe for concurrent use from multiple goroutines. Callers
// needing concurrent access serialize externally, for example with one
// exclusive lock per Map instance or a higher-level sharding scheme.
package polykeymap
