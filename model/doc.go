// Package model defines the key types shared by the polykeymap packages.
//
// # Key Union
//
// Keys from different access paths live in different domains (uint64,
// int64, string, bytes). Key is a comparable union over those domains so
// that a single map type can index heterogeneous paths:
//
//	internal := model.Uint64Key(13)
//	external := model.StringKey("1337")
//
// The zero Key has KindInvalid and never resolves; the keyset package also
// uses it as the "no key on this path" slot marker.
package model
