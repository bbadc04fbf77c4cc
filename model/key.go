package model

import (
	"fmt"
	"strconv"
)

// Kind discriminates the domain of a Key.
type Kind uint8

const (
	// KindInvalid is the zero Kind. A Key of this kind resolves nothing;
	// it doubles as the "absent" marker in a keyset slot.
	KindInvalid Kind = iota
	KindUint64
	KindInt64
	KindString
	KindBytes
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUint64:
		return "uint64"
	case KindInt64:
		return "int64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// Key is a comparable union over the supported key domains. Each access
// path of a map draws its keys from one such domain. The zero Key is
// invalid and compares unequal to every valid key.
//
// Key is a value type and safe to use directly as a Go map key.
type Key struct {
	kind Kind
	num  uint64
	str  string
}

// Uint64Key returns a Key in the uint64 domain.
func Uint64Key(v uint64) Key {
	return Key{kind: KindUint64, num: v}
}

// Int64Key returns a Key in the int64 domain.
func Int64Key(v int64) Key {
	return Key{kind: KindInt64, num: uint64(v)}
}

// StringKey returns a Key in the string domain.
func StringKey(s string) Key {
	return Key{kind: KindString, str: s}
}

// BytesKey returns a Key in the bytes domain. The contents of b are
// copied; later mutation of b does not affect the key.
func BytesKey(b []byte) Key {
	return Key{kind: KindBytes, str: string(b)}
}

// Kind returns the key's domain.
func (k Key) Kind() Kind {
	return k.kind
}

// IsValid reports whether the key belongs to a real domain.
func (k Key) IsValid() bool {
	return k.kind != KindInvalid
}

// Uint64 returns the uint64 payload. ok is false if the key is not in the
// uint64 domain.
func (k Key) Uint64() (v uint64, ok bool) {
	if k.kind != KindUint64 {
		return 0, false
	}
	return k.num, true
}

// Int64 returns the int64 payload. ok is false if the key is not in the
// int64 domain.
func (k Key) Int64() (v int64, ok bool) {
	if k.kind != KindInt64 {
		return 0, false
	}
	return int64(k.num), true
}

// StringValue returns the string payload. ok is false if the key is not in
// the string domain.
func (k Key) StringValue() (s string, ok bool) {
	if k.kind != KindString {
		return "", false
	}
	return k.str, true
}

// Bytes returns a copy of the bytes payload. ok is false if the key is not
// in the bytes domain.
func (k Key) Bytes() (b []byte, ok bool) {
	if k.kind != KindBytes {
		return nil, false
	}
	return []byte(k.str), true
}

// String renders the key for logs and error messages.
func (k Key) String() string {
	switch k.kind {
	case KindUint64:
		return strconv.FormatUint(k.num, 10)
	case KindInt64:
		return strconv.FormatInt(int64(k.num), 10)
	case KindString:
		return strconv.Quote(k.str)
	case KindBytes:
		return fmt.Sprintf("0x%x", k.str)
	default:
		return "<invalid>"
	}
}
