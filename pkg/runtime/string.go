package runtime

import "bytes"

// String is an immutable byte sequence with an explicit size. The compiler
// lowers string literals and string-typed expressions to values of this type.
// The bytes are opaque and carry no encoding.
//
// No operation mutates an existing buffer: Concat and Append allocate fresh
// values, so older references stay valid for the life of the process and the
// host collector reclaims whatever becomes unreachable.
type String struct {
	data []byte
	size int32
}

// NewString copies data into a fresh string value. The zero String is the
// valid empty string.
func NewString(data []byte) String {
	buf := make([]byte, len(data))
	copy(buf, data)
	return ownedString(buf)
}

// ownedString adopts buf without copying and records the allocation. Every
// string constructor funnels through here.
func ownedString(buf []byte) String {
	noteString(uint64(len(buf)))
	return String{data: buf, size: int32(len(buf))}
}

// Size returns the number of bytes in the string.
func (s String) Size() int32 { return s.size }

// Byte returns the byte at index i. Index checking is the compiler's job;
// an out-of-range access panics via the host bounds check.
func (s String) Byte(i int32) byte { return s.data[i] }

// Bytes returns a copy of the underlying bytes.
func (s String) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// String returns the bytes as a Go string, for printing and diagnostics.
func (s String) String() string { return string(s.data) }

// Concat returns a new string holding the bytes of s followed by the bytes
// of o. Both operands are left untouched.
func (s String) Concat(o String) String {
	buf := make([]byte, 0, len(s.data)+len(o.data))
	buf = append(buf, s.data...)
	buf = append(buf, o.data...)
	return ownedString(buf)
}

// Append returns a new string one byte longer than s, ending in c.
func (s String) Append(c byte) String {
	buf := make([]byte, 0, len(s.data)+1)
	buf = append(buf, s.data...)
	buf = append(buf, c)
	return ownedString(buf)
}

// Equal reports whether s and o have the same size and the same bytes. Size
// is compared first; content is never read when the sizes differ.
func (s String) Equal(o String) bool {
	if s.size != o.size {
		return false
	}
	return bytes.Equal(s.data, o.data)
}

// NotEqual is the negation of Equal.
func (s String) NotEqual(o String) bool { return !s.Equal(o) }

// Compare orders strings lexicographically: bytes are compared over the
// common prefix and a tie is broken by size, so "ab" sorts before "abc".
// The result is -1, 0, or +1.
func (s String) Compare(o String) int32 {
	return int32(bytes.Compare(s.data, o.data))
}

// Less reports whether s orders strictly before o.
func (s String) Less(o String) bool { return s.Compare(o) < 0 }

// LessEq reports whether s orders before o or equals it.
func (s String) LessEq(o String) bool { return s.Compare(o) <= 0 }

// Greater reports whether s orders strictly after o.
func (s String) Greater(o String) bool { return s.Compare(o) > 0 }

// GreaterEq reports whether s orders after o or equals it.
func (s String) GreaterEq(o String) bool { return s.Compare(o) >= 0 }
