package builtin

import "falcon/runtime-go/pkg/runtime"

// The asserts compare two values of the same scalar kind and abort on
// mismatch. The diagnostic goes to the runtime output, not standard error,
// and carries both operands.

// AssertInt aborts unless a equals b.
func AssertInt(a, b int32) {
	if a != b {
		runtime.Abort("Assertion failed: %d != %d", a, b)
	}
}

// AssertByte aborts unless a equals b.
func AssertByte(a, b int8) {
	if a != b {
		runtime.Abort("Assertion failed: %d != %d", a, b)
	}
}

// AssertShort aborts unless a equals b.
func AssertShort(a, b int16) {
	if a != b {
		runtime.Abort("Assertion failed: %d != %d", a, b)
	}
}

// AssertLong aborts unless a equals b.
func AssertLong(a, b int64) {
	if a != b {
		runtime.Abort("Assertion failed: %d != %d", a, b)
	}
}

// AssertFloat aborts unless a equals b exactly. IEEE semantics apply, so NaN
// never equals NaN.
func AssertFloat(a, b float32) {
	if a != b {
		runtime.Abort("Assertion failed: %g != %g", a, b)
	}
}

// AssertDouble aborts unless a equals b exactly. IEEE semantics apply.
func AssertDouble(a, b float64) {
	if a != b {
		runtime.Abort("Assertion failed: %g != %g", a, b)
	}
}

// AssertBool aborts unless a equals b.
func AssertBool(a, b bool) {
	if a != b {
		runtime.Abort("Assertion failed: %t != %t", a, b)
	}
}

// AssertChar aborts unless a equals b.
func AssertChar(a, b byte) {
	if a != b {
		runtime.Abort("Assertion failed: '%s' != '%s'", charString(a), charString(b))
	}
}

// AssertString aborts unless a and b hold the same bytes. Sizes are compared
// first and reported on their own; otherwise the first differing byte is
// reported.
func AssertString(a, b runtime.String) {
	if a.Size() != b.Size() {
		runtime.Abort("Assertion failed: string size %d != %d", a.Size(), b.Size())
		return
	}
	for i := int32(0); i < a.Size(); i++ {
		if a.Byte(i) != b.Byte(i) {
			runtime.Abort("Assertion failed: strings differ at index %d: '%s' != '%s'", i, charString(a.Byte(i)), charString(b.Byte(i)))
			return
		}
	}
}

// charString renders a char operand as its single raw byte. A rune
// conversion would UTF-8-expand values past 0x7F.
func charString(v byte) string {
	return string([]byte{v})
}
