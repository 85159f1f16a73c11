// Package builtin holds the intrinsic functions the compiler wires to the
// language's built-in names: one print and one assert per scalar kind, plus
// the string and array forms. Each print emits exactly one line on the
// runtime output; each assert either passes silently or aborts the process
// with status 1.
package builtin

import (
	"fmt"
	"io"

	"falcon/runtime-go/pkg/runtime"
)

// PrintInt prints a 32-bit integer on its own line.
func PrintInt(v int32) {
	fmt.Fprintf(runtime.Output(), "%d\n", v)
}

// PrintLong prints a 64-bit integer on its own line.
func PrintLong(v int64) {
	fmt.Fprintf(runtime.Output(), "%d\n", v)
}

// PrintBool prints true or false.
func PrintBool(v bool) {
	if v {
		io.WriteString(runtime.Output(), "true\n")
		return
	}
	io.WriteString(runtime.Output(), "false\n")
}

// PrintChar prints a single byte character on its own line. Chars are opaque
// bytes, not runes, so the byte is written raw and never UTF-8-expanded.
func PrintChar(v byte) {
	runtime.Output().Write([]byte{v, '\n'})
}

// PrintDouble prints a 64-bit float using the fewest digits that round-trip.
func PrintDouble(v float64) {
	fmt.Fprintf(runtime.Output(), "%g\n", v)
}

// PrintString prints the string's bytes followed by a newline.
func PrintString(s runtime.String) {
	fmt.Fprintf(runtime.Output(), "%s\n", s)
}

// PrintArray prints each element followed by a single space, then a newline.
// The compiler only wires it for integer element types.
// TODO: remove once the language's standard library can format arrays itself.
func PrintArray(a runtime.Array[int32]) {
	out := runtime.Output()
	for _, v := range a.Data {
		fmt.Fprintf(out, "%d ", v)
	}
	fmt.Fprintln(out)
}
