package conformance

import (
	"sync"

	"falcon/runtime-go/pkg/builtin"
	"falcon/runtime-go/pkg/runtime"
)

var standardOnce sync.Once

// RegisterStandard installs the standard scenario programs. Safe to call
// more than once.
func RegisterStandard() {
	standardOnce.Do(func() {
		for _, c := range standardCases {
			Register(c)
		}
	})
}

// standardCases covers every runtime operation a compiled program can reach:
// string construction and operators, array allocation, the scalar print and
// assert surface, and the abort paths.
var standardCases = []Case{
	{
		Name:    "hello",
		Summary: "print a constructed string",
		Program: func() {
			builtin.PrintString(runtime.NewString([]byte("Hello, World!")))
		},
	},
	{
		Name:    "string-concat",
		Summary: "concatenation allocates a fresh string and leaves operands intact",
		Program: func() {
			a := runtime.NewString([]byte("Hello, "))
			b := runtime.NewString([]byte("World!"))
			c := a.Concat(b)
			builtin.AssertInt(c.Size(), 13)
			builtin.AssertString(c, runtime.NewString([]byte("Hello, World!")))
			builtin.AssertString(a, runtime.NewString([]byte("Hello, ")))
			builtin.AssertString(b, runtime.NewString([]byte("World!")))
			builtin.PrintString(c)
		},
	},
	{
		Name:    "string-append",
		Summary: "single byte append grows the string by one",
		Program: func() {
			s := runtime.NewString([]byte("falco"))
			s = s.Append('n')
			builtin.AssertInt(s.Size(), 6)
			builtin.PrintString(s)
		},
	},
	{
		Name:    "string-order",
		Summary: "lexicographic ordering with size tie-break",
		Program: func() {
			ab := runtime.NewString([]byte("ab"))
			abc := runtime.NewString([]byte("abc"))
			ac := runtime.NewString([]byte("ac"))
			builtin.AssertBool(ab.Less(abc), true)
			builtin.AssertBool(abc.Greater(ab), true)
			builtin.AssertBool(ab.Less(ac), true)
			builtin.AssertBool(ab.LessEq(ab), true)
			builtin.AssertBool(ab.GreaterEq(ab), true)
			builtin.AssertBool(ab.Equal(abc), false)
			builtin.AssertBool(ab.NotEqual(abc), true)
			builtin.AssertInt(ab.Compare(abc), -1)
			builtin.AssertInt(abc.Compare(ab), 1)
			builtin.AssertInt(ab.Compare(ab), 0)
			builtin.PrintBool(true)
		},
	},
	{
		Name:    "empty-string",
		Summary: "the empty string is a valid operand everywhere",
		Program: func() {
			empty := runtime.NewString(nil)
			word := runtime.NewString([]byte("word"))
			builtin.AssertInt(empty.Size(), 0)
			builtin.AssertString(empty.Concat(word), word)
			builtin.AssertString(word.Concat(empty), word)
			builtin.AssertBool(empty.Less(word), true)
			builtin.PrintInt(empty.Size())
		},
	},
	{
		Name:    "scalar-prints",
		Summary: "one line per scalar print",
		Program: func() {
			builtin.PrintInt(-42)
			builtin.PrintLong(1 << 40)
			builtin.PrintBool(true)
			builtin.PrintBool(false)
			builtin.PrintChar('F')
			builtin.PrintDouble(2.5)
		},
	},
	{
		Name:    "array-basics",
		Summary: "allocation, direct element access, zero length",
		Program: func() {
			arr := runtime.NewArray[int32](3)
			arr.Data[0] = 1
			arr.Data[1] = 2
			arr.Data[2] = 3
			builtin.AssertInt(arr.Size(), 3)
			builtin.PrintArray(arr)
			none := runtime.NewArray[int32](0)
			builtin.AssertInt(none.Size(), 0)
			builtin.PrintArray(none)
		},
	},
	{
		Name:     "assert-int-mismatch",
		Summary:  "a failing scalar assert aborts with status 1",
		WantExit: 1,
		Program: func() {
			builtin.PrintInt(1)
			builtin.AssertInt(1, 2)
			builtin.PrintInt(2) // never reached
		},
	},
	{
		Name:     "assert-string-size-mismatch",
		Summary:  "a size difference is reported before content",
		WantExit: 1,
		Program: func() {
			builtin.AssertString(runtime.NewString([]byte("a")), runtime.NewString([]byte("ab")))
		},
	},
	{
		Name:     "assert-string-byte-mismatch",
		Summary:  "the first differing byte is reported",
		WantExit: 1,
		Program: func() {
			builtin.AssertString(runtime.NewString([]byte("abc")), runtime.NewString([]byte("abd")))
		},
	},
}
