// Package runtime is the native support library linked into every compiled
// Falcon program. It provides the heap value model (sized byte strings and
// typed arrays), the process entry shim that bridges host startup into the
// program's entry function, and the abort and exit policy shared by the
// builtin intrinsics. Generated code trusts this layer completely: operations
// validate nothing beyond the documented compiler contract and never return
// errors.
package runtime
