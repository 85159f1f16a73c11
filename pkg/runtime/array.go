package runtime

import "fmt"

// Array is a fixed-size allocation of elements of the compiler's element
// type. This layer never interprets the elements; the compiler emits direct
// indexed access against Data, which is why the field stays exported.
type Array[T any] struct {
	Data []T
}

// NewArray allocates storage for count elements. Elements start zeroed by
// the host allocator. The compiler never emits a negative length, so a
// negative count panics.
func NewArray[T any](count int32) Array[T] {
	if count < 0 {
		panic(fmt.Sprintf("runtime: negative array length %d", count))
	}
	noteArray(uint64(count))
	return Array[T]{Data: make([]T, count)}
}

// Size returns the element count.
func (a Array[T]) Size() int32 { return int32(len(a.Data)) }
