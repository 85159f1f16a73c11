package runtime

import "testing"

func TestNewArrayAllocatesZeroedStorage(t *testing.T) {
	arr := NewArray[int32](4)
	if got, want := arr.Size(), int32(4); got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
	for i, v := range arr.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %d, want 0", i, v)
		}
	}
	arr.Data[2] = 7
	if got, want := arr.Data[2], int32(7); got != want {
		t.Fatalf("Data[2] = %d, want %d", got, want)
	}
	if got, want := arr.Size(), int32(4); got != want {
		t.Fatalf("Size() after element write = %d, want %d", got, want)
	}
}

func TestNewArrayZeroLength(t *testing.T) {
	arr := NewArray[int32](0)
	if got := arr.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
	steps := 0
	for range arr.Data {
		steps++
	}
	if steps != 0 {
		t.Fatalf("iterated %d elements over an empty array", steps)
	}
}

func TestNewArrayNegativeLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewArray(-1) did not panic")
		}
	}()
	NewArray[int32](-1)
}

func TestNewArrayElementTypes(t *testing.T) {
	bytes := NewArray[byte](2)
	bytes.Data[0] = 'q'
	if got, want := bytes.Data[0], byte('q'); got != want {
		t.Fatalf("byte element = %q, want %q", got, want)
	}

	doubles := NewArray[float64](1)
	doubles.Data[0] = 2.5
	if got, want := doubles.Data[0], 2.5; got != want {
		t.Fatalf("float64 element = %g, want %g", got, want)
	}

	strings := NewArray[String](2)
	if got := strings.Data[0].Size(); got != 0 {
		t.Fatalf("zero String element has size %d, want 0", got)
	}
}
