package runtime

import (
	"bytes"
	"fmt"
	"testing"
)

func TestEnterRunsProgramAndExitsZero(t *testing.T) {
	defer resetRuntimeState()
	var buf bytes.Buffer
	SetOutput(&buf)
	code := -1
	SetExitHandler(func(c int) { code = c })

	ran := false
	Enter(func() {
		ran = true
		fmt.Fprintln(Output(), "hi")
	})

	if !ran {
		t.Fatalf("program did not run")
	}
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got, want := buf.String(), "hi\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestEnterTwicePanics(t *testing.T) {
	defer resetRuntimeState()
	SetExitHandler(func(int) {})
	Enter(func() {})

	defer func() {
		if recover() == nil {
			t.Fatalf("second Enter did not panic")
		}
	}()
	Enter(func() {})
}

func TestEnterNilProgramPanics(t *testing.T) {
	defer resetRuntimeState()
	defer func() {
		if recover() == nil {
			t.Fatalf("Enter(nil) did not panic")
		}
	}()
	Enter(nil)
}

func TestExitRunsShutdownHooksInReverseOrder(t *testing.T) {
	defer resetRuntimeState()
	var order []string
	OnShutdown(func() { order = append(order, "first") })
	OnShutdown(func() { order = append(order, "second") })
	code := -1
	SetExitHandler(func(c int) { code = c })

	Exit(3)

	if code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Fatalf("shutdown order = %v, want [second first]", order)
	}
}

func TestOnInitBeforeEnterRunsDuringEnter(t *testing.T) {
	defer resetRuntimeState()
	SetExitHandler(func(int) {})
	initRan := false
	ranBeforeProgram := false
	OnInit(func() { initRan = true })

	Enter(func() { ranBeforeProgram = initRan })

	if !initRan {
		t.Fatalf("init hook did not run")
	}
	if !ranBeforeProgram {
		t.Fatalf("init hook ran after program code")
	}
}

func TestOnInitAfterEnterRunsImmediately(t *testing.T) {
	defer resetRuntimeState()
	SetExitHandler(func(int) {})
	Enter(func() {})

	ran := false
	OnInit(func() { ran = true })
	if !ran {
		t.Fatalf("late init hook did not run immediately")
	}
}

func TestAbortWritesDiagnosticAndExitsOne(t *testing.T) {
	defer resetRuntimeState()
	var buf bytes.Buffer
	SetOutput(&buf)
	code := -1
	SetExitHandler(func(c int) { code = c })

	Abort("Assertion failed: %d != %d", 1, 2)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got, want := buf.String(), "Assertion failed: 1 != 2\n"; got != want {
		t.Fatalf("diagnostic = %q, want %q", got, want)
	}
}

func TestSetOutputRestoresDefaultOnNil(t *testing.T) {
	defer resetRuntimeState()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	if got := SetOutput(nil); got != &buf {
		t.Fatalf("SetOutput(nil) returned %v, want the buffer", got)
	}
	SetOutput(prev)
}
