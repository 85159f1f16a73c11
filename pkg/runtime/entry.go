package runtime

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/xyproto/env/v2"
)

// Process states. Enter moves the process from uninitialized to running
// exactly once; there is no transition back.
const (
	stateUninitialized int32 = iota
	stateRunning
)

var procState atomic.Int32

var (
	mu            sync.Mutex
	output        io.Writer = os.Stdout
	exitHandler             = os.Exit
	initHooks     []func()
	shutdownHooks []func()
)

// Enter is the process entry shim. The generated main package calls it with
// the program's entry function: Enter initializes the runtime once, runs the
// program, and terminates the process with status 0 when the program
// returns. The program's own computation never influences the exit status.
//
// Enter does not return. Calling it twice, or with a nil program, is a
// compiler-contract violation and panics.
func Enter(program func()) {
	if program == nil {
		panic("runtime: Enter called with nil program")
	}
	if !procState.CompareAndSwap(stateUninitialized, stateRunning) {
		panic("runtime: Enter called twice")
	}
	initialize()
	program()
	Exit(0)
}

// initialize reads the environment configuration and runs the registered
// init hooks. It runs exactly once, before any program code.
func initialize() {
	traceEnabled.Store(env.Bool("FALCONRT_TRACE"))
	if env.Bool("FALCONRT_STATS") {
		OnShutdown(dumpStats)
	}
	tracef("++enter")
	mu.Lock()
	hooks := append([]func(){}, initHooks...)
	mu.Unlock()
	for _, hook := range hooks {
		hook()
	}
}

// Exit runs the shutdown hooks in reverse registration order and terminates
// the process through the exit handler. It is the only way a compiled
// program ends.
func Exit(code int) {
	tracef("++exit code=%d", code)
	mu.Lock()
	hooks := append([]func(){}, shutdownHooks...)
	handler := exitHandler
	mu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
	handler(code)
}

// Abort prints one diagnostic line to the runtime output and terminates the
// process with status 1. The builtin asserts funnel every mismatch through
// here.
func Abort(format string, args ...any) {
	fmt.Fprintf(Output(), format+"\n", args...)
	Exit(1)
}

// OnInit registers a hook to run during Enter, before any program code. A
// hook registered after initialization runs immediately. Runtime services
// that need startup work attach here; a future background reclaimer would.
func OnInit(hook func()) {
	if hook == nil {
		return
	}
	mu.Lock()
	if procState.Load() == stateRunning {
		mu.Unlock()
		hook()
		return
	}
	initHooks = append(initHooks, hook)
	mu.Unlock()
}

// OnShutdown registers a hook to run when Exit tears the process down.
func OnShutdown(hook func()) {
	if hook == nil {
		return
	}
	mu.Lock()
	shutdownHooks = append(shutdownHooks, hook)
	mu.Unlock()
}

// Output returns the writer program output and abort diagnostics go to. It
// defaults to standard output.
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// SetOutput redirects program output and returns the previous writer. Host
// harnesses use it to capture what a program prints; nil restores the
// default.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	if w == nil {
		w = os.Stdout
	}
	output = w
	return prev
}

// SetExitHandler replaces the function Exit hands the final status code to
// and returns the previous handler. The default, os.Exit, never returns; a
// replacement that does return makes Exit and Abort return to their callers,
// which only in-process harnesses and tests should rely on. nil restores the
// default.
func SetExitHandler(handler func(int)) func(int) {
	mu.Lock()
	defer mu.Unlock()
	prev := exitHandler
	if handler == nil {
		handler = os.Exit
	}
	exitHandler = handler
	return prev
}

// resetRuntimeState restores the package state between tests.
func resetRuntimeState() {
	mu.Lock()
	output = os.Stdout
	exitHandler = os.Exit
	initHooks = nil
	shutdownHooks = nil
	mu.Unlock()
	procState.Store(stateUninitialized)
	traceEnabled.Store(false)
}
