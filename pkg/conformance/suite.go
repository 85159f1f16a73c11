// Package conformance runs compiled-program scenarios against the runtime
// the way the operating system sees them. Each registered case is a stand-in
// for compiler-emitted code: the harness executes it in a child process
// through the entry shim, then checks the exit status and, when a golden
// manifest is loaded, the exact stdout lines.
package conformance

import (
	"fmt"
	"sort"
	"sync"
)

// Case is one runnable scenario. Program is the body a compiled main would
// have; the child executor hands it to runtime.Enter, so a case that runs to
// completion exits 0 and an aborting case carries the abort status.
type Case struct {
	Name     string
	Summary  string
	Program  func()
	WantExit int
}

var (
	registryMu sync.Mutex
	registry   = map[string]Case{}
)

// Register adds a case to the process-wide registry. Registration happens
// during harness setup; a malformed or duplicate case panics.
func Register(c Case) {
	if c.Name == "" {
		panic("conformance: case with empty name")
	}
	if c.Program == nil {
		panic(fmt.Sprintf("conformance: case %q has no program", c.Name))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[c.Name]; exists {
		panic(fmt.Sprintf("conformance: case %q registered twice", c.Name))
	}
	registry[c.Name] = c
}

// Lookup returns the registered case with the given name.
func Lookup(name string) (Case, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	c, ok := registry[name]
	return c, ok
}

// Names returns the registered case names in sorted order.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
