package main

import (
	"fmt"
	"os"

	"falcon/runtime-go/pkg/conformance"
	"falcon/runtime-go/pkg/runtime"
	"github.com/xyproto/env/v2"
)

// runCaseCmd executes one registered case in this process. The conformance
// runner spawns `falconrt run-case` per case so the exit status and output
// reach the parent exactly as the operating system reports them.
func runCaseCmd(args []string) int {
	name := ""
	switch len(args) {
	case 0:
		name = env.Str(conformance.RunCaseEnv)
	case 1:
		name = args[0]
	default:
		fmt.Fprintln(os.Stderr, "falconrt run-case: expected a single case name")
		return 1
	}
	if name == "" {
		fmt.Fprintf(os.Stderr, "falconrt run-case: missing case name; pass one or set %s\n", conformance.RunCaseEnv)
		return 1
	}

	conformance.RegisterStandard()
	c, ok := conformance.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "falconrt run-case: unknown case %q\n", name)
		return 2
	}

	runtime.Enter(c.Program)
	return 0
}
