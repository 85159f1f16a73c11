package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  falconrt conformance [--golden file.yml] [--name case ...] [--parallel n]")
	fmt.Fprintln(os.Stderr, "  falconrt conformance --list")
	fmt.Fprintln(os.Stderr, "  falconrt conformance --golden file.yml --update")
	fmt.Fprintln(os.Stderr, "  falconrt run-case <name>")
	fmt.Fprintln(os.Stderr, "  falconrt version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment:")
	fmt.Fprintln(os.Stderr, "  FALCONRT_GOLDEN   default for --golden")
	fmt.Fprintln(os.Stderr, "  FALCONRT_TRACE    allocation and entry trace on stderr")
	fmt.Fprintln(os.Stderr, "  FALCONRT_STATS    heap statistics on exit")
}
