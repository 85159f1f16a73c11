package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "falconrt 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "conformance":
		return runConformance(args[1:])
	case "run-case":
		return runCaseCmd(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "falconrt: unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}
