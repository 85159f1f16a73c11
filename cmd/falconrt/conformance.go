package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"falcon/runtime-go/pkg/conformance"
	"github.com/xyproto/env/v2"
)

type conformanceConfig struct {
	GoldenPath string
	Names      []string
	ListOnly   bool
	Update     bool
	Parallel   int
}

func runConformance(args []string) int {
	config, err := parseConformanceArguments(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falconrt conformance: %v\n", err)
		return 1
	}
	config.GoldenPath = goldenPathFallback(config.GoldenPath)

	conformance.RegisterStandard()

	if config.ListOnly {
		for _, name := range conformance.Names() {
			c, _ := conformance.Lookup(name)
			fmt.Fprintf(os.Stdout, "%s\t%s\n", name, c.Summary)
		}
		return 0
	}

	self, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "falconrt conformance: resolve executable: %v\n", err)
		return 2
	}

	var golden *conformance.Golden
	if config.GoldenPath != "" && !config.Update {
		golden, err = conformance.LoadGolden(config.GoldenPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "falconrt conformance: %v\n", err)
			return 2
		}
	}

	suite, err := conformance.RunSuite(context.Background(), conformance.RunOptions{
		Command:     []string{self, "run-case"},
		Names:       config.Names,
		Golden:      golden,
		Parallelism: config.Parallel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "falconrt conformance: %v\n", err)
		return 2
	}

	reportSuite(os.Stdout, suite)

	if suite.Failed() > 0 {
		return 1
	}

	if config.Update {
		updated := conformance.GoldenFromResults(suite.Results)
		if err := conformance.WriteGolden(updated, config.GoldenPath); err != nil {
			fmt.Fprintf(os.Stderr, "falconrt conformance: %v\n", err)
			return 2
		}
		fmt.Fprintf(os.Stdout, "falconrt conformance: wrote %s\n", config.GoldenPath)
	}
	return 0
}

// goldenPathFallback prefers the --golden value and otherwise consults the
// FALCONRT_GOLDEN environment variable. --update accepts only the explicit
// flag.
func goldenPathFallback(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return env.Str(conformance.GoldenEnv)
}

// reportSuite prints one line per case and a totals line. Failures also
// carry the case summary and the captured output.
func reportSuite(w io.Writer, suite *conformance.SuiteResult) {
	for _, r := range suite.Results {
		if r.Passed() {
			fmt.Fprintf(w, "ok   %s (exit %d)\n", r.Name, r.Exit)
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "FAIL %s: exit %d, want %d\n", r.Name, r.Exit, r.WantExit)
		if r.Summary != "" {
			fmt.Fprintf(w, "     case:   %s\n", r.Summary)
		}
		if r.WantStdout != nil {
			fmt.Fprintf(w, "     stdout: %q\n", r.Stdout)
			fmt.Fprintf(w, "     want:   %q\n", r.WantStdout)
		}
		if r.Stderr != "" {
			fmt.Fprintf(w, "     stderr: %s\n", strings.TrimSpace(r.Stderr))
		}
	}
	fmt.Fprintf(w, "conformance: %d passed, %d failed\n", suite.Passed(), suite.Failed())
}

func parseConformanceArguments(args []string) (conformanceConfig, error) {
	config := conformanceConfig{Parallel: 1}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--list":
			config.ListOnly = true
		case "--update":
			config.Update = true
		case "--golden":
			val, err := expectFlagValue(arg, nextArg(args, &i))
			if err != nil {
				return conformanceConfig{}, err
			}
			config.GoldenPath = val
		case "--name":
			val, err := expectFlagValue(arg, nextArg(args, &i))
			if err != nil {
				return conformanceConfig{}, err
			}
			config.Names = append(config.Names, val)
		case "--parallel":
			val, err := expectFlagValue(arg, nextArg(args, &i))
			if err != nil {
				return conformanceConfig{}, err
			}
			count, err := parsePositiveInt(val, arg, 1)
			if err != nil {
				return conformanceConfig{}, err
			}
			config.Parallel = count
		default:
			if strings.HasPrefix(arg, "-") {
				return conformanceConfig{}, fmt.Errorf("unknown falconrt conformance flag '%s'", arg)
			}
			return conformanceConfig{}, fmt.Errorf("unexpected argument '%s'", arg)
		}
	}
	if config.Update && config.GoldenPath == "" {
		return conformanceConfig{}, fmt.Errorf("--update requires --golden")
	}
	return config, nil
}

func nextArg(args []string, index *int) string {
	*index = *index + 1
	if *index >= len(args) {
		return ""
	}
	return args[*index]
}

func expectFlagValue(flag string, value string) (string, error) {
	if value == "" || strings.HasPrefix(value, "-") {
		return "", fmt.Errorf("%s expects a value", flag)
	}
	return value, nil
}

func parsePositiveInt(value string, flag string, min int) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < min {
		return 0, fmt.Errorf("%s expects an integer >= %d", flag, min)
	}
	return parsed, nil
}
