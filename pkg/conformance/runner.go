package conformance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// RunCaseEnv names the environment variable that selects the case a child
// process executes. The runner sets it for every child it spawns.
const RunCaseEnv = "FALCONRT_RUN_CASE"

// RunOptions configures a suite run.
type RunOptions struct {
	// Command is the argv that re-enters this harness in a child process.
	// The child learns its case from RunCaseEnv.
	Command []string
	// Names restricts the run to the named cases. Empty runs every
	// registered case.
	Names []string
	// Golden supplies stdout expectations. Nil checks exit statuses only.
	Golden *Golden
	// Parallelism bounds the child processes in flight. Values below 1 run
	// one case at a time.
	Parallelism int
	// Env entries are appended to each child's environment.
	Env []string
}

// CaseResult records one executed case.
type CaseResult struct {
	Name       string
	Summary    string
	Exit       int
	WantExit   int
	Stdout     []string
	WantStdout []string // nil when no golden entry constrained the run
	Stderr     string
	Err        error // harness failure, not a program failure
}

// Passed reports whether the case behaved as required.
func (r CaseResult) Passed() bool {
	if r.Err != nil {
		return false
	}
	if r.Exit != r.WantExit {
		return false
	}
	if r.WantStdout != nil && !equalLines(r.Stdout, r.WantStdout) {
		return false
	}
	return true
}

// SuiteResult aggregates a run, one entry per executed case in name order.
type SuiteResult struct {
	Results []CaseResult
}

// Failed counts the cases that did not behave as required.
func (s *SuiteResult) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

// Passed counts the cases that behaved as required.
func (s *SuiteResult) Passed() int {
	return len(s.Results) - s.Failed()
}

// RunSuite executes the selected cases in child processes and collects the
// exit statuses and output the operating system observed.
func RunSuite(ctx context.Context, opts RunOptions) (*SuiteResult, error) {
	if len(opts.Command) == 0 {
		return nil, fmt.Errorf("runner: missing child command")
	}
	cases, err := selectCases(opts.Names)
	if err != nil {
		return nil, err
	}
	if err := checkGoldenPairing(opts.Golden, cases); err != nil {
		return nil, err
	}

	limit := opts.Parallelism
	if limit < 1 {
		limit = 1
	}
	results := make([]CaseResult, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			results[i] = runCase(ctx, opts, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &SuiteResult{Results: results}, nil
}

func selectCases(names []string) ([]Case, error) {
	if len(names) == 0 {
		all := Names()
		if len(all) == 0 {
			return nil, fmt.Errorf("runner: no cases registered")
		}
		out := make([]Case, 0, len(all))
		for _, name := range all {
			c, _ := Lookup(name)
			out = append(out, c)
		}
		return out, nil
	}
	seen := map[string]struct{}{}
	out := make([]Case, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		c, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("runner: unknown case %q", name)
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// checkGoldenPairing rejects manifests that drifted from the registry: every
// golden entry must name a registered program with the same expected exit,
// and every selected case must have a golden entry.
func checkGoldenPairing(golden *Golden, cases []Case) error {
	if golden == nil {
		return nil
	}
	for _, gc := range golden.Cases {
		c, ok := Lookup(gc.Name)
		if !ok {
			return fmt.Errorf("golden: case %q has no registered program", gc.Name)
		}
		if gc.Exit != c.WantExit {
			return fmt.Errorf("golden: case %q records exit %d, the registry wants %d", gc.Name, gc.Exit, c.WantExit)
		}
	}
	for _, c := range cases {
		if _, ok := golden.Case(c.Name); !ok {
			return fmt.Errorf("golden: no entry for case %q", c.Name)
		}
	}
	return nil
}

func runCase(ctx context.Context, opts RunOptions, c Case) CaseResult {
	result := CaseResult{Name: c.Name, Summary: c.Summary, WantExit: c.WantExit}
	if opts.Golden != nil {
		gc, _ := opts.Golden.Case(c.Name)
		result.WantStdout = gc.Stdout
		if result.WantStdout == nil {
			result.WantStdout = []string{}
		}
	}

	cmd := exec.CommandContext(ctx, opts.Command[0], opts.Command[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Env = append(cmd.Env, RunCaseEnv+"="+c.Name)

	err := cmd.Run()
	result.Stdout = splitLines(stdout.String())
	result.Stderr = stderr.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.Exit = exitErr.ExitCode()
		} else {
			result.Err = fmt.Errorf("runner: case %q: %w", c.Name, err)
		}
	}
	return result
}

// splitLines breaks captured output into lines without the terminating
// newlines. A trailing newline does not produce a final empty line, but
// interior empty lines survive.
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
