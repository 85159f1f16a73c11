package conformance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGoldenFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadGoldenBasic(t *testing.T) {
	path := writeGoldenFixture(t, `
version: 1
cases:
  - name: zulu
    exit: 1
    stdout:
      - "Assertion failed: 1 != 2"
  - name: alpha
    exit: 0
    stdout:
      - "1 2 3 "
      - ""
`)

	golden, err := LoadGolden(path)
	if err != nil {
		t.Fatalf("LoadGolden returned error: %v", err)
	}
	if got, want := golden.Version, 1; got != want {
		t.Fatalf("Version = %d, want %d", got, want)
	}
	if len(golden.Cases) != 2 {
		t.Fatalf("Cases = %d entries, want 2", len(golden.Cases))
	}
	if got, want := golden.Cases[0].Name, "alpha"; got != want {
		t.Fatalf("cases not sorted: first = %q, want %q", got, want)
	}

	alpha, ok := golden.Case("alpha")
	if !ok {
		t.Fatalf("Case(alpha) not found")
	}
	if len(alpha.Stdout) != 2 || alpha.Stdout[0] != "1 2 3 " || alpha.Stdout[1] != "" {
		t.Fatalf("alpha stdout = %q, want trailing space and empty line preserved", alpha.Stdout)
	}

	zulu, ok := golden.Case("zulu")
	if !ok {
		t.Fatalf("Case(zulu) not found")
	}
	if got, want := zulu.Exit, 1; got != want {
		t.Fatalf("zulu exit = %d, want %d", got, want)
	}
}

func TestLoadGoldenUnknownFieldRejected(t *testing.T) {
	path := writeGoldenFixture(t, `
version: 1
bogus: true
cases: []
`)
	if _, err := LoadGolden(path); err == nil {
		t.Fatalf("unknown field accepted")
	} else if !strings.Contains(err.Error(), "parse") {
		t.Fatalf("error does not mention parsing: %v", err)
	}
}

func TestLoadGoldenVersionMismatch(t *testing.T) {
	path := writeGoldenFixture(t, `
version: 2
cases: []
`)
	if _, err := LoadGolden(path); err == nil {
		t.Fatalf("future version accepted")
	} else if !strings.Contains(err.Error(), "version") {
		t.Fatalf("error does not mention the version: %v", err)
	}
}

func TestLoadGoldenEmptyPath(t *testing.T) {
	if _, err := LoadGolden(""); err == nil {
		t.Fatalf("empty path accepted")
	}
}

func TestWriteGoldenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden.yml")
	g := NewGolden()
	g.Cases = []GoldenCase{
		{Name: "zeta", Exit: 1, Stdout: []string{"Assertion failed: 1 != 2"}},
		{Name: "beta", Exit: 0, Stdout: []string{"1 2 3 ", ""}},
		{Name: "gamma", Exit: 0, Stdout: nil},
	}
	if err := WriteGolden(g, path); err != nil {
		t.Fatalf("WriteGolden returned error: %v", err)
	}

	loaded, err := LoadGolden(path)
	if err != nil {
		t.Fatalf("LoadGolden after write returned error: %v", err)
	}
	if len(loaded.Cases) != 3 {
		t.Fatalf("Cases = %d entries, want 3", len(loaded.Cases))
	}
	if got, want := loaded.Cases[0].Name, "beta"; got != want {
		t.Fatalf("first case = %q, want %q", got, want)
	}
	beta, _ := loaded.Case("beta")
	if len(beta.Stdout) != 2 || beta.Stdout[0] != "1 2 3 " || beta.Stdout[1] != "" {
		t.Fatalf("beta stdout = %q, lines not preserved", beta.Stdout)
	}
	gamma, _ := loaded.Case("gamma")
	if gamma.Stdout == nil || len(gamma.Stdout) != 0 {
		t.Fatalf("gamma stdout = %#v, want empty non-nil slice", gamma.Stdout)
	}
	zeta, _ := loaded.Case("zeta")
	if got, want := zeta.Exit, 1; got != want {
		t.Fatalf("zeta exit = %d, want %d", got, want)
	}
}

func TestGoldenFromResults(t *testing.T) {
	results := []CaseResult{
		{Name: "second", Exit: 1, Stdout: []string{"boom"}},
		{Name: "first", Exit: 0, Stdout: nil},
	}
	g := GoldenFromResults(results)
	if got, want := g.Version, goldenVersion; got != want {
		t.Fatalf("Version = %d, want %d", got, want)
	}
	if len(g.Cases) != 2 || g.Cases[0].Name != "first" || g.Cases[1].Name != "second" {
		t.Fatalf("cases = %#v, want sorted [first second]", g.Cases)
	}
	if g.Cases[0].Stdout == nil {
		t.Fatalf("nil stdout not normalised to an empty slice")
	}
}
