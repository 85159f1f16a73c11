package conformance

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const goldenVersion = 1

// GoldenEnv names the environment variable that supplies a default golden
// manifest path to the conformance CLI when --golden is absent.
const GoldenEnv = "FALCONRT_GOLDEN"

// Golden pins the expected observable behaviour of the registered cases:
// exit status and exact stdout lines per case. Stdout lines keep their
// trailing spaces; only names are trimmed.
type Golden struct {
	Path    string
	Version int
	Cases   []GoldenCase
}

// GoldenCase records one case's expected output.
type GoldenCase struct {
	Name   string
	Exit   int
	Stdout []string
}

// NewGolden returns an empty manifest at the current version.
func NewGolden() *Golden {
	return &Golden{Version: goldenVersion, Cases: []GoldenCase{}}
}

// GoldenFromResults builds a manifest that pins the behaviour a suite run
// observed.
func GoldenFromResults(results []CaseResult) *Golden {
	g := NewGolden()
	for _, r := range results {
		stdout := r.Stdout
		if stdout == nil {
			stdout = []string{}
		}
		g.Cases = append(g.Cases, GoldenCase{Name: r.Name, Exit: r.Exit, Stdout: stdout})
	}
	g.normalize()
	return g
}

// LoadGolden parses a golden manifest from disk.
func LoadGolden(path string) (*Golden, error) {
	if path == "" {
		return nil, fmt.Errorf("golden: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("golden: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw goldenDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("golden: parse %s: %w", abs, err)
	}

	g := raw.toGolden()
	g.Path = abs
	if g.Version != goldenVersion {
		return nil, fmt.Errorf("golden: %s has version %d, this harness reads version %d", abs, g.Version, goldenVersion)
	}
	return g, nil
}

// WriteGolden serialises the manifest to disk, sorted by case name.
func WriteGolden(g *Golden, path string) error {
	if g == nil {
		return fmt.Errorf("golden: nil manifest")
	}
	if path == "" {
		if g.Path == "" {
			return fmt.Errorf("golden: missing path")
		}
		path = g.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("golden: resolve %s: %w", path, err)
	}

	if g.Version == 0 {
		g.Version = goldenVersion
	}
	g.Path = abs
	g.normalize()

	data := g.toDisk()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("golden: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("golden: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("golden: write %s: %w", abs, err)
	}
	return nil
}

// Case returns the entry for name.
func (g *Golden) Case(name string) (GoldenCase, bool) {
	if g == nil {
		return GoldenCase{}, false
	}
	for _, c := range g.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return GoldenCase{}, false
}

func (g *Golden) normalize() {
	if g == nil {
		return
	}
	for i := range g.Cases {
		g.Cases[i].Name = strings.TrimSpace(g.Cases[i].Name)
	}
	sort.SliceStable(g.Cases, func(i, j int) bool {
		return g.Cases[i].Name < g.Cases[j].Name
	})
}

func (g *Golden) toDisk() goldenDisk {
	cases := make([]goldenDiskCase, 0, len(g.Cases))
	for _, c := range g.Cases {
		stdout := c.Stdout
		if stdout == nil {
			stdout = []string{}
		}
		cases = append(cases, goldenDiskCase{
			Name:   c.Name,
			Exit:   c.Exit,
			Stdout: stdout,
		})
	}
	return goldenDisk{
		Version: g.Version,
		Cases:   cases,
	}
}

type goldenDisk struct {
	Version int              `yaml:"version"`
	Cases   []goldenDiskCase `yaml:"cases"`
}

type goldenDiskCase struct {
	Name   string   `yaml:"name"`
	Exit   int      `yaml:"exit"`
	Stdout []string `yaml:"stdout"`
}

func (d goldenDisk) toGolden() *Golden {
	g := &Golden{
		Version: d.Version,
		Cases:   make([]GoldenCase, 0, len(d.Cases)),
	}
	for _, c := range d.Cases {
		stdout := c.Stdout
		if stdout == nil {
			stdout = []string{}
		}
		g.Cases = append(g.Cases, GoldenCase{
			Name:   strings.TrimSpace(c.Name),
			Exit:   c.Exit,
			Stdout: stdout,
		})
	}
	g.normalize()
	return g
}
