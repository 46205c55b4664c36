package cli

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	gridio "github.com/matzehuels/gridplan/pkg/io"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

const sampleSpec = `
[[cell]]
start = 0
end = 4
size = 4

[[cell]]
start = 4
end = 6
size = 2

[[grow]]
start = 2
end = 4
factor = 1.0

[frame]
size = 8.0
center = 0.0
expansion = 1.0
`

func TestRootCommand_Subcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := map[string]bool{
		"solve":      false,
		"graph":      false,
		"tune":       false,
		"serve":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSolveSpec_Frame(t *testing.T) {
	c := testCLI()
	path := writeSpec(t, sampleSpec)

	spec, err := gridio.LoadSpec(path)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	p, res, err := solveSpec(spec, frameOverrides{}, c.Logger)
	if err != nil {
		t.Fatalf("solveSpec() error = %v", err)
	}
	if math.Abs(res.Size-8) > 1e-8 {
		t.Errorf("Size = %g, want 8", res.Size)
	}

	want := map[int]float64{0: -4, 2: -2, 4: 2, 6: 4}
	for col, w := range want {
		got, ok := p.Position(col)
		if !ok {
			t.Fatalf("Position(%d) not resolved", col)
		}
		if math.Abs(got-w) > 1e-8 {
			t.Errorf("Position(%d) = %g, want %g", col, got, w)
		}
	}
}

func TestSolveSpec_Overrides(t *testing.T) {
	c := testCLI()
	path := writeSpec(t, sampleSpec)

	spec, err := gridio.LoadSpec(path)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}

	size := 6.0
	expansion := 0.0
	_, res, err := solveSpec(spec, frameOverrides{size: &size, expansion: &expansion}, c.Logger)
	if err != nil {
		t.Fatalf("solveSpec() error = %v", err)
	}
	if math.Abs(res.Size-6) > 1e-8 {
		t.Errorf("Size = %g, want override 6", res.Size)
	}
}

func TestRunSolve_WritesOutput(t *testing.T) {
	c := testCLI()
	path := writeSpec(t, sampleSpec)
	out := filepath.Join(t.TempDir(), "result.json")

	if err := c.runSolve(path, out, frameOverrides{}); err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRunSolve_MissingFile(t *testing.T) {
	c := testCLI()
	if err := c.runSolve(filepath.Join(t.TempDir(), "nope.toml"), "", frameOverrides{}); err == nil {
		t.Error("runSolve() on missing file, want error")
	}
}

func TestRunGraph_DOTFile(t *testing.T) {
	c := testCLI()
	path := writeSpec(t, sampleSpec)
	out := filepath.Join(t.TempDir(), "graph.dot")

	if err := c.runGraph(path, out, false, true); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{"digraph constraints", "rankdir=LR", `"c0" -> "c2"`, `"c4" -> "c6"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}

func TestRunGraph_UnsupportedFormat(t *testing.T) {
	c := testCLI()
	path := writeSpec(t, sampleSpec)

	err := c.runGraph(path, filepath.Join(t.TempDir(), "graph.pdf"), false, true)
	if err == nil {
		t.Error("runGraph() with .pdf output, want error")
	}
}

func TestTuneModel_Adjust(t *testing.T) {
	c := testCLI()
	path := writeSpec(t, sampleSpec)

	spec, err := gridio.LoadSpec(path)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	p, err := spec.Placement()
	if err != nil {
		t.Fatalf("Placement() error = %v", err)
	}
	p.SetLogger(c.Logger)
	desired, err := p.DesiredGeometry()
	if err != nil {
		t.Fatalf("DesiredGeometry() error = %v", err)
	}

	m := newTuneModel(p, spec, desired.Size())
	if m.size != 8 {
		t.Errorf("initial size = %g, want frame size 8", m.size)
	}
	if m.solveErr != nil {
		t.Fatalf("initial solve error = %v", m.solveErr)
	}

	m.cursor = paramSize
	m.adjust(0.5)
	if m.size != 8.5 {
		t.Errorf("size after adjust = %g, want 8.5", m.size)
	}
	if m.solveErr != nil {
		t.Errorf("solve after adjust error = %v", m.solveErr)
	}

	m.cursor = paramExpansion
	m.adjust(10)
	if m.expansion != 1 {
		t.Errorf("expansion = %g, want clamp to 1", m.expansion)
	}

	m.reset()
	if m.size != 8 || m.expansion != 1 {
		t.Errorf("reset gave size %g expansion %g, want 8 and 1", m.size, m.expansion)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := testCLI()
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}
