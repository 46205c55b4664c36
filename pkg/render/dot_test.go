package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridplan/pkg/grid"
)

func testPlacement(t *testing.T) *grid.Placement {
	t.Helper()
	p := grid.NewPlacement()
	if err := p.AddData(grid.Width(0, 4, 4), grid.Width(4, 6, 2), grid.Grow(2, 4, 1)); err != nil {
		t.Fatalf("AddData() error = %v", err)
	}
	if _, err := p.DesiredGeometry(); err != nil {
		t.Fatalf("DesiredGeometry() error = %v", err)
	}
	return p
}

func TestToDOT_Structure(t *testing.T) {
	dot := ToDOT(testPlacement(t), Options{RankLR: true})

	for _, want := range []string{
		"digraph constraints {",
		"rankdir=LR;",
		`"c0" [label="0"];`,
		`"c0" -> "c2"`,
		`"c2" -> "c4" [label="2 +1", style=dashed];`,
		`"c4" -> "c6" [label="2"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOT_Positions(t *testing.T) {
	p := testPlacement(t)
	dot := ToDOT(p, Options{Positions: true})

	if !strings.Contains(dot, `label="0\n0.00"`) {
		t.Errorf("ToDOT() missing positioned label in:\n%s", dot)
	}
}

func TestToDOT_EmptyPlacement(t *testing.T) {
	dot := ToDOT(grid.NewPlacement(), Options{})
	if !strings.Contains(dot, "digraph constraints {") || !strings.Contains(dot, "}") {
		t.Errorf("ToDOT() on empty placement = %q, want valid empty digraph", dot)
	}
}
