package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridplan/pkg/grid"
)

// Options configures constraint-graph rendering.
type Options struct {
	// Positions includes each column's resolved coordinate in its
	// label. Requires that geometry has been computed.
	Positions bool

	// RankLR lays the graph out left-to-right, matching the axis
	// direction. When false the graph flows top-to-bottom.
	RankLR bool
}

// ToDOT converts a placement's constraint graph to Graphviz DOT
// format. Columns become nodes, links become edges labeled with their
// minimum size; elastic links are dashed, with the growth factor
// appended to the label.
func ToDOT(p *grid.Placement, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	if opts.RankLR {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, col := range p.Columns() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(col), nodeLabel(p, col, opts))
	}

	buf.WriteString("\n")
	for _, c := range p.Constraints() {
		attrs := []string{fmt.Sprintf("label=%q", edgeLabel(c))}
		if c.Elastic {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(c.Start), nodeID(c.End), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(col int) string {
	return fmt.Sprintf("c%d", col)
}

func nodeLabel(p *grid.Placement, col int, opts Options) string {
	if opts.Positions {
		if pos, ok := p.Position(col); ok {
			return fmt.Sprintf("%d\n%.2f", col, pos)
		}
	}
	return fmt.Sprintf("%d", col)
}

func edgeLabel(c grid.Constraint[int]) string {
	if c.Elastic {
		return fmt.Sprintf("%g +%g", c.MinSize, c.Growth)
	}
	return fmt.Sprintf("%g", c.MinSize)
}

// ToSVG renders a DOT graph to SVG using Graphviz.
func ToSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// ToPNG renders a DOT graph to PNG using Graphviz.
func ToPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
