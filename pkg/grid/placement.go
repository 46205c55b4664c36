package grid

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridplan/pkg/geom"
)

// edgeTolerance bounds how far a node position may sit from the range
// extreme and still count as an edge node.
const edgeTolerance = 1e-7

// state tracks where a Placement is in its accumulate/solve cycle.
type state int

const (
	stateEmpty state = iota
	stateAccumulating
	stateDesired
	stateFinal
)

// Placement is the per-axis facade of the engine. It accumulates raw
// constraint entries, owns the [Resolver] built from them, and exposes
// desired-size computation and final-size distribution.
//
// Lifecycle: entries are added while accumulating; [Placement.DesiredGeometry]
// rebuilds the graph and computes the minimum extent;
// [Placement.CalculatePositions] may then be called repeatedly with
// different allocations without re-adding entries. Any mutation of the
// entry list invalidates computed positions and returns the axis to
// the accumulating state.
//
// A Placement is not safe for concurrent use; callers serialize access
// per instance. Two instances (one per axis) share nothing and may be
// solved in parallel.
type Placement struct {
	cells   []Cell
	growths []Growth
	pins    []Pin

	resolver *Resolver[int]
	desired  geom.Range
	minSize  float64
	size     float64
	state    state
	degraded bool

	logger *log.Logger
}

// NewPlacement returns an empty placement. Warnings are discarded
// until a logger is attached with [Placement.SetLogger].
func NewPlacement() *Placement {
	return &Placement{logger: log.New(io.Discard)}
}

// SetLogger routes warnings (benign mismatches, solver fallback) to
// logger.
func (p *Placement) SetLogger(logger *log.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// invalidate discards computed geometry after a mutation.
func (p *Placement) invalidate() {
	p.resolver = nil
	p.desired = geom.NoneRange()
	p.minSize = 0
	p.size = 0
	p.degraded = false
	p.state = stateAccumulating
}

// AddCell appends a minimum-size constraint between two columns.
// Reversed endpoints are swapped and a negative size is clamped to
// zero; start == end is a wrapped [ErrDegenerateLink].
func (p *Placement) AddCell(start, end int, size float64) error {
	if start == end {
		return fmt.Errorf("cell %d -> %d: %w", start, end, ErrDegenerateLink)
	}
	if end < start {
		start, end = end, start
	}
	if size < 0 {
		size = 0
	}
	p.cells = append(p.cells, Cell{Start: start, End: end, Size: size})
	p.invalidate()
	return nil
}

// AddGrowth appends an elasticity request for the span between two
// columns. Larger factors stretch more readily; a zero factor keeps
// the span rigid even when extra space is distributed.
func (p *Placement) AddGrowth(start, end int, factor float64) error {
	if start == end {
		return fmt.Errorf("growth %d -> %d: %w", start, end, ErrDegenerateLink)
	}
	if end < start {
		start, end = end, start
	}
	p.growths = append(p.growths, Growth{Start: start, End: end, Factor: factor})
	p.invalidate()
	return nil
}

// AddPin appends an absolute placement request for one column.
func (p *Placement) AddPin(node int, position float64) {
	p.pins = append(p.pins, Pin{Node: node, Position: position})
	p.invalidate()
}

// AddData appends a batch of entries built with [Width], [Grow], and
// [Place].
func (p *Placement) AddData(entries ...Entry) error {
	for _, e := range entries {
		var err error
		switch e.Kind {
		case EntryWidth:
			err = p.AddCell(e.Start, e.End, e.Value)
		case EntryGrowth:
			err = p.AddGrowth(e.Start, e.End, e.Value)
		case EntryPlace:
			p.AddPin(e.Start, e.Value)
		default:
			err = fmt.Errorf("unknown entry kind %d", e.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Reset discards all accumulated entries and computed geometry.
func (p *Placement) Reset() {
	p.cells = nil
	p.growths = nil
	p.pins = nil
	p.invalidate()
	p.state = stateEmpty
}

// normalizedCells returns the accumulated cells with every growth
// endpoint and pin column materialized as a graph node: a column that
// falls strictly inside a cell, and is not already an endpoint of any
// cell, splits that cell in two with sizes proportional to the integer
// column distances.
func (p *Placement) normalizedCells() []Cell {
	cells := slices.Clone(p.cells)
	endpoint := make(map[int]bool, 2*len(cells))
	for _, c := range cells {
		endpoint[c.Start] = true
		endpoint[c.End] = true
	}

	var columns []int
	for _, g := range p.growths {
		columns = append(columns, g.Start, g.End)
	}
	for _, pin := range p.pins {
		columns = append(columns, pin.Node)
	}

	for _, col := range columns {
		if endpoint[col] {
			continue
		}
		for i := 0; i < len(cells); i++ {
			c := cells[i]
			if col <= c.Start || col >= c.End {
				continue
			}
			frac := float64(col-c.Start) / float64(c.End-c.Start)
			head := Cell{Start: c.Start, End: col, Size: c.Size * frac}
			tail := Cell{Start: col, End: c.End, Size: c.Size - head.Size}
			cells[i] = head
			cells = slices.Insert(cells, i+1, tail)
			i++ // the tail cannot contain col again
		}
		endpoint[col] = true
	}
	return cells
}

// DesiredGeometry rebuilds the resolver from all accumulated entries,
// computes minimum positions anchored at zero, and returns the
// resulting extent re-centered on the origin. The minimum size is
// recorded for later distribution by [Placement.CalculatePositions].
func (p *Placement) DesiredGeometry() (geom.Range, error) {
	cells := p.normalizedCells()
	constraints := make([]Constraint[int], len(cells))
	for i, c := range cells {
		constraints[i] = Constraint[int]{Start: c.Start, End: c.End, MinSize: c.Size}
	}
	r, err := NewResolver(constraints)
	if err != nil {
		return geom.NoneRange(), fmt.Errorf("build constraint graph: %w", err)
	}
	r.SetLogger(p.logger)
	for _, g := range p.growths {
		r.ApplyGrowth(g.Start, g.End, g.Factor)
	}
	for _, pin := range p.pins {
		if err := r.ForceNode(pin.Node, pin.Position); err != nil {
			p.logger.Warn("pin references a column outside the constraint graph", "column", pin.Node, "position", pin.Position)
		}
	}
	r.PlaceRoots(0)
	r.AssignMinPositions()
	bounds := r.FindBounds()

	p.resolver = r
	p.minSize = bounds.Size()
	p.size = p.minSize
	p.desired = bounds.Sub(p.minSize * 0.5)
	p.state = stateDesired
	return p.desired, nil
}

// CalculatePositions distributes an allocated size over the axis and
// resolves final positions. expansion in [0, 1] controls how much of
// the extra space beyond the minimum is fed into elastic links; the
// rest is left as margin outside the content. Roots are re-anchored at
// center - final/2 and the edge nodes pinned to both bounds before the
// energy solve.
//
// A singular energy system is not an error: positions fall back to the
// minimum-size sweep, a warning is logged, and [Placement.Degraded]
// reports true until the next call.
func (p *Placement) CalculatePositions(size, center, expansion float64) error {
	if p.state < stateDesired {
		if _, err := p.DesiredGeometry(); err != nil {
			return err
		}
	}
	expansion = min(max(expansion, 0), 1)

	extra := size - p.minSize
	final := p.minSize + expansion*extra
	low := center - final*0.5
	high := center + final*0.5

	r := p.resolver
	r.ClearPlacements()
	r.PlaceRoots(low)
	r.AssignMinPositions()
	lows, highs := r.EdgeNodes(edgeTolerance)
	r.PlaceEdgeNodes(lows, highs, low, high)

	p.degraded = false
	if err := r.MinimizeEnergy(); err != nil {
		p.degraded = true
		p.logger.Warn("energy minimization failed, keeping minimum-size positions", "err", err)
	}
	p.size = r.FindBounds().Size()
	p.state = stateFinal
	return nil
}

// Degraded reports whether the most recent [Placement.CalculatePositions]
// fell back to minimum-size positions because the energy system could
// not be solved.
func (p *Placement) Degraded() bool {
	return p.degraded
}

// Span returns the resolved coordinates of two columns. Both must
// exist in the resolved graph, else a wrapped [ErrUnknownNode] is
// returned; querying before any geometry has been computed is a
// wrapped [ErrNotResolved].
func (p *Placement) Span(start, end int) (float64, float64, error) {
	if p.resolver == nil {
		return 0, 0, fmt.Errorf("span %d -> %d: %w", start, end, ErrNotResolved)
	}
	lo, ok := p.resolver.Position(start)
	if !ok {
		return 0, 0, fmt.Errorf("span start %d: %w", start, ErrUnknownNode)
	}
	hi, ok := p.resolver.Position(end)
	if !ok {
		return 0, 0, fmt.Errorf("span end %d: %w", end, ErrUnknownNode)
	}
	return lo, hi, nil
}

// Position returns the resolved coordinate of one column, if known.
func (p *Placement) Position(node int) (float64, bool) {
	if p.resolver == nil {
		return 0, false
	}
	return p.resolver.Position(node)
}

// Size returns the extent spanned by the most recent placement pass.
func (p *Placement) Size() float64 {
	return p.size
}

// MinSize returns the minimum extent recorded by the most recent
// desired-geometry pass.
func (p *Placement) MinSize() float64 {
	return p.minSize
}

// Columns returns all resolved columns in ascending order.
func (p *Placement) Columns() []int {
	if p.resolver == nil {
		return nil
	}
	cols := p.resolver.Nodes()
	slices.Sort(cols)
	return cols
}

// Positions returns every resolved column paired with its coordinate,
// in ascending column order.
func (p *Placement) Positions() []NodePosition {
	var out []NodePosition
	for _, col := range p.Columns() {
		if pos, ok := p.resolver.Position(col); ok {
			out = append(out, NodePosition{Node: col, Position: pos})
		}
	}
	return out
}

// Constraints returns a snapshot of the resolved links, for inspection
// and rendering. It is nil before any geometry has been computed.
func (p *Placement) Constraints() []Constraint[int] {
	if p.resolver == nil {
		return nil
	}
	return p.resolver.Constraints()
}
