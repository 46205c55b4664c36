package grid

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridplan/pkg/geom"
)

// linkKey identifies the unique link between a start and end node.
type linkKey[N comparable] struct {
	start N
	end   N
}

// Resolver owns the constraint graph for one axis: nodes, links, roots,
// and the topological order in which node positions can be derived.
//
// The graph is stored arena-style: an insertion-ordered id list plus
// maps keyed by identifier, with adjacency expressed as id lists. This
// keeps the graph trivially rebuildable each placement pass and gives
// every operation a deterministic iteration order.
//
// The zero value is not usable; use [NewResolver]. A Resolver is not
// safe for concurrent use.
type Resolver[N comparable] struct {
	ids       map[N]int
	order     []N // ids in insertion order; a node's index is its slot here
	nodes     map[N]*node[N]
	links     map[linkKey[N]]*link
	linkOrder []linkKey[N]
	roots     []N
	schedule  []N // topological resolution order

	logger *log.Logger
}

// NewResolver builds the constraint graph from the given constraints.
// Only Start, End, and MinSize are read; repeated declarations of the
// same (start, end) pair are folded through union, keeping the largest
// size. A constraint whose start equals its end yields a wrapped
// [ErrDegenerateLink]; a cyclic graph yields a wrapped [ErrCycle].
func NewResolver[N comparable](constraints []Constraint[N]) (*Resolver[N], error) {
	r := &Resolver[N]{
		ids:    make(map[N]int),
		nodes:  make(map[N]*node[N]),
		links:  make(map[linkKey[N]]*link),
		logger: log.New(io.Discard),
	}
	for _, c := range constraints {
		if c.Start == c.End {
			return nil, fmt.Errorf("constraint %v -> %v: %w", c.Start, c.End, ErrDegenerateLink)
		}
		key := linkKey[N]{start: c.Start, end: c.End}
		if l, ok := r.links[key]; ok {
			l.union(c.MinSize)
			continue
		}
		r.links[key] = &link{minSize: c.MinSize}
		r.linkOrder = append(r.linkOrder, key)
		r.intern(c.Start).succs = append(r.intern(c.Start).succs, c.End)
		r.intern(c.End).preds = append(r.intern(c.End).preds, c.Start)
	}
	for _, id := range r.order {
		if len(r.nodes[id].preds) == 0 {
			r.roots = append(r.roots, id)
		}
	}
	if err := r.buildSchedule(); err != nil {
		return nil, err
	}
	return r, nil
}

// intern returns the node for id, creating it at the next index if it
// has not been seen before.
func (r *Resolver[N]) intern(id N) *node[N] {
	if n, ok := r.nodes[id]; ok {
		return n
	}
	n := newNode[N](len(r.order))
	r.ids[id] = n.index
	r.order = append(r.order, id)
	r.nodes[id] = n
	return n
}

// buildSchedule computes the resolution order with Kahn's algorithm:
// nodes with no unresolved predecessors are appended, and each
// appended node releases its successors. Any residual means the graph
// has a cycle.
func (r *Resolver[N]) buildSchedule() error {
	remaining := make(map[N]int, len(r.order))
	var queue []N
	for _, id := range r.order {
		remaining[id] = len(r.nodes[id].preds)
		if remaining[id] == 0 {
			queue = append(queue, id)
		}
	}
	schedule := make([]N, 0, len(r.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		schedule = append(schedule, id)
		for _, succ := range r.nodes[id].succs {
			remaining[succ]--
			if remaining[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}
	if len(schedule) != len(r.order) {
		return fmt.Errorf("%d of %d nodes unresolvable: %w", len(r.order)-len(schedule), len(r.order), ErrCycle)
	}
	r.schedule = schedule
	return nil
}

// SetLogger routes the resolver's warnings to logger. The default
// discards them.
func (r *Resolver[N]) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// HasNode reports whether id is referenced by any constraint.
func (r *Resolver[N]) HasNode(id N) bool {
	_, ok := r.nodes[id]
	return ok
}

// Nodes returns all node identifiers in insertion order.
func (r *Resolver[N]) Nodes() []N {
	out := make([]N, len(r.order))
	copy(out, r.order)
	return out
}

// Roots returns the identifiers that are never the end of a link.
func (r *Resolver[N]) Roots() []N {
	out := make([]N, len(r.roots))
	copy(out, r.roots)
	return out
}

// Order returns the topological resolution order.
func (r *Resolver[N]) Order() []N {
	out := make([]N, len(r.schedule))
	copy(out, r.schedule)
	return out
}

// Constraints returns a snapshot of the resolved links, in the order
// their (start, end) pairs were first declared.
func (r *Resolver[N]) Constraints() []Constraint[N] {
	out := make([]Constraint[N], 0, len(r.linkOrder))
	for _, key := range r.linkOrder {
		l := r.links[key]
		out = append(out, Constraint[N]{
			Start:   key.start,
			End:     key.end,
			MinSize: l.minSize,
			Growth:  l.growth,
			Elastic: l.elastic,
		})
	}
	return out
}

// ApplyGrowth attaches an elasticity factor to every link on a path
// from start to end: the links whose both endpoints lie in the
// intersection of the nodes reachable from start and the nodes that
// can reach end. A reference to an absent node is benign; it is
// ignored with a warning.
func (r *Resolver[N]) ApplyGrowth(start, end N, factor float64) {
	if !r.HasNode(start) || !r.HasNode(end) {
		r.logger.Warn("growth references nodes outside the constraint graph", "start", start, "end", end, "factor", factor)
		return
	}
	forward := r.reach(start, func(n *node[N]) []N { return n.succs })
	backward := r.reach(end, func(n *node[N]) []N { return n.preds })

	touched := 0
	for _, id := range r.order {
		if !forward[id] || !backward[id] {
			continue
		}
		for _, succ := range r.nodes[id].succs {
			if forward[succ] && backward[succ] {
				r.links[linkKey[N]{start: id, end: succ}].setGrowth(factor)
				touched++
			}
		}
	}
	if touched == 0 {
		r.logger.Warn("growth matches no link", "start", start, "end", end, "factor", factor)
	}
}

// reach returns the set of identifiers reachable from id by repeatedly
// following next (successors for forward reach, predecessors for
// backward reach). The set includes id itself.
func (r *Resolver[N]) reach(id N, next func(*node[N]) []N) map[N]bool {
	seen := map[N]bool{id: true}
	stack := []N{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range next(r.nodes[cur]) {
			if !seen[nb] {
				seen[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return seen
}

// ForceNode hard-pins a node to an absolute position. The pin survives
// [Resolver.ClearPlacements] and wins over every computed position.
func (r *Resolver[N]) ForceNode(id N, pos float64) error {
	n, ok := r.nodes[id]
	if !ok {
		return fmt.Errorf("force node %v: %w", id, ErrUnknownNode)
	}
	n.forced.set(pos)
	return nil
}

// PlaceNode assigns a node's placed position for the current pass.
func (r *Resolver[N]) PlaceNode(id N, pos float64) error {
	n, ok := r.nodes[id]
	if !ok {
		return fmt.Errorf("place node %v: %w", id, ErrUnknownNode)
	}
	n.placed.set(pos)
	return nil
}

// ClearPlacements resets every node's placed and derived positions
// before a fresh placement pass. Forced positions are kept.
func (r *Resolver[N]) ClearPlacements() {
	for _, n := range r.nodes {
		n.placed.clear()
		n.derived.clear()
	}
}

// PlaceRoots assigns the anchor position to every root node.
func (r *Resolver[N]) PlaceRoots(anchor float64) {
	for _, id := range r.roots {
		r.nodes[id].placed.set(anchor)
	}
}

// AssignMinPositions derives every node's minimum position by a
// forward longest-path sweep over the resolution order: a pinned node
// keeps its pin, every other node ends up at the maximum of
// (predecessor position + link minimum size) over its predecessor
// links. Slack, if any, accumulates at non-root nodes.
func (r *Resolver[N]) AssignMinPositions() {
	for _, n := range r.nodes {
		n.derived.clear()
	}
	for _, id := range r.schedule {
		n := r.nodes[id]
		p, ok := n.pos()
		if !ok {
			// An unanchored root: sweep from zero.
			n.derived.set(0)
			p = 0
		} else {
			n.raiseTo(p)
		}
		for _, succ := range n.succs {
			l := r.links[linkKey[N]{start: id, end: succ}]
			r.nodes[succ].raiseTo(p + l.minSize)
		}
	}
}

// FindBounds returns the range spanned by all known node positions.
func (r *Resolver[N]) FindBounds() geom.Range {
	bounds := geom.NoneRange()
	for _, id := range r.order {
		if p, ok := r.nodes[id].pos(); ok {
			bounds = bounds.Include(p)
		}
	}
	return bounds
}

// EdgeNodes returns the identifiers sitting at the extremes of the
// current position range, within tolerance: the natural candidates to
// pin to the final allocated boundary.
func (r *Resolver[N]) EdgeNodes(tolerance float64) (lows, highs []N) {
	bounds := r.FindBounds()
	if bounds.IsNone() {
		return nil, nil
	}
	for _, id := range r.order {
		p, ok := r.nodes[id].pos()
		if !ok {
			continue
		}
		if p-bounds.Min <= tolerance {
			lows = append(lows, id)
		}
		if bounds.Max-p <= tolerance {
			highs = append(highs, id)
		}
	}
	return lows, highs
}

// PlaceEdgeNodes assigns the placed position of the extremal nodes to
// the allocated boundary values: lows to min, highs to max.
func (r *Resolver[N]) PlaceEdgeNodes(lows, highs []N, min, max float64) {
	for _, id := range lows {
		if n, ok := r.nodes[id]; ok {
			n.placed.set(min)
		}
	}
	for _, id := range highs {
		if n, ok := r.nodes[id]; ok {
			n.placed.set(max)
		}
	}
}

// MinimizeEnergy refines the derived positions by minimizing the total
// spring energy of the link network, subject to the pinned nodes.
//
// Every link contributes a spring: elastic links with their declared
// growth factor, inelastic and zero-growth links with a near-rigid
// default compliance that clamps their gap to the minimum size. Forced
// and placed nodes become identity rows; any node left with an
// all-zero row is pinned to its current position.
//
// Node positions are only overwritten when the solve succeeds; a
// singular system returns a wrapped [ErrSingular] and leaves the sweep
// positions intact.
func (r *Resolver[N]) MinimizeEnergy() error {
	count := len(r.order)
	if count == 0 {
		return nil
	}
	eqs := newEquationSet(count)
	for _, key := range r.linkOrder {
		l := r.links[key]
		eqs.addSpring(r.ids[key.start], r.ids[key.end], l.minSize, l.effectiveGrowth())
	}
	for _, id := range r.order {
		n := r.nodes[id]
		if n.isPinned() {
			p, _ := n.pos()
			eqs.forceValue(n.index, p)
		}
	}
	for i, id := range r.order {
		if eqs.rowIsZero(i) {
			p, _ := r.nodes[id].pos()
			r.logger.Debug("node unconstrained by any spring, pinning in place", "node", id, "position", p)
			eqs.forceValue(i, p)
		}
	}
	if err := eqs.solve(); err != nil {
		return fmt.Errorf("minimize energy: %w", err)
	}
	for i, v := range eqs.results() {
		r.nodes[r.order[i]].raiseTo(v)
	}
	return nil
}

// Position returns the resolved coordinate of a node, if known.
func (r *Resolver[N]) Position(id N) (float64, bool) {
	n, ok := r.nodes[id]
	if !ok {
		return 0, false
	}
	return n.pos()
}
