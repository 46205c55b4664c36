package grid

// position is an optional coordinate. The zero value is "not set".
type position struct {
	value float64
	ok    bool
}

func (p *position) set(v float64) { p.value, p.ok = v, true }
func (p *position) clear()        { p.value, p.ok = 0, false }

// node is one vertex of the constraint graph. Adjacency is stored as
// identifier lists rather than pointers so the graph can be rebuilt
// from scratch each placement pass without ownership cycles.
type node[N comparable] struct {
	// index is the node's row in the energy equation set and its slot
	// in the resolver's insertion-ordered id list.
	index int

	// forced is a hard pin supplied by the caller; it wins over
	// everything else.
	forced position

	// placed is a boundary assignment made during a placement pass
	// (roots anchored at the low edge, edge nodes pinned to the
	// allocated bounds). Cleared between passes.
	placed position

	// derived is the position computed by the minimum sweep or the
	// energy solve.
	derived position

	// preds holds the start ids of links for which this node is the
	// end; succs holds the end ids of links for which it is the start.
	preds []N
	succs []N
}

func newNode[N comparable](index int) *node[N] {
	return &node[N]{index: index}
}

// isPinned reports whether the node has a forced or placed position.
func (n *node[N]) isPinned() bool {
	return n.forced.ok || n.placed.ok
}

// hasPosition reports whether any position is known for the node.
func (n *node[N]) hasPosition() bool {
	return n.forced.ok || n.placed.ok || n.derived.ok
}

// pos returns the node's position with precedence forced > placed >
// derived. The second result is false when no position is known.
func (n *node[N]) pos() (float64, bool) {
	switch {
	case n.forced.ok:
		return n.forced.value, true
	case n.placed.ok:
		return n.placed.value, true
	case n.derived.ok:
		return n.derived.value, true
	}
	return 0, false
}

// raiseTo moves the derived position up to p, keeping the larger of
// the current and new values. Pinned nodes snap to their pin instead:
// the sweep must not move a placed or forced node.
func (n *node[N]) raiseTo(p float64) {
	if n.isPinned() {
		v, _ := n.pos()
		n.derived.set(v)
		return
	}
	if !n.derived.ok || p > n.derived.value {
		n.derived.set(p)
	}
}
