package grid

// rigidGrowth is the compliance assigned to links with no usable growth
// factor when the energy system is built. It is small enough that such
// links act as rigid rods: the solve keeps their gap at the minimum size
// instead of leaving it to float.
const rigidGrowth = 1e-10

// link is one edge of the constraint graph: a minimum separation between
// two nodes, optionally elastic. One link exists per unique (start, end)
// pair; repeated declarations are folded in through union.
type link struct {
	minSize float64
	growth  float64
	elastic bool
}

// union keeps the strictest of the existing and newly declared sizes.
func (l *link) union(size float64) {
	if size > l.minSize {
		l.minSize = size
	}
}

// setGrowth attaches an elasticity factor. Negative factors count as
// zero, which leaves the link rigid.
func (l *link) setGrowth(factor float64) {
	if factor < 0 {
		factor = 0
	}
	l.growth = factor
	l.elastic = true
}

// effectiveGrowth returns the compliance used for the link's spring:
// the declared factor, floored at rigidGrowth so inelastic and
// zero-growth links become near-rigid springs rather than singular rows.
func (l *link) effectiveGrowth() float64 {
	if !l.elastic || l.growth < rigidGrowth {
		return rigidGrowth
	}
	return l.growth
}
