package grid

import "errors"

var (
	// ErrDegenerateLink is returned when a constraint names the same node
	// as both its start and its end. A link must connect two distinct nodes.
	ErrDegenerateLink = errors.New("link start and end must differ")

	// ErrUnknownNode is returned by [Placement.Span] when a queried node
	// identifier does not appear in the resolved constraint graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrCycle is returned when the constraint graph contains a cycle and
	// no resolution order exists. Constraints must form a DAG along the axis.
	ErrCycle = errors.New("constraint graph contains a cycle")

	// ErrNotResolved is returned by [Placement.Span] when no geometry has
	// been computed yet for the axis.
	ErrNotResolved = errors.New("placement has no resolved geometry")

	// ErrSingular is returned when the energy matrix cannot be decomposed
	// or inverted. This typically means the system is under-pinned: springs
	// alone are translation-invariant, so at least one position must be fixed.
	ErrSingular = errors.New("matrix is singular")
)
