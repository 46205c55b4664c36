// Package grid is the one-dimensional constraint-based placement
// engine behind the gridplan layout tool.
//
// # Overview
//
// Given a set of named reference points (columns) along an axis,
// minimum-distance constraints between pairs of columns, and optional
// elastic growth factors on some of those constraints, the engine
// computes concrete coordinates for every column: first at minimum
// size, later expanded to fill an arbitrary allocated extent. Two
// independent instances of the engine, one per axis, place rectangular
// regions on a 2-D grid (see the layout package).
//
// # Basic Usage
//
// Accumulate entries on a [Placement], compute the desired geometry,
// then distribute the actually allocated size:
//
//	p := grid.NewPlacement()
//	p.AddCell(0, 4, 4)
//	p.AddCell(4, 6, 2)
//	p.AddGrowth(2, 4, 1)
//
//	desired, err := p.DesiredGeometry()
//	if err != nil {
//	    return err
//	}
//	p.CalculatePositions(desired.Size()+2, 0, 1)
//	lo, hi, err := p.Span(0, 4)
//
// Multiple cells for the same column pair are legal; the strictest
// size wins. Growth and pin entries whose columns fall strictly inside
// an accumulated cell split that cell proportionally, so elasticity
// can be attached to part of a wider span.
//
// # Solving
//
// The [Resolver] builds a DAG from the entries (arena-style maps plus
// index adjacency), schedules it topologically, and derives minimum
// positions by a forward longest-path sweep. [Placement.CalculatePositions]
// then pins the extremal nodes to the allocated bounds and refines the
// interior by minimizing the Hooke's-law energy of the link network, a
// dense linear system solved by LU decomposition with partial
// pivoting. Inelastic links take part as near-rigid springs, which
// clamps their gaps to the declared minimum size.
//
// # Errors
//
// Caller mistakes (degenerate links, unknown columns) and structural
// problems (constraint cycles) surface as wrapped sentinel errors. A
// singular energy system is recoverable: positions fall back to the
// minimum-size sweep and the failure is reported through the attached
// logger and [Placement.Degraded], never as a panic.
//
// # Concurrency
//
// The engine is purely computational and does no locking. A Placement
// or Resolver must be confined to one goroutine; distinct instances
// share nothing and may be solved in parallel.
package grid
