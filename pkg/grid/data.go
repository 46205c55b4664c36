package grid

// EntryKind distinguishes the three kinds of raw constraint data an axis
// accumulates before solving.
type EntryKind int

const (
	// EntryWidth declares a minimum distance between two columns.
	EntryWidth EntryKind = iota
	// EntryGrowth declares that the gap between two columns may stretch.
	EntryGrowth
	// EntryPlace pins a single column to an absolute coordinate.
	EntryPlace
)

// Entry is one raw piece of constraint data for an axis. Use the
// [Width], [Grow], and [Place] constructors rather than filling in the
// struct directly; for EntryPlace entries only Start (the column) and
// Value (the coordinate) are meaningful.
type Entry struct {
	Kind  EntryKind
	Start int
	End   int
	Value float64
}

// Width returns an entry declaring a minimum size between two columns.
func Width(start, end int, size float64) Entry {
	return Entry{Kind: EntryWidth, Start: start, End: end, Value: size}
}

// Grow returns an entry declaring a growth factor for the span between
// two columns. Larger factors stretch more readily when extra space is
// distributed.
func Grow(start, end int, factor float64) Entry {
	return Entry{Kind: EntryGrowth, Start: start, End: end, Value: factor}
}

// Place returns an entry pinning a column to an absolute coordinate.
func Place(node int, position float64) Entry {
	return Entry{Kind: EntryPlace, Start: node, Value: position}
}

// Cell is an accumulated minimum-size request between two columns.
// Multiple cells for the same column pair are legal; the strictest
// (largest) size wins when the constraint graph is built.
type Cell struct {
	Start int
	End   int
	Size  float64
}

// Growth is an accumulated elasticity request for the span between two
// columns.
type Growth struct {
	Start  int
	End    int
	Factor float64
}

// Pin is an accumulated absolute placement request for one column.
type Pin struct {
	Node     int
	Position float64
}

// NodePosition pairs a column with its resolved coordinate.
type NodePosition struct {
	Node     int
	Position float64
}

// Constraint describes one resolved link of a constraint graph: the
// minimum separation between Start and End, and the elasticity attached
// to it, if any. It is both the input to [NewResolver] (only Start, End,
// and MinSize are read) and the snapshot returned by
// [Placement.Constraints] for inspection and rendering.
type Constraint[N comparable] struct {
	Start   N
	End     N
	MinSize float64
	Growth  float64
	Elastic bool
}
