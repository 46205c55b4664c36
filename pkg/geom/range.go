// Package geom provides the small geometric value types shared by the
// placement engine: one-dimensional ranges along a layout axis.
package geom

// Range is a closed interval [Min, Max] along one axis.
// The zero value is the empty range at the origin; use [NoneRange] for
// a range that is explicitly absent.
type Range struct {
	Min, Max float64
}

// NewRange returns the range [min, max].
func NewRange(min, max float64) Range { return Range{Min: min, Max: max} }

// NoneRange returns the marker for "no range": Min > Max.
func NoneRange() Range { return Range{Min: 0, Max: -1} }

// IsNone reports whether the range is absent (Min > Max).
func (r Range) IsNone() bool { return r.Min > r.Max }

// Size returns the extent of the range, or 0 for an absent range.
func (r Range) Size() float64 {
	if r.IsNone() {
		return 0
	}
	return r.Max - r.Min
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 { return (r.Min + r.Max) / 2 }

// Union returns the smallest range containing both r and o.
// An absent operand acts as the identity.
func (r Range) Union(o Range) Range {
	if r.IsNone() {
		return o
	}
	if o.IsNone() {
		return r
	}
	if o.Min < r.Min {
		r.Min = o.Min
	}
	if o.Max > r.Max {
		r.Max = o.Max
	}
	return r
}

// Intersect returns the overlap of r and o, which may be absent.
func (r Range) Intersect(o Range) Range {
	if o.Min > r.Min {
		r.Min = o.Min
	}
	if o.Max < r.Max {
		r.Max = o.Max
	}
	return r
}

// Include extends the range to contain v. Including a value in an
// absent range yields the degenerate range [v, v].
func (r Range) Include(v float64) Range {
	if r.IsNone() {
		return Range{Min: v, Max: v}
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// Enlarge grows the range by d at both ends.
func (r Range) Enlarge(d float64) Range {
	return Range{Min: r.Min - d, Max: r.Max + d}
}

// Reduce shrinks the range by d at both ends.
func (r Range) Reduce(d float64) Range {
	return Range{Min: r.Min + d, Max: r.Max - d}
}

// Add shifts both bounds up by d.
func (r Range) Add(d float64) Range {
	return Range{Min: r.Min + d, Max: r.Max + d}
}

// Sub shifts both bounds down by d.
func (r Range) Sub(d float64) Range {
	return Range{Min: r.Min - d, Max: r.Max - d}
}
