// Package io reads axis specifications and writes solve results.
//
// # Spec Format
//
// An axis spec is a TOML file listing the raw constraint entries of
// one axis plus an optional frame describing the allocation to solve
// for:
//
//	[[cell]]
//	start = 0
//	end = 4
//	size = 4.0
//
//	[[grow]]
//	start = 2
//	end = 4
//	factor = 1.0
//
//	[[pin]]
//	node = 0
//	position = -3.0
//
//	[frame]
//	size = 8.0       # omit to solve at the desired minimum
//	center = 0.0
//	expansion = 1.0
//
// # Results
//
// A solved axis serializes to JSON as the final extent, the recorded
// minimum, the per-column positions, and whether the solver had to
// fall back to minimum-size positions.
package io
