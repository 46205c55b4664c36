// Package render exports a constraint graph as a Graphviz diagram.
//
// # Overview
//
// The placement engine's graph is easiest to debug visually: columns
// become graph nodes, minimum-size links become edges labeled with
// their size, and elastic links are drawn dashed with their growth
// factor appended. [ToDOT] emits the DOT source; [ToSVG] and [ToPNG]
// rasterize it through Graphviz.
//
// Rendering is a pure read-only consumer of the placement's constraint
// and position snapshots; it never mutates the placement.
package render
