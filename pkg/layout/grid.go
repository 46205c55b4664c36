// Package layout composes two per-axis placement engines into a 2-D
// grid of rectangular regions.
//
// The two axes share no state, so the final solves run in parallel.
// A Grid itself is not safe for concurrent use; callers serialize
// access per instance.
package layout

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridplan/pkg/grid"
)

// Grid places rectangular areas by feeding their horizontal extents to
// an X axis engine and their vertical extents to a Y axis engine.
type Grid struct {
	x *grid.Placement
	y *grid.Placement

	// ExpandX and ExpandY control how much of the extra allocated
	// space each axis distributes into elastic links, in [0, 1].
	ExpandX float64
	ExpandY float64
}

// NewGrid returns an empty 2-D grid.
func NewGrid() *Grid {
	return &Grid{
		x: grid.NewPlacement(),
		y: grid.NewPlacement(),
	}
}

// SetLogger routes both axes' warnings to logger.
func (g *Grid) SetLogger(logger *log.Logger) {
	g.x.SetLogger(logger)
	g.y.SetLogger(logger)
}

// X returns the horizontal axis engine.
func (g *Grid) X() *grid.Placement { return g.x }

// Y returns the vertical axis engine.
func (g *Grid) Y() *grid.Placement { return g.y }

// AddArea declares a rectangular region spanning grid columns
// [x0, x1) and rows [y0, y1) with a minimum width and height.
func (g *Grid) AddArea(x0, y0, x1, y1 int, width, height float64) error {
	if err := g.x.AddCell(x0, x1, width); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := g.y.AddCell(y0, y1, height); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// AddCellData appends raw width/growth/pin entries per axis. Either
// slice may be nil.
func (g *Grid) AddCellData(xs, ys []grid.Entry) error {
	if err := g.x.AddData(xs...); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := g.y.AddData(ys...); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// Desired computes both axes' desired geometry and returns the
// minimum width and height the whole grid wants.
func (g *Grid) Desired() (width, height float64, err error) {
	xr, err := g.x.DesiredGeometry()
	if err != nil {
		return 0, 0, fmt.Errorf("x axis: %w", err)
	}
	yr, err := g.y.DesiredGeometry()
	if err != nil {
		return 0, 0, fmt.Errorf("y axis: %w", err)
	}
	return xr.Size(), yr.Size(), nil
}

// Layout distributes the allocated width and height centered on
// (cx, cy). The two axes are solved in parallel; they own disjoint
// graphs and do not communicate.
func (g *Grid) Layout(width, height, cx, cy float64) error {
	var wg sync.WaitGroup
	var xErr, yErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		xErr = g.x.CalculatePositions(width, cx, g.ExpandX)
	}()
	go func() {
		defer wg.Done()
		yErr = g.y.CalculatePositions(height, cy, g.ExpandY)
	}()
	wg.Wait()

	if xErr != nil {
		return fmt.Errorf("x axis: %w", xErr)
	}
	if yErr != nil {
		return fmt.Errorf("y axis: %w", yErr)
	}
	return nil
}

// Area returns the placed rectangle of the region spanning grid
// columns [x0, x1) and rows [y0, y1). All four references must exist
// in the resolved graphs.
func (g *Grid) Area(x0, y0, x1, y1 int) (Rect, error) {
	left, right, err := g.x.Span(x0, x1)
	if err != nil {
		return Rect{}, fmt.Errorf("x axis: %w", err)
	}
	bottom, top, err := g.y.Span(y0, y1)
	if err != nil {
		return Rect{}, fmt.Errorf("y axis: %w", err)
	}
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}, nil
}

// Size returns the extents of the most recent layout pass.
func (g *Grid) Size() (width, height float64) {
	return g.x.Size(), g.y.Size()
}
