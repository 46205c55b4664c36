package io

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridplan/pkg/grid"
)

// Spec is the TOML representation of one axis's constraint data.
type Spec struct {
	Cells []CellSpec `toml:"cell"`
	Grows []GrowSpec `toml:"grow"`
	Pins  []PinSpec  `toml:"pin"`
	Frame FrameSpec  `toml:"frame"`
}

// CellSpec declares a minimum size between two columns.
type CellSpec struct {
	Start int     `toml:"start"`
	End   int     `toml:"end"`
	Size  float64 `toml:"size"`
}

// GrowSpec declares elasticity for the span between two columns.
type GrowSpec struct {
	Start  int     `toml:"start"`
	End    int     `toml:"end"`
	Factor float64 `toml:"factor"`
}

// PinSpec pins a column to an absolute coordinate.
type PinSpec struct {
	Node     int     `toml:"node"`
	Position float64 `toml:"position"`
}

// FrameSpec describes the allocation to solve for. A nil Size means
// "solve at the desired minimum".
type FrameSpec struct {
	Size      *float64 `toml:"size"`
	Center    float64  `toml:"center"`
	Expansion float64  `toml:"expansion"`
}

// ParseSpec decodes a TOML axis spec.
func ParseSpec(data []byte) (*Spec, error) {
	var s Spec
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode spec: %w", err)
	}
	return &s, nil
}

// LoadSpec reads and decodes the TOML axis spec at path.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Entries converts the spec's cells, growths, and pins into engine
// entries, in declaration order.
func (s *Spec) Entries() []grid.Entry {
	entries := make([]grid.Entry, 0, len(s.Cells)+len(s.Grows)+len(s.Pins))
	for _, c := range s.Cells {
		entries = append(entries, grid.Width(c.Start, c.End, c.Size))
	}
	for _, g := range s.Grows {
		entries = append(entries, grid.Grow(g.Start, g.End, g.Factor))
	}
	for _, p := range s.Pins {
		entries = append(entries, grid.Place(p.Node, p.Position))
	}
	return entries
}

// Placement builds a fresh placement loaded with the spec's entries.
func (s *Spec) Placement() (*grid.Placement, error) {
	p := grid.NewPlacement()
	if err := p.AddData(s.Entries()...); err != nil {
		return nil, fmt.Errorf("apply spec entries: %w", err)
	}
	return p, nil
}
