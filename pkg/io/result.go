package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridplan/pkg/grid"
)

// Result is the JSON representation of a solved axis.
type Result struct {
	Size      float64          `json:"size"`
	MinSize   float64          `json:"min_size"`
	Degraded  bool             `json:"degraded,omitempty"`
	Positions []ResultPosition `json:"positions"`
}

// ResultPosition pairs a column with its resolved coordinate.
type ResultPosition struct {
	Node     int     `json:"node"`
	Position float64 `json:"position"`
}

// NewResult snapshots a solved placement.
func NewResult(p *grid.Placement) Result {
	positions := p.Positions()
	out := Result{
		Size:      p.Size(),
		MinSize:   p.MinSize(),
		Degraded:  p.Degraded(),
		Positions: make([]ResultPosition, len(positions)),
	}
	for i, np := range positions {
		out.Positions[i] = ResultPosition{Node: np.Node, Position: np.Position}
	}
	return out
}

// WriteJSON encodes a result as indented JSON and writes it to w.
func WriteJSON(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// ExportJSON writes a result to the file at path.
func ExportJSON(res Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(res, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
