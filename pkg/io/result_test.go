package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridplan/pkg/grid"
)

func solvedPlacement(t *testing.T) *grid.Placement {
	t.Helper()
	p := grid.NewPlacement()
	if err := p.AddData(grid.Width(0, 4, 4), grid.Width(4, 6, 2)); err != nil {
		t.Fatalf("AddData() error = %v", err)
	}
	if err := p.CalculatePositions(0, 0, 0); err != nil {
		t.Fatalf("CalculatePositions() error = %v", err)
	}
	return p
}

func TestNewResult(t *testing.T) {
	res := NewResult(solvedPlacement(t))

	if res.Size != 6 || res.MinSize != 6 {
		t.Errorf("Size/MinSize = %g/%g, want 6/6", res.Size, res.MinSize)
	}
	if res.Degraded {
		t.Error("Degraded = true, want false")
	}
	if len(res.Positions) != 3 {
		t.Fatalf("len(Positions) = %d, want 3", len(res.Positions))
	}
	if res.Positions[0] != (ResultPosition{Node: 0, Position: -3}) {
		t.Errorf("Positions[0] = %+v, want {0 -3}", res.Positions[0])
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	res := NewResult(solvedPlacement(t))

	var buf bytes.Buffer
	if err := WriteJSON(res, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"min_size": 6`) {
		t.Errorf("WriteJSON() output missing min_size:\n%s", buf.String())
	}

	var back Result
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Size != res.Size || len(back.Positions) != len(res.Positions) {
		t.Errorf("round trip = %+v, want %+v", back, res)
	}
}

func TestExportJSON(t *testing.T) {
	res := NewResult(solvedPlacement(t))
	path := filepath.Join(t.TempDir(), "result.json")

	if err := ExportJSON(res, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Size != res.Size {
		t.Errorf("Size = %g after export, want %g", back.Size, res.Size)
	}
}
