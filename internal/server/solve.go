package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridplan/pkg/grid"
	gridio "github.com/matzehuels/gridplan/pkg/io"
	"github.com/matzehuels/gridplan/pkg/observability"
)

// solveRequest is the JSON body of POST /v1/solve: one axis's entries
// plus the allocation to solve for.
type solveRequest struct {
	Cells []gridio.CellSpec `json:"cells"`
	Grows []gridio.GrowSpec `json:"growth,omitempty"`
	Pins  []gridio.PinSpec  `json:"pins,omitempty"`

	// Size is the allocated extent; nil solves at the desired minimum.
	Size      *float64 `json:"size"`
	Center    float64  `json:"center"`
	Expansion float64  `json:"expansion"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleSolve(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
			return
		}
		if len(req.Cells) == 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "at least one cell is required"})
			return
		}

		spec := gridio.Spec{Cells: req.Cells, Grows: req.Grows, Pins: req.Pins}
		p, err := spec.Placement()
		if err != nil {
			writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
			return
		}
		p.SetLogger(logger)

		desired, err := p.DesiredGeometry()
		if err != nil {
			writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
			return
		}
		size := desired.Size()
		if req.Size != nil {
			size = *req.Size
		}

		columns := len(p.Columns())
		start := time.Now()
		observability.Solver().OnSolveStart(r.Context(), columns)
		err = p.CalculatePositions(size, req.Center, req.Expansion)
		observability.Solver().OnSolveComplete(r.Context(), columns, time.Since(start), p.Degraded(), err)
		if err != nil {
			writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, gridio.NewResult(p))
	}
}

// statusFor maps engine errors onto HTTP statuses: caller mistakes and
// structural problems in the submitted constraints are 400s, anything
// else a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, grid.ErrDegenerateLink),
		errors.Is(err, grid.ErrUnknownNode),
		errors.Is(err, grid.ErrCycle):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
