package observability

import (
	"context"
	"testing"
	"time"
)

type recordingSolverHooks struct {
	starts    int
	completes int
	degraded  bool
}

func (r *recordingSolverHooks) OnSolveStart(context.Context, int) {
	r.starts++
}

func (r *recordingSolverHooks) OnSolveComplete(_ context.Context, _ int, _ time.Duration, degraded bool, _ error) {
	r.completes++
	r.degraded = degraded
}

type recordingHTTPHooks struct {
	requests  int
	responses int
	status    int
}

func (r *recordingHTTPHooks) OnRequest(context.Context, string, string) {
	r.requests++
}

func (r *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	r.responses++
	r.status = status
}

func TestSolverHooks_Registration(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingSolverHooks{}
	SetSolverHooks(rec)

	Solver().OnSolveStart(context.Background(), 4)
	Solver().OnSolveComplete(context.Background(), 4, time.Millisecond, true, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 and 1", rec.starts, rec.completes)
	}
	if !rec.degraded {
		t.Error("degraded flag not propagated")
	}
}

func TestHTTPHooks_Registration(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHTTPHooks{}
	SetHTTPHooks(rec)

	HTTP().OnRequest(context.Background(), "POST", "/v1/solve")
	HTTP().OnResponse(context.Background(), "POST", "/v1/solve", 200, time.Millisecond)

	if rec.requests != 1 || rec.responses != 1 {
		t.Errorf("requests = %d, responses = %d, want 1 and 1", rec.requests, rec.responses)
	}
	if rec.status != 200 {
		t.Errorf("status = %d, want 200", rec.status)
	}
}

func TestSetHooks_NilIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetSolverHooks(nil)
	SetHTTPHooks(nil)

	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("nil solver hooks replaced the no-op default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("nil HTTP hooks replaced the no-op default")
	}
}

func TestReset(t *testing.T) {
	SetSolverHooks(&recordingSolverHooks{})
	SetHTTPHooks(&recordingHTTPHooks{})
	Reset()

	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset did not restore no-op solver hooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset did not restore no-op HTTP hooks")
	}
}
