package grid

import (
	"errors"
	"math"
	"testing"
)

func TestEquationSet_SingleSpring(t *testing.T) {
	eq := newEquationSet(2)
	eq.addSpring(0, 1, 2, 1)
	eq.forceValue(0, 0)

	if err := eq.solve(); err != nil {
		t.Fatalf("solve() error = %v", err)
	}
	got := eq.results()
	if math.Abs(got[0]-0) > 1e-9 || math.Abs(got[1]-2) > 1e-9 {
		t.Errorf("results() = %v, want [0 2]", got)
	}
}

func TestEquationSet_StretchedChain(t *testing.T) {
	// Three equal springs of natural length 1 stretched across [0, 6]:
	// the interior nodes settle at thirds of the span.
	eq := newEquationSet(4)
	eq.addSpring(0, 1, 1, 1)
	eq.addSpring(1, 2, 1, 1)
	eq.addSpring(2, 3, 1, 1)
	eq.forceValue(0, 0)
	eq.forceValue(3, 6)

	if err := eq.solve(); err != nil {
		t.Fatalf("solve() error = %v", err)
	}
	want := []float64{0, 2, 4, 6}
	for i, w := range want {
		if got := eq.results()[i]; math.Abs(got-w) > 1e-9 {
			t.Errorf("results()[%d] = %g, want %g", i, got, w)
		}
	}
}

func TestEquationSet_UnevenCompliance(t *testing.T) {
	// A compliant spring (growth 4) and a stiff one (growth 1) share
	// the stretch 4:1.
	eq := newEquationSet(3)
	eq.addSpring(0, 1, 1, 4)
	eq.addSpring(1, 2, 1, 1)
	eq.forceValue(0, 0)
	eq.forceValue(2, 7)

	if err := eq.solve(); err != nil {
		t.Fatalf("solve() error = %v", err)
	}
	if got := eq.results()[1]; math.Abs(got-5) > 1e-9 {
		t.Errorf("results()[1] = %g, want 5", got)
	}
}

func TestEquationSet_UnpinnedIsSingular(t *testing.T) {
	// Springs alone are translation-invariant; without a forced value
	// the matrix cannot be inverted.
	eq := newEquationSet(2)
	eq.addSpring(0, 1, 2, 1)

	err := eq.solve()
	if !errors.Is(err, ErrSingular) {
		t.Errorf("solve() error = %v, want ErrSingular", err)
	}
}

func TestEquationSet_RowIsZero(t *testing.T) {
	eq := newEquationSet(3)
	eq.addSpring(0, 1, 2, 1)

	if eq.rowIsZero(0) {
		t.Error("rowIsZero(0) = true, want false")
	}
	if !eq.rowIsZero(2) {
		t.Error("rowIsZero(2) = false, want true")
	}
	eq.forceValue(2, 5)
	if eq.rowIsZero(2) {
		t.Error("rowIsZero(2) = true after forceValue, want false")
	}
}
