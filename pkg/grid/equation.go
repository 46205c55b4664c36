package grid

import "fmt"

// equationSet is the dense linear system for the minimum of the total
// Hooke's-law energy of a spring network.
//
// Each spring between positions a and b with natural length L and
// compliance g contributes ((b-a)-L)²/g to the total energy, which is
// minimal where every partial derivative is zero. Those derivatives are
// linear in the positions, so one equation per node suffices.
//
// The spring equations alone are translation-invariant (shifting every
// position by the same delta costs no energy), so at least one row must
// be replaced with an absolute constraint via forceValue before the
// system becomes solvable. Pinning both boundary nodes additionally
// stretches the network across a known span.
type equationSet struct {
	size   int
	matrix []float64
	rhs    []float64
}

func newEquationSet(size int) *equationSet {
	return &equationSet{
		size:   size,
		matrix: make([]float64, size*size),
		rhs:    make([]float64, size),
	}
}

// addSpring accumulates the energy-gradient coefficients of a spring
// between node rows start and end with natural length and compliance
// growth. Larger growth means an easier stretch; growth must be > 0.
func (eq *equationSet) addSpring(start, end int, length, growth float64) {
	size := eq.size
	k := 1 / growth

	eq.matrix[start*size+start] += k
	eq.matrix[start*size+end] -= k
	eq.rhs[start] -= k * length

	eq.matrix[end*size+start] -= k
	eq.matrix[end*size+end] += k
	eq.rhs[end] += k * length
}

// forceValue replaces row n with the identity constraint x_n = value.
func (eq *equationSet) forceValue(n int, value float64) {
	size := eq.size
	for i := 0; i < size; i++ {
		eq.matrix[n*size+i] = 0
	}
	eq.matrix[n*size+n] = 1
	eq.rhs[n] = value
}

// rowIsZero reports whether row n has no coefficients at all, meaning
// nothing constrains variable n yet.
func (eq *equationSet) rowIsZero(n int) bool {
	size := eq.size
	for i := 0; i < size; i++ {
		if eq.matrix[n*size+i] != 0 {
			return false
		}
	}
	return true
}

// solve inverts the matrix and multiplies the inverse by the right-hand
// side, leaving the solution in place of the right-hand side. A matrix
// that cannot be decomposed or inverted yields a wrapped ErrSingular.
func (eq *equationSet) solve() error {
	size := eq.size
	dec := newLUP(eq.matrix, size)
	if dec == nil {
		return fmt.Errorf("decompose %dx%d energy matrix: %w", size, size, ErrSingular)
	}
	if !dec.invert(eq.matrix) {
		return fmt.Errorf("invert %dx%d energy matrix: %w", size, size, ErrSingular)
	}
	solution := make([]float64, size)
	for n := 0; n < size; n++ {
		x := 0.0
		for j := 0; j < size; j++ {
			x += eq.matrix[n*size+j] * eq.rhs[j]
		}
		solution[n] = x
	}
	eq.rhs = solution
	return nil
}

// results returns the solved values ordered by node row.
func (eq *equationSet) results() []float64 {
	return eq.rhs
}
