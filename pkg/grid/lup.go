package grid

// lup is an LU decomposition with partial pivoting of a dense square
// matrix, stored row-major. L and U share the data slice: L has an
// implicit unit diagonal and occupies the strict lower triangle, U the
// diagonal and above. pivot[i] is the source row that must end up in
// row i when the permutation is undone, so P·M = L·U.
type lup struct {
	size  int
	data  []float64
	pivot []int
}

// newLUP decomposes a copy of matrix (size×size, row-major). It returns
// nil if a pivot column is entirely zero, which means the matrix is
// singular and cannot be decomposed.
func newLUP(matrix []float64, size int) *lup {
	data := make([]float64, len(matrix))
	copy(data, matrix)

	pivot := make([]int, size)
	for i := range pivot {
		pivot[i] = i
	}

	for d := 0; d < size-1; d++ {
		// Partial pivot: bring the row with the largest remaining
		// magnitude in column d to the diagonal.
		vMax, rMax := 0.0, -1
		for r := d; r < size; r++ {
			if t := abs(data[r*size+d]); t > vMax {
				vMax, rMax = t, r
			}
		}
		if rMax < 0 {
			return nil
		}
		if rMax != d {
			pivot[rMax], pivot[d] = pivot[d], pivot[rMax]
			for c := 0; c < size; c++ {
				data[rMax*size+c], data[d*size+c] = data[d*size+c], data[rMax*size+c]
			}
		}

		// Eliminate column d below the diagonal, storing the scale
		// factors in place as the L entries.
		for r := d + 1; r < size; r++ {
			scale := data[r*size+d] / data[d*size+d]
			data[r*size+d] = scale
			for c := d + 1; c < size; c++ {
				data[r*size+c] -= scale * data[d*size+c]
			}
		}
	}
	return &lup{size: size, data: data, pivot: pivot}
}

// invert writes the inverse of the decomposed matrix into result
// (size×size, row-major). It returns false if a diagonal of U is zero,
// in which case result is undefined.
func (l *lup) invert(result []float64) bool {
	size := l.size
	temp := make([]float64, len(l.data))
	if !l.solveColumns(temp) {
		return false
	}
	// temp holds, per row c, the solution of L·U·x = e_c. Scatter the
	// columns through the pivot vector to undo the row permutation.
	for c := 0; c < size; c++ {
		pc := l.pivot[c]
		for r := 0; r < size; r++ {
			result[r*size+pc] = temp[c*size+r]
		}
	}
	return true
}

// solveColumns solves L·U·x = e_c for every column c of the identity,
// storing each solution vector in row c of out.
func (l *lup) solveColumns(out []float64) bool {
	size := l.size
	for c := 0; c < size; c++ {
		// Forward substitution through unit-diagonal L: y(c) such that
		// L·y = e_c.
		for r := 0; r < size; r++ {
			out[c*size+r] = 0
		}
		out[c*size+c] = 1
		for r := 0; r < size; r++ {
			for k := r + 1; k < size; k++ {
				out[c*size+k] -= l.data[k*size+r] * out[c*size+r]
			}
		}

		// Backward substitution through U: x(c) such that U·x = y(c).
		for r := size - 1; r >= 0; r-- {
			scale := l.data[r*size+r]
			if scale == 0 {
				return false
			}
			out[c*size+r] /= scale
			xr := out[c*size+r]
			for i := 0; i < r; i++ {
				out[c*size+i] -= l.data[i*size+r] * xr
			}
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
