// Package matrix: Gauss–Jordan elimination kernels — reduced row echelon
// form, rank and nullspace. All exact: the pivot test is "entry != 0",
// never an epsilon comparison.

package matrix

// RREF returns the reduced row echelon form of m together with the list of
// pivot columns, in ascending order. m itself is not mutated.
//
// Implementation:
//   - Stage 1: clone; walk columns left to right, find the first nonzero
//     entry at or below the current row, swap it up.
//   - Stage 2: scale the pivot row by the pivot's inverse, then eliminate
//     the pivot column from every other row.
//
// Complexity: O(rows²·cols) field operations.
func (m *Dense) RREF() (*Dense, []int, error) {
	r := m.Clone()
	f := r.field
	var pivots []int
	row := 0
	for col := 0; col < r.cols && row < r.rows; col++ {
		// locate pivot
		p := -1
		for i := row; i < r.rows; i++ {
			if r.data[i*r.cols+col] != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		r.swapRows(row, p)
		// normalize pivot row
		inv, err := f.Inv(r.data[row*r.cols+col])
		if err != nil {
			return nil, nil, err // unreachable: pivot is nonzero
		}
		for j := col; j < r.cols; j++ {
			r.data[row*r.cols+j] = f.Mul(inv, r.data[row*r.cols+j])
		}
		// eliminate column from all other rows
		for i := 0; i < r.rows; i++ {
			if i == row {
				continue
			}
			factor := r.data[i*r.cols+col]
			if factor == 0 {
				continue
			}
			for j := col; j < r.cols; j++ {
				r.data[i*r.cols+j] = f.Sub(r.data[i*r.cols+j],
					f.Mul(factor, r.data[row*r.cols+j]))
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return r, pivots, nil
}

// Rank returns the rank of m.
func (m *Dense) Rank() int {
	_, pivots, err := m.RREF()
	if err != nil {
		return 0 // unreachable; RREF cannot fail on a well-formed Dense
	}
	return len(pivots)
}

// NullspaceBasis returns a matrix whose rows form a basis of the right
// nullspace {x : m·xᵀ = 0}. A trivial nullspace yields (nil, nil).
//
// For a full-row-rank generator matrix G this is exactly the parity-check
// matrix H with H·Gᵀ = 0.
func (m *Dense) NullspaceBasis() (*Dense, error) {
	r, pivots, err := m.RREF()
	if err != nil {
		return nil, err
	}
	dim := m.cols - len(pivots)
	if dim == 0 {
		return nil, nil
	}
	isPivot := make([]bool, m.cols)
	for _, c := range pivots {
		isPivot[c] = true
	}
	out, err := NewDense(m.field, dim, m.cols)
	if err != nil {
		return nil, err
	}
	f := m.field
	k := 0
	for fc := 0; fc < m.cols; fc++ {
		if isPivot[fc] {
			continue
		}
		out.data[k*m.cols+fc] = f.One()
		for pr, pc := range pivots {
			// x[pc] = -R[pr][fc] makes row pr of R vanish on x
			out.data[k*m.cols+pc] = f.Neg(r.data[pr*r.cols+fc])
		}
		k++
	}
	return out, nil
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
