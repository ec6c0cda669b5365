// Package matrix: elementwise and multiplicative kernels.
// Fail-fast validation, deterministic loop order, fresh result allocation.

package matrix

// Add returns m + other. Shapes and fields must match.
// Complexity: O(rows·cols).
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if other == nil {
		return nil, ErrNilField
	}
	if err := sameField(m, other); err != nil {
		return nil, err
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] = m.field.Add(m.data[i], other.data[i])
	}
	return out, nil
}

// ScalarMul returns c·m for a field element c.
func (m *Dense) ScalarMul(c uint64) (*Dense, error) {
	if c >= m.field.Order() {
		return nil, ErrBadEntry
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] = m.field.Mul(c, m.data[i])
	}
	return out, nil
}

// Mul returns the matrix product m · other (m.Cols must equal other.Rows).
// Complexity: O(rows·cols·inner) field multiplications.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if other == nil {
		return nil, ErrNilField
	}
	if err := sameField(m, other); err != nil {
		return nil, err
	}
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(m.field, m.rows, other.cols)
	if err != nil {
		return nil, err
	}
	f := m.field
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				idx := i*out.cols + j
				out.data[idx] = f.Add(out.data[idx], f.Mul(a, other.data[k*other.cols+j]))
			}
		}
	}
	return out, nil
}

// Transpose returns a fresh transposed copy of m.
func (m *Dense) Transpose() *Dense {
	out := &Dense{field: m.field, rows: m.cols, cols: m.rows, data: make([]uint64, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v (len(v) must equal Cols).
func (m *Dense) MulVec(v []uint64) ([]uint64, error) {
	if len(v) != m.cols {
		return nil, ErrDimensionMismatch
	}
	f := m.field
	for _, x := range v {
		if x >= f.Order() {
			return nil, ErrBadEntry
		}
	}
	out := make([]uint64, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc uint64
		for j := 0; j < m.cols; j++ {
			acc = f.Add(acc, f.Mul(m.data[i*m.cols+j], v[j]))
		}
		out[i] = acc
	}
	return out, nil
}

// VecMul returns the vector-matrix product v·m (len(v) must equal Rows).
// This is the codeword map msg ↦ msg·G used by generator-matrix encoders.
func (m *Dense) VecMul(v []uint64) ([]uint64, error) {
	if len(v) != m.rows {
		return nil, ErrDimensionMismatch
	}
	f := m.field
	for _, x := range v {
		if x >= f.Order() {
			return nil, ErrBadEntry
		}
	}
	out := make([]uint64, m.cols)
	for i := 0; i < m.rows; i++ {
		if v[i] == 0 {
			continue
		}
		for j := 0; j < m.cols; j++ {
			out[j] = f.Add(out[j], f.Mul(v[i], m.data[i*m.cols+j]))
		}
	}
	return out, nil
}
