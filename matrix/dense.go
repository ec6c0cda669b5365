// Package matrix: the Dense type — storage, constructors, indexers and
// structural helpers. Kernels (Add/Mul/RREF/...) live in sibling files.

package matrix

import (
	"fmt"
	"strings"

	"github.com/cartanlib/cartan/ring"
)

// Dense is a row-major dense matrix over a single finite field.
// The zero value is not usable; construct via NewDense / NewDenseFromRows /
// Identity. A Dense is mutated only through Set; all kernels allocate.
type Dense struct {
	field *ring.GF
	rows  int
	cols  int
	data  []uint64 // len rows*cols, entry (i,j) at i*cols+j
}

// NewDense allocates a rows×cols zero matrix over f.
// Complexity: O(rows·cols).
func NewDense(f *ring.GF, rows, cols int) (*Dense, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Dense{field: f, rows: rows, cols: cols, data: make([]uint64, rows*cols)}, nil
}

// NewDenseFromRows builds a matrix from explicit row slices.
// Rows must be non-empty, equal length, with every entry < f.Order().
func NewDenseFromRows(f *ring.GF, rows [][]uint64) (*Dense, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m, err := NewDense(f, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrBadShape, i, len(r), cols)
		}
		for j, v := range r {
			if v >= f.Order() {
				return nil, fmt.Errorf("%w: entry (%d,%d)=%d", ErrBadEntry, i, j, v)
			}
			m.data[i*cols+j] = v
		}
	}
	return m, nil
}

// Identity returns the n×n identity matrix over f.
func Identity(f *ring.GF, n int) (*Dense, error) {
	m, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = f.One()
	}
	return m, nil
}

// Field returns the field the entries live in.
func (m *Dense) Field() *ring.GF { return m.field }

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns entry (i, j), or ErrOutOfRange.
func (m *Dense) At(i, j int) (uint64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	return m.data[i*m.cols+j], nil
}

// Set assigns entry (i, j), or returns ErrOutOfRange / ErrBadEntry.
func (m *Dense) Set(i, j int, v uint64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	if v >= m.field.Order() {
		return fmt.Errorf("%w: %d", ErrBadEntry, v)
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]uint64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.rows)
	}
	out := make([]uint64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out, nil
}

// Clone returns a deep copy sharing no storage with m.
func (m *Dense) Clone() *Dense {
	out := &Dense{field: m.field, rows: m.rows, cols: m.cols, data: make([]uint64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports entry-wise equality. Matrices over fields of different
// order or characteristic are never equal.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if m.field.Order() != other.field.Order() ||
		m.field.Characteristic() != other.field.Characteristic() {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// String renders the matrix row by row, entries space-separated.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.cols+j])
		}
		b.WriteByte(']')
		if i+1 < m.rows {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sameField verifies two operands share a field; helper for binary kernels.
func sameField(a, b *Dense) error {
	if a.field != b.field &&
		(a.field.Order() != b.field.Order() ||
			a.field.Characteristic() != b.field.Characteristic()) {
		return ErrFieldMismatch
	}
	return nil
}
