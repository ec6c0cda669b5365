// Package matrix: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrNilField is returned when a constructor receives a nil *ring.GF.
	ErrNilField = errors.New("matrix: field is nil")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBadEntry is returned when an entry is not a canonical element of
	// the matrix's field (value >= field order).
	ErrBadEntry = errors.New("matrix: entry not in field")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or Mul with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrFieldMismatch indicates operands defined over different fields.
	ErrFieldMismatch = errors.New("matrix: operands over different fields")
)
