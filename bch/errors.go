// Package bch: sentinel error set (unified, consistent).
// Callers and tests match with errors.Is; coercion and parent mismatches
// propagate unchanged from the lie package.

package bch

import "errors"

var (
	// ErrPrecisionRequired is returned by Log when the algebra is not known
	// to be nilpotent and no precision was chosen: the series is infinite
	// and the truncation depth is the caller's decision.
	ErrPrecisionRequired = errors.New("bch: the Lie algebra is not known to be nilpotent, so a precision must be specified")

	// ErrNoRationalCoercion is returned when the base ring cannot absorb the
	// rational series coefficients (nonzero characteristic).
	ErrNoRationalCoercion = errors.New("bch: base ring does not admit rational coefficients")
)
