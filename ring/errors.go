// Package ring: sentinel error set.
// All constructors and fallible operations return these sentinels; tests
// match them via errors.Is. Panics are reserved for programmer errors
// (non-canonical field elements passed to arithmetic).

package ring

import "errors"

var (
	// ErrNotPrime is returned when a finite-field characteristic is not prime.
	ErrNotPrime = errors.New("ring: characteristic must be prime")

	// ErrBadDegree is returned when a finite-field extension degree is < 1.
	ErrBadDegree = errors.New("ring: extension degree must be >= 1")

	// ErrFieldTooLarge is returned when p^m exceeds the supported order bound.
	ErrFieldTooLarge = errors.New("ring: field order exceeds supported bound")

	// ErrDivisionByZero is returned by Inv and Div when the divisor is zero.
	ErrDivisionByZero = errors.New("ring: division by zero")
)
