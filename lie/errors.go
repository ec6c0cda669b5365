// Package lie: sentinel error set (unified, consistent).
// Every fallible operation returns one of these sentinels, possibly wrapped
// with fmt.Errorf("...: %w", Err...) for context; callers and tests match
// with errors.Is. Four kinds of failure:
//
//	validation           → ErrMismatchedParents, ErrCoercion,
//	                       ErrInfiniteGenerators, ErrBadStructureConstants,
//	                       ErrBadDimension, ErrBadVector
//	capability-missing   → ErrNotSupported
//	not-yet-implemented  → ErrNotImplemented
//	law violation        → ErrAntisymmetryViolated, ErrJacobiViolated,
//	                       ErrDistributivityViolated

package lie

import "errors"

var (
	// ErrMismatchedParents indicates operands belonging to different parents
	// (different Lie algebras, or different enveloping algebras).
	ErrMismatchedParents = errors.New("lie: operands belong to different parents")

	// ErrCoercion indicates a value that cannot be coerced into the algebra.
	// Only elements of the algebra itself and zero values coerce.
	ErrCoercion = errors.New("lie: cannot coerce value into the algebra")

	// ErrInfiniteGenerators is returned by IsAbelian (and friends) when the
	// generating set is not known to be finite. This is a documented
	// limitation, not a computed answer.
	ErrInfiniteGenerators = errors.New("lie: infinite number of generators")

	// ErrNotSupported marks an optional capability the concrete algebra does
	// not implement (universal enveloping algebra, killing form, module
	// isomorphism, solvability, lift).
	ErrNotSupported = errors.New("lie: not supported by this algebra")

	// ErrNotImplemented marks acknowledged gaps (subalgebras, ideals, Lie
	// groups); these fail with a fixed message and are not silently bypassed.
	ErrNotImplemented = errors.New("lie: not yet implemented")

	// ErrBadStructureConstants indicates structure constants that are
	// malformed or violate the Lie algebra axioms.
	ErrBadStructureConstants = errors.New("lie: bad structure constants")

	// ErrBadDimension indicates a non-positive rank or dimension argument.
	ErrBadDimension = errors.New("lie: dimension must be >= 1")

	// ErrBadVector indicates a coordinate vector of the wrong length.
	ErrBadVector = errors.New("lie: coordinate vector has wrong length")

	// ErrBaseRingMismatch indicates a join of categories over different
	// base rings or kinds.
	ErrBaseRingMismatch = errors.New("lie: categories are not joinable")

	// ErrAntisymmetryViolated reports a sampled element with [x,x] != 0.
	ErrAntisymmetryViolated = errors.New("lie: antisymmetry violated")

	// ErrJacobiViolated reports a sampled triple violating the Jacobi identity.
	ErrJacobiViolated = errors.New("lie: Jacobi identity violated")

	// ErrDistributivityViolated reports a sampled triple for which the
	// bracket fails to distribute over addition.
	ErrDistributivityViolated = errors.New("lie: bracket does not distribute over addition")
)
