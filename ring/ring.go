// Package ring: the Ring descriptor interface and the rational field ℚ.
// This file declares what the rest of the module may ask of a base ring
// without committing to an element representation.

package ring

// Ring describes a base ring well enough for category bookkeeping and code
// validation: its characteristic, whether its element set is finite, and a
// printable name. Arithmetic lives on the concrete types (GF, *big.Rat).
type Ring interface {
	// Characteristic returns the ring characteristic (0 for ℚ, p for GF(p^m)).
	Characteristic() uint64

	// IsFinite reports whether the ring has finitely many elements.
	IsFinite() bool

	// String returns a short human-readable name, e.g. "Rational Field".
	String() string
}

// FiniteRing is a Ring with a known, finite number of elements.
type FiniteRing interface {
	Ring

	// Order returns the number of elements of the ring.
	Order() uint64
}

// Rationals is the descriptor for the field ℚ of rational numbers.
// Element arithmetic over ℚ is performed with math/big (*big.Rat) by the
// consuming packages; Rationals itself carries no state.
type Rationals struct{}

// Characteristic returns 0: ℚ has characteristic zero.
func (Rationals) Characteristic() uint64 { return 0 }

// IsFinite returns false: ℚ is infinite.
func (Rationals) IsFinite() bool { return false }

// String returns "Rational Field".
func (Rationals) String() string { return "Rational Field" }

// QQ is the canonical Rationals descriptor, for use as a base ring.
var QQ = Rationals{}
