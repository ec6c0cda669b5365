// Package lie: the Algebra/Element contracts and the optional capability
// interfaces concrete Lie algebras may implement. Required behavior lives on
// Algebra and Element; everything else is opt-in and discovered by type
// assertion, with ErrNotSupported surfacing when a capability is absent.

package lie

import (
	"math/big"

	"github.com/cartanlib/cartan/ring"
)

// Element is an element of a Lie algebra. Every element belongs to exactly
// one algebra (its parent); binary operations require equal parents and
// return ErrMismatchedParents otherwise.
type Element interface {
	// Algebra returns the parent algebra.
	Algebra() Algebra

	// Add returns self + other.
	Add(other Element) (Element, error)

	// ScalarMul returns c·self for a rational scalar c.
	ScalarMul(c *big.Rat) Element

	// Bracket returns the Lie bracket [self, other].
	Bracket(other Element) (Element, error)

	// IsZero reports whether self is the zero element.
	IsZero() bool

	// Equal reports exact equality; elements of different parents are
	// never equal.
	Equal(other Element) bool

	// String renders the element, e.g. "2*p1 + 1/2*z".
	String() string
}

// Algebra is a Lie algebra instance over a base ring.
type Algebra interface {
	// BaseRing returns the base ring descriptor.
	BaseRing() ring.Ring

	// Zero returns the zero element.
	Zero() Element

	// Generators returns a finite generating set, or ErrInfiniteGenerators
	// when the generating set is not known to be finite.
	Generators() ([]Element, error)

	// SomeElements returns a small representative sample used by the law
	// checkers. Never empty for a usable algebra.
	SomeElements() []Element

	// String returns a human-readable description of the algebra.
	String() string
}

// Nilpotent is implemented by algebras that may be known nilpotent.
// Step returns the nilpotency step s >= 1 (the smallest bound on bracket
// nesting before results vanish), or 0 when the algebra is not known to be
// nilpotent. Use NilpotencyStep to interrogate an arbitrary Algebra.
type Nilpotent interface {
	Step() int
}

// FiniteDimensional is implemented by algebras of known finite dimension.
type FiniteDimensional interface {
	Dimension() int
}

// WithBasis is implemented by algebras with a distinguished (ordered) basis
// and a module isomorphism from coordinate vectors.
type WithBasis interface {
	// Basis returns the distinguished basis, in order.
	Basis() []Element

	// FromVector returns the element with the given coordinates relative to
	// the basis; ErrBadVector if the length does not match.
	FromVector(v []*big.Rat) (Element, error)
}

// Graded marks algebras carrying a grading. The axiom is recognized by the
// category algebra; no behavior is attached to it here.
type Graded interface {
	Graded()
}

// WithVector is the element-side capability matching WithBasis: the
// coordinate vector of the element relative to the parent's basis.
type WithVector interface {
	ToVector() ([]*big.Rat, error)
}

// Liftable is implemented by elements that know their own image under the
// canonical lift into the universal enveloping algebra.
type Liftable interface {
	Lift() (UEAElement, error)
}

// UEAConstructor is implemented by algebras that can construct their
// universal enveloping algebra. Concrete algebras implement this (and
// Liftable on their elements); Lift and UniversalEnvelopingAlgebra then set
// up the cached morphism automatically.
type UEAConstructor interface {
	ConstructUEA() (AssociativeAlgebra, error)
}

// Lifter is implemented by algebras exposing their cached lift morphism.
// Embed LiftCache to get the once-only construction for free.
type Lifter interface {
	LiftMorphism() (*LiftMorphism, error)
}

// ProductSpacer is the optional capability behind Bracket(L, M) for two
// algebras: the sub-Lie-algebra spanned by all pairwise brackets of
// generators.
type ProductSpacer interface {
	ProductSpace(other Algebra) (Algebra, error)
}

// IdealConstructor is the optional capability behind Bracket(L, x): the
// ideal of the algebra generated by the given elements.
type IdealConstructor interface {
	Ideal(gens ...Element) (Algebra, error)
}

// SubalgebraConstructor is the optional capability behind Subalgebra.
type SubalgebraConstructor interface {
	Subalgebra(gens ...Element) (Algebra, error)
}

// KillingFormer is the optional capability behind KillingForm.
type KillingFormer interface {
	KillingForm(x, y Element) (*big.Rat, error)
}

// SolvabilityChecker is the optional capability behind IsSolvable.
type SolvabilityChecker interface {
	IsSolvable() (bool, error)
}

// UEAElement is an element of an associative (enveloping) algebra. The Lie
// bracket of lifted elements corresponds to the commutator a·b − b·a.
type UEAElement interface {
	// Add returns self + other.
	Add(other UEAElement) (UEAElement, error)

	// ScalarMul returns c·self for a rational scalar c.
	ScalarMul(c *big.Rat) UEAElement

	// Mul returns the associative product self·other.
	Mul(other UEAElement) (UEAElement, error)

	// IsZero reports whether self is zero.
	IsZero() bool

	// Equal reports exact equality.
	Equal(other UEAElement) bool

	// String renders the element.
	String() string
}

// AssociativeAlgebra is the codomain contract of a lift morphism.
type AssociativeAlgebra interface {
	// BaseRing returns the base ring descriptor.
	BaseRing() ring.Ring

	// Zero returns the additive identity.
	Zero() UEAElement

	// One returns the multiplicative identity.
	One() UEAElement

	// String returns a human-readable description.
	String() string
}

// NilpotencyStep reports the nilpotency step of L when L is known nilpotent.
// The second return is false when L does not carry the capability or does
// not declare a positive step.
func NilpotencyStep(L Algebra) (int, bool) {
	n, ok := L.(Nilpotent)
	if !ok {
		return 0, false
	}
	s := n.Step()
	if s < 1 {
		return 0, false
	}
	return s, true
}

// IsNilpotent reports whether L is nilpotent. Algebras declaring a step are
// nilpotent by construction; anything else lacks the capability and returns
// ErrNotSupported rather than guessing.
func IsNilpotent(L Algebra) (bool, error) {
	if _, ok := NilpotencyStep(L); ok {
		return true, nil
	}
	return false, ErrNotSupported
}
