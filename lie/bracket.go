// Package lie: bracket dispatch, coercion, and the category-level
// predicates and stubs (abelian, ideal, subalgebra, killing form, ...).

package lie

import (
	"fmt"
	"math/big"
)

// Bracket returns the Lie bracket [lhs, rhs] relative to the algebra self,
// dispatching on the operand kinds:
//
//   - both operands are algebras → their product space (the sub-Lie-algebra
//     spanned by all pairwise brackets of generators);
//   - exactly one operand is an algebra → the ideal of that algebra
//     generated by the other (element) operand;
//   - neither is an algebra → both are coerced into self and bracketed,
//     with the edge cases [x,0] = [0,x] = 0.
//
// Operands that are not algebras may be: an Element of self, nil (the zero
// element), or an exactly-zero *big.Rat / int. Anything else fails with
// ErrCoercion. Missing product-space/ideal capabilities surface as
// ErrNotSupported.
func Bracket(self Algebra, lhs, rhs interface{}) (interface{}, error) {
	la, lok := lhs.(Algebra)
	ra, rok := rhs.(Algebra)
	switch {
	case lok && rok:
		ps, ok := la.(ProductSpacer)
		if !ok {
			return nil, fmt.Errorf("product space: %w", ErrNotSupported)
		}
		return ps.ProductSpace(ra)
	case lok:
		x, err := Coerce(la, rhs)
		if err != nil {
			return nil, err
		}
		return Ideal(la, x)
	case rok:
		x, err := Coerce(ra, lhs)
		if err != nil {
			return nil, err
		}
		return Ideal(ra, x)
	default:
		x, err := Coerce(self, lhs)
		if err != nil {
			return nil, err
		}
		y, err := Coerce(self, rhs)
		if err != nil {
			return nil, err
		}
		return x.Bracket(y)
	}
}

// Coerce converts v into an element of L. Supported inputs: an Element whose
// parent is L, nil (zero), and exactly-zero rational/integer scalars (the
// conventional spelling of the zero element). Everything else fails with
// ErrCoercion; elements of other algebras fail with ErrMismatchedParents.
func Coerce(L Algebra, v interface{}) (Element, error) {
	switch x := v.(type) {
	case nil:
		return L.Zero(), nil
	case Element:
		if x.Algebra() != L {
			return nil, ErrMismatchedParents
		}
		return x, nil
	case *big.Rat:
		if x == nil || x.Sign() == 0 {
			return L.Zero(), nil
		}
	case int:
		if x == 0 {
			return L.Zero(), nil
		}
	case int64:
		if x == 0 {
			return L.Zero(), nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrCoercion, v)
}

// IsAbelian reports whether L is abelian: [x, y] = 0 for all x, y. Decided
// on the generating set, which must be finite — otherwise the answer is not
// computable here and ErrInfiniteGenerators is returned.
func IsAbelian(L Algebra) (bool, error) {
	gens, err := L.Generators()
	if err != nil {
		return false, err
	}
	for _, x := range gens {
		for _, y := range gens {
			b, err := x.Bracket(y)
			if err != nil {
				return false, err
			}
			if !b.IsZero() {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsCommutative reports whether L is commutative, which for a Lie algebra
// means abelian.
func IsCommutative(L Algebra) (bool, error) { return IsAbelian(L) }

// IsIdeal reports whether self is an ideal of A. Always true for A == self;
// any other containment test is an acknowledged gap.
func IsIdeal(self, A Algebra) (bool, error) {
	if self == A {
		return true, nil
	}
	return false, fmt.Errorf("ideal containment: %w", ErrNotImplemented)
}

// Subalgebra returns the subalgebra of L generated by gens, delegating to
// the optional SubalgebraConstructor capability; ErrNotImplemented when the
// algebra supplies none.
func Subalgebra(L Algebra, gens ...Element) (Algebra, error) {
	if sc, ok := L.(SubalgebraConstructor); ok {
		return sc.Subalgebra(gens...)
	}
	return nil, fmt.Errorf("subalgebras: %w", ErrNotImplemented)
}

// Ideal returns the ideal of L generated by gens, delegating to the optional
// IdealConstructor capability; ErrNotImplemented when the algebra supplies
// none.
func Ideal(L Algebra, gens ...Element) (Algebra, error) {
	if ic, ok := L.(IdealConstructor); ok {
		return ic.Ideal(gens...)
	}
	return nil, fmt.Errorf("ideals: %w", ErrNotImplemented)
}

// KillingForm returns the Killing form of x and y, delegating to the
// optional KillingFormer capability; ErrNotSupported when absent.
func KillingForm(L Algebra, x, y Element) (*big.Rat, error) {
	if kf, ok := L.(KillingFormer); ok {
		return kf.KillingForm(x, y)
	}
	return nil, fmt.Errorf("killing form: %w", ErrNotSupported)
}

// IsSolvable reports solvability via the optional SolvabilityChecker
// capability; ErrNotSupported when absent. (Nilpotent algebras are always
// solvable, so a declared step settles the question.)
func IsSolvable(L Algebra) (bool, error) {
	if _, ok := NilpotencyStep(L); ok {
		return true, nil
	}
	if sc, ok := L.(SolvabilityChecker); ok {
		return sc.IsSolvable()
	}
	return false, fmt.Errorf("solvability: %w", ErrNotSupported)
}

// LieGroup is an acknowledged gap: associating a simply connected Lie group
// to an algebra is out of scope for every algebra shipped here.
func LieGroup(L Algebra, name string) (interface{}, error) {
	return nil, fmt.Errorf("lie group %q: %w", name, ErrNotImplemented)
}
