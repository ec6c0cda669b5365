// Package lie: the lift morphism into the universal enveloping algebra.
//
// The lift is constructed at most once per algebra instance (a memoized
// factory guarded by sync.Once — there is no global coercion registry) and
// registration is therefore idempotent: asking twice can never create a
// second morphism or a duplicate coercion path. Once built, LiftElement
// gives the "automatic coercion" surface: mixing Lie-algebra elements into
// enveloping-algebra arithmetic without explicit conversion calls.

package lie

import (
	"fmt"
	"sync"
)

// LiftMorphism is the natural structure-preserving map from a Lie algebra
// to its universal enveloping algebra: the Lie bracket of the domain
// corresponds to the commutator of the codomain. Immutable once built.
type LiftMorphism struct {
	domain   Algebra
	codomain AssociativeAlgebra
}

// Domain returns the Lie algebra the morphism lifts from.
func (m *LiftMorphism) Domain() Algebra { return m.domain }

// Codomain returns the universal enveloping algebra.
func (m *LiftMorphism) Codomain() AssociativeAlgebra { return m.codomain }

// Apply lifts x into the enveloping algebra, delegating to the element's
// own Lift capability.
func (m *LiftMorphism) Apply(x Element) (UEAElement, error) {
	if x == nil || x.Algebra() != m.domain {
		return nil, ErrMismatchedParents
	}
	lx, ok := x.(Liftable)
	if !ok {
		return nil, fmt.Errorf("element lift: %w", ErrNotSupported)
	}
	return lx.Lift()
}

// String renders the morphism as "Lift map from D to C".
func (m *LiftMorphism) String() string {
	return fmt.Sprintf("Lift map from %s to %s", m.domain, m.codomain)
}

// LiftCache provides the once-only lazy construction of an algebra's lift
// morphism. Concrete algebras embed it (by pointer receiver) and expose
//
//	func (L *Foo) LiftMorphism() (*lie.LiftMorphism, error) {
//	    return L.liftCache.Morphism(L)
//	}
//
// Recomputation would always yield the identical morphism, so the memo is
// purely a no-duplicate-registration guarantee.
type LiftCache struct {
	once sync.Once
	m    *LiftMorphism
	err  error
}

// Morphism returns the cached lift morphism of L, constructing it on first
// use via the algebra's UEAConstructor capability.
func (c *LiftCache) Morphism(L Algebra) (*LiftMorphism, error) {
	c.once.Do(func() {
		uc, ok := L.(UEAConstructor)
		if !ok {
			c.err = fmt.Errorf("universal enveloping algebra: %w", ErrNotSupported)
			return
		}
		codomain, err := uc.ConstructUEA()
		if err != nil {
			c.err = err
			return
		}
		c.m = &LiftMorphism{domain: L, codomain: codomain}
	})
	return c.m, c.err
}

// Lift returns the (cached) lift morphism of L. Algebras implementing
// Lifter get the memoized instance; a bare UEAConstructor still works but
// without the caching guarantee; everything else lacks the capability.
func Lift(L Algebra) (*LiftMorphism, error) {
	if lf, ok := L.(Lifter); ok {
		return lf.LiftMorphism()
	}
	if uc, ok := L.(UEAConstructor); ok {
		codomain, err := uc.ConstructUEA()
		if err != nil {
			return nil, err
		}
		return &LiftMorphism{domain: L, codomain: codomain}, nil
	}
	return nil, fmt.Errorf("universal enveloping algebra: %w", ErrNotSupported)
}

// UniversalEnvelopingAlgebra returns the codomain of L's lift morphism.
func UniversalEnvelopingAlgebra(L Algebra) (AssociativeAlgebra, error) {
	m, err := Lift(L)
	if err != nil {
		return nil, err
	}
	return m.Codomain(), nil
}

// LiftElement lifts x through its parent's (cached) morphism: the automatic
// coercion from Lie-algebra elements into enveloping-algebra arithmetic.
func LiftElement(x Element) (UEAElement, error) {
	if x == nil {
		return nil, ErrCoercion
	}
	m, err := Lift(x.Algebra())
	if err != nil {
		return nil, err
	}
	return m.Apply(x)
}
