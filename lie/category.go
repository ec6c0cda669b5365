// Package lie: the category algebra. Categories are immutable descriptor
// values ("the class of all Lie algebras over R, with these axioms");
// axiom composition is a set join resolved at construction time, not a
// runtime class hierarchy.

package lie

import (
	"strings"

	"github.com/cartanlib/cartan/ring"
)

// Axiom is a structural tag refining a category.
type Axiom uint8

const (
	// AxNilpotent tags algebras whose iterated brackets vanish beyond a
	// finite step.
	AxNilpotent Axiom = 1 << iota

	// AxFiniteDimensional tags algebras of finite dimension over the base.
	AxFiniteDimensional

	// AxWithBasis tags algebras with a distinguished ordered basis.
	AxWithBasis

	// AxGraded tags algebras carrying a grading.
	AxGraded
)

// AxiomSet is a set of axioms. The zero value is the empty set.
type AxiomSet uint8

// Has reports whether the set contains a.
func (s AxiomSet) Has(a Axiom) bool { return uint8(s)&uint8(a) != 0 }

// With returns the set extended by a. The receiver is unchanged.
func (s AxiomSet) With(a Axiom) AxiomSet { return AxiomSet(uint8(s) | uint8(a)) }

// Join returns the union of two axiom sets. Join is associative,
// commutative and idempotent, so composition order never matters.
func (s AxiomSet) Join(other AxiomSet) AxiomSet { return AxiomSet(uint8(s) | uint8(other)) }

// Kind distinguishes the structural categories this package knows about.
type Kind uint8

const (
	// KindLieAlgebras is the category of Lie algebras over a base ring.
	KindLieAlgebras Kind = iota

	// KindModules is the category of modules over a base ring.
	KindModules

	// KindFiniteSets is the category of finite sets.
	KindFiniteSets
)

// Category is an immutable descriptor of a structural category, optionally
// refined by axioms. Construct with LieAlgebras, Modules or FiniteSets and
// refine with the fluent axiom methods.
type Category struct {
	kind   Kind
	base   ring.Ring // nil for FiniteSets
	axioms AxiomSet
}

// LieAlgebras returns the category of Lie algebras over base.
func LieAlgebras(base ring.Ring) Category {
	return Category{kind: KindLieAlgebras, base: base}
}

// Modules returns the category of modules over base.
func Modules(base ring.Ring) Category {
	return Category{kind: KindModules, base: base}
}

// FiniteSets returns the category of finite sets.
func FiniteSets() Category {
	return Category{kind: KindFiniteSets}
}

// Kind returns the category's kind.
func (c Category) Kind() Kind { return c.kind }

// BaseRing returns the base ring (nil for FiniteSets).
func (c Category) BaseRing() ring.Ring { return c.base }

// Axioms returns the axiom set.
func (c Category) Axioms() AxiomSet { return c.axioms }

// Nilpotent returns the full subcategory of nilpotent objects.
// A Lie algebra is nilpotent when some step s bounds all bracket nesting;
// any abelian Lie algebra is nilpotent of step 1.
func (c Category) Nilpotent() Category {
	c.axioms = c.axioms.With(AxNilpotent)
	return c
}

// FiniteDimensional returns the full subcategory of finite-dimensional
// objects.
func (c Category) FiniteDimensional() Category {
	c.axioms = c.axioms.With(AxFiniteDimensional)
	return c
}

// WithBasis returns the full subcategory of objects with a distinguished
// basis.
func (c Category) WithBasis() Category {
	c.axioms = c.axioms.With(AxWithBasis)
	return c
}

// Graded returns the full subcategory of graded objects.
func (c Category) Graded() Category {
	c.axioms = c.axioms.With(AxGraded)
	return c
}

// Join combines two categories of the same kind over the same base ring by
// taking the union of their axioms; ErrBaseRingMismatch otherwise.
func (c Category) Join(other Category) (Category, error) {
	if c.kind != other.kind || !sameRing(c.base, other.base) {
		return Category{}, ErrBaseRingMismatch
	}
	c.axioms = c.axioms.Join(other.axioms)
	return c, nil
}

// SuperCategories returns the immediate super-categories.
//
// A Lie algebra is always a module over its base ring — and deliberately not
// an associative/unital algebra, since its multiplication is the bracket.
// When the base ring is finite and the FiniteDimensional axiom is present,
// the objects are additionally finite sets; this is inferred here rather
// than stored, to avoid redundant state.
func (c Category) SuperCategories() []Category {
	if c.kind != KindLieAlgebras {
		return nil
	}
	sup := []Category{Modules(c.base)}
	if c.axioms.Has(AxFiniteDimensional) && c.base != nil && c.base.IsFinite() {
		sup = append(sup, FiniteSets())
	}
	return sup
}

// IsSubcategoryOf reports whether every object of c is an object of other.
// Within one kind this is base-ring equality plus axiom-set inclusion;
// across kinds the super-category closure is searched.
func (c Category) IsSubcategoryOf(other Category) bool {
	if c.kind == other.kind && sameRing(c.base, other.base) {
		return other.axioms.Join(c.axioms) == c.axioms
	}
	for _, sup := range c.SuperCategories() {
		if sup == other || sup.IsSubcategoryOf(other) {
			return true
		}
	}
	return false
}

// Contains reports whether L is an object of c: the base rings must agree
// and every axiom must be backed by the matching capability on L.
func (c Category) Contains(L Algebra) bool {
	if L == nil || c.kind != KindLieAlgebras {
		return false
	}
	if !sameRing(c.base, L.BaseRing()) {
		return false
	}
	if c.axioms.Has(AxNilpotent) {
		if _, ok := NilpotencyStep(L); !ok {
			return false
		}
	}
	if c.axioms.Has(AxFiniteDimensional) {
		if _, ok := L.(FiniteDimensional); !ok {
			return false
		}
	}
	if c.axioms.Has(AxWithBasis) {
		if _, ok := L.(WithBasis); !ok {
			return false
		}
	}
	if c.axioms.Has(AxGraded) {
		if _, ok := L.(Graded); !ok {
			return false
		}
	}
	return true
}

// String renders the category, e.g.
// "Category of finite dimensional nilpotent Lie algebras with basis over
// Rational Field".
func (c Category) String() string {
	var b strings.Builder
	b.WriteString("Category of ")
	switch c.kind {
	case KindModules:
		b.WriteString("modules over ")
		b.WriteString(ringName(c.base))
		return b.String()
	case KindFiniteSets:
		b.WriteString("finite sets")
		return b.String()
	}
	if c.axioms.Has(AxFiniteDimensional) {
		b.WriteString("finite dimensional ")
	}
	if c.axioms.Has(AxGraded) {
		b.WriteString("graded ")
	}
	if c.axioms.Has(AxNilpotent) {
		b.WriteString("nilpotent ")
	}
	b.WriteString("Lie algebras")
	if c.axioms.Has(AxWithBasis) {
		b.WriteString(" with basis")
	}
	b.WriteString(" over ")
	b.WriteString(ringName(c.base))
	return b.String()
}

// sameRing compares ring descriptors structurally: identical interface
// values, or equal characteristic/finiteness/order.
func sameRing(a, b ring.Ring) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Characteristic() != b.Characteristic() || a.IsFinite() != b.IsFinite() {
		return false
	}
	fa, aok := a.(ring.FiniteRing)
	fb, bok := b.(ring.FiniteRing)
	if aok != bok {
		return false
	}
	if aok && fa.Order() != fb.Order() {
		return false
	}
	return true
}

// ringName prints a ring, tolerating nil.
func ringName(r ring.Ring) string {
	if r == nil {
		return "<nil>"
	}
	return r.String()
}
