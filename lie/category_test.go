package lie_test

import (
	"testing"

	"github.com/cartanlib/cartan/lie"
	"github.com/cartanlib/cartan/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxiomSet_JoinLaws(t *testing.T) {
	var empty lie.AxiomSet
	a := empty.With(lie.AxNilpotent)
	b := empty.With(lie.AxWithBasis).With(lie.AxGraded)

	// idempotent, commutative, associative
	assert.Equal(t, a, a.Join(a))
	assert.Equal(t, a.Join(b), b.Join(a))
	c := empty.With(lie.AxFiniteDimensional)
	assert.Equal(t, a.Join(b).Join(c), a.Join(b.Join(c)))

	assert.True(t, a.Join(b).Has(lie.AxNilpotent))
	assert.True(t, a.Join(b).Has(lie.AxGraded))
	assert.False(t, a.Join(b).Has(lie.AxFiniteDimensional))
}

func TestCategory_AxiomOrderIrrelevant(t *testing.T) {
	c1 := lie.LieAlgebras(ring.QQ).Nilpotent().FiniteDimensional().WithBasis()
	c2 := lie.LieAlgebras(ring.QQ).WithBasis().Nilpotent().FiniteDimensional()
	assert.Equal(t, c1, c2)
	assert.Equal(t, c1.Axioms(), c2.Axioms())
}

func TestCategory_Join(t *testing.T) {
	nilp := lie.LieAlgebras(ring.QQ).Nilpotent()
	wb := lie.LieAlgebras(ring.QQ).WithBasis()

	joined, err := nilp.Join(wb)
	require.NoError(t, err)
	assert.True(t, joined.Axioms().Has(lie.AxNilpotent))
	assert.True(t, joined.Axioms().Has(lie.AxWithBasis))

	// joining with oneself changes nothing
	same, err := nilp.Join(nilp)
	require.NoError(t, err)
	assert.Equal(t, nilp, same)

	gf2, err := ring.NewGF(2, 1)
	require.NoError(t, err)
	_, err = nilp.Join(lie.LieAlgebras(gf2))
	assert.ErrorIs(t, err, lie.ErrBaseRingMismatch)

	_, err = nilp.Join(lie.Modules(ring.QQ))
	assert.ErrorIs(t, err, lie.ErrBaseRingMismatch)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t,
		"Category of Lie algebras over Rational Field",
		lie.LieAlgebras(ring.QQ).String())
	assert.Equal(t,
		"Category of finite dimensional nilpotent Lie algebras with basis over Rational Field",
		lie.LieAlgebras(ring.QQ).Nilpotent().FiniteDimensional().WithBasis().String())
	assert.Equal(t,
		"Category of graded Lie algebras over Rational Field",
		lie.LieAlgebras(ring.QQ).Graded().String())
	assert.Equal(t, "Category of modules over Rational Field", lie.Modules(ring.QQ).String())
	assert.Equal(t, "Category of finite sets", lie.FiniteSets().String())
}

func TestCategory_SuperCategories(t *testing.T) {
	sup := lie.LieAlgebras(ring.QQ).SuperCategories()
	require.Len(t, sup, 1)
	assert.Equal(t, lie.Modules(ring.QQ), sup[0])

	// finite base + finite dimension means the objects are finite sets
	gf2, err := ring.NewGF(2, 1)
	require.NoError(t, err)
	sup = lie.LieAlgebras(gf2).FiniteDimensional().SuperCategories()
	require.Len(t, sup, 2)
	assert.Equal(t, lie.FiniteSets(), sup[1])

	// without the finite-dimension axiom the inference does not fire
	sup = lie.LieAlgebras(gf2).SuperCategories()
	assert.Len(t, sup, 1)

	assert.Nil(t, lie.Modules(ring.QQ).SuperCategories())
}

func TestCategory_IsSubcategoryOf(t *testing.T) {
	plain := lie.LieAlgebras(ring.QQ)
	refined := plain.Nilpotent().WithBasis()

	assert.True(t, refined.IsSubcategoryOf(plain))
	assert.False(t, plain.IsSubcategoryOf(refined))
	assert.True(t, plain.IsSubcategoryOf(lie.Modules(ring.QQ)))
	assert.True(t, refined.IsSubcategoryOf(lie.Modules(ring.QQ)))

	gf4, err := ring.NewGF(2, 2)
	require.NoError(t, err)
	assert.True(t, lie.LieAlgebras(gf4).FiniteDimensional().IsSubcategoryOf(lie.FiniteSets()))
	assert.False(t, lie.LieAlgebras(gf4).IsSubcategoryOf(lie.FiniteSets()))
	assert.False(t, plain.IsSubcategoryOf(lie.LieAlgebras(gf4)))
}

func TestCategory_Contains(t *testing.T) {
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	sl2, err := lie.NewSL2()
	require.NoError(t, err)

	assert.True(t, lie.LieAlgebras(ring.QQ).Contains(H))
	assert.True(t, lie.LieAlgebras(ring.QQ).Nilpotent().FiniteDimensional().WithBasis().Contains(H))
	// no grading capability on structure-constant algebras
	assert.False(t, lie.LieAlgebras(ring.QQ).Graded().Contains(H))

	// sl2 declares no nilpotency step
	assert.True(t, lie.LieAlgebras(ring.QQ).FiniteDimensional().Contains(sl2))
	assert.False(t, lie.LieAlgebras(ring.QQ).Nilpotent().Contains(sl2))

	gf2, err := ring.NewGF(2, 1)
	require.NoError(t, err)
	assert.False(t, lie.LieAlgebras(gf2).Contains(H))
	assert.False(t, lie.Modules(ring.QQ).Contains(H))
	assert.False(t, lie.LieAlgebras(ring.QQ).Contains(nil))
}
