package lie_test

import (
	"math/big"
	"testing"

	"github.com/cartanlib/cartan/lie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_ZeroSpellings(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	for _, v := range []interface{}{nil, 0, int64(0), big.NewRat(0, 1), (*big.Rat)(nil)} {
		x, err := lie.Coerce(L, v)
		require.NoError(t, err)
		assert.True(t, x.IsZero())
	}

	_, err = lie.Coerce(L, 7)
	assert.ErrorIs(t, err, lie.ErrCoercion)
	_, err = lie.Coerce(L, big.NewRat(1, 2))
	assert.ErrorIs(t, err, lie.ErrCoercion)
	_, err = lie.Coerce(L, "p1")
	assert.ErrorIs(t, err, lie.ErrCoercion)

	M, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	_, err = lie.Coerce(L, M.Zero())
	assert.ErrorIs(t, err, lie.ErrMismatchedParents)

	x, err := lie.Coerce(L, L.Basis()[0])
	require.NoError(t, err)
	assert.True(t, x.Equal(L.Basis()[0]))
}

func TestBracket_ElementOperands(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	basis := L.Basis()
	p, q, z := basis[0], basis[1], basis[2]

	got, err := lie.Bracket(L, p, q)
	require.NoError(t, err)
	assert.True(t, got.(lie.Element).Equal(z))

	// zero on either side brackets to zero
	got, err = lie.Bracket(L, p, nil)
	require.NoError(t, err)
	assert.True(t, got.(lie.Element).IsZero())

	got, err = lie.Bracket(L, 0, q)
	require.NoError(t, err)
	assert.True(t, got.(lie.Element).IsZero())

	_, err = lie.Bracket(L, p, 3)
	assert.ErrorIs(t, err, lie.ErrCoercion)
}

func TestBracket_AlgebraOperands(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	// structure-constant algebras construct neither product spaces nor ideals
	_, err = lie.Bracket(L, L, L)
	assert.ErrorIs(t, err, lie.ErrNotSupported)

	_, err = lie.Bracket(L, L, L.Basis()[0])
	assert.ErrorIs(t, err, lie.ErrNotImplemented)

	_, err = lie.Bracket(L, L.Basis()[0], L)
	assert.ErrorIs(t, err, lie.ErrNotImplemented)
}

func TestIsAbelian(t *testing.T) {
	A, err := lie.NewAbelian(3)
	require.NoError(t, err)
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	ab, err := lie.IsAbelian(A)
	require.NoError(t, err)
	assert.True(t, ab)

	ab, err = lie.IsAbelian(H)
	require.NoError(t, err)
	assert.False(t, ab)

	// for Lie algebras commutative and abelian coincide
	comm, err := lie.IsCommutative(A)
	require.NoError(t, err)
	assert.True(t, comm)
}

// freeAlg pretends to be an infinitely generated algebra; only the
// generator query matters here.
type freeAlg struct{ lie.Algebra }

func (freeAlg) Generators() ([]lie.Element, error) {
	return nil, lie.ErrInfiniteGenerators
}

func TestIsAbelian_InfiniteGenerators(t *testing.T) {
	_, err := lie.IsAbelian(freeAlg{})
	assert.ErrorIs(t, err, lie.ErrInfiniteGenerators)
}

func TestIsIdeal(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	M, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	ok, err := lie.IsIdeal(L, L)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = lie.IsIdeal(L, M)
	assert.ErrorIs(t, err, lie.ErrNotImplemented)
}

func TestCapabilityGaps(t *testing.T) {
	L, err := lie.NewSL2()
	require.NoError(t, err)
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	_, err = lie.Subalgebra(L, L.Basis()[0])
	assert.ErrorIs(t, err, lie.ErrNotImplemented)

	_, err = lie.Ideal(L, L.Basis()[0])
	assert.ErrorIs(t, err, lie.ErrNotImplemented)

	_, err = lie.KillingForm(L, L.Basis()[0], L.Basis()[1])
	assert.ErrorIs(t, err, lie.ErrNotSupported)

	_, err = lie.LieGroup(L, "SL2")
	assert.ErrorIs(t, err, lie.ErrNotImplemented)

	// a declared nilpotency step settles solvability
	solv, err := lie.IsSolvable(H)
	require.NoError(t, err)
	assert.True(t, solv)

	// sl2 declares no step and no solvability capability
	_, err = lie.IsSolvable(L)
	assert.ErrorIs(t, err, lie.ErrNotSupported)
}
