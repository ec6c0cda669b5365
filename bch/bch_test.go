package bch_test

import (
	"math/big"
	"testing"

	"github.com/cartanlib/cartan/bch"
	"github.com/cartanlib/cartan/lie"
	"github.com/cartanlib/cartan/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestBernoulli_Values(t *testing.T) {
	for _, tc := range []struct {
		m    int
		want *big.Rat
	}{
		{0, rat(1, 1)},
		{1, rat(-1, 2)},
		{2, rat(1, 6)},
		{3, rat(0, 1)},
		{4, rat(-1, 30)},
		{5, rat(0, 1)},
		{6, rat(1, 42)},
		{8, rat(-1, 30)},
		{10, rat(5, 66)},
	} {
		assert.Zero(t, bch.Bernoulli(tc.m).Cmp(tc.want), "B_%d", tc.m)
	}
	assert.Panics(t, func() { bch.Bernoulli(-1) })
}

func TestLog_Heisenberg(t *testing.T) {
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	basis := H.Basis()
	p, q := basis[0], basis[1]

	got, err := bch.Log(H, p, q)
	require.NoError(t, err)

	// log(exp(p)·exp(q)) = p + q + ½z
	want, err := H.FromVector([]*big.Rat{rat(1, 1), rat(1, 1), rat(1, 2)})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)

	// swapping the operands flips the sign of the bracket term
	got, err = bch.Log(H, q, p)
	require.NoError(t, err)
	want, err = H.FromVector([]*big.Rat{rat(1, 1), rat(1, 1), rat(-1, 2)})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestLog_Abelian(t *testing.T) {
	A, err := lie.NewAbelian(2)
	require.NoError(t, err)
	gens, err := A.Generators()
	require.NoError(t, err)

	got, err := bch.Log(A, gens[0], gens[1])
	require.NoError(t, err)
	sum, err := gens[0].Add(gens[1])
	require.NoError(t, err)
	assert.True(t, got.Equal(sum))
}

func TestLog_ZeroOperands(t *testing.T) {
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	p := H.Basis()[0]

	// log(exp(X)·exp(0)) = X
	got, err := bch.Log(H, p, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = bch.Log(H, 0, p)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = bch.Log(H, nil, nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// freeNilpotent3 is free nilpotent of step 3 on two generators:
// basis x, y, A = [x,y], B = [x,A], C = [y,A], everything deeper zero.
func freeNilpotent3(t *testing.T) *lie.SCAlgebra {
	t.Helper()
	L, err := lie.NewStructureConstants(
		[]string{"x", "y", "A", "B", "C"},
		[]lie.StructureConstant{
			{I: 0, J: 1, K: 2, C: rat(1, 1)},
			{I: 0, J: 2, K: 3, C: rat(1, 1)},
			{I: 1, J: 2, K: 4, C: rat(1, 1)},
		}, lie.WithStep(3))
	require.NoError(t, err)
	return L
}

func TestLog_DepthThreeCoefficients(t *testing.T) {
	L := freeNilpotent3(t)
	basis := L.Basis()

	got, err := bch.Log(L, basis[0], basis[1])
	require.NoError(t, err)

	// x + y + ½[x,y] + 1/12[x,[x,y]] − 1/12[y,[x,y]]
	want, err := L.FromVector([]*big.Rat{
		rat(1, 1), rat(1, 1), rat(1, 2), rat(1, 12), rat(-1, 12),
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestLog_DepthFourCoefficient(t *testing.T) {
	// free nilpotent of step 4 on two generators: degree-4 basis
	// D = [x,B], E = [x,C] = [y,B], F = [y,C] is central.
	L, err := lie.NewStructureConstants(
		[]string{"x", "y", "A", "B", "C", "D", "E", "F"},
		[]lie.StructureConstant{
			{I: 0, J: 1, K: 2, C: rat(1, 1)}, // [x,y] = A
			{I: 0, J: 2, K: 3, C: rat(1, 1)}, // [x,A] = B
			{I: 1, J: 2, K: 4, C: rat(1, 1)}, // [y,A] = C
			{I: 0, J: 3, K: 5, C: rat(1, 1)}, // [x,B] = D
			{I: 1, J: 3, K: 6, C: rat(1, 1)}, // [y,B] = E
			{I: 0, J: 4, K: 6, C: rat(1, 1)}, // [x,C] = E
			{I: 1, J: 4, K: 7, C: rat(1, 1)}, // [y,C] = F
		}, lie.WithStep(4))
	require.NoError(t, err)
	basis := L.Basis()

	got, err := bch.Log(L, basis[0], basis[1])
	require.NoError(t, err)

	// the classical depth-4 term is −1/24[y,[x,[x,y]]] = −1/24·E
	want, err := L.FromVector([]*big.Rat{
		rat(1, 1), rat(1, 1), rat(1, 2), rat(1, 12), rat(-1, 12),
		rat(0, 1), rat(-1, 24), rat(0, 1),
	})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestLog_PrecisionRequired(t *testing.T) {
	sl2, err := lie.NewSL2()
	require.NoError(t, err)
	basis := sl2.Basis()
	e, f := basis[0], basis[1]

	_, err = bch.Log(sl2, e, f)
	assert.ErrorIs(t, err, bch.ErrPrecisionRequired)

	// prec 2 sums X + Y + ½[X,Y] = e + f + ½h
	got, err := bch.Log(sl2, e, f, bch.WithPrec(2))
	require.NoError(t, err)
	want, err := sl2.FromVector([]*big.Rat{rat(1, 1), rat(1, 1), rat(1, 2)})
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)

	assert.Panics(t, func() { bch.WithPrec(0) })
}

func TestLog_PrecisionOnNilpotent(t *testing.T) {
	L := freeNilpotent3(t)
	basis := L.Basis()

	full, err := bch.Log(L, basis[0], basis[1])
	require.NoError(t, err)

	// any precision at or beyond the step gives the exact finite sum
	deep, err := bch.Log(L, basis[0], basis[1], bch.WithPrec(10))
	require.NoError(t, err)
	assert.True(t, full.Equal(deep))

	// a smaller precision truncates
	shallow, err := bch.Log(L, basis[0], basis[1], bch.WithPrec(2))
	require.NoError(t, err)
	want, err := L.FromVector([]*big.Rat{rat(1, 1), rat(1, 1), rat(1, 2), rat(0, 1), rat(0, 1)})
	require.NoError(t, err)
	assert.True(t, shallow.Equal(want))
}

func TestStream_TerminatesAtStep(t *testing.T) {
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	basis := H.Basis()

	s, err := bch.NewStream(H, basis[0], basis[1])
	require.NoError(t, err)

	z1, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	sum, err := basis[0].Add(basis[1])
	require.NoError(t, err)
	assert.True(t, z1.Equal(sum))

	z2, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, z2.Equal(basis[2].ScalarMul(rat(1, 2))))

	// step 2: the stream is exhausted
	_, ok, err = s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLog_CoercionErrors(t *testing.T) {
	H, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	other, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	_, err = bch.Log(H, other.Basis()[0], H.Basis()[1])
	assert.ErrorIs(t, err, lie.ErrMismatchedParents)

	_, err = bch.Log(H, 3, H.Basis()[1])
	assert.ErrorIs(t, err, lie.ErrCoercion)
}

// charAlg stands in for an algebra over a positive-characteristic base; only
// its base ring is ever consulted.
type charAlg struct{ base ring.Ring }

func (a *charAlg) BaseRing() ring.Ring                { return a.base }
func (a *charAlg) Zero() lie.Element                  { return nil }
func (a *charAlg) Generators() ([]lie.Element, error) { return nil, nil }
func (a *charAlg) SomeElements() []lie.Element        { return nil }
func (a *charAlg) String() string                     { return a.base.String() }

func TestLog_NoRationalCoercion(t *testing.T) {
	gf2, err := ring.NewGF(2, 1)
	require.NoError(t, err)

	_, err = bch.Log(&charAlg{base: gf2}, nil, nil)
	assert.ErrorIs(t, err, bch.ErrNoRationalCoercion)
}
