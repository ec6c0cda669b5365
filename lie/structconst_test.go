package lie_test

import (
	"math/big"
	"testing"

	"github.com/cartanlib/cartan/lie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestNewStructureConstants_Validation(t *testing.T) {
	one := rat(1, 1)

	_, err := lie.NewStructureConstants(nil, nil)
	assert.ErrorIs(t, err, lie.ErrBadDimension)

	_, err = lie.NewStructureConstants([]string{"a", "a"}, nil)
	assert.ErrorIs(t, err, lie.ErrBadStructureConstants)

	_, err = lie.NewStructureConstants([]string{"a", ""}, nil)
	assert.ErrorIs(t, err, lie.ErrBadStructureConstants)

	// requires I < J
	_, err = lie.NewStructureConstants([]string{"a", "b"},
		[]lie.StructureConstant{{I: 1, J: 0, K: 0, C: one}})
	assert.ErrorIs(t, err, lie.ErrBadStructureConstants)

	// target index out of range
	_, err = lie.NewStructureConstants([]string{"a", "b"},
		[]lie.StructureConstant{{I: 0, J: 1, K: 5, C: one}})
	assert.ErrorIs(t, err, lie.ErrBadStructureConstants)

	_, err = lie.NewStructureConstants([]string{"a", "b"},
		[]lie.StructureConstant{{I: 0, J: 1, K: 0, C: nil}})
	assert.ErrorIs(t, err, lie.ErrBadStructureConstants)
}

func TestNewStructureConstants_JacobiRejected(t *testing.T) {
	// [a,b] = c, [a,c] = a: the Jacobi sum on (a,b,c) is c, not zero.
	_, err := lie.NewStructureConstants([]string{"a", "b", "c"},
		[]lie.StructureConstant{
			{I: 0, J: 1, K: 2, C: rat(1, 1)},
			{I: 0, J: 2, K: 0, C: rat(1, 1)},
		})
	assert.ErrorIs(t, err, lie.ErrBadStructureConstants)
	assert.Contains(t, err.Error(), "Jacobi")
}

func TestNewStructureConstants_RepeatedEntriesAccumulate(t *testing.T) {
	L, err := lie.NewStructureConstants([]string{"a", "b", "c"},
		[]lie.StructureConstant{
			{I: 0, J: 1, K: 2, C: rat(1, 2)},
			{I: 0, J: 1, K: 2, C: rat(1, 2)},
		}, lie.WithStep(2))
	require.NoError(t, err)
	basis := L.Basis()
	br, err := basis[0].Bracket(basis[1])
	require.NoError(t, err)
	assert.True(t, br.Equal(basis[2]))
}

func TestNewHeisenberg_Brackets(t *testing.T) {
	L, err := lie.NewHeisenberg(2)
	require.NoError(t, err)
	assert.Equal(t, 5, L.Dimension())
	assert.Equal(t, 2, L.Step())
	assert.Equal(t, "Lie algebra on 5 generators (p1, p2, q1, q2, z) over Rational Field", L.String())

	basis := L.Basis() // p1, p2, q1, q2, z
	z := basis[4]

	br, err := basis[0].Bracket(basis[2]) // [p1, q1] = z
	require.NoError(t, err)
	assert.True(t, br.Equal(z))

	br, err = basis[2].Bracket(basis[0]) // [q1, p1] = -z
	require.NoError(t, err)
	assert.True(t, br.Equal(z.ScalarMul(rat(-1, 1))))

	br, err = basis[0].Bracket(basis[3]) // [p1, q2] = 0
	require.NoError(t, err)
	assert.True(t, br.IsZero())

	// z is central
	for _, x := range basis {
		br, err = z.Bracket(x)
		require.NoError(t, err)
		assert.True(t, br.IsZero())
	}
}

func TestNewSL2_Brackets(t *testing.T) {
	L, err := lie.NewSL2()
	require.NoError(t, err)
	basis := L.Basis()
	e, f, h := basis[0], basis[1], basis[2]

	br, err := e.Bracket(f)
	require.NoError(t, err)
	assert.True(t, br.Equal(h), "[e,f] = h")

	br, err = h.Bracket(e)
	require.NoError(t, err)
	assert.True(t, br.Equal(e.ScalarMul(rat(2, 1))), "[h,e] = 2e")

	br, err = h.Bracket(f)
	require.NoError(t, err)
	assert.True(t, br.Equal(f.ScalarMul(rat(-2, 1))), "[h,f] = -2f")

	assert.Equal(t, 0, L.Step())
	_, known := lie.NilpotencyStep(L)
	assert.False(t, known)
	_, err = lie.IsNilpotent(L)
	assert.ErrorIs(t, err, lie.ErrNotSupported)
}

func TestNewAbelian_Defaults(t *testing.T) {
	L, err := lie.NewAbelian(3)
	require.NoError(t, err)
	assert.Equal(t, "Lie algebra on 3 generators (x0, x1, x2) over Rational Field", L.String())
	assert.Equal(t, 1, L.Step())

	named, err := lie.NewAbelian(2, "u", "v")
	require.NoError(t, err)
	assert.Equal(t, 2, named.Dimension())

	_, err = lie.NewAbelian(0)
	assert.ErrorIs(t, err, lie.ErrBadDimension)
	_, err = lie.NewAbelian(2, "u")
	assert.ErrorIs(t, err, lie.ErrBadDimension)
}

func TestSCElement_VectorRoundTrip(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	x, err := L.FromVector([]*big.Rat{rat(1, 1), rat(-1, 2), rat(0, 1)})
	require.NoError(t, err)

	v, err := x.(lie.WithVector).ToVector()
	require.NoError(t, err)
	require.Len(t, v, 3)
	assert.Zero(t, v[0].Cmp(rat(1, 1)))
	assert.Zero(t, v[1].Cmp(rat(-1, 2)))
	assert.Zero(t, v[2].Sign())

	_, err = L.FromVector([]*big.Rat{rat(1, 1)})
	assert.ErrorIs(t, err, lie.ErrBadVector)
}

func TestSCElement_String(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	x, err := L.FromVector([]*big.Rat{rat(1, 1), rat(-1, 2), rat(3, 1)})
	require.NoError(t, err)
	assert.Equal(t, "p1 - 1/2*q1 + 3*z", x.String())

	neg, err := L.FromVector([]*big.Rat{rat(-1, 1), rat(0, 1), rat(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, "-p1", neg.String())

	assert.Equal(t, "0", L.Zero().String())
}

func TestSCElement_Arithmetic(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)
	M, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	basis := L.Basis()
	p, q := basis[0], basis[1]

	sum, err := p.Add(q)
	require.NoError(t, err)
	want, err := L.FromVector([]*big.Rat{rat(1, 1), rat(1, 1), rat(0, 1)})
	require.NoError(t, err)
	assert.True(t, sum.Equal(want))

	scaled := p.ScalarMul(rat(2, 3))
	v, err := scaled.(lie.WithVector).ToVector()
	require.NoError(t, err)
	assert.Zero(t, v[0].Cmp(rat(2, 3)))

	// same presentation, distinct parent instances
	_, err = p.Add(M.Basis()[0])
	assert.ErrorIs(t, err, lie.ErrMismatchedParents)
	assert.False(t, p.Equal(M.Basis()[0]))
}

func TestSCAlgebra_GeneratorsAndSamples(t *testing.T) {
	L, err := lie.NewHeisenberg(1)
	require.NoError(t, err)

	gens, err := L.Generators()
	require.NoError(t, err)
	assert.Len(t, gens, 3)

	some := L.SomeElements()
	assert.NotEmpty(t, some)
	for _, x := range some {
		assert.Same(t, L, x.Algebra())
	}
}
