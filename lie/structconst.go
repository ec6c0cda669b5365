// Package lie: finite-dimensional Lie algebras over ℚ presented by
// structure constants on a distinguished basis. Antisymmetry is enforced by
// the storage convention ([e_j,e_i] is derived from [e_i,e_j]); the Jacobi
// identity is verified exactly on every basis triple at construction, so a
// successfully built SCAlgebra is a genuine Lie algebra.

package lie

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cartanlib/cartan/ring"
)

// StructureConstant declares one contribution C·e_K to the bracket
// [e_I, e_J] of basis elements, with I < J. Repeated (I, J, K) entries
// accumulate.
type StructureConstant struct {
	I, J int
	K    int
	C    *big.Rat
}

// SCOption configures NewStructureConstants.
type SCOption func(*scConfig)

type scConfig struct {
	step int
}

// WithStep declares the algebra nilpotent with the given step s >= 1
// (s = 1 means abelian-like vanishing of all brackets, s = 2 means all
// doubly nested brackets vanish, ...). The step is declared, not computed;
// passing s < 1 is a programmer error and panics.
func WithStep(s int) SCOption {
	if s < 1 {
		panic("lie: WithStep requires s >= 1")
	}
	return func(c *scConfig) { c.step = s }
}

// SCAlgebra is a structure-constant Lie algebra over ℚ. It is finite
// dimensional with basis, and nilpotent when a step was declared.
// Immutable after construction.
type SCAlgebra struct {
	names []string
	table [][][]*big.Rat // table[i][j] = coords of [e_i, e_j]; nil = zero
	step  int            // 0 = not known nilpotent
	lift  LiftCache
}

// NewStructureConstants builds the Lie algebra with the given basis names
// and bracket table. Construction fails with ErrBadStructureConstants when
// indices are malformed (requires I < J and all indices in range) or when
// the resulting bracket violates the Jacobi identity on any basis triple.
func NewStructureConstants(names []string, consts []StructureConstant, opts ...SCOption) (*SCAlgebra, error) {
	if len(names) == 0 {
		return nil, ErrBadDimension
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("%w: empty basis name", ErrBadStructureConstants)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: duplicate basis name %q", ErrBadStructureConstants, n)
		}
		seen[n] = struct{}{}
	}
	var cfg scConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dim := len(names)
	L := &SCAlgebra{
		names: append([]string(nil), names...),
		table: make([][][]*big.Rat, dim),
		step:  cfg.step,
	}
	for i := range L.table {
		L.table[i] = make([][]*big.Rat, dim)
	}
	for _, sc := range consts {
		if sc.I < 0 || sc.J >= dim || sc.I >= sc.J || sc.K < 0 || sc.K >= dim {
			return nil, fmt.Errorf("%w: [%d,%d] -> %d out of range (dim %d, need I < J)",
				ErrBadStructureConstants, sc.I, sc.J, sc.K, dim)
		}
		if sc.C == nil {
			return nil, fmt.Errorf("%w: nil coefficient", ErrBadStructureConstants)
		}
		if L.table[sc.I][sc.J] == nil {
			L.table[sc.I][sc.J] = zeroVec(dim)
		}
		v := L.table[sc.I][sc.J]
		v[sc.K] = new(big.Rat).Add(v[sc.K], sc.C)
	}
	// derive [e_j, e_i] = -[e_i, e_j]
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			if L.table[i][j] == nil {
				continue
			}
			neg := zeroVec(dim)
			for k, c := range L.table[i][j] {
				neg[k] = new(big.Rat).Neg(c)
			}
			L.table[j][i] = neg
		}
	}
	if err := L.verifyJacobi(); err != nil {
		return nil, err
	}
	return L, nil
}

// NewAbelian returns the abelian Lie algebra of dimension n over ℚ (all
// brackets zero, nilpotent of step 1). Basis names default to x0..x{n-1};
// when given, names must have length n. Abelian algebras support the
// universal enveloping algebra (a polynomial ring) and the lift.
func NewAbelian(n int, names ...string) (*SCAlgebra, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	if len(names) == 0 {
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}
	if len(names) != n {
		return nil, fmt.Errorf("%w: %d names for dimension %d", ErrBadDimension, len(names), n)
	}
	return NewStructureConstants(names, nil, WithStep(1))
}

// NewHeisenberg returns the rank-r Heisenberg algebra over ℚ: basis
// p1..pr, q1..qr, z with [p_i, q_i] = z and all other brackets zero.
// Nilpotent of step 2.
func NewHeisenberg(rank int) (*SCAlgebra, error) {
	if rank < 1 {
		return nil, ErrBadDimension
	}
	names := make([]string, 0, 2*rank+1)
	for i := 1; i <= rank; i++ {
		names = append(names, fmt.Sprintf("p%d", i))
	}
	for i := 1; i <= rank; i++ {
		names = append(names, fmt.Sprintf("q%d", i))
	}
	names = append(names, "z")
	consts := make([]StructureConstant, 0, rank)
	for i := 0; i < rank; i++ {
		consts = append(consts, StructureConstant{I: i, J: rank + i, K: 2 * rank, C: big.NewRat(1, 1)})
	}
	return NewStructureConstants(names, consts, WithStep(2))
}

// NewSL2 returns sl₂(ℚ): basis e, f, h with [e,f] = h, [h,e] = 2e,
// [h,f] = -2f. Not nilpotent — BCH on it requires an explicit precision.
func NewSL2() (*SCAlgebra, error) {
	return NewStructureConstants([]string{"e", "f", "h"}, []StructureConstant{
		{I: 0, J: 1, K: 2, C: big.NewRat(1, 1)},  // [e,f] = h
		{I: 0, J: 2, K: 0, C: big.NewRat(-2, 1)}, // [e,h] = -2e
		{I: 1, J: 2, K: 1, C: big.NewRat(2, 1)},  // [f,h] = 2f
	})
}

// BaseRing returns ℚ.
func (L *SCAlgebra) BaseRing() ring.Ring { return ring.QQ }

// Dimension returns the dimension over ℚ.
func (L *SCAlgebra) Dimension() int { return len(L.names) }

// Step returns the declared nilpotency step, or 0 when the algebra is not
// known to be nilpotent.
func (L *SCAlgebra) Step() int { return L.step }

// Zero returns the zero element.
func (L *SCAlgebra) Zero() Element {
	return &SCElement{alg: L, v: zeroVec(len(L.names))}
}

// Basis returns the distinguished basis elements, in order.
func (L *SCAlgebra) Basis() []Element {
	out := make([]Element, len(L.names))
	for i := range L.names {
		v := zeroVec(len(L.names))
		v[i] = big.NewRat(1, 1)
		out[i] = &SCElement{alg: L, v: v}
	}
	return out
}

// Generators returns the basis: a finite generating set.
func (L *SCAlgebra) Generators() ([]Element, error) {
	return L.Basis(), nil
}

// SomeElements returns the basis, the sum of the basis and zero — the
// sample the law checkers run against.
func (L *SCAlgebra) SomeElements() []Element {
	out := L.Basis()
	sum := zeroVec(len(L.names))
	for i := range sum {
		sum[i] = big.NewRat(1, 1)
	}
	out = append(out, &SCElement{alg: L, v: sum}, L.Zero())
	return out
}

// FromVector returns the element with coordinates v relative to the basis.
func (L *SCAlgebra) FromVector(v []*big.Rat) (Element, error) {
	if len(v) != len(L.names) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadVector, len(v), len(L.names))
	}
	out := zeroVec(len(L.names))
	for i, c := range v {
		if c != nil {
			out[i] = new(big.Rat).Set(c)
		}
	}
	return &SCElement{alg: L, v: out}, nil
}

// ConstructUEA constructs the universal enveloping algebra. Only abelian
// algebras support this here (their UEA is the polynomial ring on the
// basis); anything non-abelian answers ErrNotSupported.
func (L *SCAlgebra) ConstructUEA() (AssociativeAlgebra, error) {
	if !L.isAbelian() {
		return nil, fmt.Errorf("universal enveloping algebra of a non-abelian structure-constant algebra: %w", ErrNotSupported)
	}
	R, err := NewPolynomialRing(L.names...)
	if err != nil {
		return nil, err
	}
	return R, nil
}

// LiftMorphism returns the cached lift morphism (built on first use).
func (L *SCAlgebra) LiftMorphism() (*LiftMorphism, error) {
	return L.lift.Morphism(L)
}

// String renders e.g. "Lie algebra on 3 generators (p1, q1, z) over
// Rational Field".
func (L *SCAlgebra) String() string {
	return fmt.Sprintf("Lie algebra on %d generators (%s) over %s",
		len(L.names), strings.Join(L.names, ", "), ring.QQ)
}

// bracketVec computes the coordinates of [u, v] by bilinear expansion over
// the structure-constant table.
func (L *SCAlgebra) bracketVec(u, v []*big.Rat) []*big.Rat {
	dim := len(L.names)
	out := zeroVec(dim)
	for i := 0; i < dim; i++ {
		if u[i].Sign() == 0 {
			continue
		}
		for j := 0; j < dim; j++ {
			if v[j].Sign() == 0 || L.table[i][j] == nil {
				continue
			}
			c := new(big.Rat).Mul(u[i], v[j])
			for k, t := range L.table[i][j] {
				if t.Sign() == 0 {
					continue
				}
				out[k] = new(big.Rat).Add(out[k], new(big.Rat).Mul(c, t))
			}
		}
	}
	return out
}

// verifyJacobi checks [e_i,[e_j,e_k]] + [e_j,[e_k,e_i]] + [e_k,[e_i,e_j]] = 0
// on every basis triple i < j < k; bilinearity extends the law to the whole
// algebra.
func (L *SCAlgebra) verifyJacobi() error {
	dim := len(L.names)
	basis := make([][]*big.Rat, dim)
	for i := range basis {
		basis[i] = zeroVec(dim)
		basis[i][i] = big.NewRat(1, 1)
	}
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			for k := j + 1; k < dim; k++ {
				sum := zeroVec(dim)
				addVec(sum, L.bracketVec(basis[i], L.bracketVec(basis[j], basis[k])))
				addVec(sum, L.bracketVec(basis[j], L.bracketVec(basis[k], basis[i])))
				addVec(sum, L.bracketVec(basis[k], L.bracketVec(basis[i], basis[j])))
				if !vecIsZero(sum) {
					return fmt.Errorf("%w: Jacobi fails on basis triple (%s, %s, %s)",
						ErrBadStructureConstants, L.names[i], L.names[j], L.names[k])
				}
			}
		}
	}
	return nil
}

func (L *SCAlgebra) isAbelian() bool {
	for i := range L.table {
		for j := range L.table[i] {
			if L.table[i][j] != nil && !vecIsZero(L.table[i][j]) {
				return false
			}
		}
	}
	return true
}

// SCElement is an element of an SCAlgebra: a coordinate vector over ℚ.
type SCElement struct {
	alg *SCAlgebra
	v   []*big.Rat
}

// Algebra returns the parent algebra.
func (x *SCElement) Algebra() Algebra { return x.alg }

// Add returns x + other.
func (x *SCElement) Add(other Element) (Element, error) {
	y, err := x.samePar(other)
	if err != nil {
		return nil, err
	}
	out := zeroVec(len(x.v))
	for i := range out {
		out[i] = new(big.Rat).Add(x.v[i], y.v[i])
	}
	return &SCElement{alg: x.alg, v: out}, nil
}

// ScalarMul returns c·x; a nil scalar counts as zero.
func (x *SCElement) ScalarMul(c *big.Rat) Element {
	out := zeroVec(len(x.v))
	if c != nil && c.Sign() != 0 {
		for i := range out {
			out[i] = new(big.Rat).Mul(c, x.v[i])
		}
	}
	return &SCElement{alg: x.alg, v: out}
}

// Bracket returns [x, other].
func (x *SCElement) Bracket(other Element) (Element, error) {
	y, err := x.samePar(other)
	if err != nil {
		return nil, err
	}
	return &SCElement{alg: x.alg, v: x.alg.bracketVec(x.v, y.v)}, nil
}

// IsZero reports whether every coordinate vanishes.
func (x *SCElement) IsZero() bool { return vecIsZero(x.v) }

// Equal reports exact coordinate equality within the same parent.
func (x *SCElement) Equal(other Element) bool {
	y, err := x.samePar(other)
	if err != nil {
		return false
	}
	for i := range x.v {
		if x.v[i].Cmp(y.v[i]) != 0 {
			return false
		}
	}
	return true
}

// ToVector returns a copy of the coordinate vector relative to the basis.
func (x *SCElement) ToVector() ([]*big.Rat, error) {
	out := make([]*big.Rat, len(x.v))
	for i, c := range x.v {
		out[i] = new(big.Rat).Set(c)
	}
	return out, nil
}

// Lift returns the image of x in the universal enveloping algebra,
// available exactly when the parent constructs a UEA.
func (x *SCElement) Lift() (UEAElement, error) {
	m, err := x.alg.LiftMorphism()
	if err != nil {
		return nil, err
	}
	R := m.Codomain().(*PolynomialRing)
	acc := R.Zero()
	for i, c := range x.v {
		if c.Sign() == 0 {
			continue
		}
		g, err := R.Gen(i)
		if err != nil {
			return nil, err
		}
		acc, err = acc.Add(g.ScalarMul(c))
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// String renders e.g. "p1 + 2*q1 - 1/2*z"; the zero element renders as "0".
func (x *SCElement) String() string {
	var b strings.Builder
	one := big.NewRat(1, 1)
	for i, c := range x.v {
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(c)
		switch {
		case b.Len() == 0 && c.Sign() < 0:
			b.WriteString("-")
		case b.Len() > 0 && c.Sign() < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if abs.Cmp(one) != 0 {
			b.WriteString(abs.RatString())
			b.WriteString("*")
		}
		b.WriteString(x.alg.names[i])
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func (x *SCElement) samePar(other Element) (*SCElement, error) {
	y, ok := other.(*SCElement)
	if !ok || y.alg != x.alg {
		return nil, ErrMismatchedParents
	}
	return y, nil
}

// --- small ℚ-vector helpers ---

func zeroVec(n int) []*big.Rat {
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat)
	}
	return out
}

func addVec(dst, src []*big.Rat) {
	for i := range dst {
		dst[i] = new(big.Rat).Add(dst[i], src[i])
	}
}

func vecIsZero(v []*big.Rat) bool {
	for _, c := range v {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}
