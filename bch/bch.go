// Package bch: the term stream and the Log facade.
//
// The Varadarajan recursion computes Z_m from the earlier terms:
//
//	Z₁ = X + Y
//	m·Zₘ = ½[X−Y, Zₘ₋₁]
//	       + Σ_{p≥1, 2p≤m−1} B₂ₚ/(2p)! ·
//	         Σ_{k₁+⋯+k₂ₚ = m−1, kᵢ≥1} [Z_{k₁}, […, [Z_{k₂ₚ}, X+Y]…]]
//
// Odd Bernoulli numbers beyond B₁ vanish, so only even indices appear.

package bch

import (
	"fmt"
	"math/big"

	"github.com/cartanlib/cartan/lie"
)

// Option configures Log.
type Option func(*config)

type config struct {
	prec int
}

// WithPrec truncates the series after its first n terms (n >= 1; anything
// else is a programmer error and panics). Required when the algebra is not
// known to be nilpotent; optional otherwise.
func WithPrec(n int) Option {
	if n < 1 {
		panic("bch: WithPrec requires n >= 1")
	}
	return func(c *config) { c.prec = n }
}

// Stream lazily produces the series terms Z₁, Z₂, … for one (X, Y) pair.
// Terms are memoized internally; the recursion for Z_m consumes every
// earlier term. Not safe for concurrent use.
type Stream struct {
	alg     lie.Algebra
	xPlusY  lie.Element
	xMinusY lie.Element
	terms   []lie.Element
	limit   int // 0 = infinite series
}

// NewStream validates the operands and returns a fresh term stream.
// X and Y follow the same coercion rules as lie.Bracket operands (elements
// of L, nil, exactly-zero scalars). The base ring must have characteristic
// zero, or ErrNoRationalCoercion is returned. When L declares a nilpotency
// step s, the stream ends after s terms.
func NewStream(L lie.Algebra, X, Y interface{}) (*Stream, error) {
	if L.BaseRing() == nil || L.BaseRing().Characteristic() != 0 {
		return nil, fmt.Errorf("%w: base ring %s", ErrNoRationalCoercion, L.BaseRing())
	}
	x, err := lie.Coerce(L, X)
	if err != nil {
		return nil, err
	}
	y, err := lie.Coerce(L, Y)
	if err != nil {
		return nil, err
	}
	sum, err := x.Add(y)
	if err != nil {
		return nil, err
	}
	diff, err := x.Add(y.ScalarMul(big.NewRat(-1, 1)))
	if err != nil {
		return nil, err
	}
	s := &Stream{alg: L, xPlusY: sum, xMinusY: diff}
	if step, ok := lie.NilpotencyStep(L); ok {
		s.limit = step
	}
	return s, nil
}

// Next returns the next term of the series. ok is false once the stream is
// exhausted, which happens exactly on nilpotent algebras after Step terms.
func (s *Stream) Next() (term lie.Element, ok bool, err error) {
	m := len(s.terms) + 1
	if s.limit > 0 && m > s.limit {
		return nil, false, nil
	}
	z, err := s.computeTerm(m)
	if err != nil {
		return nil, false, err
	}
	s.terms = append(s.terms, z)
	return z, true, nil
}

// computeTerm evaluates the recursion for Z_m; s.terms must already hold
// Z_1..Z_{m-1}.
func (s *Stream) computeTerm(m int) (lie.Element, error) {
	if m == 1 {
		return s.xPlusY, nil
	}
	// ½[X−Y, Z_{m−1}]
	br, err := s.xMinusY.Bracket(s.terms[m-2])
	if err != nil {
		return nil, err
	}
	acc := br.ScalarMul(big.NewRat(1, 2))
	for p := 1; 2*p <= m-1; p++ {
		coeff := new(big.Rat).Quo(Bernoulli(2*p), factorialRat(2*p))
		inner, err := s.nestedSum(2*p, m-1)
		if err != nil {
			return nil, err
		}
		acc, err = acc.Add(inner.ScalarMul(coeff))
		if err != nil {
			return nil, err
		}
	}
	return acc.ScalarMul(big.NewRat(1, int64(m))), nil
}

// nestedSum sums [Z_{k₁}, […, [Z_{k_parts}, X+Y]…]] over all compositions
// k₁+⋯+k_parts = total with kᵢ ≥ 1.
func (s *Stream) nestedSum(parts, total int) (lie.Element, error) {
	if parts == 0 {
		if total != 0 {
			return s.alg.Zero(), nil
		}
		return s.xPlusY, nil
	}
	acc := s.alg.Zero()
	for k := 1; k <= total-(parts-1); k++ {
		inner, err := s.nestedSum(parts-1, total-k)
		if err != nil {
			return nil, err
		}
		br, err := s.terms[k-1].Bracket(inner)
		if err != nil {
			return nil, err
		}
		acc, err = acc.Add(br)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Log returns log(exp(X)·exp(Y)) as an element of L.
//
// On a nilpotent algebra the sum is finite and complete by default; a
// smaller WithPrec truncates it. On any other algebra WithPrec is
// mandatory, since the series does not terminate — its absence is
// ErrPrecisionRequired, never a silent default.
//
// Errors: ErrNoRationalCoercion, ErrPrecisionRequired, and the coercion
// errors of the lie package (lie.ErrMismatchedParents, lie.ErrCoercion).
func Log(L lie.Algebra, X, Y interface{}, opts ...Option) (lie.Element, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	s, err := NewStream(L, X, Y)
	if err != nil {
		return nil, err
	}
	n := cfg.prec
	if n == 0 {
		if s.limit == 0 {
			return nil, ErrPrecisionRequired
		}
		n = s.limit
	}
	sum := L.Zero()
	for i := 0; i < n; i++ {
		term, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}
