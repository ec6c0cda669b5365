// Package lie: a commutative multivariate polynomial ring over ℚ — the
// universal enveloping algebra of an abelian Lie algebra. (Non-abelian
// algebras need a noncommutative PBW algebra, which no algebra shipped here
// constructs; they answer ErrNotSupported instead.)

package lie

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/cartanlib/cartan/ring"
)

// PolynomialRing is ℚ[x_0, …, x_{n-1}], a commutative associative algebra.
// Immutable; safe for concurrent use.
type PolynomialRing struct {
	vars []string
}

// NewPolynomialRing constructs ℚ[vars...]. Variables must be non-empty and
// distinct.
func NewPolynomialRing(vars ...string) (*PolynomialRing, error) {
	if len(vars) == 0 {
		return nil, ErrBadDimension
	}
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v == "" {
			return nil, fmt.Errorf("%w: empty variable name", ErrBadStructureConstants)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrBadStructureConstants, v)
		}
		seen[v] = struct{}{}
	}
	return &PolynomialRing{vars: append([]string(nil), vars...)}, nil
}

// BaseRing returns ℚ.
func (R *PolynomialRing) BaseRing() ring.Ring { return ring.QQ }

// NumVars returns the number of variables.
func (R *PolynomialRing) NumVars() int { return len(R.vars) }

// Zero returns the zero polynomial.
func (R *PolynomialRing) Zero() UEAElement {
	return &Polynomial{ring: R, terms: map[string]*polyTerm{}}
}

// One returns the constant polynomial 1.
func (R *PolynomialRing) One() UEAElement {
	return R.constant(big.NewRat(1, 1))
}

// Gen returns the i-th variable as a polynomial.
func (R *PolynomialRing) Gen(i int) (*Polynomial, error) {
	if i < 0 || i >= len(R.vars) {
		return nil, fmt.Errorf("%w: generator %d of %d", ErrBadVector, i, len(R.vars))
	}
	exps := make([]int, len(R.vars))
	exps[i] = 1
	p := &Polynomial{ring: R, terms: map[string]*polyTerm{}}
	p.addTerm(exps, big.NewRat(1, 1))
	return p, nil
}

// String renders e.g. "Multivariate Polynomial Ring in x, y over Rational
// Field".
func (R *PolynomialRing) String() string {
	return fmt.Sprintf("Multivariate Polynomial Ring in %s over %s",
		strings.Join(R.vars, ", "), ring.QQ)
}

func (R *PolynomialRing) constant(c *big.Rat) *Polynomial {
	p := &Polynomial{ring: R, terms: map[string]*polyTerm{}}
	p.addTerm(make([]int, len(R.vars)), c)
	return p
}

// polyTerm is one monomial with its coefficient.
type polyTerm struct {
	exps  []int
	coeff *big.Rat
}

// Polynomial is a sparse multivariate polynomial over ℚ. Operations never
// mutate their operands.
type Polynomial struct {
	ring  *PolynomialRing
	terms map[string]*polyTerm // key = monoKey(exps)
}

// Ring returns the parent polynomial ring.
func (p *Polynomial) Ring() *PolynomialRing { return p.ring }

// Add returns p + other.
func (p *Polynomial) Add(other UEAElement) (UEAElement, error) {
	q, err := p.sameRing(other)
	if err != nil {
		return nil, err
	}
	out := p.clone()
	for _, t := range q.terms {
		out.addTerm(t.exps, t.coeff)
	}
	return out, nil
}

// ScalarMul returns c·p.
func (p *Polynomial) ScalarMul(c *big.Rat) UEAElement {
	out := &Polynomial{ring: p.ring, terms: map[string]*polyTerm{}}
	if c == nil || c.Sign() == 0 {
		return out
	}
	for _, t := range p.terms {
		out.addTerm(t.exps, new(big.Rat).Mul(c, t.coeff))
	}
	return out
}

// Mul returns the product p·other (commutative).
func (p *Polynomial) Mul(other UEAElement) (UEAElement, error) {
	q, err := p.sameRing(other)
	if err != nil {
		return nil, err
	}
	out := &Polynomial{ring: p.ring, terms: map[string]*polyTerm{}}
	for _, a := range p.terms {
		for _, b := range q.terms {
			exps := make([]int, len(a.exps))
			for i := range exps {
				exps[i] = a.exps[i] + b.exps[i]
			}
			out.addTerm(exps, new(big.Rat).Mul(a.coeff, b.coeff))
		}
	}
	return out, nil
}

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Equal reports exact equality of polynomials over the same ring.
func (p *Polynomial) Equal(other UEAElement) bool {
	q, err := p.sameRing(other)
	if err != nil || len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || t.coeff.Cmp(u.coeff) != 0 {
			return false
		}
	}
	return true
}

// String renders terms in a deterministic order: total degree ascending,
// then exponent-vector lexicographic. The zero polynomial renders as "0".
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := make([]*polyTerm, 0, len(p.terms))
	for _, t := range p.terms {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		di, dj := totalDegree(terms[i].exps), totalDegree(terms[j].exps)
		if di != dj {
			return di < dj
		}
		for k := range terms[i].exps {
			if terms[i].exps[k] != terms[j].exps[k] {
				return terms[i].exps[k] < terms[j].exps[k]
			}
		}
		return false
	})
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, p.renderTerm(t))
	}
	return strings.Join(parts, " + ")
}

func (p *Polynomial) renderTerm(t *polyTerm) string {
	mono := make([]string, 0, len(t.exps))
	for i, e := range t.exps {
		switch {
		case e == 1:
			mono = append(mono, p.ring.vars[i])
		case e > 1:
			mono = append(mono, fmt.Sprintf("%s^%d", p.ring.vars[i], e))
		}
	}
	if len(mono) == 0 {
		return t.coeff.RatString()
	}
	m := strings.Join(mono, "*")
	if t.coeff.Cmp(big.NewRat(1, 1)) == 0 {
		return m
	}
	return t.coeff.RatString() + "*" + m
}

// addTerm accumulates coeff·x^exps into p, dropping cancelled terms.
func (p *Polynomial) addTerm(exps []int, coeff *big.Rat) {
	if coeff.Sign() == 0 {
		return
	}
	k := monoKey(exps)
	if t, ok := p.terms[k]; ok {
		sum := new(big.Rat).Add(t.coeff, coeff)
		if sum.Sign() == 0 {
			delete(p.terms, k)
			return
		}
		t.coeff = sum
		return
	}
	p.terms[k] = &polyTerm{exps: append([]int(nil), exps...), coeff: new(big.Rat).Set(coeff)}
}

func (p *Polynomial) clone() *Polynomial {
	out := &Polynomial{ring: p.ring, terms: make(map[string]*polyTerm, len(p.terms))}
	for _, t := range p.terms {
		out.addTerm(t.exps, t.coeff)
	}
	return out
}

func (p *Polynomial) sameRing(other UEAElement) (*Polynomial, error) {
	q, ok := other.(*Polynomial)
	if !ok || q.ring != p.ring {
		return nil, ErrMismatchedParents
	}
	return q, nil
}

func monoKey(exps []int) string {
	parts := make([]string, len(exps))
	for i, e := range exps {
		parts[i] = fmt.Sprintf("%d", e)
	}
	return strings.Join(parts, ",")
}

func totalDegree(exps []int) int {
	d := 0
	for _, e := range exps {
		d += e
	}
	return d
}
