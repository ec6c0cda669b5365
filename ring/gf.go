// Package ring: finite fields GF(p^m).
//
// Representation:
//
//	An element is a uint64 in [0, p^m) read as base-p digits
//	c_0 + c_1·p + … + c_{m-1}·p^{m-1}, encoding the residue polynomial
//	c_0 + c_1·x + … + c_{m-1}·x^{m-1} over GF(p). For p = 2 this is plain
//	bit-packing, the convention used by every Galois-field codec.
//
// Multiplication multiplies the residue polynomials and reduces modulo a
// monic irreducible polynomial of degree m chosen deterministically at
// construction (smallest in the base-p encoding). Inversion uses Fermat's
// little theorem: a^(q-2) for q = p^m.

package ring

import "fmt"

// MaxOrder bounds the supported field order p^m. Large enough for every
// coding-theory field in this module, small enough that the irreducible
// search at construction stays trivial.
const MaxOrder = 1 << 20

// GF is a finite field GF(p^m). Immutable after construction; safe for
// concurrent use.
type GF struct {
	p     uint64   // characteristic, prime
	m     uint64   // extension degree, >= 1
	order uint64   // p^m
	irred []uint64 // monic irreducible of degree m, little-endian; nil iff m == 1
}

// NewGF constructs the finite field GF(p^m).
//
// Returns:
//   - ErrNotPrime      if p is not prime.
//   - ErrBadDegree     if m < 1.
//   - ErrFieldTooLarge if p^m > MaxOrder.
//
// Construction is deterministic: the same (p, m) always yields the same
// reduction polynomial, so elements are portable across instances.
func NewGF(p, m uint64) (*GF, error) {
	if !isPrime(p) {
		return nil, ErrNotPrime
	}
	if m < 1 {
		return nil, ErrBadDegree
	}
	order := uint64(1)
	for i := uint64(0); i < m; i++ {
		if order > MaxOrder/p {
			return nil, ErrFieldTooLarge
		}
		order *= p
	}
	f := &GF{p: p, m: m, order: order}
	if m > 1 {
		f.irred = findIrreducible(p, m)
	}
	return f, nil
}

// Characteristic returns p.
func (f *GF) Characteristic() uint64 { return f.p }

// ExtensionDegree returns m, the degree of GF(p^m) over its prime field.
func (f *GF) ExtensionDegree() uint64 { return f.m }

// Order returns the number of field elements, p^m.
func (f *GF) Order() uint64 { return f.order }

// IsFinite returns true: every GF is finite.
func (f *GF) IsFinite() bool { return true }

// Zero returns the additive identity.
func (f *GF) Zero() uint64 { return 0 }

// One returns the multiplicative identity.
func (f *GF) One() uint64 { return 1 }

// String returns "GF(p)" for prime fields and "GF(p^m)" otherwise.
func (f *GF) String() string {
	if f.m == 1 {
		return fmt.Sprintf("GF(%d)", f.p)
	}
	return fmt.Sprintf("GF(%d^%d)", f.p, f.m)
}

// SubfieldOf reports whether this field embeds into ext as a subfield:
// equal characteristic and extension degree dividing ext's degree.
func (f *GF) SubfieldOf(ext *GF) bool {
	return f.p == ext.p && ext.m%f.m == 0
}

// Add returns a + b.
func (f *GF) Add(a, b uint64) uint64 {
	f.check(a)
	f.check(b)
	var out, pow uint64 = 0, 1
	for i := uint64(0); i < f.m; i++ {
		out += ((a%f.p + b%f.p) % f.p) * pow
		a /= f.p
		b /= f.p
		pow *= f.p
	}
	return out
}

// Neg returns the additive inverse of a.
func (f *GF) Neg(a uint64) uint64 {
	f.check(a)
	var out, pow uint64 = 0, 1
	for i := uint64(0); i < f.m; i++ {
		out += ((f.p - a%f.p) % f.p) * pow
		a /= f.p
		pow *= f.p
	}
	return out
}

// Sub returns a - b.
func (f *GF) Sub(a, b uint64) uint64 { return f.Add(a, f.Neg(b)) }

// Mul returns a · b, reducing modulo the field's irreducible polynomial.
// Complexity: O(m²).
func (f *GF) Mul(a, b uint64) uint64 {
	f.check(a)
	f.check(b)
	if f.m == 1 {
		return a * b % f.p
	}
	prod := polyMul(f.decode(a), f.decode(b), f.p)
	return f.encode(polyMod(prod, f.irred, f.p))
}

// Exp returns a^e by binary exponentiation; a^0 = 1, including 0^0 = 1.
func (f *GF) Exp(a, e uint64) uint64 {
	f.check(a)
	out := uint64(1)
	for e > 0 {
		if e&1 == 1 {
			out = f.Mul(out, a)
		}
		a = f.Mul(a, a)
		e >>= 1
	}
	return out
}

// Inv returns the multiplicative inverse of a, or ErrDivisionByZero for a = 0.
func (f *GF) Inv(a uint64) (uint64, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return f.Exp(a, f.order-2), nil
}

// Div returns a / b, or ErrDivisionByZero for b = 0.
func (f *GF) Div(a, b uint64) (uint64, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

// check panics on a non-canonical element; passing one is a programmer error,
// same contract as an out-of-range slice index.
func (f *GF) check(a uint64) {
	if a >= f.order {
		panic(fmt.Sprintf("ring: %d is not an element of %s", a, f))
	}
}

// decode expands an element into little-endian base-p digits of length m.
func (f *GF) decode(a uint64) []uint64 {
	out := make([]uint64, f.m)
	for i := range out {
		out[i] = a % f.p
		a /= f.p
	}
	return out
}

// encode packs little-endian base-p digits back into an element.
func (f *GF) encode(c []uint64) uint64 {
	var out, pow uint64 = 0, 1
	for i := uint64(0); i < f.m; i++ {
		if int(i) < len(c) {
			out += c[i] % f.p * pow
		}
		pow *= f.p
	}
	return out
}

// isPrime reports primality by trial division; inputs here are tiny.
func isPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	for d := uint64(2); d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}
	return true
}

// --- polynomial helpers over GF(p), little-endian coefficient slices ---

// polyTrim drops trailing zero coefficients.
func polyTrim(a []uint64) []uint64 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// polyMul multiplies two polynomials over GF(p).
func polyMul(a, b []uint64, p uint64) []uint64 {
	a, b = polyTrim(a), polyTrim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] = (out[i+j] + ca*cb) % p
		}
	}
	return out
}

// polyMod returns the remainder of a modulo the monic polynomial mod.
func polyMod(a, mod []uint64, p uint64) []uint64 {
	a = append([]uint64(nil), a...)
	mod = polyTrim(mod)
	d := len(mod) - 1
	for len(polyTrim(a)) > d {
		a = polyTrim(a)
		lead := a[len(a)-1]
		shift := len(a) - 1 - d
		for i, c := range mod {
			// subtract lead * mod * x^shift
			a[shift+i] = (a[shift+i] + p*lead - lead*c%p) % p
		}
	}
	return polyTrim(a)
}

// findIrreducible returns the smallest (in base-p encoding) monic irreducible
// polynomial of degree m over GF(p). Irreducibility is checked by trial
// division over all monic polynomials of degree 1..m/2 — fine within MaxOrder.
func findIrreducible(p, m uint64) []uint64 {
	lowLimit := uint64(1)
	for i := uint64(0); i < m; i++ {
		lowLimit *= p
	}
	for low := uint64(0); low < lowLimit; low++ {
		cand := make([]uint64, m+1)
		x := low
		for i := uint64(0); i < m; i++ {
			cand[i] = x % p
			x /= p
		}
		cand[m] = 1
		if polyIrreducible(cand, p) {
			return cand
		}
	}
	// Unreachable: irreducible polynomials of every degree exist over GF(p).
	panic("ring: no irreducible polynomial found")
}

// polyIrreducible reports whether the monic polynomial f (degree >= 1) has no
// monic divisor of degree 1..deg(f)/2.
func polyIrreducible(f []uint64, p uint64) bool {
	deg := len(polyTrim(f)) - 1
	for d := 1; d <= deg/2; d++ {
		limit := uint64(1)
		for i := 0; i < d; i++ {
			limit *= p
		}
		for low := uint64(0); low < limit; low++ {
			g := make([]uint64, d+1)
			x := low
			for i := 0; i < d; i++ {
				g[i] = x % p
				x /= p
			}
			g[d] = 1
			if len(polyMod(f, g, p)) == 0 {
				return false
			}
		}
	}
	return true
}
