// Package bch: Bernoulli numbers over ℚ, computed by the defining
// recurrence and memoized. The series coefficients B₂ₚ/(2p)! come from
// here; nothing in this file is approximate.

package bch

import (
	"math/big"
	"sync"
)

// bernMemo holds B_0..B_n computed so far. The recurrence is quadratic in
// the index, so the memo keeps repeated Stream construction cheap.
var bernMemo = struct {
	mu sync.Mutex
	b  []*big.Rat
}{b: []*big.Rat{big.NewRat(1, 1)}}

// Bernoulli returns the m-th Bernoulli number (first convention,
// B_1 = -1/2) as a fresh *big.Rat. Negative m is a programmer error and
// panics.
func Bernoulli(m int) *big.Rat {
	if m < 0 {
		panic("bch: Bernoulli requires m >= 0")
	}
	bernMemo.mu.Lock()
	defer bernMemo.mu.Unlock()
	for n := len(bernMemo.b); n <= m; n++ {
		// B_n = -1/(n+1) · Σ_{j=0}^{n-1} C(n+1, j) · B_j
		sum := new(big.Rat)
		for j := 0; j < n; j++ {
			c := new(big.Int).Binomial(int64(n+1), int64(j))
			sum.Add(sum, new(big.Rat).Mul(new(big.Rat).SetInt(c), bernMemo.b[j]))
		}
		bn := sum.Mul(sum, big.NewRat(-1, int64(n+1)))
		bernMemo.b = append(bernMemo.b, bn)
	}
	return new(big.Rat).Set(bernMemo.b[m])
}

// factorialRat returns n! as a *big.Rat (the empty product for n < 1).
func factorialRat(n int) *big.Rat {
	return new(big.Rat).SetInt(new(big.Int).MulRange(1, int64(n)))
}
