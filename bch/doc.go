// Package bch computes the Baker–Campbell–Hausdorff series
//
//	log(exp(X)·exp(Y)) = Z₁ + Z₂ + Z₃ + …
//
// for elements X, Y of a Lie algebra over a base ring of characteristic
// zero, with exact rational coefficients throughout.
//
// 🚀 What you get
//
//   - Stream: a lazy term iterator producing Z₁, Z₂, … one at a time via the
//     Varadarajan recursion, reusing all previously computed terms.
//   - Log: the one-call summation. On a nilpotent algebra the series is a
//     finite sum and Log returns it whole; otherwise an explicit precision
//     must be chosen with WithPrec, or ErrPrecisionRequired is returned.
//
// ✨ Exactness
//
// Coefficients are *big.Rat from start to finish: Bernoulli numbers come
// from the defining recurrence, never from floating point, so
// Log(H, X, Y) on a Heisenberg algebra is literally X + Y + ½[X,Y].
//
// ⚙️ Termination
//
// On an algebra with declared nilpotency step s every term beyond Z_s
// vanishes, so the stream ends after s terms. Anywhere else the series is
// infinite and the caller owns the truncation depth.
//
// Complexity of term m: the recursion sums over integer compositions of
// m−1, so cost grows quickly with m; intended depths are the small ones
// nilpotent algebras and hand-chosen precisions ask for.
package bch
