// Package ring provides the base-ring substrate for the rest of the module:
// descriptors for the rational field ℚ and fully computable finite fields
// GF(p^m).
//
// 🚀 What lives here?
//
//   - Ring        — a minimal descriptor interface (characteristic,
//     finiteness, printable name) that the lie and code packages use to
//     parameterize categories and codes without caring about element types.
//   - Rationals   — the descriptor for ℚ. Arithmetic over ℚ is done with
//     math/big (*big.Rat) directly by the consuming packages; ℚ needs no
//     element encoding of its own.
//   - GF          — a concrete finite field GF(p^m). Elements are uint64
//     values in [0, p^m) encoding polynomials over GF(p) in base-p digits;
//     multiplication reduces modulo a monic irreducible polynomial found
//     once at construction.
//
// ⚙️ Usage:
//
//	F, err := ring.NewGF(2, 4)      // GF(16)
//	if err != nil { ... }
//	c := F.Mul(a, b)                 // exact, no tables, no floats
//	inv, err := F.Inv(c)             // Fermat: c^(q-2); err on zero
//
// All arithmetic is exact. Operands must be canonical field elements
// (< Order()); out-of-range operands are a programmer error and panic,
// mirroring slice-index semantics.
//
// Complexity: Add/Neg are O(m); Mul is O(m²); Inv and Exp are O(m²·log q).
// Field construction is O(p^(m/2+1) · m²) for the irreducible search, which
// is negligible for the supported sizes (Order ≤ 2²⁰).
package ring
