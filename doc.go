// Package cartan is a small exact computer-algebra toolkit: the category of
// Lie algebras with its structural axioms, the Baker–Campbell–Hausdorff
// machinery, and subfield subcodes of linear codes over finite fields.
//
// 🚀 What is cartan?
//
//	A pure-Go library of exact algebraic structures and algorithms:
//		• Base rings: ℚ (math/big rationals) and finite fields GF(p^m)
//		• Matrices over finite fields: RREF, rank, nullspace — all exact
//		• The Lie-algebra category: axioms (Nilpotent, FiniteDimensional,
//		  WithBasis, Graded), bracket dispatch, abelian predicates,
//		  structural law checkers (Jacobi, antisymmetry, distributivity)
//		• The lift morphism into the universal enveloping algebra
//		• The Baker–Campbell–Hausdorff series as a lazy term stream
//		• Linear codes with pluggable encoders/decoders and subfield subcodes
//
// ✨ Why choose cartan?
//
//   - Exact arithmetic everywhere – no floating point, no tolerances
//   - Clear contracts – every failure is a package sentinel error
//   - Pure Go – no cgo, no hidden deps
//   - Small, orthogonal packages – import only what you use
//
// The module is organized into five subpackages:
//
//	ring/   — base-ring descriptors, rationals and finite fields GF(p^m)
//	matrix/ — dense matrices with entries in a finite field
//	lie/    — Lie-algebra category, axioms, brackets, laws, lift morphism
//	bch/    — Baker–Campbell–Hausdorff series over any lie.Algebra
//	code/   — linear codes, encoder/decoder registry, subfield subcodes
//
// Quick taste — the BCH formula on the rank-1 Heisenberg algebra:
//
//	L, _ := lie.NewHeisenberg(1)
//	basis := L.Basis()
//	Z, _ := bch.Log(L, basis[0], basis[1]) // p1 + q1 + 1/2*z, exact
//
// Dive into each package's doc.go for contracts, error sets and examples.
//
//	go get github.com/cartanlib/cartan
package cartan
