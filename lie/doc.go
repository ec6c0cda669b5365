// Package lie implements the category of Lie algebras: structural axioms,
// bracket dispatch, abelian/nilpotency predicates, exact law checkers, and
// the canonical lift into the universal enveloping algebra.
//
// 🚀 The model:
//
//   - Category — an immutable descriptor "Lie algebras over R", refinable
//     with axioms (Nilpotent, FiniteDimensional, WithBasis, Graded). Axiom
//     composition is a set join: associative, commutative, idempotent.
//     A Lie algebra is always a module over its base ring — and deliberately
//     NOT an associative algebra: its multiplication is the bracket, which
//     must never be conflated with ring multiplication.
//   - Algebra / Element — the structural contracts every concrete Lie
//     algebra satisfies. Optional capabilities (basis, coordinate module,
//     nilpotency step, enveloping algebra, killing form, ...) are separate
//     interfaces; a missing capability surfaces as ErrNotSupported, never as
//     a silent default.
//   - Bracket — three-way dispatch exactly as in the category: two algebras
//     give their product space, an algebra and an element give an ideal,
//     two elements are coerced and bracketed, with [x,0] = [0,x] = 0.
//   - LiftMorphism — the unique structure-preserving map L → U(L), built
//     lazily at most once per algebra (sync.Once) and registered
//     idempotently; after that, LiftElement coerces automatically.
//   - Law checkers — CheckAntisymmetry, CheckJacobiIdentity,
//     CheckDistributivity run the algebraic laws against a bounded sample of
//     elements with exact arithmetic: zero tolerance, no floating point.
//
// Concrete algebras included: structure-constant algebras over ℚ with
// constructors NewAbelian (UEA = polynomial ring, lift supported),
// NewHeisenberg (nilpotent of step 2) and NewSL2 (not nilpotent).
//
// ⚙️ Usage:
//
//	L, _ := lie.NewHeisenberg(1)             // basis p1, q1, z
//	C := lie.LieAlgebras(ring.QQ).Nilpotent()
//	ok := C.Contains(L)                       // true
//	b := L.Basis()
//	pz, _ := b[0].Bracket(b[1])               // z
//	err := lie.CheckLaws(L)                   // nil: Jacobi et al. hold
//
// Scalars are *math/big.Rat throughout: the category's own tests and the
// BCH machinery require exact rational coefficients.
package lie
