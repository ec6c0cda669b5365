// Package matrix provides dense matrices with entries in a finite field
// GF(p^m) and the exact linear algebra the coding-theory layer needs:
// multiplication, transpose, reduced row echelon form, rank and nullspace.
//
// 🚀 Design:
//
//   - One entry type: uint64 field elements of a single *ring.GF carried by
//     the matrix. Mixing fields across operands is a checked error
//     (ErrFieldMismatch), never silent coercion.
//   - All arithmetic is exact. There is no epsilon, no NaN policy, no
//     floating point anywhere: equality of entries is integer equality.
//   - Operands are never mutated; every operation allocates its result.
//     RREF is the one exception by request: it works on a clone internally
//     and returns fresh storage.
//   - Deterministic: fixed row-major loops, no randomness, no global state.
//
// ⚙️ Usage:
//
//	F, _ := ring.NewGF(2, 1)
//	G, _ := matrix.NewDenseFromRows(F, [][]uint64{
//	    {1, 0, 1},
//	    {0, 1, 1},
//	})
//	H, _ := G.NullspaceBasis()       // parity-check from generator
//	r := G.Rank()                    // 2
//
// Errors:
//   - ErrNilField          — constructor received a nil field.
//   - ErrBadShape          — non-positive or ragged dimensions.
//   - ErrBadEntry          — entry is not a canonical element of the field.
//   - ErrOutOfRange        — index outside [0,rows)×[0,cols).
//   - ErrDimensionMismatch — operand shapes incompatible.
//   - ErrFieldMismatch     — operands live over different fields.
//
// All sentinels are matched with errors.Is; no public API panics on
// user-triggered conditions.
package matrix
