// Package code implements linear error-correcting codes over finite fields,
// together with a named encoder/decoder registry and subfield subcodes.
//
// 🚀 What you get
//
//   - Generic: an [n, k] linear code presented by a full-row-rank generator
//     matrix over a ring.GF field, with a lazily derived parity-check matrix
//     and an exhaustive minimum-distance computation.
//   - SubfieldSubcode: given a code C over GF(q^t) and a subfield GF(q),
//     the code of all codewords of C whose every coordinate lies in GF(q).
//     Construction validates the tower; dimension bounds are exact formulas
//     even where the dimension itself is not computed.
//   - A registry of named encoders ("GeneratorMatrix", "ParityCheck") and
//     decoders ("Syndrome", "NearestNeighbor"). Each code names its default
//     pair, so NewEncoder(c, "") always resolves.
//
// ✨ Exactness
//
// All arithmetic happens in the exact field tables of package ring; there
// is no probabilistic decoding and no floating point anywhere.
//
// ⚙️ Cost model
//
// MinimumDistance and the NearestNeighbor decoder walk all qᵏ codewords and
// refuse oversized codes with ErrCodeTooLarge; the Syndrome decoder builds
// its table once per decoder, sized by the chosen radius.
package code
