// Package code: sentinel error set (unified, consistent).
// Callers and tests match with errors.Is; constructors never return partial
// objects alongside an error.

package code

import "errors"

var (
	// ErrNilCode indicates a nil code where a linear code was required.
	ErrNilCode = errors.New("code: original code must be a linear code")

	// ErrNotFiniteField indicates a subfield argument that is not a finite
	// field descriptor.
	ErrNotFiniteField = errors.New("code: subfield has to be a finite field")

	// ErrNotSubfield indicates a subfield that does not embed into the base
	// field of the original code.
	ErrNotSubfield = errors.New("code: subfield has to be a subfield of the base field of the original code")

	// ErrBadGeneratorMatrix indicates a generator matrix that is nil, not
	// strictly wider than tall, or not of full row rank.
	ErrBadGeneratorMatrix = errors.New("code: generator matrix must have full row rank and k < n")

	// ErrBadMessage indicates a message vector of the wrong length or with
	// symbols outside the field.
	ErrBadMessage = errors.New("code: message does not fit the encoder")

	// ErrBadWord indicates a received word of the wrong length or with
	// symbols outside the field.
	ErrBadWord = errors.New("code: received word does not fit the code")

	// ErrUnknownEncoder indicates an encoder name nobody registered.
	ErrUnknownEncoder = errors.New("code: unknown encoder name")

	// ErrUnknownDecoder indicates a decoder name nobody registered.
	ErrUnknownDecoder = errors.New("code: unknown decoder name")

	// ErrNotImplemented marks acknowledged gaps (the dimension and
	// parity-check matrix of a subfield subcode).
	ErrNotImplemented = errors.New("code: not yet implemented")

	// ErrCodeTooLarge guards the exhaustive codeword walks.
	ErrCodeTooLarge = errors.New("code: code too large for exhaustive enumeration")

	// ErrDecodingFailed indicates a received word outside the decoder's
	// correction radius.
	ErrDecodingFailed = errors.New("code: decoding failed")
)
