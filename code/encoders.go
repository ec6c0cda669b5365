// Package code: the two stock encoders. Both reduce encoding to one
// vector-matrix product; they differ in where the generator matrix comes
// from.

package code

import (
	"errors"
	"fmt"

	"github.com/cartanlib/cartan/matrix"
)

// matrixEncoder encodes via msg ↦ msg·G for a fixed generator matrix.
type matrixEncoder struct {
	code LinearCode
	gen  *matrix.Dense
	name string
}

// NewGeneratorMatrixEncoder builds the encoder using the code's own
// generator matrix.
func NewGeneratorMatrixEncoder(c LinearCode) (Encoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	G, err := c.GeneratorMatrix()
	if err != nil {
		return nil, err
	}
	return &matrixEncoder{code: c, gen: G, name: "generator matrix"}, nil
}

// NewParityCheckEncoder builds the encoder from the code's parity-check
// matrix, recomputing a generator matrix as its right nullspace. Codes
// whose parity-check matrix is not computable (subfield subcodes) fail
// here, at construction.
func NewParityCheckEncoder(c LinearCode) (Encoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	H, err := c.ParityCheckMatrix()
	if err != nil {
		return nil, err
	}
	G, err := H.NullspaceBasis()
	if err != nil {
		return nil, err
	}
	if G == nil {
		return nil, fmt.Errorf("%w: parity check matrix has trivial nullspace", ErrBadGeneratorMatrix)
	}
	return &matrixEncoder{code: c, gen: G, name: "parity check"}, nil
}

// Code returns the target code.
func (e *matrixEncoder) Code() LinearCode { return e.code }

// MessageLength returns the number of message symbols per codeword.
func (e *matrixEncoder) MessageLength() int { return e.gen.Rows() }

// Encode maps message to message·G.
func (e *matrixEncoder) Encode(message []uint64) ([]uint64, error) {
	word, err := e.gen.VecMul(message)
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) || errors.Is(err, matrix.ErrBadEntry) {
			return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
		}
		return nil, err
	}
	return word, nil
}

// String renders e.g. "Generator matrix encoder for Linear code of ...".
func (e *matrixEncoder) String() string {
	if e.name == "parity check" {
		return fmt.Sprintf("Parity check based encoder for %s", e.code)
	}
	return fmt.Sprintf("Generator matrix based encoder for %s", e.code)
}
