// Package code: subfield subcodes. For a code C over GF(q^t) and a
// subfield GF(q), the subcode keeps exactly the codewords whose every
// coordinate lies in GF(q).

package code

import (
	"fmt"

	"github.com/cartanlib/cartan/matrix"
	"github.com/cartanlib/cartan/ring"
)

// SubfieldSubcode is the subfield subcode of an original code. Computing
// its generator or parity-check matrix needs an expansion of the field
// tower that is not built here, so Dimension, GeneratorMatrix and
// ParityCheckMatrix are acknowledged gaps; the dimension bounds are exact.
// Immutable.
type SubfieldSubcode struct {
	original LinearCode
	sub      *ring.GF
}

// NewSubfieldSubcode builds the subfield subcode of original over
// subfield. The subfield must be a finite field (ErrNotFiniteField) that
// embeds into the original's base field: same characteristic, extension
// degree dividing (ErrNotSubfield).
func NewSubfieldSubcode(original LinearCode, subfield ring.Ring) (*SubfieldSubcode, error) {
	if original == nil {
		return nil, ErrNilCode
	}
	sub, ok := subfield.(*ring.GF)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFiniteField, subfield)
	}
	if !sub.SubfieldOf(original.BaseField()) {
		return nil, fmt.Errorf("%w: %s into %s", ErrNotSubfield, sub, original.BaseField())
	}
	return &SubfieldSubcode{original: original, sub: sub}, nil
}

// Length returns the block length, shared with the original code.
func (c *SubfieldSubcode) Length() int { return c.original.Length() }

// BaseField returns the subfield the subcode's coordinates live in.
func (c *SubfieldSubcode) BaseField() *ring.GF { return c.sub }

// OriginalCode returns the code the subcode was carved from.
func (c *SubfieldSubcode) OriginalCode() LinearCode { return c.original }

// Dimension is an acknowledged gap: it needs the generator matrix.
func (c *SubfieldSubcode) Dimension() (int, error) {
	return 0, fmt.Errorf("subfield subcode dimension: %w", ErrNotImplemented)
}

// DimensionUpperBound returns the dimension of the original code: the
// subcode can only lose dimensions.
func (c *SubfieldSubcode) DimensionUpperBound() (int, error) {
	return c.original.Dimension()
}

// DimensionLowerBound returns n − t·(n−k) where t is the extension degree
// of the original base field over the subfield. The bound can be negative
// (then it carries no information); it is returned as computed.
func (c *SubfieldSubcode) DimensionLowerBound() (int, error) {
	k, err := c.original.Dimension()
	if err != nil {
		return 0, err
	}
	n := c.original.Length()
	t := int(c.original.BaseField().ExtensionDegree() - c.sub.ExtensionDegree())
	return n - t*(n-k), nil
}

// GeneratorMatrix is an acknowledged gap.
func (c *SubfieldSubcode) GeneratorMatrix() (*matrix.Dense, error) {
	return nil, fmt.Errorf("subfield subcode generator matrix: %w", ErrNotImplemented)
}

// ParityCheckMatrix is an acknowledged gap.
func (c *SubfieldSubcode) ParityCheckMatrix() (*matrix.Dense, error) {
	return nil, fmt.Errorf("subfield subcode parity check matrix: %w", ErrNotImplemented)
}

// DefaultEncoderName returns "ParityCheck".
func (c *SubfieldSubcode) DefaultEncoderName() string { return "ParityCheck" }

// DefaultDecoderName returns "Syndrome".
func (c *SubfieldSubcode) DefaultDecoderName() string { return "Syndrome" }

// Equal reports whether other is a subfield subcode of an equal original
// code over a subfield of the same order.
func (c *SubfieldSubcode) Equal(other LinearCode) bool {
	o, ok := other.(*SubfieldSubcode)
	if !ok {
		return false
	}
	return c.original.Equal(o.original) && c.sub.Order() == o.sub.Order()
}

// String renders e.g. "Subfield subcode over GF(2^2) coming from Linear
// code of length 7, dimension 3 over GF(2^4)".
func (c *SubfieldSubcode) String() string {
	return fmt.Sprintf("Subfield subcode over %s coming from %s", c.sub, c.original)
}
