// Package code: the LinearCode contract and the Generic implementation.

package code

import (
	"fmt"
	"sync"

	"github.com/cartanlib/cartan/matrix"
	"github.com/cartanlib/cartan/ring"
)

// maxEnumeration bounds the exhaustive codeword walks (MinimumDistance,
// the NearestNeighbor decoder): q^k above this is refused.
const maxEnumeration = 1 << 22

// LinearCode is an [n, k] linear code over a finite field. Implementations
// whose dimension or matrices are not (yet) computable return
// ErrNotImplemented from the corresponding methods; Length, BaseField,
// Equal and String always answer.
type LinearCode interface {
	// Length returns the block length n.
	Length() int

	// Dimension returns the dimension k.
	Dimension() (int, error)

	// BaseField returns the field the codeword coordinates live in.
	BaseField() *ring.GF

	// GeneratorMatrix returns a k×n generator matrix.
	GeneratorMatrix() (*matrix.Dense, error)

	// ParityCheckMatrix returns an (n−k)×n matrix H with H·cᵀ = 0 exactly
	// for the codewords c.
	ParityCheckMatrix() (*matrix.Dense, error)

	// DefaultEncoderName names the registered encoder NewEncoder falls back
	// to when given the empty name.
	DefaultEncoderName() string

	// DefaultDecoderName names the registered decoder NewDecoder falls back
	// to when given the empty name.
	DefaultDecoderName() string

	// Equal reports whether both codes contain exactly the same codewords.
	Equal(other LinearCode) bool

	// String returns a human-readable description.
	String() string
}

// Generic is a linear code presented by an explicit generator matrix.
// Immutable after construction; the parity-check matrix is derived once,
// on first demand.
type Generic struct {
	field *ring.GF
	gen   *matrix.Dense

	parityOnce sync.Once
	parity     *matrix.Dense
	parityErr  error
}

// NewGeneric builds the code spanned by the rows of G. G must be a k×n
// matrix with 1 <= k < n and full row rank; anything else is
// ErrBadGeneratorMatrix.
func NewGeneric(G *matrix.Dense) (*Generic, error) {
	if G == nil {
		return nil, ErrBadGeneratorMatrix
	}
	k, n := G.Rows(), G.Cols()
	if k < 1 || k >= n {
		return nil, fmt.Errorf("%w: %d x %d", ErrBadGeneratorMatrix, k, n)
	}
	if G.Rank() != k {
		return nil, fmt.Errorf("%w: rank %d of %d rows", ErrBadGeneratorMatrix, G.Rank(), k)
	}
	return &Generic{field: G.Field(), gen: G.Clone()}, nil
}

// Length returns the block length n.
func (c *Generic) Length() int { return c.gen.Cols() }

// Dimension returns the dimension k.
func (c *Generic) Dimension() (int, error) { return c.gen.Rows(), nil }

// BaseField returns the coordinate field.
func (c *Generic) BaseField() *ring.GF { return c.field }

// GeneratorMatrix returns a copy of the generator matrix.
func (c *Generic) GeneratorMatrix() (*matrix.Dense, error) {
	return c.gen.Clone(), nil
}

// ParityCheckMatrix returns the parity-check matrix, computed once as a
// basis of the right nullspace of the generator matrix.
func (c *Generic) ParityCheckMatrix() (*matrix.Dense, error) {
	c.parityOnce.Do(func() {
		c.parity, c.parityErr = c.gen.NullspaceBasis()
	})
	if c.parityErr != nil {
		return nil, c.parityErr
	}
	return c.parity.Clone(), nil
}

// DefaultEncoderName returns "GeneratorMatrix".
func (c *Generic) DefaultEncoderName() string { return "GeneratorMatrix" }

// DefaultDecoderName returns "Syndrome".
func (c *Generic) DefaultDecoderName() string { return "Syndrome" }

// Equal reports whether other spans the same codewords: same field, same
// length, and identical reduced row echelon forms of the generator
// matrices.
func (c *Generic) Equal(other LinearCode) bool {
	o, ok := other.(*Generic)
	if !ok {
		return false
	}
	r1, _, err1 := c.gen.RREF()
	r2, _, err2 := o.gen.RREF()
	if err1 != nil || err2 != nil {
		return false
	}
	return r1.Equal(r2)
}

// MinimumDistance returns the smallest Hamming weight of a nonzero
// codeword, by walking all q^k messages. Codes with q^k beyond the
// enumeration bound are refused with ErrCodeTooLarge.
func (c *Generic) MinimumDistance() (int, error) {
	best := c.Length() + 1
	err := c.forEachCodeword(func(msg, word []uint64) {
		w := weight(word)
		if w > 0 && w < best {
			best = w
		}
	})
	if err != nil {
		return 0, err
	}
	return best, nil
}

// String renders e.g. "Linear code of length 7, dimension 4 over GF(2)".
func (c *Generic) String() string {
	return fmt.Sprintf("Linear code of length %d, dimension %d over %s",
		c.Length(), c.gen.Rows(), c.field)
}

// forEachCodeword calls fn for every (message, codeword) pair, the zero
// message included.
func (c *Generic) forEachCodeword(fn func(msg, word []uint64)) error {
	k := c.gen.Rows()
	q := c.field.Order()
	total := uint64(1)
	for i := 0; i < k; i++ {
		if total > maxEnumeration/q {
			return fmt.Errorf("%w: %s", ErrCodeTooLarge, c)
		}
		total *= q
	}
	msg := make([]uint64, k)
	for {
		word, err := c.gen.VecMul(msg)
		if err != nil {
			return err
		}
		fn(msg, word)
		// odometer step in base q
		i := 0
		for ; i < k; i++ {
			msg[i]++
			if msg[i] < q {
				break
			}
			msg[i] = 0
		}
		if i == k {
			return nil
		}
	}
}

// weight counts the nonzero coordinates.
func weight(v []uint64) int {
	w := 0
	for _, x := range v {
		if x != 0 {
			w++
		}
	}
	return w
}

// hammingDistance counts coordinates where a and b differ.
func hammingDistance(a, b []uint64) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}
