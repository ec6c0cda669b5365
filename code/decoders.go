// Package code: the two stock decoders. Syndrome decoding trades a
// once-per-decoder table for O(n−k) lookups; nearest-neighbor decoding
// trades nothing and pays the full codeword walk on every call.

package code

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cartanlib/cartan/matrix"
)

// DefaultSyndromeRadius is the error weight the syndrome table covers when
// no WithRadius option is given.
const DefaultSyndromeRadius = 1

// maxSyndromeTable bounds the number of error patterns a syndrome table may
// hold.
const maxSyndromeTable = 1 << 20

// SyndromeOption configures NewSyndromeDecoder.
type SyndromeOption func(*syndromeConfig)

type syndromeConfig struct {
	radius int
}

// WithRadius sets the correction radius: the table covers every error
// pattern of weight <= r (r >= 1; anything else is a programmer error and
// panics). Larger radii cost combinatorially more table space.
func WithRadius(r int) SyndromeOption {
	if r < 1 {
		panic("code: WithRadius requires r >= 1")
	}
	return func(c *syndromeConfig) { c.radius = r }
}

// SyndromeDecoder corrects up to DecodingRadius errors via a precomputed
// syndrome → error-pattern table. Safe for concurrent use after
// construction.
type SyndromeDecoder struct {
	code   LinearCode
	parity *matrix.Dense
	radius int
	table  map[string][]uint64 // syndrome key → error pattern
}

// NewSyndromeDecoder builds the decoder and its table. The code's
// parity-check matrix must be computable; the table must fit the size
// bound, or ErrCodeTooLarge is returned.
func NewSyndromeDecoder(c LinearCode, opts ...SyndromeOption) (*SyndromeDecoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	cfg := syndromeConfig{radius: DefaultSyndromeRadius}
	for _, opt := range opts {
		opt(&cfg)
	}
	H, err := c.ParityCheckMatrix()
	if err != nil {
		return nil, err
	}
	d := &SyndromeDecoder{
		code:   c,
		parity: H,
		radius: cfg.radius,
		table:  make(map[string][]uint64),
	}
	zero := make([]uint64, c.Length())
	d.table[syndromeKey(make([]uint64, H.Rows()))] = zero
	// weight-ascending fill: every syndrome keeps its lowest-weight pattern
	for w := 1; w <= cfg.radius; w++ {
		if err := d.fillTable(make([]uint64, c.Length()), 0, w); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// fillTable inserts every error pattern of weight exactly left with support
// in positions >= from, skipping syndromes already claimed by a lighter
// pattern.
func (d *SyndromeDecoder) fillTable(pattern []uint64, from, left int) error {
	if left == 0 {
		if len(d.table) >= maxSyndromeTable {
			return fmt.Errorf("%w: syndrome table for %s", ErrCodeTooLarge, d.code)
		}
		s, err := d.parity.MulVec(pattern)
		if err != nil {
			return err
		}
		key := syndromeKey(s)
		if _, seen := d.table[key]; !seen {
			d.table[key] = append([]uint64(nil), pattern...)
		}
		return nil
	}
	f := d.code.BaseField()
	n := d.code.Length()
	for i := from; i+left <= n; i++ {
		for v := uint64(1); v < f.Order(); v++ {
			pattern[i] = v
			if err := d.fillTable(pattern, i+1, left-1); err != nil {
				pattern[i] = 0
				return err
			}
		}
		pattern[i] = 0
	}
	return nil
}

// Code returns the decoded-into code.
func (d *SyndromeDecoder) Code() LinearCode { return d.code }

// DecodingRadius returns the table's error-weight budget.
func (d *SyndromeDecoder) DecodingRadius() int { return d.radius }

// Decode returns word minus the error pattern its syndrome names, or
// ErrDecodingFailed for syndromes outside the table.
func (d *SyndromeDecoder) Decode(word []uint64) ([]uint64, error) {
	if len(word) != d.code.Length() {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrBadWord, len(word), d.code.Length())
	}
	s, err := d.parity.MulVec(word)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWord, err)
	}
	pattern, ok := d.table[syndromeKey(s)]
	if !ok {
		return nil, fmt.Errorf("%w: more than %d errors", ErrDecodingFailed, d.radius)
	}
	f := d.code.BaseField()
	out := make([]uint64, len(word))
	for i := range word {
		out[i] = f.Sub(word[i], pattern[i])
	}
	return out, nil
}

// String renders e.g. "Syndrome decoder for Linear code of ...".
func (d *SyndromeDecoder) String() string {
	return fmt.Sprintf("Syndrome decoder for %s handling errors of weight up to %d",
		d.code, d.radius)
}

// syndromeKey renders a syndrome vector as a map key.
func syndromeKey(s []uint64) string {
	parts := make([]string, len(s))
	for i, x := range s {
		parts[i] = strconv.FormatUint(x, 10)
	}
	return strings.Join(parts, ",")
}

// NearestNeighborDecoder walks every codeword on every Decode call and
// returns the closest one. Exhaustive and exact; only for small codes.
type NearestNeighborDecoder struct {
	code LinearCode
	gen  *Generic
}

// NewNearestNeighborDecoder builds the decoder; the code's generator
// matrix must be computable.
func NewNearestNeighborDecoder(c LinearCode) (Decoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	G, err := c.GeneratorMatrix()
	if err != nil {
		return nil, err
	}
	g, err := NewGeneric(G)
	if err != nil {
		return nil, err
	}
	return &NearestNeighborDecoder{code: c, gen: g}, nil
}

// Code returns the decoded-into code.
func (d *NearestNeighborDecoder) Code() LinearCode { return d.code }

// DecodingRadius returns floor((d_min − 1) / 2), the guaranteed unique-
// decoding radius, or 0 if the minimum distance is not enumerable.
func (d *NearestNeighborDecoder) DecodingRadius() int {
	dist, err := d.gen.MinimumDistance()
	if err != nil {
		return 0
	}
	return (dist - 1) / 2
}

// Decode returns the codeword with smallest Hamming distance to word, the
// earliest enumerated on ties.
func (d *NearestNeighborDecoder) Decode(word []uint64) ([]uint64, error) {
	if len(word) != d.code.Length() {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrBadWord, len(word), d.code.Length())
	}
	var best []uint64
	bestDist := len(word) + 1
	err := d.gen.forEachCodeword(func(msg, cw []uint64) {
		if dist := hammingDistance(word, cw); dist < bestDist {
			bestDist = dist
			best = append(best[:0], cw...)
		}
	})
	if err != nil {
		return nil, err
	}
	return best, nil
}

// String renders e.g. "Nearest neighbor decoder for Linear code of ...".
func (d *NearestNeighborDecoder) String() string {
	return fmt.Sprintf("Nearest neighbor decoder for %s", d.code)
}
