// Package code: the named encoder/decoder registry. Codes name their
// default pair; the registry resolves names to factories. Registration is
// idempotent (re-registering a name replaces the factory) and safe for
// concurrent use.

package code

import (
	"fmt"
	"sort"
	"sync"
)

// Encoder maps messages to codewords of one fixed code.
type Encoder interface {
	// Code returns the code this encoder encodes into.
	Code() LinearCode

	// MessageLength returns the expected message length.
	MessageLength() int

	// Encode maps a message of MessageLength symbols to a codeword.
	Encode(message []uint64) ([]uint64, error)

	// String returns a human-readable description.
	String() string
}

// Decoder maps received words back to codewords of one fixed code.
type Decoder interface {
	// Code returns the code this decoder decodes into.
	Code() LinearCode

	// DecodingRadius returns the number of errors the decoder corrects.
	DecodingRadius() int

	// Decode returns the codeword nearest to word within the decoder's
	// radius, or ErrDecodingFailed.
	Decode(word []uint64) ([]uint64, error)

	// String returns a human-readable description.
	String() string
}

// EncoderFactory builds an encoder for a code. Factories validate the code
// (e.g. that the matrices they need are computable) and fail fast.
type EncoderFactory func(c LinearCode) (Encoder, error)

// DecoderFactory builds a decoder for a code with its default settings.
type DecoderFactory func(c LinearCode) (Decoder, error)

var registry = struct {
	mu  sync.RWMutex
	enc map[string]EncoderFactory
	dec map[string]DecoderFactory
}{
	enc: make(map[string]EncoderFactory),
	dec: make(map[string]DecoderFactory),
}

// RegisterEncoder makes an encoder factory available under name.
// Registering the same name again replaces the factory.
func RegisterEncoder(name string, f EncoderFactory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.enc[name] = f
}

// RegisterDecoder makes a decoder factory available under name.
// Registering the same name again replaces the factory.
func RegisterDecoder(name string, f DecoderFactory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.dec[name] = f
}

// NewEncoder builds the encoder registered under name for c. The empty
// name resolves to c.DefaultEncoderName(). Unknown names are
// ErrUnknownEncoder.
func NewEncoder(c LinearCode, name string) (Encoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if name == "" {
		name = c.DefaultEncoderName()
	}
	registry.mu.RLock()
	f, ok := registry.enc[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoder, name)
	}
	return f(c)
}

// NewDecoder builds the decoder registered under name for c. The empty
// name resolves to c.DefaultDecoderName(). Unknown names are
// ErrUnknownDecoder.
func NewDecoder(c LinearCode, name string) (Decoder, error) {
	if c == nil {
		return nil, ErrNilCode
	}
	if name == "" {
		name = c.DefaultDecoderName()
	}
	registry.mu.RLock()
	f, ok := registry.dec[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDecoder, name)
	}
	return f(c)
}

// EncoderNames returns the registered encoder names, sorted.
func EncoderNames() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.enc))
	for n := range registry.enc {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DecoderNames returns the registered decoder names, sorted.
func DecoderNames() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.dec))
	for n := range registry.dec {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterEncoder("GeneratorMatrix", NewGeneratorMatrixEncoder)
	RegisterEncoder("ParityCheck", NewParityCheckEncoder)
	RegisterDecoder("Syndrome", func(c LinearCode) (Decoder, error) {
		d, err := NewSyndromeDecoder(c)
		if err != nil {
			return nil, err
		}
		return d, nil
	})
	RegisterDecoder("NearestNeighbor", NewNearestNeighborDecoder)
}
