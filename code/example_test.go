// Package code_test provides runnable examples for codes, codecs, and
// subfield subcodes.
package code_test

import (
	"fmt"

	"github.com/cartanlib/cartan/code"
	"github.com/cartanlib/cartan/matrix"
	"github.com/cartanlib/cartan/ring"
)

// ExampleNewGeneric encodes a message with the [7,4] Hamming code and
// repairs a single-bit error.
func ExampleNewGeneric() {
	gf2, _ := ring.NewGF(2, 1)
	G, _ := matrix.NewDenseFromRows(gf2, [][]uint64{
		{1, 0, 0, 0, 1, 1, 0},
		{0, 1, 0, 0, 1, 0, 1},
		{0, 0, 1, 0, 0, 1, 1},
		{0, 0, 0, 1, 1, 1, 1},
	})
	c, err := code.NewGeneric(G)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	enc, _ := code.NewEncoder(c, "")
	word, _ := enc.Encode([]uint64{1, 0, 1, 1})

	corrupted := append([]uint64(nil), word...)
	corrupted[2] ^= 1

	dec, _ := code.NewDecoder(c, "")
	fixed, err := dec.Decode(corrupted)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	fmt.Println(fixed)
	// Output:
	// Linear code of length 7, dimension 4 over GF(2)
	// [1 0 1 1 0 1 0]
}

// ExampleNewSubfieldSubcode shows the tower validation and the dimension
// bounds of a subfield subcode.
func ExampleNewSubfieldSubcode() {
	gf16, _ := ring.NewGF(2, 4)
	G, _ := matrix.NewDenseFromRows(gf16, [][]uint64{
		{1, 0, 0, 1, 2, 3, 4},
		{0, 1, 0, 5, 6, 7, 8},
		{0, 0, 1, 9, 10, 11, 12},
	})
	c, _ := code.NewGeneric(G)

	gf4, _ := ring.NewGF(2, 2)
	cs, err := code.NewSubfieldSubcode(c, gf4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cs)

	up, _ := cs.DimensionUpperBound()
	low, _ := cs.DimensionLowerBound()
	fmt.Println("dimension bounds:", low, "..", up)
	// Output:
	// Subfield subcode over GF(2^2) coming from Linear code of length 7, dimension 3 over GF(2^4)
	// dimension bounds: -1 .. 3
}
