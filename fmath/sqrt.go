package fmath

import "github.com/cwbudde/algo-fixed/fixed"

// Each iteration consumes two radicand bits and yields one root bit. The 64
// raw bits plus 32 zero bits give a 48-bit root: 16 integer bits and 32
// fractional bits.
const sqrtIterations = fixed.FracBits + fixed.FracBits/2

// Sqrt returns the square root of x, rounded down. It returns 0 for x <= 0.
func Sqrt(x fixed.Fixed) fixed.Fixed {
	if x <= 0 {
		return 0
	}

	var root, remHi uint64
	remLo := uint64(x)
	for range sqrtIterations {
		remHi = remHi<<2 | remLo>>62
		remLo <<= 2
		root <<= 1

		if test := root<<1 + 1; remHi >= test {
			remHi -= test
			root++
		}
	}
	return fixed.FromRaw(int64(root))
}
