// Package bitutil holds the bit-twiddling primitives shared by the fixed-point
// division and the atan2 operand rescaling.
package bitutil

// CountLeadingZeroes returns the number of leading zero bits in x.
//
// The bits below the highest set bit are smeared to ones and the result is
// counted with a SWAR population count, so the cost does not depend on x.
// CountLeadingZeroes(0) is 64.
func CountLeadingZeroes(x uint64) int {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32

	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F0F0F0F0F

	return 64 - int((x*0x0101010101010101)>>56)
}
