package cordic

// Iterations is the number of circular steps, one per table entry.
const Iterations = 33

// HyperbolicIterations is the number of hyperbolic steps: indices 1..32,
// with 4 and 13 executed twice.
const HyperbolicIterations = 34

// atanTable[i] is atan(2^-i) in Q31.32.
var atanTable = [Iterations]int64{
	0xc90fdaa2, 0x76b19c15, 0x3eb6ebf2, 0x1fd5ba9a, 0xffaaddb, 0x7ff556e, 0x3ffeaab, 0x1fffd55, 0xffffaa,
	0x7ffff5, 0x3ffffe, 0x1fffff, 0xfffff, 0x7ffff, 0x3ffff, 0x1ffff, 0xffff, 0x7fff, 0x3fff, 0x1fff, 0xfff,
	0x7ff, 0x3ff, 0x1ff, 0xff, 0x7f, 0x3f, 0x20, 0x10, 0x8, 0x4, 0x2, 0x1,
}

// atanhTable[i] is atanh(2^-i) in Q31.32. Entry 0 is never used.
var atanhTable = [Iterations]int64{
	0x0, 0x8c9f53d5, 0x4162bbea, 0x202b1239, 0x1005588a, 0x800aac4, 0x4001556, 0x20002aa, 0x1000055, 0x80000a,
	0x400001, 0x200000, 0x100000, 0x80000, 0x40000, 0x20000, 0x10000, 0x8000, 0x4000, 0x1fff, 0xfff, 0x7ff,
	0x3ff, 0x1ff, 0xff, 0x7f, 0x3f, 0x20, 0xf, 0x7, 0x3, 0x1, 0x0,
}

const (
	gain           = 0x9b74eda6  // 1/prod(sqrt(1+2^-2i)), ~0.607253
	hyperbolicGain = 0x1351e872c // 1/prod(sqrt(1-2^-2i)), ~1.207497
)

// Gain returns the reciprocal of the circular kernel's gain in Q31.32.
func Gain() int64 { return gain }

// HyperbolicGain returns the reciprocal of the hyperbolic kernel's gain in
// Q31.32.
func HyperbolicGain() int64 { return hyperbolicGain }

// AtanTable returns a copy of the circular angle table.
func AtanTable() [Iterations]int64 { return atanTable }

// AtanhTable returns a copy of the hyperbolic angle table.
func AtanhTable() [Iterations]int64 { return atanhTable }

// repeated reports whether hyperbolic step i is executed twice. Without the
// repeats the sum of the remaining angles cannot cover the gap left by an
// earlier step and the kernel does not converge.
func repeated(i int) bool {
	return i == 4 || i == 13
}
