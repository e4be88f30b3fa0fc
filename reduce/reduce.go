// Package reduce folds arguments of the transcendental functions into the
// ranges where the CORDIC kernels converge, and undoes the folding on the
// kernel output.
//
// Like package cordic it works on raw Q31.32 integers.
package reduce

// Reduction constants in Q31.32.
const (
	Pi     = 0x3243f6a88
	HalfPi = 0x1921fb544

	// PiN is pi*2^29 with 64 bits of precision. Its right shifts by 0..28
	// are the moduli of the circular reduction.
	PiN = 0x6487ed5110b4611a

	Ln2    = 0xb17217f7
	Ln2x16 = 0xb17217f7d

	// HyperbolicLimit is 31*ln2. Beyond it e^x does not fit the encoding.
	HyperbolicLimit = 0x157cd0e702

	// HyperbolicBound is the largest argument the hyperbolic kernel
	// accepts without reduction, ~1.118.
	HyperbolicBound = 0x1193ea7aa

	// LogMin and LogMax delimit the band, ~[0.11, 9.35], into which Log
	// scales its argument.
	LogMin = 0x1c28f5c2
	LogMax = 0x95a5e353f
)

const radianLevels = 29
