package fixed

import "math"

// FracBits is the number of fractional bits of the encoding.
const FracBits = 32

const (
	fracMask = 1<<FracBits - 1
	halfRaw  = 1 << (FracBits - 1)
)

// Limits and unit values.
const (
	Zero     Fixed = 0
	One      Fixed = 1 << FracBits
	Half     Fixed = One >> 1
	Epsilon  Fixed = 1 // smallest positive step, 2^-32
	MaxValue Fixed = math.MaxInt64
	MinValue Fixed = math.MinInt64
)

// Mathematical constants, truncated to the encoding.
const (
	Pi     Fixed = 0x3243f6a88
	HalfPi Fixed = 0x1921fb544
	TwoPi  Fixed = Pi << 1
	E      Fixed = 0x2b7e15162
	Ln2    Fixed = 0xb17217f7
)
