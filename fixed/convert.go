package fixed

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	scale = 1 << FracBits
	limit = 0x1p63
)

// FromInt converts an integer to Fixed by shifting it into the integer bits.
// Magnitudes beyond the representable range wrap silently.
func FromInt[T constraints.Integer](v T) Fixed {
	return Fixed(int64(v) << FracBits)
}

// ToInt converts x to an integer type by an arithmetic shift, which floors
// toward negative infinity: ToInt[int](FromFloat(-1.5)) == -2. The result is
// then narrowed like a native Go conversion.
func ToInt[T constraints.Integer](x Fixed) T {
	return T(int64(x) >> FracBits)
}

// FromFloat converts a floating-point value by scaling with 2^32 and
// truncating toward zero.
//
// NaN converts to 0 and values outside the encoding saturate to MaxValue or
// MinValue, so the conversion is the same on every platform.
func FromFloat[T constraints.Float](v T) Fixed {
	f := float64(v) * scale
	switch {
	case math.IsNaN(f):
		return 0
	case f >= limit:
		return MaxValue
	case f <= -limit:
		return MinValue
	}
	return Fixed(int64(f))
}

// ToFloat converts x to a floating-point type. Precision is limited by the
// mantissa of T.
func ToFloat[T constraints.Float](x Fixed) T {
	return T(float64(x) / scale)
}

// Int returns the integer part of x, floored toward negative infinity.
func (x Fixed) Int() int {
	return ToInt[int](x)
}

// Int64 returns the integer part of x, floored toward negative infinity.
func (x Fixed) Int64() int64 {
	return int64(x) >> FracBits
}

// Float64 returns x as a float64.
func (x Fixed) Float64() float64 {
	return ToFloat[float64](x)
}

// Float32 returns x as a float32.
func (x Fixed) Float32() float32 {
	return ToFloat[float32](x)
}
