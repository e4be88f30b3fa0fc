package fixed

import imgfixed "golang.org/x/image/math/fixed"

// FromInt26_6 converts a 26.6 value from golang.org/x/image/math/fixed.
// The conversion is exact.
func FromInt26_6(v imgfixed.Int26_6) Fixed {
	return Fixed(int64(v) << (FracBits - 6))
}

// Int26_6 converts x to 26.6, dropping fractional bits toward negative
// infinity. Integer parts beyond 26 bits wrap.
func (x Fixed) Int26_6() imgfixed.Int26_6 {
	return imgfixed.Int26_6(int64(x) >> (FracBits - 6))
}

// FromInt52_12 converts a 52.12 value from golang.org/x/image/math/fixed.
// Integer parts beyond 31 bits wrap.
func FromInt52_12(v imgfixed.Int52_12) Fixed {
	return Fixed(int64(v) << (FracBits - 12))
}

// Int52_12 converts x to 52.12, dropping fractional bits toward negative
// infinity. The conversion cannot overflow.
func (x Fixed) Int52_12() imgfixed.Int52_12 {
	return imgfixed.Int52_12(int64(x) >> (FracBits - 12))
}
