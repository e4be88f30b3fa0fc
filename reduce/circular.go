package reduce

// Radian reduces an angle to the open interval (-2pi, 2pi), keeping its sign.
//
// A single remainder by 2pi would multiply the 2^-32 error of the encoded
// constant by the quotient. Instead the angle is reduced by pi*2^k for k
// from 29 down to 1, each modulus carrying its own 64-bit rounding.
func Radian(x int64) int64 {
	for i := range radianLevels {
		x %= PiN >> i
	}
	return x
}

// FoldPi maps n from (-2pi, 2pi) to [-pi, pi] by adding or subtracting pi.
// The boolean reports whether a shift happened, in which case sine and
// cosine change sign; the tangent does not.
func FoldPi(n int64) (int64, bool) {
	switch {
	case n > Pi:
		return n - Pi, true
	case n < -Pi:
		return n + Pi, true
	}
	return n, false
}

// FoldHalfPi maps n from [-pi, pi] to [-pi/2, pi/2] by reflecting it about
// +-pi/2. Sine is unchanged by the reflection; the boolean reports that it
// happened, in which case cosine and tangent change sign.
func FoldHalfPi(n int64) (int64, bool) {
	switch {
	case n > HalfPi:
		return Pi - n, true
	case n < -HalfPi:
		return -(Pi + n), true
	}
	return n, false
}
