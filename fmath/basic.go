package fmath

import "github.com/cwbudde/algo-fixed/fixed"

// Floor returns the greatest integer value less than or equal to x.
func Floor(x fixed.Fixed) fixed.Fixed { return x.Floor() }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x fixed.Fixed) fixed.Fixed { return x.Ceil() }

// Round returns the nearest integer value, rounding half to even.
func Round(x fixed.Fixed) fixed.Fixed { return x.Round() }

// Abs returns |x|. Abs(MinValue) is MinValue.
func Abs(x fixed.Fixed) fixed.Fixed { return x.Abs() }

// Min returns the smaller of x and y.
func Min(x, y fixed.Fixed) fixed.Fixed { return fixed.Min(x, y) }

// Max returns the larger of x and y.
func Max(x, y fixed.Fixed) fixed.Fixed { return fixed.Max(x, y) }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi fixed.Fixed) fixed.Fixed { return fixed.Clamp(x, lo, hi) }

// Sign returns -1, 0 or 1 as a Fixed.
func Sign(x fixed.Fixed) fixed.Fixed {
	return fixed.FromInt(x.Sign())
}
