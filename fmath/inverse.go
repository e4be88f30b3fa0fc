package fmath

import (
	"math"

	"github.com/cwbudde/algo-fixed/cordic"
	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/internal/bitutil"
)

// maxAtan is the largest magnitude the vectoring kernel can take with a unit
// x component before the rotated vector overflows. Atan returns +-pi/2
// beyond it.
const maxAtan fixed.Fixed = 0x4dba76d400000000

// Atan returns the arctangent of x in [-pi/2, pi/2].
func Atan(x fixed.Fixed) fixed.Fixed {
	switch {
	case x >= maxAtan:
		return fixed.HalfPi
	case x <= -maxAtan:
		return -fixed.HalfPi
	}
	return fixed.FromRaw(cordic.Vector(cordic.State{X: fixed.One.Raw(), Y: x.Raw()}).Z)
}

// Atan2 returns the angle of the point (x, y) in [-pi, pi].
//
// Atan2(0, x) is 0 for x >= 0 and pi for x < 0. Atan2(y, 0) is +-pi/2.
// Both components are scaled by a common power of two so the larger is near
// one before vectoring; a ratio beyond 2^32 returns the axis angle directly.
func Atan2(y, x fixed.Fixed) fixed.Fixed {
	ux, uy := x.Raw(), y.Raw()
	if uy == 0 {
		if ux < 0 {
			return fixed.Pi
		}
		return 0
	}
	if ux == 0 {
		return axis(uy > 0)
	}

	right, up := ux > 0, uy > 0
	nx := saturatingAbs(ux)
	zx := bitutil.CountLeadingZeroes(uint64(nx))
	zy := bitutil.CountLeadingZeroes(uint64(saturatingAbs(uy)))

	switch df := zy - zx; {
	case df >= fixed.FracBits:
		switch {
		case right:
			return 0
		case up:
			return fixed.Pi
		default:
			return -fixed.Pi
		}
	case df <= -fixed.FracBits:
		return axis(up)
	}

	if shift := (zx+zy)/2 - fixed.FracBits; shift >= 0 {
		nx <<= shift
		uy <<= shift
	} else {
		nx >>= -shift
		uy >>= -shift
	}

	z := fixed.FromRaw(cordic.Vector(cordic.State{X: nx, Y: uy}).Z)
	switch {
	case right:
		return z
	case up:
		return fixed.Pi - z
	default:
		return -(fixed.Pi + z)
	}
}

// Asin returns the arcsine of x in [-pi/2, pi/2]. Arguments beyond +-1 clamp
// to +-pi/2.
func Asin(x fixed.Fixed) fixed.Fixed {
	switch {
	case x >= fixed.One:
		return fixed.HalfPi
	case x <= -fixed.One:
		return -fixed.HalfPi
	}
	// 1-x*x is at least one step because Mul rounds down.
	return Atan(x.Div(Sqrt(fixed.One - x.Mul(x))))
}

// Acos returns the arccosine of x in [0, pi].
func Acos(x fixed.Fixed) fixed.Fixed {
	return fixed.HalfPi - Asin(x)
}

func axis(up bool) fixed.Fixed {
	if up {
		return fixed.HalfPi
	}
	return -fixed.HalfPi
}

// saturatingAbs maps MinInt64 to MaxInt64 instead of itself.
func saturatingAbs(v int64) int64 {
	switch {
	case v >= 0:
		return v
	case v == math.MinInt64:
		return math.MaxInt64
	}
	return -v
}
