package fmath

import (
	"github.com/cwbudde/algo-fixed/cordic"
	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/reduce"
)

// Offsets on the rotation seed that make Sin(0) exactly 0.
const (
	sinSeedX = -4
	sinSeedY = -2
)

// sinReduced rotates the seed vector by n in [-pi/2, pi/2].
func sinReduced(n int64) cordic.State {
	return cordic.Rotate(cordic.State{Z: n, X: cordic.Gain() + sinSeedX, Y: sinSeedY})
}

// Sin returns the sine of x radians.
func Sin(x fixed.Fixed) fixed.Fixed {
	n, negate := reduce.FoldPi(reduce.Radian(x.Raw()))
	n, _ = reduce.FoldHalfPi(n)

	y := sinReduced(n).Y
	if negate {
		y = -y
	}
	return fixed.FromRaw(y)
}

// Cos returns the cosine of x radians, evaluated as a shifted sine.
func Cos(x fixed.Fixed) fixed.Fixed {
	n := x.Raw()
	if n > 0 {
		n -= reduce.Pi + reduce.HalfPi
	} else {
		n += reduce.HalfPi
	}
	return Sin(fixed.FromRaw(n))
}

// SinCos returns Sin(x) and Cos(x).
func SinCos(x fixed.Fixed) (sin, cos fixed.Fixed) {
	return Sin(x), Cos(x)
}

// Tan returns the tangent of x radians.
//
// Close to odd multiples of pi/2 the error grows without bound. If the
// cosine term vanishes the result saturates to MaxValue or MinValue.
func Tan(x fixed.Fixed) fixed.Fixed {
	n, _ := reduce.FoldPi(reduce.Radian(x.Raw()))
	n, reflected := reduce.FoldHalfPi(n)

	s := sinReduced(n)
	if s.Y == 0 {
		return 0
	}

	y := s.Y
	if reflected {
		y = -y
	}
	if s.X == 0 {
		if y > 0 {
			return fixed.MaxValue
		}
		return fixed.MinValue
	}
	return fixed.FromRaw(y).Div(fixed.FromRaw(s.X))
}
