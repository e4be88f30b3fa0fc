package fmath

import (
	"github.com/cwbudde/algo-fixed/cordic"
	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/reduce"
)

const hyperbolicLimit fixed.Fixed = reduce.HyperbolicLimit

// hyperbolic returns cosh(n) and sinh(n) for 0 <= n < 31*ln2. seedBias
// adjusts the gain-scaled seed to the rounding of each caller.
func hyperbolic(n int64, seedBias int64) (cosh, sinh int64) {
	var q uint
	if n > reduce.HyperbolicBound {
		n, q = reduce.Hyperbolic(n)
	}
	s := cordic.RotateHyperbolic(cordic.State{Z: n, X: cordic.HyperbolicGain() + seedBias})
	return reduce.ExpandHyperbolic(s.X, s.Y, q)
}

// Sinh returns the hyperbolic sine of x, saturating to MaxValue or MinValue
// for |x| >= 31*ln2.
func Sinh(x fixed.Fixed) fixed.Fixed {
	switch {
	case x >= hyperbolicLimit:
		return fixed.MaxValue
	case x <= -hyperbolicLimit:
		return fixed.MinValue
	}

	_, s := hyperbolic(x.Abs().Raw(), 4)
	if x > 0 {
		return fixed.FromRaw(s)
	}
	return fixed.FromRaw(-s)
}

// Cosh returns the hyperbolic cosine of x, saturating to MaxValue for
// |x| >= 31*ln2.
func Cosh(x fixed.Fixed) fixed.Fixed {
	if x >= hyperbolicLimit || x <= -hyperbolicLimit {
		return fixed.MaxValue
	}
	c, _ := hyperbolic(x.Abs().Raw(), 2)
	return fixed.FromRaw(c)
}

// Tanh returns the hyperbolic tangent of x in [-1, 1].
func Tanh(x fixed.Fixed) fixed.Fixed {
	switch {
	case x >= hyperbolicLimit:
		return fixed.One
	case x <= -hyperbolicLimit:
		return -fixed.One
	case x == 0:
		return 0
	}

	c, s := hyperbolic(x.Abs().Raw(), 4)
	if x < 0 {
		s = -s
	}
	return fixed.FromRaw(s).Div(fixed.FromRaw(c))
}
