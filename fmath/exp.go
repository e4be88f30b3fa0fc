package fmath

import (
	"math"

	"github.com/cwbudde/algo-fixed/cordic"
	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/reduce"
)

// Exp returns e^x. It returns MaxValue for x >= 31*ln2 and 0 for
// x <= -31*ln2.
func Exp(x fixed.Fixed) fixed.Fixed {
	switch {
	case x >= hyperbolicLimit:
		return fixed.MaxValue
	case x <= -hyperbolicLimit:
		return 0
	}

	n := x.Raw()
	var q uint
	switch {
	case n > reduce.HyperbolicBound:
		n, q = reduce.Hyperbolic(n)
	case n < -reduce.HyperbolicBound:
		n, q = reduce.Hyperbolic(-n)
		n = -n
	}

	// Rotating (k, k) yields k*(cosh n + sinh n) = e^n in x.
	kh := cordic.HyperbolicGain()
	e := cordic.RotateHyperbolic(cordic.State{Z: n, X: kh + 1, Y: kh}).X
	if x > 0 {
		// Just below the limit the true result exceeds MaxValue.
		if e > math.MaxInt64>>q {
			return fixed.MaxValue
		}
		return fixed.FromRaw(e << q)
	}
	return fixed.FromRaw(e >> q)
}

// Log returns the natural logarithm of x. It returns 0 for x <= 0.
func Log(x fixed.Fixed) fixed.Fixed {
	if x <= 0 {
		return 0
	}

	m, e := reduce.Log(x.Raw())
	// Vectoring (m+1, m-1) accumulates atanh((m-1)/(m+1)) = ln(m)/2.
	one := fixed.One.Raw()
	s := cordic.VectorHyperbolic(cordic.State{Z: 2, X: m + one, Y: m - one - 1})
	return fixed.FromRaw(s.Z<<1 + reduce.Ln2*int64(e))
}

// Log2 returns the binary logarithm of x. It returns 0 for x <= 0.
func Log2(x fixed.Fixed) fixed.Fixed {
	return Log(x).Div(fixed.Ln2)
}

// Pow returns base^exp as e^(exp*ln(base)). It returns 0 for base <= 0,
// following Log, and saturates like Exp.
func Pow(base, exp fixed.Fixed) fixed.Fixed {
	if base <= 0 {
		return 0
	}
	return Exp(exp.Mul(Log(base)))
}
