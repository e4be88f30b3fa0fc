package cordic

import (
	"math"

	"github.com/cwbudde/algo-fixed/fixed"
)

// Tables is a set of CORDIC constants derived at run time.
type Tables struct {
	Atan           [Iterations]int64
	Atanh          [Iterations]int64
	Gain           int64
	HyperbolicGain int64
}

// BuildTables derives the angle tables from float64 math.Atan and
// math.Atanh, rounded to nearest, and measures both gain reciprocals by
// running the kernels on a unit vector with a zero angle.
//
// The kernels never read the result. It exists to audit the compiled-in
// tables, which agree with it to within one raw unit per entry; the gains
// match exactly.
func BuildTables() Tables {
	var t Tables
	for i := range Iterations {
		v := math.Ldexp(1, -i)
		t.Atan[i] = toRaw(math.Atan(v))
		if i > 0 {
			t.Atanh[i] = toRaw(math.Atanh(v))
		}
	}

	one := int64(fixed.One)
	c := Rotate(State{X: one})
	t.Gain = fixed.One.Div(fixed.FromRaw(c.X)).Raw()

	h := RotateHyperbolic(State{X: one})
	t.HyperbolicGain = fixed.One.Div(fixed.FromRaw(h.X)).Raw()

	return t
}

func toRaw(v float64) int64 {
	return int64(math.Round(math.Ldexp(v, fixed.FracBits)))
}
