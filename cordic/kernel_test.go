package cordic

import (
	"math"
	"testing"
)

const scale = 1 << 32

func raw(v float64) int64 { return int64(math.Round(v * scale)) }

func float(v int64) float64 { return float64(v) / scale }

func TestRotate(t *testing.T) {
	for _, angle := range []float64{-math.Pi / 2, -1, -0.25, 0, 0.1, 0.5, 1, 1.5, math.Pi / 2} {
		s := Rotate(State{Z: raw(angle), X: Gain()})
		if d := math.Abs(float(s.X) - math.Cos(angle)); d > 1e-8 {
			t.Fatalf("Rotate(%v).X = %v, want %v", angle, float(s.X), math.Cos(angle))
		}
		if d := math.Abs(float(s.Y) - math.Sin(angle)); d > 1e-8 {
			t.Fatalf("Rotate(%v).Y = %v, want %v", angle, float(s.Y), math.Sin(angle))
		}
		if math.Abs(float(s.Z)) > 1e-8 {
			t.Fatalf("Rotate(%v).Z = %v, want ~0", angle, float(s.Z))
		}
	}
}

func TestVector(t *testing.T) {
	for _, v := range []float64{-100, -3, -1, -0.5, 0, 0.01, 0.5, 1, 2, 1000} {
		s := Vector(State{X: scale, Y: raw(v)})
		if d := math.Abs(float(s.Z) - math.Atan(v)); d > 1e-8 {
			t.Fatalf("Vector(%v).Z = %v, want %v", v, float(s.Z), math.Atan(v))
		}
	}
}

func TestRotateHyperbolic(t *testing.T) {
	for _, z := range []float64{-1.1, -0.5, 0, 0.25, 0.75, 1.1} {
		s := RotateHyperbolic(State{Z: raw(z), X: HyperbolicGain()})
		if d := math.Abs(float(s.X) - math.Cosh(z)); d > 1e-8 {
			t.Fatalf("RotateHyperbolic(%v).X = %v, want %v", z, float(s.X), math.Cosh(z))
		}
		if d := math.Abs(float(s.Y) - math.Sinh(z)); d > 1e-8 {
			t.Fatalf("RotateHyperbolic(%v).Y = %v, want %v", z, float(s.Y), math.Sinh(z))
		}
	}
}

func TestVectorHyperbolic(t *testing.T) {
	// With (x+1, x-1) the accumulated angle is atanh((x-1)/(x+1)) = ln(x)/2.
	for _, x := range []float64{0.2, 0.5, 1, 2, 5, 9} {
		s := VectorHyperbolic(State{X: raw(x + 1), Y: raw(x - 1)})
		if d := math.Abs(2*float(s.Z) - math.Log(x)); d > 1e-8 {
			t.Fatalf("VectorHyperbolic(%v): 2z = %v, want %v", x, 2*float(s.Z), math.Log(x))
		}
	}
}

func TestKernelsArePure(t *testing.T) {
	in := State{Z: raw(0.3), X: Gain(), Y: 7}
	if Rotate(in) != Rotate(in) {
		t.Fatal("Rotate is not deterministic")
	}
	if in != (State{Z: raw(0.3), X: Gain(), Y: 7}) {
		t.Fatal("Rotate modified its argument")
	}
}

func TestTableAccessorsReturnCopies(t *testing.T) {
	a := AtanTable()
	a[0] = 0
	if AtanTable()[0] == 0 {
		t.Fatal("AtanTable exposes shared state")
	}
	h := AtanhTable()
	h[1] = 0
	if AtanhTable()[1] == 0 {
		t.Fatal("AtanhTable exposes shared state")
	}
}

func TestRepeatedSteps(t *testing.T) {
	n := 0
	for i := 1; i < Iterations; i++ {
		n++
		if repeated(i) {
			n++
		}
	}
	if n != HyperbolicIterations {
		t.Fatalf("hyperbolic steps = %d, want %d", n, HyperbolicIterations)
	}
}
