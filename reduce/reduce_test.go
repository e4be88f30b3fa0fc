package reduce

import (
	"math"
	"math/rand"
	"testing"
)

const scale = 1 << 32

func float(v int64) float64 { return float64(v) / scale }

func TestRadian(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	limit := int64(PiN >> (radianLevels - 1))

	for i := 0; i < 10000; i++ {
		x := rng.Int63n(2000*scale) - 1000*scale
		r := Radian(x)

		if r >= limit || r <= -limit {
			t.Fatalf("Radian(%v) = %v, outside (-2pi, 2pi)", float(x), float(r))
		}
		if r != 0 && (r < 0) != (x < 0) {
			t.Fatalf("Radian(%v) = %v changed sign", float(x), float(r))
		}
		if d := math.Abs(math.Sin(float(r)) - math.Sin(float(x))); d > 1e-7 {
			t.Fatalf("sin(Radian(%v)) differs by %g", float(x), d)
		}
	}
}

func TestRadianLargeAngles(t *testing.T) {
	for _, turns := range []int64{1, 7, 1000, 100000, 300000000} {
		x := int64(math.Round(2 * math.Pi * float64(turns) * scale))
		if r := Radian(x); math.Abs(float(r)) > 1e-6 && math.Abs(float(r))-2*math.Pi < -1e-6 {
			t.Fatalf("Radian(%d turns) = %v, want ~0", turns, float(r))
		}
	}
}

func TestFoldPi(t *testing.T) {
	tests := []struct {
		in      int64
		want    int64
		shifted bool
	}{
		{in: 0, want: 0},
		{in: Pi, want: Pi},
		{in: -Pi, want: -Pi},
		{in: Pi + 1, want: 1, shifted: true},
		{in: -Pi - 1, want: -1, shifted: true},
		{in: 3 * HalfPi, want: 3*HalfPi - Pi, shifted: true},
	}

	for _, tt := range tests {
		got, shifted := FoldPi(tt.in)
		if got != tt.want || shifted != tt.shifted {
			t.Fatalf("FoldPi(%#x) = (%#x, %v), want (%#x, %v)", tt.in, got, shifted, tt.want, tt.shifted)
		}
	}
}

func TestFoldHalfPi(t *testing.T) {
	tests := []struct {
		in        int64
		want      int64
		reflected bool
	}{
		{in: 0, want: 0},
		{in: HalfPi, want: HalfPi},
		{in: -HalfPi, want: -HalfPi},
		{in: Pi, want: 0, reflected: true},
		{in: -Pi, want: 0, reflected: true},
		{in: HalfPi + 5, want: Pi - HalfPi - 5, reflected: true},
	}

	for _, tt := range tests {
		got, reflected := FoldHalfPi(tt.in)
		if got != tt.want || reflected != tt.reflected {
			t.Fatalf("FoldHalfPi(%#x) = (%#x, %v), want (%#x, %v)", tt.in, got, reflected, tt.want, tt.reflected)
		}
	}
}

func TestFoldsPreserveSine(t *testing.T) {
	for a := -2 * math.Pi; a < 2*math.Pi; a += 0.01 {
		n, shifted := FoldPi(int64(a * scale))
		n, _ = FoldHalfPi(n)
		if n > HalfPi || n < -HalfPi {
			t.Fatalf("fold(%v) = %v, outside [-pi/2, pi/2]", a, float(n))
		}

		got := math.Sin(float(n))
		if shifted {
			got = -got
		}
		if d := math.Abs(got - math.Sin(a)); d > 1e-8 {
			t.Fatalf("fold(%v) changes sine by %g", a, d)
		}
	}
}

func TestHyperbolic(t *testing.T) {
	for x := float64(HyperbolicBound) / scale; x < 21.4; x += 0.037 {
		in := int64(x * scale)
		r, q := Hyperbolic(in)

		if q > 31 {
			t.Fatalf("Hyperbolic(%v) q = %d", x, q)
		}
		if r < 0 || r > HyperbolicBound {
			t.Fatalf("Hyperbolic(%v) r = %v, outside kernel range", x, float(r))
		}
		if d := math.Abs(float(r) + float64(q)*math.Ln2 - x); d > 1e-8 {
			t.Fatalf("Hyperbolic(%v): r + q*ln2 off by %g", x, d)
		}
	}
}

func TestExpandHyperbolic(t *testing.T) {
	for _, tt := range []struct {
		r float64
		q uint
	}{{0.1, 0}, {0.5, 1}, {0.3, 3}, {0.69, 7}, {0, 10}} {
		cx := int64(math.Cosh(tt.r) * scale)
		sy := int64(math.Sinh(tt.r) * scale)
		cosh, sinh := ExpandHyperbolic(cx, sy, tt.q)

		a := tt.r + float64(tt.q)*math.Ln2
		if d := math.Abs(float(cosh)/math.Cosh(a) - 1); d > 1e-8 {
			t.Fatalf("cosh(%v) = %v, want %v", a, float(cosh), math.Cosh(a))
		}
		if d := math.Abs(float(sinh) - math.Sinh(a)); d > 1e-8*math.Cosh(a) {
			t.Fatalf("sinh(%v) = %v, want %v", a, float(sinh), math.Sinh(a))
		}
	}
}

func TestExpandHyperbolicUsesMagnitudes(t *testing.T) {
	c1, s1 := ExpandHyperbolic(scale, scale/2, 2)
	c2, s2 := ExpandHyperbolic(-scale, -scale/2, 2)
	if c1 != c2 || s1 != s2 {
		t.Fatalf("sign of the kernel output leaked: (%d, %d) vs (%d, %d)", c1, s1, c2, s2)
	}
}

func TestLog(t *testing.T) {
	tests := []struct {
		in    int64
		wantE int
	}{
		{in: scale, wantE: 0},
		{in: 5 * scale, wantE: 0},
		{in: 16 * scale, wantE: 1},
		{in: 1000 * scale, wantE: 7},
		{in: scale / 16, wantE: -1},
		{in: 1, wantE: -29},
	}

	for _, tt := range tests {
		m, e := Log(tt.in)
		if m < LogMin || m > LogMax {
			t.Fatalf("Log(%#x) mantissa %#x outside band", tt.in, m)
		}
		if e != tt.wantE {
			t.Fatalf("Log(%#x) exponent = %d, want %d", tt.in, e, tt.wantE)
		}
		if d := math.Abs(math.Ldexp(float(m), e)/float(tt.in) - 1); d > 1e-9 {
			t.Fatalf("Log(%#x): m*2^e off by %g", tt.in, d)
		}
	}
}

func TestLogNonPositive(t *testing.T) {
	for _, x := range []int64{0, -1, -scale, math.MinInt64} {
		if m, e := Log(x); m != x || e != 0 {
			t.Fatalf("Log(%d) = (%d, %d), want (%d, 0)", x, m, e, x)
		}
	}
}
