// Package window generates cosine-sum window coefficients with fixed-point
// arithmetic, so the same coefficients come out on every platform.
package window

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/fmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(cfg *config) {
		cfg.periodic = true
	}
}

// Cosine-sum terms: w(x) = sum a[k]*cos(2*pi*k*x), x in [0, 1].
var (
	hannCoeffs            = coeffs(0.5, -0.5)
	hammingCoeffs         = coeffs(0.54, -0.46)
	blackmanCoeffs        = coeffs(0.42, -0.5, 0.08)
	blackmanHarris4Coeffs = coeffs(0.35875, -0.48829, 0.14128, -0.01168)
	flatTopCoeffs         = coeffs(0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368)
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
	TypeHann:                {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeHamming:             {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeBlackman:            {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", ENBW: 2.0, HighestSidelobe: -92, CoherentGain: 0.36},
	TypeFlatTop:             {Name: "Flat top", ENBW: 3.77, HighestSidelobe: -93.6, CoherentGain: 0.22},
}

// Generate returns window coefficients of the given length.
//
// Only the first half is evaluated; the rest is mirrored, so the symmetric
// form satisfies w[n] == w[N-1-n] and the periodic form w[n] == w[N-n]
// exactly.
func Generate(t Type, length int, opts ...Option) []fixed.Fixed {
	if length <= 0 {
		return nil
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	terms := termsFor(t)
	out := make([]fixed.Fixed, length)
	for i := range out {
		if m := mirror(i, length, cfg.periodic); m < i {
			out[i] = out[m]
			continue
		}
		out[i] = cosineSum(samplePosition(i, length, cfg.periodic), terms)
	}

	return out
}

// Float64 returns Generate's coefficients converted to float64.
func Float64(t Type, length int, opts ...Option) []float64 {
	w := Generate(t, length, opts...)
	if w == nil {
		return nil
	}

	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v.Float64()
	}
	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Float64(t, len(buf), opts...))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]fixed.Fixed, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]fixed.Fixed, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]fixed.Fixed, error) {
	return Generate(TypeBlackman, size, opts...), validateLength(size)
}

// FlatTop returns 5-term flat-top window coefficients.
func FlatTop(size int, opts ...Option) ([]fixed.Fixed, error) {
	return Generate(TypeFlatTop, size, opts...), validateLength(size)
}

// CoherentGain returns sum(w[n]) / N, the DC response of the window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	return vecmath.Sum(coeffs) / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * vecmath.DotProduct(coeffs, coeffs) / (sum * sum), nil
}

func termsFor(t Type) []fixed.Fixed {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeBlackmanHarris4Term:
		return blackmanHarris4Coeffs
	case TypeFlatTop:
		return flatTopCoeffs
	default:
		return nil
	}
}

// cosineSum evaluates the terms at x. No terms is the rectangular window.
func cosineSum(x fixed.Fixed, terms []fixed.Fixed) fixed.Fixed {
	if len(terms) == 0 {
		return fixed.One
	}

	phase := fixed.TwoPi.Mul(x)

	var sum fixed.Fixed
	for k, a := range terms {
		sum += a.Mul(fmath.Cos(phase.Mul(fixed.FromInt(k))))
	}

	return sum
}

// samplePosition returns n/(size-1), or n/size for the periodic form.
func samplePosition(n, size int, periodic bool) fixed.Fixed {
	if size <= 1 {
		return 0
	}

	den := size - 1
	if periodic {
		den = size
	}

	return fixed.FromInt(n).Div(fixed.FromInt(den))
}

func mirror(n, size int, periodic bool) int {
	if periodic {
		if n == 0 {
			return 0
		}
		return size - n
	}

	return size - 1 - n
}

func coeffs(a ...float64) []fixed.Fixed {
	out := make([]fixed.Fixed, len(a))
	for i, v := range a {
		out[i] = fixed.FromFloat(v)
	}
	return out
}
