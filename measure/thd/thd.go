// Package thd measures the spectral purity of fixed-point tones: harmonic
// distortion, noise and the deviation from an ideal sine.
//
// Ratios are power based. Each spectral line is the energy of its window
// main lobe, so the result does not depend on the window's coherent gain.
package thd

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fixed/dsp/window"
	"github.com/cwbudde/algo-fixed/fixed"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const minSamples = 4

var (
	// ErrShortInput is returned for signals with fewer than four samples.
	ErrShortInput = errors.New("thd: signal too short")
	// ErrInvalidSampleRate is returned when the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("thd: sample rate must be > 0")
	// ErrInvalidFrequency is returned for negative or non-finite frequencies.
	ErrInvalidFrequency = errors.New("thd: frequency must be finite and >= 0")
	// ErrInvalidAmplitude is returned when a reference amplitude is not positive.
	ErrInvalidAmplitude = errors.New("thd: amplitude must be > 0")
	// ErrInvalidWindow is returned for window types without a known main lobe.
	ErrInvalidWindow = errors.New("thd: unsupported window")
	// ErrNoFundamental is returned when the fundamental is silent or above Nyquist.
	ErrNoFundamental = errors.New("thd: no fundamental")
)

// Config selects the analysis parameters.
type Config struct {
	SampleRate float64
	// Frequency of the fundamental in Hz; zero picks the strongest bin.
	Frequency float64
	Window    window.Type
	// MaxHarmonics bounds the harmonics counted. Zero counts up to Nyquist.
	MaxHarmonics int
}

// Result holds a distortion measurement. Ratios are amplitude ratios relative
// to the fundamental.
//
//nolint:revive
type Result struct {
	Frequency float64 // centre of the fundamental bin in Hz
	Bin       int
	Level     float64   // peak amplitude of the fundamental
	Harmonics []float64 // H2, H3, ...
	THD       float64
	THDN      float64
	Noise     float64 // THD+N without the harmonics
	THD_dB    float64
	THDN_dB   float64
	SINAD     float64 // dB
}

// Analyze windows x in fixed point, transforms it and measures the
// distortion of its fundamental.
//
//nolint:cyclop
func Analyze(x []fixed.Fixed, cfg Config) (Result, error) {
	if len(x) < minSamples {
		return Result{}, fmt.Errorf("%w: %d samples", ErrShortInput, len(x))
	}
	if !(cfg.SampleRate > 0) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if !(cfg.Frequency >= 0) || math.IsInf(cfg.Frequency, 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, cfg.Frequency)
	}
	lobe := mainLobeBins(cfg.Window)
	if lobe == 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidWindow, cfg.Window)
	}

	power, coeffs, err := spectrum(x, cfg.Window)
	if err != nil {
		return Result{}, err
	}
	last := len(power) - 1
	binHz := cfg.SampleRate / float64(len(x))

	fb := strongestBin(power, lobe+1)
	if cfg.Frequency > 0 {
		fb = int(math.Round(cfg.Frequency / binHz))
	}
	if fb < 1 || fb > last {
		return Result{}, fmt.Errorf("%w: bin %d of %d", ErrNoFundamental, fb, last)
	}

	// Lobes of neighbouring harmonics must not overlap.
	lobe = min(lobe, (fb-1)/2)
	pf := bandPower(power, fb, lobe)
	if pf == 0 {
		return Result{}, fmt.Errorf("%w: silent at %v Hz", ErrNoFundamental, float64(fb)*binHz)
	}

	res := Result{
		Frequency: float64(fb) * binHz,
		Bin:       fb,
		Level:     math.Sqrt(4 * pf / (float64(len(x)) * vecmath.DotProduct(coeffs, coeffs))),
	}

	var ph float64
	for h := 2; h*fb <= last; h++ {
		if cfg.MaxHarmonics > 0 && len(res.Harmonics) == cfg.MaxHarmonics {
			break
		}
		p := bandPower(power, h*fb, lobe)
		ph += p
		res.Harmonics = append(res.Harmonics, math.Sqrt(p/pf))
	}

	// Everything outside the DC and fundamental lobes. Summed directly, since
	// subtracting pf from the total cancels catastrophically for clean tones.
	var rest float64
	for k := lobe + 1; k <= last; k++ {
		if k < fb-lobe || k > fb+lobe {
			rest += power[k]
		}
	}

	res.THD = math.Sqrt(ph / pf)
	res.THDN = math.Sqrt(rest / pf)
	res.Noise = math.Sqrt(max(rest-ph, 0) / pf)
	res.THD_dB = ratioToDB(res.THD)
	res.THDN_dB = ratioToDB(res.THDN)
	res.SINAD = -res.THDN_dB
	return res, nil
}

// spectrum returns |X[k]|² for k = 0..len(x)/2 of x weighted by the periodic
// window, together with the window as float64.
func spectrum(x []fixed.Fixed, t window.Type) (power, coeffs []float64, err error) {
	n := len(x)
	w := window.Generate(t, n, window.WithPeriodic())

	in := make([]complex128, n)
	coeffs = make([]float64, n)
	for i, v := range x {
		in[i] = complex(v.Mul(w[i]).Float64(), 0)
		coeffs[i] = w[i].Float64()
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("thd: fft plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("thd: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k], im[k] = real(out[k]), imag(out[k])
	}
	power = make([]float64, bins)
	vecmath.Power(power, re, im)
	return power, coeffs, nil
}

// mainLobeBins returns the half-width of the window's main lobe in bins.
func mainLobeBins(t window.Type) int {
	switch t {
	case window.TypeRectangular:
		return 1
	case window.TypeHann, window.TypeHamming:
		return 2
	case window.TypeBlackman:
		return 3
	case window.TypeBlackmanHarris4Term:
		return 4
	case window.TypeFlatTop:
		return 5
	default:
		return 0
	}
}

func strongestBin(power []float64, from int) int {
	best := -1
	for k := from; k < len(power); k++ {
		if best < 0 || power[k] > power[best] {
			best = k
		}
	}
	return best
}

func bandPower(power []float64, center, half int) float64 {
	lo := max(center-half, 0)
	hi := min(center+half, len(power)-1)
	return vecmath.Sum(power[lo : hi+1])
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
