package thd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-vecmath"
)

// ToneError describes how far a fixed-point tone is from the ideal sine.
type ToneError struct {
	MaxAbs float64
	RMS    float64
	// DB is the error RMS relative to the ideal tone's RMS.
	DB float64
}

// Residual compares x with amplitude·sin(2π·freqHz·i/sampleRate) sample by
// sample. The ideal tone is evaluated in float64.
func Residual(x []fixed.Fixed, freqHz, sampleRate float64, amplitude fixed.Fixed) (ToneError, error) {
	if len(x) == 0 {
		return ToneError{}, fmt.Errorf("%w: 0 samples", ErrShortInput)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return ToneError{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if !(freqHz >= 0) || math.IsInf(freqHz, 0) {
		return ToneError{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, freqHz)
	}
	if amplitude <= 0 {
		return ToneError{}, fmt.Errorf("%w: %v", ErrInvalidAmplitude, amplitude)
	}

	cycles := freqHz / sampleRate
	got := make([]float64, len(x))
	ideal := make([]float64, len(x))
	for i, v := range x {
		_, frac := math.Modf(float64(i) * cycles)
		ideal[i] = math.Sin(2 * math.Pi * frac)
		got[i] = v.Float64()
	}

	amp := amplitude.Float64()
	vecmath.ScaleBlockInPlace(ideal, -amp)
	diff := make([]float64, len(x))
	vecmath.AddBlock(diff, got, ideal)

	rms := math.Sqrt(vecmath.DotProduct(diff, diff) / float64(len(diff)))
	return ToneError{
		MaxAbs: vecmath.MaxAbs(diff),
		RMS:    rms,
		DB:     ratioToDB(rms * math.Sqrt2 / amp),
	}, nil
}
