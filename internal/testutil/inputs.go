package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fixed/fixed"
)

// Grid returns n+1 evenly spaced fixed-point samples covering [lo, hi]
// inclusive. Each sample is the truncated conversion of its float64 grid
// point.
func Grid(lo, hi float64, n int) []fixed.Fixed {
	out := make([]fixed.Fixed, n+1)
	for i := range out {
		out[i] = fixed.FromFloat(lo + (hi-lo)*float64(i)/float64(n))
	}
	return out
}

// DeterministicInputs returns n raw values drawn uniformly from [lo, hi)
// with a fixed seed, covering bit patterns a grid misses.
func DeterministicInputs(seed int64, lo, hi float64, n int) []fixed.Fixed {
	rng := rand.New(rand.NewSource(seed))
	a, b := fixed.FromFloat(lo).Raw(), fixed.FromFloat(hi).Raw()
	out := make([]fixed.Fixed, n)
	for i := range out {
		out[i] = fixed.FromRaw(a + rng.Int63n(b-a))
	}
	return out
}

// DeterministicSine generates a float64 reference sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Float64s converts fixed-point samples for comparison with references.
func Float64s(xs []fixed.Fixed) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Float64()
	}
	return out
}
