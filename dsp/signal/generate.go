package signal

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/rand"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/fmath"
)

var (
	// ErrInvalidSamples is returned when a sample count is not positive.
	ErrInvalidSamples = errors.New("signal: samples must be > 0")
	// ErrInvalidSampleRate is returned when the configured sample rate is not positive.
	ErrInvalidSampleRate = errors.New("signal: sample rate must be > 0")
	// ErrInvalidFrequency is returned for negative or non-finite frequencies.
	ErrInvalidFrequency = errors.New("signal: frequency must be finite and >= 0")
	// ErrInvalidAmplitude is returned for negative amplitudes.
	ErrInvalidAmplitude = errors.New("signal: amplitude must be >= 0")
	// ErrEmptyInput is returned when an operation needs at least one sample.
	ErrEmptyInput = errors.New("signal: input must not be empty")
)

// Config holds generator parameters.
type Config struct {
	SampleRate float64
	Amplitude  fixed.Fixed
	Seed       int64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 48 kHz, unit amplitude and seed 1.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Amplitude:  fixed.One,
		Seed:       1,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithAmplitude sets the peak amplitude.
func WithAmplitude(amplitude fixed.Fixed) Option {
	return func(cfg *Config) {
		cfg.Amplitude = amplitude
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// Generator creates deterministic fixed-point signals from a shared configuration.
type Generator struct {
	cfg Config
}

// NewGenerator creates a configured signal generator. Nil options are skipped.
func NewGenerator(opts ...Option) *Generator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Generator{cfg: cfg}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Sine generates a sine wave starting at phase zero.
//
// The phase is a 64-bit fraction of a cycle advanced by a constant step, so
// it never drifts and the output for a given configuration is bit-exact
// across platforms once the step has been derived.
func (g *Generator) Sine(freqHz float64, samples int) ([]fixed.Fixed, error) {
	if err := g.validate(samples); err != nil {
		return nil, fmt.Errorf("sine: %w", err)
	}
	if math.IsNaN(freqHz) || math.IsInf(freqHz, 0) || freqHz < 0 {
		return nil, fmt.Errorf("sine: %w: %v", ErrInvalidFrequency, freqHz)
	}

	step := phaseStep(freqHz / g.cfg.SampleRate)
	out := make([]fixed.Fixed, samples)
	var phase uint64
	for i := range out {
		out[i] = g.cfg.Amplitude.Mul(fmath.Sin(fixed.TwoPi.Mul(cycle(phase))))
		phase += step
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(samples int) ([]fixed.Fixed, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise: %w: %d", ErrInvalidSamples, samples)
	}
	if g.cfg.Amplitude < 0 {
		return nil, fmt.Errorf("noise: %w: %v", ErrInvalidAmplitude, g.cfg.Amplitude)
	}
	out := make([]fixed.Fixed, samples)
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	for i := range out {
		// Uniform raw fraction in [-1, 1).
		u := fixed.FromRaw(int64(rng.Uint32())<<1 - int64(fixed.One))
		out[i] = g.cfg.Amplitude.Mul(u)
	}
	return out, nil
}

// Impulse generates a single sample of the configured amplitude at pos.
func (g *Generator) Impulse(samples, pos int) ([]fixed.Fixed, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse: %w: %d", ErrInvalidSamples, samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse: position %d out of range [0,%d)", pos, samples)
	}
	out := make([]fixed.Fixed, samples)
	out[pos] = g.cfg.Amplitude
	return out, nil
}

// Normalize scales data so its largest magnitude becomes targetPeak and
// returns a new slice. Samples are scaled exactly and rounded to nearest.
func Normalize(data []fixed.Fixed, targetPeak fixed.Fixed) ([]fixed.Fixed, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize: %w: %v", ErrInvalidAmplitude, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrEmptyInput)
	}

	var peak uint64
	for _, v := range data {
		peak = max(peak, magnitude(v))
	}

	out := make([]fixed.Fixed, len(data))
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	for i, v := range data {
		out[i] = scaleTo(v, uint64(targetPeak), peak)
	}
	return out, nil
}

// magnitude is |v| as an unsigned raw value; MinValue maps to 1<<63.
func magnitude(v fixed.Fixed) uint64 {
	if v < 0 {
		return -uint64(v.Raw())
	}
	return uint64(v.Raw())
}

// scaleTo returns v*target/peak rounded to nearest, using a 128-bit
// intermediate so large samples and targets cannot wrap. |v| <= peak keeps
// the quotient within target.
func scaleTo(v fixed.Fixed, target, peak uint64) fixed.Fixed {
	hi, lo := bits.Mul64(magnitude(v), target)
	q, r := bits.Div64(hi, lo, peak)
	if r >= peak-r {
		q++
	}
	if v < 0 {
		return fixed.FromRaw(-int64(q))
	}
	return fixed.FromRaw(int64(q))
}

// Float64s converts a fixed-point block for float consumers such as FFTs.
func Float64s(data []fixed.Fixed) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v.Float64()
	}
	return out
}

func (g *Generator) validate(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, samples)
	}
	if !(g.cfg.SampleRate > 0) || math.IsInf(g.cfg.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, g.cfg.SampleRate)
	}
	return nil
}

// phaseStep converts cycles per sample into a 64-bit phase increment.
// Whole cycles are discarded.
func phaseStep(cycles float64) uint64 {
	cycles -= math.Floor(cycles)
	return uint64(math.Ldexp(cycles, 64))
}

// cycle returns the top fraction bits of phase as a value in [0, 1).
func cycle(phase uint64) fixed.Fixed {
	return fixed.FromRaw(int64(phase >> (64 - fixed.FracBits)))
}
