package accuracy

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/fmath"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidSamples is returned when a sweep has fewer than two samples.
	ErrInvalidSamples = errors.New("accuracy: samples must be >= 2")
	// ErrInvalidRange is returned when Lo > Hi or a bound is not finite.
	ErrInvalidRange = errors.New("accuracy: invalid input range")
	// ErrMissingFunc is returned when Eval or Reference is nil.
	ErrMissingFunc = errors.New("accuracy: function and reference must be set")
)

const defaultSamples = 10000

// Function describes a unary function under test.
type Function struct {
	Name      string
	Eval      func(fixed.Fixed) fixed.Fixed
	Reference func(float64) float64
	Lo, Hi    float64
	// Relative divides each error by max(1, |reference|).
	Relative bool
}

// Report summarizes one sweep.
type Report struct {
	Name        string
	Samples     int
	MaxAbsError float64
	RMSError    float64
	MeanError   float64
	WorstInput  float64
}

// Config holds sweep parameters.
type Config struct {
	Samples int
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 10000 samples and one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Samples: defaultSamples,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithSamples sets the number of grid points per sweep.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		cfg.Samples = n
	}
}

// WithWorkers sets the maximum number of concurrent sweeps in SweepAll.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// NewConfig applies opts over DefaultConfig. Nil options are skipped.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Standard returns every unary fmath function with a domain on which its
// result fits the encoding.
func Standard() []Function {
	return []Function{
		{Name: "sin", Eval: fmath.Sin, Reference: math.Sin, Lo: -4 * math.Pi, Hi: 4 * math.Pi},
		{Name: "cos", Eval: fmath.Cos, Reference: math.Cos, Lo: -4 * math.Pi, Hi: 4 * math.Pi},
		{Name: "tan", Eval: fmath.Tan, Reference: math.Tan, Lo: -1.5, Hi: 1.5, Relative: true},
		{Name: "atan", Eval: fmath.Atan, Reference: math.Atan, Lo: -1000, Hi: 1000},
		{Name: "asin", Eval: fmath.Asin, Reference: math.Asin, Lo: -0.999, Hi: 0.999},
		{Name: "acos", Eval: fmath.Acos, Reference: math.Acos, Lo: -0.999, Hi: 0.999},
		{Name: "sinh", Eval: fmath.Sinh, Reference: math.Sinh, Lo: -10, Hi: 10, Relative: true},
		{Name: "cosh", Eval: fmath.Cosh, Reference: math.Cosh, Lo: -10, Hi: 10, Relative: true},
		{Name: "tanh", Eval: fmath.Tanh, Reference: math.Tanh, Lo: -10, Hi: 10},
		{Name: "exp", Eval: fmath.Exp, Reference: math.Exp, Lo: -10, Hi: 20, Relative: true},
		{Name: "log", Eval: fmath.Log, Reference: math.Log, Lo: 0.001, Hi: 1e6},
		{Name: "log2", Eval: fmath.Log2, Reference: math.Log2, Lo: 0.001, Hi: 1e6},
		{Name: "sqrt", Eval: fmath.Sqrt, Reference: math.Sqrt, Lo: 0, Hi: 1e6, Relative: true},
	}
}

// Lookup returns the standard function called name.
func Lookup(name string) (Function, bool) {
	for _, fn := range Standard() {
		if fn.Name == name {
			return fn, true
		}
	}
	return Function{}, false
}

// Sweep evaluates fn on cfg.Samples evenly spaced inputs in [fn.Lo, fn.Hi].
func Sweep(fn Function, cfg Config) (Report, error) {
	if err := validate(fn, cfg); err != nil {
		return Report{}, fmt.Errorf("%s: %w", fn.Name, err)
	}

	n := cfg.Samples
	inputs := grid(fn.Lo, fn.Hi, n)

	got := make([]float64, n)
	want := make([]float64, n)
	for i, x := range inputs {
		got[i] = fn.Eval(x).Float64()
		want[i] = fn.Reference(x.Float64())
	}

	diff := make([]float64, n)
	vecmath.ScaleBlock(diff, want, -1)
	vecmath.AddBlockInPlace(diff, got)

	if fn.Relative {
		weights := make([]float64, n)
		for i, w := range want {
			weights[i] = 1 / math.Max(1, math.Abs(w))
		}
		vecmath.MulBlockInPlace(diff, weights)
	}

	maxAbs := vecmath.MaxAbs(diff)
	worst := 0
	for i, d := range diff {
		if math.Abs(d) == maxAbs {
			worst = i
			break
		}
	}

	return Report{
		Name:        fn.Name,
		Samples:     n,
		MaxAbsError: maxAbs,
		RMSError:    math.Sqrt(vecmath.DotProduct(diff, diff) / float64(n)),
		MeanError:   vecmath.Sum(diff) / float64(n),
		WorstInput:  inputs[worst].Float64(),
	}, nil
}

func validate(fn Function, cfg Config) error {
	if fn.Eval == nil || fn.Reference == nil {
		return ErrMissingFunc
	}
	if cfg.Samples < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, cfg.Samples)
	}
	if math.IsNaN(fn.Lo) || math.IsNaN(fn.Hi) || math.IsInf(fn.Lo, 0) || math.IsInf(fn.Hi, 0) || fn.Lo > fn.Hi {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, fn.Lo, fn.Hi)
	}
	return nil
}

// grid returns n fixed-point inputs from lo to hi inclusive.
func grid(lo, hi float64, n int) []fixed.Fixed {
	out := make([]fixed.Fixed, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = fixed.FromFloat(lo + step*float64(i))
	}
	out[n-1] = fixed.FromFloat(hi)
	return out
}
