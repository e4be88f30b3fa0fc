package thd

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fixed/dsp/signal"
	"github.com/cwbudde/algo-fixed/dsp/window"
	"github.com/cwbudde/algo-fixed/fixed"
)

type partial struct {
	bin int
	amp float64
}

// tone sums bin-centred sines over n samples.
func tone(n int, parts ...partial) []fixed.Fixed {
	out := make([]fixed.Fixed, n)
	for i := range out {
		var v float64
		for _, p := range parts {
			v += p.amp * math.Sin(2*math.Pi*float64(p.bin)*float64(i)/float64(n))
		}
		out[i] = fixed.FromFloat(v)
	}
	return out
}

func TestAnalyzeKnownHarmonics(t *testing.T) {
	x := tone(1024, partial{16, 1}, partial{32, 0.1}, partial{48, 0.05}, partial{100, 0.02})

	for _, w := range []window.Type{window.TypeRectangular, window.TypeHann} {
		res, err := Analyze(x, Config{SampleRate: 1024, Frequency: 16, Window: w})
		if err != nil {
			t.Fatalf("Analyze(%d) error = %v", w, err)
		}

		checks := []struct {
			name      string
			got, want float64
		}{
			{"Frequency", res.Frequency, 16},
			{"Level", res.Level, 1},
			{"THD", res.THD, math.Sqrt(0.1*0.1 + 0.05*0.05)},
			{"THDN", res.THDN, math.Sqrt(0.1*0.1 + 0.05*0.05 + 0.02*0.02)},
			{"Noise", res.Noise, 0.02},
			{"H2", res.Harmonics[0], 0.1},
			{"H3", res.Harmonics[1], 0.05},
			{"H4", res.Harmonics[2], 0},
			{"SINAD", res.SINAD, -20 * math.Log10(math.Sqrt(0.0129))},
		}
		for _, c := range checks {
			if math.Abs(c.got-c.want) > 1e-6 {
				t.Fatalf("window %d: %s = %.12f, want %.12f", w, c.name, c.got, c.want)
			}
		}
		if res.Bin != 16 {
			t.Fatalf("window %d: Bin = %d, want 16", w, res.Bin)
		}
		if len(res.Harmonics) != 31 {
			t.Fatalf("window %d: %d harmonics, want 31", w, len(res.Harmonics))
		}
	}
}

func TestAnalyzeWindowsMeasureLevel(t *testing.T) {
	x := tone(1024, partial{64, 0.5})
	for _, w := range []window.Type{
		window.TypeRectangular, window.TypeHann, window.TypeHamming,
		window.TypeBlackman, window.TypeBlackmanHarris4Term, window.TypeFlatTop,
	} {
		res, err := Analyze(x, Config{SampleRate: 1024, Window: w})
		if err != nil {
			t.Fatalf("Analyze(%d) error = %v", w, err)
		}
		if res.Bin != 64 {
			t.Fatalf("window %d: Bin = %d, want 64", w, res.Bin)
		}
		if math.Abs(res.Level-0.5) > 1e-6 {
			t.Fatalf("window %d: Level = %v, want 0.5", w, res.Level)
		}
		if res.THD_dB > -150 || res.SINAD < 150 {
			t.Fatalf("window %d: THD_dB = %v, SINAD = %v", w, res.THD_dB, res.SINAD)
		}
	}
}

func TestAnalyzeGeneratorSpectralPurity(t *testing.T) {
	g := signal.NewGenerator(signal.WithSampleRate(8192))
	x, err := g.Sine(100, 8192)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	res, err := Analyze(x, Config{SampleRate: 8192, Frequency: 100, Window: window.TypeHann})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Frequency != 100 {
		t.Fatalf("Frequency = %v, want 100", res.Frequency)
	}
	if math.Abs(res.Level-1) > 1e-6 {
		t.Fatalf("Level = %v, want 1", res.Level)
	}
	if res.THD_dB > -160 {
		t.Fatalf("THD_dB = %v, want < -160", res.THD_dB)
	}
	if res.SINAD < 160 {
		t.Fatalf("SINAD = %v, want > 160", res.SINAD)
	}
}

func TestAnalyzeNonPowerOfTwoLength(t *testing.T) {
	x := tone(1000, partial{50, 1}, partial{100, 0.01})
	res, err := Analyze(x, Config{SampleRate: 1000, Window: window.TypeBlackman})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Frequency != 50 {
		t.Fatalf("Frequency = %v, want 50", res.Frequency)
	}
	if math.Abs(res.THD-0.01) > 1e-6 {
		t.Fatalf("THD = %v, want 0.01", res.THD)
	}
}

func TestAnalyzeStrongestBin(t *testing.T) {
	x := tone(1024, partial{40, 0.5}, partial{50, 0.8})
	res, err := Analyze(x, Config{SampleRate: 1024, Window: window.TypeHann})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Bin != 50 {
		t.Fatalf("Bin = %d, want 50", res.Bin)
	}
	if math.Abs(res.Level-0.8) > 1e-6 {
		t.Fatalf("Level = %v, want 0.8", res.Level)
	}
	// The other tone is noise, not distortion.
	if res.THD > 1e-6 || math.Abs(res.Noise-0.5/0.8) > 1e-6 {
		t.Fatalf("THD = %v, Noise = %v", res.THD, res.Noise)
	}
}

func TestAnalyzeMaxHarmonics(t *testing.T) {
	x := tone(1024, partial{16, 1}, partial{80, 0.1})
	res, err := Analyze(x, Config{SampleRate: 1024, Frequency: 16, Window: window.TypeHann, MaxHarmonics: 3})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(res.Harmonics) != 3 {
		t.Fatalf("%d harmonics, want 3", len(res.Harmonics))
	}
	// H5 is outside the counted range and ends up in the noise.
	if res.THD > 1e-6 || math.Abs(res.Noise-0.1) > 1e-6 {
		t.Fatalf("THD = %v, Noise = %v", res.THD, res.Noise)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	x := tone(64, partial{4, 1})
	tests := []struct {
		name string
		x    []fixed.Fixed
		cfg  Config
		want error
	}{
		{"short", x[:3], Config{SampleRate: 64}, ErrShortInput},
		{"sample rate", x, Config{}, ErrInvalidSampleRate},
		{"infinite rate", x, Config{SampleRate: math.Inf(1)}, ErrInvalidSampleRate},
		{"negative freq", x, Config{SampleRate: 64, Frequency: -1}, ErrInvalidFrequency},
		{"nan freq", x, Config{SampleRate: 64, Frequency: math.NaN()}, ErrInvalidFrequency},
		{"window", x, Config{SampleRate: 64, Window: window.Type(99)}, ErrInvalidWindow},
		{"above nyquist", x, Config{SampleRate: 64, Frequency: 40}, ErrNoFundamental},
		{"silent", make([]fixed.Fixed, 64), Config{SampleRate: 64, Frequency: 4}, ErrNoFundamental},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Analyze(tt.x, tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("Analyze() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResidual(t *testing.T) {
	g := signal.NewGenerator(signal.WithSampleRate(8192))
	x, err := g.Sine(100, 8192)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	res, err := Residual(x, 100, 8192, fixed.One)
	if err != nil {
		t.Fatalf("Residual() error = %v", err)
	}
	if res.MaxAbs > 1e-8 || res.RMS > res.MaxAbs {
		t.Fatalf("Residual() = %+v", res)
	}
	if res.DB > -160 {
		t.Fatalf("DB = %v, want < -160", res.DB)
	}

	offset := fixed.FromFloat(0.001)
	for i := range x {
		x[i] = x[i].Add(offset)
	}
	res, err = Residual(x, 100, 8192, fixed.One)
	if err != nil {
		t.Fatalf("Residual() error = %v", err)
	}
	if math.Abs(res.MaxAbs-0.001) > 1e-8 || math.Abs(res.RMS-0.001) > 1e-8 {
		t.Fatalf("Residual() with offset = %+v, want 0.001", res)
	}
}

func TestResidualErrors(t *testing.T) {
	x := tone(8, partial{1, 1})
	tests := []struct {
		name       string
		x          []fixed.Fixed
		freq, rate float64
		amp        fixed.Fixed
		want       error
	}{
		{"empty", nil, 1, 8, fixed.One, ErrShortInput},
		{"rate", x, 1, 0, fixed.One, ErrInvalidSampleRate},
		{"freq", x, math.Inf(1), 8, fixed.One, ErrInvalidFrequency},
		{"amplitude", x, 1, 8, 0, ErrInvalidAmplitude},
	}
	for _, tt := range tests {
		if _, err := Residual(tt.x, tt.freq, tt.rate, tt.amp); !errors.Is(err, tt.want) {
			t.Fatalf("%s: Residual() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestMainLobeBins(t *testing.T) {
	tests := []struct {
		typ  window.Type
		want int
	}{
		{window.TypeRectangular, 1},
		{window.TypeHann, 2},
		{window.TypeHamming, 2},
		{window.TypeBlackman, 3},
		{window.TypeBlackmanHarris4Term, 4},
		{window.TypeFlatTop, 5},
		{window.Type(99), 0},
	}
	for _, tt := range tests {
		if got := mainLobeBins(tt.typ); got != tt.want {
			t.Fatalf("mainLobeBins(%d) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}
