// Package time computes time-domain statistics of fixed-point signals.
//
// Sums and sums of squares are accumulated in 128-bit integers, so results
// are exact up to the final division and square root and do not depend on
// summation order or block boundaries.
package time

import (
	"math"
	"math/bits"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/fmath"
)

// NegInfDB stands in for -Inf in decibel fields.
const NegInfDB = fixed.MinValue

// dbPerNeper is 20/ln(10).
const dbPerNeper fixed.Fixed = 0x8af96769c

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             fixed.Fixed // mean, truncated toward zero
	DC_dB          fixed.Fixed
	RMS            fixed.Fixed
	RMS_dB         fixed.Fixed
	Max            fixed.Fixed
	MaxPos         int
	Min            fixed.Fixed
	MinPos         int
	Peak           fixed.Fixed // max(|max|, |min|)
	Peak_dB        fixed.Fixed
	Range          fixed.Fixed // max - min
	Range_dB       fixed.Fixed
	CrestFactor    fixed.Fixed // peak / RMS (linear)
	CrestFactor_dB fixed.Fixed
	Energy         fixed.Fixed // sum of squares
	Power          fixed.Fixed // energy / length
	ZeroCrossings  int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns NegInfDB for zero values.
func ampTodB(value fixed.Fixed) fixed.Fixed {
	a := saturatingAbs(value)
	if a == 0 {
		return NegInfDB
	}

	return fmath.Log(a).Mul(dbPerNeper)
}

func emptyStats() Stats {
	return Stats{
		DC_dB:          NegInfDB,
		RMS_dB:         NegInfDB,
		Peak_dB:        NegInfDB,
		Range_dB:       NegInfDB,
		CrestFactor_dB: NegInfDB,
	}
}

// Calculate computes all time-domain statistics in a single pass.
func Calculate(signal []fixed.Fixed) Stats {
	s := NewStreamingStats()
	s.Update(signal)
	return s.Result()
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []fixed.Fixed) fixed.Fixed {
	if len(signal) == 0 {
		return 0
	}

	var sumSq acc128
	for _, x := range signal {
		sumSq.addSquare(x)
	}

	return rms(sumSq, uint64(len(signal)))
}

// DC returns the mean (DC offset) of the signal, truncated toward zero.
func DC(signal []fixed.Fixed) fixed.Fixed {
	if len(signal) == 0 {
		return 0
	}

	var sum acc128
	for _, x := range signal {
		sum.addInt(int64(x))
	}

	return sum.quo(uint64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []fixed.Fixed) fixed.Fixed {
	var peak fixed.Fixed
	for _, x := range signal {
		peak = fixed.Max(peak, saturatingAbs(x))
	}

	return peak
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []fixed.Fixed) fixed.Fixed {
	return crest(Peak(signal), RMS(signal))
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []fixed.Fixed) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1].Sign()*signal[i].Sign() < 0 {
			count++
		}
	}

	return count
}

// StreamingStats accumulates time-domain statistics incrementally across
// multiple blocks of samples. Results are identical to [Calculate] on the
// concatenated blocks.
type StreamingStats struct {
	n             int
	sum           acc128
	sumSq         acc128
	maxVal        fixed.Fixed
	maxPos        int
	minVal        fixed.Fixed
	minPos        int
	zeroCrossings int
	lastSample    fixed.Fixed
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []fixed.Fixed) {
	for _, x := range samples {
		if s.n == 0 {
			s.maxVal, s.minVal = x, x
		} else {
			if x > s.maxVal {
				s.maxVal = x
				s.maxPos = s.n
			}

			if x < s.minVal {
				s.minVal = x
				s.minPos = s.n
			}

			if s.lastSample.Sign()*x.Sign() < 0 {
				s.zeroCrossings++
			}
		}

		s.sum.addInt(int64(x))
		s.sumSq.addSquare(x)
		s.lastSample = x
		s.n++
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return emptyStats()
	}

	n := uint64(s.n)
	mean := s.sum.quo(n)
	rmsVal := rms(s.sumSq, n)
	peak := fixed.Max(saturatingAbs(s.maxVal), saturatingAbs(s.minVal))
	rangeVal := saturatingSub(s.maxVal, s.minVal)

	crestVal := crest(peak, rmsVal)
	crestdB := fixed.Fixed(0)
	if crestVal > 0 {
		crestdB = ampTodB(crestVal)
	}

	return Stats{
		Length:         s.n,
		DC:             mean,
		DC_dB:          ampTodB(mean),
		RMS:            rmsVal,
		RMS_dB:         ampTodB(rmsVal),
		Max:            s.maxVal,
		MaxPos:         s.maxPos,
		Min:            s.minVal,
		MinPos:         s.minPos,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		Range:          rangeVal,
		Range_dB:       ampTodB(rangeVal),
		CrestFactor:    crestVal,
		CrestFactor_dB: crestdB,
		Energy:         s.sumSq.quo(1),
		Power:          s.sumSq.quo(n),
		ZeroCrossings:  s.zeroCrossings,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

func crest(peak, rmsVal fixed.Fixed) fixed.Fixed {
	c, err := peak.Quo(rmsVal)
	if err != nil {
		return 0
	}
	return c
}

// rms returns sqrt(sumSq/n). Mean squares beyond the encoding are scaled
// down by 4^k before the root and the result scaled up by 2^k.
func rms(sumSq acc128, n uint64) fixed.Fixed {
	hi, lo := sumSq.hi, sumSq.lo

	var k uint
	for hi >= n {
		lo = lo>>2 | hi<<62
		hi >>= 2
		k++
	}
	ms, _ := bits.Div64(hi, lo, n)
	for ms > math.MaxInt64 {
		ms >>= 2
		k++
	}

	r := fmath.Sqrt(fixed.FromRaw(int64(ms)))
	if k > 0 && int64(r) > math.MaxInt64>>k {
		return fixed.MaxValue
	}
	return r << k
}

// acc128 is a 128-bit two's complement accumulator.
type acc128 struct {
	hi, lo uint64
}

func (a *acc128) add(hi, lo uint64) {
	var carry uint64
	a.lo, carry = bits.Add64(a.lo, lo, 0)
	a.hi, _ = bits.Add64(a.hi, hi, carry)
}

func (a *acc128) addInt(v int64) {
	a.add(uint64(v>>63), uint64(v))
}

// addSquare adds x*x in Q.32, rounded down.
func (a *acc128) addSquare(x fixed.Fixed) {
	m := uint64(x)
	if x < 0 {
		m = -m
	}
	hi, lo := bits.Mul64(m, m)
	a.add(hi>>fixed.FracBits, hi<<(64-fixed.FracBits)|lo>>fixed.FracBits)
}

// quo divides by n, truncating toward zero and saturating to the encoding.
func (a acc128) quo(n uint64) fixed.Fixed {
	neg := int64(a.hi) < 0
	hi, lo := a.hi, a.lo
	if neg {
		var borrow uint64
		lo, borrow = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, borrow)
	}

	if hi >= n {
		if neg {
			return fixed.MinValue
		}
		return fixed.MaxValue
	}

	q, _ := bits.Div64(hi, lo, n)
	switch {
	case !neg && q > math.MaxInt64:
		return fixed.MaxValue
	case neg && q > 1<<63:
		return fixed.MinValue
	case neg:
		return fixed.FromRaw(-int64(q))
	}
	return fixed.FromRaw(int64(q))
}

func saturatingAbs(x fixed.Fixed) fixed.Fixed {
	if x == fixed.MinValue {
		return fixed.MaxValue
	}
	return x.Abs()
}

func saturatingSub(x, y fixed.Fixed) fixed.Fixed {
	d := x.Sub(y)
	if x >= 0 && y < 0 && d < 0 {
		return fixed.MaxValue
	}
	return d
}
