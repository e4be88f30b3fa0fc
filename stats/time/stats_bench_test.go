//nolint:revive
package time

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-fixed/fixed"
)

func makeBenchSignal(n int) []fixed.Fixed {
	out := make([]fixed.Fixed, n)
	for i := range out {
		out[i] = fixed.FromFloat(math.Sin(2 * math.Pi * float64(i) / float64(n)))
	}

	return out
}

func BenchmarkCalculate(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096, 16384, 65536}
	for _, n := range sizes {
		signal := makeBenchSignal(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Calculate(signal)
			}
		})
	}
}

func BenchmarkRMS(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096, 16384, 65536}
	for _, n := range sizes {
		signal := makeBenchSignal(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				RMS(signal)
			}
		})
	}
}

func BenchmarkStreamingUpdate(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096, 16384, 65536}
	for _, n := range sizes {
		signal := makeBenchSignal(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			ss := NewStreamingStats()
			for range b.N {
				ss.Reset()
				ss.Update(signal)
			}
		})
	}
}
