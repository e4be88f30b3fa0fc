package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fixed/fixed"
)

// RequireNear fails t if got differs from want by more than eps.
func RequireNear(t *testing.T, name string, x, got fixed.Fixed, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got.Float64() - want); diff > eps {
		t.Fatalf("%s(%v) = %v, want %v (diff %g > eps %g)", name, x, got, want, diff, eps)
	}
}

// RequireRelNear fails t if got differs from want by more than
// eps*max(1, |want|), an absolute bound near zero and a relative one for
// large results.
func RequireRelNear(t *testing.T, name string, x, got fixed.Fixed, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got.Float64()-want) / math.Max(1, math.Abs(want)); diff > eps {
		t.Fatalf("%s(%v) = %v, want %v (error %g > eps %g)", name, x, got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
