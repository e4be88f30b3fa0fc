package fixed

import "testing"

func TestRounding(t *testing.T) {
	tests := []struct {
		in                       float64
		floor, ceil, round, frac float64
	}{
		{in: 0, floor: 0, ceil: 0, round: 0, frac: 0},
		{in: 0.5, floor: 0, ceil: 1, round: 0, frac: 0.5},
		{in: 1.5, floor: 1, ceil: 2, round: 2, frac: 0.5},
		{in: 2.5, floor: 2, ceil: 3, round: 2, frac: 0.5},
		{in: 2.75, floor: 2, ceil: 3, round: 3, frac: 0.75},
		{in: 3, floor: 3, ceil: 3, round: 3, frac: 0},
		{in: -0.5, floor: -1, ceil: 0, round: 0, frac: 0.5},
		{in: -1.5, floor: -2, ceil: -1, round: -2, frac: 0.5},
		{in: -2.5, floor: -3, ceil: -2, round: -2, frac: 0.5},
		{in: -2.25, floor: -3, ceil: -2, round: -2, frac: 0.75},
	}

	for _, tt := range tests {
		x := FromFloat(tt.in)
		if got := x.Floor(); got != FromFloat(tt.floor) {
			t.Fatalf("Floor(%v) = %v, want %v", tt.in, got, tt.floor)
		}
		if got := x.Ceil(); got != FromFloat(tt.ceil) {
			t.Fatalf("Ceil(%v) = %v, want %v", tt.in, got, tt.ceil)
		}
		if got := x.Round(); got != FromFloat(tt.round) {
			t.Fatalf("Round(%v) = %v, want %v", tt.in, got, tt.round)
		}
		if got := x.Frac(); got != FromFloat(tt.frac) {
			t.Fatalf("Frac(%v) = %v, want %v", tt.in, got, tt.frac)
		}
	}
}

func TestRoundNearHalf(t *testing.T) {
	if got := (Half - Epsilon).Round(); got != Zero {
		t.Fatalf("Round(0.5-eps) = %v, want 0", got)
	}
	if got := (Half + Epsilon).Round(); got != One {
		t.Fatalf("Round(0.5+eps) = %v, want 1", got)
	}
	if got := (-Half - Epsilon).Round(); got != -One {
		t.Fatalf("Round(-0.5-eps) = %v, want -1", got)
	}
}
