package barchart

import (
	"math"
	"testing"
)

func TestNiceAxisBounds_RoundsOutward(t *testing.T) {
	lo, hi := niceAxisBounds(0, 48757)
	if lo > 0 {
		t.Fatalf("lower bound must not cut off data: got %v", lo)
	}
	if hi < 48757 {
		t.Fatalf("upper bound must not cut off data: got %v", hi)
	}
	// rounded to the span's magnitude, so no long fractional tails
	if hi != math.Trunc(hi) {
		t.Fatalf("upper bound should be a round number, got %v", hi)
	}
}

func TestNiceAxisBounds_DegenerateRange(t *testing.T) {
	lo, hi := niceAxisBounds(5, 5)
	if hi <= lo {
		t.Fatalf("degenerate input must still produce a positive span: %v..%v", lo, hi)
	}
}

func TestNiceAxisBounds_NaNPassthrough(t *testing.T) {
	lo, hi := niceAxisBounds(math.NaN(), 10)
	if !math.IsNaN(lo) || hi != 10 {
		t.Fatalf("NaN input should pass through, got %v..%v", lo, hi)
	}
}

func TestNiceTicks_InRangeAndOrdered(t *testing.T) {
	ticks := niceTicks(0, 50000, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	prev := math.Inf(-1)
	for _, tk := range ticks {
		if tk.value < 0 || tk.value > 50000+1e-9 {
			t.Fatalf("tick %v outside the axis range", tk.value)
		}
		if tk.value <= prev {
			t.Fatalf("ticks not strictly increasing: %v after %v", tk.value, prev)
		}
		if tk.label == "" {
			t.Fatalf("tick %v has an empty label", tk.value)
		}
		prev = tk.value
	}
}

func TestNiceTicks_RejectsBadInput(t *testing.T) {
	if got := niceTicks(0, 10, 1); got != nil {
		t.Fatalf("n<2 should yield no ticks, got %v", got)
	}
	if got := niceTicks(math.NaN(), 10, 5); got != nil {
		t.Fatalf("NaN bounds should yield no ticks, got %v", got)
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{45000, "45000"},
		{123.4, "123"},
		{12.34, "12.3"},
		{1.234, "1.23"},
		{-250, "-250"},
	}
	for _, tc := range cases {
		if got := formatTick(tc.v); got != tc.want {
			t.Fatalf("formatTick(%v): got %q want %q", tc.v, got, tc.want)
		}
	}
}
