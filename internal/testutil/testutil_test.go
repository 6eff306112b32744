package testutil

import (
	"math"
	"testing"
)

func TestSineStartsAtZero(t *testing.T) {
	s := Sine(4, 64, 1.0, 16)
	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
}

func TestSineAmplitudeBound(t *testing.T) {
	s := Sine(3, 48, 0.5, 128)
	for i, v := range s {
		if math.Abs(v) > 0.5+1e-12 {
			t.Fatalf("index %d: |%v| exceeds amplitude", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(4)
	for i, v := range r {
		if v != float64(i) {
			t.Fatalf("Ramp[%d] = %v, want %d", i, v, i)
		}
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}
