package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2.0000001, 3}, []float64{1, 2, 3}, 1e-6)
}

func TestRelDiff(t *testing.T) {
	if d := RelDiff(1.01e17, 1e17); math.Abs(d-0.01) > 1e-12 {
		t.Fatalf("RelDiff = %v, want 0.01", d)
	}
	if d := RelDiff(-2, 0); d != 2 {
		t.Fatalf("RelDiff against zero = %v, want 2", d)
	}
}
