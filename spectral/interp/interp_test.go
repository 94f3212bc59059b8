package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pv/internal/testutil"
)

func TestLinear2(t *testing.T) {
	for _, tc := range []struct {
		frac, y0, y1, want float64
	}{
		{frac: 0, y0: 2, y1: 4, want: 2},
		{frac: 0.25, y0: 2, y1: 4, want: 2.5},
		{frac: 1, y0: 2, y1: 4, want: 4},
	} {
		if got := Linear2(tc.frac, tc.y0, tc.y1); got != tc.want {
			t.Fatalf("Linear2(%v, %v, %v) = %v, want %v", tc.frac, tc.y0, tc.y1, got, tc.want)
		}
	}
}

func TestLinearExactAtKnots(t *testing.T) {
	x := []float64{1, 1.5, 2, 2.5, 3}
	y := []float64{1e3, 1e4, 1e5, 1e5, 1e5}

	l, err := NewLinear(x, y)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for i := range x {
		got, err := l.At(x[i])
		if err != nil {
			t.Fatalf("At(%v): %v", x[i], err)
		}
		if got != y[i] {
			t.Fatalf("At(%v) = %v, want %v", x[i], got, y[i])
		}
	}
}

func TestLinearMidpoints(t *testing.T) {
	l, err := NewLinear([]float64{0, 1, 3}, []float64{0, 10, 30})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for _, tc := range []struct{ x, want float64 }{
		{0.5, 5},
		{2, 20},
		{2.9, 29},
	} {
		got, err := l.At(tc.x)
		if err != nil {
			t.Fatalf("At(%v): %v", tc.x, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestLinearDecreasingInputIsReversed(t *testing.T) {
	l, err := NewLinear([]float64{3, 2, 1}, []float64{30, 20, 10})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	if lo, hi := l.Domain(); lo != 1 || hi != 3 {
		t.Fatalf("Domain() = (%v, %v), want (1, 3)", lo, hi)
	}

	got, err := l.At(1.5)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if math.Abs(got-15) > 1e-12 {
		t.Fatalf("At(1.5) = %v, want 15", got)
	}
}

func TestLinearRejectsExtrapolation(t *testing.T) {
	l, err := NewLinear([]float64{1, 2}, []float64{1, 2})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for _, x := range []float64{0.999, 2.0001, math.NaN(), math.Inf(1)} {
		if _, err := l.At(x); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%v) err = %v, want ErrOutOfRange", x, err)
		}
	}

	dst := make([]float64, 2)
	if err := l.Eval(dst, []float64{1.5, 3}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Eval err = %v, want ErrOutOfRange", err)
	}
}

func TestLinearEvalMatchesAt(t *testing.T) {
	x := []float64{0, 1, 2, 4, 8}
	y := []float64{1, 3, 2, 6, 0}

	l, err := NewLinear(x, y)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	xs := []float64{0, 0.5, 1, 3.3, 8, 7.9, 0.1, 2}
	dst := make([]float64, len(xs))
	if err := l.Eval(dst, xs); err != nil {
		t.Fatalf("Eval: %v", err)
	}

	want := make([]float64, len(xs))
	for i, v := range xs {
		if want[i], err = l.At(v); err != nil {
			t.Fatalf("At(%v): %v", v, err)
		}
	}
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-12)
}

func TestNewLinearValidation(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "mismatch", x: []float64{1, 2}, y: []float64{1}, want: ErrLengthMismatch},
		{name: "empty", x: nil, y: nil, want: ErrEmpty},
		{name: "single", x: []float64{1}, y: []float64{1}, want: ErrEmpty},
		{name: "duplicate", x: []float64{1, 1, 2}, y: []float64{1, 2, 3}, want: ErrNotMonotonic},
		{name: "zigzag", x: []float64{1, 3, 2}, y: []float64{1, 2, 3}, want: ErrNotMonotonic},
		{name: "nan", x: []float64{1, math.NaN()}, y: []float64{1, 2}, want: ErrNotFinite},
		{name: "inf y", x: []float64{1, 2}, y: []float64{1, math.Inf(1)}, want: ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinear(tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
