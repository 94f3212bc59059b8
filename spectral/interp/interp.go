package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned by interpolant construction and evaluation.
var (
	ErrEmpty          = errors.New("interp: table needs at least two samples")
	ErrLengthMismatch = errors.New("interp: x and y lengths differ")
	ErrNotMonotonic   = errors.New("interp: x must be strictly monotonic")
	ErrNotFinite      = errors.New("interp: table contains NaN or Inf")
	ErrOutOfRange     = errors.New("interp: x outside sampled domain")
)

// Linear2 computes 2-point linear interpolation from y0 to y1 at frac in [0,1].
func Linear2(frac, y0, y1 float64) float64 {
	return y0 + frac*(y1-y0)
}

// Linear is a piecewise-linear interpolant over a tabulated function.
// The zero value is not usable; construct with [NewLinear].
type Linear struct {
	x []float64
	y []float64
}

// NewLinear builds an interpolant from samples (x[i], y[i]).
//
// x must be strictly increasing or strictly decreasing; decreasing tables are
// stored reversed. Both slices are copied.
func NewLinear(x, y []float64) (*Linear, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, ErrEmpty
	}

	n := len(x)
	l := &Linear{
		x: make([]float64, n),
		y: make([]float64, n),
	}

	decreasing := x[n-1] < x[0]
	for i := range x {
		j := i
		if decreasing {
			j = n - 1 - i
		}
		if isNotFinite(x[j]) || isNotFinite(y[j]) {
			return nil, fmt.Errorf("%w: sample %d", ErrNotFinite, j)
		}
		l.x[i] = x[j]
		l.y[i] = y[j]
	}

	for i := 1; i < n; i++ {
		if l.x[i] <= l.x[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%g, x[%d]=%g", ErrNotMonotonic, i-1, l.x[i-1], i, l.x[i])
		}
	}

	return l, nil
}

// Min returns the lower end of the sampled domain.
func (l *Linear) Min() float64 { return l.x[0] }

// Max returns the upper end of the sampled domain.
func (l *Linear) Max() float64 { return l.x[len(l.x)-1] }

// Domain returns the sampled domain as (min, max).
func (l *Linear) Domain() (float64, float64) { return l.Min(), l.Max() }

// Len returns the number of samples.
func (l *Linear) Len() int { return len(l.x) }

// Contains reports whether v lies inside the sampled domain.
func (l *Linear) Contains(v float64) bool {
	return v >= l.Min() && v <= l.Max()
}

// At evaluates the interpolant at v.
func (l *Linear) At(v float64) (float64, error) {
	if !l.Contains(v) {
		return 0, l.rangeError(v)
	}
	return l.segment(sort.SearchFloat64s(l.x, v), v), nil
}

// Eval evaluates the interpolant at every xs[i] into dst.
// dst and xs must have the same length. Ascending xs is the fast path.
func (l *Linear) Eval(dst, xs []float64) error {
	if len(dst) != len(xs) {
		return fmt.Errorf("%w: dst %d, xs %d", ErrLengthMismatch, len(dst), len(xs))
	}

	hi := 1
	for i, v := range xs {
		if !l.Contains(v) {
			return l.rangeError(v)
		}
		if v < l.x[hi-1] || v > l.x[hi] {
			hi = max(sort.SearchFloat64s(l.x, v), 1)
		}
		dst[i] = l.segment(hi, v)
	}

	return nil
}

// segment interpolates v inside [x[hi-1], x[hi]]; hi is the first index with
// x[hi] >= v.
func (l *Linear) segment(hi int, v float64) float64 {
	if hi == 0 || l.x[hi] == v {
		return l.y[hi]
	}
	lo := hi - 1
	frac := (v - l.x[lo]) / (l.x[hi] - l.x[lo])
	return Linear2(frac, l.y[lo], l.y[hi])
}

func (l *Linear) rangeError(v float64) error {
	return fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, v, l.Min(), l.Max())
}

func isNotFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
