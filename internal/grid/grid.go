// Package grid builds uniformly spaced sample grids.
package grid

import "math"

// slack absorbs round-off when (stop-start)/step is an exact integer in
// decimal but not in binary.
const slack = 1e-9

// Len returns the number of points start + i*step that lie below stop.
// It returns 0 for empty ranges or non-positive step.
func Len(start, stop, step float64) int {
	if !(step > 0) || !(stop > start) {
		return 0
	}
	n := (stop - start) / step
	return int(math.Ceil(n - slack*math.Max(1, n)))
}

// Exceeds reports whether the grid start + i*step below stop would hold more
// than limit points, including counts too large to represent.
func Exceeds(start, stop, step float64, limit int) bool {
	if !(step > 0) || !(stop > start) {
		return false
	}
	return !((stop-start)/step <= float64(limit))
}

// Arange returns start, start+step, ... strictly below stop.
func Arange(start, stop, step float64) []float64 {
	n := Len(start, stop, step)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Inclusive returns start, start+step, ... up to and including stop when stop
// lies on the grid.
func Inclusive(start, stop, step float64) []float64 {
	if !(step > 0) || stop < start {
		return nil
	}
	n := (stop - start) / step
	count := int(math.Floor(n+slack*math.Max(1, n))) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
