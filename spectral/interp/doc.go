// Package interp provides interpolation of tabulated spectra.
//
// [Linear] is a piecewise-linear interpolant over a strictly monotonic table.
// It is defined only on the closed sample range: evaluating outside
// [Linear.Min], [Linear.Max] returns [ErrOutOfRange] instead of
// extrapolating. [Linear2] is the underlying 2-point primitive.
package interp
