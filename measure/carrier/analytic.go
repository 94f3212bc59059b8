package carrier

import (
	"math"

	"github.com/cwbudde/algo-pv/internal/grid"
)

// Analytic returns the exact concentration for spectrally flat absorption α
// (cm⁻¹) and flat flux density Φ (cm⁻²·s⁻¹ per spectral unit) over a window
// of the given width:
//
//	n = τ·Φ·width·(1 − exp(−α·L))
//
// divided by L for [Volumetric] normalization.
func Analytic(flux, alpha, width, thickness, lifetime float64, norm Normalization) float64 {
	n := lifetime * flux * width * -math.Expm1(-alpha*thickness)
	if norm == Volumetric {
		n /= thickness
	}
	return n
}

// AnalyticDiscrete is [Analytic] evaluated with the rectangle rule the
// estimator uses over depth: samples w = 0, dt, 2dt, … below L.
func AnalyticDiscrete(flux, alpha, width, thickness, depthStep, lifetime float64, norm Normalization) float64 {
	samples := float64(grid.Len(0, thickness, depthStep))
	var sum float64
	if alpha*depthStep == 0 {
		sum = samples
	} else {
		sum = -math.Expm1(-alpha*depthStep*samples) / -math.Expm1(-alpha*depthStep)
	}
	n := lifetime * flux * width * alpha * depthStep * sum
	if norm == Volumetric {
		n /= thickness
	}
	return n
}
