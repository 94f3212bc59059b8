package testutil

import (
	"github.com/cwbudde/algo-pv/internal/grid"
	"github.com/cwbudde/algo-pv/spectral/solar"
)

// FlatAbsorption returns a two-point absorption table with constant alpha
// (cm⁻¹) between lo and hi eV.
func FlatAbsorption(alpha, lo, hi float64) (energy, coeff []float64) {
	return []float64{lo, hi}, []float64{alpha, alpha}
}

// LinearAbsorption returns a two-point table rising from a0 at lo eV to a1
// at hi eV.
func LinearAbsorption(lo, hi, a0, a1 float64) (energy, coeff []float64) {
	return []float64{lo, hi}, []float64{a0, a1}
}

// FlatFlux returns a source with constant photon flux density
// (photons·m⁻²·s⁻¹·nm⁻¹) sampled every step nm on [lo, hi].
func FlatFlux(flux, lo, hi, step float64) *solar.Table {
	wl := grid.Inclusive(lo, hi, step)
	f := make([]float64, len(wl))
	for i := range f {
		f[i] = flux
	}
	src, err := solar.NewTable(wl, f)
	if err != nil {
		panic(err)
	}
	return src
}

// RampFlux returns a two-point source rising linearly from f0 at lo nm to
// f1 at hi nm.
func RampFlux(lo, hi, f0, f1 float64) *solar.Table {
	src, err := solar.NewTable([]float64{lo, hi}, []float64{f0, f1})
	if err != nil {
		panic(err)
	}
	return src
}
