package solar

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pv/phys"
)

// ErrDataSource reports a missing or malformed spectral data source.
var ErrDataSource = errors.New("solar: spectral data source")

// Source supplies a photon-flux spectrum.
type Source interface {
	Spectrum() (Spectrum, error)
}

// Spectrum is a tabulated photon flux density Φ(λ).
type Spectrum struct {
	Wavelength []float64 // nm, strictly increasing
	Flux       []float64 // photons·m⁻²·s⁻¹·nm⁻¹
}

// Validate checks shape and value ranges.
func (s Spectrum) Validate() error {
	if len(s.Wavelength) != len(s.Flux) {
		return fmt.Errorf("%w: %d wavelengths, %d flux values", ErrDataSource, len(s.Wavelength), len(s.Flux))
	}
	if len(s.Wavelength) < 2 {
		return fmt.Errorf("%w: need at least two samples", ErrDataSource)
	}

	for i, wl := range s.Wavelength {
		if !(wl > 0) || math.IsInf(wl, 0) {
			return fmt.Errorf("%w: wavelength[%d]=%g must be positive and finite", ErrDataSource, i, wl)
		}
		if i > 0 && wl <= s.Wavelength[i-1] {
			return fmt.Errorf("%w: wavelength not strictly increasing at index %d", ErrDataSource, i)
		}
		f := s.Flux[i]
		if !(f >= 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: flux[%d]=%g must be non-negative and finite", ErrDataSource, i, f)
		}
	}

	return nil
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Wavelength) }

// Domain returns the (min, max) wavelength in nm.
func (s Spectrum) Domain() (float64, float64) {
	return s.Wavelength[0], s.Wavelength[len(s.Wavelength)-1]
}

// Irradiance integrates the spectrum into total irradiance (W·m⁻²) using the
// trapezoidal rule.
func (s Spectrum) Irradiance() float64 {
	total := 0.0
	for i := 1; i < len(s.Wavelength); i++ {
		e0 := phys.PhotonFluxToIrradiance(s.Flux[i-1], s.Wavelength[i-1])
		e1 := phys.PhotonFluxToIrradiance(s.Flux[i], s.Wavelength[i])
		total += 0.5 * (e0 + e1) * (s.Wavelength[i] - s.Wavelength[i-1])
	}
	return total
}

// PhotonCount integrates the spectrum into total photon flux (photons·m⁻²·s⁻¹)
// using the trapezoidal rule.
func (s Spectrum) PhotonCount() float64 {
	total := 0.0
	for i := 1; i < len(s.Wavelength); i++ {
		total += 0.5 * (s.Flux[i-1] + s.Flux[i]) * (s.Wavelength[i] - s.Wavelength[i-1])
	}
	return total
}

// Table is a [Source] backed by an in-memory spectrum.
type Table struct {
	spec Spectrum
}

// NewTable validates and wraps copies of wavelength (nm) and flux
// (photons·m⁻²·s⁻¹·nm⁻¹).
func NewTable(wavelength, flux []float64) (*Table, error) {
	spec := Spectrum{
		Wavelength: append([]float64(nil), wavelength...),
		Flux:       append([]float64(nil), flux...),
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Table{spec: spec}, nil
}

// Spectrum returns the stored spectrum. Callers must not modify it.
func (t *Table) Spectrum() (Spectrum, error) {
	return t.spec, nil
}
