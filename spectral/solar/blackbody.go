package solar

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pv/internal/grid"
	"github.com/cwbudde/algo-pv/phys"
)

// Blackbody generates the photon flux of a blackbody sun observed at 1 AU.
//
// The spectral photon radiance of a blackbody at temperature T is
//
//	L(λ) = 2c / λ⁴ / (exp(hc/(λkT)) − 1)
//
// and the flux on a surface facing the sun is π·L(λ)·D, where D is the
// dilution factor (R_sun/AU)². The result is sampled on an inclusive
// wavelength grid.
type Blackbody struct {
	Temperature float64 // K
	Dilution    float64 // geometric dilution factor, dimensionless
	Start       float64 // first wavelength in nm
	Stop        float64 // last wavelength in nm
	Step        float64 // wavelength step in nm
}

// BlackbodyOption mutates a Blackbody.
type BlackbodyOption func(*Blackbody)

// DefaultDilution is (R_sun/AU)².
var DefaultDilution = (phys.SunRadius / phys.AstronomicalUnit) * (phys.SunRadius / phys.AstronomicalUnit)

// NewBlackbody returns a solar blackbody with defaults
// T = 5772 K, 280–4000 nm in 1 nm steps.
func NewBlackbody(opts ...BlackbodyOption) *Blackbody {
	b := &Blackbody{
		Temperature: phys.SunTemperature,
		Dilution:    DefaultDilution,
		Start:       280,
		Stop:        4000,
		Step:        1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// WithTemperature sets the blackbody temperature in K.
func WithTemperature(kelvin float64) BlackbodyOption {
	return func(b *Blackbody) {
		if kelvin > 0 {
			b.Temperature = kelvin
		}
	}
}

// WithRange sets the sampled wavelength range in nm.
func WithRange(start, stop float64) BlackbodyOption {
	return func(b *Blackbody) {
		if start > 0 && stop > start {
			b.Start, b.Stop = start, stop
		}
	}
}

// WithStep sets the wavelength sampling step in nm.
func WithStep(step float64) BlackbodyOption {
	return func(b *Blackbody) {
		if step > 0 {
			b.Step = step
		}
	}
}

// WithDilution sets the geometric dilution factor.
func WithDilution(d float64) BlackbodyOption {
	return func(b *Blackbody) {
		if d > 0 {
			b.Dilution = d
		}
	}
}

// Validate checks that the Blackbody parameters are valid.
func (b *Blackbody) Validate() error {
	if !(b.Temperature > 0) {
		return fmt.Errorf("%w: blackbody temperature must be positive", ErrDataSource)
	}
	if !(b.Dilution > 0) {
		return fmt.Errorf("%w: blackbody dilution must be positive", ErrDataSource)
	}
	if !(b.Start > 0) || !(b.Stop > b.Start) {
		return fmt.Errorf("%w: blackbody range [%g, %g] nm is empty", ErrDataSource, b.Start, b.Stop)
	}
	if !(b.Step > 0) {
		return fmt.Errorf("%w: blackbody step must be positive", ErrDataSource)
	}
	return nil
}

// FluxAt returns the photon flux density at wavelength nm in
// photons·m⁻²·s⁻¹·nm⁻¹.
func (b *Blackbody) FluxAt(nm float64) float64 {
	lambda := nm * 1e-9
	x := phys.Planck * phys.SpeedOfLight / (lambda * phys.Boltzmann * b.Temperature)
	radiance := 2 * phys.SpeedOfLight / math.Pow(lambda, 4) / math.Expm1(x)
	// per m of wavelength to per nm
	return math.Pi * radiance * b.Dilution * 1e-9
}

// Spectrum samples the blackbody on its wavelength grid.
func (b *Blackbody) Spectrum() (Spectrum, error) {
	if err := b.Validate(); err != nil {
		return Spectrum{}, err
	}

	wl := grid.Inclusive(b.Start, b.Stop, b.Step)
	flux := make([]float64, len(wl))
	for i, nm := range wl {
		flux[i] = b.FluxAt(nm)
	}

	spec := Spectrum{Wavelength: wl, Flux: flux}
	if err := spec.Validate(); err != nil {
		return Spectrum{}, err
	}
	return spec, nil
}
