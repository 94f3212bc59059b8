package absorption

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-pv/internal/table"
	"github.com/cwbudde/algo-pv/phys"
)

// Errors returned by this package.
var (
	// ErrInvalid reports an absorption spectrum that fails validation.
	ErrInvalid = errors.New("absorption: invalid spectrum")
	// ErrOpen reports a table file that cannot be opened.
	ErrOpen = errors.New("absorption: open table")
)

// Spectrum is a tabulated absorption coefficient α(E).
type Spectrum struct {
	Energy []float64 // photon energy in eV, strictly monotonic
	Alpha  []float64 // absorption coefficient in cm⁻¹
}

// New validates and returns a spectrum over copies of energy and alpha.
func New(energy, alpha []float64) (Spectrum, error) {
	s := Spectrum{
		Energy: append([]float64(nil), energy...),
		Alpha:  append([]float64(nil), alpha...),
	}
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}
	return s, nil
}

// Validate checks shape, monotonicity and value ranges.
func (s Spectrum) Validate() error {
	if len(s.Energy) == 0 || len(s.Alpha) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalid)
	}
	if len(s.Energy) != len(s.Alpha) {
		return fmt.Errorf("%w: %d energies, %d coefficients", ErrInvalid, len(s.Energy), len(s.Alpha))
	}
	if len(s.Energy) < 2 {
		return fmt.Errorf("%w: need at least two samples", ErrInvalid)
	}

	for i, e := range s.Energy {
		if !(e > 0) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: energy[%d]=%g must be positive and finite", ErrInvalid, i, e)
		}
		a := s.Alpha[i]
		if !(a >= 0) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: alpha[%d]=%g must be non-negative and finite", ErrInvalid, i, a)
		}
	}

	increasing := s.Energy[1] > s.Energy[0]
	for i := 1; i < len(s.Energy); i++ {
		d := s.Energy[i] - s.Energy[i-1]
		if d == 0 || (d > 0) != increasing {
			return fmt.Errorf("%w: energy not strictly monotonic at index %d", ErrInvalid, i)
		}
	}

	return nil
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Energy) }

// EnergyDomain returns the (min, max) sampled energy in eV.
func (s Spectrum) EnergyDomain() (float64, float64) {
	a, b := s.Energy[0], s.Energy[len(s.Energy)-1]
	if a > b {
		a, b = b, a
	}
	return a, b
}

// WavelengthDomain returns the (min, max) sampled wavelength in nm.
func (s Spectrum) WavelengthDomain() (float64, float64) {
	lo, hi := s.EnergyDomain()
	return phys.EnergyToWavelength(hi), phys.EnergyToWavelength(lo)
}

// ByEnergy returns energies and coefficients in ascending energy order.
func (s Spectrum) ByEnergy() (energy, alpha []float64) {
	n := len(s.Energy)
	energy = make([]float64, n)
	alpha = make([]float64, n)

	reverse := s.Energy[n-1] < s.Energy[0]
	for i := range energy {
		j := i
		if reverse {
			j = n - 1 - i
		}
		energy[i] = s.Energy[j]
		alpha[i] = s.Alpha[j]
	}
	return energy, alpha
}

// ByWavelength returns wavelengths (nm) and coefficients in ascending
// wavelength order.
func (s Spectrum) ByWavelength() (lambda, alpha []float64) {
	energy, a := s.ByEnergy()
	n := len(energy)
	lambda = make([]float64, n)
	alpha = make([]float64, n)
	for i := range energy {
		lambda[n-1-i] = phys.EnergyToWavelength(energy[i])
		alpha[n-1-i] = a[i]
	}
	return lambda, alpha
}

// ReadCSV parses a two-column (energy eV, α cm⁻¹) table.
func ReadCSV(r io.Reader) (Spectrum, error) {
	cols, err := table.Read(r, table.Options{Columns: []int{0, 1}})
	if err != nil {
		return Spectrum{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return New(cols[0], cols[1])
}

// Load reads a spectrum from the CSV file at path.
func Load(path string) (Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return Spectrum{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	s, err := ReadCSV(f)
	if err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
