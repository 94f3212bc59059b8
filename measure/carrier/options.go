package carrier

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// Variable selects the spectral integration variable.
type Variable int

const (
	// Wavelength integrates over λ in nm.
	Wavelength Variable = iota
	// Energy integrates over photon energy in eV.
	Energy
)

// String implements fmt.Stringer.
func (v Variable) String() string {
	switch v {
	case Wavelength:
		return "wavelength"
	case Energy:
		return "energy"
	default:
		return fmt.Sprintf("Variable(%d)", int(v))
	}
}

// ParseVariable maps "wavelength" or "energy" to a Variable.
func ParseVariable(s string) (Variable, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wavelength", "lambda", "nm":
		return Wavelength, nil
	case "energy", "ev":
		return Energy, nil
	default:
		return 0, fmt.Errorf("%w: unknown spectral variable %q", ErrInvalidArgument, s)
	}
}

// Normalization selects how the depth-integrated generation is reported.
type Normalization int

const (
	// Volumetric divides by thickness and reports cm⁻³.
	Volumetric Normalization = iota
	// Areal reports the depth-integrated total in cm⁻².
	Areal
)

// String implements fmt.Stringer.
func (n Normalization) String() string {
	switch n {
	case Volumetric:
		return "volumetric"
	case Areal:
		return "areal"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization maps "volumetric" or "areal" to a Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volumetric", "volume", "cm-3":
		return Volumetric, nil
	case "areal", "area", "cm-2":
		return Areal, nil
	default:
		return 0, fmt.Errorf("%w: unknown normalization %q", ErrInvalidArgument, s)
	}
}

// Default integration steps.
const (
	DefaultWavelengthStep = 5.0   // nm
	DefaultEnergyStep     = 0.005 // eV
	DefaultDepthStep      = 1e-7  // cm
)

// Config holds estimator settings.
//
// Without [WithDomainLimits] the estimator integrates over the overlap of the
// absorption and flux tables. Without [WithSpectralStep] the step follows
// Variable.
type Config struct {
	Variable      Variable
	DomainMin     float64
	DomainMax     float64
	SpectralStep  float64
	DepthStep     float64
	Normalization Normalization
	Workers       int
	Logger        zerolog.Logger

	hasLimits bool
	hasStep   bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns wavelength integration in 5 nm steps over the
// spectral overlap, 1 nm depth steps, volumetric output and one worker.
func DefaultConfig() Config {
	return Config{
		Variable:      Wavelength,
		DepthStep:     DefaultDepthStep,
		Normalization: Volumetric,
		Workers:       1,
		Logger:        zerolog.Nop(),
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithVariable sets the spectral integration variable.
func WithVariable(v Variable) Option {
	return func(cfg *Config) {
		cfg.Variable = v
	}
}

// WithDomainLimits restricts integration to [lo, hi), in nm for [Wavelength]
// and eV for [Energy].
func WithDomainLimits(lo, hi float64) Option {
	return func(cfg *Config) {
		cfg.DomainMin, cfg.DomainMax = lo, hi
		cfg.hasLimits = true
	}
}

// WithSpectralStep sets the spectral grid step.
func WithSpectralStep(step float64) Option {
	return func(cfg *Config) {
		cfg.SpectralStep = step
		cfg.hasStep = true
	}
}

// WithDepthStep sets the depth grid step in cm.
func WithDepthStep(step float64) Option {
	return func(cfg *Config) {
		cfg.DepthStep = step
	}
}

// WithNormalization sets the output normalization.
func WithNormalization(n Normalization) Option {
	return func(cfg *Config) {
		cfg.Normalization = n
	}
}

// WithWorkers splits the depth grid across n goroutines.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// HasDomainLimits reports whether explicit spectral limits are set.
func (c Config) HasDomainLimits() bool {
	return c.hasLimits
}

// Step returns the effective spectral step.
func (c Config) Step() float64 {
	if c.hasStep {
		return c.SpectralStep
	}
	if c.Variable == Energy {
		return DefaultEnergyStep
	}
	return DefaultWavelengthStep
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Variable != Wavelength && c.Variable != Energy {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, c.Variable)
	}
	if c.Normalization != Volumetric && c.Normalization != Areal {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, c.Normalization)
	}
	if step := c.Step(); !positive(step) {
		return fmt.Errorf("%w: spectral step %g must be positive", ErrInvalidArgument, step)
	}
	if !positive(c.DepthStep) {
		return fmt.Errorf("%w: depth step %g must be positive", ErrInvalidArgument, c.DepthStep)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be at least 1", ErrInvalidArgument, c.Workers)
	}
	if c.HasDomainLimits() {
		if !finite(c.DomainMin) || !finite(c.DomainMax) || c.DomainMin >= c.DomainMax {
			return fmt.Errorf("%w: domain limits [%g, %g]", ErrInvalidArgument, c.DomainMin, c.DomainMax)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
