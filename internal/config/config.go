// Package config loads run settings for the alpha2conc command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pv/measure/carrier"
	"github.com/cwbudde/algo-pv/spectral/absorption"
	"github.com/cwbudde/algo-pv/spectral/solar"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ALPHA2CONC_"

// Spectrum kinds.
const (
	KindBlackbody = "blackbody"
	KindReference = "reference"
)

// Config is a complete estimator run.
type Config struct {
	Absorption  AbsorptionConfig  `yaml:"absorption"`
	Spectrum    SpectrumConfig    `yaml:"spectrum"`
	Material    MaterialConfig    `yaml:"material"`
	Integration IntegrationConfig `yaml:"integration"`
}

// AbsorptionConfig names a CSV file or holds the table inline.
type AbsorptionConfig struct {
	Path   string    `yaml:"path"`
	Energy []float64 `yaml:"energy"`
	Alpha  []float64 `yaml:"alpha"`
}

// SpectrumConfig selects the incident photon flux.
type SpectrumConfig struct {
	Kind             string  `yaml:"kind"`
	Path             string  `yaml:"path"`
	WavelengthColumn int     `yaml:"wavelengthColumn"`
	IrradianceColumn int     `yaml:"irradianceColumn"`
	Temperature      float64 `yaml:"temperature"`
	Start            float64 `yaml:"start"`
	Stop             float64 `yaml:"stop"`
	Step             float64 `yaml:"step"`
}

// MaterialConfig describes the slab.
type MaterialConfig struct {
	Thickness float64 `yaml:"thickness"` // cm
	Lifetime  float64 `yaml:"lifetime"`  // s
}

// IntegrationConfig maps onto carrier options. A nil SpectralStep keeps the
// default for the chosen variable.
type IntegrationConfig struct {
	Variable      string    `yaml:"variable"`
	Normalization string    `yaml:"normalization"`
	Domain        []float64 `yaml:"domain"`
	SpectralStep  *float64  `yaml:"spectralStep"`
	DepthStep     float64   `yaml:"depthStep"`
	Workers       int       `yaml:"workers"`
}

// Default returns the settings of the historical script: a 2e-5 cm slab,
// 10 µs lifetime, solar blackbody, wavelength integration.
func Default() *Config {
	return &Config{
		Spectrum: SpectrumConfig{
			Kind:             KindBlackbody,
			WavelengthColumn: 0,
			IrradianceColumn: solar.ColumnG173Global,
		},
		Material: MaterialConfig{
			Thickness: 2e-5,
			Lifetime:  1e-5,
		},
		Integration: IntegrationConfig{
			Variable:      carrier.Wavelength.String(),
			Normalization: carrier.Volumetric.String(),
			DepthStep:     carrier.DefaultDepthStep,
			Workers:       1,
		},
	}
}

// Override mutates a loaded Config before validation, for command-line flags.
type Override func(*Config)

// Load reads path (if non-empty) over the defaults, applies environment
// overrides then overrides, and validates the result.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if o != nil {
			o(cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	var errs []error
	parseFloat := func(key string, dst *float64) {
		v := os.Getenv(EnvPrefix + key)
		if v == "" {
			return
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("env %s%s: %w", EnvPrefix, key, err))
			return
		}
		*dst = parsed
	}

	if v := os.Getenv(EnvPrefix + "ABSORPTION"); v != "" {
		cfg.Absorption.Path = v
	}
	if v := os.Getenv(EnvPrefix + "SPECTRUM"); v != "" {
		cfg.Spectrum.Kind = KindReference
		cfg.Spectrum.Path = v
	}
	parseFloat("THICKNESS", &cfg.Material.Thickness)
	parseFloat("LIFETIME", &cfg.Material.Lifetime)
	if v := os.Getenv(EnvPrefix + "VARIABLE"); v != "" {
		cfg.Integration.Variable = v
	}
	if v := os.Getenv(EnvPrefix + "NORMALIZATION"); v != "" {
		cfg.Integration.Normalization = v
	}
	if v := os.Getenv(EnvPrefix + "WORKERS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("env %sWORKERS: %w", EnvPrefix, err))
		} else {
			cfg.Integration.Workers = parsed
		}
	}
	return errors.Join(errs...)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error

	hasInline := len(c.Absorption.Energy) > 0 || len(c.Absorption.Alpha) > 0
	switch {
	case c.Absorption.Path == "" && !hasInline:
		errs = append(errs, errors.New("absorption: path or inline table is required"))
	case c.Absorption.Path != "" && hasInline:
		errs = append(errs, errors.New("absorption: path and inline table are exclusive"))
	}

	switch strings.ToLower(c.Spectrum.Kind) {
	case KindBlackbody:
	case KindReference:
		if c.Spectrum.Path == "" {
			errs = append(errs, errors.New("spectrum: reference table needs a path"))
		}
		if c.Spectrum.WavelengthColumn < 0 || c.Spectrum.IrradianceColumn < 0 {
			errs = append(errs, errors.New("spectrum: columns must be non-negative"))
		}
	default:
		errs = append(errs, fmt.Errorf("spectrum: unknown kind %q", c.Spectrum.Kind))
	}

	if c.Material.Thickness <= 0 {
		errs = append(errs, errors.New("material: thickness must be positive"))
	}
	if c.Material.Lifetime <= 0 {
		errs = append(errs, errors.New("material: lifetime must be positive"))
	}

	if _, err := c.CarrierOptions(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CarrierOptions translates the integration section into estimator options.
func (c *Config) CarrierOptions() ([]carrier.Option, error) {
	in := c.Integration

	v, err := carrier.ParseVariable(in.Variable)
	if err != nil {
		return nil, fmt.Errorf("integration: %w", err)
	}
	n, err := carrier.ParseNormalization(in.Normalization)
	if err != nil {
		return nil, fmt.Errorf("integration: %w", err)
	}

	opts := []carrier.Option{
		carrier.WithVariable(v),
		carrier.WithNormalization(n),
		carrier.WithDepthStep(in.DepthStep),
		carrier.WithWorkers(in.Workers),
	}
	if in.SpectralStep != nil {
		opts = append(opts, carrier.WithSpectralStep(*in.SpectralStep))
	}
	switch len(in.Domain) {
	case 0:
	case 2:
		opts = append(opts, carrier.WithDomainLimits(in.Domain[0], in.Domain[1]))
	default:
		return nil, fmt.Errorf("integration: domain needs two values, got %d", len(in.Domain))
	}

	if err := carrier.ApplyOptions(opts...).Validate(); err != nil {
		return nil, fmt.Errorf("integration: %w", err)
	}
	return opts, nil
}

// Source builds the configured flux source.
func (c *Config) Source() solar.Source {
	s := c.Spectrum
	if strings.EqualFold(s.Kind, KindReference) {
		return solar.FromFile(s.Path, solar.WithColumns(s.WavelengthColumn, s.IrradianceColumn))
	}

	var opts []solar.BlackbodyOption
	if s.Temperature > 0 {
		opts = append(opts, solar.WithTemperature(s.Temperature))
	}
	if s.Start > 0 || s.Stop > 0 {
		opts = append(opts, solar.WithRange(s.Start, s.Stop))
	}
	if s.Step > 0 {
		opts = append(opts, solar.WithStep(s.Step))
	}
	return solar.NewBlackbody(opts...)
}

// LoadAbsorption returns the configured absorption spectrum.
func (c *Config) LoadAbsorption() (absorption.Spectrum, error) {
	if c.Absorption.Path != "" {
		return absorption.Load(c.Absorption.Path)
	}
	return absorption.New(c.Absorption.Energy, c.Absorption.Alpha)
}
