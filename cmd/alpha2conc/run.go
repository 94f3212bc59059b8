package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-pv/internal/config"
	"github.com/cwbudde/algo-pv/measure/carrier"
)

type runFlags struct {
	configPath    string
	absorption    string
	spectrum      string
	column        int
	temperature   float64
	thickness     float64
	lifetime      float64
	variable      string
	normalization string
	domain        []float64
	spectralStep  float64
	depthStep     float64
	workers       int
	json          bool
}

// runReport is the JSON form of a carrier.Result.
type runReport struct {
	Concentration   float64    `json:"concentration"`
	Unit            string     `json:"unit"`
	Generation      float64    `json:"generation"`
	Thickness       float64    `json:"thickness"`
	Lifetime        float64    `json:"lifetime"`
	Variable        string     `json:"variable"`
	Normalization   string     `json:"normalization"`
	Domain          [2]float64 `json:"domain"`
	SpectralSamples int        `json:"spectralSamples"`
	DepthSamples    int        `json:"depthSamples"`
}

func newRunCmd(root *rootOptions) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Estimate the carrier concentration of a slab",
		Long: `Integrates the absorbed photon flux over slab depth and spectrum and
multiplies by the carrier lifetime. Settings come from --config, then
ALPHA2CONC_* environment variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, root, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration")
	fl.StringVarP(&f.absorption, "absorption", "a", "", "absorption CSV (energy eV, alpha cm^-1)")
	fl.StringVarP(&f.spectrum, "spectrum", "s", "", "reference irradiance CSV; blackbody sun if empty")
	fl.IntVar(&f.column, "column", 2, "irradiance column of the reference CSV (ASTM G173: 1 AM0, 2 AM1.5G, 3 AM1.5D)")
	fl.Float64Var(&f.temperature, "temperature", 0, "blackbody temperature in K")
	fl.Float64VarP(&f.thickness, "thickness", "L", 0, "slab thickness in cm")
	fl.Float64VarP(&f.lifetime, "lifetime", "t", 0, "carrier lifetime in s")
	fl.StringVar(&f.variable, "variable", "", "integration variable: wavelength or energy")
	fl.StringVar(&f.normalization, "normalize", "", "output normalization: volumetric (cm^-3) or areal (cm^-2)")
	fl.Float64SliceVar(&f.domain, "domain", nil, "spectral window min,max in nm or eV")
	fl.Float64Var(&f.spectralStep, "spectral-step", 0, "spectral integration step")
	fl.Float64Var(&f.depthStep, "depth-step", 0, "depth integration step in cm")
	fl.IntVarP(&f.workers, "workers", "j", 0, "parallel depth workers")
	fl.BoolVar(&f.json, "json", false, "output result as JSON")

	return cmd
}

// overrides returns a config.Override applying only flags set by the user.
func (f *runFlags) overrides(cmd *cobra.Command) config.Override {
	changed := cmd.Flags().Changed
	return func(c *config.Config) {
		if changed("absorption") {
			c.Absorption = config.AbsorptionConfig{Path: f.absorption}
		}
		if changed("spectrum") {
			c.Spectrum.Kind = config.KindReference
			c.Spectrum.Path = f.spectrum
			c.Spectrum.WavelengthColumn = 0
			c.Spectrum.IrradianceColumn = f.column
		}
		if changed("temperature") {
			c.Spectrum.Kind = config.KindBlackbody
			c.Spectrum.Temperature = f.temperature
		}
		if changed("thickness") {
			c.Material.Thickness = f.thickness
		}
		if changed("lifetime") {
			c.Material.Lifetime = f.lifetime
		}
		if changed("variable") {
			c.Integration.Variable = f.variable
		}
		if changed("normalize") {
			c.Integration.Normalization = f.normalization
		}
		if changed("domain") {
			c.Integration.Domain = f.domain
		}
		if changed("spectral-step") {
			step := f.spectralStep
			c.Integration.SpectralStep = &step
		}
		if changed("depth-step") {
			c.Integration.DepthStep = f.depthStep
		}
		if changed("workers") {
			c.Integration.Workers = f.workers
		}
	}
}

func runEstimate(cmd *cobra.Command, root *rootOptions, f *runFlags) error {
	log := root.logger()

	cfg, err := config.Load(f.configPath, f.overrides(cmd))
	if err != nil {
		return err
	}

	spec, err := cfg.LoadAbsorption()
	if err != nil {
		return err
	}
	opts, err := cfg.CarrierOptions()
	if err != nil {
		return err
	}
	opts = append(opts, carrier.WithLogger(log))

	log.Debug().
		Str("spectrum", cfg.Spectrum.Kind).
		Int("absorption_samples", spec.Len()).
		Float64("thickness", cfg.Material.Thickness).
		Float64("lifetime", cfg.Material.Lifetime).
		Msg("starting estimate")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := carrier.New(cfg.Source(), opts...).Estimate(ctx, spec, cfg.Material.Thickness, cfg.Material.Lifetime)
	if err != nil {
		return fmt.Errorf("estimate failed: %w", err)
	}

	report := runReport{
		Concentration:   res.Concentration,
		Unit:            unit(res.Normalization),
		Generation:      res.Generation,
		Thickness:       cfg.Material.Thickness,
		Lifetime:        cfg.Material.Lifetime,
		Variable:        res.Variable.String(),
		Normalization:   res.Normalization.String(),
		Domain:          res.Domain,
		SpectralSamples: res.SpectralSamples,
		DepthSamples:    res.DepthSamples,
	}

	if f.json {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("carrier concentration: %.4e %s\n", report.Concentration, report.Unit)
	cmd.Printf("generation rate:       %.4e cm^-2 s^-1\n", report.Generation)
	cmd.Printf("spectral window:       %.4g-%.4g %s (%d samples)\n",
		report.Domain[0], report.Domain[1], spectralUnit(res.Variable), report.SpectralSamples)
	cmd.Printf("depth samples:         %d\n", report.DepthSamples)
	return nil
}

func unit(n carrier.Normalization) string {
	if n == carrier.Areal {
		return "cm^-2"
	}
	return "cm^-3"
}

func spectralUnit(v carrier.Variable) string {
	if v == carrier.Energy {
		return "eV"
	}
	return "nm"
}
