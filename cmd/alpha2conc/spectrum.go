package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-pv/internal/config"
	"github.com/cwbudde/algo-pv/spectral/solar"
)

type spectrumReport struct {
	Source      string     `json:"source"`
	Samples     int        `json:"samples"`
	Domain      [2]float64 `json:"domain"`
	Irradiance  float64    `json:"irradiance"`
	PhotonCount float64    `json:"photonCount"`
}

func newSpectrumCmd(root *rootOptions) *cobra.Command {
	var (
		path        string
		column      int
		temperature float64
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Summarize the incident photon-flux spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := root.logger()

			sc := config.Default().Spectrum
			if path != "" {
				sc.Kind = config.KindReference
				sc.Path = path
				sc.IrradianceColumn = column
			}
			sc.Temperature = temperature
			cfg := &config.Config{Spectrum: sc}

			spec, err := cfg.Source().Spectrum()
			if err != nil {
				return err
			}
			log.Debug().Str("kind", sc.Kind).Int("samples", spec.Len()).Msg("spectrum loaded")

			lo, hi := spec.Domain()
			report := spectrumReport{
				Source:      describe(sc),
				Samples:     spec.Len(),
				Domain:      [2]float64{lo, hi},
				Irradiance:  spec.Irradiance(),
				PhotonCount: spec.PhotonCount(),
			}

			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal spectrum: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Printf("source:       %s\n", report.Source)
			cmd.Printf("samples:      %d (%.1f-%.1f nm)\n", report.Samples, lo, hi)
			cmd.Printf("irradiance:   %.1f W m^-2\n", report.Irradiance)
			cmd.Printf("photon flux:  %.4e m^-2 s^-1\n", report.PhotonCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "spectrum", "s", "", "reference irradiance CSV; blackbody sun if empty")
	cmd.Flags().IntVar(&column, "column", solar.ColumnG173Global, "irradiance column of the reference CSV")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "blackbody temperature in K")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output summary as JSON")
	return cmd
}

func describe(sc config.SpectrumConfig) string {
	if sc.Kind == config.KindReference {
		return fmt.Sprintf("reference table %s (column %d)", sc.Path, sc.IrradianceColumn)
	}
	t := sc.Temperature
	if t <= 0 {
		t = solar.NewBlackbody().Temperature
	}
	return fmt.Sprintf("blackbody %.0f K", t)
}
