// Package solar provides incident photon-flux spectra.
//
// A [Source] yields a [Spectrum] of photon flux density in
// photons·m⁻²·s⁻¹·nm⁻¹ over ascending wavelengths in nm. Consumers receive a
// Source rather than a file path, so synthetic spectra can be injected in
// place of reference data.
//
// Available sources:
//
//   - [Table]:          an in-memory spectrum
//   - [Blackbody]:      a parametrized Planck photon spectrum at 1 AU
//   - [ReferenceTable]: a CSV table of spectral irradiance (W·m⁻²·nm⁻¹),
//     such as ASTM G173 AM1.5G, converted to photon flux on load
//
// # Usage
//
// Load the AM1.5G column of an ASTM G173 table:
//
//	src := solar.FromFile("ASTMG173.csv",
//	    solar.WithColumns(0, solar.ColumnG173Global))
//	spec, err := src.Spectrum()
package solar
