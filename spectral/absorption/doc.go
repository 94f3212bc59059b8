// Package absorption models a material's optical absorption spectrum.
//
// A [Spectrum] pairs photon energies (eV) with absorption coefficients α
// (cm⁻¹). Light intensity decays with depth w as I(w) = I₀·exp(−α·w).
//
// Spectra can be built in memory with [New] or read from a two-column CSV
// table of (energy eV, α cm⁻¹) with [ReadCSV] or [Load].
package absorption
