// Package phys holds the physical constants and unit conversions shared by
// the spectral and measurement packages.
//
// Constants follow the CODATA 2018 exact definitions. Spectral quantities use
// nanometres for wavelength and electronvolts for photon energy:
//
//	λ[nm] = HCEVNm / E[eV]
//
// Photon flux densities are photons·s⁻¹ per unit area per unit spectral
// interval. Converting between per-wavelength and per-energy densities keeps
// the number of photons in a band constant:
//
//	Φ_E = Φ_λ · |dλ/dE| = Φ_λ · λ² / (h·c)
package phys
