package phys

const (
	Planck           = 6.62607015e-34  // Planck constant (J·s)
	PlanckEV         = 4.135667696e-15 // Planck constant (eV·s)
	SpeedOfLight     = 299792458.0     // speed of light in vacuum (m/s)
	Boltzmann        = 1.380649e-23    // Boltzmann constant (J/K)
	SunRadius        = 6.957e8         // nominal solar radius (m)
	AstronomicalUnit = 1.495978707e11  // mean Earth-Sun distance (m)
	SunTemperature   = 5772.0          // effective solar temperature (K)
	SolarConstant    = 1361.0          // total solar irradiance at 1 AU (W/m²)

	// HCEVNm is h·c expressed in eV·nm.
	HCEVNm = PlanckEV * SpeedOfLight * 1e9

	// SquareMetreToSquareCm scales a per-m² density to per-cm².
	SquareMetreToSquareCm = 1e-4
)

// EnergyToWavelength returns the photon wavelength in nm for an energy in eV.
func EnergyToWavelength(eV float64) float64 {
	return HCEVNm / eV
}

// WavelengthToEnergy returns the photon energy in eV for a wavelength in nm.
func WavelengthToEnergy(nm float64) float64 {
	return HCEVNm / nm
}

// PhotonEnergyJoule returns the energy of a single photon of wavelength nm in J.
func PhotonEnergyJoule(nm float64) float64 {
	return Planck * SpeedOfLight / (nm * 1e-9)
}

// IrradianceToPhotonFlux converts spectral irradiance (W·m⁻²·nm⁻¹) at
// wavelength nm into photon flux (photons·s⁻¹·m⁻²·nm⁻¹).
func IrradianceToPhotonFlux(irradiance, nm float64) float64 {
	return irradiance * nm * 1e-9 / (Planck * SpeedOfLight)
}

// PhotonFluxToIrradiance is the inverse of [IrradianceToPhotonFlux].
func PhotonFluxToIrradiance(flux, nm float64) float64 {
	return flux * Planck * SpeedOfLight / (nm * 1e-9)
}

// PerSquareMetreToPerSquareCm rescales an areal density from m⁻² to cm⁻².
func PerSquareMetreToPerSquareCm(x float64) float64 {
	return x * SquareMetreToSquareCm
}

// FluxPerWavelengthToPerEnergy converts a photon flux density per nm at
// wavelength nm into a density per eV at the matching photon energy.
func FluxPerWavelengthToPerEnergy(flux, nm float64) float64 {
	return flux * nm * nm / HCEVNm
}
