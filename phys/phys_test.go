package phys

import (
	"math"
	"testing"
)

func TestHCEVNm(t *testing.T) {
	if diff := math.Abs(HCEVNm - 1239.84198); diff > 1e-4 {
		t.Fatalf("HCEVNm = %v, want ~1239.84198", HCEVNm)
	}
}

func TestEnergyWavelengthRoundTrip(t *testing.T) {
	for _, eV := range []float64{0.5, 1.0, 1.12, 2.5, 4.43} {
		got := WavelengthToEnergy(EnergyToWavelength(eV))
		if math.Abs(got-eV) > 1e-12 {
			t.Fatalf("round trip %v eV: got %v", eV, got)
		}
	}

	if nm := EnergyToWavelength(1); math.Abs(nm-HCEVNm) > 1e-12 {
		t.Fatalf("1 eV = %v nm, want %v", nm, HCEVNm)
	}
}

func TestIrradianceToPhotonFlux(t *testing.T) {
	// 1 W at 500 nm carries 1 / E_photon photons per second.
	const nm = 500.0
	want := 1 / PhotonEnergyJoule(nm)
	got := IrradianceToPhotonFlux(1, nm)
	if math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}

	if back := PhotonFluxToIrradiance(got, nm); math.Abs(back-1) > 1e-12 {
		t.Fatalf("inverse got %v, want 1", back)
	}
}

func TestFluxPerWavelengthToPerEnergyConservesBand(t *testing.T) {
	// A narrow band holds the same photon count in either representation.
	const (
		flux = 3e17
		lo   = 600.0
		hi   = 601.0
	)
	inLambda := flux * (hi - lo)

	mid := 0.5 * (lo + hi)
	dE := WavelengthToEnergy(lo) - WavelengthToEnergy(hi)
	inEnergy := FluxPerWavelengthToPerEnergy(flux, mid) * dE

	if rel := math.Abs(inEnergy-inLambda) / inLambda; rel > 1e-5 {
		t.Fatalf("band photon count mismatch: %v vs %v (rel %v)", inEnergy, inLambda, rel)
	}
}

func TestPerSquareMetreToPerSquareCm(t *testing.T) {
	if got := PerSquareMetreToPerSquareCm(1e4); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}
