package testutil

import "testing"

func TestFlatFlux(t *testing.T) {
	spec, err := FlatFlux(2, 300, 400, 10).Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if spec.Len() != 11 {
		t.Fatalf("Len = %d, want 11", spec.Len())
	}
	if got := spec.PhotonCount(); got != 200 {
		t.Fatalf("PhotonCount = %v, want 200", got)
	}
}

func TestRampFluxPanicsOnBadRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for reversed range")
		}
	}()
	RampFlux(400, 300, 1, 1)
}
