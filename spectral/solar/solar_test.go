package solar

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cwbudde/algo-pv/phys"
)

func TestNewTableValidates(t *testing.T) {
	tests := []struct {
		name string
		wl   []float64
		flux []float64
	}{
		{name: "mismatch", wl: []float64{300, 400}, flux: []float64{1}},
		{name: "single", wl: []float64{300}, flux: []float64{1}},
		{name: "decreasing", wl: []float64{400, 300}, flux: []float64{1, 1}},
		{name: "negative flux", wl: []float64{300, 400}, flux: []float64{1, -1}},
		{name: "zero wavelength", wl: []float64{0, 400}, flux: []float64{1, 1}},
		{name: "nan flux", wl: []float64{300, 400}, flux: []float64{math.NaN(), 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.wl, tt.flux)
			if !errors.Is(err, ErrDataSource) {
				t.Fatalf("err = %v, want ErrDataSource", err)
			}
		})
	}
}

func TestTableSpectrum(t *testing.T) {
	src, err := NewTable([]float64{300, 400, 500}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	spec, err := src.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if lo, hi := spec.Domain(); lo != 300 || hi != 500 {
		t.Fatalf("Domain = (%v, %v), want (300, 500)", lo, hi)
	}
	if got := spec.PhotonCount(); got != 400 {
		t.Fatalf("PhotonCount = %v, want 400", got)
	}
}

func TestBlackbodyIntegratesToSolarConstant(t *testing.T) {
	bb := NewBlackbody(WithRange(100, 20000), WithStep(1))

	spec, err := bb.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}

	got := spec.Irradiance()
	if rel := math.Abs(got-phys.SolarConstant) / phys.SolarConstant; rel > 0.01 {
		t.Fatalf("irradiance = %.1f W/m², want ~%.0f (rel %.4f)", got, phys.SolarConstant, rel)
	}
}

func TestBlackbodyPeak(t *testing.T) {
	// The photon-flux peak of a blackbody sits at λT ≈ 3670 µm·K.
	bb := NewBlackbody(WithRange(300, 1500), WithStep(1))
	spec, err := bb.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}

	peak := 0
	for i, f := range spec.Flux {
		if f > spec.Flux[peak] {
			peak = i
		}
	}

	want := 3.6697e6 / phys.SunTemperature
	if got := spec.Wavelength[peak]; math.Abs(got-want) > 2 {
		t.Fatalf("peak at %v nm, want ~%.0f nm", got, want)
	}
}

func TestBlackbodyDefaults(t *testing.T) {
	bb := NewBlackbody()
	if bb.Temperature != phys.SunTemperature || bb.Start != 280 || bb.Stop != 4000 || bb.Step != 1 {
		t.Fatalf("unexpected defaults: %+v", bb)
	}

	spec, err := bb.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if spec.Len() != 3721 {
		t.Fatalf("Len = %d, want 3721", spec.Len())
	}

	// Hotter bodies emit more photons at every wavelength.
	hot := NewBlackbody(WithTemperature(6000))
	if hot.FluxAt(500) <= bb.FluxAt(500) {
		t.Fatal("flux did not increase with temperature")
	}
}

func TestBlackbodyValidate(t *testing.T) {
	bb := &Blackbody{Temperature: 0, Dilution: 1, Start: 300, Stop: 400, Step: 1}
	if _, err := bb.Spectrum(); !errors.Is(err, ErrDataSource) {
		t.Fatalf("err = %v, want ErrDataSource", err)
	}

	bb = &Blackbody{Temperature: 5000, Dilution: 1, Start: 400, Stop: 300, Step: 1}
	if err := bb.Validate(); !errors.Is(err, ErrDataSource) {
		t.Fatalf("err = %v, want ErrDataSource", err)
	}
}

const g173Sample = `ASTM G173-03 Reference Spectra Derived from SMARTS v. 2.9.2
Wvlgth nm,Etr W*m-2*nm-1,Global tilt  W*m-2*nm-1,Direct+circumsolar W*m-2*nm-1
400,1.6,1.1,0.8
500,1.9,1.5,1.3
600,1.8,1.4,1.2
`

func TestReferenceTableConvertsIrradiance(t *testing.T) {
	src := FromReader(strings.NewReader(g173Sample), WithColumns(0, ColumnG173Global))

	spec, err := src.Spectrum()
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if spec.Len() != 3 {
		t.Fatalf("Len = %d, want 3", spec.Len())
	}

	want := phys.IrradianceToPhotonFlux(1.5, 500)
	if math.Abs(spec.Flux[1]-want)/want > 1e-12 {
		t.Fatalf("flux[1] = %v, want %v", spec.Flux[1], want)
	}

	// Cached: a second call must not re-read the exhausted reader.
	again, err := src.Spectrum()
	if err != nil || again.Len() != 3 {
		t.Fatalf("second Spectrum() = %v, %v", again.Len(), err)
	}
}

func TestReferenceTableSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am15g.csv")
	if err := os.WriteFile(path, []byte(g173Sample), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fsys := fstest.MapFS{"data/am15g.csv": &fstest.MapFile{Data: []byte(g173Sample)}}

	sources := map[string]Source{
		"file":  FromFile(path, WithColumns(0, ColumnG173Direct)),
		"fs":    FromFS(fsys, "data/am15g.csv", WithColumns(0, ColumnG173Direct)),
		"bytes": FromBytes([]byte(g173Sample), WithColumns(0, ColumnG173Direct)),
	}

	want := phys.IrradianceToPhotonFlux(0.8, 400)
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			spec, err := src.Spectrum()
			if err != nil {
				t.Fatalf("Spectrum: %v", err)
			}
			if math.Abs(spec.Flux[0]-want)/want > 1e-12 {
				t.Fatalf("flux[0] = %v, want %v", spec.Flux[0], want)
			}
		})
	}
}

func TestReferenceTableErrors(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{name: "missing file", src: FromFile(filepath.Join(t.TempDir(), "nope.csv"))},
		{name: "missing fs entry", src: FromFS(fstest.MapFS{}, "nope.csv")},
		{name: "no rows", src: FromBytes([]byte("header\n"))},
		{name: "one row", src: FromBytes([]byte("400,1\n"))},
		{name: "negative", src: FromBytes([]byte("400,1\n500,-1\n"))},
		{name: "unsorted", src: FromBytes([]byte("500,1\n400,1\n"))},
		{name: "bad row", src: FromBytes([]byte("400,1\n500,x\n"))},
		{name: "missing column", src: FromBytes([]byte("400,1\n500,1\n"), WithColumns(0, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.src.Spectrum()
			if !errors.Is(err, ErrDataSource) {
				t.Fatalf("err = %v, want ErrDataSource", err)
			}
		})
	}
}
