package solar

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/cwbudde/algo-pv/internal/table"
	"github.com/cwbudde/algo-pv/phys"
)

// Column layout of the ASTM G173-03 reference spectra table. Column 0 holds
// the wavelength in nm.
const (
	ColumnG173Extraterrestrial = 1
	ColumnG173Global           = 2 // AM1.5G, 37° tilt
	ColumnG173Direct           = 3 // AM1.5D, direct + circumsolar
)

// ReferenceTable is a [Source] backed by a CSV table of spectral irradiance.
//
// Rows hold a wavelength in nm and a spectral irradiance in W·m⁻²·nm⁻¹. Each
// irradiance is converted to photon flux as E·λ/(h·c). The table is parsed
// on the first call to Spectrum and cached; a parse error is cached too.
type ReferenceTable struct {
	name string
	open func() (io.ReadCloser, error)
	cfg  referenceConfig
	once sync.Once
	spec Spectrum
	err  error
}

type referenceConfig struct {
	wavelengthColumn int
	valueColumn      int
	comma            rune
}

// ReferenceOption mutates the parsing configuration of a ReferenceTable.
type ReferenceOption func(*referenceConfig)

// WithColumns selects the zero-based wavelength and irradiance columns.
func WithColumns(wavelength, irradiance int) ReferenceOption {
	return func(cfg *referenceConfig) {
		if wavelength >= 0 && irradiance >= 0 {
			cfg.wavelengthColumn = wavelength
			cfg.valueColumn = irradiance
		}
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) ReferenceOption {
	return func(cfg *referenceConfig) {
		if r != 0 {
			cfg.comma = r
		}
	}
}

func newReference(name string, open func() (io.ReadCloser, error), opts []ReferenceOption) *ReferenceTable {
	cfg := referenceConfig{wavelengthColumn: 0, valueColumn: 1, comma: ','}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &ReferenceTable{name: name, open: open, cfg: cfg}
}

// FromFile returns a ReferenceTable reading the CSV file at path.
func FromFile(path string, opts ...ReferenceOption) *ReferenceTable {
	return newReference(path, func() (io.ReadCloser, error) {
		return os.Open(path)
	}, opts)
}

// FromFS returns a ReferenceTable reading name from fsys, for example an
// embed.FS.
func FromFS(fsys fs.FS, name string, opts ...ReferenceOption) *ReferenceTable {
	return newReference(name, func() (io.ReadCloser, error) {
		return fsys.Open(name)
	}, opts)
}

// FromReader returns a ReferenceTable that parses r once.
func FromReader(r io.Reader, opts ...ReferenceOption) *ReferenceTable {
	return newReference("reader", func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}, opts)
}

// FromBytes returns a ReferenceTable over an in-memory CSV document.
func FromBytes(data []byte, opts ...ReferenceOption) *ReferenceTable {
	return newReference("bytes", func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, opts)
}

// Spectrum returns the photon-flux spectrum, parsing the table on first use.
func (t *ReferenceTable) Spectrum() (Spectrum, error) {
	t.once.Do(func() {
		t.spec, t.err = t.load()
	})
	return t.spec, t.err
}

func (t *ReferenceTable) load() (Spectrum, error) {
	rc, err := t.open()
	if err != nil {
		return Spectrum{}, fmt.Errorf("%w: open %s: %w", ErrDataSource, t.name, err)
	}
	defer rc.Close()

	cols, err := table.Read(rc, table.Options{
		Comma:   t.cfg.comma,
		Columns: []int{t.cfg.wavelengthColumn, t.cfg.valueColumn},
	})
	if err != nil {
		return Spectrum{}, fmt.Errorf("%w: %s: %w", ErrDataSource, t.name, err)
	}

	wl, irr := cols[0], cols[1]
	flux := make([]float64, len(wl))
	for i := range wl {
		if irr[i] < 0 {
			return Spectrum{}, fmt.Errorf("%w: %s: negative irradiance %g at %g nm", ErrDataSource, t.name, irr[i], wl[i])
		}
		flux[i] = phys.IrradianceToPhotonFlux(irr[i], wl[i])
	}

	spec := Spectrum{Wavelength: wl, Flux: flux}
	if err := spec.Validate(); err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", t.name, err)
	}
	return spec, nil
}
