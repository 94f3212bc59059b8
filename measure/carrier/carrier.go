package carrier

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-pv/internal/grid"
	"github.com/cwbudde/algo-pv/phys"
	"github.com/cwbudde/algo-pv/spectral/absorption"
	"github.com/cwbudde/algo-pv/spectral/interp"
	"github.com/cwbudde/algo-pv/spectral/solar"
)

// Errors returned by the estimator.
var (
	ErrInvalidArgument = errors.New("carrier: invalid argument")
	ErrDomain          = errors.New("carrier: spectral domain")
	ErrDataSource      = solar.ErrDataSource
)

// cancelCheckInterval is the number of depth samples between context checks.
const cancelCheckInterval = 32

// MaxSamples bounds the spectral and the depth grid separately. Steps that
// would produce more samples fail with [ErrInvalidArgument].
const MaxSamples = 1 << 24

// Result holds an estimate and the grid it was computed on.
type Result struct {
	// Concentration is n = τ·G, in cm⁻³ for [Volumetric] and cm⁻² for [Areal].
	Concentration float64
	// Generation is the depth-integrated photogeneration rate in cm⁻²·s⁻¹.
	Generation float64
	// Domain is the spectral window [min, max) in nm or eV.
	Domain          [2]float64
	SpectralSamples int
	DepthSamples    int
	Variable        Variable
	Normalization   Normalization
}

// Estimator computes carrier concentrations against one flux source.
type Estimator struct {
	src solar.Source
	cfg Config
}

// New returns an estimator reading incident flux from src.
func New(src solar.Source, opts ...Option) *Estimator {
	return &Estimator{src: src, cfg: ApplyOptions(opts...)}
}

// Config returns the estimator settings.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Estimate is a one-shot estimate from raw energy (eV) and absorption
// (cm⁻¹) sequences. It returns [Result.Concentration].
func Estimate(ctx context.Context, src solar.Source, energies, alpha []float64, thickness, lifetime float64, opts ...Option) (float64, error) {
	spec, err := absorption.New(energies, alpha)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	res, err := New(src, opts...).Estimate(ctx, spec, thickness, lifetime)
	if err != nil {
		return 0, err
	}
	return res.Concentration, nil
}

// Estimate computes the steady-state carrier concentration of a slab with
// absorption spectrum spec, thickness in cm and carrier lifetime in s.
func (e *Estimator) Estimate(ctx context.Context, spec absorption.Spectrum, thickness, lifetime float64) (Result, error) {
	cfg := e.cfg
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if e.src == nil {
		return Result{}, fmt.Errorf("%w: nil flux source", ErrInvalidArgument)
	}
	if !positive(thickness) {
		return Result{}, fmt.Errorf("%w: thickness %g must be positive", ErrInvalidArgument, thickness)
	}
	if !positive(lifetime) {
		return Result{}, fmt.Errorf("%w: carrier lifetime %g must be positive", ErrInvalidArgument, lifetime)
	}
	if err := spec.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if grid.Exceeds(0, thickness, cfg.DepthStep, MaxSamples) {
		return Result{}, fmt.Errorf("%w: depth step %g over %g cm exceeds %d samples",
			ErrInvalidArgument, cfg.DepthStep, thickness, MaxSamples)
	}

	flux, err := e.src.Spectrum()
	if err != nil {
		if errors.Is(err, solar.ErrDataSource) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if err := flux.Validate(); err != nil {
		return Result{}, err
	}

	alphaFn, fluxFn, err := interpolants(spec, flux, cfg.Variable)
	if err != nil {
		return Result{}, err
	}

	lo, hi, err := resolveDomain(cfg, alphaFn, fluxFn)
	if err != nil {
		return Result{}, err
	}

	step := cfg.Step()
	if grid.Exceeds(lo, hi, step, MaxSamples) {
		return Result{}, fmt.Errorf("%w: spectral step %g over [%g, %g] exceeds %d samples",
			ErrInvalidArgument, step, lo, hi, MaxSamples)
	}
	xs := grid.Arange(lo, hi, step)
	depths := grid.Arange(0, thickness, cfg.DepthStep)

	cfg.Logger.Debug().
		Stringer("variable", cfg.Variable).
		Float64("min", lo).
		Float64("max", hi).
		Int("spectral_samples", len(xs)).
		Int("depth_samples", len(depths)).
		Int("workers", cfg.Workers).
		Msg("carrier: integration grid")

	alpha := make([]float64, len(xs))
	if err := alphaFn.Eval(alpha, xs); err != nil {
		return Result{}, fmt.Errorf("%w: absorption: %w", ErrDomain, err)
	}
	absorbed := make([]float64, len(xs))
	if err := fluxFn.Eval(absorbed, xs); err != nil {
		return Result{}, fmt.Errorf("%w: flux: %w", ErrDomain, err)
	}
	vecmath.MulBlockInPlace(absorbed, alpha)

	total, err := integrate(ctx, alpha, absorbed, depths, step, cfg.Workers)
	if err != nil {
		return Result{}, err
	}
	generation := total * cfg.DepthStep

	conc := generation * lifetime
	if cfg.Normalization == Volumetric {
		conc /= thickness
	}

	cfg.Logger.Debug().
		Float64("generation", generation).
		Float64("concentration", conc).
		Stringer("normalization", cfg.Normalization).
		Msg("carrier: estimate")

	return Result{
		Concentration:   conc,
		Generation:      generation,
		Domain:          [2]float64{lo, hi},
		SpectralSamples: len(xs),
		DepthSamples:    len(depths),
		Variable:        cfg.Variable,
		Normalization:   cfg.Normalization,
	}, nil
}

// interpolants builds α(x) and Φ(x) on the requested variable. Flux is
// rescaled from m⁻² to cm⁻².
func interpolants(spec absorption.Spectrum, flux solar.Spectrum, v Variable) (*interp.Linear, *interp.Linear, error) {
	var ax, ay, fx, fy []float64

	switch v {
	case Energy:
		ax, ay = spec.ByEnergy()
		n := flux.Len()
		fx = make([]float64, n)
		fy = make([]float64, n)
		for i, nm := range flux.Wavelength {
			perCm := phys.PerSquareMetreToPerSquareCm(flux.Flux[i])
			fx[n-1-i] = phys.WavelengthToEnergy(nm)
			fy[n-1-i] = phys.FluxPerWavelengthToPerEnergy(perCm, nm)
		}
	default:
		ax, ay = spec.ByWavelength()
		fx = flux.Wavelength
		fy = make([]float64, flux.Len())
		for i, f := range flux.Flux {
			fy[i] = phys.PerSquareMetreToPerSquareCm(f)
		}
	}

	alphaFn, err := interp.NewLinear(ax, ay)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: absorption table: %w", ErrInvalidArgument, err)
	}
	fluxFn, err := interp.NewLinear(fx, fy)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: flux table: %w", ErrDataSource, err)
	}
	return alphaFn, fluxFn, nil
}

// resolveDomain returns explicit limits if set, checked against both tables,
// or the overlap of the two tables.
func resolveDomain(cfg Config, alphaFn, fluxFn *interp.Linear) (float64, float64, error) {
	if cfg.HasDomainLimits() {
		lo, hi := cfg.DomainMin, cfg.DomainMax
		for _, l := range []struct {
			name string
			fn   *interp.Linear
		}{{"absorption", alphaFn}, {"flux", fluxFn}} {
			if !l.fn.Contains(lo) || !l.fn.Contains(hi) {
				return 0, 0, fmt.Errorf("%w: limits [%g, %g] outside %s table [%g, %g]: %w",
					ErrDomain, lo, hi, l.name, l.fn.Min(), l.fn.Max(), interp.ErrOutOfRange)
			}
		}
		return lo, hi, nil
	}

	lo := math.Max(alphaFn.Min(), fluxFn.Min())
	hi := math.Min(alphaFn.Max(), fluxFn.Max())
	if !(hi > lo) {
		return 0, 0, fmt.Errorf("%w: absorption [%g, %g] and flux [%g, %g] do not overlap",
			ErrDomain, alphaFn.Min(), alphaFn.Max(), fluxFn.Min(), fluxFn.Max())
	}
	return lo, hi, nil
}

// integrate returns Σ_w Σ_x absorbed·exp(−α·w)·dx. The depth grid is split
// into contiguous chunks when workers > 1.
func integrate(ctx context.Context, alpha, absorbed, depths []float64, dx float64, workers int) (float64, error) {
	workers = min(workers, len(depths))
	if workers <= 1 {
		return accumulate(ctx, alpha, absorbed, depths, dx)
	}

	partial := make([]float64, workers)
	chunk := (len(depths) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range workers {
		lo := k * chunk
		hi := min(lo+chunk, len(depths))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			s, err := accumulate(ctx, alpha, absorbed, depths[lo:hi], dx)
			partial[k] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range partial {
		total += s
	}
	return total, nil
}

func accumulate(ctx context.Context, alpha, absorbed, depths []float64, dx float64) (float64, error) {
	decay := make([]float64, len(alpha))
	total := 0.0
	for j, w := range depths {
		if j%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		for i, a := range alpha {
			decay[i] = math.Exp(-a * w)
		}
		vecmath.MulBlockInPlace(decay, absorbed)

		layer := 0.0
		for _, v := range decay {
			layer += v
		}
		total += layer * dx
	}
	return total, nil
}
