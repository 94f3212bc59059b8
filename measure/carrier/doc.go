// Package carrier estimates the steady-state concentration of photoexcited
// carriers in an absorbing slab under a reference photon flux.
//
// For a slab of thickness L with absorption coefficient α(x) illuminated by
// a photon flux density Φ(x), where x is either wavelength or photon energy,
// the photogeneration rate at depth w is
//
//	G(w) = ∫ α(x)·Φ(x)·exp(−α(x)·w) dx
//
// The estimator integrates G over 0 ≤ w < L with the rectangle rule on a
// uniform depth grid and a uniform spectral grid, then multiplies by the
// carrier lifetime τ:
//
//	n = τ · Σ_w Σ_x α·Φ·exp(−α·w)·Δx·Δw
//
// With [Volumetric] normalization (the default) n is divided by L and
// reported in cm⁻³. [Areal] normalization reports the depth-integrated
// total in cm⁻².
//
// Absorption and flux tables are interpolated piecewise-linearly and never
// extrapolated. Without explicit limits the spectral window is the overlap
// of both tables.
//
// # Usage
//
//	src := solar.FromFile("ASTMG173.csv", solar.WithColumns(0, solar.ColumnG173Global))
//	est := carrier.New(src, carrier.WithDepthStep(1e-7))
//	res, err := est.Estimate(ctx, spec, 2e-5, 1e-5)
//	fmt.Printf("n = %.3g cm^-3\n", res.Concentration)
package carrier
