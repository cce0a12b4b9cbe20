package planck

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Physical constants in SI units.
const (
	// PlanckConstant is h in J*s.
	PlanckConstant = 6.62606957e-34

	// BoltzmannConstant is k in J/K.
	BoltzmannConstant = 1.3806488e-23

	// SpeedOfLight is c in m/s.
	SpeedOfLight = 2.99792458e8
)

// epsilonKelvin is the near-zero threshold below which a temperature
// cannot enter the reciprocal in the exponent.
const epsilonKelvin = 1e-6

// RadianceWavenumber computes the Planck spectral radiance for every
// combination of wavenumber (m^-1) and temperature (K).
//
//	radiance = 2*h*c^2*v^3 / (exp(h*c*v / (k*T)) - 1)
//
// The output unit is W/m^2 sr^-1 (m^-1)^-1 and the output shape follows
// from the input shapes; see the package documentation. Temperatures
// with magnitude at or below 1e-6 K produce NaN at the corresponding
// positions.
//
// The wavenumber input must be a positive scalar or vector; the
// temperature input may be a scalar, vector, or 2-D grid.
func RadianceWavenumber(wavenumber, temperature Array, opts ...Option) (Array, error) {
	cfg := applyOptions(opts)

	wn, err := validate(wavenumber, temperature, cfg)
	if err != nil {
		return Array{}, err
	}

	n := len(wn)

	// nom = 2*h*c^2 * v^3
	cube := make([]float64, n)
	vecmath.MulBlock(cube, wn, wn)
	vecmath.MulBlockInPlace(cube, wn)

	nom := make([]float64, n)
	vecmath.ScaleBlock(nom, cube, 2*PlanckConstant*SpeedOfLight*SpeedOfLight)

	// coeff = h*c*v / k; the per-temperature exponent is coeff / T.
	coeff := make([]float64, n)
	vecmath.ScaleBlock(coeff, wn, PlanckConstant*SpeedOfLight/BoltzmannConstant)

	return evaluate(nom, coeff, temperature, cfg, false), nil
}

// RadianceWavelength computes the Planck spectral radiance for every
// combination of wavelength (m) and temperature (K).
//
//	radiance = 2*h*c^2 / lambda^5 / (exp(h*c / (k*lambda*T)) - 1)
//
// The output unit is W/m^2 sr^-1 m^-1. Shape rules, masking, and
// precision behavior match RadianceWavenumber.
//
// A negative exponent argument cannot occur for positive wavelength
// and temperature; if any occur, their count is reported through the
// configured Observer and the result is still returned.
func RadianceWavelength(wavelength, temperature Array, opts ...Option) (Array, error) {
	cfg := applyOptions(opts)

	wl, err := validate(wavelength, temperature, cfg)
	if err != nil {
		return Array{}, err
	}

	n := len(wl)

	// lambda^5 via squared-square times lambda.
	sq := make([]float64, n)
	vecmath.MulBlock(sq, wl, wl)

	fifth := make([]float64, n)
	vecmath.MulBlock(fifth, sq, sq)
	vecmath.MulBlockInPlace(fifth, wl)

	const twoHC2 = 2 * PlanckConstant * SpeedOfLight * SpeedOfLight

	nom := make([]float64, n)
	coeff := make([]float64, n)

	for i, v := range wl {
		nom[i] = twoHC2 / fifth[i]
		coeff[i] = PlanckConstant * SpeedOfLight / (BoltzmannConstant * v)
	}

	return evaluate(nom, coeff, temperature, cfg, true), nil
}

// RadianceWavenumberAt computes spectral radiance for a single
// wavenumber and temperature.
func RadianceWavenumberAt(wavenumber, temperature float64, opts ...Option) (float64, error) {
	out, err := RadianceWavenumber(Scalar(wavenumber), Scalar(temperature), opts...)
	if err != nil {
		return 0, err
	}

	return out.Float(), nil
}

// RadianceWavelengthAt computes spectral radiance for a single
// wavelength and temperature.
func RadianceWavelengthAt(wavelength, temperature float64, opts ...Option) (float64, error) {
	out, err := RadianceWavelength(Scalar(wavelength), Scalar(temperature), opts...)
	if err != nil {
		return 0, err
	}

	return out.Float(), nil
}

// validate checks both inputs and returns the spectral positions.
func validate(position, temperature Array, cfg config) ([]float64, error) {
	if position.Len() == 0 || temperature.Len() == 0 {
		return nil, ErrEmptyInput
	}

	if position.Rank() > 1 {
		return nil, fmt.Errorf("%w: spectral position must be scalar or 1-D, got rank %d", ErrInvalidShape, position.Rank())
	}

	if temperature.Rank() > 2 {
		return nil, fmt.Errorf("%w: temperature must be scalar, 1-D, or 2-D, got rank %d", ErrInvalidShape, temperature.Rank())
	}

	for i, v := range position.data {
		if !(v > 0) {
			return nil, fmt.Errorf("%w: position %d is %g", ErrInvalidSpectralPosition, i, v)
		}
	}

	n := position.Len()
	if temperature.Len() > cfg.maxGridElements/n {
		return nil, fmt.Errorf("%w: %d x %d elements requested, limit %d",
			ErrGridTooLarge, temperature.Len(), n, cfg.maxGridElements)
	}

	return position.data, nil
}

// evaluate computes the full temperature-by-position radiance grid and
// reshapes it per resultShape. nom holds the per-position numerator,
// coeff the per-position exponent coefficient (exponent = coeff / T).
func evaluate(nom, coeff []float64, temperature Array, cfg config, countDubious bool) Array {
	n := len(nom)
	temps := temperature.data

	out := make([]float64, len(temps)*n)

	masked := 0
	dubious := 0
	computed := 0
	minArg := math.Inf(1)
	maxArg := math.Inf(-1)

	for i, t := range temps {
		row := out[i*n : (i+1)*n]

		if math.Abs(t) <= epsilonKelvin {
			masked++
			for j := range row {
				row[j] = math.NaN()
			}

			continue
		}

		invT := 1 / t
		for j := range row {
			arg := coeff[j] * invT
			if !cfg.fullPrecision {
				arg = float64(float32(coeff[j]) * float32(invT))
			}

			if arg < minArg {
				minArg = arg
			}

			if arg > maxArg {
				maxArg = arg
			}

			if arg < 0 {
				dubious++
			}

			row[j] = nom[j] / (math.Exp(arg) - 1)
		}

		computed += n
	}

	if cfg.observer != nil {
		if computed > 0 {
			cfg.observer(Event{Kind: EventExponentRange, Min: minArg, Max: maxArg})
		}

		if masked > 0 {
			cfg.observer(Event{Kind: EventMaskedTemperatures, Count: masked})
		}

		if countDubious && dubious > 0 {
			cfg.observer(Event{Kind: EventDubiousExponents, Count: dubious})
		}
	}

	shape := resultShape(n, temperature.IsScalar(), temperature.shape)

	return Array{data: out, shape: shape}
}
