package response

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmptySpectrum  = errors.New("response: empty spectrum")
	ErrEmptyKernel    = errors.New("response: empty kernel")
	ErrLengthMismatch = errors.New("response: length mismatch")
	ErrBandTooShort   = errors.New("response: band needs at least two grid points")
	ErrGridOrder      = errors.New("response: wavenumber grid must be strictly ascending")
	ErrNegativeWeight = errors.New("response: weights must be non-negative")
	ErrZeroWeight     = errors.New("response: weights sum to zero")
)

// Band describes a sensor spectral response sampled on an ascending
// wavenumber grid (m^-1). Weights are relative; they are normalized
// during integration.
type Band struct {
	grid []float64

	// Trapezoidal quadrature weights multiplied by the response, and
	// their sum. Precomputed so Integrate is a single weighted dot
	// product.
	quadWeights []float64
	norm        float64
}

// NewBand validates and precomputes a spectral response band. Both
// slices are copied.
func NewBand(wavenumbers, weights []float64) (*Band, error) {
	if len(wavenumbers) != len(weights) {
		return nil, fmt.Errorf("%w: %d grid points, %d weights", ErrLengthMismatch, len(wavenumbers), len(weights))
	}

	if len(wavenumbers) < 2 {
		return nil, ErrBandTooShort
	}

	for i := 1; i < len(wavenumbers); i++ {
		if wavenumbers[i] <= wavenumbers[i-1] {
			return nil, fmt.Errorf("%w: grid[%d]=%g after grid[%d]=%g",
				ErrGridOrder, i, wavenumbers[i], i-1, wavenumbers[i-1])
		}
	}

	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %g", ErrNegativeWeight, i, w)
		}
	}

	n := len(wavenumbers)
	grid := append([]float64(nil), wavenumbers...)

	quad := make([]float64, n)
	quad[0] = (grid[1] - grid[0]) / 2
	quad[n-1] = (grid[n-1] - grid[n-2]) / 2

	for i := 1; i < n-1; i++ {
		quad[i] = (grid[i+1] - grid[i-1]) / 2
	}

	vecmath.MulBlockInPlace(quad, weights)

	norm := 0.0
	for _, q := range quad {
		norm += q
	}

	if norm == 0 {
		return nil, ErrZeroWeight
	}

	return &Band{grid: grid, quadWeights: quad, norm: norm}, nil
}

// Len returns the number of grid points in the band.
func (b *Band) Len() int {
	return len(b.grid)
}

// Wavenumbers returns a copy of the band grid, for evaluating a
// radiance spectrum on the band's own sampling.
func (b *Band) Wavenumbers() []float64 {
	return append([]float64(nil), b.grid...)
}

// Integrate returns the response-weighted mean radiance of a spectrum
// sampled on the band grid. For a constant spectrum it returns that
// constant regardless of the response shape.
func (b *Band) Integrate(spectrum []float64) (float64, error) {
	if len(spectrum) == 0 {
		return 0, ErrEmptySpectrum
	}

	if len(spectrum) != len(b.grid) {
		return 0, fmt.Errorf("%w: spectrum has %d samples, band has %d", ErrLengthMismatch, len(spectrum), len(b.grid))
	}

	weighted := make([]float64, len(spectrum))
	vecmath.MulBlock(weighted, b.quadWeights, spectrum)

	sum := 0.0
	for _, v := range weighted {
		sum += v
	}

	return sum / b.norm, nil
}
