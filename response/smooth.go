package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// directThreshold selects time-domain convolution for short kernels,
// where it beats the FFT setup cost.
const directThreshold = 64

// Smooth convolves a spectrum with an instrument line shape kernel and
// returns a result of the same length, centered on the kernel. The
// kernel is applied as given; normalize it to unit sum to preserve
// band radiance.
func Smooth(spectrum, kernel []float64) ([]float64, error) {
	if len(spectrum) == 0 {
		return nil, ErrEmptySpectrum
	}

	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	var (
		full []float64
		err  error
	)

	if len(kernel) <= directThreshold {
		full = convolveDirect(spectrum, kernel)
	} else {
		full, err = convolveFFT(spectrum, kernel)
		if err != nil {
			return nil, err
		}
	}

	// Trim the full result to the spectrum length, centered.
	start := (len(kernel) - 1) / 2

	return full[start : start+len(spectrum)], nil
}

// convolveDirect is O(N*M) time-domain linear convolution, returning
// len(a)+len(b)-1 samples.
func convolveDirect(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)

	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}

	return out
}

// convolveFFT performs linear convolution through a zero-padded FFT of
// the next power-of-two size.
func convolveFFT(a, b []float64) ([]float64, error) {
	n := len(a) + len(b) - 1
	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	fa := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}

	fb := make([]complex128, size)
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("response: inverse fft: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(fa[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
