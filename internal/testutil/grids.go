package testutil

// Linspace generates n evenly spaced values from start to stop
// inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out
}

// Constant generates a constant-valued sequence.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// WavenumberBand generates n wavenumbers spanning lo to hi cm^-1,
// converted to SI units (m^-1).
func WavenumberBand(loCm, hiCm float64, n int) []float64 {
	out := Linspace(loCm, hiCm, n)
	for i := range out {
		out[i] *= 100
	}

	return out
}
