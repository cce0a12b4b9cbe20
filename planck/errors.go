package planck

import "errors"

var (
	ErrEmptyInput              = errors.New("planck: empty input")
	ErrInvalidSpectralPosition = errors.New("planck: spectral position must be positive")
	ErrInvalidShape            = errors.New("planck: unsupported input shape")
	ErrGridTooLarge            = errors.New("planck: radiance grid exceeds element limit; precompute a radiance-to-brightness-temperature lookup table instead")
)
