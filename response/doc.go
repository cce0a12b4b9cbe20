// Package response reduces and conditions computed radiance spectra
// with sensor spectral responses.
//
// Two operations cover the usual post-processing of a Planck spectrum:
//
//   - Band.Integrate: response-weighted band radiance, the scalar a
//     broadband detector channel reports for a given spectrum
//   - Smooth: convolution of a high-resolution spectrum with an
//     instrument line shape, e.g. before comparing against measured
//     interferometer output
//
// # Usage
//
// Integrate a computed spectrum over a detector channel:
//
//	band, err := response.NewBand(wavenumbers, weights)
//	...
//	rad, err := band.Integrate(spectrum)
//
// Both the band grid and the spectrum must be sampled on the same
// wavenumber grid; resampling is the caller's job.
package response
