// Package planck computes spectral blackbody radiance from Planck's
// radiation law, as a function of wavenumber or wavelength and
// temperature.
//
// All inputs and outputs use SI base units:
//
//   - wavenumber in inverse meters, wavelength in meters
//   - temperature in kelvin
//   - radiance in W/m^2 sr^-1 (m^-1)^-1 for the wavenumber form and
//     W/m^2 sr^-1 m^-1 for the wavelength form
//
// Unit conversion (per micron, per cm^-1, ...) is the caller's job.
//
// Both operations accept scalar, vector, or 2-D grid inputs through the
// Array value type and return a result whose shape follows from the
// input shapes: a scalar position paired with an array of temperatures
// yields one radiance per temperature, while a vector of positions
// appends a trailing spectral axis.
//
// # Usage
//
// Full thermal-infrared spectrum at one temperature:
//
//	wn := planck.Vector(grid) // wavenumbers in m^-1
//	rad, err := planck.RadianceWavenumber(wn, planck.Scalar(280))
//
// Temperatures whose magnitude is at or below 1e-6 K cannot enter the
// reciprocal in the exponent; their output positions are reported as
// NaN rather than computed through a division singularity.
//
// The exponent argument is rounded through single precision before
// exponentiation, matching the reference behavior for large grids; use
// WithFullPrecision to evaluate it entirely in float64.
package planck
