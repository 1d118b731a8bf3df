// Package raman provides the Raman spectrum container and spectroscopy
// unit conversions.
//
// A [Spectrum] pairs a calibrated wavenumber axis (cm⁻¹) with intensity
// samples and offers simple array transforms: range clipping, min-max
// normalization, standardization, median smoothing, and prominence-based
// peak lookups. [Shift] converts emission wavelengths to Raman shift
// relative to an excitation line.
//
// The package also carries the reference line tables used for calibration:
// neon emission wavelengths for the rough stage and acetonitrile shift
// lines for the fine stage.
package raman
