package raman

import (
	"errors"
)

// DefaultExcitationWavelengthNM is the wavelength of the 532 nm diode laser
// the OpenRAMAN system ships with.
const DefaultExcitationWavelengthNM = 532.0

// ErrInvalidExcitation is returned for a non-positive excitation wavelength.
var ErrInvalidExcitation = errors.New("raman: excitation wavelength must be positive")

// ShiftValue converts a single emission wavelength (nm) to its Raman shift
// (cm⁻¹) relative to the excitation wavelength:
//
//	shift = (1/λ_excitation − 1/λ_emission) · 1e7
//
// The shift is the wavenumber difference between the incident light and the
// Raman-scattered light, corresponding to a vibrational or rotational
// energy transition in the sample.
func ShiftValue(emissionNM, excitationNM float64) float64 {
	return (1/excitationNM - 1/emissionNM) * 1e7
}

// Shift converts a range of emission wavelengths (nm) to Raman shifts
// (cm⁻¹) relative to the excitation wavelength.
func Shift(emissionNM []float64, excitationNM float64) ([]float64, error) {
	if excitationNM <= 0 {
		return nil, ErrInvalidExcitation
	}

	out := make([]float64, len(emissionNM))
	for i, nm := range emissionNM {
		out[i] = ShiftValue(nm, excitationNM)
	}

	return out, nil
}
