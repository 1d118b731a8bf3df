package raman

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-raman/dsp/filter/median"
	"github.com/cwbudde/algo-raman/dsp/peaks"
)

// ErrLengthMismatch is returned when a wavenumber axis and an intensity
// trace cannot pair by index.
var ErrLengthMismatch = errors.New("raman: wavenumbers and intensities must have the same length")

// Spectrum pairs a calibrated wavenumber axis (cm⁻¹) with intensity
// samples. The zero value is empty; transforms return new spectra and never
// mutate the receiver.
type Spectrum struct {
	wavenumbers []float64
	intensities []float64
}

// New creates a Spectrum from a wavenumber axis and intensity samples of
// equal length. Both slices are copied.
func New(wavenumbersCM1, intensities []float64) (Spectrum, error) {
	if len(wavenumbersCM1) != len(intensities) {
		return Spectrum{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wavenumbersCM1), len(intensities))
	}

	w := make([]float64, len(wavenumbersCM1))
	copy(w, wavenumbersCM1)

	y := make([]float64, len(intensities))
	copy(y, intensities)

	return Spectrum{wavenumbers: w, intensities: y}, nil
}

// Len returns the number of samples.
func (s Spectrum) Len() int {
	return len(s.intensities)
}

// Wavenumbers returns a copy of the wavenumber axis (cm⁻¹).
func (s Spectrum) Wavenumbers() []float64 {
	out := make([]float64, len(s.wavenumbers))
	copy(out, s.wavenumbers)

	return out
}

// Intensities returns a copy of the intensity samples.
func (s Spectrum) Intensities() []float64 {
	out := make([]float64, len(s.intensities))
	copy(out, s.intensities)

	return out
}

// Between clips the spectrum to the open wavenumber interval (min, max).
func (s Spectrum) Between(minCM1, maxCM1 float64) Spectrum {
	var out Spectrum

	for i, w := range s.wavenumbers {
		if w > minCM1 && w < maxCM1 {
			out.wavenumbers = append(out.wavenumbers, w)
			out.intensities = append(out.intensities, s.intensities[i])
		}
	}

	return out
}

// Normalize scales intensities to [0, 1] with min-max normalization. A
// constant spectrum normalizes to all zeros.
func (s Spectrum) Normalize() Spectrum {
	out := Spectrum{
		wavenumbers: s.Wavenumbers(),
		intensities: MinMaxNormalize(s.intensities),
	}

	return out
}

// Standardize scales intensities to zero mean and unit sample standard
// deviation. A constant spectrum standardizes to all zeros.
func (s Spectrum) Standardize() Spectrum {
	mean, std := stat.MeanStdDev(s.intensities, nil)

	out := make([]float64, len(s.intensities))
	if std == 0 || math.IsNaN(std) {
		return Spectrum{wavenumbers: s.Wavenumbers(), intensities: out}
	}

	for i, v := range s.intensities {
		out[i] = v - mean
	}

	vecmath.ScaleBlockInPlace(out, 1/std)

	return Spectrum{wavenumbers: s.Wavenumbers(), intensities: out}
}

// Smooth applies a running median of the given kernel size to the
// intensities. The kernel must be a positive odd integer.
func (s Spectrum) Smooth(kernel int) (Spectrum, error) {
	smoothed, err := median.Filter(s.intensities, kernel)
	if err != nil {
		return Spectrum{}, err
	}

	return Spectrum{wavenumbers: s.Wavenumbers(), intensities: smoothed}, nil
}

// NMostProminentWavenumbers locates the n most prominent peaks in the
// intensities and returns the wavenumbers at the detected indices, along
// with any search warnings.
func (s Spectrum) NMostProminentWavenumbers(n int) ([]float64, []peaks.Warning, error) {
	res, err := peaks.Find(s.intensities, n)
	if err != nil {
		return nil, nil, err
	}

	out := make([]float64, len(res.Peaks))
	for i, p := range res.Peaks {
		out[i] = s.wavenumbers[p]
	}

	return out, res.Warnings, nil
}

// ProminentWavenumbers returns the wavenumbers of all local maxima whose
// topographic prominence is at least the given threshold.
func (s Spectrum) ProminentWavenumbers(prominence float64) []float64 {
	var out []float64

	for _, p := range peaks.Above(s.intensities, prominence) {
		out = append(out, s.wavenumbers[p])
	}

	return out
}

// MinMaxNormalize scales data to [0, 1], returning a new slice. A constant
// input normalizes to all zeros.
func MinMaxNormalize(data []float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}

	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		return out
	}

	for i, v := range data {
		out[i] = v - lo
	}

	vecmath.ScaleBlockInPlace(out, 1/(hi-lo))

	return out
}
