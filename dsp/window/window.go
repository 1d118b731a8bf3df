// Package window generates apodization windows for spectral estimation.
//
// Windowing a trace before a Fourier transform trades frequency resolution
// for reduced spectral leakage. The catalogue here is intentionally small:
// the windows that matter for noise estimation on spectrometer traces.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeGauss
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeGauss:
		return "gauss"
	default:
		return "unknown"
	}
}

// ErrUnknownType is returned for window types outside the catalogue.
var ErrUnknownType = errors.New("window: unknown window type")

// gaussAlpha is the reciprocal standard deviation of the Gauss window,
// in units of half the window length.
const gaussAlpha = 2.5

// Generate returns the window coefficients for a symmetric window of the
// given length.
func Generate(t Type, length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("window: length must be positive: %d", length)
	}

	out := make([]float64, length)

	if length == 1 {
		out[0] = 1
		return out, nil
	}

	n := float64(length - 1)

	for i := range out {
		x := float64(i) / n

		switch t {
		case TypeRectangular:
			out[i] = 1
		case TypeHann:
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case TypeHamming:
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*x)
		case TypeBlackman:
			out[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
		case TypeGauss:
			d := gaussAlpha * (2*x - 1)
			out[i] = math.Exp(-0.5 * d * d)
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
		}
	}

	return out, nil
}

// ApplyInPlace multiplies samples element-wise by the window coefficients.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("window: %d samples vs %d coefficients", len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean of the coefficients, the factor by which a
// window attenuates a coherent (single-bin) component.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errors.New("window: empty coefficients")
	}

	return vecmath.Sum(coeffs) / float64(len(coeffs)), nil
}
