package raman

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-raman/dsp/window"
)

const minSNRSamples = 16

// ErrTooShortForSNR is returned when the spectrum has too few samples for a
// noise-floor estimate.
var ErrTooShortForSNR = errors.New("raman: spectrum too short for SNR estimation")

// SNR estimates the signal-to-noise ratio of the spectrum in dB.
//
// The intensities are mean-removed, Hann-windowed against leakage, and
// transformed to the spatial-frequency domain. Spectral lines concentrate
// their power in the low-frequency bins
// while detector noise spreads flat across the band, so the estimate takes
// the peak power bin as signal and the median power of the upper half of
// the band as the noise floor:
//
//	SNR = 10·log10(P_peak / P_noise)
//
// This is a relative figure intended for comparing acquisitions of the same
// instrument, not an absolute radiometric quantity.
func (s Spectrum) SNR() (float64, error) {
	if s.Len() < minSNRSamples {
		return 0, fmt.Errorf("%w: %d samples, need at least %d", ErrTooShortForSNR, s.Len(), minSNRSamples)
	}

	mean := vecmath.Sum(s.intensities) / float64(s.Len())

	centered := make([]float64, s.Len())
	for i, v := range s.intensities {
		centered[i] = v - mean
	}

	coeffs, err := window.Generate(window.TypeHann, len(centered))
	if err != nil {
		return 0, err
	}

	if err := window.ApplyInPlace(centered, coeffs); err != nil {
		return 0, err
	}

	n := nextPowerOf2(s.Len())

	in := make([]complex128, n)
	for i, v := range centered {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("raman: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return 0, fmt.Errorf("raman: forward FFT failed: %w", err)
	}

	binCount := n/2 + 1

	power := make([]float64, binCount-1)
	for i := 1; i < binCount; i++ {
		x := out[i]
		power[i-1] = real(x)*real(x) + imag(x)*imag(x)
	}

	peak := 0.0
	for _, p := range power {
		if p > peak {
			peak = p
		}
	}

	upper := make([]float64, len(power)/2)
	copy(upper, power[len(power)-len(upper):])
	sort.Float64s(upper)

	noise := upper[len(upper)/2]
	if noise <= 0 {
		return math.Inf(1), nil
	}

	return 10 * math.Log10(peak/noise), nil
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
