package peaks

import "fmt"

// localMaxima returns the indices of all local maxima in signal, ascending.
// A flat-topped maximum (plateau) is reported at its midpoint. The first and
// last samples can never be maxima.
func localMaxima(signal []float64) []int {
	var out []int

	i := 1
	for i < len(signal)-1 {
		if signal[i] <= signal[i-1] {
			i++
			continue
		}

		// walk to the end of a possible plateau
		j := i
		for j < len(signal)-1 && signal[j+1] == signal[i] {
			j++
		}

		if j < len(signal)-1 && signal[j+1] < signal[i] {
			out = append(out, (i+j)/2)
		}

		i = j + 1
	}

	return out
}

// prominence computes the topographic prominence of the local maximum at
// index p: the vertical drop from the maximum to the higher of the lowest
// points separating it from higher terrain on either side. The signal
// boundary acts as a base when no higher sample exists in that direction.
func prominence(signal []float64, p int) float64 {
	height := signal[p]

	leftBase := height
	for i := p - 1; i >= 0; i-- {
		if signal[i] > height {
			break
		}
		if signal[i] < leftBase {
			leftBase = signal[i]
		}
	}

	rightBase := height
	for i := p + 1; i < len(signal); i++ {
		if signal[i] > height {
			break
		}
		if signal[i] < rightBase {
			rightBase = signal[i]
		}
	}

	base := leftBase
	if rightBase > base {
		base = rightBase
	}

	return height - base
}

// Above returns the indices of all local maxima whose topographic
// prominence is at least the given threshold, ascending. A threshold of
// zero selects every local maximum.
func Above(signal []float64, threshold float64) []int {
	return maximaAbove(signal, threshold)
}

// Prominence computes the topographic prominence of the local maximum at
// index p.
func Prominence(signal []float64, p int) (float64, error) {
	if p < 0 || p >= len(signal) {
		return 0, fmt.Errorf("peaks: index %d outside signal of %d samples", p, len(signal))
	}

	return prominence(signal, p), nil
}

// maximaAbove returns the local maxima whose prominence is at least the
// given threshold, ascending.
func maximaAbove(signal []float64, threshold float64) []int {
	maxima := localMaxima(signal)

	out := maxima[:0]
	for _, p := range maxima {
		if prominence(signal, p) >= threshold {
			out = append(out, p)
		}
	}

	return out
}
