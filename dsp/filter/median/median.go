package median

import (
	"fmt"
	"sort"
)

// Filter applies a running median of the given kernel size to signal and
// returns a new slice of the same length. The kernel must be a positive odd
// integer; a kernel of 1 returns a copy of the input. Samples beyond the
// signal boundaries are taken as zero.
func Filter(signal []float64, kernel int) ([]float64, error) {
	if kernel <= 0 || kernel%2 == 0 {
		return nil, fmt.Errorf("median: kernel size must be a positive odd integer: %d", kernel)
	}

	out := make([]float64, len(signal))
	if kernel == 1 {
		copy(out, signal)
		return out, nil
	}

	half := kernel / 2
	window := make([]float64, kernel)

	for i := range signal {
		for k := 0; k < kernel; k++ {
			j := i - half + k
			if j < 0 || j >= len(signal) {
				window[k] = 0
				continue
			}
			window[k] = signal[j]
		}

		sort.Float64s(window)
		out[i] = window[half]
	}

	return out, nil
}
