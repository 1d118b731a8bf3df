package testutil

import (
	"math"
	"math/rand"
)

// GaussianPeaks generates a synthetic spectrum of the given length with
// Gaussian lines at the given sample positions. All lines share the same
// width (sigma, in samples) and the heights slice pairs with centers.
func GaussianPeaks(length int, centers, heights []float64, sigma float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		x := float64(i)
		for j, c := range centers {
			d := x - c
			out[i] += heights[j] * math.Exp(-d*d/(2*sigma*sigma))
		}
	}
	return out
}

// UniformPeaks generates a synthetic spectrum with unit-height Gaussian
// lines at the given positions.
func UniformPeaks(length int, centers []float64, sigma float64) []float64 {
	heights := make([]float64, len(centers))
	for i := range heights {
		heights[i] = 1
	}
	return GaussianPeaks(length, centers, heights, sigma)
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AddInPlace adds src into dst element-wise. Panics on length mismatch via
// the implicit bounds check.
func AddInPlace(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
