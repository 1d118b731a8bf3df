// Package peaks locates and refines peaks in 1-D spectral signals.
//
// [Finder] searches for a requested number of the most topographically
// prominent local maxima by adaptively raising a prominence threshold.
// [Refine] sharpens integer peak indices to sub-pixel positions using either
// a closed-form parabolic fit or a windowed Gaussian least-squares fit.
//
// Degraded searches do not fail: results carry structured [Warning] values
// so callers can assert on diagnostics without capturing log output.
package peaks
