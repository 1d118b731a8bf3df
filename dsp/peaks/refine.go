package peaks

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

const defaultGaussianWindow = 7

// Method selects the sub-pixel refinement strategy.
type Method int

const (
	// MethodParabolic fits an exact quadratic through the peak sample and
	// its two immediate neighbors.
	MethodParabolic Method = iota + 1
	// MethodGaussian fits amplitude, mean, and standard deviation of a
	// Gaussian to a window of samples around the peak.
	MethodGaussian
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodParabolic:
		return "parabolic"
	case MethodGaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "parabolic":
		return MethodParabolic, nil
	case "gaussian":
		return MethodGaussian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// RefineConfig holds refinement parameters.
type RefineConfig struct {
	Method Method
	// Window is the Gaussian fitting window width in samples, centered on
	// the peak. Must be odd; defaults to 7. Ignored by MethodParabolic,
	// which always uses a fixed 3-point window.
	Window int
}

// RefineResult bundles refined peak positions with diagnostics.
type RefineResult struct {
	// Positions holds one sub-pixel position per input peak, each within
	// one sample of its integer index.
	Positions []float64
	// Heights holds the fitted peak heights.
	Heights []float64
	// Warnings lists peaks that fell back to their integer position
	// (parabolic method only).
	Warnings []Warning
}

// Refine computes sub-pixel positions for a batch of integer peak indices.
//
// The parabolic method degrades gracefully: a peak at the signal edge or a
// degenerate fit keeps its integer position and is reported in the result
// warnings. The Gaussian method offers no such fallback; an out-of-bounds
// window or a non-converging fit fails the whole call.
func Refine(signal []float64, peakIdx []int, cfg RefineConfig) (RefineResult, error) {
	if cfg.Method != MethodParabolic && cfg.Method != MethodGaussian {
		return RefineResult{}, fmt.Errorf("%w: %d", ErrUnknownMethod, cfg.Method)
	}

	window := cfg.Window
	if window <= 0 {
		window = defaultGaussianWindow
	}

	if window%2 == 0 {
		return RefineResult{}, fmt.Errorf("peaks: gaussian window must be odd: %d", window)
	}

	res := RefineResult{
		Positions: make([]float64, 0, len(peakIdx)),
		Heights:   make([]float64, 0, len(peakIdx)),
	}

	for _, i := range peakIdx {
		if i < 0 || i >= len(signal) {
			return RefineResult{}, fmt.Errorf("peaks: peak index %d outside signal of %d samples", i, len(signal))
		}

		var (
			pos, height float64
			err         error
		)

		switch cfg.Method {
		case MethodParabolic:
			var warn *Warning

			pos, height, warn = refineParabolic(signal, i)
			if warn != nil {
				res.Warnings = append(res.Warnings, *warn)
			}
		case MethodGaussian:
			pos, height, err = refineGaussian(signal, i, window)
			if err != nil {
				return RefineResult{}, err
			}
		}

		res.Positions = append(res.Positions, pos)
		res.Heights = append(res.Heights, height)
	}

	return res, nil
}

// refineParabolic computes the vertex of the parabola through the peak
// sample and its immediate neighbors:
//
//	x* = i + (y[i-1] - y[i+1]) / (2*(y[i-1] - 2*y[i] + y[i+1]))
//
// The integer position is kept (with a warning) when the peak sits at a
// signal edge, the denominator vanishes, or the vertex escapes the open
// interval (i-1, i+1).
func refineParabolic(signal []float64, i int) (pos, height float64, warn *Warning) {
	fallback := func(msg string) (float64, float64, *Warning) {
		return float64(i), signal[i], &Warning{
			Code:    WarnRefineFallback,
			Index:   i,
			Message: msg,
		}
	}

	if i == 0 || i == len(signal)-1 {
		return fallback("peak at signal edge cannot be interpolated")
	}

	ym, y0, yp := signal[i-1], signal[i], signal[i+1]

	denom := ym - 2*y0 + yp
	if math.Abs(denom) < 1e-12 {
		return fallback("degenerate parabolic fit: flat 3-point window")
	}

	offset := (ym - yp) / (2 * denom)

	pos = float64(i) + offset
	if pos <= float64(i-1) || pos >= float64(i+1) {
		return fallback("interpolated vertex outside the fitting window")
	}

	height = y0 - (ym-yp)*(ym-yp)/(8*denom)

	return pos, height, nil
}

// refineGaussian fits A*exp(-(x-mu)^2/(2*sigma^2)) to a window of samples
// centered on the peak via Nelder-Mead least squares, seeded with
// amplitude 1, mean at the peak index, and unit sigma. The fitted mean is
// the refined position.
func refineGaussian(signal []float64, i, window int) (pos, height float64, err error) {
	half := window / 2

	lo := i - half
	hi := i + half

	if lo < 0 || hi >= len(signal) {
		return 0, 0, fmt.Errorf("%w: window %d at index %d, signal has %d samples",
			ErrWindowOutOfBounds, window, i, len(signal))
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			a, mu, sigma := p[0], p[1], p[2]

			s2 := sigma * sigma
			if s2 < 1e-12 {
				return math.Inf(1)
			}

			ssr := 0.0
			for x := lo; x <= hi; x++ {
				d := float64(x) - mu
				r := a*math.Exp(-d*d/(2*s2)) - signal[x]
				ssr += r * r
			}

			return ssr
		},
	}

	seed := []float64{1, float64(i), 1}

	result, err := optimize.Minimize(problem, seed, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}

	pos = result.X[1]
	height = result.X[0]

	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return 0, 0, fmt.Errorf("%w: fit produced non-finite mean", ErrNotConverged)
	}

	return pos, height, nil
}
