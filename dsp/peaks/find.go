package peaks

import "fmt"

const (
	defaultProminenceIncrement = 0.005
	defaultMaxIterations       = 500
)

// FindConfig holds adaptive peak-search parameters.
type FindConfig struct {
	// ProminenceIncrement is added to the prominence threshold on every
	// search iteration. Defaults to 0.005.
	ProminenceIncrement float64
	// MaxIterations caps the adaptive search loop. This is the only bound on
	// the search; there is no external cancellation. Defaults to 500.
	MaxIterations int
}

// FindResult bundles the located peaks with search diagnostics.
type FindResult struct {
	// Peaks holds the surviving local maxima, ascending.
	Peaks []int
	// Prominence is the final threshold at which Peaks survived.
	Prominence float64
	// Iterations is the number of threshold increments performed.
	Iterations int
	// Warnings lists recoverable degradations; empty on an exact match.
	Warnings []Warning
}

// Finder locates the N most prominent peaks in a signal.
type Finder struct {
	cfg FindConfig
}

// NewFinder creates a Finder, applying defaults for unset config fields.
func NewFinder(cfg FindConfig) *Finder {
	if cfg.ProminenceIncrement <= 0 {
		cfg.ProminenceIncrement = defaultProminenceIncrement
	}

	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}

	return &Finder{cfg: cfg}
}

// Find is a one-shot search with default parameters.
func Find(signal []float64, target int) (FindResult, error) {
	return NewFinder(FindConfig{}).Find(signal, target)
}

// Find locates the target number of most prominent local maxima in signal.
//
// The search starts with all local maxima (zero prominence threshold) and
// repeatedly raises the threshold by the configured increment until exactly
// target peaks survive or the iteration cap is reached. Two degradations are
// non-fatal and reported as warnings on the result:
//
//   - fewer maxima exist than requested, or the increment skipped from above
//     target to below it: the current (short) set is returned
//   - the iteration cap was reached while still above target: the over-count
//     set is returned as the best approximation
//
// Returned indices are ascending.
func (f *Finder) Find(signal []float64, target int) (FindResult, error) {
	if target <= 0 {
		return FindResult{}, fmt.Errorf("peaks: target count must be > 0: %d", target)
	}

	if len(signal) < 3 {
		return FindResult{}, fmt.Errorf("peaks: signal too short for peak search: %d samples", len(signal))
	}

	res := FindResult{
		Peaks: maximaAbove(signal, 0),
	}

	if len(res.Peaks) < target {
		res.Warnings = append(res.Warnings, Warning{
			Code:  WarnInsufficientPeaks,
			Index: -1,
			Message: fmt.Sprintf("found %d local maxima at minimum prominence, fewer than the %d requested",
				len(res.Peaks), target),
		})

		return res, nil
	}

	for len(res.Peaks) > target && res.Iterations < f.cfg.MaxIterations {
		res.Prominence += f.cfg.ProminenceIncrement
		res.Peaks = maximaAbove(signal, res.Prominence)
		res.Iterations++
	}

	switch {
	case len(res.Peaks) > target:
		res.Warnings = append(res.Warnings, Warning{
			Code:  WarnSearchNotConverged,
			Index: -1,
			Message: fmt.Sprintf("reached %d iterations with %d peaks remaining, above the %d requested",
				res.Iterations, len(res.Peaks), target),
		})
	case len(res.Peaks) < target:
		res.Warnings = append(res.Warnings, Warning{
			Code:  WarnInsufficientPeaks,
			Index: -1,
			Message: fmt.Sprintf("prominence increment stepped over the target: %d peaks remain of the %d requested",
				len(res.Peaks), target),
		})
	}

	return res, nil
}
