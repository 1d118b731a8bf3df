package peaks

import "errors"

// Errors returned by peak refinement.
var (
	ErrUnknownMethod     = errors.New("peaks: unknown refinement method")
	ErrWindowOutOfBounds = errors.New("peaks: gaussian window exceeds signal bounds")
	ErrNotConverged      = errors.New("peaks: gaussian fit did not converge")
)

// WarningCode identifies a recoverable degradation during peak search or
// refinement.
type WarningCode int

const (
	// WarnInsufficientPeaks means fewer peaks were found than requested.
	WarnInsufficientPeaks WarningCode = iota + 1
	// WarnSearchNotConverged means the iteration cap was reached while the
	// peak count still exceeded the target.
	WarnSearchNotConverged
	// WarnRefineFallback means a sub-pixel fit was impossible or degenerate
	// and the integer position was kept.
	WarnRefineFallback
)

// String returns a stable name for the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnInsufficientPeaks:
		return "insufficient-peaks"
	case WarnSearchNotConverged:
		return "search-not-converged"
	case WarnRefineFallback:
		return "refine-fallback"
	default:
		return "unknown"
	}
}

// Warning is a structured diagnostic attached to an otherwise usable result.
type Warning struct {
	Code WarningCode
	// Index is the peak index the warning refers to, or -1 when the warning
	// concerns the search as a whole.
	Index   int
	Message string
}
