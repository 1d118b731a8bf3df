package calibrate

import (
	"errors"

	"github.com/cwbudde/algo-raman/dsp/peaks"
)

// Errors that abort a calibration run.
var (
	ErrRoughResidual = errors.New("calibrate: rough calibration residual exceeds threshold")
	ErrFineResidual  = errors.New("calibrate: fine calibration residual exceeds threshold")
)

// State tracks the calibration lifecycle.
type State int

const (
	// StateUninitialized is the state before any stage has completed.
	StateUninitialized State = iota
	// StateRoughCalibrated means the pixel-to-wavenumber rough stage
	// completed within its residual threshold.
	StateRoughCalibrated
	// StateFineCalibrated means both stages completed; the result carries
	// the final calibrated axis.
	StateFineCalibrated
	// StateFailed is terminal; the result carries the triggering error.
	StateFailed
)

// String returns a stable name for the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRoughCalibrated:
		return "rough-calibrated"
	case StateFineCalibrated:
		return "fine-calibrated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stage identifies which calibration stage produced a warning or failure.
type Stage int

const (
	// StageRough is the excitation-reference pixel-to-wavelength stage.
	StageRough Stage = iota + 1
	// StageFine is the emission-reference wavenumber-correction stage.
	StageFine
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageRough:
		return "rough"
	case StageFine:
		return "fine"
	default:
		return "unknown"
	}
}

// Warning is a stage-tagged diagnostic for a degraded but usable step.
type Warning struct {
	Stage   Stage
	Code    peaks.WarningCode
	Index   int
	Message string
}

// StageResult records what a single stage detected and how well it fit.
type StageResult struct {
	// Peaks holds the detected peak indices, ascending.
	Peaks []int
	// Observed holds the positions handed to the axis fit: wavelengths in
	// pixels for the rough stage, rough wavenumbers for the fine stage.
	Observed []float64
	// Fitness is the residual sum of squares of the stage fit.
	Fitness float64
}

// Result is the outcome of a calibration run. After a successful run State
// is [StateFineCalibrated] and Wavenumbers holds the calibrated axis; after
// a failed run State is [StateFailed] and Err carries the triggering error
// while earlier stage data remains populated for diagnosis.
type Result struct {
	State       State
	Wavenumbers []float64
	Rough       StageResult
	Fine        StageResult
	Warnings    []Warning
	Err         error
}

func (r *Result) addWarnings(stage Stage, ws []peaks.Warning) {
	for _, w := range ws {
		r.Warnings = append(r.Warnings, Warning{
			Stage:   stage,
			Code:    w.Code,
			Index:   w.Index,
			Message: w.Message,
		})
	}
}

func (r *Result) fail(err error) (Result, error) {
	r.State = StateFailed
	r.Err = err

	return *r, err
}
