// Package calibrate converts uncalibrated spectrometer traces into a
// calibrated wavenumber axis.
//
// Calibration runs in two sequential stages. The rough stage locates known
// neon emission lines in an excitation-reference trace and fits a
// pixel-to-wavelength transform, converted to Raman shift relative to the
// excitation laser. The fine stage locates the shift lines of a reference
// compound (acetonitrile by default) in an emission-reference trace and
// fits a correction from the rough axis onto the known lines. Each stage
// gates on a residual-sum-of-squares threshold; a stage that exceeds its
// threshold fails the run and leaves the [Result] in [StateFailed].
//
// A calibration run is a pure function of its inputs: the [Calibrator]
// holds only configuration, so independent runs may execute concurrently
// without coordination.
package calibrate
