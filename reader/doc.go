// Package reader parses spectrometer output files.
//
// The OpenRAMAN spectrometer emits uncalibrated intensity traces that need
// the two-stage calibration from package calibrate; Horiba, Renishaw and
// Wasatch instruments calibrate on-device and emit wavenumber/intensity
// pairs directly. All readers return ascending wavenumber order regardless
// of the on-disk order.
package reader
