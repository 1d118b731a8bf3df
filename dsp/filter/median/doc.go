// Package median implements a running median filter for 1-D signals.
//
// The filter is used to suppress single-sample spikes (hot pixels, cosmic
// rays) in calibration traces before peak detection. Boundaries are treated
// as zero-padded so the output has the same length as the input.
package median
