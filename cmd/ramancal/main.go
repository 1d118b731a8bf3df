// Command ramancal calibrates OpenRAMAN spectrometer output.
//
// The instrument writes uncalibrated intensity traces; ramancal derives a
// wavenumber axis from a neon-lamp trace and an acetonitrile trace, pairs
// it with a sample trace, and reports the detected peaks.
//
// Examples:
//
//	ramancal calibrate --neon neon.csv --acetonitrile aceto.csv
//	ramancal calibrate --neon neon.csv --acetonitrile aceto.csv \
//	    --sample sample.csv --output calibrated.csv
//	ramancal shift 607.4 585.2
package main

import (
	"os"
)

func main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
