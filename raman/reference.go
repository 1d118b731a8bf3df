package raman

// neonPeaksNM are the emission-line wavelengths (nm) of a neon calibration
// lamp visible in the OpenRAMAN detector range.
var neonPeaksNM = [...]float64{
	585.249,
	588.189,
	594.483,
	607.434,
	609.616,
	614.306,
	616.359,
	621.728,
	626.649,
	630.479,
	633.443,
	638.299,
	640.225,
	650.653,
	653.288,
}

// acetonitrilePeaksCM1 are the characteristic Raman shift lines (cm⁻¹) of
// acetonitrile, used as the fine-calibration reference compound.
var acetonitrilePeaksCM1 = [...]float64{918, 1376, 2249, 2942, 2999}

// NeonPeaksNM returns the neon reference line wavelengths (nm), ascending.
// The returned slice is a copy.
func NeonPeaksNM() []float64 {
	out := make([]float64, len(neonPeaksNM))
	copy(out, neonPeaksNM[:])

	return out
}

// AcetonitrilePeaksCM1 returns the acetonitrile reference shift lines
// (cm⁻¹), ascending. The returned slice is a copy.
func AcetonitrilePeaksCM1() []float64 {
	out := make([]float64, len(acetonitrilePeaksCM1))
	copy(out, acetonitrilePeaksCM1[:])

	return out
}
