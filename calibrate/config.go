package calibrate

import (
	"fmt"

	"github.com/cwbudde/algo-raman/dsp/peaks"
	"github.com/cwbudde/algo-raman/raman"
)

const (
	defaultKernelSize   = 5
	defaultRefineWindow = 7
)

// Config holds calibration parameters. Residual thresholds have no default
// on purpose: acceptable fit quality depends on the instrument, so callers
// must state it explicitly.
type Config struct {
	// ExcitationWavelengthNM is the wavelength of the excitation light
	// source. Defaults to 532 nm.
	ExcitationWavelengthNM float64

	// KernelSize is the median-filter window applied to the two calibration
	// traces (never to sample spectra). Must be a positive odd integer; a
	// size of 1 disables smoothing. Defaults to 5.
	KernelSize int

	// RoughThreshold is the maximum acceptable residual sum of squares for
	// the rough-stage fit. Required.
	RoughThreshold float64

	// FineThreshold is the maximum acceptable residual sum of squares for
	// the fine-stage fit. Required.
	FineThreshold float64

	// ProminenceIncrement and MaxIterations tune the adaptive peak search.
	// Zero values take the search defaults (0.005 and 500).
	ProminenceIncrement float64
	MaxIterations       int

	// Refinement selects the optional sub-pixel refinement of fine-stage
	// peak positions. The zero value reads the rough axis at integer peak
	// indices without refinement.
	Refinement peaks.Method

	// RefineWindow is the Gaussian refinement window width in samples.
	// Must be odd. Defaults to 7. Ignored unless Refinement is
	// [peaks.MethodGaussian].
	RefineWindow int

	// ExcitationReferenceNM holds the known emission-line wavelengths (nm)
	// expected in the excitation-reference trace, ascending. Defaults to
	// the neon table.
	ExcitationReferenceNM []float64

	// EmissionReferenceCM1 holds the known Raman shift lines (cm⁻¹) of the
	// reference compound expected in the emission-reference trace,
	// ascending. Defaults to the acetonitrile table.
	EmissionReferenceCM1 []float64
}

// Validate checks the configuration, returning the first problem found.
func (cfg *Config) Validate() error {
	if cfg.ExcitationWavelengthNM < 0 {
		return fmt.Errorf("calibrate: excitation wavelength must be positive: %v", cfg.ExcitationWavelengthNM)
	}

	if cfg.KernelSize < 0 || cfg.KernelSize%2 == 0 && cfg.KernelSize != 0 {
		return fmt.Errorf("calibrate: kernel size must be a positive odd integer: %d", cfg.KernelSize)
	}

	if cfg.RoughThreshold <= 0 {
		return fmt.Errorf("calibrate: rough residual threshold must be set and positive: %v", cfg.RoughThreshold)
	}

	if cfg.FineThreshold <= 0 {
		return fmt.Errorf("calibrate: fine residual threshold must be set and positive: %v", cfg.FineThreshold)
	}

	switch cfg.Refinement {
	case 0, peaks.MethodParabolic, peaks.MethodGaussian:
	default:
		return fmt.Errorf("%w: %d", peaks.ErrUnknownMethod, cfg.Refinement)
	}

	if cfg.RefineWindow < 0 || cfg.RefineWindow%2 == 0 && cfg.RefineWindow != 0 {
		return fmt.Errorf("calibrate: refine window must be a positive odd integer: %d", cfg.RefineWindow)
	}

	if err := validateReference("excitation", cfg.ExcitationReferenceNM); err != nil {
		return err
	}

	return validateReference("emission", cfg.EmissionReferenceCM1)
}

func validateReference(name string, table []float64) error {
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			return fmt.Errorf("calibrate: %s reference table must be strictly ascending at entry %d", name, i)
		}
	}

	return nil
}

// withDefaults returns a copy of cfg with unset fields filled in.
func (cfg Config) withDefaults() Config {
	if cfg.ExcitationWavelengthNM == 0 {
		cfg.ExcitationWavelengthNM = raman.DefaultExcitationWavelengthNM
	}

	if cfg.KernelSize == 0 {
		cfg.KernelSize = defaultKernelSize
	}

	if cfg.RefineWindow == 0 {
		cfg.RefineWindow = defaultRefineWindow
	}

	if cfg.ExcitationReferenceNM == nil {
		cfg.ExcitationReferenceNM = raman.NeonPeaksNM()
	}

	if cfg.EmissionReferenceCM1 == nil {
		cfg.EmissionReferenceCM1 = raman.AcetonitrilePeaksCM1()
	}

	return cfg
}
