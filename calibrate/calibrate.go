package calibrate

import (
	"fmt"

	"github.com/cwbudde/algo-raman/dsp/filter/median"
	"github.com/cwbudde/algo-raman/dsp/interp"
	"github.com/cwbudde/algo-raman/dsp/peaks"
	"github.com/cwbudde/algo-raman/dsp/rescale"
	"github.com/cwbudde/algo-raman/raman"
)

// Calibrator runs the two-stage axis calibration. It is immutable after
// construction and safe for concurrent use.
type Calibrator struct {
	cfg    Config
	finder *peaks.Finder
}

// New creates a Calibrator, validating the configuration up front.
func New(cfg Config) (*Calibrator, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()

	return &Calibrator{
		cfg: cfg,
		finder: peaks.NewFinder(peaks.FindConfig{
			ProminenceIncrement: cfg.ProminenceIncrement,
			MaxIterations:       cfg.MaxIterations,
		}),
	}, nil
}

// Config returns the effective configuration after defaulting.
func (c *Calibrator) Config() Config {
	return c.cfg
}

// Calibrate produces a calibrated wavenumber axis from an
// excitation-reference trace (e.g. a neon lamp spectrum) and an
// emission-reference trace (e.g. an acetonitrile spectrum). Both traces are
// median-filtered and min-max normalized before peak detection.
//
// The returned Result always carries whatever stage data was computed; on
// error its State is [StateFailed] and Err matches the returned error.
func (c *Calibrator) Calibrate(excitation, emission []float64) (Result, error) {
	res := Result{State: StateUninitialized}

	exc, err := c.prepareTrace(excitation)
	if err != nil {
		return res.fail(fmt.Errorf("excitation trace: %w", err))
	}

	emi, err := c.prepareTrace(emission)
	if err != nil {
		return res.fail(fmt.Errorf("emission trace: %w", err))
	}

	rough, err := c.roughStage(&res, exc)
	if err != nil {
		return res.fail(err)
	}

	res.State = StateRoughCalibrated

	final, err := c.fineStage(&res, emi, rough)
	if err != nil {
		return res.fail(err)
	}

	res.State = StateFineCalibrated
	res.Wavenumbers = final

	return res, nil
}

// Process calibrates from the two reference traces and pairs the resulting
// axis with a sample's intensity trace.
func (c *Calibrator) Process(sample, excitation, emission []float64) (raman.Spectrum, Result, error) {
	res, err := c.Calibrate(excitation, emission)
	if err != nil {
		return raman.Spectrum{}, res, err
	}

	spec, err := raman.New(res.Wavenumbers, sample)
	if err != nil {
		return raman.Spectrum{}, res, fmt.Errorf("sample trace: %w", err)
	}

	return spec, res, nil
}

// prepareTrace median-filters and min-max normalizes a calibration trace.
func (c *Calibrator) prepareTrace(trace []float64) ([]float64, error) {
	smoothed, err := median.Filter(trace, c.cfg.KernelSize)
	if err != nil {
		return nil, err
	}

	return raman.MinMaxNormalize(smoothed), nil
}

// roughStage fits pixel index to wavelength against the excitation
// reference table and converts the resulting wavelength axis to Raman
// shift. The returned axis spans every detector pixel.
func (c *Calibrator) roughStage(res *Result, exc []float64) ([]float64, error) {
	found, err := c.finder.Find(exc, len(c.cfg.ExcitationReferenceNM))
	if err != nil {
		return nil, err
	}

	res.addWarnings(StageRough, found.Warnings)

	observed := intsToFloats(found.Peaks)
	pixels := pixelAxis(len(exc))

	wavelengths, fitness, err := rescale.Rescale(pixels, observed, c.cfg.ExcitationReferenceNM, 1)
	if err != nil {
		return nil, fmt.Errorf("rough calibration: %w", err)
	}

	res.Rough = StageResult{Peaks: found.Peaks, Observed: observed, Fitness: fitness}

	if fitness > c.cfg.RoughThreshold {
		return nil, fmt.Errorf("%w: %.3g > %.3g", ErrRoughResidual, fitness, c.cfg.RoughThreshold)
	}

	return raman.Shift(wavelengths, c.cfg.ExcitationWavelengthNM)
}

// fineStage fits rough wavenumbers at the detected emission peaks against
// the reference compound's shift lines and applies the correction to the
// whole rough axis.
func (c *Calibrator) fineStage(res *Result, emi, rough []float64) ([]float64, error) {
	found, err := c.finder.Find(emi, len(c.cfg.EmissionReferenceCM1))
	if err != nil {
		return nil, err
	}

	res.addWarnings(StageFine, found.Warnings)

	observed, err := c.observedWavenumbers(res, emi, rough, found.Peaks)
	if err != nil {
		return nil, fmt.Errorf("fine calibration: %w", err)
	}

	final, fitness, err := rescale.Rescale(rough, observed, c.cfg.EmissionReferenceCM1, 1)
	if err != nil {
		return nil, fmt.Errorf("fine calibration: %w", err)
	}

	res.Fine = StageResult{Peaks: found.Peaks, Observed: observed, Fitness: fitness}

	if fitness > c.cfg.FineThreshold {
		return nil, fmt.Errorf("%w: %.3g > %.3g", ErrFineResidual, fitness, c.cfg.FineThreshold)
	}

	return final, nil
}

// observedWavenumbers reads the rough axis at the detected peak positions,
// either directly at integer indices or at sub-pixel positions from the
// configured refinement.
func (c *Calibrator) observedWavenumbers(res *Result, emi, rough []float64, peakIdx []int) ([]float64, error) {
	if c.cfg.Refinement == 0 {
		out := make([]float64, len(peakIdx))
		for i, p := range peakIdx {
			if p >= len(rough) {
				return nil, fmt.Errorf("peak index %d outside rough axis of %d entries", p, len(rough))
			}

			out[i] = rough[p]
		}

		return out, nil
	}

	refined, err := peaks.Refine(emi, peakIdx, peaks.RefineConfig{
		Method: c.cfg.Refinement,
		Window: c.cfg.RefineWindow,
	})
	if err != nil {
		return nil, err
	}

	res.addWarnings(StageFine, refined.Warnings)

	out := make([]float64, len(refined.Positions))
	for i, pos := range refined.Positions {
		out[i], err = interp.SampleAt(rough, pos)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pixelAxis(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

func intsToFloats(in []int) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}

	return out
}
