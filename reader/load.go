package reader

import (
	"path/filepath"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/cwbudde/algo-raman/calibrate"
	"github.com/cwbudde/algo-raman/raman"
)

// Default glob patterns for LoadDirectory.
const (
	DefaultSampleGlob     = "*.csv"
	DefaultExcitationGlob = "*neon*.csv"
	DefaultEmissionGlob   = "*aceto*.csv"
)

// LoadDirectory loads every OpenRAMAN sample trace in dir that matches
// sampleGlob, calibrates a shared wavenumber axis from the first files
// matching excitationGlob and emissionGlob, and returns the calibrated
// spectra keyed by file name without extension. Empty glob strings take
// the package defaults; note the default sample glob also matches the
// calibration files, so they appear among the results.
func LoadDirectory(dir, sampleGlob, excitationGlob, emissionGlob string, cfg calibrate.Config) (map[string]raman.Spectrum, calibrate.Result, error) {
	if sampleGlob == "" {
		sampleGlob = DefaultSampleGlob
	}

	if excitationGlob == "" {
		excitationGlob = DefaultExcitationGlob
	}

	if emissionGlob == "" {
		emissionGlob = DefaultEmissionGlob
	}

	excPath, err := firstMatch(dir, excitationGlob)
	if err != nil {
		return nil, calibrate.Result{}, err
	}

	emiPath, err := firstMatch(dir, emissionGlob)
	if err != nil {
		return nil, calibrate.Result{}, err
	}

	excitation, err := OpenRamanCSVFile(excPath)
	if err != nil {
		return nil, calibrate.Result{}, err
	}

	emission, err := OpenRamanCSVFile(emiPath)
	if err != nil {
		return nil, calibrate.Result{}, err
	}

	cal, err := calibrate.New(cfg)
	if err != nil {
		return nil, calibrate.Result{}, err
	}

	res, err := cal.Calibrate(excitation, emission)
	if err != nil {
		return nil, res, err
	}

	samplePaths, err := filepath.Glob(filepath.Join(dir, sampleGlob))
	if err != nil {
		return nil, res, pkgerrors.Wrapf(err, "reader: glob %s", sampleGlob)
	}

	sort.Strings(samplePaths)

	spectra := make(map[string]raman.Spectrum, len(samplePaths))

	for _, path := range samplePaths {
		intensities, err := OpenRamanCSVFile(path)
		if err != nil {
			return nil, res, err
		}

		spec, err := raman.New(res.Wavenumbers, intensities)
		if err != nil {
			return nil, res, pkgerrors.Wrapf(err, "pair %s with calibrated axis", path)
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		spectra[name] = spec
	}

	return spectra, res, nil
}

func firstMatch(dir, glob string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return "", pkgerrors.Wrapf(err, "reader: glob %s", glob)
	}

	if len(matches) == 0 {
		return "", pkgerrors.Errorf("reader: no file in %s matches %s", dir, glob)
	}

	sort.Strings(matches)

	return matches[0], nil
}
