package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-raman/calibrate"
	"github.com/cwbudde/algo-raman/internal/testutil"
	"github.com/cwbudde/algo-raman/raman"
)

// The directory fixture models the same linear 1000-pixel detector used in
// the calibrate tests: reference tables are generated from the known
// pixel-to-wavelength model so both stage fits close with tiny residuals.
const (
	fixturePixels    = 1000
	fixtureIntercept = 580.0
	fixtureSlope     = 0.08
	fixtureLaserNM   = 532.0
)

func fixtureConfig() calibrate.Config {
	excPixels := []int{60, 120, 180, 240, 300, 360, 420, 480, 540, 600, 660, 720, 780, 840, 900}
	emiPixels := []int{150, 350, 550, 700, 850}

	refNM := make([]float64, len(excPixels))
	for i, p := range excPixels {
		refNM[i] = fixtureIntercept + fixtureSlope*float64(p)
	}

	refCM1 := make([]float64, len(emiPixels))
	for i, p := range emiPixels {
		nm := fixtureIntercept + fixtureSlope*float64(p)
		refCM1[i] = raman.ShiftValue(nm, fixtureLaserNM)
	}

	return calibrate.Config{
		ExcitationWavelengthNM: fixtureLaserNM,
		RoughThreshold:         1e-6,
		FineThreshold:          1e-6,
		ExcitationReferenceNM:  refNM,
		EmissionReferenceCM1:   refCM1,
	}
}

func writeOpenRamanCSV(t *testing.T, path string, trace []float64) {
	t.Helper()

	var b strings.Builder
	b.WriteString("Pixel,Intensity (a.u.)\n")
	for i, v := range trace {
		fmt.Fprintf(&b, "%d,%g\n", i, v)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	excCenters := []float64{60, 120, 180, 240, 300, 360, 420, 480, 540, 600, 660, 720, 780, 840, 900}
	emiCenters := []float64{150, 350, 550, 700, 850}

	writeOpenRamanCSV(t, filepath.Join(dir, "neon_lamp.csv"),
		testutil.UniformPeaks(fixturePixels, excCenters, 2))
	writeOpenRamanCSV(t, filepath.Join(dir, "acetonitrile_ref.csv"),
		testutil.UniformPeaks(fixturePixels, emiCenters, 2))
	writeOpenRamanCSV(t, filepath.Join(dir, "sample_a.csv"),
		testutil.UniformPeaks(fixturePixels, []float64{400, 600}, 3))
	writeOpenRamanCSV(t, filepath.Join(dir, "sample_b.csv"),
		testutil.UniformPeaks(fixturePixels, []float64{250, 750}, 3))

	spectra, res, err := LoadDirectory(dir, "", "", "", fixtureConfig())
	if err != nil {
		t.Fatal(err)
	}

	if res.State != calibrate.StateFineCalibrated {
		t.Fatalf("state = %v, want fine-calibrated", res.State)
	}

	// the default sample glob matches the calibration files too
	if len(spectra) != 4 {
		t.Fatalf("got %d spectra, want 4", len(spectra))
	}

	for _, name := range []string{"neon_lamp", "acetonitrile_ref", "sample_a", "sample_b"} {
		if _, ok := spectra[name]; !ok {
			t.Fatalf("missing spectrum %q", name)
		}
	}

	sample := spectra["sample_a"]
	if sample.Len() != fixturePixels {
		t.Fatalf("sample length = %d, want %d", sample.Len(), fixturePixels)
	}

	testutil.RequireSliceNearlyEqual(t, sample.Wavenumbers(), res.Wavenumbers, 0)

	// every loaded spectrum shares the one calibrated axis
	testutil.RequireSliceNearlyEqual(t, spectra["sample_b"].Wavenumbers(), res.Wavenumbers, 0)
}

func TestLoadDirectoryMissingCalibration(t *testing.T) {
	dir := t.TempDir()

	writeOpenRamanCSV(t, filepath.Join(dir, "sample_a.csv"),
		testutil.UniformPeaks(fixturePixels, []float64{400}, 3))

	if _, _, err := LoadDirectory(dir, "", "", "", fixtureConfig()); err == nil {
		t.Fatal("expected error for missing calibration files, got nil")
	}
}

func TestLoadDirectoryCustomGlobs(t *testing.T) {
	dir := t.TempDir()

	excCenters := []float64{60, 120, 180, 240, 300, 360, 420, 480, 540, 600, 660, 720, 780, 840, 900}
	emiCenters := []float64{150, 350, 550, 700, 850}

	writeOpenRamanCSV(t, filepath.Join(dir, "cal_exc.csv"),
		testutil.UniformPeaks(fixturePixels, excCenters, 2))
	writeOpenRamanCSV(t, filepath.Join(dir, "cal_emi.csv"),
		testutil.UniformPeaks(fixturePixels, emiCenters, 2))
	writeOpenRamanCSV(t, filepath.Join(dir, "run_001.csv"),
		testutil.UniformPeaks(fixturePixels, []float64{500}, 3))

	spectra, _, err := LoadDirectory(dir, "run_*.csv", "cal_exc.csv", "cal_emi.csv", fixtureConfig())
	if err != nil {
		t.Fatal(err)
	}

	if len(spectra) != 1 {
		t.Fatalf("got %d spectra, want 1", len(spectra))
	}

	if _, ok := spectra["run_001"]; !ok {
		t.Fatal("missing spectrum run_001")
	}
}
