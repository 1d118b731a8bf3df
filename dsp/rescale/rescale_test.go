package rescale

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-raman/internal/testutil"
)

func TestFitTwoPointsExact(t *testing.T) {
	observed := []float64{10, 20}
	groundtruth := []float64{500, 600}

	p, err := Fit(observed, groundtruth, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, p.RSS, 0, 1e-18)
	testutil.RequireNear(t, p.Eval(10), 500, 1e-9)
	testutil.RequireNear(t, p.Eval(20), 600, 1e-9)

	// offset 400, scale 10
	testutil.RequireNear(t, p.Coeffs[0], 400, 1e-9)
	testutil.RequireNear(t, p.Coeffs[1], 10, 1e-9)
}

func TestRescaleAffine(t *testing.T) {
	axis := []float64{10, 12.5, 15, 17.5, 20}

	out, rss, err := Rescale(axis, []float64{10, 20}, []float64{500, 600}, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, rss, 0, 1e-18)
	testutil.RequireSliceNearlyEqual(t, out, []float64{500, 525, 550, 575, 600}, 1e-9)
}

func TestFitOverdeterminedResidual(t *testing.T) {
	// best-fit line through (0,0), (1,1), (2,2.5) leaves RSS = 1/24
	p, err := Fit([]float64{0, 1, 2}, []float64{0, 1, 2.5}, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, p.RSS, 1.0/24.0, 1e-12)
	testutil.RequireNear(t, p.Coeffs[1], 1.25, 1e-12)
}

func TestFitQuadratic(t *testing.T) {
	// y = 2x^2 - 3x + 1
	observed := []float64{-1, 0, 1, 2}
	groundtruth := make([]float64, len(observed))
	for i, x := range observed {
		groundtruth[i] = 2*x*x - 3*x + 1
	}

	p, err := Fit(observed, groundtruth, 2)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, p.RSS, 0, 1e-18)
	testutil.RequireSliceNearlyEqual(t, p.Coeffs, []float64{1, -3, 2}, 1e-9)
	testutil.RequireNear(t, p.Eval(3), 10, 1e-9)
}

func TestFitUnderdetermined(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		degree int
	}{
		{"one point linear", 1, 1},
		{"two points quadratic", 2, 2},
		{"no points", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := make([]float64, tt.n)
			ys := make([]float64, tt.n)
			for i := range xs {
				xs[i] = float64(i)
				ys[i] = float64(i)
			}

			_, err := Fit(xs, ys, tt.degree)
			if !errors.Is(err, ErrUnderdetermined) {
				t.Fatalf("err = %v, want ErrUnderdetermined", err)
			}
		})
	}
}

func TestFitLengthMismatch(t *testing.T) {
	_, err := Fit([]float64{1, 2, 3}, []float64{1, 2}, 1)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestFitNonFinite(t *testing.T) {
	tests := []struct {
		name        string
		observed    []float64
		groundtruth []float64
	}{
		{"nan observed", []float64{1, math.NaN()}, []float64{1, 2}},
		{"inf observed", []float64{1, math.Inf(1)}, []float64{1, 2}},
		{"nan groundtruth", []float64{1, 2}, []float64{1, math.NaN()}},
		{"neg inf groundtruth", []float64{1, 2}, []float64{math.Inf(-1), 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.observed, tt.groundtruth, 1)
			if !errors.Is(err, ErrNonFinite) {
				t.Fatalf("err = %v, want ErrNonFinite", err)
			}
		})
	}
}

func TestFitInvalidDegree(t *testing.T) {
	if _, err := Fit([]float64{1, 2}, []float64{1, 2}, 0); err == nil {
		t.Fatal("degree 0 expected error, got nil")
	}
}
