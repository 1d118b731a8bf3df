package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-raman/internal/testutil"
)

func TestGenerateHann(t *testing.T) {
	got, err := Generate(TypeHann, 5)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0.5, 0}, 1e-12)
}

func TestGenerateSymmetry(t *testing.T) {
	types := []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeGauss}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			got, err := Generate(typ, 64)
			if err != nil {
				t.Fatal(err)
			}

			for i := range got {
				testutil.RequireNear(t, got[i], got[len(got)-1-i], 1e-12)
			}

			// unity at the midpoint of an odd-length window
			odd, err := Generate(typ, 65)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireNear(t, odd[32], 1, 1e-12)
		})
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if _, err := Generate(TypeHann, 0); err == nil {
		t.Error("zero length expected error, got nil")
	}

	if _, err := Generate(Type(99), 8); !errors.Is(err, ErrUnknownType) {
		t.Error("unknown type expected ErrUnknownType")
	}

	got, err := Generate(TypeBlackman, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{1}, 0)
}

func TestApplyInPlace(t *testing.T) {
	samples := []float64{2, 2, 2, 2, 2}

	coeffs, err := Generate(TypeHann, 5)
	if err != nil {
		t.Fatal(err)
	}

	if err := ApplyInPlace(samples, coeffs); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, samples, []float64{0, 1, 2, 1, 0}, 1e-12)

	if err := ApplyInPlace(samples[:3], coeffs); err == nil {
		t.Error("length mismatch expected error, got nil")
	}
}

func TestCoherentGain(t *testing.T) {
	coeffs, err := Generate(TypeHann, 1024)
	if err != nil {
		t.Fatal(err)
	}

	gain, err := CoherentGain(coeffs)
	if err != nil {
		t.Fatal(err)
	}

	// the Hann window's coherent gain converges to 0.5
	if math.Abs(gain-0.5) > 1e-3 {
		t.Fatalf("hann coherent gain = %v, want ≈0.5", gain)
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Error("empty coefficients expected error, got nil")
	}
}
