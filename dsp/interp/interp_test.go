package interp

import (
	"testing"

	"github.com/cwbudde/algo-raman/internal/testutil"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		x0   float64
		x1   float64
		frac float64
		want float64
	}{
		{"midpoint", 5, 10, 0.5, 7.5},
		{"start", 5, 10, 0, 5},
		{"end", 5, 10, 1, 10},
		{"tenth", 3, 4, 0.1, 3.1},
		{"descending", 10, 5, 0.5, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.x0, tt.x1, tt.frac)
			testutil.RequireNear(t, got, tt.want, 1e-12)
		})
	}
}

func TestSampleAt(t *testing.T) {
	axis := []float64{100, 110, 120, 130}

	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{"integer position", 2, 120},
		{"halfway", 1.5, 115},
		{"near start", 0.25, 102.5},
		{"last entry", 3, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleAt(axis, tt.pos)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireNear(t, got, tt.want, 1e-12)
		})
	}
}

func TestSampleAtOutOfRange(t *testing.T) {
	axis := []float64{100, 110}

	for _, pos := range []float64{-0.1, 1.01, 5} {
		if _, err := SampleAt(axis, pos); err == nil {
			t.Errorf("SampleAt(%v) expected error, got nil", pos)
		}
	}

	if _, err := SampleAt(nil, 0); err == nil {
		t.Error("SampleAt on empty axis expected error, got nil")
	}
}
