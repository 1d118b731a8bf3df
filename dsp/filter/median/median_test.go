package median

import (
	"testing"

	"github.com/cwbudde/algo-raman/internal/testutil"
)

func TestFilterKernelValidation(t *testing.T) {
	tests := []struct {
		name   string
		kernel int
	}{
		{"zero", 0},
		{"negative", -3},
		{"even", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Filter([]float64{1, 2, 3}, tt.kernel)
			if err == nil {
				t.Fatalf("Filter(kernel=%d) expected error, got nil", tt.kernel)
			}
		})
	}
}

func TestFilterIdentityKernel(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}

	out, err := Filter(in, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, in, 0)

	// must be a copy, not an alias
	out[0] = 99
	if in[0] == 99 {
		t.Fatal("Filter(kernel=1) aliases its input")
	}
}

func TestFilterRemovesSpike(t *testing.T) {
	in := []float64{1, 1, 100, 1, 1}

	out, err := Filter(in, 3)
	if err != nil {
		t.Fatal(err)
	}

	if out[2] != 1 {
		t.Errorf("spike survived median filter: out[2] = %v, want 1", out[2])
	}
}

func TestFilterZeroPaddedBoundaries(t *testing.T) {
	// with kernel 3 and zero padding, the first window is [0, 5, 5] and the
	// last is [5, 5, 0], both with median 5
	in := []float64{5, 5, 5, 5}

	out, err := Filter(in, 3)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{5, 5, 5, 5}, 0)

	// larger kernel pulls the boundary median down to the padding
	out, err = Filter(in, 5)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{5, 5, 5, 5}, 0)

	out, err = Filter([]float64{5, 5}, 5)
	if err != nil {
		t.Fatal(err)
	}

	// windows are mostly padding here
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0}, 0)
}

func TestFilterKnownValues(t *testing.T) {
	in := []float64{2, 6, 5, 4, 0, 3, 5, 7, 9, 2}

	out, err := Filter(in, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{2, 5, 5, 4, 3, 3, 5, 7, 7, 2}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}

func TestFilterEmptyInput(t *testing.T) {
	out, err := Filter(nil, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 0 {
		t.Errorf("length = %d, want 0", len(out))
	}
}
