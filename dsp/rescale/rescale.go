package rescale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by fitting functions.
var (
	ErrLengthMismatch  = errors.New("rescale: observed and groundtruth must have the same length")
	ErrUnderdetermined = errors.New("rescale: not enough correspondence points for the polynomial degree")
	ErrNonFinite       = errors.New("rescale: input contains NaN or Inf")
)

// Poly is a fitted polynomial transform from observed to ground-truth
// coordinates.
type Poly struct {
	// Coeffs holds the polynomial coefficients in ascending power order.
	Coeffs []float64
	// RSS is the residual sum of squares of the fit at the correspondence
	// points (not over a whole rescaled axis). Lower is better; an exactly
	// determined fit yields zero.
	RSS float64
}

// Fit computes the least-squares polynomial of the given degree mapping
// observed positions to ground-truth positions. The two slices pair by
// index. At least degree+1 points are required.
func Fit(observed, groundtruth []float64, degree int) (Poly, error) {
	if degree < 1 {
		return Poly{}, fmt.Errorf("rescale: polynomial degree must be >= 1: %d", degree)
	}

	if len(observed) != len(groundtruth) {
		return Poly{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(observed), len(groundtruth))
	}

	if len(observed) <= degree {
		return Poly{}, fmt.Errorf("%w: %d points for degree %d", ErrUnderdetermined, len(observed), degree)
	}

	if !allFinite(observed) || !allFinite(groundtruth) {
		return Poly{}, ErrNonFinite
	}

	n := len(observed)
	terms := degree + 1

	// Vandermonde system: A(i,j) = observed[i]^j
	a := mat.NewDense(n, terms, nil)
	b := mat.NewVecDense(n, nil)

	for i, x := range observed {
		pow := 1.0
		for j := 0; j < terms; j++ {
			a.Set(i, j, pow)
			pow *= x
		}

		b.SetVec(i, groundtruth[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var coeffs mat.VecDense

	err := qr.SolveVecTo(&coeffs, false, b)
	if err != nil {
		return Poly{}, fmt.Errorf("rescale: least-squares solve failed: %w", err)
	}

	p := Poly{Coeffs: make([]float64, terms)}
	for j := 0; j < terms; j++ {
		p.Coeffs[j] = coeffs.AtVec(j)
	}

	resid := make([]float64, n)
	for i, x := range observed {
		resid[i] = p.Eval(x) - groundtruth[i]
	}

	p.RSS = vecmath.DotProduct(resid, resid)

	return p, nil
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	y := 0.0
	for j := len(p.Coeffs) - 1; j >= 0; j-- {
		y = y*x + p.Coeffs[j]
	}

	return y
}

// Apply evaluates the polynomial over every element of axis, returning a
// new slice of the same length.
func (p Poly) Apply(axis []float64) []float64 {
	out := make([]float64, len(axis))
	for i, x := range axis {
		out[i] = p.Eval(x)
	}

	return out
}

// Rescale fits the polynomial of the given degree mapping observed to
// groundtruth and applies it to axis. It returns the rescaled axis and the
// residual sum of squares of the fit.
func Rescale(axis, observed, groundtruth []float64, degree int) ([]float64, float64, error) {
	p, err := Fit(observed, groundtruth, degree)
	if err != nil {
		return nil, 0, err
	}

	return p.Apply(axis), p.RSS, nil
}

func allFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
