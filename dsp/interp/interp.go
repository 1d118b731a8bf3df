package interp

import (
	"fmt"
	"math"
)

// Lerp interpolates linearly between x0 and x1. frac is the relative
// position between the two values, with 0 returning x0 and 1 returning x1.
func Lerp(x0, x1, frac float64) float64 {
	return x0 + frac*(x1-x0)
}

// SampleAt reads axis at a fractional position by splitting pos into its
// integer and fractional components and interpolating between the two
// bracketing entries. pos must lie within [0, len(axis)-1]; an exact hit on
// the last entry is returned directly.
func SampleAt(axis []float64, pos float64) (float64, error) {
	if len(axis) == 0 {
		return 0, fmt.Errorf("interp: axis is empty")
	}

	if math.IsNaN(pos) || pos < 0 || pos > float64(len(axis)-1) {
		return 0, fmt.Errorf("interp: position %v outside axis range [0, %d]", pos, len(axis)-1)
	}

	i := int(math.Floor(pos))
	frac := pos - float64(i)

	if i == len(axis)-1 {
		return axis[i], nil
	}

	return Lerp(axis[i], axis[i+1], frac), nil
}
