// Package interp provides linear interpolation primitives for axis lookups.
//
// Peak refinement produces fractional sample positions; [SampleAt] reads a
// calibrated axis at such a position by interpolating between the two
// bracketing integer entries.
package interp
