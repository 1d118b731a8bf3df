// Package rescale fits least-squares polynomial axis transforms.
//
// Given parallel sequences of observed and ground-truth positions, [Fit]
// solves for the polynomial mapping one onto the other and reports the
// residual sum of squares as a fit-quality metric. [Rescale] applies such a
// fit to an entire axis in one call.
package rescale
