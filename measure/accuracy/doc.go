// Package accuracy measures fmath functions against float64 references.
//
// A sweep evaluates a function on a uniform grid of fixed-point inputs and
// compares every result with the float64 reference evaluated at the same
// (already quantized) input, so input rounding is not counted as error.
package accuracy
