// Package cordic implements the CORDIC pseudo-rotation kernels used by the
// fixed-point transcendental functions.
//
// All values are raw Q31.32 integers (see package fixed). There are four
// kernels: circular and hyperbolic, each in rotation mode (drive z to zero)
// and vectoring mode (drive y to zero). They run a fixed number of steps
// with no data-dependent early exit, so every call has the same cost.
//
// The gain of each iteration sequence is not divided out afterwards. Callers
// pre-multiply the seed vector by [Gain] or [HyperbolicGain] instead.
package cordic
