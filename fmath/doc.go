// Package fmath provides deterministic elementary functions on
// [fixed.Fixed] values.
//
// The trigonometric, hyperbolic, exponential and logarithmic functions are
// evaluated with CORDIC kernels after range reduction. Square root uses a
// bitwise digit recurrence. No function touches floating point, so results
// are bit-identical across platforms, and each call runs a fixed number of
// iterations.
//
// Typical absolute errors over the main domains:
//
//	Sin, Cos             ~5e-9
//	Atan, Atan2          ~3e-9
//	Asin, Acos           ~1e-8 (worse within 1e-3 of +-1)
//	Tanh                 ~3e-9
//	Log                  ~1e-8
//	Sqrt                 ~3e-10
//
// Sinh, Cosh and Exp have a relative error around 1e-8.
//
// Out-of-domain arguments never fail. Inverse trigonometric functions clamp
// to the boundary angle, hyperbolic functions saturate, and Log and Sqrt
// return 0 for arguments they cannot represent a result for.
package fmath
