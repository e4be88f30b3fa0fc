// Package fixed implements a deterministic signed 64-bit binary fixed-point
// number with 32 fractional bits (Q31.32).
//
// A [Fixed] stores raw/2^32 in a plain int64. Every operation is defined on
// the integer encoding only, so results are bit-identical on every platform
// and every Go compiler: there is no floating-point hardware involved once a
// value has been constructed.
//
// Overflow follows a fixed policy instead of failing:
//   - Add, Sub and Neg wrap around in two's complement.
//   - Mul truncates the fractional product toward negative infinity.
//   - Div and Quo round to nearest and saturate to [MaxValue] or [MinValue].
//
// Division by zero is the only operation that reports an error
// ([ErrDivisionByZero]).
//
// The representable range is roughly ±2147483648 with a step of 2^-32
// (about nine significant decimal digits after the point).
package fixed
