package fixed

import (
	"math"

	"github.com/cwbudde/algo-fixed/internal/bitutil"
)

// Quo returns x/y rounded to nearest, or ErrDivisionByZero when y is zero.
//
// A quotient that does not fit the encoding saturates to MaxValue or
// MinValue according to the signs of the operands.
func (x Fixed) Quo(y Fixed) (Fixed, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return quo(int64(x), int64(y)), nil
}

// Div returns x/y like Quo but panics with ErrDivisionByZero when y is zero,
// the same way Go's integer division does. Use it where the divisor is known
// to be nonzero.
func (x Fixed) Div(y Fixed) Fixed {
	if y == 0 {
		panic(ErrDivisionByZero)
	}
	return quo(int64(x), int64(y))
}

// Rem returns the remainder of the raw encodings, x.Raw() % y.Raw(), with the
// sign of x. This is not a reduction modulo y in the real numbers; callers
// rely on the raw semantics. Rem panics with ErrDivisionByZero when y is zero.
func (x Fixed) Rem(y Fixed) Fixed {
	if y == 0 {
		panic(ErrDivisionByZero)
	}
	return x % y
}

// quo is a restoring binary long division on the magnitudes. The remainder is
// normalized with a leading-zero count so each step retires as many quotient
// bits as possible; one extra quotient bit is produced and used to round.
func quo(xl, yl int64) Fixed {
	rem := magnitude(xl)
	div := magnitude(yl)
	var q uint64

	bitPos := FracBits + 1
	for div&0xF == 0 && bitPos >= 4 {
		div >>= 4
		bitPos -= 4
	}

	for rem != 0 && bitPos >= 0 {
		shift := min(bitutil.CountLeadingZeroes(rem), bitPos)
		rem <<= uint(shift)
		bitPos -= shift

		d := rem / div
		rem %= div
		q += d << uint(bitPos)

		if d&^(math.MaxUint64>>uint(bitPos)) != 0 {
			if xl^yl >= 0 {
				return MaxValue
			}
			return MinValue
		}

		rem <<= 1
		bitPos--
	}

	q++
	result := int64(q >> 1)
	if xl^yl < 0 {
		result = -result
	}
	return Fixed(result)
}

// magnitude returns |v| as an unsigned value; |MinInt64| is 1<<63.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
