package fixed

import "strconv"

// Fixed is a Q31.32 fixed-point value: the real number raw/2^32.
//
// The zero value is 0. Values are plain integers, so the built-in comparison
// operators compare them numerically. Arithmetic must go through the methods;
// the built-in * and / operate on the raw encoding.
type Fixed int64

// FromRaw returns the Fixed whose encoding is raw. No validation is done.
func FromRaw(raw int64) Fixed {
	return Fixed(raw)
}

// Raw returns the encoding of x.
func (x Fixed) Raw() int64 {
	return int64(x)
}

// Add returns x+y, wrapping around on overflow.
func (x Fixed) Add(y Fixed) Fixed {
	return x + y
}

// Sub returns x-y, wrapping around on overflow.
func (x Fixed) Sub(y Fixed) Fixed {
	return x - y
}

// Neg returns -x. Neg(MinValue) is MinValue.
func (x Fixed) Neg() Fixed {
	return -x
}

// Mul returns x*y.
//
// Both operands are split into integer and fractional halves and the partial
// products are summed; the fractional*fractional term is shifted down with
// truncation, so the result is the exact product rounded toward negative
// infinity (error below one step) unless the integer part overflows, in which
// case it wraps.
func (x Fixed) Mul(y Fixed) Fixed {
	xi, xf := int64(x)>>FracBits, uint64(x)&fracMask
	yi, yf := int64(y)>>FracBits, uint64(y)&fracMask

	return Fixed(xi*yi<<FracBits +
		xi*int64(yf) + yi*int64(xf) +
		int64(xf*yf>>FracBits))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Fixed) Cmp(y Fixed) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Fixed) Sign() int {
	return x.Cmp(0)
}

// Abs returns |x|. Abs(MinValue) is MinValue.
func (x Fixed) Abs() Fixed {
	t := int64(x) >> 63
	return Fixed((int64(x) ^ t) - t)
}

// Min returns the smaller of x and y.
func Min(x, y Fixed) Fixed {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Fixed) Fixed {
	if x > y {
		return x
	}
	return y
}

// Clamp limits x to [lo, hi]. The lower bound is applied first, so hi wins
// when lo > hi.
func Clamp(x, lo, hi Fixed) Fixed {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}

// String formats x in decimal with at most nine fractional digits, rounded
// to nearest and with trailing zeros removed. The conversion is exact integer
// arithmetic and does not go through float64.
func (x Fixed) String() string {
	neg := x < 0
	mag := uint64(x)
	if neg {
		mag = uint64(-x)
	}

	ip := mag >> FracBits
	frac := ((mag&fracMask)*1e9 + halfRaw) >> FracBits
	if frac == 1e9 {
		ip++
		frac = 0
	}

	if ip == 0 && frac == 0 {
		return "0"
	}

	buf := make([]byte, 0, 24)
	if neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, ip, 10)
	if frac == 0 {
		return string(buf)
	}

	var digits [9]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte('0' + frac%10)
		frac /= 10
	}
	n := len(digits)
	for digits[n-1] == '0' {
		n--
	}

	buf = append(buf, '.')
	buf = append(buf, digits[:n]...)
	return string(buf)
}
