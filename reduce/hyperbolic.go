package reduce

// Hyperbolic reduces a non-negative argument above HyperbolicBound by
// subtracting q*ln2, where q < 32 is built one bit at a time from 16*ln2
// down to ln2. The result r satisfies x = r + q*ln2 and fits the hyperbolic
// kernel.
func Hyperbolic(x int64) (int64, uint) {
	var q uint
	for i := range 5 {
		if step := int64(Ln2x16) >> i; x > step {
			x -= step
			q |= 1 << (4 - i)
		}
	}
	return x, q
}

// ExpandHyperbolic turns the kernel's (cosh r, sinh r) into
// (cosh(r+q*ln2), sinh(r+q*ln2)).
//
// With e^r = cosh r + sinh r and e^-r = cosh r - sinh r, multiplying by 2^q
// is a shift on each exponential, and the halved sum and difference give the
// results. Both are computed on magnitudes in unsigned arithmetic.
func ExpandHyperbolic(x, y int64, q uint) (cosh, sinh int64) {
	nx, ny := magnitude(x), magnitude(y)
	up := (nx + ny) << q
	down := (nx - ny) >> q
	return int64((up + down) >> 1), int64((up - down) >> 1)
}

// Log scales a positive x by a power of two into [LogMin, LogMax] and
// returns the scaled value m and exponent e with x ~ m*2^e. Right shifts
// drop low bits. A non-positive x is returned unchanged with e == 0.
func Log(x int64) (int64, int) {
	if x <= 0 {
		return x, 0
	}

	e := 0
	for x < LogMin {
		x <<= 1
		e--
	}
	for x > LogMax {
		x >>= 1
		e++
	}
	return x, e
}

func magnitude(v int64) uint64 {
	if v > 0 {
		return uint64(v)
	}
	return uint64(-v)
}
