package fixed

// Floor returns the greatest integer value less than or equal to x.
func (x Fixed) Floor() Fixed {
	return x &^ fracMask
}

// Ceil returns the least integer value greater than or equal to x.
func (x Fixed) Ceil() Fixed {
	if x&fracMask == 0 {
		return x
	}
	return x.Floor() + One
}

// Round returns the nearest integer value, rounding half to even.
func (x Fixed) Round() Fixed {
	floor := x.Floor()
	switch low := x & fracMask; {
	case low < halfRaw:
		return floor
	case low > halfRaw:
		return floor + One
	case floor&One != 0:
		return floor + One
	default:
		return floor
	}
}

// Frac returns the fractional part x - x.Floor(), which is never negative.
func (x Fixed) Frac() Fixed {
	return x & fracMask
}
