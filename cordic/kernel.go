package cordic

// State is the vector and residual angle threaded through a kernel.
type State struct {
	Z int64 // angle residual (rotation) or accumulated angle (vectoring)
	X int64
	Y int64
}

// Rotate runs circular rotation mode. It turns (X, Y) by Z radians while
// driving Z to zero. Seeding X with Gain() and Y with 0 yields
// (cos Z, sin Z). Z must lie in [-pi/2, pi/2].
func Rotate(s State) State {
	for i := range Iterations {
		tx, ty, tz := s.X>>i, s.Y>>i, atanTable[i]
		if s.Z > 0 {
			s.X -= ty
			s.Y += tx
			s.Z -= tz
		} else {
			s.X += ty
			s.Y -= tx
			s.Z += tz
		}
	}
	return s
}

// Vector runs circular vectoring mode. It turns (X, Y) onto the positive x
// axis and accumulates the angle turned into Z, so with X > 0 the result has
// Z += atan(Y/X).
func Vector(s State) State {
	for i := range Iterations {
		tx, ty, tz := s.X>>i, s.Y>>i, atanTable[i]
		if -s.Y > 0 {
			s.X -= ty
			s.Z -= tz
			s.Y += tx
		} else {
			s.X += ty
			s.Z += tz
			s.Y -= tx
		}
	}
	return s
}

// RotateHyperbolic runs hyperbolic rotation mode. Seeding X with
// HyperbolicGain() and Y with 0 yields (cosh Z, sinh Z) for |Z| up to about
// 1.118.
func RotateHyperbolic(s State) State {
	for i := 1; i < Iterations; i++ {
		s = hyperbolicStep(s, i)
		if repeated(i) {
			s = hyperbolicStep(s, i)
		}
	}
	return s
}

// VectorHyperbolic runs hyperbolic vectoring mode. It drives Y to zero and
// accumulates atanh(Y/X) into Z.
func VectorHyperbolic(s State) State {
	for i := 1; i < Iterations; i++ {
		s = hyperbolicVectorStep(s, i)
		if repeated(i) {
			s = hyperbolicVectorStep(s, i)
		}
	}
	return s
}

func hyperbolicStep(s State, i int) State {
	tx, ty, tz := s.X>>i, s.Y>>i, atanhTable[i]
	if s.Z > 0 {
		s.X += ty
		s.Y += tx
		s.Z -= tz
	} else {
		s.X -= ty
		s.Y -= tx
		s.Z += tz
	}
	return s
}

func hyperbolicVectorStep(s State, i int) State {
	tx, ty, tz := s.X>>i, s.Y>>i, atanhTable[i]
	if -s.Y > 0 {
		s.X += ty
		s.Z -= tz
		s.Y += tx
	} else {
		s.X -= ty
		s.Z += tz
		s.Y -= tx
	}
	return s
}
