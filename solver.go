package lattice

import "math"

// maxSolveIterations bounds the arc-length inversion loop.
const maxSolveIterations = 64

// SolveForArclen returns the parameter t at which the arc length of c,
// measured from its start, equals s.
//
// Values of s outside [0, c.Arclen] are clamped to t=0 and t=1. The root is
// found by Newton iteration on L(t)-s, falling back to bisection whenever a
// Newton step leaves the current bracket or the curve has zero speed.
func SolveForArclen(c Curve, s, accuracy float64) float64 {
	if s <= 0 {
		return 0
	}
	total := c.Arclen(accuracy)
	if s >= total || total == 0 {
		return 1
	}
	if _, ok := c.(Line); ok {
		return s / total
	}

	lo, hi := 0.0, 1.0
	t := s / total
	for range maxSolveIterations {
		f := arclen(c, 0, t, accuracy/2) - s
		if math.Abs(f) <= accuracy {
			return t
		}
		if f > 0 {
			hi = t
		} else {
			lo = t
		}

		next := math.NaN()
		if d := c.Deriv(t); !d.IsZero() {
			next = t - f/d.Length()
		}
		if !isFinite(next) || next <= lo || next >= hi {
			next = (lo + hi) / 2
		}
		t = next
	}
	return t
}

// isFinite returns true if x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
