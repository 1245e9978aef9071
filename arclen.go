package lattice

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultAccuracy is the arc-length tolerance used by ArcMidpoint.
const DefaultAccuracy = 1e-9

const (
	// gaussPoints is the Gauss-Legendre order of a single estimate.
	gaussPoints = 16
	// maxArclenDepth bounds the recursive subdivision of arclen.
	maxArclenDepth = 16
)

// arclen returns the length of c between parameters t0 and t1.
//
// The speed |B'(t)| is integrated with Gauss-Legendre quadrature. The
// interval is split in half until the whole-interval estimate and the sum
// of the two half-interval estimates agree within accuracy.
func arclen(c Curve, t0, t1, accuracy float64) float64 {
	if t1 <= t0 {
		return 0
	}
	return arclenRec(c, t0, t1, accuracy, 0)
}

func arclenRec(c Curve, t0, t1, accuracy float64, depth int) float64 {
	mid := (t0 + t1) / 2
	whole := gaussSpeed(c, t0, t1)
	halves := gaussSpeed(c, t0, mid) + gaussSpeed(c, mid, t1)
	if math.Abs(whole-halves) <= accuracy || depth >= maxArclenDepth {
		return halves
	}
	return arclenRec(c, t0, mid, accuracy/2, depth+1) +
		arclenRec(c, mid, t1, accuracy/2, depth+1)
}

func gaussSpeed(c Curve, t0, t1 float64) float64 {
	speed := func(t float64) float64 { return c.Deriv(t).Length() }
	return quad.Fixed(speed, t0, t1, gaussPoints, quad.Legendre{}, 0)
}

// ArcMidpoint returns the point halfway along c by arc length.
// For a Line the result is exactly (P0+P1)/2.
func ArcMidpoint(c Curve) Point {
	if l, ok := c.(Line); ok {
		return l.Midpoint()
	}
	total := c.Arclen(DefaultAccuracy)
	return c.Eval(SolveForArclen(c, total/2, DefaultAccuracy))
}
