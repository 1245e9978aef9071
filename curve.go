package lattice

import "fmt"

// Control-point curves.
//
// A control-point curve with clamped uniform knots whose degree is one less
// than its point count is exactly a Bezier curve, so the host's 2, 3 and 4
// point curves are represented here as Line, QuadBez and CubicBez.

// Curve is a parametric curve over t in [0, 1].
type Curve interface {
	// Eval returns the point at parameter t.
	Eval(t float64) Point
	// Deriv returns the first derivative at parameter t.
	Deriv(t float64) Vec
	Start() Point
	End() Point
	// Degree returns the polynomial degree (1, 2 or 3).
	Degree() int
	// ControlPoints returns a copy of the control polygon.
	ControlPoints() []Point
	// Arclen returns the arc length, accurate to within accuracy.
	Arclen(accuracy float64) float64
}

// NewCurve builds the control-point curve through the given points.
// The degree is implied by the point count: 2 points give a Line,
// 3 a QuadBez and 4 a CubicBez. Any other count is an invalid argument.
func NewCurve(points ...Point) (Curve, error) {
	switch len(points) {
	case 2:
		return NewLine(points[0], points[1]), nil
	case 3:
		return NewQuadBez(points[0], points[1], points[2]), nil
	case 4:
		return NewCubicBez(points[0], points[1], points[2], points[3]), nil
	default:
		return nil, fmt.Errorf("%w: curve needs 2 to 4 points, got %d", ErrInvalidArgument, len(points))
	}
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Deriv returns the constant derivative P1-P0.
func (l Line) Deriv(float64) Vec {
	return l.P1.Sub(l.P0)
}

// Start returns the starting point of the line.
func (l Line) Start() Point { return l.P0 }

// End returns the ending point of the line.
func (l Line) End() Point { return l.P1 }

// Degree returns 1.
func (l Line) Degree() int { return 1 }

// ControlPoints returns the two endpoints.
func (l Line) ControlPoints() []Point { return []Point{l.P0, l.P1} }

// Arclen returns the exact length of the segment.
func (l Line) Arclen(float64) float64 {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the midpoint of the line segment.
// It is computed as (P0+P1)/2 rather than by evaluation so that the result
// is exact.
func (l Line) Midpoint() Point {
	return Midpoint(l.P0, l.P1)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	a, b, c := mt*mt, 2*mt*t, t*t
	return Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
		Z: a*q.P0.Z + b*q.P1.Z + c*q.P2.Z,
	}
}

// Deriv returns B'(t) = 2[(1-t)(P1-P0) + t(P2-P1)].
func (q QuadBez) Deriv(t float64) Vec {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Scale(2 * (1 - t)).Add(d1.Scale(2 * t))
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Point { return q.P0 }

// End returns the ending point of the curve.
func (q QuadBez) End() Point { return q.P2 }

// Degree returns 2.
func (q QuadBez) Degree() int { return 2 }

// ControlPoints returns the control polygon.
func (q QuadBez) ControlPoints() []Point { return []Point{q.P0, q.P1, q.P2} }

// Arclen returns the arc length of the curve.
func (q QuadBez) Arclen(accuracy float64) float64 {
	return arclen(q, 0, 1, accuracy)
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	a, b, d, e := mt2*mt, 3*mt2*t, 3*mt*t2, t2*t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
		Z: a*c.P0.Z + b*c.P1.Z + d*c.P2.Z + e*c.P3.Z,
	}
}

// Deriv returns B'(t) = 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2].
func (c CubicBez) Deriv(t float64) Vec {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	mt := 1.0 - t
	return d0.Scale(3 * mt * mt).
		Add(d1.Scale(6 * mt * t)).
		Add(d2.Scale(3 * t * t))
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point { return c.P0 }

// End returns the ending point of the curve.
func (c CubicBez) End() Point { return c.P3 }

// Degree returns 3.
func (c CubicBez) Degree() int { return 3 }

// ControlPoints returns the control polygon.
func (c CubicBez) ControlPoints() []Point { return []Point{c.P0, c.P1, c.P2, c.P3} }

// Arclen returns the arc length of the curve.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return arclen(c, 0, 1, accuracy)
}

// Compile-time interface checks.
var (
	_ Curve = Line{}
	_ Curve = QuadBez{}
	_ Curve = CubicBez{}
)
