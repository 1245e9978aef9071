package lattice

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point represents a position in model space.
// Points are values: every operation returns a new Point.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec) Point {
	return Point(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return r3.Norm(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Approx returns true if two points are equal within epsilon on every axis.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon &&
		math.Abs(p.Y-q.Y) < epsilon &&
		math.Abs(p.Z-q.Z) < epsilon
}

// Midpoint returns (p+q)/2.
func Midpoint(p, q Point) Point {
	return Point{
		X: (p.X + q.X) / 2,
		Y: (p.Y + q.Y) / 2,
		Z: (p.Z + q.Z) / 2,
	}
}
