package lattice

import "gonum.org/v1/gonum/spatial/r3"

// Vec represents a displacement in model space.
// Unlike Point which represents a position, Vec represents a direction and magnitude.
type Vec struct {
	X, Y, Z float64
}

// V is a convenience function to create a Vec.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec(r3.Add(r3.Vec(v), r3.Vec(w)))
}

// Scale returns the vector with every component multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec(r3.Scale(s, r3.Vec(v)))
}

// Length returns the length (magnitude) of the vector.
func (v Vec) Length() float64 {
	return r3.Norm(r3.Vec(v))
}

// IsZero returns true if the vector is the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
