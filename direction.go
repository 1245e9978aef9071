package lattice

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Direction selects which way an offset point moves away from an edge
// midpoint along the Y axis.
type Direction uint8

const (
	// Down offsets towards negative Y.
	Down Direction = iota
	// Up offsets towards positive Y.
	Up
)

var directionNames = [...]string{
	Down: "down",
	Up:   "up",
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return int(d) < len(directionNames)
}

// Vector returns the unit offset for d: (0, -0.5, 0) for Down and
// (0, 0.5, 0) for Up.
func (d Direction) Vector() (Vec, error) {
	switch d {
	case Down:
		return V(0, -0.5, 0), nil
	case Up:
		return V(0, 0.5, 0), nil
	default:
		return Vec{}, fmt.Errorf("%w: direction %s", ErrInvalidArgument, d)
	}
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	folded := cases.Fold().String(s)
	for i, name := range directionNames {
		if folded == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: direction %q, must be %q or %q", ErrInvalidArgument, s, Down, Up)
}
