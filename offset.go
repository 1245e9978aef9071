package lattice

// DefaultOffsetDistance is the scale applied to the direction vector when
// deriving the side points of a cell.
const DefaultOffsetDistance = 0.7

// OffsetFromMidpoint returns the midpoint of line moved by
// dir.Vector() scaled by distance.
//
// Nothing is created in the sink; the caller decides whether to
// materialize the point. An invalid direction fails with ErrInvalidArgument
// before the sink is consulted.
func OffsetFromMidpoint(sink GeometrySink, line Handle, distance float64, dir Direction) (Point, error) {
	v, err := dir.Vector()
	if err != nil {
		return Point{}, err
	}
	mid, err := sink.Midpoint(line)
	if err != nil {
		return Point{}, err
	}
	return mid.Add(v.Scale(distance)), nil
}
