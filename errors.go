package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a value outside its closed set, such as an
	// unknown offset direction or a curve with an unsupported point count.
	ErrInvalidArgument = errors.New("lattice: invalid argument")
	// ErrMissingCorner indicates a cell was built before all four of its
	// corner nodes were inserted into the grid.
	ErrMissingCorner = errors.New("lattice: cell corner not in grid")
	// ErrDuplicateNode indicates a grid node was inserted twice.
	ErrDuplicateNode = errors.New("lattice: grid node already inserted")
	// ErrUnknownPreset indicates a preset name that was never registered.
	ErrUnknownPreset = errors.New("lattice: unknown preset")
	// ErrInvalidHandle indicates a handle that the sink does not own, or one
	// whose object has no midpoint.
	ErrInvalidHandle = errors.New("lattice: invalid handle")
)

// CellError records a failure while building the pattern for one cell.
type CellError struct {
	I, J    int
	Variant Variant
	Err     error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("lattice: cell (%d,%d) %s: %v", e.I, e.J, e.Variant, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
