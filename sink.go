package lattice

import "github.com/google/uuid"

// Handle is an opaque reference to an object owned by a GeometrySink.
// The zero value is never issued by a sink.
type Handle uuid.UUID

// IsValid returns true if h is not the zero handle.
func (h Handle) IsValid() bool {
	return uuid.UUID(h) != uuid.Nil
}

// String returns the canonical GUID form of the handle.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// GeometrySink is the host document the generator draws into.
//
// The generator never reads back the internal representation of an object.
// It only passes handles to Midpoint and Hide. Implementations are used by
// one generator at a time and need not be safe for concurrent use.
type GeometrySink interface {
	// AddPoint creates a point object.
	AddPoint(p Point) Handle

	// AddLine creates a line object from p0 to p1.
	AddLine(p0, p1 Point) Handle

	// AddCurve creates a control-point curve. The degree is implied by the
	// number of points (see NewCurve).
	AddCurve(points ...Point) (Handle, error)

	// Midpoint returns the arc-length midpoint of a line or curve object.
	Midpoint(h Handle) (Point, error)

	// Hide clears the visibility flag of an object. The object remains
	// queryable.
	Hide(h Handle) error

	// HideAll hides every object in hs.
	HideAll(hs ...Handle) error
}

// Batcher is implemented by sinks that can suspend redraw while many
// objects are created. Batches nest; every BeginBatch is matched by exactly
// one EndBatch.
type Batcher interface {
	BeginBatch()
	EndBatch()
}
