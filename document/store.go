package document

import (
	"fmt"

	"github.com/gogpu/lattice"
)

// Kind identifies the geometry type of an object.
type Kind uint8

const (
	// KindPoint is a single point object.
	KindPoint Kind = iota
	// KindLine is a straight line between two points.
	KindLine
	// KindCurve is a control-point curve of degree 1 to 3.
	KindCurve
)

var kindNames = [...]string{
	KindPoint: "point",
	KindLine:  "line",
	KindCurve: "curve",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Object is a snapshot of one document object.
type Object struct {
	Handle lattice.Handle
	Kind   Kind
	// Point is the location of a point object.
	Point lattice.Point
	// Curve is the geometry of a line or curve object; nil for points.
	Curve  lattice.Curve
	Hidden bool
}

// Visible returns true if the object's visibility flag is set.
func (o Object) Visible() bool {
	return !o.Hidden
}

// objectStore holds objects in creation order, indexed by handle.
//
// objectStore is not safe for concurrent use.
type objectStore struct {
	objects []Object
	index   map[lattice.Handle]int
}

func newObjectStore() *objectStore {
	return &objectStore{
		objects: make([]Object, 0, 256),
		index:   make(map[lattice.Handle]int, 256),
	}
}

func (s *objectStore) add(o Object) {
	s.index[o.Handle] = len(s.objects)
	s.objects = append(s.objects, o)
}

// get returns a pointer into the store for in-place updates, or nil.
func (s *objectStore) get(h lattice.Handle) *Object {
	i, ok := s.index[h]
	if !ok {
		return nil
	}
	return &s.objects[i]
}

func (s *objectStore) len() int {
	return len(s.objects)
}

// Stats counts the objects of a document.
type Stats struct {
	Points, Lines, Curves int
	Hidden, Visible       int
}

// Total returns the number of objects.
func (s Stats) Total() int {
	return s.Points + s.Lines + s.Curves
}

func (s Stats) String() string {
	return fmt.Sprintf("%d objects (%d points, %d lines, %d curves; %d visible, %d hidden)",
		s.Total(), s.Points, s.Lines, s.Curves, s.Visible, s.Hidden)
}

func (s *objectStore) stats() Stats {
	var st Stats
	for _, o := range s.objects {
		switch o.Kind {
		case KindPoint:
			st.Points++
		case KindLine:
			st.Lines++
		case KindCurve:
			st.Curves++
		}
		if o.Hidden {
			st.Hidden++
		} else {
			st.Visible++
		}
	}
	return st
}
