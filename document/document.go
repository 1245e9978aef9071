package document

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/lattice"
)

// DefaultNamespace seeds handle generation for documents created without
// WithNamespace.
var DefaultNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gogpu/lattice/document"))

// Document is an in-memory host document.
//
// It implements lattice.GeometrySink and lattice.Batcher, keeps every object
// in creation order and journals every call. Handles are name-based UUIDs
// derived from the document namespace and a sequence number, so two
// documents with the same namespace that receive the same calls issue the
// same handles.
//
// Example:
//
//	doc := document.New()
//	h := doc.AddLine(lattice.Pt(0, 0, 0), lattice.Pt(2, 0, 0))
//	mid, _ := doc.Midpoint(h) // (1, 0, 0)
//	_ = doc.Hide(h)
//
// Document is not safe for concurrent use.
type Document struct {
	namespace uuid.UUID
	seq       uint64
	store     *objectStore
	journal   []Command

	batchDepth int
	redraws    int
}

// Option configures a Document.
type Option func(*Document)

// WithNamespace sets the namespace handles are derived from.
func WithNamespace(ns uuid.UUID) Option {
	return func(d *Document) {
		d.namespace = ns
	}
}

// New creates an empty document with redraw enabled.
func New(opts ...Option) *Document {
	d := &Document{
		namespace: DefaultNamespace,
		store:     newObjectStore(),
		journal:   make([]Command, 0, 256),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// nextHandle issues the next handle in sequence.
func (d *Document) nextHandle() lattice.Handle {
	d.seq++
	var name [8]byte
	binary.BigEndian.PutUint64(name[:], d.seq)
	return lattice.Handle(uuid.NewSHA1(d.namespace, name[:]))
}

// changed records a document mutation. Outside a batch every mutation
// triggers a redraw.
func (d *Document) changed() {
	if d.batchDepth == 0 {
		d.redraws++
	}
}

// --------------------------------------------------------------------------
// GeometrySink
// --------------------------------------------------------------------------

// AddPoint creates a point object.
func (d *Document) AddPoint(p lattice.Point) lattice.Handle {
	h := d.nextHandle()
	d.store.add(Object{Handle: h, Kind: KindPoint, Point: p})
	d.journal = append(d.journal, AddPointCommand{Handle: h, Point: p})
	d.changed()
	return h
}

// AddLine creates a line object from p0 to p1.
func (d *Document) AddLine(p0, p1 lattice.Point) lattice.Handle {
	h := d.nextHandle()
	d.store.add(Object{Handle: h, Kind: KindLine, Curve: lattice.NewLine(p0, p1)})
	d.journal = append(d.journal, AddLineCommand{Handle: h, P0: p0, P1: p1})
	d.changed()
	return h
}

// AddCurve creates a control-point curve whose degree is one less than the
// number of points. Point counts outside 2..4 fail with
// lattice.ErrInvalidArgument and create nothing.
func (d *Document) AddCurve(points ...lattice.Point) (lattice.Handle, error) {
	c, err := lattice.NewCurve(points...)
	if err != nil {
		return lattice.Handle{}, err
	}
	h := d.nextHandle()
	d.store.add(Object{Handle: h, Kind: KindCurve, Curve: c})
	d.journal = append(d.journal, AddCurveCommand{Handle: h, Points: c.ControlPoints()})
	d.changed()
	return h, nil
}

// Midpoint returns the arc-length midpoint of a line or curve object.
func (d *Document) Midpoint(h lattice.Handle) (lattice.Point, error) {
	o := d.store.get(h)
	if o == nil {
		return lattice.Point{}, fmt.Errorf("%w: %s", lattice.ErrInvalidHandle, h)
	}
	if o.Curve == nil {
		return lattice.Point{}, fmt.Errorf("%w: %s is a %s", lattice.ErrInvalidHandle, h, o.Kind)
	}
	return lattice.ArcMidpoint(o.Curve), nil
}

// Hide clears the visibility flag of an object. Hiding a hidden object is
// allowed and journaled.
func (d *Document) Hide(h lattice.Handle) error {
	return d.setHidden(h, true)
}

// HideAll hides every object in hs. If any handle is unknown nothing is
// hidden.
func (d *Document) HideAll(hs ...lattice.Handle) error {
	for _, h := range hs {
		if d.store.get(h) == nil {
			return fmt.Errorf("%w: %s", lattice.ErrInvalidHandle, h)
		}
	}
	for _, h := range hs {
		if err := d.setHidden(h, true); err != nil {
			return err
		}
	}
	return nil
}

// Show sets the visibility flag of an object.
func (d *Document) Show(h lattice.Handle) error {
	return d.setHidden(h, false)
}

func (d *Document) setHidden(h lattice.Handle, hidden bool) error {
	o := d.store.get(h)
	if o == nil {
		return fmt.Errorf("%w: %s", lattice.ErrInvalidHandle, h)
	}
	o.Hidden = hidden
	if hidden {
		d.journal = append(d.journal, HideCommand{Handle: h})
	} else {
		d.journal = append(d.journal, ShowCommand{Handle: h})
	}
	d.changed()
	return nil
}

// --------------------------------------------------------------------------
// Batcher
// --------------------------------------------------------------------------

// BeginBatch suspends redraw. Batches nest.
func (d *Document) BeginBatch() {
	d.batchDepth++
	d.journal = append(d.journal, BeginBatchCommand{})
}

// EndBatch closes the innermost batch. Closing the outermost batch
// redraws once. An EndBatch without a matching BeginBatch is ignored.
func (d *Document) EndBatch() {
	if d.batchDepth == 0 {
		lattice.Logger().Warn("document: EndBatch without BeginBatch")
		return
	}
	d.batchDepth--
	d.journal = append(d.journal, EndBatchCommand{})
	if d.batchDepth == 0 {
		d.redraws++
	}
}

// RedrawEnabled returns true when no batch is open.
func (d *Document) RedrawEnabled() bool {
	return d.batchDepth == 0
}

// BatchDepth returns the number of open batches.
func (d *Document) BatchDepth() int {
	return d.batchDepth
}

// Redraws returns how many redraws the document has performed.
func (d *Document) Redraws() int {
	return d.redraws
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// Object returns a snapshot of the object for h.
func (d *Document) Object(h lattice.Handle) (Object, bool) {
	o := d.store.get(h)
	if o == nil {
		return Object{}, false
	}
	return *o, true
}

// IsHidden returns true if h names a hidden object.
func (d *Document) IsHidden(h lattice.Handle) bool {
	o := d.store.get(h)
	return o != nil && o.Hidden
}

// Objects returns snapshots of all objects in creation order.
func (d *Document) Objects() []Object {
	out := make([]Object, d.store.len())
	copy(out, d.store.objects)
	return out
}

// Visible returns snapshots of the visible objects in creation order.
func (d *Document) Visible() []Object {
	var out []Object
	for _, o := range d.store.objects {
		if !o.Hidden {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of objects.
func (d *Document) Len() int {
	return d.store.len()
}

// Stats counts objects by kind and visibility.
func (d *Document) Stats() Stats {
	return d.store.stats()
}

// Journal returns the recorded commands.
func (d *Document) Journal() []Command {
	return d.journal
}

// Compile-time interface checks.
var (
	_ lattice.GeometrySink = (*Document)(nil)
	_ lattice.Batcher      = (*Document)(nil)
)
