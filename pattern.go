package lattice

import (
	"fmt"
	"strings"
)

// Corners holds the four grid nodes of a cell whose upper node is (i, j):
// P00=(i-1,j-1), P01=(i-1,j), P10=(i,j-1), P11=(i,j).
type Corners struct {
	P00, P01, P10, P11 Point
}

// Edge is a set of cell boundary edges.
//
//	A = P00-P01   B = P01-P11   C = P10-P11   D = P00-P10
type Edge uint8

const (
	// EdgeA joins P00 and P01.
	EdgeA Edge = 1 << iota
	// EdgeB joins P01 and P11.
	EdgeB
	// EdgeC joins P10 and P11.
	EdgeC
	// EdgeD joins P00 and P10.
	EdgeD

	// NoEdges is the empty edge set.
	NoEdges Edge = 0
	// AllEdges contains every boundary edge.
	AllEdges = EdgeA | EdgeB | EdgeC | EdgeD
)

var edgeNames = [...]struct {
	e    Edge
	name string
}{
	{EdgeA, "A"},
	{EdgeB, "B"},
	{EdgeC, "C"},
	{EdgeD, "D"},
}

// Has reports whether every edge of o is in e.
func (e Edge) Has(o Edge) bool {
	return e&o == o
}

// String returns the member names joined by "|", or "none".
func (e Edge) String() string {
	var parts []string
	for _, n := range edgeNames {
		if e.Has(n.e) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Endpoints returns the two corners joined by a single edge.
func (c Corners) Endpoints(e Edge) (Point, Point) {
	switch e {
	case EdgeA:
		return c.P00, c.P01
	case EdgeB:
		return c.P01, c.P11
	case EdgeC:
		return c.P10, c.P11
	case EdgeD:
		return c.P00, c.P10
	default:
		panic(fmt.Sprintf("lattice: Endpoints of edge set %s", e))
	}
}

// topology describes how a variant arranges its curves.
type topology struct {
	// dir is the default offset direction.
	dir Direction
	// anchor is the edge whose midpoint the side and final curves meet at.
	anchor Edge
	// through is the edge whose midpoint the bottom curve passes through.
	through Edge
}

var topologies = [...]topology{
	PatternA: {dir: Down, anchor: EdgeB, through: EdgeD},
	PatternB: {dir: Up, anchor: EdgeD, through: EdgeB},
}

// CellPoints are the points derived while building a cell.
type CellPoints struct {
	// PtA and PtC are the offset points beside edges A and C.
	PtA, PtC Point
	// MidB and MidD are the midpoints of edges B and D.
	MidB, MidD Point
	// Anchor is MidB for PatternA and MidD for PatternB.
	Anchor Point
	// MidLeft, MidRight and MidBottom are the arc-length midpoints of the
	// left, right and bottom curves.
	MidLeft, MidRight, MidBottom Point
	// InnerLeftMid and InnerRightMid are the midpoints of the helper curves
	// from MidBottom to MidLeft and MidRight.
	InnerLeftMid, InnerRightMid Point
}

// CellResult describes the objects created for one cell.
type CellResult struct {
	I, J    int
	Variant Variant

	// LineA..LineD are the boundary edges.
	LineA, LineB, LineC, LineD Handle
	// Hidden is the set of boundary edges hidden as scaffolding.
	Hidden Edge

	// Curves lists every curve in creation order: left, right, bottom,
	// inner left, inner right, then the five final curves.
	Curves []Handle
	// Markers lists the point objects created when markers are enabled.
	Markers []Handle

	Points CellPoints
}

// CurvesPerCell is the number of curves every cell creates.
const CurvesPerCell = 10

// cellConfig carries the per-cell settings resolved from the generator options.
type cellConfig struct {
	distance    float64
	directions  [len(topologies)]Direction
	scaffolding [len(topologies)]Edge
	markers     bool
}

// cellBuilder issues sink calls for one cell and keeps the first error.
// After an error every further call is a no-op.
type cellBuilder struct {
	sink GeometrySink
	res  *CellResult
	err  error
}

func (b *cellBuilder) curve(points ...Point) Handle {
	if b.err != nil {
		return Handle{}
	}
	h, err := b.sink.AddCurve(points...)
	if err != nil {
		b.err = err
		return Handle{}
	}
	b.res.Curves = append(b.res.Curves, h)
	return h
}

func (b *cellBuilder) midpoint(h Handle) Point {
	if b.err != nil {
		return Point{}
	}
	p, err := b.sink.Midpoint(h)
	if err != nil {
		b.err = err
	}
	return p
}

func (b *cellBuilder) offset(h Handle, distance float64, dir Direction) Point {
	if b.err != nil {
		return Point{}
	}
	p, err := OffsetFromMidpoint(b.sink, h, distance, dir)
	if err != nil {
		b.err = err
	}
	return p
}

func (b *cellBuilder) hide(edges Edge) {
	if b.err != nil {
		return
	}
	var hs []Handle
	for _, e := range []struct {
		edge Edge
		h    Handle
	}{
		{EdgeB, b.res.LineB},
		{EdgeA, b.res.LineA},
		{EdgeC, b.res.LineC},
		{EdgeD, b.res.LineD},
	} {
		if edges.Has(e.edge) {
			hs = append(hs, e.h)
		}
	}
	if len(hs) == 0 {
		return
	}
	if err := b.sink.HideAll(hs...); err != nil {
		b.err = err
		return
	}
	b.res.Hidden = edges
}

func (b *cellBuilder) marker(points ...Point) {
	if b.err != nil {
		return
	}
	for _, p := range points {
		b.res.Markers = append(b.res.Markers, b.sink.AddPoint(p))
	}
}

// BuildCell creates the pattern v for the cell with corners c, using the
// default offset distance and hiding every boundary edge.
func BuildCell(sink GeometrySink, c Corners, v Variant) (CellResult, error) {
	cfg := defaultOptions().cellConfig()
	return buildCell(sink, c, v, cfg)
}

func buildCell(sink GeometrySink, c Corners, v Variant, cfg cellConfig) (CellResult, error) {
	if !v.Valid() {
		return CellResult{}, fmt.Errorf("%w: variant %s", ErrInvalidArgument, v)
	}
	top := topologies[v]
	dir := cfg.directions[v]
	if _, err := dir.Vector(); err != nil {
		return CellResult{Variant: v}, err
	}

	res := CellResult{Variant: v, Curves: make([]Handle, 0, CurvesPerCell)}
	b := &cellBuilder{sink: sink, res: &res}

	// Boundary edges.
	res.LineB = sink.AddLine(c.Endpoints(EdgeB))
	res.LineA = sink.AddLine(c.Endpoints(EdgeA))
	res.LineC = sink.AddLine(c.Endpoints(EdgeC))
	res.LineD = sink.AddLine(c.Endpoints(EdgeD))
	b.hide(cfg.scaffolding[v])

	pts := &res.Points
	pts.PtA = b.offset(res.LineA, cfg.distance, dir)
	pts.PtC = b.offset(res.LineC, cfg.distance, dir)
	pts.MidB = b.midpoint(res.LineB)
	pts.MidD = b.midpoint(res.LineD)

	anchor, through := pts.MidB, pts.MidD
	if top.anchor == EdgeD {
		anchor, through = pts.MidD, pts.MidB
	}
	pts.Anchor = anchor

	left := b.curve(anchor, pts.PtA)
	right := b.curve(anchor, pts.PtC)
	bottom := b.curve(pts.PtA, through, pts.PtC)

	pts.MidLeft = b.midpoint(left)
	pts.MidRight = b.midpoint(right)
	pts.MidBottom = b.midpoint(bottom)

	innerLeft := b.curve(pts.MidBottom, pts.MidLeft)
	pts.InnerLeftMid = b.midpoint(innerLeft)
	innerRight := b.curve(pts.MidBottom, pts.MidRight)
	pts.InnerRightMid = b.midpoint(innerRight)

	b.curve(pts.MidBottom, pts.MidLeft, anchor)
	b.curve(pts.MidBottom, pts.MidRight, anchor)
	b.curve(pts.MidBottom, pts.MidLeft, pts.MidRight, anchor)
	b.curve(pts.PtA, pts.InnerLeftMid, pts.MidLeft)
	b.curve(pts.PtC, pts.InnerRightMid, pts.MidRight)

	if cfg.markers {
		b.marker(pts.MidB, pts.MidD, pts.PtA, pts.PtC, pts.MidLeft, pts.MidRight, pts.MidBottom)
	}

	return res, b.err
}
