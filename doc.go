// Package lattice generates decorative curve patterns over a grid of points.
//
// # Overview
//
// A Generator walks a rows x cols grid of base points (i, j, 0) in
// row-major order. For every cell whose four corners exist it builds a fixed
// topology of scaffolding lines, offset points and control-point curves into
// a GeometrySink, the host document that owns the created objects.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/lattice"
//	    "github.com/gogpu/lattice/document"
//	)
//
//	doc := document.New()
//	rep, err := lattice.New(doc).Generate(10, 11)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(rep.Cells, doc.Stats())
//
// # Patterns
//
// Each cell has corners P00=(i-1,j-1), P01=(i-1,j), P10=(i,j-1) and
// P11=(i,j) and boundary edges A=P00-P01, B=P01-P11, C=P10-P11 and
// D=P00-P10. The edges are created and hidden. Points beside edges A and C
// are offset from the edge midpoints by 0.7 * (0, -0.5, 0) for PatternA and
// 0.7 * (0, 0.5, 0) for PatternB. Ten curves are then built from those
// points, the midpoints of edges B and D, and the arc-length midpoints of
// earlier curves. PatternA anchors the curves on the midpoint of edge B,
// PatternB on the midpoint of edge D.
//
// # Curves
//
// Curves are control-point curves whose degree is implied by the number of
// points: Line, QuadBez and CubicBez. ArcMidpoint returns the point halfway
// along a curve by arc length, which for a Line is exactly (P0+P1)/2.
//
// # Sinks
//
// The document sub-package provides a headless GeometrySink that keeps an
// object table and a journal of every call. Sinks that implement Batcher
// receive BeginBatch/EndBatch around each cell (see WithBatchScope).
//
// # Errors
//
// Invalid directions, variants and curve sizes fail with ErrInvalidArgument.
// Failures inside a cell are wrapped in *CellError. By default the first
// failure aborts Generate; WithErrorPolicy(SkipCell) records it and continues.
package lattice
