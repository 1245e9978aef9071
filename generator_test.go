package lattice_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/document"
)

func TestGenerate_VisitsAndCells(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 0},
		{1, 5},
		{5, 1},
		{2, 2},
		{3, 4},
		{6, 5},
		{10, 11},
	}
	for _, tt := range tests {
		doc := document.New()
		rep, err := lattice.New(doc).Generate(tt.rows, tt.cols)
		if err != nil {
			t.Fatalf("%dx%d: %v", tt.rows, tt.cols, err)
		}
		if rep.Visited != tt.rows*tt.cols {
			t.Errorf("%dx%d: Visited = %d, want %d", tt.rows, tt.cols, rep.Visited, tt.rows*tt.cols)
		}
		wantCells := max(tt.rows-1, 0) * max(tt.cols-1, 0)
		if rep.Cells != wantCells {
			t.Errorf("%dx%d: Cells = %d, want %d", tt.rows, tt.cols, rep.Cells, wantCells)
		}
		st := doc.Stats()
		if st.Lines != 4*wantCells || st.Curves != lattice.CurvesPerCell*wantCells {
			t.Errorf("%dx%d: stats %s", tt.rows, tt.cols, st)
		}
		if st.Hidden != st.Lines {
			t.Errorf("%dx%d: %d hidden, want every line (%d)", tt.rows, tt.cols, st.Hidden, st.Lines)
		}
	}
}

func TestGenerate_SingleCell(t *testing.T) {
	doc := document.New()
	g := lattice.New(doc)

	var cells []lattice.CellResult
	g.OnCell(func(r lattice.CellResult) { cells = append(cells, r) })

	if _, err := g.Generate(2, 2); err != nil {
		t.Fatal(err)
	}
	if len(cells) != 1 || cells[0].I != 1 || cells[0].J != 1 {
		t.Fatalf("cells = %+v, want exactly (1,1)", cells)
	}

	corners, err := g.Grid().Corners(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := lattice.Corners{
		P00: lattice.Pt(0, 0, 0),
		P01: lattice.Pt(0, 1, 0),
		P10: lattice.Pt(1, 0, 0),
		P11: lattice.Pt(1, 1, 0),
	}
	if diff := cmp.Diff(want, corners); diff != "" {
		t.Errorf("corners mismatch (-want +got):\n%s", diff)
	}

	// Column 1 is odd: PatternA.
	if cells[0].Variant != lattice.PatternA {
		t.Errorf("variant = %s, want A", cells[0].Variant)
	}
}

func TestGenerate_ColumnParityCounts(t *testing.T) {
	rep, err := lattice.Generate(document.New(), 10, 11, lattice.ColumnParity)
	if err != nil {
		t.Fatal(err)
	}
	// Columns 1..10: five odd (A) and five even (B), nine rows each.
	if rep.Variants[lattice.PatternA] != 45 || rep.Variants[lattice.PatternB] != 45 {
		t.Errorf("Variants = %v, want [45 45]", rep.Variants)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	run := func() *document.Document {
		doc := document.New()
		if _, err := lattice.New(doc).Generate(4, 5); err != nil {
			t.Fatal(err)
		}
		return doc
	}
	a, b := run(), run()
	if diff := cmp.Diff(a.Journal(), b.Journal()); diff != "" {
		t.Errorf("journals differ (-first +second):\n%s", diff)
	}
}

func TestGenerate_CellOrder(t *testing.T) {
	g := lattice.New(document.New())
	var got []lattice.GridIndex
	g.OnCell(func(r lattice.CellResult) { got = append(got, lattice.GridIndex{I: r.I, J: r.J}) })
	if _, err := g.Generate(3, 3); err != nil {
		t.Fatal(err)
	}
	want := []lattice.GridIndex{{I: 1, J: 1}, {I: 1, J: 2}, {I: 2, J: 1}, {I: 2, J: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cell order (-want +got):\n%s", diff)
	}
}

func TestGenerate_AbortOnError(t *testing.T) {
	doc := document.New()
	g := lattice.New(doc, lattice.WithDirection(lattice.PatternB, lattice.Direction(9)))

	rep, err := g.Generate(3, 4)
	if !errors.Is(err, lattice.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	var cerr *lattice.CellError
	if !errors.As(err, &cerr) {
		t.Fatalf("err %T is not a *CellError", err)
	}
	// (1,1) is PatternA and succeeds; (1,2) is the first PatternB cell.
	if cerr.I != 1 || cerr.J != 2 || cerr.Variant != lattice.PatternB {
		t.Errorf("failed cell = (%d,%d) %s, want (1,2) B", cerr.I, cerr.J, cerr.Variant)
	}
	if rep.Cells != 2 || rep.Variants[lattice.PatternA] != 1 {
		t.Errorf("report = %+v", rep)
	}
	if doc.BatchDepth() != 0 {
		t.Errorf("batch depth %d after abort", doc.BatchDepth())
	}
}

func TestGenerate_SkipCell(t *testing.T) {
	doc := document.New()
	g := lattice.New(doc,
		lattice.WithDirection(lattice.PatternB, lattice.Direction(9)),
		lattice.WithErrorPolicy(lattice.SkipCell))

	rep, err := g.Generate(3, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Columns 1..3 over rows 1..2: column 2 is PatternB and fails.
	if rep.Cells != 6 || rep.Skipped != 2 || len(rep.Failures) != 2 {
		t.Errorf("Cells=%d Skipped=%d Failures=%d, want 6, 2, 2", rep.Cells, rep.Skipped, len(rep.Failures))
	}
	for _, f := range rep.Failures {
		if f.J != 2 || !errors.Is(f, lattice.ErrInvalidArgument) {
			t.Errorf("unexpected failure %v", f)
		}
	}
	if rep.Variants[lattice.PatternA] != 4 {
		t.Errorf("PatternA cells = %d, want 4", rep.Variants[lattice.PatternA])
	}
	if doc.BatchDepth() != 0 {
		t.Errorf("batch depth %d after run", doc.BatchDepth())
	}
	// Cells with an unusable direction leave nothing behind.
	if st := doc.Stats(); st.Curves != 4*lattice.CurvesPerCell || st.Lines != 4*4 {
		t.Errorf("stats = %s, want 40 curves and 16 lines", st)
	}
}

func TestGenerate_InvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{-1, 3}, {3, -1}} {
		_, err := lattice.New(document.New()).Generate(sz[0], sz[1])
		if !errors.Is(err, lattice.ErrInvalidArgument) {
			t.Errorf("Generate(%d, %d) err = %v, want ErrInvalidArgument", sz[0], sz[1], err)
		}
	}
}

func TestGenerate_BasePointObjects(t *testing.T) {
	doc := document.New()
	if _, err := lattice.New(doc, lattice.WithBasePointObjects(true)).Generate(3, 3); err != nil {
		t.Fatal(err)
	}
	if got := doc.Stats().Points; got != 9 {
		t.Errorf("points = %d, want 9", got)
	}
	first := doc.Objects()[0]
	if first.Kind != document.KindPoint || first.Point != lattice.Pt(0, 0, 0) {
		t.Errorf("first object = %+v, want point at origin", first)
	}
}

func TestGenerate_Redraws(t *testing.T) {
	perCell := document.New()
	if _, err := lattice.New(perCell).Generate(3, 3); err != nil {
		t.Fatal(err)
	}
	unbatched := document.New()
	if _, err := lattice.New(unbatched, lattice.WithBatchScope(lattice.NoBatch)).Generate(3, 3); err != nil {
		t.Fatal(err)
	}

	if perCell.Redraws() != 4 {
		t.Errorf("per-cell batching redrew %d times, want 4", perCell.Redraws())
	}
	if unbatched.Redraws() <= perCell.Redraws() {
		t.Errorf("unbatched redraws %d should exceed batched %d", unbatched.Redraws(), perCell.Redraws())
	}
	// Batching never changes the geometry.
	if diff := cmp.Diff(perCell.Stats(), unbatched.Stats()); diff != "" {
		t.Errorf("stats differ (-batched +unbatched):\n%s", diff)
	}
}
