package lattice

import "fmt"

// Generator builds cell patterns over a grid of base points into a sink.
//
// A Generator assumes exclusive use of its sink for the duration of
// Generate and is not safe for concurrent use.
type Generator struct {
	sink     GeometrySink
	opts     options
	observer func(CellResult)
	grid     *PointGrid
}

// Report summarizes a Generate run.
type Report struct {
	Rows, Cols int
	// Visited is the number of grid nodes inserted (Rows*Cols).
	Visited int
	// Cells is the number of cells a pattern was attempted for.
	Cells int
	// Filtered is the number of interior cells excluded by the cell filter.
	Filtered int
	// Skipped is the number of cells that failed under the SkipCell policy.
	Skipped int
	// Variants counts successfully built cells per variant.
	Variants [len(topologies)]int
	// Failures lists the cells that failed, in visiting order.
	Failures []*CellError
}

// New creates a Generator that draws into sink.
func New(sink GeometrySink, opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{sink: sink, opts: o}
}

// Generate builds the grid of base points (i, j, 0) for i in [0, rows) and
// j in [0, cols) in row-major order. After node (i, j) is inserted, every
// cell with i>0 and j>0 that passes the cell filter is built with the
// variant chosen by the selector; all four of its corners exist by then.
//
// Under AbortOnError the first failing cell stops the run and its
// *CellError is returned together with the partial Report.
func (g *Generator) Generate(rows, cols int) (Report, error) {
	rep := Report{Rows: rows, Cols: cols}
	if rows < 0 || cols < 0 {
		return rep, fmt.Errorf("%w: grid size %dx%d", ErrInvalidArgument, rows, cols)
	}

	log := Logger()
	log.Info("lattice: generate", "rows", rows, "cols", cols, "policy", g.opts.policy)

	g.grid = NewPointGrid(rows * cols)
	if g.opts.batch == BatchPerGrid {
		end := g.beginBatch()
		defer end()
	}

	for i := range rows {
		for j := range cols {
			p := BasePoint(i, j)
			if err := g.grid.Insert(i, j, p); err != nil {
				return rep, err
			}
			if g.opts.basePoints {
				g.sink.AddPoint(p)
			}
			rep.Visited++

			if i == 0 || j == 0 {
				continue
			}
			if g.opts.filter != nil && !g.opts.filter(i, j) {
				rep.Filtered++
				continue
			}

			v := g.opts.selector(i, j)
			rep.Cells++
			res, err := g.buildCell(i, j, v)
			if err != nil {
				cerr := &CellError{I: i, J: j, Variant: v, Err: err}
				if g.opts.policy != SkipCell {
					log.Info("lattice: generate aborted", "cell", GridIndex{I: i, J: j}, "error", err)
					return rep, cerr
				}
				log.Warn("lattice: cell skipped", "cell", GridIndex{I: i, J: j}, "variant", v, "error", err)
				rep.Skipped++
				rep.Failures = append(rep.Failures, cerr)
				continue
			}
			rep.Variants[v]++
			if g.observer != nil {
				g.observer(res)
			}
		}
	}

	log.Info("lattice: generate done",
		"nodes", rep.Visited, "cells", rep.Cells, "skipped", rep.Skipped, "filtered", rep.Filtered)
	return rep, nil
}

// buildCell builds one cell inside its own redraw batch when configured.
// The batch is closed on every return path.
func (g *Generator) buildCell(i, j int, v Variant) (CellResult, error) {
	corners, err := g.grid.Corners(i, j)
	if err != nil {
		return CellResult{}, err
	}
	if g.opts.batch == BatchPerCell {
		end := g.beginBatch()
		defer end()
	}

	Logger().Debug("lattice: cell", "i", i, "j", j, "variant", v)

	res, err := buildCell(g.sink, corners, v, g.opts.cellConfig())
	res.I, res.J = i, j
	return res, err
}

// beginBatch opens a redraw batch if the sink supports one and returns the
// function that closes it.
func (g *Generator) beginBatch() func() {
	b, ok := g.sink.(Batcher)
	if !ok {
		return func() {}
	}
	b.BeginBatch()
	return b.EndBatch
}

// Grid returns the point grid built by the last Generate call, or nil.
func (g *Generator) Grid() *PointGrid {
	return g.grid
}

// OnCell registers fn to be called with the result of every successfully
// built cell. It replaces any previous observer.
func (g *Generator) OnCell(fn func(CellResult)) {
	g.observer = fn
}

// Generate runs a Generator over a rows x cols grid with the given variant
// selector and default options otherwise.
func Generate(sink GeometrySink, rows, cols int, sel VariantSelector) (Report, error) {
	return New(sink, WithVariantSelector(sel)).Generate(rows, cols)
}
