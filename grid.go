package lattice

import "fmt"

// GridIndex identifies a grid node by row i and column j.
type GridIndex struct {
	I, J int
}

// BasePoint returns the model-space position of grid node (i, j): (i, j, 0).
func BasePoint(i, j int) Point {
	return Pt(float64(i), float64(j), 0)
}

// PointGrid maps grid indices to base points.
// Entries are append-only: a node is inserted once and never changed.
type PointGrid struct {
	nodes map[GridIndex]Point
}

// NewPointGrid creates an empty grid with room for n nodes.
func NewPointGrid(n int) *PointGrid {
	return &PointGrid{nodes: make(map[GridIndex]Point, n)}
}

// Insert stores p at (i, j). Inserting the same index twice fails with
// ErrDuplicateNode and leaves the existing entry untouched.
func (g *PointGrid) Insert(i, j int, p Point) error {
	idx := GridIndex{I: i, J: j}
	if _, ok := g.nodes[idx]; ok {
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateNode, i, j)
	}
	g.nodes[idx] = p
	return nil
}

// At returns the point stored at (i, j).
func (g *PointGrid) At(i, j int) (Point, bool) {
	p, ok := g.nodes[GridIndex{I: i, J: j}]
	return p, ok
}

// Len returns the number of inserted nodes.
func (g *PointGrid) Len() int {
	return len(g.nodes)
}

// Corners returns the four corners of the cell whose upper node is (i, j).
// Every corner must already be in the grid.
func (g *PointGrid) Corners(i, j int) (Corners, error) {
	var c Corners
	for _, n := range []struct {
		i, j int
		dst  *Point
	}{
		{i - 1, j - 1, &c.P00},
		{i - 1, j, &c.P01},
		{i, j - 1, &c.P10},
		{i, j, &c.P11},
	} {
		p, ok := g.At(n.i, n.j)
		if !ok {
			return Corners{}, fmt.Errorf("%w: (%d,%d) for cell (%d,%d)", ErrMissingCorner, n.i, n.j, i, j)
		}
		*n.dst = p
	}
	return c, nil
}
