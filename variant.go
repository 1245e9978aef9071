package lattice

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Variant identifies one of the two cell pattern topologies.
type Variant uint8

const (
	// PatternA offsets the side edge midpoints down and anchors the
	// pattern on the midpoint of edge B.
	PatternA Variant = iota
	// PatternB offsets the side edge midpoints up and anchors the
	// pattern on the midpoint of edge D.
	PatternB
)

var variantNames = [...]string{
	PatternA: "A",
	PatternB: "B",
}

// String returns "A" or "B".
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return int(v) < len(variantNames)
}

// ParseVariant parses "A" or "B", ignoring case.
func ParseVariant(s string) (Variant, error) {
	fold := cases.Fold()
	folded := fold.String(s)
	for i, name := range variantNames {
		if folded == fold.String(name) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: variant %q", ErrInvalidArgument, s)
}

// VariantSelector chooses the pattern for the cell whose upper corner is
// the grid node (i, j).
type VariantSelector func(i, j int) Variant

// ColumnParity selects PatternB for even columns and PatternA for odd ones.
func ColumnParity(_, j int) Variant {
	if j%2 == 0 {
		return PatternB
	}
	return PatternA
}

// Always returns a selector that picks v for every cell.
func Always(v Variant) VariantSelector {
	return func(int, int) Variant { return v }
}
