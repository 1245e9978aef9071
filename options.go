package lattice

// Option configures a Generator during creation.
//
// Example:
//
//	// Column-parity alternation, as in the "lattice" preset
//	g := lattice.New(doc)
//
//	// Pattern A only, skipping cells that fail
//	g := lattice.New(doc,
//	    lattice.WithVariantSelector(lattice.Always(lattice.PatternA)),
//	    lattice.WithErrorPolicy(lattice.SkipCell))
type Option func(*options)

// CellFilter reports whether the cell whose upper node is (i, j) is built.
type CellFilter func(i, j int) bool

// ErrorPolicy decides what happens when a cell fails.
type ErrorPolicy uint8

const (
	// AbortOnError stops the run at the first failing cell and returns its error.
	AbortOnError ErrorPolicy = iota
	// SkipCell records the failure in the Report and continues with the next cell.
	SkipCell
)

// String returns the policy name.
func (p ErrorPolicy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipCell:
		return "skip"
	default:
		return "unknown"
	}
}

// BatchScope decides how sink redraw batches bracket construction.
// It has no effect on sinks that do not implement Batcher.
type BatchScope uint8

const (
	// BatchPerCell brackets every cell in its own batch.
	BatchPerCell BatchScope = iota
	// BatchPerGrid brackets the whole run in one batch.
	BatchPerGrid
	// NoBatch never calls the Batcher.
	NoBatch
)

// options holds the resolved Generator configuration.
type options struct {
	selector    VariantSelector
	filter      CellFilter
	distance    float64
	directions  [len(topologies)]Direction
	scaffolding [len(topologies)]Edge
	policy      ErrorPolicy
	markers     bool
	basePoints  bool
	batch       BatchScope
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	o := options{
		selector: ColumnParity,
		distance: DefaultOffsetDistance,
		policy:   AbortOnError,
		batch:    BatchPerCell,
	}
	for v, top := range topologies {
		o.directions[v] = top.dir
		o.scaffolding[v] = AllEdges
	}
	return o
}

func (o options) cellConfig() cellConfig {
	return cellConfig{
		distance:    o.distance,
		directions:  o.directions,
		scaffolding: o.scaffolding,
		markers:     o.markers,
	}
}

// WithVariantSelector sets the rule choosing a pattern per cell.
// The default is ColumnParity. A nil selector is ignored.
func WithVariantSelector(s VariantSelector) Option {
	return func(o *options) {
		if s != nil {
			o.selector = s
		}
	}
}

// WithCellFilter restricts construction to cells for which f returns true.
// Base points are still inserted for every node.
func WithCellFilter(f CellFilter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithOffsetDistance sets the scale of the side point offset.
// The default is DefaultOffsetDistance.
func WithOffsetDistance(d float64) Option {
	return func(o *options) {
		o.distance = d
	}
}

// WithDirection overrides the offset direction of a variant.
// Directions outside {Down, Up} make every cell of that variant fail with
// ErrInvalidArgument.
func WithDirection(v Variant, d Direction) Option {
	return func(o *options) {
		if v.Valid() {
			o.directions[v] = d
		}
	}
}

// WithScaffolding sets which boundary edges of a variant are hidden after
// construction. The default hides all four edges for both variants.
func WithScaffolding(v Variant, edges Edge) Option {
	return func(o *options) {
		if v.Valid() {
			o.scaffolding[v] = edges & AllEdges
		}
	}
}

// WithErrorPolicy sets the behavior on a failing cell. The default is AbortOnError.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithMidpointMarkers adds visible point objects at the derived points of
// every cell.
func WithMidpointMarkers(on bool) Option {
	return func(o *options) {
		o.markers = on
	}
}

// WithBasePointObjects creates a point object for every grid node.
func WithBasePointObjects(on bool) Option {
	return func(o *options) {
		o.basePoints = on
	}
}

// WithBatchScope sets how redraw batches bracket construction.
// The default is BatchPerCell.
func WithBatchScope(s BatchScope) Option {
	return func(o *options) {
		o.batch = s
	}
}
