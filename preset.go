package lattice

import (
	"fmt"
	"sort"
	"sync"
)

// Preset is a named grid size and generator configuration.
type Preset struct {
	Name        string
	Description string
	Rows, Cols  int
	Options     []Option
}

// NewGenerator creates a Generator for p drawing into sink. Extra options
// are applied after the preset's own.
func (p Preset) NewGenerator(sink GeometrySink, extra ...Option) *Generator {
	opts := make([]Option, 0, len(p.Options)+len(extra))
	opts = append(opts, p.Options...)
	opts = append(opts, extra...)
	return New(sink, opts...)
}

// Run builds the preset's grid into sink.
func (p Preset) Run(sink GeometrySink, extra ...Option) (Report, error) {
	return p.NewGenerator(sink, extra...).Generate(p.Rows, p.Cols)
}

// Registry state - protected by mutex for thread-safe access.
var (
	presetsMu sync.RWMutex
	presets   = make(map[string]Preset)
)

// Built-in preset names.
const (
	// PresetLattice is a 10x11 grid alternating PatternB on even columns
	// and PatternA on odd columns.
	PresetLattice = "lattice"
	// PresetStrip is a 6x5 grid built only for columns j<4, PatternA only,
	// with visible markers on the derived points.
	PresetStrip = "strip"
)

func init() {
	Register(Preset{
		Name:        PresetLattice,
		Description: "10x11 grid, pattern alternating on column parity",
		Rows:        10,
		Cols:        11,
		Options:     []Option{WithVariantSelector(ColumnParity)},
	})
	Register(Preset{
		Name:        PresetStrip,
		Description: "6x5 grid, columns j<4, pattern A with midpoint markers",
		Rows:        6,
		Cols:        5,
		Options: []Option{
			WithVariantSelector(Always(PatternA)),
			WithCellFilter(func(_, j int) bool { return j < 4 }),
			WithMidpointMarkers(true),
		},
	})
}

// Register makes a preset available by name.
//
// Register panics if the name is empty or a preset with the same name is
// already registered.
func Register(p Preset) {
	presetsMu.Lock()
	defer presetsMu.Unlock()

	if p.Name == "" {
		panic("lattice: Register preset with empty name")
	}
	if _, dup := presets[p.Name]; dup {
		panic("lattice: Register called twice for " + p.Name)
	}
	presets[p.Name] = p
}

// Unregister removes a preset from the registry.
// This is primarily useful for testing. Unknown names are a no-op.
func Unregister(name string) {
	presetsMu.Lock()
	defer presetsMu.Unlock()
	delete(presets, name)
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	presetsMu.RLock()
	p, ok := presets[name]
	presetsMu.RUnlock()

	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Presets returns the names of all registered presets in sorted order.
func Presets() []string {
	presetsMu.RLock()
	defer presetsMu.RUnlock()

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
