// Command lattice builds a lattice pattern preset into an in-memory document
// and reports what was created.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/document"
)

func main() {
	var (
		preset  = flag.String("preset", lattice.PresetLattice, "preset name ("+strings.Join(lattice.Presets(), ", ")+")")
		rows    = flag.Int("rows", 0, "override the preset row count")
		cols    = flag.Int("cols", 0, "override the preset column count")
		skip    = flag.Bool("skip-bad-cells", false, "skip failing cells instead of aborting")
		list    = flag.Bool("list", false, "list every object")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	lattice.SetLogger(logger)

	if err := run(os.Stdout, *preset, *rows, *cols, *skip, *list); err != nil {
		logger.Error("lattice failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, name string, rows, cols int, skip, list bool) error {
	p, err := lattice.LookupPreset(name)
	if err != nil {
		return err
	}
	if rows > 0 {
		p.Rows = rows
	}
	if cols > 0 {
		p.Cols = cols
	}

	var extra []lattice.Option
	if skip {
		extra = append(extra, lattice.WithErrorPolicy(lattice.SkipCell))
	}

	doc := document.New()
	rep, err := p.Run(doc, extra...)
	if err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}

	lattice.Logger().Info("lattice: document",
		"preset", p.Name,
		"cells", rep.Cells,
		"patternA", rep.Variants[lattice.PatternA],
		"patternB", rep.Variants[lattice.PatternB],
		"skipped", rep.Skipped,
		"redraws", doc.Redraws())
	fmt.Fprintf(w, "%s %dx%d: %s\n", p.Name, p.Rows, p.Cols, doc.Stats())

	if list {
		return listObjects(w, doc.Objects())
	}
	return nil
}

func listObjects(w io.Writer, objs []document.Object) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HANDLE\tKIND\tVISIBLE\tGEOMETRY")
	for _, o := range objs {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", o.Handle, o.Kind, o.Visible(), describe(o))
	}
	return tw.Flush()
}

func describe(o document.Object) string {
	if o.Curve == nil {
		return formatPoint(o.Point)
	}
	pts := o.Curve.ControlPoints()
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatPoint(p)
	}
	return strings.Join(parts, " ")
}

func formatPoint(p lattice.Point) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", p.X, p.Y, p.Z)
}
