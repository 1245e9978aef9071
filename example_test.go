package lattice_test

import (
	"fmt"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/document"
)

func Example() {
	doc := document.New()
	rep, err := lattice.New(doc).Generate(2, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cells:", rep.Cells)
	fmt.Println(doc.Stats())
	// Output:
	// cells: 1
	// 14 objects (0 points, 4 lines, 10 curves; 10 visible, 4 hidden)
}

func ExampleOffsetFromMidpoint() {
	doc := document.New()
	line := doc.AddLine(lattice.Pt(1, 5, 0), lattice.Pt(3, 5, 0))

	p, err := lattice.OffsetFromMidpoint(doc, line, 0.7, lattice.Down)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("(%.2f, %.2f, %.2f)\n", p.X, p.Y, p.Z)

	_, err = lattice.ParseDirection("sideways")
	fmt.Println(err)
	// Output:
	// (2.00, 4.65, 0.00)
	// lattice: invalid argument: direction "sideways", must be "down" or "up"
}

func ExampleLookupPreset() {
	p, err := lattice.LookupPreset(lattice.PresetStrip)
	if err != nil {
		fmt.Println(err)
		return
	}
	doc := document.New()
	rep, err := p.Run(doc)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: %d cells, %d filtered\n", p.Name, rep.Cells, rep.Filtered)
	fmt.Println(doc.Stats())
	// Output:
	// strip: 15 cells, 5 filtered
	// 315 objects (105 points, 60 lines, 150 curves; 255 visible, 60 hidden)
}
