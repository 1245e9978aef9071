package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/lattice"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		cmd  CommandType
		want string
	}{
		{CmdAddPoint, "AddPoint"},
		{CmdAddLine, "AddLine"},
		{CmdAddCurve, "AddCurve"},
		{CmdHide, "Hide"},
		{CmdShow, "Show"},
		{CmdBeginBatch, "BeginBatch"},
		{CmdEndBatch, "EndBatch"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestJournal_Order(t *testing.T) {
	d := New()
	d.BeginBatch()
	l := d.AddLine(lattice.Pt(0, 0, 0), lattice.Pt(1, 0, 0))
	if err := d.Hide(l); err != nil {
		t.Fatal(err)
	}
	p := d.AddPoint(lattice.Pt(0.5, 0, 0))
	d.EndBatch()
	if err := d.Show(l); err != nil {
		t.Fatal(err)
	}

	want := []Command{
		BeginBatchCommand{},
		AddLineCommand{Handle: l, P0: lattice.Pt(0, 0, 0), P1: lattice.Pt(1, 0, 0)},
		HideCommand{Handle: l},
		AddPointCommand{Handle: p, Point: lattice.Pt(0.5, 0, 0)},
		EndBatchCommand{},
		ShowCommand{Handle: l},
	}
	if diff := cmp.Diff(want, d.Journal()); diff != "" {
		t.Errorf("journal (-want +got):\n%s", diff)
	}

	var types []CommandType
	for _, c := range d.Journal() {
		types = append(types, c.Type())
	}
	wantTypes := []CommandType{CmdBeginBatch, CmdAddLine, CmdHide, CmdAddPoint, CmdEndBatch, CmdShow}
	if diff := cmp.Diff(wantTypes, types); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
}
