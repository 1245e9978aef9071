package document

import "github.com/gogpu/lattice"

// CommandType identifies the type of a journal command.
type CommandType uint8

const (
	// Object commands
	CmdAddPoint CommandType = iota // Create a point object
	CmdAddLine                     // Create a line object
	CmdAddCurve                    // Create a control-point curve object

	// Visibility commands
	CmdHide // Clear an object's visibility flag
	CmdShow // Set an object's visibility flag

	// Redraw commands
	CmdBeginBatch // Suspend redraw
	CmdEndBatch   // Resume redraw
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdAddPoint:   "AddPoint",
	CmdAddLine:    "AddLine",
	CmdAddCurve:   "AddCurve",
	CmdHide:       "Hide",
	CmdShow:       "Show",
	CmdBeginBatch: "BeginBatch",
	CmdEndBatch:   "EndBatch",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all journal entries.
// Commands record the calls made on a Document in order, so a run can be
// inspected or replayed into another sink.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Object Commands
// --------------------------------------------------------------------------

// AddPointCommand records the creation of a point object.
type AddPointCommand struct {
	Handle lattice.Handle
	Point  lattice.Point
}

// Type implements Command.
func (AddPointCommand) Type() CommandType { return CmdAddPoint }

// AddLineCommand records the creation of a line object.
type AddLineCommand struct {
	Handle lattice.Handle
	P0, P1 lattice.Point
}

// Type implements Command.
func (AddLineCommand) Type() CommandType { return CmdAddLine }

// AddCurveCommand records the creation of a control-point curve.
type AddCurveCommand struct {
	Handle lattice.Handle
	// Points is the control polygon; its length implies the degree.
	Points []lattice.Point
}

// Type implements Command.
func (AddCurveCommand) Type() CommandType { return CmdAddCurve }

// --------------------------------------------------------------------------
// Visibility Commands
// --------------------------------------------------------------------------

// HideCommand records an object being hidden.
type HideCommand struct {
	Handle lattice.Handle
}

// Type implements Command.
func (HideCommand) Type() CommandType { return CmdHide }

// ShowCommand records an object being shown again.
type ShowCommand struct {
	Handle lattice.Handle
}

// Type implements Command.
func (ShowCommand) Type() CommandType { return CmdShow }

// --------------------------------------------------------------------------
// Redraw Commands
// --------------------------------------------------------------------------

// BeginBatchCommand records redraw being suspended.
type BeginBatchCommand struct{}

// Type implements Command.
func (BeginBatchCommand) Type() CommandType { return CmdBeginBatch }

// EndBatchCommand records redraw being resumed.
type EndBatchCommand struct{}

// Type implements Command.
func (EndBatchCommand) Type() CommandType { return CmdEndBatch }

// Compile-time interface checks.
var (
	_ Command = AddPointCommand{}
	_ Command = AddLineCommand{}
	_ Command = AddCurveCommand{}
	_ Command = HideCommand{}
	_ Command = ShowCommand{}
	_ Command = BeginBatchCommand{}
	_ Command = EndBatchCommand{}
)
