// Package document provides an in-memory host document for lattice.
//
// A Document stands in for the CAD host's object table. It implements
// lattice.GeometrySink, so a Generator can draw into it without a host
// application, and lattice.Batcher, so redraw suspension is observable.
//
// # Architecture
//
// The document follows a command pattern:
//
//   - Objects: points, lines and control-point curves addressed by
//     lattice.Handle, each with a visibility flag
//   - Journal: a typed Command for every call, in order
//   - Replay: re-issues the journal against any GeometrySink
//
// # Handles
//
// Handles are version 5 (SHA-1, name-based) UUIDs computed from the
// document namespace and a per-document sequence number. Two documents with
// the same namespace that receive the same calls issue identical handles,
// which makes whole runs comparable.
//
// # Redraw
//
// Outside a batch every mutation counts as one redraw. BeginBatch and
// EndBatch nest; closing the outermost batch redraws once. Redraw has no
// effect on the geometry.
//
// # Thread Safety
//
// Document is NOT safe for concurrent use. A generator run assumes
// exclusive access to its document.
package document
