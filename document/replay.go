package document

import (
	"fmt"

	"github.com/gogpu/lattice"
)

// Replay issues the journal of d, in order, against sink.
//
// Handles in the journal are translated to the handles sink returns, so
// the replayed objects keep their hide/show history. Batch commands are
// forwarded only if sink implements lattice.Batcher. Replay stops at the
// first sink error.
func (d *Document) Replay(sink lattice.GeometrySink) error {
	handles := make(map[lattice.Handle]lattice.Handle, d.store.len())
	batcher, _ := sink.(lattice.Batcher)

	translate := func(h lattice.Handle) (lattice.Handle, error) {
		nh, ok := handles[h]
		if !ok {
			return lattice.Handle{}, fmt.Errorf("document: replay: %w: %s", lattice.ErrInvalidHandle, h)
		}
		return nh, nil
	}

	for _, cmd := range d.journal {
		switch c := cmd.(type) {
		case AddPointCommand:
			handles[c.Handle] = sink.AddPoint(c.Point)
		case AddLineCommand:
			handles[c.Handle] = sink.AddLine(c.P0, c.P1)
		case AddCurveCommand:
			h, err := sink.AddCurve(c.Points...)
			if err != nil {
				return fmt.Errorf("document: replay: %w", err)
			}
			handles[c.Handle] = h
		case HideCommand:
			h, err := translate(c.Handle)
			if err != nil {
				return err
			}
			if err := sink.Hide(h); err != nil {
				return err
			}
		case ShowCommand:
			h, err := translate(c.Handle)
			if err != nil {
				return err
			}
			// Showing is not part of GeometrySink; only documents support it.
			if s, ok := sink.(interface{ Show(lattice.Handle) error }); ok {
				if err := s.Show(h); err != nil {
					return err
				}
			}
		case BeginBatchCommand:
			if batcher != nil {
				batcher.BeginBatch()
			}
		case EndBatchCommand:
			if batcher != nil {
				batcher.EndBatch()
			}
		}
	}
	return nil
}
