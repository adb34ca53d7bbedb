package facade

import "github.com/labyrinthine/maze-engine/history"

// SaveState snapshots the currently active engine's live state into its
// history. Called once at the end of a gesture
// that changes topology, not per intermediate frame.
func (f *Facade) SaveState() {
	switch f.engine {
	case EngineGrid:
		f.gridHistory.Save(history.SnapshotGrid(f.Particles))
	case EngineCurve:
		f.curveHistory.Save(history.SnapshotCurves(f.Curves))
	}
}

// Undo rewinds the active engine's live state to the previous snapshot
//. A no-op at the bottom of history.
func (f *Facade) Undo() {
	switch f.engine {
	case EngineGrid:
		if snap, ok := f.gridHistory.Undo(); ok {
			history.RehydrateGrid(f.Particles, snap)
		}
	case EngineCurve:
		if snap, ok := f.curveHistory.Undo(); ok {
			history.RehydrateCurves(f.Curves, snap)
		}
	}
}

// Redo advances the active engine's live state to the next snapshot. A
// no-op at the top of history.
func (f *Facade) Redo() {
	switch f.engine {
	case EngineGrid:
		if snap, ok := f.gridHistory.Redo(); ok {
			history.RehydrateGrid(f.Particles, snap)
		}
	case EngineCurve:
		if snap, ok := f.curveHistory.Redo(); ok {
			history.RehydrateCurves(f.Curves, snap)
		}
	}
}

// CanUndo reports whether Undo has a snapshot to rewind to, for the
// presentation layer to gray out its undo control.
func (f *Facade) CanUndo() bool {
	switch f.engine {
	case EngineGrid:
		return f.gridHistory.CanUndo()
	default:
		return f.curveHistory.CanUndo()
	}
}

// CanRedo reports whether Redo has a snapshot to advance to.
func (f *Facade) CanRedo() bool {
	switch f.engine {
	case EngineGrid:
		return f.gridHistory.CanRedo()
	default:
		return f.curveHistory.CanRedo()
	}
}
