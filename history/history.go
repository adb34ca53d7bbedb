// Package history implements the bounded undo/redo mechanism:
// a fixed-capacity deque of deep-copied snapshots with a cursor, generic
// over the snapshot type so both the grid engine (particles+constraints)
// and the curve engine (curves) share one implementation.
package history

// History is a bounded deque of deep-copied snapshots of type S, with a
// cursor for undo/redo.
type History[S any] struct {
	capacity int
	clone    func(S) S
	snaps    []S
	cursor   int // index of the snapshot matching live state; -1 if empty
}

// New creates an empty History with the given capacity (typically 50).
// clone must produce a deep copy of a snapshot value with no shared
// mutable state.
func New[S any](capacity int, clone func(S) S) *History[S] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[S]{capacity: capacity, clone: clone, cursor: -1}
}

// Save truncates any forward history past the cursor, appends a deep copy
// of state, and evicts the oldest snapshot once over capacity, adjusting
// the cursor accordingly.
func (h *History[S]) Save(state S) {
	if h.cursor < len(h.snaps)-1 {
		h.snaps = h.snaps[:h.cursor+1]
	}
	h.snaps = append(h.snaps, h.clone(state))
	h.cursor++

	if over := len(h.snaps) - h.capacity; over > 0 {
		h.snaps = h.snaps[over:]
		h.cursor -= over
	}
}

// Undo decrements the cursor if > 0 and returns a fresh deep copy of the
// snapshot now under the cursor for the caller to rehydrate from. ok is
// false at cursor 0.
func (h *History[S]) Undo() (state S, ok bool) {
	if h.cursor <= 0 {
		return state, false
	}
	h.cursor--
	return h.clone(h.snaps[h.cursor]), true
}

// Redo increments the cursor if < size-1 and returns a fresh deep copy of
// the snapshot now under the cursor. ok is false at the end of history
func (h *History[S]) Redo() (state S, ok bool) {
	if h.cursor < 0 || h.cursor >= len(h.snaps)-1 {
		return state, false
	}
	h.cursor++
	return h.clone(h.snaps[h.cursor]), true
}

// Len returns the number of snapshots currently held.
func (h *History[S]) Len() int { return len(h.snaps) }

// Cursor returns the index of the snapshot matching live state, or -1 if
// no snapshot has been saved yet.
func (h *History[S]) Cursor() int { return h.cursor }

// CanUndo reports whether Undo would succeed.
func (h *History[S]) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History[S]) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.snaps)-1 }
