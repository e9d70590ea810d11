package history

import "errors"

var (
	// ErrNothingToUndo is returned when Undo is called with an empty undo
	// stack. Callers treat it as a silent no-op, not a fault.
	ErrNothingToUndo = errors.New("history: nothing to undo")
	// ErrNothingToRedo mirrors ErrNothingToUndo for Redo.
	ErrNothingToRedo = errors.New("history: nothing to redo")
)
