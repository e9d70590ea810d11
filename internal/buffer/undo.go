package buffer

import (
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/history"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// ActionBegin opens an undo action group for the given acting view's
// cursors. Callers performing a composite operation (delete-line,
// autoindent, insert-newline) wrap their Insert/RemoveRange calls in
// ActionBegin/ActionEnd so they commit as one undo step; nested calls
// collapse via the reentrant group depth.
func (b *Buffer) ActionBegin(cursors []cursor.Cursor) {
	b.hist.ActionBegin(cursors)
}

// ActionEnd closes one level of action grouping, returning the synthesized
// clipboard payload when the group committed and consisted only of deletes.
func (b *Buffer) ActionEnd(cursors []cursor.Cursor) (clipboardText string, hasClipboard bool) {
	return b.hist.ActionEnd(cursors)
}

// CanUndo reports whether there is a committed action group to undo.
func (b *Buffer) CanUndo() bool { return b.hist.CanUndo() }

// CanRedo reports whether there is an undone, still-retained group to redo.
func (b *Buffer) CanRedo() bool { return b.hist.CanRedo() }

// Undo replays the inverse of the most recently committed action group.
// cursors points at the acting view's cursor slice; any CursorSnapshot
// entry encountered during replay overwrites *cursors wholesale. Replay
// runs with recording suppressed and raw mode active so replayed edits do
// not themselves generate undo entries or trigger autoindent.
func (b *Buffer) Undo(panes observer.Walker, cursors *[]cursor.Cursor, tok tokenizer.Tokenizer) error {
	mid, ok := b.hist.UndoGroup()
	if !ok {
		return history.ErrNothingToUndo
	}

	b.hist.SuppressRecording()
	b.RawBegin()
	for i := len(mid) - 1; i >= 0; i-- {
		e := mid[i]
		switch e.Kind {
		case history.KindInsert:
			_ = b.RemoveRange(panes, e.A, e.B, e.CursorHint, false, nil)
		case history.KindDelete:
			_, _ = b.Insert(panes, e.A, e.Bytes, e.CursorHint, false, nil)
		case history.KindCursorSnapshot:
			*cursors = append([]cursor.Cursor(nil), e.Cursors...)
		}
	}
	b.RawEnd()
	b.hist.ResumeRecording()

	if tok != nil {
		b.reparse(tok)
	}
	return nil
}

// Redo replays the next retained action group forward, symmetric to Undo.
func (b *Buffer) Redo(panes observer.Walker, cursors *[]cursor.Cursor, tok tokenizer.Tokenizer) error {
	mid, ok := b.hist.RedoGroup()
	if !ok {
		return history.ErrNothingToRedo
	}

	b.hist.SuppressRecording()
	b.RawBegin()
	for _, e := range mid {
		switch e.Kind {
		case history.KindInsert:
			_, _ = b.Insert(panes, e.A, e.Bytes, e.CursorHint, false, nil)
		case history.KindDelete:
			_ = b.RemoveRange(panes, e.A, e.B, e.CursorHint, false, nil)
		case history.KindCursorSnapshot:
			*cursors = append([]cursor.Cursor(nil), e.Cursors...)
		}
	}
	b.RawEnd()
	b.hist.ResumeRecording()

	if tok != nil {
		b.reparse(tok)
	}
	return nil
}
