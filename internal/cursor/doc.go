// Package cursor implements the Cursor position-observer type and the
// move_on_insert / move_on_delete update rules that keep a cursor consistent
// as the buffer it points into is mutated.
//
// A Cursor is a (Position, ghost_x) pair. ghost_x is the sticky visual
// column vertical motion uses to restore a cursor's column after it has
// passed through shorter lines; GhostEOL and GhostBOL are sentinel values
// meaning "always snap to end of line" and "always snap to the first
// non-whitespace byte" respectively.
//
// AdvanceOnInsert and AdvanceOnDelete are the sole correctness contract
// between the edit engine and every live position observer (cursors,
// jumplist entries, selection anchors, highlight endpoints): every observer
// in the buffer must be passed through exactly one of these on every edit.
package cursor
