// Package history implements the grouped, cursor-snapshotted undo/redo log.
//
// The log is a flat slice of tagged entries (five variants: GroupBegin,
// GroupEnd, CursorSnapshot, Insert, Delete) rather than a stack of Command
// objects. The tag is a sum type, not a class hierarchy; freeing or
// replaying an entry dispatches on Kind. action_begin/action_end nest via a
// reentrant depth counter so a composite operation (delete-line built out of
// RemoveRange, or autoindent built out of RemoveRange+Insert) can group
// into a single user-visible undo step.
//
// Log itself never touches buffer content: it only records ranges and the
// bytes removed/inserted, plus cursor snapshots. The caller (internal/buffer)
// is responsible for calling back into Log at the right points and for
// replaying entries by calling its own Insert/RemoveRange during Undo/Redo.
package history
