// Package paneregistry implements the pane registry as a consumed external
// collaborator: an enumerable collection of {view, buffer_ref} pairs the
// engine walks to find every position observer bound to a mutated buffer.
// It is the concrete observer.Walker the buffer package's
// Insert/RemoveRange/Undo/Redo broadcast through.
package paneregistry
