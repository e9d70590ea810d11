// Package editorctx defines EditorContext, the explicit parameter that
// replaces a process-wide global registry. Every editor-level operation
// that needs tab defaults, the pane registry, or the clipboard sink takes a
// *EditorContext instead of reading mutable package state.
package editorctx
