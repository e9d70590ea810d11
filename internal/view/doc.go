// Package view implements the per-pane layer: a View owns a non-owning
// reference to a Buffer, a non-empty cursor array, and a jumplist. It
// provides motion (horizontal/vertical, explicit jumps), find/find-reverse,
// and cursor deduplication. View never mutates buffer content itself;
// character-level edits still go through buffer.Buffer's Insert/RemoveRange
// and composite operations, with View supplying the cursor array they need.
package view
