// Package buffer implements the line-vector document store: an ordered,
// mutable sequence of byte-string lines plus the two edit primitives,
// Insert and RemoveRange, that every higher-level mutation (delete-char,
// insert-newline, autoindent, push-line) reduces to.
//
// # Storage model
//
// Lines are stored as a plain slice of byte slices, never a rope or
// piece-table. A line's content never contains '\n'; line breaks are
// implicit in the slice structure. The store is always non-empty: a freshly
// created or fully emptied Buffer has exactly one, empty line.
//
// # Thread-safety
//
// A Buffer is not safe for concurrent use. Per spec, the text buffer core
// is single-threaded and cooperative; callers needing to coordinate across
// goroutines (the watch package's reload notifications, for instance) must
// serialize their own access.
package buffer
