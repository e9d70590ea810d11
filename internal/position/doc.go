// Package position defines the coordinate types shared by every layer of
// the text buffer core: a line/byte-offset Position, half-open Ranges over
// pairs of positions, and the ordering used throughout to compare them.
//
// # Coordinate space
//
// A Position is (Line, Col): Col is a byte offset into the addressed line,
// not a rune or grapheme index. Col may equal the line's byte length, the
// "just past end" slot that stands in for the line's trailing newline. Lines
// are compared before columns, so ordering is lexicographic on (Line, Col).
//
// # UTF-8
//
// Column indices must never land on a UTF-8 continuation byte. This package
// has no access to line content; buffer.Buffer's NextRune and PrevRune step
// by whole encoded runes, and callers that synthesize a Position from
// arithmetic (rather than stepping) are responsible for landing on a rune
// boundary.
package position
