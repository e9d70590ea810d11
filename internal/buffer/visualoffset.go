package buffer

import "unicode/utf8"

// VisualOffset returns the on-screen column of byte offset x on line y,
// expanding tabs to TabWidth and counting one column per encoded rune
// (never per byte), per spec's Visual offset glossary entry. Ported from
// original_source's cmantic_string.h String::visual_offset.
func (b *Buffer) VisualOffset(y, x int) int {
	line := b.lines[y]
	if x > len(line) {
		x = len(line)
	}
	col := 0
	for i := 0; i < x; {
		r, size := utf8.DecodeRune(line[i:])
		if r == '\t' {
			col += b.tabWidth
		} else {
			col++
		}
		i += size
	}
	return col
}

// FromVisualOffset is the inverse of VisualOffset: given a target visual
// column on line y, returns the byte offset whose visual column is the
// closest one not exceeding target.
func (b *Buffer) FromVisualOffset(y, target int) int {
	line := b.lines[y]
	col := 0
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		width := 1
		if r == '\t' {
			width = b.tabWidth
		}
		if col+width > target {
			return i
		}
		col += width
		i += size
	}
	return len(line)
}

// NextRune returns the byte offset of the rune following x on line y,
// clamped to len(line). Skips over multi-byte encodings without landing on
// a continuation byte (spec's byte-indexed, UTF-8-aware Advance).
func (b *Buffer) NextRune(y, x int) int {
	line := b.lines[y]
	if x >= len(line) {
		return len(line)
	}
	_, size := utf8.DecodeRune(line[x:])
	if size <= 0 {
		size = 1
	}
	n := x + size
	if n > len(line) {
		n = len(line)
	}
	return n
}

// PrevRune returns the byte offset of the rune preceding x on line y,
// skipping backward over continuation bytes.
func (b *Buffer) PrevRune(y, x int) int {
	line := b.lines[y]
	if x <= 0 {
		return 0
	}
	i := x - 1
	for i > 0 && isUTF8Continuation(line[i]) {
		i--
	}
	return i
}

func isUTF8Continuation(c byte) bool {
	return c&0xC0 == 0x80
}

// FirstNonWhitespace returns the byte offset of the first non-space,
// non-tab byte on line y, or the line length if the line is all
// whitespace. Used by GhostBOL motion.
func (b *Buffer) FirstNonWhitespace(y int) int {
	line := b.lines[y]
	for i, c := range line {
		if c != ' ' && c != '\t' {
			return i
		}
	}
	return len(line)
}
