package buffer

import (
	"bytes"

	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// PushLine appends a new line holding text to the end of the buffer.
// Ported from original_source's BufferData::push_line (SPEC_FULL §3).
func (b *Buffer) PushLine(panes observer.Walker, cursors []cursor.Cursor, text []byte, tok tokenizer.Tokenizer) error {
	b.ActionBegin(cursors)
	last := len(b.lines) - 1
	at := position.New(last, len(b.lines[last]))
	s := append([]byte{'\n'}, text...)
	_, err := b.Insert(panes, at, s, NoCursorHint, true, tok)
	b.ActionEnd(cursors)
	return err
}

// DeleteChar deletes one character (UTF-8-aware) before cursors[idx],
// merging onto the previous line when the cursor sits at column 0. Ported
// from original_source's BufferData::delete_char.
func (b *Buffer) DeleteChar(panes observer.Walker, cursors *[]cursor.Cursor, idx int, tok tokenizer.Tokenizer) (string, bool, error) {
	b.ActionBegin(*cursors)

	pos := (*cursors)[idx].Pos
	if pos.Line == 0 && pos.Col == 0 {
		text, ok := b.ActionEnd(*cursors)
		return text, ok, nil
	}

	var a position.Position
	if pos.Col == 0 {
		prevLen := b.LineLen(pos.Line - 1)
		a = position.New(pos.Line-1, prevLen)
	} else {
		a = position.New(pos.Line, b.PrevRune(pos.Line, pos.Col))
	}

	err := b.RemoveRange(panes, a, pos, idx, true, tok)
	text, ok := b.ActionEnd(*cursors)
	return text, ok, err
}

// DeleteLine removes the whole line y, including its trailing newline (for
// the last line, the newline before it; a sole line is only emptied), and
// the cursor position it leaves cursors[idx] at is the collapse result of
// RemoveRange. Ported from original_source's BufferData::delete_line_at.
func (b *Buffer) DeleteLine(panes observer.Walker, cursors []cursor.Cursor, idx int, y int, tok tokenizer.Tokenizer) (string, bool, error) {
	b.ActionBegin(cursors)

	var a, c position.Position
	if y == len(b.lines)-1 {
		if y == 0 {
			a = position.New(0, 0)
			c = position.New(0, len(b.lines[0]))
		} else {
			a = position.New(y-1, len(b.lines[y-1]))
			c = position.New(y, len(b.lines[y]))
		}
	} else {
		a = position.New(y, 0)
		c = position.New(y+1, 0)
	}

	err := b.RemoveRange(panes, a, c, idx, true, tok)
	text, ok := b.ActionEnd(cursors)
	return text, ok, err
}

// RemoveTrailingWhitespace strips trailing space/tab bytes from line y.
// Ported from original_source's BufferData::remove_trailing_whitespace;
// called by InsertNewline before splitting the line.
func (b *Buffer) RemoveTrailingWhitespace(panes observer.Walker, cursors []cursor.Cursor, y int, tok tokenizer.Tokenizer) error {
	line := b.lines[y]
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return nil
	}
	b.ActionBegin(cursors)
	err := b.RemoveRange(panes, position.New(y, end), position.New(y, len(line)), NoCursorHint, false, tok)
	b.ActionEnd(cursors)
	return err
}

// InsertNewline splits the line at cursors[idx] after trimming its trailing
// whitespace. Ported from original_source's BufferData::insert_newline.
func (b *Buffer) InsertNewline(panes observer.Walker, cursors *[]cursor.Cursor, idx int, tok tokenizer.Tokenizer) error {
	b.ActionBegin(*cursors)
	pos := (*cursors)[idx].Pos
	if err := b.RemoveTrailingWhitespace(panes, *cursors, pos.Line, tok); err != nil {
		b.ActionEnd(*cursors)
		return err
	}
	pos = (*cursors)[idx].Pos // trailing-whitespace removal may have moved it
	_, err := b.Insert(panes, pos, []byte{'\n'}, idx, true, tok)
	b.ActionEnd(*cursors)
	return err
}

// InsertNewlineBelow opens a new, empty line below y and positions
// cursors[idx] at its start, distinct from InsertNewline which splits at
// the cursor. Ported from original_source's BufferData::insert_newline_below.
func (b *Buffer) InsertNewlineBelow(panes observer.Walker, cursors *[]cursor.Cursor, idx int, y int, tok tokenizer.Tokenizer) error {
	b.ActionBegin(*cursors)
	at := position.New(y, len(b.lines[y]))
	end, err := b.Insert(panes, at, []byte{'\n'}, idx, true, tok)
	if err == nil {
		(*cursors)[idx].Pos = end
	}
	b.ActionEnd(*cursors)
	return err
}

// InsertTab inserts one indent unit (a hard tab, or TabStyle() spaces) at
// cursors[idx]. Ported from original_source's BufferData::insert_tab.
func (b *Buffer) InsertTab(panes observer.Walker, cursors *[]cursor.Cursor, idx int, tok tokenizer.Tokenizer) error {
	b.ActionBegin(*cursors)
	pos := (*cursors)[idx].Pos
	var s []byte
	if b.tabStyle == TabHardTabs {
		s = []byte{'\t'}
	} else {
		s = bytes.Repeat([]byte{' '}, b.tabStyle)
	}
	_, err := b.Insert(panes, pos, s, idx, true, tok)
	b.ActionEnd(*cursors)
	return err
}

// GuessTabType inspects the buffer's lines and returns the indent style
// they use, skipping block comments and blank lines. Ported from
// original_source's BufferData::guess_tab_type. Returns fallback unaltered
// if no conclusive line is found.
func (b *Buffer) GuessTabType(fallback int) int {
	inBlockComment := false
	for _, line := range b.lines {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 {
			continue
		}
		if inBlockComment {
			if idx := bytes.Index(line, []byte("*/")); idx >= 0 {
				inBlockComment = false
			}
			continue
		}
		if bytes.HasPrefix(trimmed, []byte("/*")) {
			inBlockComment = !bytes.Contains(trimmed[2:], []byte("*/"))
			continue
		}
		if line[0] == '\t' {
			return TabHardTabs
		}
		if line[0] == ' ' {
			n := 0
			for n < len(line) && line[n] == ' ' {
				n++
			}
			if n == len(line) {
				continue // whole line is spaces: inconclusive
			}
			return n
		}
		return fallback
	}
	return fallback
}
