package buffer

import (
	"bytes"

	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/history"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// NoCursorHint re-exports history.NoCursorHint for callers outside this
// package performing a programmatic edit not attributed to a user cursor.
const NoCursorHint = history.NoCursorHint

// Insert splices s (which may contain embedded newlines) into the buffer at
// at, records an undo entry (unless replay has suppressed recording),
// broadcasts the move_on_insert update to every position observer reachable
// through panes, and optionally re-parses with tok. It returns the exclusive
// end position of the inserted text.
func (b *Buffer) Insert(panes observer.Walker, at position.Position, s []byte, cursorHint int, reparse bool, tok tokenizer.Tokenizer) (position.Position, error) {
	if !b.InBounds(at) {
		return position.Position{}, ErrOutOfBounds
	}

	end := b.spliceInsert(at, s)

	b.hist.RecordInsert(at, end, s, cursorHint)

	mutate := func(p position.Position) position.Position {
		return cursor.AdvanceOnInsert(p, at, end)
	}
	panes.Walk(b.ID, mutate)
	b.broadcastHighlights(mutate)

	if reparse && tok != nil {
		b.reparse(tok)
	}
	b.addHighlight(at, end)

	return end, nil
}

// spliceInsert performs the line-vector splice for Insert, returning the
// exclusive end position. Ported from original_source's BufferData::insert.
func (b *Buffer) spliceInsert(at position.Position, s []byte) position.Position {
	numLines := bytes.Count(s, []byte{'\n'})
	if numLines == 0 {
		line := b.lines[at.Line]
		newLine := make([]byte, 0, len(line)+len(s))
		newLine = append(newLine, line[:at.Col]...)
		newLine = append(newLine, s...)
		newLine = append(newLine, line[at.Col:]...)
		b.lines[at.Line] = newLine
		return position.New(at.Line, at.Col+len(s))
	}

	lastBreak := bytes.LastIndexByte(s, '\n')
	tail := s[lastBreak+1:]

	suffix := append([]byte(nil), b.lines[at.Line][at.Col:]...)
	head := b.lines[at.Line][:at.Col]

	chunks := bytes.Split(s, []byte{'\n'})
	// chunks[0] joins head, chunks[len-1] joins suffix; the rest become
	// whole new lines.
	newLines := make([][]byte, 0, numLines)
	first := append(append([]byte(nil), head...), chunks[0]...)
	newLines = append(newLines, first)
	for i := 1; i < len(chunks)-1; i++ {
		newLines = append(newLines, append([]byte(nil), chunks[i]...))
	}
	last := append(append([]byte(nil), chunks[len(chunks)-1]...), suffix...)
	newLines = append(newLines, last)

	b.lines = append(b.lines[:at.Line], append(newLines, b.lines[at.Line+1:]...)...)

	return position.New(at.Line+numLines, len(tail))
}

// RemoveRange deletes the half-open range [a, b), records an undo entry,
// broadcasts move_on_delete, and optionally re-parses. Requires a <= b; per
// the port decision recorded in DESIGN.md (spec's Open Question), b < a is
// a precondition violation, not silently swapped.
func (b *Buffer) RemoveRange(panes observer.Walker, a, c position.Position, cursorHint int, reparse bool, tok tokenizer.Tokenizer) error {
	if c.Before(a) {
		return ErrRangeInvalid
	}
	if !b.InBounds(a) || !b.InBounds(c) {
		return ErrOutOfBounds
	}
	if a == c {
		return nil // an empty range is a silent no-op.
	}

	removed := b.sliceRange(a, c)
	b.spliceRemove(a, c)

	b.hist.RecordDelete(a, c, removed, cursorHint)

	mutate := func(p position.Position) position.Position {
		return cursor.AdvanceOnDelete(p, a, c)
	}
	panes.Walk(b.ID, mutate)
	b.broadcastHighlights(mutate)

	if reparse && tok != nil {
		b.reparse(tok)
	}

	return nil
}

// sliceRange returns a fresh copy of the bytes in [a, c), joining lines with
// '\n' where the range spans more than one line.
func (b *Buffer) sliceRange(a, c position.Position) []byte {
	if a.Line == c.Line {
		return append([]byte(nil), b.lines[a.Line][a.Col:c.Col]...)
	}
	var buf bytes.Buffer
	buf.Write(b.lines[a.Line][a.Col:])
	for y := a.Line + 1; y < c.Line; y++ {
		buf.WriteByte('\n')
		buf.Write(b.lines[y])
	}
	buf.WriteByte('\n')
	buf.Write(b.lines[c.Line][:c.Col])
	return buf.Bytes()
}

// spliceRemove performs the line-vector splice for RemoveRange. Ported from
// original_source's BufferData::remove_range.
func (b *Buffer) spliceRemove(a, c position.Position) {
	if a.Line == c.Line {
		line := b.lines[a.Line]
		newLine := make([]byte, 0, len(line)-(c.Col-a.Col))
		newLine = append(newLine, line[:a.Col]...)
		newLine = append(newLine, line[c.Col:]...)
		b.lines[a.Line] = newLine
		return
	}

	merged := make([]byte, 0, a.Col+(len(b.lines[c.Line])-c.Col))
	merged = append(merged, b.lines[a.Line][:a.Col]...)
	merged = append(merged, b.lines[c.Line][c.Col:]...)

	newLines := make([][]byte, 0, len(b.lines)-(c.Line-a.Line))
	newLines = append(newLines, b.lines[:a.Line]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, b.lines[c.Line+1:]...)
	b.lines = newLines
}

func (b *Buffer) broadcastHighlights(mutate observer.Mutate) {
	for i := range b.highlights {
		b.highlights[i].Range.Start = mutate(b.highlights[i].Range.Start)
		b.highlights[i].Range.End = mutate(b.highlights[i].Range.End)
	}
}

func (b *Buffer) reparse(tok tokenizer.Tokenizer) {
	result, err := tok.Parse(b.lines, b.language)
	if err != nil {
		return
	}
	b.tokens = result
}

// Reparse forces a whole-buffer re-tokenization outside of an edit, e.g.
// after SetTabStyle or a language change.
func (b *Buffer) Reparse(tok tokenizer.Tokenizer) {
	if tok != nil {
		b.reparse(tok)
	}
}
