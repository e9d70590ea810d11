package query

import (
	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/position"
)

// Rect is a rectangular selection region in buffer coordinates.
type Rect struct {
	X, Y, W, H int
}

// RectCell is one position GetRect's iterator yields: either a real buffer
// byte at Pos, or a synthetic newline marking a row boundary.
type RectCell struct {
	Pos       position.Position
	Byte      byte
	IsNewline bool
}

// RectIter lazily walks the positions inside a Rect, row-major, per spec
// §4.5's getrect. Ported from original_source's BufferData::getrect.
type RectIter struct {
	buf *buffer.Buffer
	r   Rect

	row       int
	x         int
	rowEnd    int
	emittedNL bool
	done      bool
}

// GetRect returns an iterator over r's positions, with r.H clamped so the
// rectangle never reaches past the buffer's last line.
func GetRect(buf *buffer.Buffer, r Rect) *RectIter {
	maxH := buf.LineCount() - 1 - r.Y
	if r.H > maxH {
		r.H = maxH
	}
	if r.H < 0 {
		r.H = -1 // no rows at all
	}
	it := &RectIter{buf: buf, r: r}
	if r.H < 0 {
		it.done = true
		return it
	}
	it.resetRow()
	return it
}

func (it *RectIter) resetRow() {
	y := it.r.Y + it.row
	lineLen := 0
	if y >= 0 && y < it.buf.LineCount() {
		lineLen = it.buf.LineLen(y)
	}
	end := it.r.X + it.r.W
	if end > lineLen {
		end = lineLen
	}
	it.rowEnd = end
	it.x = it.r.X
	it.emittedNL = false
}

// Next returns the next cell, or ok=false once the rectangle is exhausted.
func (it *RectIter) Next() (cell RectCell, ok bool) {
	for {
		if it.done {
			return RectCell{}, false
		}
		y := it.r.Y + it.row
		if it.x < it.rowEnd {
			p := position.New(y, it.x)
			c, _ := it.buf.GetChar(p)
			it.x++
			return RectCell{Pos: p, Byte: c}, true
		}
		if !it.emittedNL {
			it.emittedNL = true
			return RectCell{Pos: position.New(y, it.rowEnd), Byte: '\n', IsNewline: true}, true
		}
		it.row++
		if it.row > it.r.H {
			it.done = true
			continue
		}
		it.resetRow()
	}
}
