package view

import (
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/position"
)

// MoveX advances cursors[idx] by dx UTF-8 characters, clamping to the line's
// bounds, and sets ghost_x to the new visual column. Ported from
// original_source's BufferView::move_x.
func (v *View) MoveX(idx, dx int) {
	c := &v.Cursors[idx]
	p := c.Pos
	for ; dx > 0; dx-- {
		if p.Col >= v.Buf.LineLen(p.Line) {
			break
		}
		p.Col = v.Buf.NextRune(p.Line, p.Col)
	}
	for ; dx < 0; dx++ {
		if p.Col <= 0 {
			break
		}
		p.Col = v.Buf.PrevRune(p.Line, p.Col)
	}
	c.Pos = p
	c.GhostX = v.Buf.VisualOffset(p.Line, p.Col)
}

// MoveToX sets cursors[idx]'s column to x (clamped to the line), updating
// ghost_x. Ported from original_source's BufferView::move_to_x.
func (v *View) MoveToX(idx, x int) {
	c := &v.Cursors[idx]
	if x < 0 {
		x = 0
	}
	if n := v.Buf.LineLen(c.Pos.Line); x > n {
		x = n
	}
	c.Pos.Col = x
	c.GhostX = v.Buf.VisualOffset(c.Pos.Line, x)
}

// MoveY moves cursors[idx] dy lines, clamping y to the buffer, then derives
// the new column from ghost_x: GhostEOL snaps to end-of-line, GhostBOL snaps
// to the first non-whitespace byte, otherwise the stored visual column is
// translated back to a byte offset. Ported from original_source's
// BufferView::move_y.
func (v *View) MoveY(idx, dy int) {
	c := &v.Cursors[idx]
	y := c.Pos.Line + dy
	if y < 0 {
		y = 0
	}
	if n := v.Buf.LineCount(); y >= n {
		y = n - 1
	}
	v.landOnLine(idx, y)
}

// MoveToY moves cursors[idx] to absolute line y (clamped), deriving the
// column from ghost_x the same way MoveY does: both land through the same
// ghost_x-translation rule for vertical motion.
func (v *View) MoveToY(idx, y int) {
	if y < 0 {
		y = 0
	}
	if n := v.Buf.LineCount(); y >= n {
		y = n - 1
	}
	v.landOnLine(idx, y)
}

func (v *View) landOnLine(idx, y int) {
	c := &v.Cursors[idx]
	var x int
	switch c.GhostX {
	case cursor.GhostEOL:
		x = v.Buf.LineLen(y)
	case cursor.GhostBOL:
		x = v.Buf.FirstNonWhitespace(y)
	default:
		x = v.Buf.FromVisualOffset(y, c.GhostX)
	}
	c.Pos = position.New(y, x)
}

// MoveTo sets cursors[idx] to an absolute position, clamped to the buffer,
// and refreshes ghost_x from the landing column's visual offset. Ported from
// original_source's BufferView::move_to.
func (v *View) MoveTo(idx int, p position.Position) {
	p = v.Buf.Clamp(p)
	v.Cursors[idx].Pos = p
	v.Cursors[idx].GhostX = v.Buf.VisualOffset(p.Line, p.Col)
}
