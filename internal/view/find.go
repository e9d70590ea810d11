package view

import (
	"bytes"

	"github.com/cribalik/cmantic/internal/position"
)

// Find scans forward from p for needle: if stay is false, scanning starts
// just after p; otherwise at p itself. It searches the current line's
// suffix first, then each following line from its start. On a hit, *p is
// updated and Find returns true. Ported from original_source's
// BufferView::find.
func (v *View) Find(needle []byte, stay bool, p *position.Position) bool {
	y, x := p.Line, p.Col
	if !stay {
		x++
	}
	for y < v.Buf.LineCount() {
		line := v.Buf.LineText(y)
		if x <= len(line) {
			if i := bytes.Index(line[x:], needle); i >= 0 {
				*p = position.New(y, x+i)
				return true
			}
		}
		y++
		x = 0
	}
	return false
}

// FindR is the reverse of Find: scans backward from p (or just before p
// when stay is false), searching the current line's prefix then each
// preceding line from its end.
func (v *View) FindR(needle []byte, stay bool, p *position.Position) bool {
	y, x := p.Line, p.Col
	if !stay {
		x--
	}
	for y >= 0 {
		line := v.Buf.LineText(y)
		hi := x + len(needle)
		if hi > len(line) {
			hi = len(line)
		}
		if hi >= 0 {
			if i := bytes.LastIndex(line[:hi], needle); i >= 0 {
				*p = position.New(y, i)
				return true
			}
		}
		y--
		if y >= 0 {
			x = v.Buf.LineLen(y)
		}
	}
	return false
}

// FindAndMove applies Find to every cursor independently, returning true if
// at least one cursor moved.
func (v *View) FindAndMove(needle []byte, stay bool) bool {
	moved := false
	for i := range v.Cursors {
		p := v.Cursors[i].Pos
		if v.Find(needle, stay, &p) {
			v.MoveTo(i, p)
			moved = true
		}
	}
	return moved
}

// FindAndMoveR is the reverse of FindAndMove.
func (v *View) FindAndMoveR(needle []byte, stay bool) bool {
	moved := false
	for i := range v.Cursors {
		p := v.Cursors[i].Pos
		if v.FindR(needle, stay, &p) {
			v.MoveTo(i, p)
			moved = true
		}
	}
	return moved
}
