package view

// JumplistPush appends cursors[0].Pos to the jumplist unless it equals the
// entry immediately before the current jumplist position, then moves
// JumplistPos to the new end. Ported from original_source's
// BufferView::push_jump.
func (v *View) JumplistPush() {
	p := v.Cursors[0].Pos
	if v.JumplistPos > 0 && v.Jumplist[v.JumplistPos-1] == p {
		return
	}
	v.Jumplist = append(v.Jumplist[:v.JumplistPos], p)
	v.JumplistPos = len(v.Jumplist)
}

// JumplistPrev collapses back down to a single cursor, steps JumplistPos
// back, and moves that cursor there, skipping over any run of entries equal
// to the current position. Returns false if already at the start of the
// list.
func (v *View) JumplistPrev() bool {
	v.CollapseCursors()
	for v.JumplistPos > 0 {
		v.JumplistPos--
		target := v.Jumplist[v.JumplistPos]
		if target == v.Cursors[0].Pos {
			continue
		}
		v.MoveTo(0, target)
		return true
	}
	return false
}

// JumplistNext is symmetric to JumplistPrev, stepping forward.
func (v *View) JumplistNext() bool {
	v.CollapseCursors()
	for v.JumplistPos < len(v.Jumplist)-1 {
		v.JumplistPos++
		target := v.Jumplist[v.JumplistPos]
		if target == v.Cursors[0].Pos {
			continue
		}
		v.MoveTo(0, target)
		return true
	}
	return false
}
