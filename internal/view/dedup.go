package view

// DeduplicateCursors removes cursors that share a position with an
// earlier-indexed cursor, via O(n^2) pairwise comparison. Order of the
// surviving cursors is not guaranteed to match input order beyond stability
// of the earliest occurrence. Ported from original_source's
// BufferView::update, the dedup pass run after every batch of motions.
func (v *View) DeduplicateCursors() {
	out := v.Cursors[:0]
	for i, c := range v.Cursors {
		dup := false
		for j := 0; j < i; j++ {
			if v.Cursors[j].Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	v.Cursors = out
}

// CollapseCursors discards every cursor but the first, unlike
// DeduplicateCursors which merges same-position cursors but otherwise
// leaves the rest of the set alone. Ported from original_source's
// BufferView::collapse_cursors.
func (v *View) CollapseCursors() {
	v.Cursors = v.Cursors[:1]
}
