package view

import (
	"github.com/google/uuid"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/position"
)

// View is a pane's binding to a Buffer: a non-empty cursor array plus a
// jumplist. Ported from original_source's BufferView.
type View struct {
	Buf     *buffer.Buffer
	Cursors []cursor.Cursor

	Jumplist    []position.Position
	JumplistPos int
}

// New returns a View bound to buf with a single cursor at the origin.
func New(buf *buffer.Buffer) *View {
	return &View{
		Buf:     buf,
		Cursors: []cursor.Cursor{cursor.New(position.New(0, 0))},
	}
}

// WalkObservers applies mutate to every cursor and jumplist entry this view
// owns, if it is bound to bufferID. Implements the per-view half of the
// observer.Walker contract a pane registry dispatches through: every cursor
// of every bound view, and every entry of each such view's jumplist. After
// either broadcast, a touched cursor's ghost_x no longer describes its new
// position, so it is reset to the visual column the cursor now sits at.
func (v *View) WalkObservers(bufferID uuid.UUID, mutate observer.Mutate) {
	if v.Buf == nil || v.Buf.ID != bufferID {
		return
	}
	for i := range v.Cursors {
		v.Cursors[i].Pos = mutate(v.Cursors[i].Pos)
		v.Cursors[i].GhostX = v.Buf.VisualOffset(v.Cursors[i].Pos.Line, v.Cursors[i].Pos.Col)
	}
	for i := range v.Jumplist {
		v.Jumplist[i] = mutate(v.Jumplist[i])
	}
}
