package cursor

import "github.com/cribalik/cmantic/internal/position"

// Sentinel values for Cursor.GhostX.
const (
	// GhostEOL means the cursor always snaps to end-of-line on vertical
	// motion, regardless of the target line's length.
	GhostEOL = -1
	// GhostBOL means the cursor always snaps to the first non-whitespace
	// byte of the target line on vertical motion.
	GhostBOL = -2
)

// Cursor is a position into a buffer plus the sticky visual column used by
// vertical motion.
type Cursor struct {
	Pos     position.Position
	GhostX  int
}

// New returns a Cursor at pos with ghost_x derived from pos.Col. Callers
// performing horizontal motion should instead set GhostX from the buffer's
// visual_offset so that tab expansion is accounted for; New is a convenience
// for callers (tests, initial cursor placement) that don't need that.
func New(pos position.Position) Cursor {
	return Cursor{Pos: pos, GhostX: pos.Col}
}

// Equal reports whether two cursors have the same position. GhostX is not
// part of cursor identity for deduplication purposes (spec invariant 4: no
// two cursors in a view share the same pos).
func (c Cursor) Equal(o Cursor) bool {
	return c.Pos == o.Pos
}
