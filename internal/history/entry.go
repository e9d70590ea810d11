package history

import (
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/position"
)

// Kind discriminates the five undo-log entry variants. This is a tagged
// union, not a type hierarchy: every Entry carries one Kind and only the
// fields that Kind uses are meaningful.
type Kind uint8

const (
	KindGroupBegin Kind = iota
	KindGroupEnd
	KindCursorSnapshot
	KindInsert
	KindDelete
)

// NoCursorHint marks an Insert/Delete entry not attributed to a specific
// cursor (e.g. a programmatic edit outside any user cursor's action).
const NoCursorHint = -1

// Entry is one undo-log record.
type Entry struct {
	Kind Kind

	// Insert / Delete fields.
	A, B       position.Position
	Bytes      []byte
	CursorHint int

	// CursorSnapshot field.
	Cursors []cursor.Cursor
}

func cloneCursors(cs []cursor.Cursor) []cursor.Cursor {
	out := make([]cursor.Cursor, len(cs))
	copy(out, cs)
	return out
}

func cursorsEqual(a, b []cursor.Cursor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
