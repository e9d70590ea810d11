package history

import (
	"bytes"
	"sort"
	"strings"

	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/position"
)

// DefaultMaxGroups bounds how many committed action groups a Log retains
// before trimming the oldest, guarding against unbounded growth. This log
// is a flat tagged stream, so trimming works on whole groups, the smallest
// unit that can be dropped without corrupting a balanced frame.
const DefaultMaxGroups = 1000

// Log is the flat, tagged-entry undo/redo log. It never touches buffer
// content directly; internal/buffer calls back into Log at the right
// points and replays entries itself during Undo/Redo.
type Log struct {
	entries       []Entry
	nextIndex     int
	lastSaveIndex int
	groupDepth    int
	suppressed    int
	maxGroups     int
}

// NewLog returns an empty Log. maxGroups <= 0 means unbounded.
func NewLog(maxGroups int) *Log {
	return &Log{maxGroups: maxGroups}
}

// Recording reports whether new entries are currently being appended. It is
// false while Undo/Redo are replaying, so replayed edits do not themselves
// generate new undo entries.
func (l *Log) Recording() bool { return l.suppressed == 0 }

// SuppressRecording increments the reentrant "undo_disabled" counter.
func (l *Log) SuppressRecording() { l.suppressed++ }

// ResumeRecording decrements the reentrant "undo_disabled" counter.
func (l *Log) ResumeRecording() { l.suppressed-- }

// GroupDepth returns the current action-group nesting depth.
func (l *Log) GroupDepth() int { return l.groupDepth }

// CanUndo reports whether there is a committed group to undo.
func (l *Log) CanUndo() bool { return l.nextIndex > 0 }

// CanRedo reports whether there is an undone-but-retained group to redo.
func (l *Log) CanRedo() bool { return l.nextIndex < len(l.entries) }

// NextIndex returns the log's current insertion point.
func (l *Log) NextIndex() int { return l.nextIndex }

// LastSaveIndex returns the index recorded at the last save, or -1 if it has
// been invalidated by a redo truncation that discarded it.
func (l *Log) LastSaveIndex() int { return l.lastSaveIndex }

// MarkSaved records the current NextIndex as the save marker.
func (l *Log) MarkSaved() { l.lastSaveIndex = l.nextIndex }

// Modified reports whether the log has diverged from the save marker.
// Callers additionally gate this on "is this buffer file-bound" per spec.
func (l *Log) Modified() bool { return l.nextIndex != l.lastSaveIndex }

// push appends e at NextIndex, discarding any redo tail first (spec's
// push_undo_action). If the discarded tail contained the save marker, the
// marker is invalidated to -1: it is no longer reachable by any undo/redo.
func (l *Log) push(e Entry) {
	if l.nextIndex < len(l.entries) {
		if l.lastSaveIndex > l.nextIndex {
			l.lastSaveIndex = -1
		}
		l.entries = l.entries[:l.nextIndex]
	}
	l.entries = append(l.entries, e)
	l.nextIndex++
}

// ActionBegin opens an action group, recording the starting cursor snapshot
// the first time depth transitions 0->1. Nested calls only bump depth: a
// composite operation built from several RemoveRange/Insert calls wrapped in
// their own ActionBegin/ActionEnd pairs still groups into one undo step.
func (l *Log) ActionBegin(cursors []cursor.Cursor) {
	if !l.Recording() {
		return
	}
	if l.groupDepth == 0 {
		l.push(Entry{Kind: KindGroupBegin})
		l.push(Entry{Kind: KindCursorSnapshot, Cursors: cloneCursors(cursors)})
	}
	l.groupDepth++
}

// ActionEnd closes one level of action grouping. When depth reaches 0 it
// either elides a no-op group (no mutation, cursors unchanged) or commits
// the group and runs clipboard synthesis, returning the synthesized text
// and whether synthesis produced anything to copy.
func (l *Log) ActionEnd(cursors []cursor.Cursor) (clipboardText string, hasClipboard bool) {
	if !l.Recording() {
		return "", false
	}
	if l.groupDepth == 0 {
		return "", false
	}
	l.groupDepth--
	if l.groupDepth > 0 {
		return "", false
	}

	n := len(l.entries)
	if n >= 2 &&
		l.entries[n-1].Kind == KindCursorSnapshot &&
		l.entries[n-2].Kind == KindGroupBegin &&
		cursorsEqual(l.entries[n-1].Cursors, cursors) {
		l.entries = l.entries[:n-2]
		l.nextIndex -= 2
		return "", false
	}

	l.push(Entry{Kind: KindCursorSnapshot, Cursors: cloneCursors(cursors)})
	l.push(Entry{Kind: KindGroupEnd})
	text, ok := l.synthesizeClipboard()
	l.trimIfNeeded()
	return text, ok
}

// synthesizeClipboard builds the clipboard text a just-committed group
// yields, if any. It must be called right after committing a group (the
// just-pushed GroupEnd is the last entry).
func (l *Log) synthesizeClipboard() (string, bool) {
	end := len(l.entries) - 1 // the GroupEnd we just pushed
	start := end
	for start >= 0 && l.entries[start].Kind != KindGroupBegin {
		start--
	}
	if start < 0 {
		return "", false
	}

	hasInsert := false
	buckets := map[int][][]byte{}
	var order []int
	for i := start + 2; i <= end-2; i++ {
		e := l.entries[i]
		switch e.Kind {
		case KindInsert:
			hasInsert = true
		case KindDelete:
			if e.CursorHint == NoCursorHint {
				continue
			}
			if _, seen := buckets[e.CursorHint]; !seen {
				order = append(order, e.CursorHint)
			}
			buckets[e.CursorHint] = append(buckets[e.CursorHint], e.Bytes)
		}
	}
	if hasInsert || len(order) == 0 {
		return "", false
	}

	sort.Ints(order)
	parts := make([]string, 0, len(order))
	for _, idx := range order {
		var buf bytes.Buffer
		for _, b := range buckets[idx] {
			buf.Write(b)
		}
		parts = append(parts, buf.String())
	}
	return strings.Join(parts, "\n"), true
}

// UndoGroup returns the committed group immediately before NextIndex, in
// forward log order (opening snapshot, ops..., closing snapshot), and
// rewinds NextIndex to the group's GroupBegin. The caller must replay the
// returned entries in REVERSE, inverting INSERT/DELETE and replacing cursors
// on every CursorSnapshot it encounters; the opening snapshot, applied
// last, is the one that should win.
func (l *Log) UndoGroup() ([]Entry, bool) {
	if !l.CanUndo() {
		return nil, false
	}
	end := l.nextIndex - 1
	start := end
	for start >= 0 && l.entries[start].Kind != KindGroupBegin {
		start--
	}
	mid := make([]Entry, 0, end-start)
	for i := start + 1; i < end; i++ {
		mid = append(mid, l.entries[i])
	}
	l.nextIndex = start
	return mid, true
}

// RedoGroup returns the committed group starting at NextIndex, in forward
// log order, and advances NextIndex past its GroupEnd. The caller replays
// the returned entries FORWARD: the closing CursorSnapshot, applied last,
// is the one that wins.
func (l *Log) RedoGroup() ([]Entry, bool) {
	if !l.CanRedo() {
		return nil, false
	}
	start := l.nextIndex
	end := start
	for end < len(l.entries) && l.entries[end].Kind != KindGroupEnd {
		end++
	}
	mid := make([]Entry, 0, end-start)
	for i := start + 1; i < end; i++ {
		mid = append(mid, l.entries[i])
	}
	l.nextIndex = end + 1
	return mid, true
}

// RecordInsert appends an Insert entry unless recording is suppressed.
func (l *Log) RecordInsert(a, b position.Position, text []byte, cursorHint int) {
	if !l.Recording() {
		return
	}
	l.push(Entry{Kind: KindInsert, A: a, B: b, Bytes: append([]byte(nil), text...), CursorHint: cursorHint})
}

// RecordDelete appends a Delete entry unless recording is suppressed.
func (l *Log) RecordDelete(a, b position.Position, text []byte, cursorHint int) {
	if !l.Recording() {
		return
	}
	l.push(Entry{Kind: KindDelete, A: a, B: b, Bytes: append([]byte(nil), text...), CursorHint: cursorHint})
}

// trimIfNeeded drops the oldest committed groups once there are more than
// maxGroups, only when there is no redo tail (trimming while redos are
// pending would require renumbering indices other code already holds).
func (l *Log) trimIfNeeded() {
	if l.maxGroups <= 0 || l.nextIndex != len(l.entries) {
		return
	}
	groupCount := 0
	for _, e := range l.entries {
		if e.Kind == KindGroupBegin {
			groupCount++
		}
	}
	for groupCount > l.maxGroups {
		depth := 0
		dropThrough := -1
		for i, e := range l.entries {
			if e.Kind == KindGroupBegin {
				depth++
			}
			if e.Kind == KindGroupEnd {
				depth--
				if depth == 0 {
					dropThrough = i
					break
				}
			}
		}
		if dropThrough < 0 {
			return
		}
		dropped := dropThrough + 1
		rest := make([]Entry, len(l.entries)-dropped)
		copy(rest, l.entries[dropped:])
		l.entries = rest
		l.nextIndex -= dropped
		if l.lastSaveIndex >= 0 {
			l.lastSaveIndex -= dropped
			if l.lastSaveIndex < 0 {
				l.lastSaveIndex = -1
			}
		}
		groupCount--
	}
}
