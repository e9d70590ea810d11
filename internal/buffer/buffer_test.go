package buffer

import (
	"testing"

	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/position"
)

func newTestBuffer(text string) *Buffer {
	return NewFromText(text)
}

func TestMultiCursorInsert(t *testing.T) {
	b := newTestBuffer("ab\ncd\n")
	cursors := []cursor.Cursor{cursor.New(position.New(0, 0)), cursor.New(position.New(1, 0))}

	b.ActionBegin(cursors)
	for i := range cursors {
		end, err := b.Insert(observer.NopWalker{}, cursors[i].Pos, []byte("X"), i, false, nil)
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		// Self-update this cursor (the test stands in for the pane
		// registry broadcast, since NopWalker has no panes registered).
		cursors[i].Pos = end
		for j := range cursors {
			if j != i {
				cursors[j].Pos = cursor.AdvanceOnInsert(cursors[j].Pos, position.New(i, 0), end)
			}
		}
	}
	b.ActionEnd(cursors)

	if got, want := b.Text(), "Xab\nXcd\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if cursors[0].Pos != position.New(0, 1) || cursors[1].Pos != position.New(1, 1) {
		t.Fatalf("unexpected cursor positions: %v", cursors)
	}

	if !b.CanUndo() {
		t.Fatal("expected an undo step")
	}
}

func TestCrossLineDelete(t *testing.T) {
	b := newTestBuffer("hello\nworld\n")
	cursors := []cursor.Cursor{cursor.New(position.New(1, 4))}

	b.ActionBegin(cursors)
	a := position.New(0, 2)
	c := position.New(1, 3)
	err := b.RemoveRange(observer.NopWalker{}, a, c, 0, false, nil)
	if err != nil {
		t.Fatalf("remove_range failed: %v", err)
	}
	cursors[0].Pos = cursor.AdvanceOnDelete(cursors[0].Pos, a, c)
	b.ActionEnd(cursors)

	if got, want := b.Text(), "held\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if want := position.New(0, 3); cursors[0].Pos != want {
		t.Fatalf("got cursor %v, want %v", cursors[0].Pos, want)
	}
}

func TestNoOpGroupLeavesHistoryUnchanged(t *testing.T) {
	b := newTestBuffer("abc\n")
	cs := []cursor.Cursor{cursor.New(position.New(0, 0))}
	b.ActionBegin(cs)
	b.ActionEnd(cs)
	if b.CanUndo() {
		t.Fatal("expected no undo entry from a no-op group")
	}
}

func TestUndoRestoresContentAndCursors(t *testing.T) {
	b := newTestBuffer("abc\n")
	before := []cursor.Cursor{cursor.New(position.New(0, 0))}

	b.ActionBegin(before)
	end, err := b.Insert(observer.NopWalker{}, position.New(0, 0), []byte("X"), 0, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	after := []cursor.Cursor{{Pos: end, GhostX: end.Col}}
	b.ActionEnd(after)

	if got, want := b.Text(), "Xabc\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	live := append([]cursor.Cursor(nil), after...)
	if err := b.Undo(observer.NopWalker{}, &live, nil); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if got, want := b.Text(), "abc\n"; got != want {
		t.Fatalf("after undo got %q want %q", got, want)
	}
	if len(live) != 1 || live[0] != before[0] {
		t.Fatalf("expected cursors restored to %v, got %v", before, live)
	}

	if err := b.Redo(observer.NopWalker{}, &live, nil); err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if got, want := b.Text(), "Xabc\n"; got != want {
		t.Fatalf("after redo got %q want %q", got, want)
	}
	if len(live) != 1 || live[0] != after[0] {
		t.Fatalf("expected cursors restored to %v, got %v", after, live)
	}
}

func TestRemoveRangeRejectsInvertedRange(t *testing.T) {
	b := newTestBuffer("abc\n")
	err := b.RemoveRange(observer.NopWalker{}, position.New(0, 2), position.New(0, 0), 0, false, nil)
	if err != ErrRangeInvalid {
		t.Fatalf("got err %v, want ErrRangeInvalid", err)
	}
}

func TestRemoveRangeEmptyIsNoOp(t *testing.T) {
	b := newTestBuffer("abc\n")
	before := b.Text()
	if err := b.RemoveRange(observer.NopWalker{}, position.New(0, 1), position.New(0, 1), 0, false, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Text() != before {
		t.Fatalf("expected no change, got %q", b.Text())
	}
}

func TestInsertNewlineEquivalence(t *testing.T) {
	b1 := newTestBuffer("ab\ncd\n")
	end1, _ := b1.Insert(observer.NopWalker{}, position.New(0, 2), []byte("\n"), 0, false, nil)

	b2 := newTestBuffer("ab\ncd\n")
	end2, _ := b2.Insert(observer.NopWalker{}, position.New(1, 0), []byte("\n"), 0, false, nil)

	if b1.Text() != b2.Text() {
		t.Fatalf("expected identical final state, got %q vs %q", b1.Text(), b2.Text())
	}
	_ = end1
	_ = end2
}

func TestLineCountInvariantNeverZero(t *testing.T) {
	b := newTestBuffer("only line")
	if err := b.RemoveRange(observer.NopWalker{}, position.New(0, 0), position.New(0, len("only line")), 0, false, nil); err != nil {
		t.Fatal(err)
	}
	if b.LineCount() < 1 {
		t.Fatal("line count dropped below 1")
	}
	if b.Text() != "" {
		t.Fatalf("expected empty text, got %q", b.Text())
	}
}

func TestMultiByteCharacterAtLineBoundary(t *testing.T) {
	// "é" = 0xC3 0xA9, placed at the end of a line.
	b := newTestBuffer("café\nx")
	line := b.LineText(0)
	next := b.NextRune(0, len(line)-2)
	if next != len(line) {
		t.Fatalf("NextRune should land on end of line past the 2-byte rune, got %d want %d", next, len(line))
	}
	prev := b.PrevRune(0, len(line))
	if prev != len(line)-2 {
		t.Fatalf("PrevRune should land before the 2-byte rune, got %d want %d", prev, len(line)-2)
	}
}
