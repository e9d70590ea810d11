package view

import (
	"testing"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/position"
)

func TestGhostEOLRestoresLongLineColumn(t *testing.T) {
	buf := buffer.NewFromText("longline\nhi\nanother long line\n")
	v := New(buf)
	v.Cursors[0] = cursor.Cursor{Pos: position.New(0, 8), GhostX: cursor.GhostEOL}

	v.MoveY(0, 1) // onto "hi": GhostEOL snaps to end-of-line (2)
	if got, want := v.Cursors[0].Pos, position.New(1, 2); got != want {
		t.Fatalf("got %v want %v", got, want)
	}

	v.MoveY(0, 1) // onto the long line: GhostEOL still snaps to its end
	if got, want := v.Cursors[0].Pos, position.New(2, len("another long line")); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestStickyGhostXSurvivesShortLine(t *testing.T) {
	buf := buffer.NewFromText("0123456789\nhi\n0123456789\n")
	v := New(buf)
	v.Cursors[0] = cursor.New(position.New(0, 0))
	v.MoveX(0, 7) // visual column 7

	v.MoveY(0, 1) // onto "hi": clamps to line length (2), ghost_x preserved
	if got, want := v.Cursors[0].Pos, position.New(1, 2); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
	if v.Cursors[0].GhostX != 7 {
		t.Fatalf("ghost_x should survive the short line, got %d", v.Cursors[0].GhostX)
	}

	v.MoveY(0, 1) // back onto the long line: restores visual column 7
	if got, want := v.Cursors[0].Pos, position.New(2, 7); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDeduplicateCursors(t *testing.T) {
	v := New(buffer.NewFromText("abc\n"))
	v.Cursors = []cursor.Cursor{
		cursor.New(position.New(0, 0)),
		cursor.New(position.New(0, 1)),
		cursor.New(position.New(0, 0)),
	}
	v.DeduplicateCursors()
	if len(v.Cursors) != 2 {
		t.Fatalf("expected 2 surviving cursors, got %d: %v", len(v.Cursors), v.Cursors)
	}
}

func TestJumplistPushSkipsRepeat(t *testing.T) {
	v := New(buffer.NewFromText("a\nb\nc\n"))
	v.JumplistPush()
	v.JumplistPush() // same pos, should not duplicate
	if len(v.Jumplist) != 1 {
		t.Fatalf("expected jumplist len 1, got %d", len(v.Jumplist))
	}

	v.MoveTo(0, position.New(1, 0))
	v.JumplistPush()
	if len(v.Jumplist) != 2 {
		t.Fatalf("expected jumplist len 2, got %d", len(v.Jumplist))
	}

	if !v.JumplistPrev() {
		t.Fatal("expected JumplistPrev to move")
	}
	if got, want := v.Cursors[0].Pos, position.New(0, 0); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFindForward(t *testing.T) {
	v := New(buffer.NewFromText("hello world\nfoo bar\n"))
	p := position.New(0, 0)
	if !v.Find([]byte("world"), true, &p) {
		t.Fatal("expected to find needle")
	}
	if want := position.New(0, 6); p != want {
		t.Fatalf("got %v want %v", p, want)
	}

	p = position.New(0, 6)
	if !v.Find([]byte("foo"), false, &p) {
		t.Fatal("expected to find needle on next line")
	}
	if want := position.New(1, 0); p != want {
		t.Fatalf("got %v want %v", p, want)
	}
}
