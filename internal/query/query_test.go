package query

import (
	"testing"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

func tok(kind tokenizer.Kind, sy, sx, ey, ex int, text string) tokenizer.Token {
	return tokenizer.Token{Kind: kind, Start: position.New(sy, sx), End: position.New(ey, ex), Text: text}
}

func TestGetToken(t *testing.T) {
	tokens := []tokenizer.Token{
		tok(tokenizer.KindIdentifier, 0, 0, 0, 3, "foo"),
		tok(tokenizer.KindOther, 0, 3, 0, 4, "("),
		tok(tokenizer.KindIdentifier, 0, 4, 0, 7, "bar"),
	}
	got, ok := GetToken(tokens, position.New(0, 5))
	if !ok || got.Text != "bar" {
		t.Fatalf("got %v ok=%v, want bar", got, ok)
	}

	_, ok = GetToken(tokens, position.New(0, 100))
	if ok {
		t.Fatal("expected no token past the end")
	}
}

func TestFindStartOfIdentifier(t *testing.T) {
	tokens := []tokenizer.Token{
		tok(tokenizer.KindIdentifier, 0, 0, 0, 3, "foo"),
	}
	got, ok := FindStartOfIdentifier(tokens, position.New(0, 3))
	if !ok || got.Text != "foo" {
		t.Fatalf("got %v ok=%v, want foo", got, ok)
	}

	_, ok = FindStartOfIdentifier(tokens, position.New(0, 0))
	if ok {
		t.Fatal("expected false at column 0 with nothing before it")
	}
}

func TestGetRectEmitsSyntheticNewlines(t *testing.T) {
	b := buffer.NewFromText("abcdef\nghijkl\n")
	it := GetRect(b, Rect{X: 1, Y: 0, W: 3, H: 1})

	var out []byte
	for {
		cell, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, cell.Byte)
	}
	if got, want := string(out), "bcd\nhij\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestGetMergedRange(t *testing.T) {
	b := buffer.NewFromText("foo  bar\nbaz\nqux   quux\n")
	r := position.NewRange(position.New(0, 3), position.New(2, 3))
	got := GetMergedRange(b, r)
	want := " bar baz qux"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
