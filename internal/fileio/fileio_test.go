package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cribalik/cmantic/internal/buffer"
)

func TestLoadBufferDetectsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBuffer(OSLoader{}, path)
	if err != nil {
		t.Fatalf("LoadBuffer failed: %v", err)
	}
	if b.LineEnding() != buffer.LineEndingCRLF {
		t.Fatalf("got %v want CRLF", b.LineEnding())
	}
	if b.Text() != "one\ntwo\n" {
		t.Fatalf("got %q", b.Text())
	}
	if b.Modified() {
		t.Fatal("freshly loaded buffer should not be modified")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBuffer(OSLoader{}, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(b); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "a\r\nb\r\n" {
		t.Fatalf("got %q, want original bytes preserved via detected endline", string(raw))
	}
}

func TestLoadMissingFileReturnsErrLoad(t *testing.T) {
	_, err := LoadBuffer(OSLoader{}, filepath.Join(t.TempDir(), "nope.txt"))
	if err != buffer.ErrLoad {
		t.Fatalf("got %v, want ErrLoad", err)
	}
}
