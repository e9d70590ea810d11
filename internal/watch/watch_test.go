package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cribalik/cmantic/internal/buffer"
)

func TestWatcherReportsChangedBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	b := buffer.NewFromText("hi\n", buffer.WithPath(path))
	if err := w.Add(b); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	done := make(chan *buffer.Buffer, 1)
	go func() {
		got, ok := w.Changed()
		if ok {
			done <- got
		} else {
			done <- nil
		}
	}()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("hi\nthere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-done:
		if got != b {
			t.Fatalf("got %v, want the watched buffer", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for fsnotify event")
	}
}
