package watch

import (
	"github.com/fsnotify/fsnotify"

	"github.com/cribalik/cmantic/internal/buffer"
)

// Watcher tracks a set of file-bound buffers and reports which ones changed
// on disk, via one shared fsnotify watcher.
type Watcher struct {
	fsw     *fsnotify.Watcher
	buffers map[string]*buffer.Buffer
}

// New starts a Watcher backed by a fresh fsnotify instance.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw, buffers: make(map[string]*buffer.Buffer)}, nil
}

// Add starts watching b's backing path. A dynamic (non-file-bound) buffer is
// silently ignored.
func (w *Watcher) Add(b *buffer.Buffer) error {
	if b.Path() == "" {
		return nil
	}
	if err := w.fsw.Add(b.Path()); err != nil {
		return err
	}
	w.buffers[b.Path()] = b
	return nil
}

// Remove stops watching b's backing path.
func (w *Watcher) Remove(b *buffer.Buffer) {
	if b.Path() == "" {
		return
	}
	_ = w.fsw.Remove(b.Path())
	delete(w.buffers, b.Path())
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Changed returns the buffer a write/create event corresponds to, and true,
// blocking until the next relevant fsnotify event or watcher error. A
// watcher-level error surfaces as (nil, false); the caller should treat that
// as a reason to stop watching rather than retry in a tight loop.
func (w *Watcher) Changed() (*buffer.Buffer, bool) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil, false
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if b, found := w.buffers[ev.Name]; found {
				return b, true
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return nil, false
			}
			return nil, false
		}
	}
}
