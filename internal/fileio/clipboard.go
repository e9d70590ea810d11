package fileio

// RegisterClipboard is an in-process clipboard sink: it satisfies
// history.ClipboardSink structurally (SetClipboardText) by holding the most
// recently synthesized text in memory, the way original_source's unnamed
// register holds the last yank/delete absent a system clipboard. Not
// synchronized, matching the engine's single-threaded, cooperative
// scheduling model; callers must not share one across
// goroutines without their own locking. A production build can wrap an OS
// clipboard utility behind the same interface without the history package
// ever importing fileio.
type RegisterClipboard struct {
	text string
}

// SetClipboardText stores text as the current register contents.
func (c *RegisterClipboard) SetClipboardText(text string) error {
	c.text = text
	return nil
}

// Text returns the current register contents.
func (c *RegisterClipboard) Text() string {
	return c.text
}
