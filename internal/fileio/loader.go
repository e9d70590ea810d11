package fileio

import (
	"os"
	"strings"

	"github.com/cribalik/cmantic/internal/buffer"
)

// Loader is the file-loader collaborator: lines_from_file(path) ->
// ([ByteString], endline) | Error. Contents come back without CR bytes;
// endline is detection metadata only.
type Loader interface {
	Load(path string) (text string, endline buffer.LineEnding, err error)
}

// OSLoader reads files directly off the local filesystem.
type OSLoader struct{}

// Load reads path, detects its line ending, and returns its content with CR
// bytes stripped (matching Buffer.ReplaceContent's normalization).
func (OSLoader) Load(path string) (string, buffer.LineEnding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", buffer.LineEndingLF, buffer.ErrLoad
	}
	text := string(raw)
	endline := buffer.DetectLineEnding(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, endline, nil
}

// LoadBuffer loads path through l and returns a new file-bound Buffer. On
// failure it returns buffer.ErrLoad and no buffer, leaving nothing partially
// constructed.
func LoadBuffer(l Loader, path string, opts ...buffer.Option) (*buffer.Buffer, error) {
	text, endline, err := l.Load(path)
	if err != nil {
		return nil, buffer.ErrLoad
	}
	opts = append([]buffer.Option{buffer.WithLineEnding(endline), buffer.WithPath(path)}, opts...)
	b := buffer.NewFromText(text, opts...)
	b.MarkSaved()
	return b, nil
}

// Reload re-reads b's backing file and replaces its content and undo
// history wholesale. b is left untouched if the read fails.
func Reload(l Loader, b *buffer.Buffer) error {
	if b.Path() == "" {
		return buffer.ErrLoad
	}
	text, endline, err := l.Load(b.Path())
	if err != nil {
		return buffer.ErrLoad
	}
	b.ReplaceContent(text, endline)
	b.MarkSaved()
	return nil
}

// Save serializes b's lines with its detected line ending and writes them to
// its backing path.
func Save(b *buffer.Buffer) error {
	if b.Path() == "" {
		return buffer.ErrLoad
	}
	sep := b.LineEnding().Sequence()
	text := joinLines(b, sep)
	if err := os.WriteFile(b.Path(), []byte(text), 0o644); err != nil {
		return buffer.ErrLoad
	}
	b.MarkSaved()
	return nil
}

func joinLines(b *buffer.Buffer, sep string) string {
	n := b.LineCount()
	var out []byte
	for y := 0; y < n; y++ {
		if y > 0 {
			out = append(out, sep...)
		}
		out = append(out, b.LineText(y)...)
	}
	return string(out)
}
