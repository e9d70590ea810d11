package buffer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cribalik/cmantic/internal/history"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// TabHardTabs is the Buffer.TabStyle value meaning "indent with a literal
// tab byte". Any positive value k means "indent with k spaces".
const TabHardTabs = 0

// Highlight is a transient, decaying-alpha range the renderer uses to flash
// recently-edited or pasted text. Alpha is owned by the renderer's decay
// loop; the buffer only ever appends new highlights at Alpha 2.0.
type Highlight struct {
	Range position.Range
	Alpha float64
}

// Buffer is the line-vector document store plus the edit engine primitives
// (Insert, RemoveRange), the undo log, and raw-mode/highlight state. It is
// not safe for concurrent use: the core is single-threaded.
type Buffer struct {
	ID uuid.UUID

	lines      [][]byte
	lineEnding LineEnding
	tabWidth   int
	tabStyle   int // TabHardTabs (0) or k>0 spaces

	language    string
	tokens      tokenizer.Result
	description string
	dynamic     bool
	path        string

	highlights []Highlight

	rawModeDepth int
	hist         *history.Log
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithLineEnding sets the buffer's detected line ending.
func WithLineEnding(e LineEnding) Option {
	return func(b *Buffer) { b.lineEnding = e }
}

// WithTabWidth sets the visual width of a hard tab. Width 0 is ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithLanguage sets the buffer's language tag, normally derived via
// tokenizer.LanguageForFilename.
func WithLanguage(lang string) Option {
	return func(b *Buffer) { b.language = lang }
}

// WithDescription sets a human-readable label for an anonymous buffer.
func WithDescription(desc string) Option {
	return func(b *Buffer) { b.description = desc }
}

// WithDynamic marks the buffer as a dynamic/scratch buffer rather than a
// persistent file-bound one.
func WithDynamic() Option {
	return func(b *Buffer) { b.dynamic = true }
}

// WithPath binds the buffer to a backing file path, making it file-bound
// rather than dynamic.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
		b.dynamic = false
	}
}

// WithMaxUndoGroups bounds how many committed undo groups are retained.
func WithMaxUndoGroups(n int) Option {
	return func(b *Buffer) { b.hist = history.NewLog(n) }
}

const defaultTabWidth = 8

// New returns an empty Buffer: a single empty line, LF endings, tab width 8,
// hard tabs, dynamic (no backing file) unless overridden.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		ID:         uuid.New(),
		lines:      [][]byte{{}},
		lineEnding: LineEndingLF,
		tabWidth:   defaultTabWidth,
		tabStyle:   TabHardTabs,
		dynamic:    true,
		hist:       history.NewLog(history.DefaultMaxGroups),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromText returns a Buffer seeded with text, split on '\n'. CRLF and lone
// CR breaks are turned into line breaks, so no CR byte is stored. It does not
// detect the line ending: that stays LF unless a WithLineEnding option sets
// it (internal/fileio detects it before calling).
func NewFromText(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.setContent(text)
	return b
}

func (b *Buffer) setContent(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	if len(lines) == 0 {
		lines = [][]byte{{}}
	}
	b.lines = lines
}

// History returns the buffer's undo/redo log.
func (b *Buffer) History() *history.Log { return b.hist }

// LineCount returns the number of lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the byte length of line y.
func (b *Buffer) LineLen(y int) int { return len(b.lines[y]) }

// LineText returns a copy of line y's bytes.
func (b *Buffer) LineText(y int) []byte {
	out := make([]byte, len(b.lines[y]))
	copy(out, b.lines[y])
	return out
}

// LineString returns line y as a string.
func (b *Buffer) LineString(y int) string { return string(b.lines[y]) }

// IsEmpty reports whether the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Text returns the full buffer content joined with '\n'.
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// InBounds reports whether p satisfies spec invariant 2:
// 0 <= Line < LineCount() && 0 <= Col <= LineLen(Line).
func (b *Buffer) InBounds(p position.Position) bool {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return false
	}
	return p.Col >= 0 && p.Col <= len(b.lines[p.Line])
}

// Clamp clips p into bounds: Line into [0, LineCount()-1], Col into
// [0, LineLen(Line)].
func (b *Buffer) Clamp(p position.Position) position.Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Line]); p.Col > n {
		p.Col = n
	}
	return p
}

// GetChar returns the byte at p, or 0 and false if p addresses the
// end-of-line slot or is out of bounds.
func (b *Buffer) GetChar(p position.Position) (byte, bool) {
	if !b.InBounds(p) || p.Col >= len(b.lines[p.Line]) {
		return 0, false
	}
	return b.lines[p.Line][p.Col], true
}

// Slice returns the bytes of line y in [start, end).
func (b *Buffer) Slice(y, start, end int) []byte {
	line := b.lines[y]
	if start < 0 {
		start = 0
	}
	if end > len(line) {
		end = len(line)
	}
	if start >= end {
		return nil
	}
	out := make([]byte, end-start)
	copy(out, line[start:end])
	return out
}

// LineEnding returns the buffer's detected line ending.
func (b *Buffer) LineEnding() LineEnding { return b.lineEnding }

// TabWidth returns the visual width of a hard tab.
func (b *Buffer) TabWidth() int { return b.tabWidth }

// TabStyle returns the buffer's indent style: TabHardTabs or k>0 spaces.
func (b *Buffer) TabStyle() int { return b.tabStyle }

// SetTabStyle sets the buffer's indent style. Per spec invariant 7 this is
// meant to be set once after load; the type does not itself enforce that.
func (b *Buffer) SetTabStyle(style int) { b.tabStyle = style }

// Language returns the buffer's language tag.
func (b *Buffer) Language() string { return b.language }

// Tokens returns the most recent parse result.
func (b *Buffer) Tokens() tokenizer.Result { return b.tokens }

// SetTokens installs a new parse result (called after a re-parse).
func (b *Buffer) SetTokens(r tokenizer.Result) { b.tokens = r }

// Description returns the buffer's human-readable label.
func (b *Buffer) Description() string { return b.description }

// IsDynamic reports whether this is a scratch buffer, not file-bound.
func (b *Buffer) IsDynamic() bool { return b.dynamic }

// Path returns the buffer's backing file path, or "" if dynamic.
func (b *Buffer) Path() string { return b.path }

// Modified reports whether the buffer has diverged from its last save,
// gated on being file-bound (a dynamic buffer is never "modified" in the
// save sense).
func (b *Buffer) Modified() bool {
	return !b.dynamic && b.hist.Modified()
}

// MarkSaved records the current undo position as the save marker.
func (b *Buffer) MarkSaved() { b.hist.MarkSaved() }

// RawMode reports whether raw mode is active (depth > 0): autoindent and
// similar conveniences are suppressed.
func (b *Buffer) RawMode() bool { return b.rawModeDepth > 0 }

// RawBegin increments the reentrant raw-mode depth.
func (b *Buffer) RawBegin() { b.rawModeDepth++ }

// RawEnd decrements the reentrant raw-mode depth.
func (b *Buffer) RawEnd() {
	if b.rawModeDepth > 0 {
		b.rawModeDepth--
	}
}

// Highlights returns the buffer's current transient highlight ranges.
func (b *Buffer) Highlights() []Highlight { return b.highlights }

// PruneHighlights removes highlights whose alpha has decayed to <= 0; the
// renderer owns decaying Alpha over time and calls this to reclaim them.
func (b *Buffer) PruneHighlights() {
	kept := b.highlights[:0]
	for _, h := range b.highlights {
		if h.Alpha > 0 {
			kept = append(kept, h)
		}
	}
	b.highlights = kept
}

func (b *Buffer) addHighlight(a, c position.Position) {
	b.highlights = append(b.highlights, Highlight{Range: position.NewRange(a, c), Alpha: 2.0})
}

// Empty clears the buffer back to a single empty line, discarding undo
// history. Ported from original_source's BufferData::empty (SPEC_FULL §3).
func (b *Buffer) Empty() {
	b.lines = [][]byte{{}}
	b.hist = history.NewLog(history.DefaultMaxGroups)
	b.highlights = nil
}

// ReplaceContent discards the buffer's current lines, line ending, and undo
// history and replaces them wholesale with freshly loaded content. Used by
// internal/fileio's Load/Reload, which own the actual file I/O and line-
// ending detection; kept here (rather than letting fileio poke at
// unexported fields) so the reset of undo/highlight state stays in one
// place alongside Empty.
func (b *Buffer) ReplaceContent(text string, lineEnding LineEnding) {
	b.hist = history.NewLog(history.DefaultMaxGroups)
	b.highlights = nil
	b.rawModeDepth = 0
	b.lineEnding = lineEnding
	b.setContent(text)
}
