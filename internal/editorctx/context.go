package editorctx

import (
	"github.com/google/uuid"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/history"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/paneregistry"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// EditorContext bundles the editor-wide state that would otherwise live on a
// package-level global, passed explicitly to mutating operations instead:
// tab defaults, the pane registry, the status/menu buffer handles, the
// active visual-mode anchor, the clipboard sink, and the tokenizer
// collaborator.
type EditorContext struct {
	TabWidth       int
	DefaultTabType int // buffer.TabHardTabs, or k>0 spaces
	MaxUndoGroups  int

	Panes *paneregistry.Registry

	StatusBuffer *buffer.Buffer
	MenuBuffer   *buffer.Buffer

	// VisualStartAnchor is the fixed end of the active visual-mode
	// selection, or nil when no selection is active. visualStartBuffer is
	// the buffer it was anchored in; an edit broadcast only touches the
	// anchor when it targets that same buffer.
	VisualStartAnchor *position.Position
	visualStartBuffer uuid.UUID

	Clipboard history.ClipboardSink
	Tokenizer tokenizer.Tokenizer
}

// New returns an EditorContext with the given tab defaults and a fresh pane
// registry; StatusBuffer, MenuBuffer, Clipboard, and Tokenizer are left for
// the caller to set once those collaborators are constructed.
func New(tabWidth, defaultTabType, maxUndoGroups int) *EditorContext {
	return &EditorContext{
		TabWidth:       tabWidth,
		DefaultTabType: defaultTabType,
		MaxUndoGroups:  maxUndoGroups,
		Panes:          paneregistry.New(),
	}
}

// BeginVisualSelection anchors a visual-mode selection at p within buf.
func (ctx *EditorContext) BeginVisualSelection(buf *buffer.Buffer, p position.Position) {
	anchor := p
	ctx.VisualStartAnchor = &anchor
	ctx.visualStartBuffer = buf.ID
}

// EndVisualSelection clears the active visual-mode selection.
func (ctx *EditorContext) EndVisualSelection() {
	ctx.VisualStartAnchor = nil
}

// Walk implements observer.Walker: it forwards to Panes, then also mutates
// VisualStartAnchor when it is anchored in bufferID, so a visual-mode
// selection's fixed end tracks edits the same way every cursor does.
func (ctx *EditorContext) Walk(bufferID uuid.UUID, mutate observer.Mutate) {
	if ctx.Panes != nil {
		ctx.Panes.Walk(bufferID, mutate)
	}
	if ctx.VisualStartAnchor != nil && ctx.visualStartBuffer == bufferID {
		*ctx.VisualStartAnchor = mutate(*ctx.VisualStartAnchor)
	}
}

// NewBufferOptions returns the buffer.Option set a newly created buffer
// should start with, derived from this context's tab defaults.
func (ctx *EditorContext) NewBufferOptions() []buffer.Option {
	opts := []buffer.Option{buffer.WithTabWidth(ctx.TabWidth)}
	if ctx.MaxUndoGroups > 0 {
		opts = append(opts, buffer.WithMaxUndoGroups(ctx.MaxUndoGroups))
	}
	return opts
}
