// Package main is a command-line smoke-driver for the text buffer core: it
// loads a file (or starts an empty scratch buffer), applies an edit,
// exercises undo/redo, and saves (a scratch buffer is printed to stdout
// instead), enough to drive every layer of the engine
// end to end without a terminal UI, which is out of this module's scope.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/config"
	"github.com/cribalik/cmantic/internal/editorctx"
	"github.com/cribalik/cmantic/internal/fileio"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
	"github.com/cribalik/cmantic/internal/view"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath string
	File       string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmantic: failed to load config: %v\n", err)
		return 1
	}

	ctx := editorctx.New(cfg.TabWidth, cfg.TabStyle(), cfg.MaxUndoGroups)
	ctx.Clipboard = &fileio.RegisterClipboard{}

	var buf *buffer.Buffer
	if opts.File != "" {
		buf, err = fileio.LoadBuffer(fileio.OSLoader{}, opts.File, ctx.NewBufferOptions()...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cmantic: failed to load %s: %v\n", opts.File, err)
			return 1
		}
		buf.SetTabStyle(buf.GuessTabType(ctx.DefaultTabType))
	} else {
		bufOpts := append(ctx.NewBufferOptions(), buffer.WithDynamic(), buffer.WithDescription("scratch"))
		buf = buffer.New(bufOpts...)
		buf.SetTabStyle(ctx.DefaultTabType)
	}

	v := view.New(buf)
	ctx.Panes.Add("main", v)

	demo(ctx, buf, v)

	if buf.IsDynamic() {
		fmt.Println(buf.Text())
		return 0
	}
	if err := fileio.Save(buf); err != nil {
		fmt.Fprintf(os.Stderr, "cmantic: failed to save %s: %v\n", buf.Path(), err)
		return 1
	}
	return 0
}

// demo exercises insert, undo, and redo through the whole stack: Buffer's
// edit engine, the undo log, the pane registry broadcast, and the visual
// selection anchor.
func demo(ctx *editorctx.EditorContext, buf *buffer.Buffer, v *view.View) {
	ctx.BeginVisualSelection(buf, position.New(0, 0))
	defer ctx.EndVisualSelection()

	// v is registered in ctx.Panes, and ctx itself also carries the visual
	// selection anchor, so passing ctx (not ctx.Panes) as the Walker means
	// Insert's broadcast advances v.Cursors and the anchor together; no
	// manual position bookkeeping is needed here.
	buf.ActionBegin(v.Cursors)
	_, _ = buf.Insert(ctx, position.New(0, 0), []byte("// edited by cmantic\n"), 0, true, tokenizer.Nop{})
	buf.ActionEnd(v.Cursors)

	if buf.CanUndo() {
		live := v.Cursors
		_ = buf.Undo(ctx, &live, tokenizer.Nop{})
		v.Cursors = live
	}
	if buf.CanRedo() {
		live := v.Cursors
		_ = buf.Redo(ctx, &live, tokenizer.Nop{})
		v.Cursors = live
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.ConfigPath, "config", "cmantic.toml", "Path to configuration file")
	flag.Parse()
	if args := flag.Args(); len(args) > 0 {
		opts.File = args[0]
	}
	return opts
}
