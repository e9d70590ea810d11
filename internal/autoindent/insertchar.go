package autoindent

import (
	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// InsertChar inserts the single byte ch at cursors[idx], then, unless the
// buffer is in raw mode, re-runs Autoindent on the line it landed on when ch
// is one of the closing delimiters `} ) ] >`. Raw mode suppresses the hook
// so paste and undo replay reproduce exact bytes.
func InsertChar(b *buffer.Buffer, panes observer.Walker, cursors *[]cursor.Cursor, idx int, ch byte, tok tokenizer.Tokenizer) error {
	b.ActionBegin(*cursors)
	defer func() { b.ActionEnd(*cursors) }()

	pos := (*cursors)[idx].Pos
	end, err := b.Insert(panes, pos, []byte{ch}, idx, true, tok)
	if err != nil {
		return err
	}
	(*cursors)[idx].Pos = end

	if !b.RawMode() && isAutoindentTrigger(ch) {
		return Autoindent(b, panes, end.Line, tok)
	}
	return nil
}

func isAutoindentTrigger(ch byte) bool {
	switch ch {
	case '}', ')', ']', '>':
		return true
	}
	return false
}
