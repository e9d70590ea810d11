package autoindent

import (
	"bytes"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

var statementKeywords = map[string]bool{"for": true, "if": true, "while": true, "else": true}

// IndentDepth sums +1 for every brace/bracket/paren-open token starting on
// line y and -1 for every matching close, and reports whether the first
// token on the line is an identifier naming a leading statement keyword
// (for/if/while/else). Ported from original_source's indent_depth (spec
// §4.4).
func IndentDepth(tok tokenizer.Result, y int) (depth int, hasLeadingStatement bool) {
	first := true
	for _, t := range tok.Tokens {
		if t.Start.Line != y {
			continue
		}
		switch t.Kind {
		case tokenizer.KindBraceOpen, tokenizer.KindBracketOpen, tokenizer.KindParenOpen:
			depth++
		case tokenizer.KindBraceClose, tokenizer.KindBracketClose, tokenizer.KindParenClose:
			depth--
		}
		if first {
			first = false
			if t.Kind == tokenizer.KindIdentifier && statementKeywords[t.Text] {
				hasLeadingStatement = true
			}
		}
	}
	return depth, hasLeadingStatement
}

func unitWidth(b *buffer.Buffer) int {
	if b.TabStyle() == buffer.TabHardTabs {
		return 1
	}
	return b.TabStyle()
}

func indentUnit(b *buffer.Buffer) []byte {
	if b.TabStyle() == buffer.TabHardTabs {
		return []byte{'\t'}
	}
	return bytes.Repeat([]byte{' '}, b.TabStyle())
}

// GetIndent returns line y's leading-indent level: the count of whole
// indent units (a hard tab, or TabStyle() spaces) in its leading
// whitespace.
func GetIndent(b *buffer.Buffer, y int) int {
	w := unitWidth(b)
	if w <= 0 {
		return 0
	}
	return b.FirstNonWhitespace(y) / w
}

func isBlank(b *buffer.Buffer, y int) bool {
	return b.FirstNonWhitespace(y) == b.LineLen(y)
}

// Autoindent recomputes and applies line y's indent level from the nearest
// prior non-empty line. It is a no-op while the buffer is in raw mode, and
// a no-op if there is no prior non-empty line to align to.
// Callers that invoke this outside of an already-open action group (e.g. the
// insert-character hook, see InsertChar) must bracket it in their own
// ActionBegin/ActionEnd.
func Autoindent(b *buffer.Buffer, panes observer.Walker, y int, tok tokenizer.Tokenizer) error {
	if b.RawMode() {
		return nil
	}

	yPrime := -1
	for i := y - 1; i >= 0; i-- {
		if !isBlank(b, i) {
			yPrime = i
			break
		}
	}
	if yPrime < 0 {
		return nil
	}

	tokens := b.Tokens()
	dPrime, sPrime := IndentDepth(tokens, yPrime)
	iPrime := GetIndent(b, yPrime)
	d, s := IndentDepth(tokens, y)

	target := iPrime
	if dPrime > 0 || sPrime {
		target++
	}
	if d < 0 && !s {
		target--
	}

	for i := yPrime - 1; i >= 0; i-- {
		di, si := IndentDepth(tokens, i)
		if di == 0 && si {
			target--
		} else {
			break
		}
	}

	return SetIndent(b, panes, y, target, tok)
}

// SetIndent rewrites line y's leading whitespace to exactly target indent
// units, computing the signed difference against the current indent and
// issuing a single Insert (growing) or RemoveRange (shrinking). A zero
// difference is a no-op. Ported from original_source's BufferData::set_indent.
func SetIndent(b *buffer.Buffer, panes observer.Walker, y, target int, tok tokenizer.Tokenizer) error {
	if target < 0 {
		target = 0
	}
	current := GetIndent(b, y)
	diff := target - current
	if diff == 0 {
		return nil
	}

	unit := indentUnit(b)
	if diff > 0 {
		_, err := b.Insert(panes, position.New(y, 0), bytes.Repeat(unit, diff), buffer.NoCursorHint, true, tok)
		return err
	}

	end := b.FirstNonWhitespace(y)
	removeLen := len(unit) * (-diff)
	if removeLen > end {
		removeLen = end
	}
	return b.RemoveRange(panes, position.New(y, 0), position.New(y, removeLen), buffer.NoCursorHint, true, tok)
}
