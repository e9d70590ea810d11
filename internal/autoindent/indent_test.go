package autoindent

import (
	"testing"
	"unicode"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/cursor"
	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// testTokenizer is a minimal stand-in for an external tokenizer: it
// classifies braces/brackets/parens and identifier runs, enough to exercise
// IndentDepth/Autoindent without depending on a real language parser.
type testTokenizer struct{}

func (testTokenizer) Parse(lines [][]byte, language string) (tokenizer.Result, error) {
	var result tokenizer.Result
	for y, line := range lines {
		x := 0
		for x < len(line) {
			c := line[x]
			switch c {
			case '{':
				result.Tokens = append(result.Tokens, mkToken(tokenizer.KindBraceOpen, y, x, x+1, string(c)))
				x++
			case '}':
				result.Tokens = append(result.Tokens, mkToken(tokenizer.KindBraceClose, y, x, x+1, string(c)))
				x++
			case '(':
				result.Tokens = append(result.Tokens, mkToken(tokenizer.KindParenOpen, y, x, x+1, string(c)))
				x++
			case ')':
				result.Tokens = append(result.Tokens, mkToken(tokenizer.KindParenClose, y, x, x+1, string(c)))
				x++
			default:
				if unicode.IsLetter(rune(c)) {
					start := x
					for x < len(line) && unicode.IsLetter(rune(line[x])) {
						x++
					}
					result.Tokens = append(result.Tokens, mkToken(tokenizer.KindIdentifier, y, start, x, string(line[start:x])))
				} else {
					x++
				}
			}
		}
	}
	return result, nil
}

func mkToken(kind tokenizer.Kind, y, start, end int, text string) tokenizer.Token {
	return tokenizer.Token{
		Kind:  kind,
		Start: position.New(y, start),
		End:   position.New(y, end),
		Text:  text,
	}
}

func TestAutoindentOnClosingBrace(t *testing.T) {
	tok := testTokenizer{}
	b := buffer.NewFromText("if (x) {\n  y;\n  ", buffer.WithTabWidth(2))
	b.SetTabStyle(2)
	b.Reparse(tok)

	cursors := []cursor.Cursor{cursor.New(position.New(2, 2))}
	if err := InsertChar(b, observer.NopWalker{}, &cursors, 0, '}', tok); err != nil {
		t.Fatalf("InsertChar failed: %v", err)
	}

	if got, want := b.LineString(2), "}"; got != want {
		t.Fatalf("got line %q, want %q", got, want)
	}
}

func TestIndentDepthCountsBracesAndStatementKeyword(t *testing.T) {
	tok := testTokenizer{}
	result, _ := tok.Parse([][]byte{[]byte("if (x) {")}, "c")
	depth, hasStatement := IndentDepth(result, 0)
	if depth != 1 {
		t.Fatalf("got depth %d, want 1", depth)
	}
	if !hasStatement {
		t.Fatal("expected has_leading_statement true for a leading 'if'")
	}
}

func TestSetIndentGrowsAndShrinks(t *testing.T) {
	b := buffer.NewFromText("x;\n")
	b.SetTabStyle(2)

	if err := SetIndent(b, observer.NopWalker{}, 0, 2, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := b.LineString(0), "    x;"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	if err := SetIndent(b, observer.NopWalker{}, 0, 0, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := b.LineString(0), "x;"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
