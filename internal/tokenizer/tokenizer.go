package tokenizer

import "github.com/cribalik/cmantic/internal/position"

// Kind is the subset of token kinds the buffer core cares about. A real
// tokenizer may produce far more kinds (strings, comments, numbers); this
// core only ever switches on the ones below, treating anything else as
// opaque (equivalent to KindOther).
type Kind uint8

const (
	KindOther Kind = iota
	KindBraceOpen
	KindBraceClose
	KindBracketOpen
	KindBracketClose
	KindParenOpen
	KindParenClose
	KindIdentifier
)

// Token is one lexeme, with a half-open range over buffer positions.
// Tokens in a Result are sorted by Start.
type Token struct {
	Kind  Kind
	Start position.Position
	End   position.Position
	Text  string
}

// Range returns the token's half-open span as a position.Range.
func (t Token) Range() position.Range {
	return position.NewRange(t.Start, t.End)
}

// Result is the output of one whole-buffer parse.
type Result struct {
	Tokens      []Token
	Definitions []position.Range
}

// Tokenizer is the syntax highlighter/parser collaborator. The buffer core
// only ever re-tokenizes the whole buffer; incremental parsing is out of
// scope.
type Tokenizer interface {
	Parse(lines [][]byte, language string) (Result, error)
}

// Nop is a Tokenizer that always returns an empty result, useful for tests
// and dynamic/scratch buffers that never need autoindent or token queries.
type Nop struct{}

// Parse returns an empty Result.
func (Nop) Parse([][]byte, string) (Result, error) {
	return Result{}, nil
}
