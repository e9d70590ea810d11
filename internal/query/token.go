package query

import (
	"sort"

	"github.com/cribalik/cmantic/internal/position"
	"github.com/cribalik/cmantic/internal/tokenizer"
)

// GetToken binary-searches tokens (assumed sorted by Start, per
// tokenizer.Result's contract) for the token whose half-open range [Start,
// End) contains p, ties going to the earliest such token. O(log n). Ported
// from original_source's BufferData::find_start_of_token's binary search.
func GetToken(tokens []tokenizer.Token, p position.Position) (tokenizer.Token, bool) {
	i := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End.After(p)
	})
	if i < len(tokens) {
		t := tokens[i]
		if !p.Before(t.Start) && p.Before(t.End) {
			return t, true
		}
	}
	return tokenizer.Token{}, false
}

// FindStartOfIdentifier steps p backward by one byte and returns the token
// there iff it is an identifier whose range still contains the stepped-back
// position. Ported from original_source's BufferData::find_start_of_identifier.
func FindStartOfIdentifier(tokens []tokenizer.Token, p position.Position) (tokenizer.Token, bool) {
	stepped := p
	if stepped.Col > 0 {
		stepped.Col--
	} else if stepped.Line > 0 {
		// Stepping back across a line boundary has no defined byte offset
		// without consulting the buffer directly; callers crossing lines
		// should clamp p themselves before calling.
		return tokenizer.Token{}, false
	} else {
		return tokenizer.Token{}, false
	}

	t, ok := GetToken(tokens, stepped)
	if !ok || t.Kind != tokenizer.KindIdentifier {
		return tokenizer.Token{}, false
	}
	if !stepped.Before(t.Start) && stepped.Before(t.End) {
		return t, true
	}
	return tokenizer.Token{}, false
}
