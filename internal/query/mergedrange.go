package query

import (
	"strings"
	"unicode"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/position"
)

// GetMergedRange concatenates r's across-line span (the start line's
// suffix, any whole middle lines, and the end line's prefix) joined by
// single spaces, then collapses every run of whitespace to one space.
// Used for cross-line search/display. Ported from original_source's
// BufferData::get_merged_range.
func GetMergedRange(buf *buffer.Buffer, r position.Range) string {
	var parts []string
	if r.Start.Line == r.End.Line {
		parts = append(parts, string(buf.Slice(r.Start.Line, r.Start.Col, r.End.Col)))
	} else {
		parts = append(parts, string(buf.LineText(r.Start.Line)[r.Start.Col:]))
		for y := r.Start.Line + 1; y < r.End.Line; y++ {
			parts = append(parts, buf.LineString(y))
		}
		parts = append(parts, string(buf.LineText(r.End.Line)[:r.End.Col]))
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
