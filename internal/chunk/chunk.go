// Package chunk groups consecutive subtitle entries into size-bounded chunks
// and derives the verbatim context surrounding a chunk.
package chunk

import (
	"strings"

	"github.com/subverter/subverter/internal/srt"
)

// separatorOverhead accounts for the blank line between entries when they
// are laid out in a prompt.
const separatorOverhead = 2

// Span is a contiguous run of entries, inclusive on both ends, indexed into
// the original entry slice.
type Span struct {
	Start int
	End   int
}

// Build packs entries into spans whose total text length stays within
// budget. A single entry longer than the budget still gets its own span.
// Chunking depends only on entry lengths and the budget, so identical
// inputs always produce identical spans.
func Build(entries []srt.Entry, budget int) []Span {
	var spans []Span
	start := 0
	currLen := 0

	for i, e := range entries {
		entryLen := len([]rune(e.Text)) + separatorOverhead
		switch {
		case currLen == 0:
			start = i
			currLen = entryLen
		case currLen+entryLen <= budget:
			currLen += entryLen
		default:
			spans = append(spans, Span{Start: start, End: i - 1})
			start = i
			currLen = entryLen
		}
	}
	if currLen > 0 {
		spans = append(spans, Span{Start: start, End: len(entries) - 1})
	}

	return spans
}

// ContextFor returns the verbatim text of up to windowN entries immediately
// before and after sp, taken from the full original sequence so context can
// cross chunk boundaries. The text is never reformatted; it exists only to
// stabilise tone in prompts and is never parsed back.
func ContextFor(entries []srt.Entry, sp Span, windowN int) (prev, next string) {
	lo := sp.Start - windowN
	if lo < 0 {
		lo = 0
	}
	hi := sp.End + 1 + windowN
	if hi > len(entries) {
		hi = len(entries)
	}

	var prevLines, nextLines []string
	for i := lo; i < sp.Start; i++ {
		prevLines = append(prevLines, entries[i].Text)
	}
	for i := sp.End + 1; i < hi; i++ {
		nextLines = append(nextLines, entries[i].Text)
	}

	return strings.TrimSpace(strings.Join(prevLines, "\n")),
		strings.TrimSpace(strings.Join(nextLines, "\n"))
}
