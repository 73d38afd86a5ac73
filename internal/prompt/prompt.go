// Package prompt builds the generator prompts and parses labelled replies.
//
// Every entry sent for translation is prefixed with a stable "ENTRY N:"
// marker. The markers are the single source of structure on the way back:
// replies are split on them, never on blank lines, because generators do
// not reliably preserve blank-line separators.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reEntryLabel     = regexp.MustCompile(`(?i)ENTRY\s+\d+\s*:`)
	reLineEntryLabel = regexp.MustCompile(`(?i)^ENTRY\s+\d+\s*:\s*`)
)

// Translation builds a context-rich prompt for one block of entry texts.
// summary, prevCtx and nextCtx are optional; empty sections are omitted
// rather than rendered as "(none)" noise.
func Translation(srcLang, tgtLang string, texts []string, summary, prevCtx, nextCtx string) string {
	labelled := make([]string, len(texts))
	for i, text := range texts {
		labelled[i] = fmt.Sprintf("ENTRY %d: %s", i+1, text)
	}
	entriesText := strings.Join(labelled, "\n\n")

	var contextBlocks []string
	if s := strings.TrimSpace(summary); s != "" {
		contextBlocks = append(contextBlocks, "- Summary so far: "+s)
	}
	if p := strings.TrimSpace(prevCtx); p != "" {
		contextBlocks = append(contextBlocks, "- Preceding subtitles (verbatim):\n"+p)
	}
	if n := strings.TrimSpace(nextCtx); n != "" {
		contextBlocks = append(contextBlocks, "- Following subtitles (verbatim):\n"+n)
	}
	contextText := "(no additional context)"
	if len(contextBlocks) > 0 {
		contextText = strings.Join(contextBlocks, "\n\n")
	}

	return strings.TrimSpace(fmt.Sprintf(`You are a professional subtitle translator.

Task:
- Translate the content from %s to %s.
- There are EXACTLY %d subtitle entries in this block.
- You MUST return EXACTLY %d translated entries, in the same order.
- Each entry is prefixed with 'ENTRY X:' -- keep these prefixes exactly as given.
- Do not merge or split entries; preserve one-to-one correspondence.
- Do not include numbers or timestamps other than the ENTRY labels.
- Preserve inline tags such as <i>...</i> and {...} exactly as they appear.
- Maintain tone, voice, and register; keep names and terminology consistent.

Context:
%s

Output format:
- Only the translated subtitle texts, each prefixed with the same 'ENTRY X:' label.
- Entries may be separated by a newline or a single blank line.
- No extra commentary or formatting beyond the translated text.

Content to translate:
%s`, srcLang, tgtLang, len(texts), len(texts), contextText, entriesText))
}

// SummaryUpdate builds the prompt that folds new dialogue into the rolling
// summary while keeping it within maxChars.
func SummaryUpdate(srcLang, previousSummary, recentText string, maxChars int) string {
	prev := previousSummary
	if strings.TrimSpace(prev) == "" {
		prev = "(none)"
	}
	return fmt.Sprintf(
		"You are assisting with translating subtitles from %s into another language. "+
			"The text is spoken dialogue from a video, without visual context. "+
			"We are maintaining a rolling summary in %s to help translate the next block. "+
			"Update the summary so it still fits within %d characters, "+
			"keeping the most important points from the existing summary and adding any new key details "+
			"from the latest dialogue. Focus on topics, relationships, tone or mood changes, "+
			"and relevant setting/time shifts. Ignore filler unless it changes meaning or tone.\n\n"+
			"Current summary:\n%s\n\nNew dialogue:\n%s",
		srcLang, srcLang, maxChars, prev, strings.TrimSpace(recentText))
}

// SplitEntries splits a generator reply into segments keyed on ENTRY labels.
// Returns nil when the reply carries no labels at all.
func SplitEntries(reply string) []string {
	locs := reEntryLabel.FindAllStringIndex(reply, -1)
	if len(locs) == 0 {
		return nil
	}

	var parts []string
	for i, loc := range locs {
		end := len(reply)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if p := strings.TrimSpace(reply[loc[0]:end]); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// StripLabels removes leading "ENTRY X:" markers from every line of a
// segment.
func StripLabels(segment string) string {
	lines := strings.Split(segment, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(reLineEntryLabel.ReplaceAllString(strings.TrimSpace(line), ""))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// FirstBlock returns the first non-empty paragraph of a reply, or the whole
// trimmed reply when it has no blank-line structure. Used by single-entry
// fallback requests where only one segment is expected.
func FirstBlock(reply string) string {
	normalized := strings.ReplaceAll(reply, "\r\n", "\n")
	for _, part := range strings.Split(normalized, "\n\n") {
		if p := strings.TrimSpace(part); p != "" {
			return p
		}
	}
	return strings.TrimSpace(normalized)
}
