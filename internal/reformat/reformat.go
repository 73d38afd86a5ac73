// Package reformat post-processes translated subtitle text into display
// shape: soft word-wrapping within a width and line-count budget. It is
// independent of the translation retry logic.
package reformat

import "strings"

// softWrap wraps text into lines without breaking words.
func softWrap(text string, width int) []string {
	var lines []string
	curr := ""
	for _, w := range strings.Fields(text) {
		switch {
		case curr == "":
			curr = w
		case len(curr)+1+len(w) <= width:
			curr += " " + w
		default:
			lines = append(lines, curr)
			curr = w
		}
	}
	if curr != "" {
		lines = append(lines, curr)
	}
	return lines
}

// Text reformats subtitle text to meet width and line-count constraints.
// Existing line breaks are kept as wrapping hints; when the wrapped result
// exceeds maxLines, lines are merged back together and the overflow is
// dropped.
func Text(text string, maxWidth, maxLines int) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	var lines []string
	for _, seg := range strings.Split(text, "\n") {
		lines = append(lines, softWrap(seg, maxWidth)...)
	}

	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}

	var merged []string
	for _, l := range lines {
		if len(merged) > 0 && len(merged[len(merged)-1])+1+len(l) <= maxWidth {
			merged[len(merged)-1] += " " + l
		} else {
			merged = append(merged, l)
		}
	}
	if len(merged) > maxLines {
		merged = merged[:maxLines]
	}
	return strings.Join(merged, "\n")
}
