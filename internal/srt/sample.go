package srt

import (
	"regexp"
	"strings"
)

var (
	reAngleTag = regexp.MustCompile(`<[^>]+>`)
	reBraceTag = regexp.MustCompile(`\{[^}]+\}`)
)

// DialogueSample returns up to maxLines of plain dialogue text with inline
// formatting tags stripped, for language detection.
func DialogueSample(entries []Entry, maxLines int) string {
	var lines []string
	for _, e := range entries {
		for _, line := range strings.Split(e.Text, "\n") {
			line = reAngleTag.ReplaceAllString(line, "")
			line = reBraceTag.ReplaceAllString(line, "")
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
			if len(lines) >= maxLines {
				return strings.Join(lines, " ")
			}
		}
	}
	return strings.Join(lines, " ")
}
