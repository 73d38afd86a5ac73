// Package srt reads and writes SubRip subtitle files and exposes them as
// ordered, immutable entry sequences for the translation pipeline.
package srt

import (
	"fmt"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
)

// Entry is a single timed subtitle. Entries are created once at parse time
// and treated as read-only for the rest of the run.
type Entry struct {
	Index   int
	StartAt time.Duration
	EndAt   time.Duration
	Text    string // internal newlines preserved
}

// Parse reads an SRT file into an ordered entry slice.
func Parse(path string) ([]Entry, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open subtitle file: %w", err)
	}

	entries := make([]Entry, 0, len(subs.Items))
	for _, item := range subs.Items {
		lines := make([]string, 0, len(item.Lines))
		for _, line := range item.Lines {
			lines = append(lines, line.String())
		}
		text := strings.TrimSpace(strings.Join(lines, "\n"))
		if text == "" {
			continue
		}
		entries = append(entries, Entry{
			Index:   len(entries) + 1,
			StartAt: item.StartAt,
			EndAt:   item.EndAt,
			Text:    text,
		})
	}

	return entries, nil
}

// Write serialises entries to an SRT file at path.
func Write(path string, entries []Entry) error {
	subs := astisub.NewSubtitles()
	for _, e := range entries {
		item := &astisub.Item{
			Index:   e.Index,
			StartAt: e.StartAt,
			EndAt:   e.EndAt,
		}
		for _, line := range strings.Split(e.Text, "\n") {
			item.Lines = append(item.Lines, astisub.Line{
				Items: []astisub.LineItem{{Text: line}},
			})
		}
		subs.Items = append(subs.Items, item)
	}

	if err := subs.Write(path); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	return nil
}

// JoinText joins entry texts with blank lines between entries.
func JoinText(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Text)
	}
	return strings.Join(parts, "\n\n")
}

// TotalTextLen is the summed character length of entry texts.
func TotalTextLen(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += len([]rune(e.Text))
	}
	return total
}
