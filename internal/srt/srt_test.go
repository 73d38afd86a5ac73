package srt

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,000
Hello there.

2
00:00:03,500 --> 00:00:05,000
How are you
doing today?

3
00:00:05,500 --> 00:00:07,000
<i>Quite well.</i>
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.srt")
	if err := os.WriteFile(path, []byte(sampleSRT), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	entries, err := Parse(writeSample(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Parse() returned %d entries, want 3", len(entries))
	}
	if entries[0].Text != "Hello there." {
		t.Errorf("entry 1 text = %q", entries[0].Text)
	}
	if entries[1].Text != "How are you\ndoing today?" {
		t.Errorf("entry 2 text = %q", entries[1].Text)
	}
	if entries[0].StartAt != time.Second {
		t.Errorf("entry 1 start = %v, want 1s", entries[0].StartAt)
	}
	for i, e := range entries {
		if e.Index != i+1 {
			t.Errorf("entry %d index = %d", i, e.Index)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	entries := []Entry{
		{Index: 1, StartAt: time.Second, EndAt: 2 * time.Second, Text: "First line"},
		{Index: 2, StartAt: 3 * time.Second, EndAt: 4 * time.Second, Text: "Second\nwith break"},
	}

	path := filepath.Join(t.TempDir(), "out.srt")
	if err := Write(path, entries); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("round trip entry count = %d, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i].Text != entries[i].Text {
			t.Errorf("entry %d text = %q, want %q", i+1, got[i].Text, entries[i].Text)
		}
	}
}

func TestJoinText(t *testing.T) {
	entries := []Entry{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	if got := JoinText(entries); got != "a\n\nb\n\nc" {
		t.Errorf("JoinText() = %q", got)
	}
}

func TestTotalTextLen(t *testing.T) {
	entries := []Entry{{Text: "abc"}, {Text: "dé"}}
	if got := TotalTextLen(entries); got != 5 {
		t.Errorf("TotalTextLen() = %d, want 5", got)
	}
}

func TestDialogueSample(t *testing.T) {
	entries := []Entry{
		{Text: "<i>Styled</i> words"},
		{Text: "{\\an8}Positioned line"},
		{Text: "plain"},
	}

	got := DialogueSample(entries, 2)
	if got != "Styled words Positioned line" {
		t.Errorf("DialogueSample() = %q", got)
	}
}
