package prompt

import (
	"reflect"
	"strings"
	"testing"
)

func TestTranslationLabelsAndCount(t *testing.T) {
	p := Translation("en", "nl", []string{"Hello.", "Goodbye."}, "", "", "")

	if !strings.Contains(p, "EXACTLY 2 subtitle entries") {
		t.Error("prompt does not state the expected entry count")
	}
	if !strings.Contains(p, "ENTRY 1: Hello.") || !strings.Contains(p, "ENTRY 2: Goodbye.") {
		t.Error("prompt does not label every entry")
	}
	if !strings.Contains(p, "from en to nl") {
		t.Error("prompt does not name the language pair")
	}
}

func TestTranslationContextSections(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		prev    string
		next    string
		want    []string
		absent  []string
	}{
		{
			name: "no context",
			want: []string{"(no additional context)"},
		},
		{
			name:    "all sections",
			summary: "Two friends argue.",
			prev:    "Earlier line",
			next:    "Later line",
			want: []string{
				"Summary so far: Two friends argue.",
				"Preceding subtitles (verbatim):\nEarlier line",
				"Following subtitles (verbatim):\nLater line",
			},
			absent: []string{"(no additional context)"},
		},
		{
			name: "next only",
			next: "Later line",
			want: []string{"Following subtitles"},
			absent: []string{
				"Summary so far", "Preceding subtitles", "(no additional context)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Translation("en", "nl", []string{"Hi"}, tt.summary, tt.prev, tt.next)
			for _, w := range tt.want {
				if !strings.Contains(p, w) {
					t.Errorf("prompt missing %q", w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(p, a) {
					t.Errorf("prompt unexpectedly contains %q", a)
				}
			}
		})
	}
}

func TestSummaryUpdate(t *testing.T) {
	p := SummaryUpdate("en", "", "They meet at the docks.", 500)

	if !strings.Contains(p, "within 500 characters") {
		t.Error("prompt does not state the character cap")
	}
	if !strings.Contains(p, "Current summary:\n(none)") {
		t.Error("empty previous summary should render as (none)")
	}
	if !strings.Contains(p, "They meet at the docks.") {
		t.Error("prompt does not carry the new dialogue")
	}
}

func TestSplitEntries(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "blank line separated",
			reply: "ENTRY 1: Hallo.\n\nENTRY 2: Tot ziens.",
			want:  []string{"ENTRY 1: Hallo.", "ENTRY 2: Tot ziens."},
		},
		{
			name:  "no blank lines",
			reply: "ENTRY 1: Hallo.\nENTRY 2: Tot ziens.",
			want:  []string{"ENTRY 1: Hallo.", "ENTRY 2: Tot ziens."},
		},
		{
			name:  "multiline segment",
			reply: "ENTRY 1: Eerste regel\ntweede regel\n\nENTRY 2: Klaar.",
			want:  []string{"ENTRY 1: Eerste regel\ntweede regel", "ENTRY 2: Klaar."},
		},
		{
			name:  "case insensitive labels",
			reply: "entry 1: a\nEntry 2: b",
			want:  []string{"entry 1: a", "Entry 2: b"},
		},
		{
			name:  "leading chatter before first label",
			reply: "Here you go:\nENTRY 1: Hallo.",
			want:  []string{"ENTRY 1: Hallo."},
		},
		{
			name:  "no labels",
			reply: "I can't translate this content.",
			want:  nil,
		},
		{
			name:  "empty",
			reply: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitEntries(tt.reply)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitEntries() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStripLabels(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"single line", "ENTRY 3: Hallo daar.", "Hallo daar."},
		{"multi line", "ENTRY 1: Eerste\ntweede regel", "Eerste\ntweede regel"},
		{"spaced label", "ENTRY  12 :  tekst", "tekst"},
		{"no label", "gewone tekst", "gewone tekst"},
		{"label not at line start", "zie ENTRY 1: hier", "zie ENTRY 1: hier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripLabels(tt.segment); got != tt.want {
				t.Errorf("StripLabels(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}

func TestFirstBlock(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"single paragraph", "Hallo.", "Hallo."},
		{"multiple paragraphs", "Hallo.\n\nExtra uitleg.", "Hallo."},
		{"leading blank lines", "\n\nHallo.", "Hallo."},
		{"crlf", "Hallo.\r\n\r\nMeer.", "Hallo."},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstBlock(tt.reply); got != tt.want {
				t.Errorf("FirstBlock(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}
