package translate

import (
	"context"
	"strings"

	"github.com/subverter/subverter/internal/prompt"
	"github.com/subverter/subverter/internal/srt"
)

type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeRefusal
	outcomeMismatch
)

type attemptOutcome struct {
	kind     outcomeKind
	segments []string // one per entry, labels stripped; success only
	raw      string
	got      int
}

// attempt sends one translation request for the entry subset and classifies
// the reply. A generator error or empty reply collapses into a mismatch
// with zero segments so a single recovery path handles all of them.
func (t *implTranslator) attempt(ctx context.Context, entries []srt.Entry, summary, prevCtx, nextCtx string) attemptOutcome {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	p := prompt.Translation(t.opts.SourceLang, t.opts.TargetLang, texts, summary, prevCtx, nextCtx)

	reply, err := t.generator.Generate(ctx, p)
	if err != nil {
		t.progress.OnDetail("generator error for entries %d-%d: %v",
			entries[0].Index, entries[len(entries)-1].Index, err)
		reply = ""
	}
	if strings.TrimSpace(reply) == "" {
		t.writeMismatchDump(entries, reply)
		return attemptOutcome{kind: outcomeMismatch, raw: reply}
	}

	parts := prompt.SplitEntries(reply)
	if len(parts) == len(entries) {
		segments := make([]string, len(parts))
		for i, part := range parts {
			segments[i] = prompt.StripLabels(part)
		}
		return attemptOutcome{kind: outcomeSuccess, segments: segments}
	}

	trimmed := strings.TrimSpace(reply)
	if len(parts) == 0 && !strings.Contains(trimmed, "\n") {
		// A single unlabelled line is an explanation or refusal, not
		// translated content.
		return attemptOutcome{kind: outcomeRefusal, raw: trimmed}
	}

	t.writeMismatchDump(entries, reply)
	return attemptOutcome{kind: outcomeMismatch, raw: reply, got: len(parts)}
}
