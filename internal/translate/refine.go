package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/subverter/subverter/internal/prompt"
	"github.com/subverter/subverter/internal/srt"
)

var errEmptyReply = errors.New("generator returned no output")

// UnitError reports the entry range a fatal per-entry failure covers.
// There is no tier below single-entry requests, so one of these halts the
// whole run.
type UnitError struct {
	FromIndex int
	ToIndex   int
	Err       error
}

func (e *UnitError) Error() string {
	if e.FromIndex == e.ToIndex {
		return fmt.Sprintf("translation failed for entry %d: %v", e.FromIndex, e.Err)
	}
	return fmt.Sprintf("translation failed for entries %d-%d: %v", e.FromIndex, e.ToIndex, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// refine translates an entry subset, bisecting on failure until either the
// subset succeeds as one request or it shrinks to the floor, at which point
// entries are translated one at a time. Sub-chunks keep the chunk-level
// summary and neighbour context unchanged; they are not re-derived.
func (t *implTranslator) refine(ctx context.Context, entries []srt.Entry, summary, prevCtx, nextCtx string) (string, error) {
	out := t.attempt(ctx, entries, summary, prevCtx, nextCtx)
	switch out.kind {
	case outcomeSuccess:
		return strings.Join(out.segments, "\n\n"), nil
	case outcomeRefusal:
		t.progress.OnDetail("refusal for entries %d-%d: %s",
			entries[0].Index, entries[len(entries)-1].Index, out.raw)
	case outcomeMismatch:
		t.progress.OnDetail("count mismatch for entries %d-%d: expected %d, got %d",
			entries[0].Index, entries[len(entries)-1].Index, len(entries), out.got)
	}

	if len(entries) == 1 || srt.TotalTextLen(entries) <= t.opts.MinCharLimit {
		return t.translatePerEntry(ctx, entries, summary)
	}

	mid := len(entries) / 2
	left, err := t.refine(ctx, entries[:mid], summary, prevCtx, nextCtx)
	if err != nil {
		return "", err
	}
	right, err := t.refine(ctx, entries[mid:], summary, prevCtx, nextCtx)
	if err != nil {
		return "", err
	}
	return left + "\n\n" + right, nil
}

// translatePerEntry is the terminal fallback: one isolated request per
// entry. Any failure here is fatal for the run; skipping an entry would
// corrupt the 1:1 alignment with the source timeline.
func (t *implTranslator) translatePerEntry(ctx context.Context, entries []srt.Entry, summary string) (string, error) {
	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		t.progress.OnDetail("fallback: translating entry %d/%d individually", i+1, len(entries))

		p := prompt.Translation(t.opts.SourceLang, t.opts.TargetLang, []string{e.Text}, summary, "", "")
		reply, err := t.generator.Generate(ctx, p)
		if err != nil {
			return "", &UnitError{FromIndex: e.Index, ToIndex: e.Index, Err: err}
		}

		text := prompt.StripLabels(prompt.FirstBlock(reply))
		if text == "" {
			return "", &UnitError{FromIndex: e.Index, ToIndex: e.Index, Err: errEmptyReply}
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n"), nil
}
