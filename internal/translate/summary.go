package translate

import (
	"context"
	"strings"

	"github.com/subverter/subverter/internal/prompt"
	"github.com/subverter/subverter/internal/srt"
)

// updateSummary folds a chunk's source dialogue into the rolling summary.
// On generator failure or an empty reply the previous summary is kept;
// continuity degrades but the run continues. The result is truncated to
// SummaryMaxChars no matter what the generator returned.
func (t *implTranslator) updateSummary(ctx context.Context, previous string, entries []srt.Entry) string {
	p := prompt.SummaryUpdate(t.opts.SourceLang, previous, collapseDialogue(entries), t.opts.SummaryMaxChars)

	reply, err := t.generator.Generate(ctx, p)
	if err != nil {
		t.logger.Warn(ctx, "Summary update failed, keeping previous summary: %v", err)
		return previous
	}
	updated := strings.TrimSpace(reply)
	if updated == "" {
		t.logger.Warn(ctx, "Summary update returned no output, keeping previous summary")
		return previous
	}

	return truncateRunes(updated, t.opts.SummaryMaxChars)
}

// collapseDialogue flattens entry texts into a single whitespace-normalised
// line of dialogue.
func collapseDialogue(entries []srt.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, strings.Join(strings.Fields(e.Text), " "))
	}
	return strings.Join(parts, " ")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
