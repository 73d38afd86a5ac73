// Package translate implements the adaptive chunked-translation pipeline:
// entries are grouped into size-bounded chunks, each chunk is translated
// with neighbouring context and a rolling summary, and failing chunks are
// recursively bisected down to per-entry requests.
package translate

import (
	"context"

	"github.com/subverter/subverter/internal/chunk"
	"github.com/subverter/subverter/internal/srt"
)

// Translate processes chunks strictly in order: one outstanding generator
// request at a time, chunk N fully resolved before chunk N+1 starts,
// because the rolling summary for N+1 depends on N. The run is cancellable
// between chunks, never mid-chunk.
func (t *implTranslator) Translate(ctx context.Context, entries []srt.Entry) ([]string, error) {
	spans := chunk.Build(entries, t.opts.CharLimit)
	if len(spans) == 0 {
		return nil, nil
	}

	blocks := make([]string, 0, len(spans))
	summary := ""

	for i, sp := range spans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sub := entries[sp.Start : sp.End+1]
		prevCtx, nextCtx := chunk.ContextFor(entries, sp, t.opts.ContextWindow)

		t.progress.OnChunkStart(i+1, len(spans), len(sub))

		block, err := t.refine(ctx, sub, summary, prevCtx, nextCtx)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)

		t.progress.OnChunkDone(i+1, len(spans))

		// The summary only feeds the next chunk's prompt, so the last
		// chunk never pays for an update.
		if t.opts.UseSummary && i < len(spans)-1 {
			summary = t.updateSummary(ctx, summary, sub)
		}
	}

	return blocks, nil
}
