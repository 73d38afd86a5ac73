package translate

import (
	"context"

	"github.com/subverter/subverter/internal/srt"
)

// Translator drives the chunked, context-aware translation of a full entry
// sequence. On success it returns one translated text block per chunk, in
// original order; each block joins back to exactly one segment per entry.
type Translator interface {
	Translate(ctx context.Context, entries []srt.Entry) ([]string, error)
}

// Options holds the translation parameters. Zero values are not defaulted
// here; callers pass a validated configuration.
type Options struct {
	SourceLang string
	TargetLang string
	// CharLimit bounds the total text length of a chunk.
	CharLimit int
	// MinCharLimit is the floor: a failing chunk at or below this total
	// length is no longer bisected and falls back to per-entry requests.
	MinCharLimit int
	// ContextWindow is the number of neighbouring entries quoted verbatim
	// around each chunk.
	ContextWindow   int
	SummaryMaxChars int
	UseSummary      bool
	// DiagnosticsDir receives mismatch dumps; empty disables them.
	DiagnosticsDir string
}
