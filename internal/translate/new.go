package translate

import (
	"github.com/subverter/subverter/internal/generate"
	"github.com/subverter/subverter/internal/logger"
)

type implTranslator struct {
	generator generate.Generator
	logger    logger.Logger
	progress  ProgressReporter
	opts      Options
}

// New creates a Translator. A nil progress reporter falls back to one that
// writes through the logger.
func New(gen generate.Generator, log logger.Logger, progress ProgressReporter, opts Options) Translator {
	if progress == nil {
		progress = NewLogProgress(log)
	}
	return &implTranslator{
		generator: gen,
		logger:    log,
		progress:  progress,
		opts:      opts,
	}
}
