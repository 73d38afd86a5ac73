package translate

import (
	"context"

	"github.com/subverter/subverter/internal/logger"
)

// ProgressReporter receives explicit pipeline progress callbacks. Injected
// rather than global so the driver and refiner stay free of output state.
type ProgressReporter interface {
	OnChunkStart(index, total, entries int)
	OnChunkDone(index, total int)
	OnDetail(format string, args ...interface{})
}

type logProgress struct {
	log logger.Logger
}

// NewLogProgress returns a ProgressReporter that writes through a Logger.
func NewLogProgress(log logger.Logger) ProgressReporter {
	return &logProgress{log: log}
}

func (p *logProgress) OnChunkStart(index, total, entries int) {
	p.log.Info(context.Background(), "Translating chunk %d/%d (%d entries)", index, total, entries)
}

func (p *logProgress) OnChunkDone(index, total int) {
	p.log.Info(context.Background(), "Chunk %d/%d done", index, total)
}

func (p *logProgress) OnDetail(format string, args ...interface{}) {
	p.log.Debug(context.Background(), format, args...)
}
