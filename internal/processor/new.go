package processor

import (
	"github.com/subverter/subverter/internal/config"
	"github.com/subverter/subverter/internal/generate"
	"github.com/subverter/subverter/internal/logger"
	"github.com/subverter/subverter/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	generator generate.Generator
	executor  executor.Executor
	logger    logger.Logger
}

// New creates a Processor.
func New(cfg *config.Config, gen generate.Generator, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:       cfg,
		generator: gen,
		executor:  exec,
		logger:    log,
	}
}
