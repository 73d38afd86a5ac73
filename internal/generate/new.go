package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/subverter/subverter/internal/config"
	"github.com/subverter/subverter/internal/logger"
	"github.com/subverter/subverter/pkg/executor"
)

// New creates the Generator selected by cfg.Backend.Name.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Generator, error) {
	timeout := time.Duration(cfg.Backend.TimeoutSec) * time.Second

	switch strings.ToLower(cfg.Backend.Name) {
	case "gemini":
		if len(cfg.Backend.APIKeys) == 0 {
			return nil, fmt.Errorf("backend %q requires at least one API key", cfg.Backend.Name)
		}
		return &implGemini{
			apiKeys: cfg.Backend.APIKeys,
			model:   cfg.Backend.Model,
			timeout: timeout,
			logger:  log,
		}, nil

	case "openai":
		if len(cfg.Backend.APIKeys) == 0 {
			return nil, fmt.Errorf("backend %q requires at least one API key", cfg.Backend.Name)
		}
		return newOpenAI(cfg.Backend.APIKeys[0], cfg.Backend.Model, timeout), nil

	case "ollama":
		if cfg.Backend.OllamaPath == "" {
			return nil, fmt.Errorf("backend %q requires backend.ollama_path", cfg.Backend.Name)
		}
		return &implOllama{
			executor: exec,
			binPath:  cfg.Backend.OllamaPath,
			model:    cfg.Backend.Model,
			timeout:  timeout,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %q", cfg.Backend.Name)
	}
}
