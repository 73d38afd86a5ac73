package config

import (
	"fmt"
	"strings"
)

// Context modes. fresh_with_summary keeps a rolling summary between chunks;
// reuse_chat relies on the backend's own session history instead.
const (
	ContextModeFreshWithSummary = "fresh_with_summary"
	ContextModeReuseChat        = "reuse_chat"
)

type Config struct {
	Languages   LanguagesConfig   `yaml:"languages"`
	Translation TranslationConfig `yaml:"translation"`
	Backend     BackendConfig     `yaml:"backend"`
	Format      FormatConfig      `yaml:"format"`
	Tools       ToolsConfig       `yaml:"tools"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LanguagesConfig struct {
	// Target is the language subtitles are translated into (ISO 639-1).
	Target string `yaml:"target"`
	// AllowedSources lists acceptable source languages in preference order.
	AllowedSources []string `yaml:"allowed_sources"`
}

type TranslationConfig struct {
	// CharLimit bounds the total text length of one translation chunk.
	CharLimit int `yaml:"char_limit"`
	// MinCharLimit is the floor below which a failing chunk is no longer
	// bisected and entries are translated one at a time.
	MinCharLimit int `yaml:"min_char_limit"`
	// ContextWindow is the number of neighbouring entries quoted verbatim
	// before and after each chunk.
	ContextWindow   int    `yaml:"context_window"`
	SummaryMaxChars int    `yaml:"summary_max_chars"`
	ContextMode     string `yaml:"context_mode"`
}

type BackendConfig struct {
	// Name selects the generator backend: gemini, openai or ollama.
	Name       string   `yaml:"name"`
	Model      string   `yaml:"model"`
	APIKeys    []string `yaml:"api_keys"`
	OllamaPath string   `yaml:"ollama_path"`
	TimeoutSec int      `yaml:"timeout_sec"`
}

type FormatConfig struct {
	MaxWidth int `yaml:"max_width"`
	MaxLines int `yaml:"max_lines"`
}

type ToolsConfig struct {
	MKVMergePath   string `yaml:"mkvmerge_path"`
	MKVExtractPath string `yaml:"mkvextract_path"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Diagnostics string `yaml:"diagnostics"`
	Temp        string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Languages.Target == "" {
		return fmt.Errorf("languages.target is required")
	}
	if len(c.Languages.AllowedSources) == 0 {
		return fmt.Errorf("languages.allowed_sources is required")
	}
	if c.Backend.Name == "" {
		return fmt.Errorf("backend.name is required")
	}
	if c.Translation.ContextMode != "" &&
		c.Translation.ContextMode != ContextModeFreshWithSummary &&
		c.Translation.ContextMode != ContextModeReuseChat {
		return fmt.Errorf("translation.context_mode must be %q or %q",
			ContextModeFreshWithSummary, ContextModeReuseChat)
	}

	if c.Translation.CharLimit == 0 {
		c.Translation.CharLimit = 2500
	}
	if c.Translation.MinCharLimit == 0 {
		c.Translation.MinCharLimit = 300
	}
	if c.Translation.ContextWindow == 0 {
		c.Translation.ContextWindow = 5
	}
	if c.Translation.SummaryMaxChars == 0 {
		c.Translation.SummaryMaxChars = 500
	}
	if c.Translation.ContextMode == "" {
		c.Translation.ContextMode = ContextModeFreshWithSummary
	}
	if c.Backend.Model == "" {
		c.Backend.Model = "gemini-2.5-flash"
	}
	if c.Backend.TimeoutSec == 0 {
		c.Backend.TimeoutSec = 120
	}
	if c.Format.MaxWidth == 0 {
		c.Format.MaxWidth = 42
	}
	if c.Format.MaxLines == 0 {
		c.Format.MaxLines = 2
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Diagnostics == "" {
		c.Paths.Diagnostics = "data/diagnostics"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// SourceAllowlist returns the allowed source languages with the target
// language removed, normalised to lower case.
func (c *Config) SourceAllowlist() []string {
	tgt := strings.ToLower(c.Languages.Target)
	var out []string
	for _, l := range c.Languages.AllowedSources {
		l = strings.ToLower(l)
		if l != tgt {
			out = append(out, l)
		}
	}
	return out
}

// UseSummary reports whether a rolling summary should be carried
// between chunks.
func (c *Config) UseSummary() bool {
	return c.Translation.ContextMode == ContextModeFreshWithSummary
}
