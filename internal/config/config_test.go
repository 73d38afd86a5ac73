package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Languages: LanguagesConfig{
					Target:         "nl",
					AllowedSources: []string{"en", "fr"},
				},
				Backend: BackendConfig{Name: "gemini"},
			},
			wantErr: false,
		},
		{
			name: "missing target language",
			config: Config{
				Languages: LanguagesConfig{AllowedSources: []string{"en"}},
				Backend:   BackendConfig{Name: "gemini"},
			},
			wantErr: true,
		},
		{
			name: "missing allowed sources",
			config: Config{
				Languages: LanguagesConfig{Target: "nl"},
				Backend:   BackendConfig{Name: "gemini"},
			},
			wantErr: true,
		},
		{
			name: "missing backend",
			config: Config{
				Languages: LanguagesConfig{
					Target:         "nl",
					AllowedSources: []string{"en"},
				},
			},
			wantErr: true,
		},
		{
			name: "bad context mode",
			config: Config{
				Languages: LanguagesConfig{
					Target:         "nl",
					AllowedSources: []string{"en"},
				},
				Backend:     BackendConfig{Name: "ollama"},
				Translation: TranslationConfig{ContextMode: "sticky"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Languages: LanguagesConfig{
			Target:         "nl",
			AllowedSources: []string{"en"},
		},
		Backend: BackendConfig{Name: "gemini"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Translation.CharLimit != 2500 {
		t.Errorf("CharLimit = %d, want 2500", cfg.Translation.CharLimit)
	}
	if cfg.Translation.MinCharLimit != 300 {
		t.Errorf("MinCharLimit = %d, want 300", cfg.Translation.MinCharLimit)
	}
	if cfg.Translation.ContextWindow != 5 {
		t.Errorf("ContextWindow = %d, want 5", cfg.Translation.ContextWindow)
	}
	if cfg.Translation.SummaryMaxChars != 500 {
		t.Errorf("SummaryMaxChars = %d, want 500", cfg.Translation.SummaryMaxChars)
	}
	if cfg.Translation.ContextMode != ContextModeFreshWithSummary {
		t.Errorf("ContextMode = %q, want %q", cfg.Translation.ContextMode, ContextModeFreshWithSummary)
	}
	if cfg.Backend.TimeoutSec != 120 {
		t.Errorf("TimeoutSec = %d, want 120", cfg.Backend.TimeoutSec)
	}
	if cfg.Format.MaxWidth != 42 || cfg.Format.MaxLines != 2 {
		t.Errorf("Format = %+v, want width 42 lines 2", cfg.Format)
	}
}

func TestSourceAllowlist(t *testing.T) {
	cfg := Config{
		Languages: LanguagesConfig{
			Target:         "NL",
			AllowedSources: []string{"EN", "nl", "fr"},
		},
	}

	got := cfg.SourceAllowlist()
	want := []string{"en", "fr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SourceAllowlist() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
languages:
  target: nl
  allowed_sources: [en, fr, de]
translation:
  char_limit: 1800
  context_mode: reuse_chat
backend:
  name: ollama
  model: mistral
  ollama_path: /usr/local/bin/ollama
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Translation.CharLimit != 1800 {
		t.Errorf("CharLimit = %d, want 1800", cfg.Translation.CharLimit)
	}
	if cfg.UseSummary() {
		t.Error("UseSummary() = true for reuse_chat mode")
	}
	if cfg.Backend.Model != "mistral" {
		t.Errorf("Model = %q, want mistral", cfg.Backend.Model)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
