package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/subverter/subverter/pkg/executor"
)

type implOllama struct {
	executor executor.Executor
	binPath  string
	model    string
	timeout  time.Duration
}

// Generate pipes the prompt to a local `ollama run <model>` process and
// returns its stdout.
func (o *implOllama) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	out, err := o.executor.ExecuteWithInput(ctx, prompt, o.binPath, "run", o.model)
	if err != nil {
		return "", fmt.Errorf("ollama run: %w", err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty response from ollama")
	}

	// Some model setups emit a JSON envelope with a "response" field.
	if strings.HasPrefix(out, "{") && strings.HasSuffix(out, "}") {
		var envelope struct {
			Response string `json:"response"`
		}
		if err := json.Unmarshal([]byte(out), &envelope); err == nil && envelope.Response != "" {
			return strings.TrimSpace(envelope.Response), nil
		}
	}

	return out, nil
}
