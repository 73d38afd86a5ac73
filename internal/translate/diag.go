package translate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/subverter/subverter/internal/srt"
)

// writeMismatchDump persists the original entry texts and the mis-sized
// reply for post-mortem inspection, keyed by the failing entry range.
// Best effort: write failures are logged and swallowed, never raised.
func (t *implTranslator) writeMismatchDump(entries []srt.Entry, reply string) {
	if t.opts.DiagnosticsDir == "" || len(entries) == 0 {
		return
	}

	ctx := context.Background()
	if err := os.MkdirAll(t.opts.DiagnosticsDir, 0755); err != nil {
		t.logger.Warn(ctx, "Failed to create diagnostics dir: %v", err)
		return
	}

	lo := entries[0].Index
	hi := entries[len(entries)-1].Index
	stem := fmt.Sprintf("mismatch_%04d-%04d", lo, hi)

	inputPath := filepath.Join(t.opts.DiagnosticsDir, stem+"_input.txt")
	if err := os.WriteFile(inputPath, []byte(srt.JoinText(entries)), 0644); err != nil {
		t.logger.Warn(ctx, "Failed to write %s: %v", inputPath, err)
	}

	outputPath := filepath.Join(t.opts.DiagnosticsDir, stem+"_output.txt")
	if err := os.WriteFile(outputPath, []byte(reply), 0644); err != nil {
		t.logger.Warn(ctx, "Failed to write %s: %v", outputPath, err)
	}
}
