package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subverter/subverter/internal/lang"
	"github.com/subverter/subverter/internal/mkv"
	"github.com/subverter/subverter/internal/reformat"
	"github.com/subverter/subverter/internal/srt"
	"github.com/subverter/subverter/internal/translate"
)

// languageSampleLines bounds the amount of dialogue fed to detection.
const languageSampleLines = 80

// Process runs the full per-file pipeline: resolve a working SRT (extracting
// from MKV when needed), verify the source language, translate, reformat and
// write the output SRT. A failed run writes no output file.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	jobID := uuid.NewString()[:8]

	p.logger.Info(ctx, "[%s] Processing file: %s", jobID, filepath.Base(path))

	workingSRT, srcLang, cleanup, err := p.resolveWorkingSRT(ctx, path)
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := srt.Parse(workingSRT)
	if err != nil {
		return fmt.Errorf("parse subtitles: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no subtitle entries in %s", workingSRT)
	}
	p.logger.Info(ctx, "[%s] Parsed %d subtitle entries", jobID, len(entries))

	if srcLang == "" {
		srcLang, _ = lang.Detect(srt.DialogueSample(entries, languageSampleLines))
		if srcLang == "" {
			return fmt.Errorf("could not detect source language of %s", path)
		}
		p.logger.Info(ctx, "[%s] Detected source language: %s", jobID, srcLang)
	}
	if !contains(p.cfg.SourceAllowlist(), srcLang) {
		return fmt.Errorf("source language %q is not in the allowed list", srcLang)
	}

	translator := translate.New(p.generator, p.logger, nil, translate.Options{
		SourceLang:      srcLang,
		TargetLang:      p.cfg.Languages.Target,
		CharLimit:       p.cfg.Translation.CharLimit,
		MinCharLimit:    p.cfg.Translation.MinCharLimit,
		ContextWindow:   p.cfg.Translation.ContextWindow,
		SummaryMaxChars: p.cfg.Translation.SummaryMaxChars,
		UseSummary:      p.cfg.UseSummary(),
		DiagnosticsDir:  p.cfg.Paths.Diagnostics,
	})

	blocks, err := translator.Translate(ctx, entries)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	segments := p.recoverSegments(ctx, blocks, len(entries))

	final := make([]srt.Entry, len(entries))
	for i, e := range entries {
		final[i] = srt.Entry{
			Index:   e.Index,
			StartAt: e.StartAt,
			EndAt:   e.EndAt,
			Text:    reformat.Text(segments[i], p.cfg.Format.MaxWidth, p.cfg.Format.MaxLines),
		}
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	stem := strings.TrimSuffix(filepath.Base(workingSRT), filepath.Ext(workingSRT))
	outPath := filepath.Join(p.cfg.Paths.Output,
		fmt.Sprintf("%s.%s.srt", stem, p.cfg.Languages.Target))
	if err := srt.Write(outPath, final); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.logger.Info(ctx, "[%s] Wrote %s in %s", jobID, outPath, time.Since(startTime).Round(time.Second))
	return nil
}

// resolveWorkingSRT maps the input file to an SRT on disk. For MKV inputs
// the best allowlisted subtitle track is extracted to a temp file; srcLang
// is "" when the language still has to be detected from the text.
func (p *implProcessor) resolveWorkingSRT(ctx context.Context, path string) (workingSRT, srcLang string, cleanup func(), err error) {
	cleanup = func() {}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return path, "", cleanup, nil

	case ".mkv":
		if p.cfg.Tools.MKVMergePath == "" || p.cfg.Tools.MKVExtractPath == "" {
			return "", "", cleanup, fmt.Errorf("tools.mkvmerge_path and tools.mkvextract_path are required for MKV input")
		}
		tracks, err := mkv.Probe(ctx, p.executor, p.cfg.Tools.MKVMergePath, path)
		if err != nil {
			return "", "", cleanup, err
		}
		track, ok := mkv.SelectTrack(tracks, p.cfg.SourceAllowlist())
		if !ok {
			return "", "", cleanup, fmt.Errorf("no subtitle track in an allowed source language in %s", path)
		}
		p.logger.Info(ctx, "Selected subtitle track %d (%s) from %s", track.ID, track.Language, filepath.Base(path))

		if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
			return "", "", cleanup, fmt.Errorf("create temp dir: %w", err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		dst := filepath.Join(p.cfg.Paths.Temp, fmt.Sprintf("%s.%s.srt", stem, track.Language))
		if err := mkv.Extract(ctx, p.executor, p.cfg.Tools.MKVExtractPath, path, track.ID, dst); err != nil {
			return "", "", cleanup, err
		}
		return dst, track.Language, func() { p.removeTempFile(ctx, dst) }, nil

	default:
		return "", "", cleanup, fmt.Errorf("unsupported file type: %s", path)
	}
}

func (p *implProcessor) removeTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to clean up temp file %s: %v", path, err)
	}
}

// recoverSegments re-segments per-chunk blocks into one text per entry.
// Every success path upstream guarantees segment-per-entry correspondence,
// but translated text may itself contain blank lines; pad or trim so the
// output always aligns 1:1 with the source timeline.
func (p *implProcessor) recoverSegments(ctx context.Context, blocks []string, want int) []string {
	joined := strings.Join(blocks, "\n\n")
	raw := strings.Split(joined, "\n\n")

	segments := make([]string, 0, want)
	for _, s := range raw {
		segments = append(segments, strings.TrimSpace(s))
	}

	if len(segments) != want {
		p.logger.Warn(ctx, "Segment count mismatch after merging (%d vs %d), recovering", len(segments), want)
		for len(segments) < want {
			segments = append(segments, "")
		}
		segments = segments[:want]
	}
	return segments
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
