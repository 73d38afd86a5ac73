// Package mkv selects and extracts subtitle tracks from Matroska containers
// using the external mkvmerge and mkvextract tools.
package mkv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/subverter/subverter/internal/lang"
	"github.com/subverter/subverter/pkg/executor"
)

// Track is one subtitle track as reported by mkvmerge.
type Track struct {
	ID       int
	Codec    string
	Language string // normalised ISO 639-1, may be ""
	Name     string
}

type probeOutput struct {
	Tracks []struct {
		ID         int    `json:"id"`
		Type       string `json:"type"`
		Codec      string `json:"codec"`
		Properties struct {
			CodecID   string `json:"codec_id"`
			Language  string `json:"language"`
			TrackName string `json:"track_name"`
		} `json:"properties"`
	} `json:"tracks"`
}

// Probe lists the text subtitle tracks of an MKV file via `mkvmerge -J`.
func Probe(ctx context.Context, exec executor.Executor, mkvmergePath, file string) ([]Track, error) {
	out, err := exec.Execute(ctx, mkvmergePath, "-J", file)
	if err != nil {
		return nil, fmt.Errorf("probe mkv: %w", err)
	}
	return parseProbe([]byte(out))
}

func parseProbe(data []byte) ([]Track, error) {
	var probe probeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse mkvmerge output: %w", err)
	}

	var tracks []Track
	for _, t := range probe.Tracks {
		if t.Type != "subtitles" || !isTextSubtitle(t.Codec, t.Properties.CodecID) {
			continue
		}
		tracks = append(tracks, Track{
			ID:       t.ID,
			Codec:    t.Codec,
			Language: lang.Normalize(t.Properties.Language),
			Name:     t.Properties.TrackName,
		})
	}
	return tracks, nil
}

func isTextSubtitle(codec, codecID string) bool {
	return strings.Contains(codec, "SubRip") || codecID == "S_TEXT/UTF8"
}

// SelectTrack picks the subtitle track to translate: tracks are matched
// against the allowlist in the allowlist's preference order, so a lower
// preference language never wins over a higher one. Returns false when no
// track is tagged with an allowed language.
func SelectTrack(tracks []Track, allowed []string) (Track, bool) {
	for _, language := range allowed {
		for _, t := range tracks {
			if t.Language == language {
				return t, true
			}
		}
	}
	return Track{}, false
}

// Extract writes one subtitle track to dst via mkvextract.
func Extract(ctx context.Context, exec executor.Executor, mkvextractPath, file string, trackID int, dst string) error {
	spec := fmt.Sprintf("%d:%s", trackID, dst)
	if _, err := exec.Execute(ctx, mkvextractPath, file, "tracks", spec); err != nil {
		return fmt.Errorf("extract track %d: %w", trackID, err)
	}
	return nil
}
