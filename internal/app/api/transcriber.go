package api

import (
	"context"
	"strings"
)

// Result holds the outcome of a single whole-file transcription pass.
type Result struct {
	// Text is the full recognized text, all segments concatenated and trimmed.
	Text string
	// Language is the detected language code (e.g. "en").
	Language string
	// LanguageProbability is the engine's confidence in the detected language.
	LanguageProbability float64
	// Duration is the total audio duration in seconds.
	Duration float64
}

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcribe(ctx context.Context, inputFilePath string) (*Result, error)
}

// JoinSegments concatenates per-segment texts into one trimmed string.
// Engines emit time-bounded segments; the API contract is a single string.
func JoinSegments(segments []string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
