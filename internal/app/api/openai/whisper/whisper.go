package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"conrad-voice/internal/app/api"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcribe uses the OpenAI API for remote transcription. The verbose JSON
// format carries the detected language, duration and segments.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, inputFilePath string) (*api.Result, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	text := resp.Text
	// The Whisper API does not expose its language detector's probability;
	// approximate one from the per-segment no-speech scores.
	confidence := 1.0
	if len(resp.Segments) > 0 {
		segments := make([]string, len(resp.Segments))
		var speech float64
		for i, s := range resp.Segments {
			segments[i] = s.Text
			speech += 1.0 - s.NoSpeechProb
		}
		text = api.JoinSegments(segments)
		confidence = speech / float64(len(resp.Segments))
	}

	return &api.Result{
		Text:                api.JoinSegments([]string{text}),
		Language:            resp.Language,
		LanguageProbability: confidence,
		Duration:            resp.Duration,
	}, nil
}
