package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"conrad-voice/internal/app/api"
	"conrad-voice/internal/app/audio"
)

// LocalTranscriber implements local transcription using the whisper.cpp CLI.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	logger     *zap.Logger
}

// cliOutput mirrors the JSON file written by whisper.cpp with -oj.
type cliOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []cliSegment `json:"transcription"`
}

type cliSegment struct {
	Text    string `json:"text"`
	Offsets struct {
		From int64 `json:"from"` // milliseconds
		To   int64 `json:"to"`
	} `json:"offsets"`
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath string, logger *zap.Logger) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		logger:     logger,
	}
}

// Transcribe runs the whisper.cpp binary against the staged file and parses
// its JSON output. Input that is not already 16kHz WAV is converted first.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, inputFilePath string) (*api.Result, error) {
	lt.logger.Info("starting local transcription", zap.String("file", inputFilePath))

	// whisper.cpp only accepts 16kHz WAV input
	wavPath, err := audio.ConvertTo16kHzWav(inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("error converting input file: %w", err)
	}
	defer os.Remove(wavPath)

	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	outputFile := outputPrefix + ".json"
	defer os.Remove(outputFile)

	args := []string{
		"-m", lt.modelPath,
		"-l", "auto",
		"-oj",
		"-np",
		"-f", wavPath,
		"-of", outputPrefix,
	}

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}

	result, err := parseOutput(data)
	if err != nil {
		return nil, err
	}

	lt.logger.Info("local transcription finished",
		zap.String("language", result.Language),
		zap.Float64("duration", result.Duration))

	return result, nil
}

func parseOutput(data []byte) (*api.Result, error) {
	var out cliOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper.cpp output: %w", err)
	}

	segments := make([]string, len(out.Transcription))
	var lastOffsetMs int64
	for i, s := range out.Transcription {
		segments[i] = s.Text
		if s.Offsets.To > lastOffsetMs {
			lastOffsetMs = s.Offsets.To
		}
	}

	return &api.Result{
		Text:     api.JoinSegments(segments),
		Language: out.Result.Language,
		// The CLI does not report a detection probability.
		LanguageProbability: 1.0,
		Duration:            float64(lastOffsetMs) / 1000.0,
	}, nil
}
