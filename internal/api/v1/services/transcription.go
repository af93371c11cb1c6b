package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	apierrors "conrad-voice/internal/api/errors"
	"conrad-voice/internal/api/v1/dto"
	"conrad-voice/internal/app/audio"
	"conrad-voice/internal/app/infer"
	"conrad-voice/internal/app/metrics"
	"conrad-voice/internal/app/model"
)

// Upload carries one client-submitted audio file through a request.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// TranscriptionService turns an upload into a transcription response
type TranscriptionService interface {
	Transcribe(ctx context.Context, upload *Upload) (*dto.TranscriptionResponse, *apierrors.APIError)
}

type transcriptionService struct {
	manager *model.Manager
	gate    *infer.Gate
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewTranscriptionService creates the transcription service
func NewTranscriptionService(manager *model.Manager, gate *infer.Gate, m *metrics.Metrics, logger *zap.Logger) TranscriptionService {
	return &transcriptionService{
		manager: manager,
		gate:    gate,
		metrics: m,
		logger:  logger,
	}
}

// Transcribe validates the upload, stages it to a temp file, runs the shared
// engine against the staged path and shapes the result. The staged file is
// deleted on every exit path.
func (s *transcriptionService) Transcribe(ctx context.Context, upload *Upload) (*dto.TranscriptionResponse, *apierrors.APIError) {
	if !audio.IsSupportedUpload(upload.ContentType, upload.Filename) {
		s.metrics.RequestsTotal.WithLabelValues("rejected").Inc()
		return nil, apierrors.NewUnsupportedMediaTypeError(upload.ContentType)
	}

	stagedPath, size, err := s.stage(upload)
	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues("failed").Inc()
		return nil, apierrors.NewTranscriptionFailedError(err)
	}
	defer os.Remove(stagedPath)

	engine, err := s.manager.Get(ctx)
	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues("unavailable").Inc()
		return nil, apierrors.NewModelUnavailableError(err)
	}
	s.metrics.ModelLoaded.Set(1)

	if err := s.gate.Acquire(ctx); err != nil {
		s.metrics.RequestsTotal.WithLabelValues("failed").Inc()
		return nil, apierrors.NewTranscriptionFailedError(err)
	}
	defer s.gate.Release()

	s.logger.Info("transcribing upload",
		zap.String("filename", upload.Filename),
		zap.Int64("bytes", size))

	s.metrics.InFlight.Inc()
	start := time.Now()
	result, err := engine.Transcribe(ctx, stagedPath)
	elapsed := time.Since(start)
	s.metrics.InFlight.Dec()
	s.metrics.TranscribeDuration.Observe(elapsed.Seconds())

	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("transcription error",
			zap.String("filename", upload.Filename),
			zap.Error(err))
		return nil, apierrors.NewTranscriptionFailedError(err)
	}

	if result.Duration == 0 {
		// Some engines report no duration; probe the staged file instead.
		if probed, probeErr := audio.GetAudioDuration(stagedPath); probeErr == nil {
			result.Duration = probed
		}
	}

	s.metrics.RequestsTotal.WithLabelValues("success").Inc()
	s.metrics.AudioSecondsTotal.Add(result.Duration)
	s.logger.Info("transcription complete",
		zap.String("language", result.Language),
		zap.Float64("duration", result.Duration),
		zap.Duration("elapsed", elapsed))

	return &dto.TranscriptionResponse{
		Success:             true,
		Text:                strings.TrimSpace(result.Text),
		Language:            result.Language,
		LanguageProbability: result.LanguageProbability,
		Duration:            result.Duration,
	}, nil
}

// stage writes the full upload byte sequence to a uniquely named temporary
// file. The file is flushed before the path is handed to the engine; partial
// writes must never reach inference. Empty uploads are staged as-is and the
// engine reports whatever failure they produce.
func (s *transcriptionService) stage(upload *Upload) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext == "" {
		ext = ".webm"
	}

	tempFile, err := os.CreateTemp("", "voice-upload-*"+ext)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	size, err := io.Copy(tempFile, upload.Content)
	if err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", 0, fmt.Errorf("failed to write upload: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", 0, fmt.Errorf("failed to flush upload: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempFile.Name())
		return "", 0, fmt.Errorf("failed to close staged file: %w", err)
	}

	return tempFile.Name(), size, nil
}
