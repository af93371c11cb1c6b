package app

import (
	"go.uber.org/zap"

	"conrad-voice/internal/app/infer"
	"conrad-voice/internal/app/metrics"
	"conrad-voice/internal/app/model"
	"conrad-voice/internal/config"
)

// provideManager builds the lazily-initialized model manager for the
// configured engine backend
func provideManager(cfg *config.Config, logger *zap.Logger) *model.Manager {
	return model.NewManagerFromConfig(cfg, logger)
}

// provideGate bounds concurrent inference to the configured slot count
func provideGate(cfg *config.Config) *infer.Gate {
	return infer.NewGate(cfg.InferenceSlots)
}

// provideMetrics registers the transcription metrics on the default registry
func provideMetrics() *metrics.Metrics {
	return metrics.Default()
}
