//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"conrad-voice/internal/api/server"
	"conrad-voice/internal/api/v1/services"
	"conrad-voice/internal/config"
)

// InitializeServer assembles the full service: metrics, model manager,
// inference gate, transcription service and HTTP server.
func InitializeServer(cfg *config.Config, logger *zap.Logger) *server.Server {
	wire.Build(
		provideMetrics,
		provideManager,
		provideGate,
		services.NewTranscriptionService,
		server.NewServer,
	)
	return nil
}
