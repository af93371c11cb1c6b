package model

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"conrad-voice/internal/app/api"
	"conrad-voice/internal/app/api/faster_whisper"
	"conrad-voice/internal/app/api/openai"
	"conrad-voice/internal/app/api/openai/whisper"
	"conrad-voice/internal/app/api/whisper_cpp"
	"conrad-voice/internal/config"
)

// Factory constructs a transcription engine. Construction may perform I/O
// (reaching an inference server, opening model files) and may fail.
type Factory func(ctx context.Context) (api.Transcriber, error)

// Manager owns the single shared transcription engine for the process
// lifetime. The engine is constructed on first use under a lock so that
// concurrent first requests build it exactly once. A failed construction
// leaves the manager empty and the next request retries from scratch.
type Manager struct {
	mu      sync.Mutex
	engine  api.Transcriber
	factory Factory
	name    string
	logger  *zap.Logger
}

// NewManager creates a manager around the given engine factory.
func NewManager(factory Factory, name string, logger *zap.Logger) *Manager {
	return &Manager{
		factory: factory,
		name:    name,
		logger:  logger,
	}
}

// NewManagerFromConfig wires the factory for the configured backend.
func NewManagerFromConfig(cfg *config.Config, logger *zap.Logger) *Manager {
	return NewManager(engineFactory(cfg, logger), cfg.ModelName(), logger)
}

// Get returns the shared engine, constructing it on first call.
func (m *Manager) Get(ctx context.Context) (api.Transcriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.engine != nil {
		return m.engine, nil
	}

	m.logger.Info("loading transcription model", zap.String("model", m.name))
	engine, err := m.factory(ctx)
	if err != nil {
		m.logger.Error("model construction failed", zap.Error(err))
		return nil, err
	}
	m.logger.Info("model loaded successfully", zap.String("model", m.name))

	m.engine = engine
	return m.engine, nil
}

// Loaded reports whether the engine has been constructed.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine != nil
}

// Preload eagerly constructs the engine at startup. Failure is logged but
// non-fatal; the engine will lazily load on first request instead.
func (m *Manager) Preload(ctx context.Context) {
	if _, err := m.Get(ctx); err != nil {
		m.logger.Warn("model pre-loading failed, will load on first request", zap.Error(err))
	}
}

// engineFactory returns the construction function for the configured backend
func engineFactory(cfg *config.Config, logger *zap.Logger) Factory {
	switch cfg.Engine {
	case config.EngineOpenAI:
		return func(ctx context.Context) (api.Transcriber, error) {
			client, err := openai.GetClient()
			if err != nil {
				return nil, err
			}
			return whisper.NewRemoteTranscriber(client), nil
		}
	case config.EngineWhisperCpp:
		return func(ctx context.Context) (api.Transcriber, error) {
			return whisper_cpp.NewLocalTranscriber(cfg.WhisperCppBinary, cfg.WhisperCppModel, logger), nil
		}
	case config.EngineFasterWhisper:
		return func(ctx context.Context) (api.Transcriber, error) {
			provider := faster_whisper.NewProvider(faster_whisper.Config{
				BaseURL: cfg.WhisperServerURL,
			})
			// Treat an unreachable inference server as a construction
			// failure so the next request retries.
			if err := provider.Ping(ctx); err != nil {
				return nil, err
			}
			return provider, nil
		}
	default:
		return func(ctx context.Context) (api.Transcriber, error) {
			return nil, fmt.Errorf("unknown engine backend: %s", cfg.Engine)
		}
	}
}
