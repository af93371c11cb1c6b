package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, EngineFasterWhisper, cfg.Engine)
	assert.Equal(t, "base", cfg.ModelSize)
	assert.Equal(t, []string{"http://localhost:5000", "http://127.0.0.1:5000"}, cfg.AllowedOrigins)
	assert.Equal(t, 1, cfg.InferenceSlots)
	assert.True(t, cfg.PreloadModel)
	assert.Equal(t, "0.0.0.0:5001", cfg.Addr())
	assert.Equal(t, "faster-whisper-base", cfg.ModelName())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VOICE_PORT", "8090")
	t.Setenv("VOICE_ENGINE", EngineOpenAI)
	t.Setenv("VOICE_INFERENCE_SLOTS", "4")
	t.Setenv("VOICE_PRELOAD_MODEL", "false")
	t.Setenv("VOICE_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, EngineOpenAI, cfg.Engine)
	assert.Equal(t, 4, cfg.InferenceSlots)
	assert.False(t, cfg.PreloadModel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "whisper-1", cfg.ModelName())
}

func TestLoad_RejectsUnknownEngine(t *testing.T) {
	t.Setenv("VOICE_ENGINE", "parakeet")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_WhisperCppRequiresPaths(t *testing.T) {
	t.Setenv("VOICE_ENGINE", EngineWhisperCpp)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WHISPER_CPP_BINARY")

	t.Setenv("WHISPER_CPP_BINARY", "/usr/local/bin/whisper-cli")
	t.Setenv("WHISPER_CPP_MODEL", "/models/ggml-base.bin")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "whisper.cpp-base", cfg.ModelName())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("VOICE_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Port)
}
