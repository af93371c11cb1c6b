package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Engine backend identifiers
const (
	EngineFasterWhisper = "faster_whisper"
	EngineOpenAI        = "openai"
	EngineWhisperCpp    = "whisper_cpp"
)

// Config holds the full service configuration loaded from the environment
type Config struct {
	Host        string `validate:"required"`
	Port        int    `validate:"required,min=1,max=65535"`
	Environment string `validate:"oneof=development production"`

	// Engine selects the transcription backend
	Engine    string `validate:"oneof=faster_whisper openai whisper_cpp"`
	ModelSize string `validate:"required"`

	// faster_whisper backend
	WhisperServerURL string

	// whisper_cpp backend
	WhisperCppBinary string
	WhisperCppModel  string

	// CORS origins allowed to call the service
	AllowedOrigins []string `validate:"min=1"`

	// InferenceSlots bounds how many transcriptions run concurrently
	InferenceSlots int `validate:"min=1"`

	// PreloadModel controls eager engine construction at startup
	PreloadModel bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system-wide variables may be in use.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load builds the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Host:             getEnvOrDefault("VOICE_HOST", "0.0.0.0"),
		Port:             getEnvIntOrDefault("VOICE_PORT", 5001),
		Environment:      getEnvOrDefault("VOICE_ENV", "development"),
		Engine:           getEnvOrDefault("VOICE_ENGINE", EngineFasterWhisper),
		ModelSize:        getEnvOrDefault("VOICE_MODEL_SIZE", "base"),
		WhisperServerURL: getEnvOrDefault("WHISPER_SERVER_URL", "http://127.0.0.1:8080"),
		WhisperCppBinary: os.Getenv("WHISPER_CPP_BINARY"),
		WhisperCppModel:  os.Getenv("WHISPER_CPP_MODEL"),
		AllowedOrigins: []string{
			"http://localhost:5000",
			"http://127.0.0.1:5000",
		},
		InferenceSlots: getEnvIntOrDefault("VOICE_INFERENCE_SLOTS", 1),
		PreloadModel:   getEnvBoolOrDefault("VOICE_PRELOAD_MODEL", true),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   10 * time.Minute,
		IdleTimeout:    120 * time.Second,
	}

	if origins := os.Getenv("VOICE_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags plus backend-specific requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Engine {
	case EngineFasterWhisper:
		if c.WhisperServerURL == "" {
			return fmt.Errorf("WHISPER_SERVER_URL must be set for the %s engine", EngineFasterWhisper)
		}
	case EngineWhisperCpp:
		if c.WhisperCppBinary == "" || c.WhisperCppModel == "" {
			return fmt.Errorf("WHISPER_CPP_BINARY and WHISPER_CPP_MODEL must be set for the %s engine", EngineWhisperCpp)
		}
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ModelName returns the identifier reported in service metadata
func (c *Config) ModelName() string {
	switch c.Engine {
	case EngineOpenAI:
		return "whisper-1"
	case EngineWhisperCpp:
		return "whisper.cpp-" + c.ModelSize
	default:
		return "faster-whisper-" + c.ModelSize
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
