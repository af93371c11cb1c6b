package faster_whisper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempAudio(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestProvider_Transcribe(t *testing.T) {
	var gotFormat, gotLanguage string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotFormat = r.FormValue("response_format")
		gotLanguage = r.FormValue("language")

		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		json.NewEncoder(w).Encode(inferenceResponse{
			DetectedLanguage:            "en",
			DetectedLanguageProbability: 0.97,
			Duration:                    3.2,
			Segments: []inferenceSegment{
				{ID: 0, Text: " Hello there.", Start: 0, End: 1.5},
				{ID: 1, Text: " General Kenobi. ", Start: 1.5, End: 3.2},
			},
		})
	}))
	defer server.Close()

	provider := NewProvider(Config{BaseURL: server.URL})
	result, err := provider.Transcribe(context.Background(), writeTempAudio(t, []byte("RIFF")))

	require.NoError(t, err)
	assert.Equal(t, "Hello there. General Kenobi.", result.Text)
	assert.Equal(t, "en", result.Language)
	assert.InDelta(t, 0.97, result.LanguageProbability, 1e-9)
	assert.InDelta(t, 3.2, result.Duration, 1e-9)
	assert.Equal(t, "verbose_json", gotFormat)
	assert.Equal(t, "auto", gotLanguage)
}

func TestProvider_Transcribe_DurationFromSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(inferenceResponse{
			Language: "de",
			Segments: []inferenceSegment{{Text: "Hallo", Start: 0, End: 2.5}},
		})
	}))
	defer server.Close()

	provider := NewProvider(Config{BaseURL: server.URL})
	result, err := provider.Transcribe(context.Background(), writeTempAudio(t, []byte("RIFF")))

	require.NoError(t, err)
	assert.Equal(t, "de", result.Language)
	assert.InDelta(t, 2.5, result.Duration, 1e-9)
	assert.InDelta(t, 1.0, result.LanguageProbability, 1e-9)
}

func TestProvider_Transcribe_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "failed to decode audio", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewProvider(Config{BaseURL: server.URL})
	_, err := provider.Transcribe(context.Background(), writeTempAudio(t, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "failed to decode audio")
}

func TestProvider_Transcribe_MissingFile(t *testing.T) {
	provider := NewProvider(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := provider.Transcribe(context.Background(), "/nonexistent/clip.wav")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestProvider_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // any HTTP response means alive
	}))
	defer server.Close()

	provider := NewProvider(Config{BaseURL: server.URL})
	assert.NoError(t, provider.Ping(context.Background()))

	server.Close()
	assert.Error(t, provider.Ping(context.Background()))
}
