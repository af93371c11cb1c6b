package faster_whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"conrad-voice/internal/app/api"
)

// Config represents configuration for the faster-whisper server HTTP API
type Config struct {
	BaseURL       string        // Base URL of the server (e.g. "http://127.0.0.1:8080")
	InferencePath string        // Inference endpoint path (default: "/inference")
	Timeout       time.Duration // Request timeout
	Language      string        // Language hint, "auto" for detection
	Temperature   float64       // Decoding temperature (0.0-1.0)
}

// inferenceResponse represents the verbose JSON response from the server
type inferenceResponse struct {
	Text                        string             `json:"text,omitempty"`
	Language                    string             `json:"language,omitempty"`
	Duration                    float64            `json:"duration,omitempty"`
	Segments                    []inferenceSegment `json:"segments,omitempty"`
	DetectedLanguage            string             `json:"detected_language,omitempty"`
	DetectedLanguageProbability float64            `json:"detected_language_probability,omitempty"`
	Error                       string             `json:"error,omitempty"`
}

// inferenceSegment represents a single timed segment in the verbose response
type inferenceSegment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Provider implements transcription via HTTP to a faster-whisper server instance
type Provider struct {
	config Config
	client *http.Client
}

// NewProvider creates a new faster-whisper HTTP provider
func NewProvider(config Config) *Provider {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.Language == "" {
		config.Language = "auto"
	}

	return &Provider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Ping verifies the server is reachable. Any HTTP response counts as alive;
// only connection-level failures are reported.
func (p *Provider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.BaseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("faster-whisper server unreachable at %s: %w", p.config.BaseURL, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}

// Transcribe uploads the staged audio file to the inference endpoint and
// parses the verbose JSON response.
func (p *Provider) Transcribe(ctx context.Context, inputFilePath string) (*api.Result, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return nil, fmt.Errorf("input file not found: %s", inputFilePath)
	}

	body, contentType, err := p.createMultipartForm(inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart form: %w", err)
	}

	url := p.config.BaseURL + p.config.InferencePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference server returned status %d: %s", resp.StatusCode, string(responseData))
	}

	var parsed inferenceResponse
	if err := json.Unmarshal(responseData, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse inference response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("inference server error: %s", parsed.Error)
	}

	return p.buildResult(&parsed), nil
}

func (p *Provider) buildResult(parsed *inferenceResponse) *api.Result {
	text := parsed.Text
	if len(parsed.Segments) > 0 {
		segments := make([]string, len(parsed.Segments))
		for i, s := range parsed.Segments {
			segments[i] = s.Text
		}
		text = api.JoinSegments(segments)
	}

	language := parsed.DetectedLanguage
	if language == "" {
		language = parsed.Language
	}

	probability := parsed.DetectedLanguageProbability
	if probability == 0 && language != "" {
		// Older servers omit the probability when the language was forced.
		probability = 1.0
	}

	duration := parsed.Duration
	if duration == 0 && len(parsed.Segments) > 0 {
		duration = parsed.Segments[len(parsed.Segments)-1].End
	}

	return &api.Result{
		Text:                api.JoinSegments([]string{text}),
		Language:            language,
		LanguageProbability: probability,
		Duration:            duration,
	}
}

// createMultipartForm builds the upload form for the inference endpoint
func (p *Provider) createMultipartForm(inputFilePath string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file data: %w", err)
	}

	fields := map[string]string{
		"response_format": "verbose_json",
		"language":        p.config.Language,
		"temperature":     fmt.Sprintf("%g", p.config.Temperature),
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
