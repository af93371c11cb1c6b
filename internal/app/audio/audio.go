package audio

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// allowedExtensions is the upload extension allow-list used when the declared
// content type is missing or unrecognized.
var allowedExtensions = []string{".webm", ".wav", ".mp3", ".m4a", ".ogg"}

// IsSupportedUpload applies the two-tier media check: the declared content
// type must contain an audio marker, or the filename extension must be on the
// allow-list. Browsers inconsistently report content types for recorded
// audio, and webm in particular sometimes arrives as video/webm.
func IsSupportedUpload(contentType, filename string) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "audio") || strings.Contains(ct, "video/webm") {
		return true
	}

	ext := strings.ToLower(filepath.Ext(filename))
	return lo.Contains(allowedExtensions, ext)
}

// GetAudioDuration returns the audio duration in seconds via ffprobe.
func GetAudioDuration(filePath string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", filePath, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe output %q: %w", strings.TrimSpace(string(output)), err)
	}
	return duration, nil
}

// ConvertTo16kHzWav converts the input file to the 16kHz mono WAV format that
// whisper.cpp expects. The converted file is written next to the input with a
// _16khz.wav suffix; callers own its cleanup.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"

	cmd := exec.Command("ffmpeg", "-y", "-i", inputFilePath, "-ar", "16000", "-ac", "1", "-c:a", "pcm_s16le", outputFilePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}

	if _, err := os.Stat(outputFilePath); err != nil {
		return "", fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	return outputFilePath, nil
}
