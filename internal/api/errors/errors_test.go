package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected int
	}{
		{
			name:     "unsupported media type maps to 400",
			err:      NewUnsupportedMediaTypeError("text/plain"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "bad request maps to 400",
			err:      NewBadRequestError("No file uploaded"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "model unavailable maps to 500",
			err:      NewModelUnavailableError(errors.New("connection refused")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "transcription failed maps to 500",
			err:      NewTranscriptionFailedError(errors.New("decode failed")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "internal maps to 500",
			err:      NewInternalError("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.HTTPStatus())
		})
	}
}

func TestNewUnsupportedMediaTypeError_NamesRejectedType(t *testing.T) {
	err := NewUnsupportedMediaTypeError("text/plain")
	assert.Contains(t, err.Message, "Unsupported file type: text/plain")
	assert.Equal(t, KindUnsupportedMediaType, err.Kind)
}

func TestAPIError_Error_IncludesDetail(t *testing.T) {
	err := NewTranscriptionFailedError(errors.New("empty audio"))
	assert.Contains(t, err.Error(), "empty audio")
}
