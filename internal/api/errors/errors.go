package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindUnsupportedMediaType ErrorKind = "unsupported_media_type"
	KindModelUnavailable     ErrorKind = "model_unavailable"
	KindTranscriptionFailed  ErrorKind = "transcription_failed"
	KindBadRequest           ErrorKind = "bad_request"
	KindInternal             ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindUnsupportedMediaType, KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewUnsupportedMediaTypeError names the rejected content type so clients can
// see what the browser actually declared.
func NewUnsupportedMediaTypeError(contentType string) *APIError {
	return &APIError{
		Kind:    KindUnsupportedMediaType,
		Message: fmt.Sprintf("Unsupported file type: %s. Use webm, wav, mp3, m4a, or ogg", contentType),
	}
}

// NewModelUnavailableError creates an error for failed engine construction.
// The next request retries construction from scratch.
func NewModelUnavailableError(err error) *APIError {
	return &APIError{
		Kind:    KindModelUnavailable,
		Message: "Transcription model is unavailable",
		Detail:  err.Error(),
	}
}

// NewTranscriptionFailedError wraps any staging or inference failure
func NewTranscriptionFailedError(err error) *APIError {
	return &APIError{
		Kind:    KindTranscriptionFailed,
		Message: "Transcription failed",
		Detail:  err.Error(),
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}
