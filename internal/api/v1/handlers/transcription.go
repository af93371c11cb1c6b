package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conrad-voice/internal/api/errors"
	"conrad-voice/internal/api/middleware"
	"conrad-voice/internal/api/v1/services"
)

// TranscriptionHandler handles the transcription endpoint
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe an uploaded audio file
// @Description Accepts a single multipart audio file and returns its transcription
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file (webm, wav, mp3, m4a or ogg)"
// @Success 200 {object} dto.TranscriptionResponse "Transcription result"
// @Failure 400 {object} errors.APIError "Unsupported file type"
// @Failure 500 {object} errors.APIError "Model unavailable or transcription failed"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	upload := &services.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	response, apiErr := h.service.Transcribe(c.Request.Context(), upload)
	if apiErr != nil {
		middleware.HandleError(c, apiErr)
		return
	}

	c.JSON(http.StatusOK, response)
}
