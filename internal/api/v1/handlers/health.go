package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conrad-voice/internal/api/v1/dto"
	"conrad-voice/internal/app/model"
)

// HealthHandler serves service metadata and liveness
type HealthHandler struct {
	manager   *model.Manager
	modelName string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(manager *model.Manager, modelName string) *HealthHandler {
	return &HealthHandler{
		manager:   manager,
		modelName: modelName,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:        "healthy",
		ModelLoaded:   h.manager.Loaded(),
		CUDAAvailable: model.CUDAAvailable(),
	})
}

// Root handles GET /
//
// @Summary Service metadata
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Service: "ConRad Voice Transcription",
		Model:   h.modelName,
		Status:  "running",
		Endpoints: map[string]string{
			"/transcribe": "POST - Upload audio file for transcription",
			"/health":     "GET - Health check",
			"/metrics":    "GET - Prometheus metrics",
		},
	})
}
