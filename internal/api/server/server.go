package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "conrad-voice/docs" // Generated swagger docs
	"conrad-voice/internal/api/middleware"
	"conrad-voice/internal/api/v1/handlers"
	"conrad-voice/internal/api/v1/services"
	"conrad-voice/internal/app/model"
	"conrad-voice/internal/config"
)

// Server represents the API server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	manager    *model.Manager
	logger     *zap.Logger
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	transcriptionService services.TranscriptionService,
	manager *model.Manager,
	logger *zap.Logger,
) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowedOrigins)))

	// Handlers
	transcriptionHandler := handlers.NewTranscriptionHandler(transcriptionService)
	healthHandler := handlers.NewHealthHandler(manager, cfg.ModelName())

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.POST("/transcribe", transcriptionHandler.Transcribe)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation routes
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		manager:    manager,
		logger:     logger,
	}
}

// Start runs the HTTP server, pre-loading the model first when configured.
// Pre-load failure is non-fatal; the model lazily loads on first request.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting voice service",
		zap.String("address", s.httpServer.Addr),
		zap.String("model", s.config.ModelName()),
		zap.String("engine", s.config.Engine),
	)

	if s.config.PreloadModel {
		s.manager.Preload(ctx)
	}

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down voice service")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("voice service shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
