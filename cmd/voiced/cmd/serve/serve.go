package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"conrad-voice/internal/app"
	"conrad-voice/internal/config"
	"conrad-voice/internal/logging"
)

var verbose bool

func init() {
	Cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription HTTP service",
	Long: `Run the transcription HTTP service.

Binds to the configured address, eagerly pre-loads the transcription model
(non-fatal on failure) and serves /, /health, /transcribe and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := logging.ForEnvironment(cfg.Environment, verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		srv := app.InitializeServer(cfg, logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(cmd.Context())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
