package transcribe

import (
	"fmt"

	"github.com/spf13/cobra"

	"conrad-voice/internal/app/model"
	"conrad-voice/internal/config"
	"conrad-voice/internal/logging"
)

var showMeta bool

func init() {
	Cmd.Flags().BoolVarP(&showMeta, "meta", "m", false,
		"also print detected language, confidence and duration")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a single local audio file to text",
	Long: `Transcribe a single local audio file to text using the configured engine.

Uses the same engine stack as the HTTP service; the result is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := logging.New(logging.Options{})
		if err != nil {
			return err
		}
		defer logger.Sync()

		manager := model.NewManagerFromConfig(cfg, logger)
		engine, err := manager.Get(cmd.Context())
		if err != nil {
			return fmt.Errorf("model unavailable: %w", err)
		}

		result, err := engine.Transcribe(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("transcription failed: %w", err)
		}

		fmt.Println(result.Text)
		if showMeta {
			fmt.Printf("language=%s probability=%.2f duration=%.1fs\n",
				result.Language, result.LanguageProbability, result.Duration)
		}
		return nil
	},
}
