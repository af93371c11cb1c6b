package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"conrad-voice/cmd/voiced/cmd/serve"
	"conrad-voice/cmd/voiced/cmd/transcribe"
	"conrad-voice/cmd/voiced/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voiced",
	Short: "Speech-to-text transcription service",
	Long: `Speech-to-text transcription service backed by a whisper engine.

- serve runs the HTTP API (POST /transcribe accepts an audio upload)
- transcribe converts a single local audio file to text`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
