package main

import (
	"fmt"
	"os"

	"conrad-voice/cmd/voiced/cmd"
	"conrad-voice/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
