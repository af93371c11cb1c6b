package openai

import (
	"fmt"
	"os"
	"sync"

	"github.com/sashabaranov/go-openai"
)

var (
	once      sync.Once
	singleton *openai.Client
	initErr   error
)

// GetClient returns the shared OpenAI client, constructing it on first use.
// Requires the OPENAI_API_KEY environment variable.
func GetClient() (*openai.Client, error) {
	once.Do(func() {
		token, ok := os.LookupEnv("OPENAI_API_KEY")
		if !ok || token == "" {
			initErr = fmt.Errorf("OPENAI_API_KEY environment variable not set")
			return
		}
		singleton = openai.NewClient(token)
	})

	return singleton, initErr
}
