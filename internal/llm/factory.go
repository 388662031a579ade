package llm

import (
	"fmt"
	"os"
	"time"
)

// NewProvider creates a chat completion provider based on the given provider
// type and model. Credentials are read from the environment once, here; a
// missing key is a constructor error so the process can refuse to start
// rather than fail on the first request.
// Supported provider types: "openrouter", "openai".
func NewProvider(providerType, model, referer, appTitle string, timeout time.Duration) (Provider, error) {
	switch providerType {
	case "openrouter":
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" {
			// The original deployment accepted an OpenAI key for OpenRouter too.
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
		}
		return NewOpenRouterProvider(apiKey, model, referer, appTitle, timeout), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
