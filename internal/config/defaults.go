package config

// DefaultConfig returns a Config with sensible defaults matching the
// original deployment: OpenRouter in front of GPT-3.5, port 8000.
func DefaultConfig() *Config {
	return &Config{
		Provider:               ProviderOpenRouter,
		Model:                  "openai/gpt-3.5-turbo",
		Port:                   8000,
		Mode:                   ModeStandalone,
		Production:             false,
		UploadsDir:             "uploads",
		PublicDir:              "public",
		RefererURL:             "https://openrouter.ai/",
		AppTitle:               "AI Voice Interview Bot",
		ProviderTimeoutSeconds: 0,
	}
}
