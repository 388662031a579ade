package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (VOICEVOT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: VOICEVOT_PORT -> port, etc.
	if err := k.Load(env.Provider("VOICEVOT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "VOICEVOT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderOpenRouter: true,
	ProviderOpenAI:     true,
}

// validModes is the set of recognized deployment modes.
var validModes = map[Mode]bool{
	ModeStandalone: true,
	ModeFunction:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of openrouter, openai", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.Mode != "" && !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of standalone, function", c.Mode)
	}

	if c.UploadsDir == "" {
		return fmt.Errorf("uploads_dir is required")
	}

	if c.ProviderTimeoutSeconds < 0 {
		return fmt.Errorf("provider_timeout_seconds must be non-negative")
	}

	return nil
}

// BasePath returns the URL prefix endpoints are mounted under for the
// configured deployment mode.
func (c *Config) BasePath() string {
	if c.Mode == ModeFunction {
		return ""
	}
	return "/api"
}
