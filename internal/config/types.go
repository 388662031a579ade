package config

// ProviderType identifies a chat completion provider.
type ProviderType string

const (
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOpenAI     ProviderType = "openai"
)

// Mode selects how the HTTP boundary is hosted.
type Mode string

const (
	// ModeStandalone runs the bundled HTTP server with endpoints under /api.
	ModeStandalone Mode = "standalone"
	// ModeFunction exposes the handler for a function host that mounts it
	// under its own /api prefix, so endpoints are registered at the root.
	ModeFunction Mode = "function"
)

// Config is the top-level voicevot configuration, corresponding to .voicevot.yml.
// The provider API key is deliberately absent: credentials come from the
// environment only.
type Config struct {
	Provider   ProviderType `yaml:"provider" koanf:"provider"`
	Model      string       `yaml:"model" koanf:"model"`
	Port       int          `yaml:"port" koanf:"port"`
	Mode       Mode         `yaml:"mode" koanf:"mode"`
	Production bool         `yaml:"production" koanf:"production"`
	UploadsDir string       `yaml:"uploads_dir" koanf:"uploads_dir"`
	PublicDir  string       `yaml:"public_dir" koanf:"public_dir"`
	RefererURL string       `yaml:"referer_url" koanf:"referer_url"`
	AppTitle   string       `yaml:"app_title" koanf:"app_title"`
	// ProviderTimeoutSeconds bounds each outbound completion call.
	// 0 disables the server-side timeout and relies on the provider's own.
	ProviderTimeoutSeconds int `yaml:"provider_timeout_seconds" koanf:"provider_timeout_seconds"`
}
