package config

// Default configuration constants
const (
	// Zed publishes its default settings as a JSONC document in the main
	// repository.
	defaultSourceURL = "https://raw.githubusercontent.com/zed-industries/zed/main/assets/settings/default.json"

	// Fetch timeout in seconds.
	defaultTimeoutSec = 30

	// Default output location, relative to the working directory.
	defaultOutputPath = "configs/zed.yaml"
)

// DefaultConfig returns the default configuration values for zedref.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:       "Zed",
			ConfigPath: "~/.config/zed/settings.json",
			ConfigType: "json",
		},
		Source: SourceConfig{
			URL:        defaultSourceURL,
			TimeoutSec: defaultTimeoutSec,
		},
		Output: OutputConfig{
			Path: defaultOutputPath,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
