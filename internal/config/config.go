// Package config provides configuration management for zedref with Viper
// integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for zedref.
type Config struct {
	App     AppConfig     `mapstructure:"app" yaml:"app" json:"app"`
	Source  SourceConfig  `mapstructure:"source" yaml:"source" json:"source"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output" json:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// AppConfig describes the application whose settings are being documented.
// The values are copied verbatim into the generated reference header.
type AppConfig struct {
	Name       string `mapstructure:"name" yaml:"name" json:"name"`
	ConfigPath string `mapstructure:"config_path" yaml:"config_path" json:"config_path"`
	ConfigType string `mapstructure:"config_type" yaml:"config_type" json:"config_type"`
}

// SourceConfig holds the remote settings document location.
type SourceConfig struct {
	URL        string `mapstructure:"url" yaml:"url" json:"url"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
}

// OutputConfig holds the generated reference location.
type OutputConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Manager handles configuration loading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	mu     sync.RWMutex
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Environment variable support
	v.SetEnvPrefix("ZEDREF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"app.name":           "APP_NAME",
		"app.config_path":    "APP_CONFIG_PATH",
		"app.config_type":    "APP_CONFIG_TYPE",
		"source.url":         "SOURCE_URL",
		"source.timeout_sec": "SOURCE_TIMEOUT_SEC",
		"output.path":        "OUTPUT_PATH",
		"logging.level":      "LOGGING_LEVEL",
		"logging.format":     "LOGGING_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "ZEDREF_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, create default one
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("app.name", defaults.App.Name)
	m.viper.SetDefault("app.config_path", defaults.App.ConfigPath)
	m.viper.SetDefault("app.config_type", defaults.App.ConfigType)
	m.viper.SetDefault("source.url", defaults.Source.URL)
	m.viper.SetDefault("source.timeout_sec", defaults.Source.TimeoutSec)
	m.viper.SetDefault("output.path", defaults.Output.Path)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig creates a default configuration file and its JSON
// schema next to it.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	configData, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)

	return GenerateSchemaFile()
}

// ConfigFileUsed returns the path to the configuration file being used.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}
