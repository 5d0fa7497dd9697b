// Package config loads userdeck configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all userdeck configuration.
type Config struct {
	// API configures the remote user resource.
	API APIConfig `yaml:"api"`

	// UI configures table rendering.
	UI UIConfig `yaml:"ui"`

	// Logging configures the file logger used while the TUI owns the
	// terminal.
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the remote accessor.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// UIConfig configures the view.
type UIConfig struct {
	PageSize int    `yaml:"page_size"`
	Theme    string `yaml:"theme"` // "light", "dark", or "auto"
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables file logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://jsonplaceholder.typicode.com/users",
			Timeout: "15s",
		},
		UI: UIConfig{
			PageSize: 5,
			Theme:    "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "userdeck.yaml"
	}
	return filepath.Join(home, ".userdeck", "config.yaml")
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Timeout parses the configured request timeout, falling back to the default
// on a bad value.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("USERDECK_BASE_URL"); url != "" {
		c.API.BaseURL = url
	}
	if timeout := os.Getenv("USERDECK_TIMEOUT"); timeout != "" {
		c.API.Timeout = timeout
	}
	if size := os.Getenv("USERDECK_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil && n > 0 {
			c.UI.PageSize = n
		}
	}
	if theme := os.Getenv("USERDECK_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if level := os.Getenv("USERDECK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("USERDECK_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}
