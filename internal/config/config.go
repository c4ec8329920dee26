// Package config provides configuration management for fml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the fml configuration.
type Config struct {
	URL             string `yaml:"url"`
	APIToken        string `yaml:"api_token,omitempty"`
	OutputFormat    string `yaml:"output_format,omitempty"`
	DefaultTemplate string `yaml:"default_template,omitempty"`
}

// Validate checks that required fields are present and valid.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}

	// http is allowed for local deployments
	if !strings.HasPrefix(c.URL, "https://") && !strings.HasPrefix(c.URL, "http://") {
		return errors.New("url must start with http:// or https://")
	}

	return nil
}

// NormalizeURL strips a trailing slash so paths concatenate cleanly.
func (c *Config) NormalizeURL() {
	c.URL = strings.TrimSuffix(c.URL, "/")
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: FML_* → FORMAL_* → existing config value
func (c *Config) LoadFromEnv() {
	if url := getEnvWithFallback("FML_URL", "FORMAL_URL"); url != "" {
		c.URL = url
	}
	if token := getEnvWithFallback("FML_API_TOKEN", "FORMAL_API_TOKEN"); token != "" {
		c.APIToken = token
	}
	if format := os.Getenv("FML_OUTPUT"); format != "" {
		c.OutputFormat = format
	}
	if tmpl := os.Getenv("FML_DEFAULT_TEMPLATE"); tmpl != "" {
		c.DefaultTemplate = tmpl
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "fml", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".fml", "config.yml")
	}

	return filepath.Join(home, ".config", "fml", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with restricted permissions (user read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
