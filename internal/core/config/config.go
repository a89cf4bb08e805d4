// Package config handles configuration loading and validation for digest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/radxishan/digest/internal/core/styles"
)

// EnvPrefix is the prefix of every environment override, e.g. DIGEST_BASE_URL.
const EnvPrefix = "DIGEST"

const (
	DefaultBaseURL     = "http://localhost:8000"
	DefaultHTTPTimeout = 15 * time.Second
)

// Config holds the application configuration.
type Config struct {
	// BaseURL is the address of the newsletter API, without the /api suffix.
	BaseURL string     `yaml:"base_url"`
	HTTP    HTTPConfig `yaml:"http"`
	TUI     TUIConfig  `yaml:"tui"`
}

// HTTPConfig holds transport settings for the API client.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// TUIConfig holds landing page settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// envOverrides mirrors the overridable options. Pointers distinguish unset
// variables from empty ones.
type envOverrides struct {
	BaseURL     *string        `envconfig:"BASE_URL"`
	HTTPTimeout *time.Duration `envconfig:"HTTP_TIMEOUT"`
	Theme       *string        `envconfig:"THEME"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		HTTP: HTTPConfig{
			Timeout: DefaultHTTPTimeout,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from configPath, then applies DIGEST_* environment
// overrides and validates the result. If configPath is empty or doesn't
// exist, defaults are used.
func Load(configPath string) (*Config, error) {
	cfg, err := LoadUnvalidated(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadUnvalidated is Load without the final Validate. Read, parse and
// environment errors are still returned.
func LoadUnvalidated(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if env.BaseURL != nil {
		c.BaseURL = *env.BaseURL
	}
	if env.HTTPTimeout != nil {
		c.HTTP.Timeout = *env.HTTPTimeout
	}
	if env.Theme != nil {
		c.TUI.Theme = *env.Theme
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = defaults.HTTP.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
