package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/radxishan/digest/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("base_url", c.BaseURL, httpURL),
		c.validateTimeout(),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
	)
}

func (c *Config) validateTimeout() error {
	if c.HTTP.Timeout <= 0 {
		return criterio.NewFieldErrors("http.timeout", fmt.Errorf("must be positive, got %s", c.HTTP.Timeout))
	}
	return nil
}

// httpURL validates an absolute http(s) URL with a host.
func httpURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
