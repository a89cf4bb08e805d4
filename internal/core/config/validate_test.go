package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:   "https with path",
			mutate: func(c *Config) { c.BaseURL = "https://api.example.com/digest" },
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "wrong scheme",
			mutate:  func(c *Config) { c.BaseURL = "ftp://example.com" },
			wantErr: "base_url",
		},
		{
			name:    "relative url",
			mutate:  func(c *Config) { c.BaseURL = "/api" },
			wantErr: "base_url",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.HTTP.Timeout = 0 },
			wantErr: "http.timeout",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.HTTP.Timeout = -time.Second },
			wantErr: "http.timeout",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.TUI.Theme = "neon" },
			wantErr: "tui.theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_reports_all_fields(t *testing.T) {
	cfg := Config{BaseURL: "nope", TUI: TUIConfig{Theme: "neon"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "http.timeout")
	assert.Contains(t, err.Error(), "tui.theme")
}
