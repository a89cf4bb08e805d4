package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/radxishan/digest/internal/core/config"
	"github.com/radxishan/digest/internal/integration/digestapi"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	BaseURL    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client talks to the newsletter API
	Client *digestapi.Client
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "digest", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/digest/digest.log
// On Linux: $XDG_STATE_HOME/digest/digest.log (defaults to ~/.local/state/digest/digest.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "digest", "digest.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "digest", "digest.log")
	}

	return filepath.Join(home, ".local", "state", "digest", "digest.log")
}
