package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/toast/internal/core/config"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	ProfilerPort int

	// Config is parsed in the Before hook and available to all commands.
	// It is not validated there; commands validate before use.
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toast", "config.yaml")
}
