// Package config loads and validates the toast configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/toast/internal/core/toast"
)

// Position is the screen edge toasts stack from.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// IsValid checks if the position is supported.
func (p Position) IsValid() bool {
	return p == PositionTop || p == PositionBottom
}

// Config is the root configuration.
type Config struct {
	Toast ToastConfig `yaml:"toast"`
	TUI   TUIConfig   `yaml:"tui"`
}

// ToastConfig controls queue timing and layout.
type ToastConfig struct {
	Duration      time.Duration `yaml:"duration" validate:"gt=0s"`            // default visible lifetime for Success/Error
	Entrance      time.Duration `yaml:"entrance" validate:"gte=0s"`           // entrance stage before the countdown starts
	FrameInterval time.Duration `yaml:"frame_interval" validate:"gte=10ms"`   // redraw cadence of the progress indicator
	Width         int           `yaml:"width" validate:"gte=20,lte=200"`      // toast box width in cells
	Position      Position      `yaml:"position" validate:"oneof=top bottom"` // top or bottom
}

// TUIConfig holds display settings.
type TUIConfig struct {
	Theme string `yaml:"theme" validate:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toast: ToastConfig{
			Duration:      toast.DefaultDuration,
			Entrance:      400 * time.Millisecond,
			FrameInterval: 50 * time.Millisecond,
			Width:         50,
			Position:      PositionTop,
		},
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path and validates it. If
// configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Parse(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration like Load but skips validation, so callers such
// as `config validate` can report every problem instead of failing early.
func Parse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// YAML renders c as a config file document.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toast.Duration == 0 {
		c.Toast.Duration = defaults.Toast.Duration
	}
	if c.Toast.FrameInterval == 0 {
		c.Toast.FrameInterval = defaults.Toast.FrameInterval
	}
	if c.Toast.Width == 0 {
		c.Toast.Width = defaults.Toast.Width
	}
	if c.Toast.Position == "" {
		c.Toast.Position = defaults.Toast.Position
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
