package browser

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the yaml-encoded driver configuration.
type Config struct {
	// Headless is the default mode for new sessions
	Headless bool `yaml:"headless"`

	// Viewport is the default viewport for new sessions
	Viewport Viewport `yaml:"viewport"`

	// TimeoutMS is the default page operation timeout in milliseconds
	TimeoutMS float64 `yaml:"timeout_ms"`

	// MaxSessions caps the number of concurrent sessions
	MaxSessions int `yaml:"max_sessions"`

	// IdleTimeout closes sessions idle for longer than this
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// DefaultConfig returns the standard driver configuration: headless, a
// desktop viewport, and conservative session limits.
func DefaultConfig() Config {
	return Config{
		Headless:    true,
		Viewport:    Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		TimeoutMS:   DefaultTimeout,
		MaxSessions: DefaultMaxSessions,
		IdleTimeout: DefaultIdleTimeout,
	}
}

// LoadConfig reads a yaml configuration file, applying defaults for any
// omitted field.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks bounds on the configuration.
func (c Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("invalid timeout %v", c.TimeoutMS)
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be positive, got %d", c.MaxSessions)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("invalid idle_timeout %v", c.IdleTimeout)
	}
	return nil
}
