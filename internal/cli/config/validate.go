package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Banner.RevealThreshold < 0 {
		return fmt.Errorf("banner.reveal_threshold cannot be negative")
	}
	if c.Banner.ExclusionZone < 0 {
		return fmt.Errorf("banner.exclusion_zone cannot be negative")
	}
	if c.Banner.Cooldown <= 0 {
		return fmt.Errorf("banner.cooldown must be positive, got %s", c.Banner.Cooldown)
	}
	if c.Registry.IdleTTL <= 0 {
		return fmt.Errorf("registry.idle_ttl must be positive, got %s", c.Registry.IdleTTL)
	}
	if c.Registry.SweepInterval <= 0 {
		return fmt.Errorf("registry.sweep_interval must be positive, got %s", c.Registry.SweepInterval)
	}

	switch c.OutputFormat {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("output must be auto, text, or json, got %q", c.OutputFormat)
	}

	// Content dir existence is checked separately so help and export against
	// embedded defaults keep working.
	return nil
}

// ValidateContentDir checks that a content directory exists. An empty dir is
// valid: the embedded defaults serve instead.
func ValidateContentDir(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("content directory does not exist: %s\nHint: Create the directory or use --content to specify a different path", dir)
	}
	return nil
}
