package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// envKeyMap maps flat FERNSITE_ environment keys to their nested config
// keys. Anything not listed maps to its lowercased name, which covers the
// top-level keys (verbose, output).
var envKeyMap = map[string]string{
	"CONTENT_DIR":      "site.content_dir",
	"PORT":             "server.port",
	"WATCH":            "server.watch",
	"SESSION_SECRET":   "server.session_secret",
	"REVEAL_THRESHOLD": "banner.reveal_threshold",
	"EXCLUSION_ZONE":   "banner.exclusion_zone",
	"COOLDOWN":         "banner.cooldown",
	"IDLE_TTL":         "registry.idle_ttl",
	"SWEEP_INTERVAL":   "registry.sweep_interval",
	"EXPORT_OUT":       "export.out",
	"BASE_URL":         "export.base_url",
	"MINIFY":           "export.minify",
}

// flagKeyMap maps root persistent flag names to their config keys.
var flagKeyMap = map[string]string{
	"verbose": "verbose",
	"output":  "output",
}

// configExistsIn checks if a fernsite config file exists in the directory.
func configExistsIn(dir string) bool {
	for _, name := range []string{"fernsite.yaml", "fernsite.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// findConfigUpward searches upward from startDir for a fernsite config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{"fernsite.yaml", "fernsite.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"site.content_dir":        "",
		"server.port":             DefaultPort,
		"server.watch":            false,
		"server.session_secret":   "",
		"banner.reveal_threshold": banner.DefaultRevealThreshold,
		"banner.exclusion_zone":   banner.DefaultExclusionZone,
		"banner.cooldown":         banner.DefaultCooldown,
		"registry.idle_ttl":       banners.DefaultIdleTTL,
		"registry.sweep_interval": banners.DefaultSweepInterval,
		"export.out":              DefaultExportDir,
		"export.base_url":         "",
		"export.minify":           true,
		"verbose":                 false,
		"output":                  DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file; without an explicit path, search upward
	// from the working directory.
	configFileUsed = cfgFile
	if configFileUsed == "" {
		if cwd, err := os.Getwd(); err == nil {
			configFileUsed = findConfigUpward(cwd)
		}
	}
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (FERNSITE_ prefix)
	// Transform: FERNSITE_SESSION_SECRET -> server.session_secret
	if err := k.Load(env.Provider("FERNSITE_", ".", func(s string) string {
		key := strings.TrimPrefix(s, "FERNSITE_")
		if mapped, ok := envKeyMap[key]; ok {
			return mapped
		}
		return strings.ToLower(key)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeyMap[f.Name]
			if !ok {
				// Command-local flags are applied by their commands.
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Resolve the content dir relative to the config file, so a config
	// found by upward search keeps pointing at its own content.
	if cfg.Site.ContentDir != "" && !filepath.IsAbs(cfg.Site.ContentDir) && configFileUsed != "" {
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			cfg.Site.ContentDir = filepath.Join(filepath.Dir(abs), cfg.Site.ContentDir)
		}
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after Load is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// Defaults returns a Config with every field at its default value.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		Banner: BannerConfig{
			RevealThreshold: banner.DefaultRevealThreshold,
			ExclusionZone:   banner.DefaultExclusionZone,
			Cooldown:        banner.DefaultCooldown,
		},
		Registry: RegistryConfig{
			IdleTTL:       banners.DefaultIdleTTL,
			SweepInterval: banners.DefaultSweepInterval,
		},
		Export:       ExportConfig{Out: DefaultExportDir, Minify: true},
		OutputFormat: DefaultOutput,
	}
}
