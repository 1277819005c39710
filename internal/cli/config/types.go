// Package config provides configuration management for the fernsite CLI.
//
// Configuration is layered: struct defaults, then an optional fernsite.yaml,
// then FERNSITE_-prefixed environment variables, then explicitly set command
// line flags. Banner tuning lives here so deployments can adjust the reveal
// threshold, footer exclusion zone, and re-offer cooldown without a rebuild.
package config

import (
	"time"

	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// Config holds all CLI configuration options.
type Config struct {
	Site     SiteConfig     `koanf:"site"`
	Server   ServerConfig   `koanf:"server"`
	Banner   BannerConfig   `koanf:"banner"`
	Registry RegistryConfig `koanf:"registry"`
	Export   ExportConfig   `koanf:"export"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// SiteConfig locates the site content.
type SiteConfig struct {
	// ContentDir is the directory holding the content YAML files. Empty
	// serves the defaults embedded in the binary.
	ContentDir string `koanf:"content_dir"`
}

// ServerConfig holds the serve command settings.
type ServerConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`

	// SessionSecret signs the viewer cookie. When empty, serve generates
	// a throwaway secret and warns; set it in production so sessions
	// survive restarts.
	SessionSecret string `koanf:"session_secret"`
}

// BannerConfig tunes the call-to-action banner controllers.
type BannerConfig struct {
	RevealThreshold float64       `koanf:"reveal_threshold"`
	ExclusionZone   float64       `koanf:"exclusion_zone"`
	Cooldown        time.Duration `koanf:"cooldown"`
}

// Controller converts the section into a banner controller config.
func (c BannerConfig) Controller() banner.Config {
	return banner.Config{
		RevealThreshold: c.RevealThreshold,
		ExclusionZone:   c.ExclusionZone,
		Cooldown:        c.Cooldown,
	}
}

// RegistryConfig tunes per-viewer controller eviction.
type RegistryConfig struct {
	IdleTTL       time.Duration `koanf:"idle_ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// ExportConfig holds the export command settings.
type ExportConfig struct {
	Out     string `koanf:"out"`
	BaseURL string `koanf:"base_url"`
	Minify  bool   `koanf:"minify"`
}

// Default configuration values.
const (
	DefaultPort      = 8080
	DefaultExportDir = "dist"
	DefaultOutput    = "auto" // Auto-detect: styled on a TTY, plain otherwise
)
