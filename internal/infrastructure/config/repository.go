// Package config loads launcher configuration from defaults, an optional
// JSON config file and environment variable overrides, in that priority
// order.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the launcher's effective configuration.
type Config struct {
	// ApplicationDirs are the descriptor directories scanned for .desktop
	// files, in priority order.
	ApplicationDirs []string `json:"application_dirs"`
	// IconDirs are the theme/pixmap directories probed for logical icon
	// names.
	IconDirs []string `json:"icon_dirs"`
	// IconSize is the nominal icon pixel size.
	IconSize int `json:"icon_size"`
	// Locales overrides the environment-derived locale preference list.
	Locales []string `json:"locales,omitempty"`
	// Debug enables verbose logging.
	Debug bool `json:"debug"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		ApplicationDirs: []string{
			"/usr/share/applications",
			filepath.Join(home, ".local/share/applications"),
		},
		IconDirs: []string{
			filepath.Join(home, ".icons"),
			filepath.Join(home, ".local/share/icons/hicolor"),
			"/usr/share/icons/hicolor",
			"/usr/share/pixmaps",
		},
		IconSize: 64,
	}
}

// Repository loads configuration from the composite of defaults, the config
// file and the environment.
type Repository struct {
	path string
}

// NewRepository creates a repository reading SLING_CONFIG_FILE or the
// default ~/.config/sling/config.json.
func NewRepository() *Repository {
	path := os.Getenv("SLING_CONFIG_FILE")
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".config", "sling", "config.json")
	}
	return &Repository{path: path}
}

// NewRepositoryWithPath creates a repository over an explicit config file.
func NewRepositoryWithPath(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the config file location this repository reads.
func (r *Repository) Path() string { return r.path }

// Load produces the effective configuration. A missing config file is not an
// error; a malformed one is.
func (r *Repository) Load() (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(r.path); err == nil {
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", r.path, err)
		}
		merge(cfg, &fileCfg)
	}

	applyEnvironment(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// merge overlays set fields of src onto dst.
func merge(dst, src *Config) {
	if len(src.ApplicationDirs) > 0 {
		dst.ApplicationDirs = src.ApplicationDirs
	}
	if len(src.IconDirs) > 0 {
		dst.IconDirs = src.IconDirs
	}
	if src.IconSize > 0 {
		dst.IconSize = src.IconSize
	}
	if len(src.Locales) > 0 {
		dst.Locales = src.Locales
	}
	if src.Debug {
		dst.Debug = true
	}
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("SLING_APP_DIRS"); v != "" {
		cfg.ApplicationDirs = filepath.SplitList(v)
	}
	if v := os.Getenv("SLING_ICON_DIRS"); v != "" {
		cfg.IconDirs = filepath.SplitList(v)
	}
	if v := os.Getenv("SLING_ICON_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			cfg.IconSize = size
		}
	}
	if v := os.Getenv("SLING_DEBUG"); v != "" {
		cfg.Debug = strings.EqualFold(v, "true") || v == "1"
	}
}

func validate(cfg *Config) error {
	if cfg.IconSize <= 0 {
		return fmt.Errorf("icon_size must be positive, got %d", cfg.IconSize)
	}
	if len(cfg.ApplicationDirs) == 0 {
		return fmt.Errorf("at least one application directory is required")
	}
	return nil
}
