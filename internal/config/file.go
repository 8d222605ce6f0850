package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName is used for the config directory and environment variable prefix.
const AppName = "zprompt"

// Environment variables consulted by Load.
const (
	EnvConfig   = "ZPROMPT_CONFIG"
	EnvPreset   = "ZPROMPT_PRESET"
	EnvLogLevel = "ZPROMPT_LOG_LEVEL"
)

// File is the on-disk YAML layout.
//
//	preset: dracula
//	high_contrast: true
//	log_level: debug
//	format: zsh
//	colors:
//	  default: "#ccc"
//	  branch: yellow
type File struct {
	Preset       string            `yaml:"preset"`
	HighContrast bool              `yaml:"high_contrast"`
	LogLevel     string            `yaml:"log_level"`
	Format       string            `yaml:"format"`
	Colors       map[string]string `yaml:"colors"`
}

// DefaultPath returns the config file location: $ZPROMPT_CONFIG if set,
// otherwise <user config dir>/zprompt/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// ReadFile decodes the YAML config at path. A missing file yields a nil File
// and no error.
func ReadFile(path string) (*File, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// Load builds the effective configuration from defaults, the config file at
// path, and environment overrides. The returned Config is always usable; a
// non-nil error only reports that the file was ignored.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	f, err := ReadFile(path)
	if f != nil {
		cfg.apply(f)
	}
	cfg.applyEnvOverrides()
	cfg.Theme = ThemeForPreset(cfg.ThemePreset, cfg.HighContrast)
	return cfg, err
}

func (c *Config) apply(f *File) {
	if f.Preset != "" {
		c.ThemePreset = ThemePreset(strings.ToLower(f.Preset))
	}
	c.HighContrast = c.HighContrast || f.HighContrast
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	c.Overrides = MergeOverrides(c.Overrides, ParseOverrides(f.Colors))
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvPreset); v != "" {
		c.ThemePreset = ThemePreset(strings.ToLower(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}
