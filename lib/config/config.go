// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the scratchpad configuration.
type Config struct {
	// Editor configures the editing pane.
	Editor EditorConfig `yaml:"editor"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// EditorConfig configures the editing pane.
type EditorConfig struct {
	// WheelStep is how many lines one mouse wheel notch scrolls.
	// Default: 2
	WheelStep int `yaml:"wheel_step"`

	// GraceWindowMS is how long, in milliseconds, cursor auto-scroll
	// stays suppressed after a manual wheel scroll.
	// Default: 500
	GraceWindowMS int `yaml:"grace_window_ms"`

	// Highlight enables syntax highlighting of fenced code blocks.
	// Default: true
	Highlight *bool `yaml:"highlight"`

	// ReadOnly opens files in read-only mode.
	// Default: false
	ReadOnly bool `yaml:"read_only"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Output is the log destination file. Logging to the terminal would
	// corrupt the UI, so there is no stderr default; empty disables
	// logging entirely.
	Output string `yaml:"output"`

	// Level is the minimum level to log: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. These defaults are a base
// for the config file to override; running without a config file at
// all is also supported.
func Default() *Config {
	highlight := true
	return &Config{
		Editor: EditorConfig{
			WheelStep:     2,
			GraceWindowMS: 500,
			Highlight:     &highlight,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GraceWindow returns the grace window as a duration.
func (c *EditorConfig) GraceWindow() time.Duration {
	return time.Duration(c.GraceWindowMS) * time.Millisecond
}

// HighlightEnabled reports whether syntax highlighting is on.
func (c *EditorConfig) HighlightEnabled() bool {
	return c.Highlight == nil || *c.Highlight
}

// Load loads configuration from the SCRATCHPAD_CONFIG environment
// variable, falling back to defaults when it is unset. There is no
// file discovery: configuration comes from exactly one explicit path
// (this variable or the --config flag), so behavior is deterministic
// with no hidden overrides.
func Load() (*Config, error) {
	configPath := os.Getenv("SCRATCHPAD_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables
// do not override config values; the only expansion performed is
// ${HOME} and similar path variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.Log.Output = expandVars(cfg.Log.Output)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.WheelStep < 1 {
		errs = append(errs, fmt.Errorf("editor.wheel_step must be at least 1, got %d", c.Editor.WheelStep))
	}
	if c.Editor.GraceWindowMS < 0 {
		errs = append(errs, fmt.Errorf("editor.grace_window_ms must not be negative, got %d", c.Editor.GraceWindowMS))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
