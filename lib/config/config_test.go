// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.WheelStep != 2 {
		t.Errorf("expected wheel_step=2, got %d", cfg.Editor.WheelStep)
	}

	if cfg.Editor.GraceWindow() != 500*time.Millisecond {
		t.Errorf("expected grace window 500ms, got %s", cfg.Editor.GraceWindow())
	}

	if !cfg.Editor.HighlightEnabled() {
		t.Error("expected highlighting enabled by default")
	}

	if cfg.Editor.ReadOnly {
		t.Error("expected read_only=false by default")
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Log.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_WithoutConfigUsesDefaults(t *testing.T) {
	origConfig := os.Getenv("SCRATCHPAD_CONFIG")
	defer os.Setenv("SCRATCHPAD_CONFIG", origConfig)

	os.Unsetenv("SCRATCHPAD_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without SCRATCHPAD_CONFIG failed: %v", err)
	}
	if cfg.Editor.WheelStep != 2 {
		t.Errorf("expected default wheel_step=2, got %d", cfg.Editor.WheelStep)
	}
}

func TestLoad_WithScratchpadConfig(t *testing.T) {
	origConfig := os.Getenv("SCRATCHPAD_CONFIG")
	defer os.Setenv("SCRATCHPAD_CONFIG", origConfig)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scratchpad.yaml")

	configContent := `
editor:
  wheel_step: 5
  read_only: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	os.Setenv("SCRATCHPAD_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Editor.WheelStep != 5 {
		t.Errorf("expected wheel_step=5, got %d", cfg.Editor.WheelStep)
	}
	if !cfg.Editor.ReadOnly {
		t.Error("expected read_only=true")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scratchpad.yaml")

	configContent := `
editor:
  wheel_step: 3
  grace_window_ms: 1000
  highlight: false

log:
  output: /tmp/scratchpad.log
  level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Editor.WheelStep != 3 {
		t.Errorf("expected wheel_step=3, got %d", cfg.Editor.WheelStep)
	}

	if cfg.Editor.GraceWindow() != time.Second {
		t.Errorf("expected grace window 1s, got %s", cfg.Editor.GraceWindow())
	}

	if cfg.Editor.HighlightEnabled() {
		t.Error("expected highlighting disabled")
	}

	if cfg.Log.Output != "/tmp/scratchpad.log" {
		t.Errorf("expected log output /tmp/scratchpad.log, got %s", cfg.Log.Output)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFile_PartialOverridesKeepDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scratchpad.yaml")

	configContent := `
log:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	// Unmentioned fields keep their defaults.
	if cfg.Editor.WheelStep != 2 {
		t.Errorf("expected default wheel_step=2, got %d", cfg.Editor.WheelStep)
	}
	if !cfg.Editor.HighlightEnabled() {
		t.Error("expected highlighting still enabled")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Log.Level)
	}
}

func TestLoadFile_ExpandsLogOutput(t *testing.T) {
	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", "/home/tester")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scratchpad.yaml")

	configContent := `
log:
  output: ${HOME}/scratchpad.log
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Log.Output != "/home/tester/scratchpad.log" {
		t.Errorf("expected expanded log output, got %s", cfg.Log.Output)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile("/nonexistent/scratchpad.yaml"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestExpandVars(t *testing.T) {
	origValue := os.Getenv("SCRATCHPAD_TEST_VAR")
	defer os.Setenv("SCRATCHPAD_TEST_VAR", origValue)
	os.Setenv("SCRATCHPAD_TEST_VAR", "present")

	tests := []struct {
		input    string
		expected string
	}{
		{input: "${SCRATCHPAD_TEST_VAR}/logs", expected: "present/logs"},
		{input: "${SCRATCHPAD_TEST_MISSING:-fallback}", expected: "fallback"},
		{input: "${SCRATCHPAD_TEST_VAR:-fallback}", expected: "present"},
		{input: "no variables here", expected: "no variables here"},
	}

	for _, tt := range tests {
		if result := expandVars(tt.input); result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "zero wheel step",
			modify: func(c *Config) {
				c.Editor.WheelStep = 0
			},
			wantErr: true,
		},
		{
			name: "negative grace window",
			modify: func(c *Config) {
				c.Editor.GraceWindowMS = -1
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Log.Level = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
