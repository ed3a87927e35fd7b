// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for scratchpad.
//
// Configuration is loaded from a single file specified by either the
// SCRATCHPAD_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There are no fallbacks, no ~/.config
// discovery, and no automatic file search. Running without any config
// file uses the built-in defaults.
//
// Environment variables never override config values. The only
// expansion performed is ${HOME} and ${VAR:-default} patterns in path
// fields, for portability of shared config files.
//
// Key exports:
//
//   - [Config] -- struct with Editor and Log sections
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other scratchpad packages.
package config
