// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for scratchpad terminal UIs. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	BorderFocused    lipgloss.Color
	HelpText         lipgloss.Color

	// Search match highlighting.
	SearchHighlightBackground lipgloss.Color // Background tint for matched text.
	SearchCurrentBackground   lipgloss.Color // Background for the current match.

	// Read-only indicator.
	ReadOnlyForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	BorderFocused:    lipgloss.Color("75"),
	HelpText:         lipgloss.Color("241"),

	SearchHighlightBackground: lipgloss.Color("58"),  // dark amber
	SearchCurrentBackground:   lipgloss.Color("100"), // brighter amber for current match

	ReadOnlyForeground: lipgloss.Color("208"), // orange
}
