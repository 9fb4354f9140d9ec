// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the Food Wallet TUI. Screens
// with focused text inputs consume plain runes, so the global actions
// all live on modifier combinations.
type KeyMap struct {
	// List/movement.
	Up   key.Binding
	Down key.Binding

	// Field and item interaction.
	NextField key.Binding
	Confirm   key.Binding
	Back      key.Binding

	// Tab switching (authenticated graph).
	TabHome     key.Binding
	TabPantry   key.Binding
	TabScanner  key.Binding
	TabAITools  key.Binding
	TabSettings key.Binding

	// Global actions.
	ToggleTheme key.Binding
	Logout      key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	TabHome: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("C-a", "home"),
	),
	TabPantry: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("C-p", "pantry"),
	),
	TabScanner: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "scanner"),
	),
	TabAITools: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("C-o", "ai tools"),
	),
	TabSettings: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "settings"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "theme"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "logout"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
