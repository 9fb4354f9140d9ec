// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/theme"
)

// styleSet derives the lipgloss styles every screen shares from the
// active palette. Rebuilt on each theme toggle; screens hold no style
// state of their own.
type styleSet struct {
	appTitle   lipgloss.Style
	header     lipgloss.Style
	tabActive  lipgloss.Style
	tab        lipgloss.Style
	text       lipgloss.Style
	muted      lipgloss.Style
	heading    lipgloss.Style
	button     lipgloss.Style
	card       lipgloss.Style
	cardTitle  lipgloss.Style
	errorText  lipgloss.Style
	warnText   lipgloss.Style
	successTag lipgloss.Style
	help       lipgloss.Style
	userBubble lipgloss.Style
	botBubble  lipgloss.Style
}

// newStyleSet builds the shared styles for a palette.
func newStyleSet(palette theme.Palette) styleSet {
	return styleSet{
		appTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.Primary),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.ButtonText).
			Background(palette.Primary).
			Padding(0, 1),
		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.ButtonText).
			Background(palette.Primary).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(palette.Muted).
			Padding(0, 1),
		text: lipgloss.NewStyle().
			Foreground(palette.Text),
		muted: lipgloss.NewStyle().
			Foreground(palette.Muted),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.Primary),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.ButtonText).
			Background(palette.ButtonBackground).
			Padding(0, 2),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.CardBorder).
			Padding(0, 1),
		cardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.Primary),
		errorText: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.Danger),
		warnText: lipgloss.NewStyle().
			Foreground(palette.Warning),
		successTag: lipgloss.NewStyle().
			Foreground(palette.Success),
		help: lipgloss.NewStyle().
			Foreground(palette.Muted),
		userBubble: lipgloss.NewStyle().
			Foreground(palette.ButtonText).
			Background(palette.Primary).
			Padding(0, 1),
		botBubble: lipgloss.NewStyle().
			Foreground(palette.ButtonText).
			Background(palette.Secondary).
			Padding(0, 1),
	}
}
