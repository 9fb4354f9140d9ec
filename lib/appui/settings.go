// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/theme"
)

// settingsModel is the settings tab: appearance and account actions.
type settingsModel struct {
	cursor int
}

func (settings *settingsModel) reset() {
	settings.cursor = 0
}

const (
	settingToggleTheme = iota
	settingLogout
	settingCount
)

func (model *Model) handleSettingsKey(message tea.KeyMsg) tea.Cmd {
	settings := &model.settings
	switch message.Type {
	case tea.KeyUp:
		if settings.cursor > 0 {
			settings.cursor--
		}
	case tea.KeyDown:
		if settings.cursor < settingCount-1 {
			settings.cursor++
		}
	case tea.KeyEnter:
		switch settings.cursor {
		case settingToggleTheme:
			model.toggleTheme()
		case settingLogout:
			return model.logout()
		}
	}
	return nil
}

func (model *Model) viewSettings() string {
	settings := &model.settings
	styles := model.styles

	variant := "Dark"
	if model.theme.Get().Variant == theme.VariantDark {
		variant = "Light"
	}
	entries := [settingCount]string{
		"Switch to " + variant + " mode",
		"Log out",
	}

	var b strings.Builder
	b.WriteString(styles.heading.Render("Settings") + "\n\n")
	if identity, ok := model.session.Get(); ok {
		b.WriteString("Signed in as " + identity.Name + " (" + identity.Email + ")\n\n")
	}
	for i, entry := range entries {
		if i == settings.cursor {
			b.WriteString(styles.heading.Render("> "+entry) + "\n")
		} else {
			b.WriteString("  " + entry + "\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
