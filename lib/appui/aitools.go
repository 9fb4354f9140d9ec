// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// aiToolsModel is the hub for the assistant features.
type aiToolsModel struct {
	cursor int
}

var aiTools = []struct {
	title       string
	description string
}{
	{"AI Chat", "Ask anything about the food in your pantry."},
	{"AI Recipes", "Get recipe ideas from what you already have."},
}

func (tools *aiToolsModel) reset() {
	tools.cursor = 0
}

func (model *Model) handleAIToolsKey(message tea.KeyMsg) tea.Cmd {
	tools := &model.aiTools
	switch message.Type {
	case tea.KeyUp:
		if tools.cursor > 0 {
			tools.cursor--
		}
	case tea.KeyDown:
		if tools.cursor < len(aiTools)-1 {
			tools.cursor++
		}
	case tea.KeyEnter:
		if tools.cursor == 0 {
			return model.pushChat()
		}
		return model.pushRecipe()
	}
	return nil
}

func (model *Model) viewAITools() string {
	tools := &model.aiTools
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.heading.Render("AI tools") + "\n\n")
	for i, tool := range aiTools {
		title := tool.title
		if i == tools.cursor {
			b.WriteString(styles.heading.Render("> "+title) + "\n")
		} else {
			b.WriteString("  " + title + "\n")
		}
		b.WriteString("    " + styles.muted.Render(tool.description) + "\n")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
