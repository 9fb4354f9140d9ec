// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/nav"
)

// homeModel is the authenticated landing screen: greeting, impact
// numbers, and quick actions.
type homeModel struct {
	kpis    kpisMsg
	loaded  bool
	loading bool
	cursor  int
}

// homeActions are the quick actions offered under the KPI card. Each
// maps to a tab or pushed screen.
var homeActions = []string{
	"Open pantry",
	"Scan a barcode",
	"Ask the assistant",
	"Get recipe ideas",
}

func (home *homeModel) reset() {
	*home = homeModel{}
}

// enterHome starts the KPI fetch for the current user.
func (model *Model) enterHome() tea.Cmd {
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}
	model.home.loading = true

	ctx := model.calls.begin(callKPIs)
	client := model.client
	userID := identity.ID
	return func() tea.Msg {
		kpis, err := client.FetchKPIs(ctx, userID)
		return kpisMsg{kpis: kpis, err: err}
	}
}

func (model *Model) handleKPIs(message kpisMsg) {
	model.calls.end(callKPIs)
	model.home.loading = false
	model.home.loaded = true
	model.home.kpis = message
}

func (model *Model) handleHomeKey(message tea.KeyMsg) tea.Cmd {
	home := &model.home
	switch message.Type {
	case tea.KeyUp:
		if home.cursor > 0 {
			home.cursor--
		}
	case tea.KeyDown:
		if home.cursor < len(homeActions)-1 {
			home.cursor++
		}
	case tea.KeyEnter:
		switch home.cursor {
		case 0:
			return model.selectTab(nav.ScreenPantry)
		case 1:
			return model.selectTab(nav.ScreenScanner)
		case 2:
			return tea.Batch(model.selectTab(nav.ScreenAITools), model.pushChat())
		case 3:
			return tea.Batch(model.selectTab(nav.ScreenAITools), model.pushRecipe())
		}
	}
	return nil
}

func (model *Model) viewHome() string {
	home := &model.home
	styles := model.styles

	var b strings.Builder
	name := "there"
	if identity, ok := model.session.Get(); ok && identity.Name != "" {
		name = identity.Name
	}
	b.WriteString(styles.heading.Render("Hello, "+name+"!") + "\n")
	b.WriteString(styles.muted.Render("Here is your food impact at a glance.") + "\n\n")

	switch {
	case home.loading:
		b.WriteString(model.spinner.View() + " Loading your numbers...\n")
	case home.kpis.err != nil:
		b.WriteString(styles.errorText.Render("Could not load impact numbers: "+home.kpis.err.Error()) + "\n")
	case home.loaded:
		kpis := home.kpis.kpis
		rows := [][2]string{
			{"Pantry value", fmt.Sprintf("$%.2f", kpis.PantryValue)},
			{"Wasted this month", fmt.Sprintf("$%.2f", kpis.WastedValue)},
			{"Recommended budget", fmt.Sprintf("$%.2f", kpis.RecommendedBudget)},
			{"CO2 impact", fmt.Sprintf("%.1f kg", kpis.CO2Impact)},
			{"Potential savings", fmt.Sprintf("$%.2f", kpis.PotentialSavings)},
		}
		var card strings.Builder
		card.WriteString(styles.cardTitle.Render("Impact") + "\n")
		for _, row := range rows {
			card.WriteString(fmt.Sprintf("%-20s %s\n", row[0], row[1]))
		}
		b.WriteString(styles.card.Render(strings.TrimRight(card.String(), "\n")) + "\n")
	}

	b.WriteString("\n" + styles.cardTitle.Render("Quick actions") + "\n")
	for i, action := range homeActions {
		if i == home.cursor {
			b.WriteString(styles.heading.Render("> "+action) + "\n")
		} else {
			b.WriteString("  " + action + "\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
