// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/gateway"
)

// expiringSoonWindow is how close an expiration date has to be before
// an item is flagged. Items at or past their date count too.
const expiringSoonWindow = 2 * 24 * time.Hour

// pantryModel is the inventory listing with the consumption dialog.
type pantryModel struct {
	items   []gateway.Item
	cursor  int
	loading bool
	err     error

	// consuming is non-nil while the "how many did you use" dialog is
	// open for the item it points into.
	consuming *consumeDialog

	// updating is true while an item update is in flight.
	updating bool
}

// consumeDialog tracks the consumption amount being chosen for one
// item.
type consumeDialog struct {
	item     gateway.Item
	consumed int
}

func (pantry *pantryModel) reset() {
	*pantry = pantryModel{}
}

func (model *Model) enterPantry() tea.Cmd {
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}
	model.pantry.loading = true
	model.pantry.err = nil

	ctx := model.calls.begin(callPantry)
	client := model.client
	userID := identity.ID
	return func() tea.Msg {
		items, err := client.PantryItems(ctx, userID)
		return pantryItemsMsg{items: items, err: err}
	}
}

func (model *Model) handlePantryItems(message pantryItemsMsg) {
	model.calls.end(callPantry)
	pantry := &model.pantry
	pantry.loading = false
	pantry.err = message.err
	if message.err == nil {
		pantry.items = message.items
		if pantry.cursor >= len(pantry.items) {
			pantry.cursor = 0
		}
	}
}

// expiringSoon reports whether the item's expiration date falls within
// the warning window of now. Unparseable dates are not flagged.
func expiringSoon(item gateway.Item, now time.Time) bool {
	expiration, err := time.ParseInLocation("2006-01-02", item.ExpirationDate, now.Location())
	if err != nil {
		return false
	}
	return !expiration.After(now.Add(expiringSoonWindow))
}

func (model *Model) handlePantryKey(message tea.KeyMsg) tea.Cmd {
	pantry := &model.pantry

	if dialog := pantry.consuming; dialog != nil {
		switch message.Type {
		case tea.KeyEsc:
			pantry.consuming = nil
		case tea.KeyLeft:
			if dialog.consumed > 0 {
				dialog.consumed--
			}
		case tea.KeyRight:
			if dialog.consumed < dialog.item.Quantity {
				dialog.consumed++
			}
		case tea.KeyEnter:
			return model.startConsume()
		}
		return nil
	}

	switch message.Type {
	case tea.KeyUp:
		if pantry.cursor > 0 {
			pantry.cursor--
		}
	case tea.KeyDown:
		if pantry.cursor < len(pantry.items)-1 {
			pantry.cursor++
		}
	case tea.KeyEnter:
		if pantry.cursor < len(pantry.items) {
			pantry.consuming = &consumeDialog{item: pantry.items[pantry.cursor]}
		}
	}
	return nil
}

// startConsume submits the consumption update. The remaining quantity
// replaces the item's quantity server-side; the handler patches the
// local copy so the list does not need a refetch.
func (model *Model) startConsume() tea.Cmd {
	pantry := &model.pantry
	dialog := pantry.consuming
	if dialog == nil || dialog.consumed == 0 || pantry.updating {
		return nil
	}
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}
	pantry.updating = true

	item := dialog.item
	remaining := item.Quantity - dialog.consumed
	item.Quantity = remaining

	ctx := model.calls.begin(callUpdate)
	client := model.client
	userID := identity.ID
	return func() tea.Msg {
		err := client.UpdateItem(ctx, userID, item.ID, item)
		return itemUpdatedMsg{itemID: item.ID, remaining: remaining, err: err}
	}
}

func (model *Model) handleItemUpdated(message itemUpdatedMsg) tea.Cmd {
	model.calls.end(callUpdate)
	pantry := &model.pantry
	pantry.updating = false
	pantry.consuming = nil

	if message.err != nil {
		pantry.err = message.err
		return nil
	}
	for i := range pantry.items {
		if pantry.items[i].ID != message.itemID {
			continue
		}
		if message.remaining <= 0 {
			pantry.items = append(pantry.items[:i], pantry.items[i+1:]...)
			if pantry.cursor >= len(pantry.items) && pantry.cursor > 0 {
				pantry.cursor--
			}
		} else {
			pantry.items[i].Quantity = message.remaining
		}
		break
	}
	return model.notify("Pantry updated.")
}

func (model *Model) viewPantry() string {
	pantry := &model.pantry
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.heading.Render("Your pantry") + "\n\n")

	switch {
	case pantry.loading:
		b.WriteString(model.spinner.View() + " Loading items...\n")
	case pantry.err != nil:
		b.WriteString(styles.errorText.Render("Pantry error: "+pantry.err.Error()) + "\n")
	case len(pantry.items) == 0:
		b.WriteString(styles.muted.Render("Nothing here yet. Scan or add an item to get started.") + "\n")
	default:
		now := time.Now()
		for i, item := range pantry.items {
			line := fmt.Sprintf("%-28s x%-3d %s", truncate(item.Name, 28), item.Quantity, item.ExpirationDate)
			switch {
			case i == pantry.cursor:
				line = styles.heading.Render("> " + line)
			case expiringSoon(item, now):
				line = "  " + styles.warnText.Render(line+"  expiring soon")
			default:
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	if dialog := pantry.consuming; dialog != nil {
		var box strings.Builder
		box.WriteString(styles.cardTitle.Render("Consume "+dialog.item.Name) + "\n")
		box.WriteString(fmt.Sprintf("Used: %d of %d  (left/right to adjust)\n", dialog.consumed, dialog.item.Quantity))
		if pantry.updating {
			box.WriteString(model.spinner.View() + " Saving...")
		} else {
			box.WriteString(styles.muted.Render("enter save, esc cancel"))
		}
		b.WriteString("\n" + styles.card.Render(box.String()) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// truncate shortens a string to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
