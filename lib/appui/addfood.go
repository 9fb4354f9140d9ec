// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/gateway"
)

// Quantity bounds for a single add.
const (
	quantityMin = 1
	quantityMax = 10
)

// foodCategories is the fixed category list. "Other" is the fallback.
var foodCategories = []string{
	"Dairy", "Produce", "Meat", "Seafood", "Bakery",
	"Frozen", "Pantry", "Beverages", "Snacks", "Other",
}

// addFoodFocus identifies the focusable elements of the form in order:
// name, brand, category, price, quantity, expiration, save.
type addFoodFocus int

const (
	addFoodFocusName addFoodFocus = iota
	addFoodFocusBrand
	addFoodFocusCategory
	addFoodFocusPrice
	addFoodFocusQuantity
	addFoodFocusExpiration
	addFoodFocusSave
	addFoodFocusCount
)

// addFoodModel is the form that turns a scanned or manual product into
// a pantry item.
type addFoodModel struct {
	name       textinput.Model
	brand      textinput.Model
	price      textinput.Model
	expiration textinput.Model

	focus    addFoodFocus
	category int
	quantity int

	code   string
	manual bool

	busy      bool
	errorText string
}

func newAddFoodModel() addFoodModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 80

	brand := textinput.New()
	brand.Placeholder = "Brand"
	brand.CharLimit = 80

	price := textinput.New()
	price.Placeholder = "Price (e.g. 3.49)"
	price.CharLimit = 12

	expiration := textinput.New()
	expiration.Placeholder = "Expiration (YYYY-MM-DD)"
	expiration.CharLimit = 10

	return addFoodModel{
		name:       name,
		brand:      brand,
		price:      price,
		expiration: expiration,
		quantity:   quantityMin,
	}
}

// prepare seeds the form from a lookup result (or a bare code for
// manual entry) and focuses the first empty field.
func (form *addFoodModel) prepare(product gateway.Product, manual bool) {
	form.name.SetValue(product.Name)
	form.brand.SetValue(product.Brand)
	form.price.SetValue("")
	form.expiration.SetValue("")
	form.category = 0
	for i, category := range foodCategories {
		if strings.EqualFold(category, product.Category) {
			form.category = i
			break
		}
	}
	form.quantity = quantityMin
	form.code = product.Code
	form.manual = manual
	form.busy = false
	form.errorText = ""
	form.setFocus(addFoodFocusName)
	if product.Name != "" {
		form.setFocus(addFoodFocusPrice)
	}
}

func (form *addFoodModel) setFocus(focus addFoodFocus) {
	form.name.Blur()
	form.brand.Blur()
	form.price.Blur()
	form.expiration.Blur()
	switch focus {
	case addFoodFocusName:
		form.name.Focus()
	case addFoodFocusBrand:
		form.brand.Focus()
	case addFoodFocusPrice:
		form.price.Focus()
	case addFoodFocusExpiration:
		form.expiration.Focus()
	}
	form.focus = focus
}

func (model *Model) handleAddFoodKey(message tea.KeyMsg) tea.Cmd {
	form := &model.addFood

	switch message.Type {
	case tea.KeyEsc:
		model.calls.cancel(callAddItem)
		model.navigator.Pop()
		return nil
	case tea.KeyTab, tea.KeyDown:
		form.setFocus((form.focus + 1) % addFoodFocusCount)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		form.setFocus((form.focus + addFoodFocusCount - 1) % addFoodFocusCount)
		return nil
	case tea.KeyLeft:
		switch form.focus {
		case addFoodFocusCategory:
			form.category = (form.category + len(foodCategories) - 1) % len(foodCategories)
			return nil
		case addFoodFocusQuantity:
			if form.quantity > quantityMin {
				form.quantity--
			}
			return nil
		}
	case tea.KeyRight:
		switch form.focus {
		case addFoodFocusCategory:
			form.category = (form.category + 1) % len(foodCategories)
			return nil
		case addFoodFocusQuantity:
			if form.quantity < quantityMax {
				form.quantity++
			}
			return nil
		}
	case tea.KeyEnter:
		if form.focus == addFoodFocusSave {
			return model.startAddItem()
		}
		form.setFocus((form.focus + 1) % addFoodFocusCount)
		return nil
	}

	var command tea.Cmd
	switch form.focus {
	case addFoodFocusName:
		form.name, command = form.name.Update(message)
	case addFoodFocusBrand:
		form.brand, command = form.brand.Update(message)
	case addFoodFocusPrice:
		form.price, command = form.price.Update(message)
	case addFoodFocusExpiration:
		form.expiration, command = form.expiration.Update(message)
	}
	return command
}

// parsePrice validates and normalizes a price entry to two decimals.
func parsePrice(input string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("price must be a non-negative number")
	}
	// Round to cents so the stored value matches what is displayed.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	if err != nil {
		return 0, err
	}
	return rounded, nil
}

func (model *Model) startAddItem() tea.Cmd {
	form := &model.addFood
	if form.busy {
		return nil
	}
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}

	name := strings.TrimSpace(form.name.Value())
	if name == "" {
		form.errorText = "Name is required."
		return nil
	}
	price, err := parsePrice(form.price.Value())
	if err != nil {
		form.errorText = err.Error()
		return nil
	}
	expiration := strings.TrimSpace(form.expiration.Value())
	if _, err := time.Parse("2006-01-02", expiration); err != nil {
		form.errorText = "Expiration must be a valid YYYY-MM-DD date."
		return nil
	}

	form.busy = true
	form.errorText = ""
	item := gateway.Item{
		Code:           form.code,
		Name:           name,
		Brand:          strings.TrimSpace(form.brand.Value()),
		Category:       foodCategories[form.category],
		ExpirationDate: expiration,
		Quantity:       form.quantity,
		ManualEntry:    form.manual,
		Price:          price,
	}

	ctx := model.calls.begin(callAddItem)
	client := model.client
	userID := identity.ID
	return func() tea.Msg {
		return itemSavedMsg{err: client.AddItem(ctx, userID, item)}
	}
}

func (model *Model) handleItemSaved(message itemSavedMsg) tea.Cmd {
	model.calls.end(callAddItem)
	form := &model.addFood
	form.busy = false

	if message.err != nil {
		form.errorText = message.err.Error()
		return nil
	}
	model.navigator.Pop()
	return tea.Batch(model.notify("Added to your pantry."), model.enterPantry())
}

func (model *Model) viewAddFood() string {
	form := &model.addFood
	styles := model.styles

	marker := func(focus addFoodFocus) string {
		if form.focus == focus {
			return styles.heading.Render("> ")
		}
		return "  "
	}

	var b strings.Builder
	title := "Add food"
	if form.code != "" {
		title += "  (" + form.code + ")"
	}
	b.WriteString(styles.heading.Render(title) + "\n\n")
	b.WriteString(marker(addFoodFocusName) + form.name.View() + "\n")
	b.WriteString(marker(addFoodFocusBrand) + form.brand.View() + "\n")
	b.WriteString(marker(addFoodFocusCategory) + "Category: " + foodCategories[form.category] +
		styles.muted.Render("  (left/right)") + "\n")
	b.WriteString(marker(addFoodFocusPrice) + form.price.View() + "\n")
	b.WriteString(marker(addFoodFocusQuantity) + fmt.Sprintf("Quantity: %d", form.quantity) +
		styles.muted.Render("  (left/right, 1 to 10)") + "\n")
	b.WriteString(marker(addFoodFocusExpiration) + form.expiration.View() + "\n\n")

	save := "[ Save ]"
	if form.busy {
		save = "[ " + model.spinner.View() + " Saving ]"
	}
	if form.focus == addFoodFocusSave {
		b.WriteString(styles.button.Render(save))
	} else {
		b.WriteString(styles.muted.Render(save))
	}

	if form.errorText != "" {
		b.WriteString("\n\n" + styles.errorText.Render(form.errorText))
	}
	b.WriteString("\n\n" + styles.muted.Render("esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
