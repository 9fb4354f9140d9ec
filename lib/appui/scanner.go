// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/nav"
)

// ScanResult is a decoded barcode as delivered by whatever reader is
// attached. The terminal client types codes in; a wedge scanner that
// emulates a keyboard produces the same input.
type ScanResult struct {
	Symbology string
	Payload   string
}

// scannerModel is the barcode entry screen. A recognized code pushes
// the add-food form prefilled with the product; an unrecognized one
// offers manual entry under the same code.
type scannerModel struct {
	code     textinput.Model
	busy     bool
	err      error
	notFound string
}

func newScannerModel() scannerModel {
	code := textinput.New()
	code.Placeholder = "Barcode (EAN/UPC digits)"
	code.CharLimit = 48
	code.Focus()
	return scannerModel{code: code}
}

func (scanner *scannerModel) reset() {
	scanner.code.SetValue("")
	scanner.code.Focus()
	scanner.busy = false
	scanner.err = nil
	scanner.notFound = ""
}

func (model *Model) handleScannerKey(message tea.KeyMsg) tea.Cmd {
	scanner := &model.scanner

	if message.Type == tea.KeyEnter {
		if scanner.notFound != "" {
			// Second enter after a miss: add the item manually,
			// keeping the scanned code.
			code := scanner.notFound
			scanner.reset()
			model.navigator.Push(nav.ScreenAddFood, nav.Params{"code": code, "manual": true})
			model.addFood.prepare(gateway.Product{Code: code}, true)
			return nil
		}
		return model.startLookup(ScanResult{Symbology: "keyed", Payload: strings.TrimSpace(scanner.code.Value())})
	}

	scanner.notFound = ""
	var command tea.Cmd
	scanner.code, command = scanner.code.Update(message)
	return command
}

// startLookup resolves a scan against the product catalog.
func (model *Model) startLookup(scan ScanResult) tea.Cmd {
	scanner := &model.scanner
	if scan.Payload == "" || scanner.busy {
		return nil
	}
	scanner.busy = true
	scanner.err = nil

	ctx := model.calls.begin(callLookup)
	client := model.client
	return func() tea.Msg {
		product, err := client.LookupBarcode(ctx, scan.Payload)
		return lookupResultMsg{product: product, err: err}
	}
}

func (model *Model) handleLookupResult(message lookupResultMsg) {
	model.calls.end(callLookup)
	scanner := &model.scanner
	scanner.busy = false

	switch {
	case errors.Is(message.err, gateway.ErrNotFound):
		scanner.notFound = strings.TrimSpace(scanner.code.Value())
	case message.err != nil:
		scanner.err = message.err
	default:
		scanner.code.SetValue("")
		model.navigator.Push(nav.ScreenAddFood, nav.Params{"code": message.product.Code})
		model.addFood.prepare(message.product, false)
	}
}

func (model *Model) viewScanner() string {
	scanner := &model.scanner
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.heading.Render("Scan a product") + "\n")
	b.WriteString(styles.muted.Render("Type or scan a barcode, then press enter.") + "\n\n")
	b.WriteString(scanner.code.View() + "\n")

	switch {
	case scanner.busy:
		b.WriteString("\n" + model.spinner.View() + " Looking up product...")
	case scanner.notFound != "":
		b.WriteString("\n" + styles.warnText.Render("No product found for "+scanner.notFound+"."))
		b.WriteString("\n" + styles.muted.Render("Press enter again to add it manually."))
	case scanner.err != nil:
		b.WriteString("\n" + styles.errorText.Render("Lookup failed: "+scanner.err.Error()))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
