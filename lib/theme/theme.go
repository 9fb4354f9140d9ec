// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// Package theme defines the two Food Wallet color palettes and the
// store that swaps between them. The palette is a closed enumeration
// of color roles; screens never invent colors outside it.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Variant names one of the two built-in palettes.
type Variant string

const (
	// VariantLight is the white-background palette.
	VariantLight Variant = "light"
	// VariantDark is the dark green-background palette.
	VariantDark Variant = "dark"
)

// Palette is the set of named color roles used across every screen.
// All values are truecolor hex so the brand greens render the same
// in the terminal as in the product's other surfaces.
type Palette struct {
	// Variant identifies which of the two palettes this is.
	Variant Variant

	// Base colors.
	Background lipgloss.Color
	Text       lipgloss.Color

	// Action colors.
	ButtonBackground lipgloss.Color
	ButtonText       lipgloss.Color

	// Brand and feedback colors.
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Contrast  lipgloss.Color

	// Chrome.
	Loader     lipgloss.Color
	Muted      lipgloss.Color
	CardBorder lipgloss.Color
}

// Light is the default white-background palette.
var Light = Palette{
	Variant: VariantLight,

	Background: lipgloss.Color("#FFFFFF"),
	Text:       lipgloss.Color("#2F2F2F"),

	ButtonBackground: lipgloss.Color("#28A745"),
	ButtonText:       lipgloss.Color("#FFFFFF"),

	Primary:   lipgloss.Color("#28A745"),
	Secondary: lipgloss.Color("#74C274"),
	Success:   lipgloss.Color("#28A745"),
	Warning:   lipgloss.Color("#FFC107"),
	Danger:    lipgloss.Color("#DC3545"),
	Contrast:  lipgloss.Color("#000000"),

	Loader:     lipgloss.Color("#28A745"),
	Muted:      lipgloss.Color("#666666"),
	CardBorder: lipgloss.Color("#28A745"),
}

// Dark is the dark-terminal palette: very dark green background with
// lighter greens carrying the actions.
var Dark = Palette{
	Variant: VariantDark,

	Background: lipgloss.Color("#121A13"),
	Text:       lipgloss.Color("#FFFFFF"),

	ButtonBackground: lipgloss.Color("#74C274"),
	ButtonText:       lipgloss.Color("#121A13"),

	Primary:   lipgloss.Color("#28A745"),
	Secondary: lipgloss.Color("#74C274"),
	Success:   lipgloss.Color("#28A745"),
	Warning:   lipgloss.Color("#FFC107"),
	Danger:    lipgloss.Color("#DC3545"),
	Contrast:  lipgloss.Color("#FFFFFF"),

	Loader:     lipgloss.Color("#B2E7B2"),
	Muted:      lipgloss.Color("#8A9A8C"),
	CardBorder: lipgloss.Color("#74C274"),
}

// ForVariant returns the built-in palette for a variant. Unknown
// variants return Light.
func ForVariant(variant Variant) Palette {
	if variant == VariantDark {
		return Dark
	}
	return Light
}

// DetectVariant picks a default variant from the terminal background:
// dark terminals get the dark palette. Used when the config asks for
// "auto" theme selection.
func DetectVariant() Variant {
	if termenv.HasDarkBackground() {
		return VariantDark
	}
	return VariantLight
}

// Observer receives the active palette after every toggle.
type Observer func(palette Palette)

// Store holds the active palette and swaps between exactly the two
// built-in ones. Same ownership and notification rules as the session
// store: constructed once at the root, observers notified synchronously
// inside Toggle.
type Store struct {
	mu        sync.Mutex
	palette   Palette
	observers []Observer
}

// NewStore creates a store holding the given initial palette.
func NewStore(initial Palette) *Store {
	return &Store{palette: initial}
}

// Get returns the active palette.
func (store *Store) Get() Palette {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.palette
}

// Toggle swaps light for dark or dark for light and synchronously
// notifies every observer before returning. No other palette can be
// injected through this path: toggling twice always restores the
// original palette.
func (store *Store) Toggle() Palette {
	store.mu.Lock()
	if store.palette.Variant == VariantLight {
		store.palette = Dark
	} else {
		store.palette = Light
	}
	palette := store.palette
	observers := store.observers
	store.mu.Unlock()

	for _, observer := range observers {
		observer(palette)
	}
	return palette
}

// Subscribe registers an observer for future toggles. Observers are
// called in registration order on the toggling goroutine.
func (store *Store) Subscribe(observer Observer) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.observers = append(store.observers, observer)
}
