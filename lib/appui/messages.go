// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"time"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/session"
)

// sessionProbeMsg carries the result of the startup session probe.
// The client keeps no persisted credentials, so the probe resolves to
// "no session" immediately; the message exists so the initializing
// phase always ends through the same path.
type sessionProbeMsg struct {
	identity session.Identity
	ok       bool
}

// loginResultMsg is sent when an asynchronous login call completes.
type loginResultMsg struct {
	identity session.Identity
	err      error
}

// registerResultMsg is sent when an asynchronous signup call
// completes. On success the register screen hands off to login.
type registerResultMsg struct {
	err error
}

// kpisMsg delivers the home screen's impact numbers.
type kpisMsg struct {
	kpis gateway.KPIs
	err  error
}

// pantryItemsMsg delivers the pantry listing.
type pantryItemsMsg struct {
	items []gateway.Item
	err   error
}

// itemSavedMsg is sent when AddFood's save call completes.
type itemSavedMsg struct {
	err error
}

// itemUpdatedMsg is sent when a consumption update completes. The
// remaining quantity is applied locally on success.
type itemUpdatedMsg struct {
	itemID    string
	remaining int
	err       error
}

// lookupResultMsg delivers a barcode lookup result to the scanner.
type lookupResultMsg struct {
	product gateway.Product
	err     error
}

// chatHistoryMsg delivers the stored conversation on chat entry.
type chatHistoryMsg struct {
	messages []gateway.ChatMessage
	err      error
}

// chatReplyMsg delivers the full updated conversation after a send.
type chatReplyMsg struct {
	messages []gateway.ChatMessage
	err      error
}

// recipesMsg delivers recipe suggestions.
type recipesMsg struct {
	recipes []gateway.Recipe
	err     error
}

// typingTickMsg advances the typewriter animation for one assistant
// message. Ticks carry the message ID so ticks belonging to a
// superseded message are dropped instead of animating the wrong text.
type typingTickMsg struct {
	messageID string
}

// noticeFadeMsg clears a transient status bar notice. The sequence
// number ties a fade to the notice that scheduled it so a newer notice
// is not wiped by an older fade.
type noticeFadeMsg struct {
	seq int
}

// noticeFadeDelay is how long status notices stay visible before the
// help line returns.
const noticeFadeDelay = 4 * time.Second
