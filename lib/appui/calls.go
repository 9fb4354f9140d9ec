// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"
	"sync"
)

// callRegistry tracks the cancel function of every in-flight backend
// call, keyed by purpose ("login", "pantry", "chat", ...). Screens
// obtain a context through begin; leaving a screen or logging out
// cancels the relevant contexts so no stale response can land on a
// screen that no longer wants it.
type callRegistry struct {
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// Call keys. One key per concern; a new call under a key supersedes the
// previous one.
const (
	callLogin    = "login"
	callRegister = "register"
	callKPIs     = "kpis"
	callPantry   = "pantry"
	callUpdate   = "update-item"
	callLookup   = "lookup"
	callAddItem  = "add-item"
	callChat     = "chat"
	callRecipes  = "recipes"
)

func newCallRegistry() *callRegistry {
	return &callRegistry{cancels: make(map[string]context.CancelFunc)}
}

// begin returns a context for a new call under the given key. A still-
// running call under the same key is canceled first: the store holds
// only the latest value, so only the latest call matters.
func (registry *callRegistry) begin(key string) context.Context {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if cancel, ok := registry.cancels[key]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	registry.cancels[key] = cancel
	return ctx
}

// end releases the context for a completed call.
func (registry *callRegistry) end(key string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if cancel, ok := registry.cancels[key]; ok {
		cancel()
		delete(registry.cancels, key)
	}
}

// cancel aborts the call under the given key, if any.
func (registry *callRegistry) cancel(key string) {
	registry.end(key)
}

// cancelAll aborts every in-flight call. Used on logout and on quit.
func (registry *callRegistry) cancelAll() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for key, cancel := range registry.cancels {
		cancel()
		delete(registry.cancels, key)
	}
}
