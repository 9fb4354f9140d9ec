// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/session"
)

// Gateway is the backend surface the UI consumes. *gateway.Client
// implements it; tests substitute a fake.
type Gateway interface {
	Login(ctx context.Context, email, password string) (session.Identity, error)
	Register(ctx context.Context, registration gateway.Registration) error
	Logout(ctx context.Context) error
	PantryItems(ctx context.Context, userID string) ([]gateway.Item, error)
	AddItem(ctx context.Context, userID string, item gateway.Item) error
	UpdateItem(ctx context.Context, userID, itemID string, item gateway.Item) error
	LookupBarcode(ctx context.Context, code string) (gateway.Product, error)
	ChatHistory(ctx context.Context, userID string) ([]gateway.ChatMessage, error)
	SendChatMessage(ctx context.Context, userID, text string) ([]gateway.ChatMessage, error)
	RecipeSuggestions(ctx context.Context, userID string) ([]gateway.Recipe, error)
	FetchKPIs(ctx context.Context, userID string) (gateway.KPIs, error)
}

var _ Gateway = (*gateway.Client)(nil)
