// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChatMessage is one entry in the assistant conversation. The backend
// has stored messages under two shapes over time: {id, sender, text}
// and {id, role, content}. Decoding accepts both and normalizes them
// here, so the rest of the client sees a single shape.
type ChatMessage struct {
	// ID identifies the message within the history.
	ID string

	// Role is "user" or "assistant".
	Role string

	// Text is the message body. Assistant replies may contain
	// markdown.
	Text string
}

// RoleUser and RoleAssistant are the two message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// chatMessageWire covers both historical shapes of a stored message.
type chatMessageWire struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Role    string `json:"role"`
	Text    string `json:"text"`
	Content string `json:"content"`
}

// UnmarshalJSON normalizes the two wire shapes. "bot" and "assistant"
// both map to RoleAssistant.
func (message *ChatMessage) UnmarshalJSON(data []byte) error {
	var wire chatMessageWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	role := wire.Role
	if role == "" {
		role = wire.Sender
	}
	if role == "bot" {
		role = RoleAssistant
	}

	text := wire.Text
	if text == "" {
		text = wire.Content
	}

	*message = ChatMessage{ID: wire.ID, Role: role, Text: text}
	return nil
}

// MarshalJSON writes the normalized shape.
func (message ChatMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(chatMessageWire{
		ID:   message.ID,
		Role: message.Role,
		Text: message.Text,
	})
}

// Recipe is one suggestion from the backend.
type Recipe struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Ingredients  Ingredients `json:"ingredients"`
	Instructions string      `json:"instructions"`
}

// Ingredients is a list of ingredient lines. The backend sometimes
// returns an array and sometimes a single comma-joined string;
// decoding accepts both.
type Ingredients []string

// UnmarshalJSON accepts either a JSON array of strings or a single
// string.
func (ingredients *Ingredients) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*ingredients = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*ingredients = nil
			return nil
		}
		parts := strings.Split(single, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		*ingredients = parts
		return nil
	}
	return fmt.Errorf("ingredients: expected array or string, got %s", data)
}

// String joins the ingredient lines for one-line display.
func (ingredients Ingredients) String() string {
	return strings.Join(ingredients, ", ")
}
