// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// Package appui is the Food Wallet terminal UI: a bubbletea model that
// renders whichever screen the navigator selects and wires screen
// actions to the backend gateway.
//
// Screens are sub-models. Each one draws from the session and theme
// stores handed to it by the application root and keeps only its own
// local state (inputs, cursors, fetched data). Backend calls run as
// bubbletea commands; each in-flight call owns a cancelable context
// that is torn down when the issuing screen is left or when the user
// logs out.
package appui
