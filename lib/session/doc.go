// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the verified-identity state for a running
// client. The store is an in-memory latch for the process lifetime:
// set by a successful login or registration, cleared by logout, never
// persisted and never partially populated.
//
// There is deliberately no third "pending" state. Anything that needs
// to know whether the user is logged in asks the store and gets a
// definite yes (with the identity) or no. The navigation layer keys
// its entire screen-graph selection off that single bit.
//
// Observers registered via [Store.Subscribe] are notified synchronously
// inside Set and Clear, before the mutating call returns. A caller that
// reads the store immediately after mutating it always observes the
// new value, and so does every observer: there is no eventual-
// consistency window.
package session
