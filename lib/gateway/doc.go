// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// Package gateway is the typed HTTP client for the Food Wallet backend.
// Every operation is a single request/response call with a JSON body:
// no retries, no caching, no local state. The client mirrors the
// backend's wire format with its own response types.
//
// Errors fall into a small taxonomy. Transport and timeout failures
// wrap the underlying error with the operation name. Business-logic
// rejections map to [ErrInvalidCredentials], [ErrNotFound], or a
// [*ValidationError], all of which work with errors.Is and errors.As.
// Callers surface these at the initiating screen; nothing in this
// package touches session or theme state.
package gateway
