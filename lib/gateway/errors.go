// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"errors"
	"strings"
)

// ErrInvalidCredentials is returned by Login when the backend rejects
// the email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned by LookupBarcode when the backend has no
// product for the scanned code. A miss is an ordinary outcome, not a
// transport failure.
var ErrNotFound = errors.New("product not found")

// ValidationError is returned by Register when the backend rejects the
// submitted fields. It carries the backend's per-field messages so the
// screen can show them inline.
type ValidationError struct {
	// Messages are the backend's rejection reasons, one per field.
	Messages []string
}

// Error joins the field messages into one line.
func (validationError *ValidationError) Error() string {
	if len(validationError.Messages) == 0 {
		return "registration rejected"
	}
	return strings.Join(validationError.Messages, "; ")
}
