// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

// Package nav decides which screen the client shows. It is a state
// machine with three phases: an initializing phase that lasts until
// the first authentication determination, then exactly one of two
// mutually exclusive graphs: the unauthenticated graph rooted at
// Login and the authenticated graph rooted at the primary tab set.
//
// The navigator observes the session store. Every session mutation is
// re-evaluated inside the store's synchronous notification, so a phase
// switch and its stack reset are atomic with respect to [Navigator.Current]:
// no caller can ever observe an authenticated-graph screen while the
// session is empty, or the reverse, even under rapid login/logout
// toggling.
//
// Navigation actions that are invalid for the current phase (pushing an
// authenticated screen while logged out, popping the home frame) are
// ignored rather than rejected: screens cannot put the navigator into a
// bad state, so there is nothing to report.
package nav
