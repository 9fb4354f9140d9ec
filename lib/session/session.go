// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package session

import "sync"

// Identity is the authenticated user's backend-confirmed identity.
// The ID keys every subsequent backend call; Name and Email are for
// display. An Identity only enters the store after the backend has
// validated credentials; the store itself performs no validation.
type Identity struct {
	// ID is the opaque backend user identifier.
	ID string

	// Name is the display name.
	Name string

	// Email is the login email address.
	Email string
}

// Observer receives the new session state after every mutation.
// When the session is cleared, identity is the zero value and ok is
// false.
type Observer func(identity Identity, ok bool)

// Store holds the current verified identity, or none. Constructed once
// by the application root and passed down by reference; nothing below
// the root creates its own instance.
//
// Reads and writes are mutex-guarded so that command goroutines may
// read concurrently with the UI loop, but the store is single-writer
// in practice: all mutations happen on the bubbletea update loop.
type Store struct {
	mu        sync.Mutex
	identity  Identity
	ok        bool
	observers []Observer
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the current identity and whether one is set. It never
// blocks beyond the store mutex.
func (store *Store) Get() (Identity, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.identity, store.ok
}

// Set replaces the session with the given identity and synchronously
// notifies every observer before returning. Used after a backend call
// has confirmed credentials.
func (store *Store) Set(identity Identity) {
	store.mu.Lock()
	store.identity = identity
	store.ok = true
	observers := store.observers
	store.mu.Unlock()

	for _, observer := range observers {
		observer(identity, true)
	}
}

// Clear empties the session and synchronously notifies every observer.
// Used on logout. Clearing an already-empty store still notifies:
// last-write-wins, and observers are expected to be idempotent.
func (store *Store) Clear() {
	store.mu.Lock()
	store.identity = Identity{}
	store.ok = false
	observers := store.observers
	store.mu.Unlock()

	for _, observer := range observers {
		observer(Identity{}, false)
	}
}

// Subscribe registers an observer for future mutations. Observers are
// called in registration order, on the goroutine that performs the
// mutation. They must not mutate the store from inside the callback.
func (store *Store) Subscribe(observer Observer) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.observers = append(store.observers, observer)
}
