// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"testing"
	"time"

	"github.com/foodwallet/foodwallet/lib/testutil"
)

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore()
	identity, ok := store.Get()
	if ok {
		t.Fatal("new store should be empty")
	}
	if identity != (Identity{}) {
		t.Errorf("empty store returned identity %+v", identity)
	}
}

func TestSetThenGet(t *testing.T) {
	store := NewStore()
	store.Set(Identity{ID: "u1", Name: "Ann", Email: "a@x.com"})

	identity, ok := store.Get()
	if !ok {
		t.Fatal("store should hold an identity after Set")
	}
	if identity.ID != "u1" || identity.Name != "Ann" || identity.Email != "a@x.com" {
		t.Errorf("Get = %+v, want the identity passed to Set", identity)
	}
}

func TestClearEmptiesStore(t *testing.T) {
	store := NewStore()
	store.Set(Identity{ID: "u1", Name: "Ann", Email: "a@x.com"})
	store.Clear()

	if _, ok := store.Get(); ok {
		t.Error("store should be empty after Clear")
	}
}

func TestObserversNotifiedSynchronously(t *testing.T) {
	store := NewStore()

	// The observer reads the store from inside the callback: the new
	// value must already be visible when the notification fires.
	var sawDuringSet Identity
	var okDuringSet bool
	store.Subscribe(func(identity Identity, ok bool) {
		sawDuringSet, okDuringSet = store.Get()
	})

	store.Set(Identity{ID: "u2", Name: "Bo", Email: "b@x.com"})
	if !okDuringSet || sawDuringSet.ID != "u2" {
		t.Errorf("observer saw %+v ok=%v during Set, want the new identity", sawDuringSet, okDuringSet)
	}

	store.Clear()
	if okDuringSet {
		t.Error("observer should see the store empty during Clear")
	}
}

func TestObserverOrder(t *testing.T) {
	store := NewStore()

	var order []int
	store.Subscribe(func(Identity, bool) { order = append(order, 1) })
	store.Subscribe(func(Identity, bool) { order = append(order, 2) })
	store.Subscribe(func(Identity, bool) { order = append(order, 3) })

	store.Set(Identity{ID: "u3"})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("observers called in order %v, want [1 2 3]", order)
	}
}

func TestSetIsTotalReplace(t *testing.T) {
	store := NewStore()
	store.Set(Identity{ID: "u1", Name: "Ann", Email: "a@x.com"})
	store.Set(Identity{ID: "u2"})

	identity, _ := store.Get()
	if identity.Name != "" || identity.Email != "" {
		t.Errorf("Set should replace wholesale, got %+v", identity)
	}
}

func TestMutationsFromAnotherGoroutine(t *testing.T) {
	store := NewStore()

	type event struct {
		identity Identity
		ok       bool
	}
	events := make(chan event, 2)
	store.Subscribe(func(identity Identity, ok bool) {
		events <- event{identity: identity, ok: ok}
	})

	go func() {
		store.Set(Identity{ID: "u1"})
		store.Clear()
	}()

	first := testutil.RequireReceive(t, events, 5*time.Second, "waiting for Set notification")
	if !first.ok || first.identity.ID != "u1" {
		t.Errorf("first event = %+v, want u1 present", first)
	}
	second := testutil.RequireReceive(t, events, 5*time.Second, "waiting for Clear notification")
	if second.ok {
		t.Errorf("second event = %+v, want cleared", second)
	}
}
