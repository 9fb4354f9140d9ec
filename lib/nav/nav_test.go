// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"testing"

	"github.com/foodwallet/foodwallet/lib/session"
)

func newResolved(t *testing.T) (*session.Store, *Navigator) {
	t.Helper()
	store := session.NewStore()
	navigator := New(store)
	navigator.Resolve(false)
	return store, navigator
}

func TestStartsInitializing(t *testing.T) {
	store := session.NewStore()
	navigator := New(store)

	if navigator.Phase() != PhaseInitializing {
		t.Fatalf("phase = %v, want initializing", navigator.Phase())
	}
	if got := navigator.Current().Screen; got != ScreenLoading {
		t.Errorf("Current = %v, want Loading", got)
	}

	// No navigation actions are accepted before the first
	// determination.
	navigator.Push(ScreenRegister, nil)
	if got := navigator.Current().Screen; got != ScreenLoading {
		t.Errorf("push during initialization moved to %v", got)
	}
}

func TestResolveWithoutSession(t *testing.T) {
	_, navigator := newResolved(t)

	if navigator.Phase() != PhaseUnauthenticated {
		t.Fatalf("phase = %v, want unauthenticated", navigator.Phase())
	}
	if got := navigator.Current().Screen; got != ScreenLogin {
		t.Errorf("Current = %v, want Login", got)
	}
}

func TestResolveIsOneShot(t *testing.T) {
	store := session.NewStore()
	navigator := New(store)
	navigator.Resolve(false)
	navigator.Push(ScreenRegister, nil)

	// A second Resolve must not reset the stack.
	navigator.Resolve(false)
	if got := navigator.Current().Screen; got != ScreenRegister {
		t.Errorf("Current = %v after redundant Resolve, want Register", got)
	}
}

// Scenario: the store starts empty so Login renders; setting an
// identity swaps to the authenticated home within the same
// notification turn.
func TestLoginSwitchesGraph(t *testing.T) {
	store, navigator := newResolved(t)

	store.Set(session.Identity{ID: "u1", Name: "Ann", Email: "a@x.com"})

	if navigator.Phase() != PhaseAuthenticated {
		t.Fatalf("phase = %v, want authenticated", navigator.Phase())
	}
	if got := navigator.Current().Screen; got != ScreenHome {
		t.Errorf("Current = %v, want Home", got)
	}
	if navigator.Depth() != 1 {
		t.Errorf("Depth = %d after graph switch, want 1", navigator.Depth())
	}
}

// Stack-reset law: the unauthenticated stack depth never carries into
// the authenticated graph.
func TestStackResetOnGraphSwitch(t *testing.T) {
	store, navigator := newResolved(t)
	navigator.Push(ScreenRegister, nil)

	store.Set(session.Identity{ID: "u1"})
	if navigator.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", navigator.Depth())
	}
	if got := navigator.Current().Screen; got != ScreenHome {
		t.Errorf("Current = %v, want Home", got)
	}
}

// Scenario: logout from a deep authenticated stack lands on Login
// atomically.
func TestLogoutResetsToLogin(t *testing.T) {
	store, navigator := newResolved(t)
	store.Set(session.Identity{ID: "u1"})
	navigator.SelectTab(ScreenPantry)
	navigator.Push(ScreenAddFood, Params{"product": "code-1"})

	// Observe the navigator from inside the clearing notification: the
	// switch must already be complete for every observer that runs
	// after the navigator's own subscription.
	store.Subscribe(func(_ session.Identity, ok bool) {
		if ok {
			return
		}
		if got := navigator.Current().Screen; got != ScreenLogin {
			t.Errorf("observer saw %v during Clear, want Login", got)
		}
	})

	store.Clear()

	if navigator.Phase() != PhaseUnauthenticated {
		t.Fatalf("phase = %v, want unauthenticated", navigator.Phase())
	}
	if navigator.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", navigator.Depth())
	}
}

// The hard invariant: session presence and graph selection agree in
// every reachable state, including rapid toggling.
func TestMutualExclusionUnderRapidToggling(t *testing.T) {
	store, navigator := newResolved(t)

	check := func() {
		t.Helper()
		_, ok := store.Get()
		current := navigator.Current().Screen
		if ok && !current.InAuthenticatedGraph() {
			t.Fatalf("session set but rendering %v", current)
		}
		if !ok && current.InAuthenticatedGraph() {
			t.Fatalf("session empty but rendering %v", current)
		}
	}

	for range 25 {
		store.Set(session.Identity{ID: "u1"})
		check()
		store.Clear()
		check()
		store.Clear() // Redundant clear: last-write-wins, no queuing.
		check()
	}
}

// Scenario: push Register from Login, pop, and exactly Login remains.
func TestRegisterRoundTrip(t *testing.T) {
	_, navigator := newResolved(t)

	navigator.Push(ScreenRegister, nil)
	if got := navigator.Current().Screen; got != ScreenRegister {
		t.Fatalf("Current = %v, want Register", got)
	}

	navigator.Pop()
	if got := navigator.Current().Screen; got != ScreenLogin {
		t.Errorf("Current = %v after pop, want Login", got)
	}
	if navigator.Depth() != 1 {
		t.Errorf("Depth = %d after pop, want 1", navigator.Depth())
	}
}

func TestReplaceCollapsesDuplicate(t *testing.T) {
	_, navigator := newResolved(t)
	navigator.Push(ScreenRegister, nil)

	navigator.Replace(ScreenLogin, nil)
	if got := navigator.Current().Screen; got != ScreenLogin {
		t.Fatalf("Current = %v, want Login", got)
	}
	if navigator.Depth() != 1 {
		t.Errorf("Replace left depth %d, want 1 (no residual frames)", navigator.Depth())
	}
}

func TestPopNeverRemovesHome(t *testing.T) {
	_, navigator := newResolved(t)
	navigator.Pop()
	navigator.Pop()
	if navigator.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", navigator.Depth())
	}
	if got := navigator.Current().Screen; got != ScreenLogin {
		t.Errorf("Current = %v, want Login", got)
	}
}

func TestCrossGraphPushIgnored(t *testing.T) {
	store, navigator := newResolved(t)

	// Authenticated screens are unreachable while logged out.
	navigator.Push(ScreenPantry, nil)
	if got := navigator.Current().Screen; got != ScreenLogin {
		t.Errorf("Current = %v, want Login", got)
	}

	// And unauthenticated screens are unreachable while logged in.
	store.Set(session.Identity{ID: "u1"})
	navigator.Push(ScreenRegister, nil)
	if got := navigator.Current().Screen; got != ScreenHome {
		t.Errorf("Current = %v, want Home", got)
	}
}

func TestTabSelection(t *testing.T) {
	store, navigator := newResolved(t)
	store.Set(session.Identity{ID: "u1"})

	navigator.SelectTab(ScreenAITools)
	if got := navigator.Current().Screen; got != ScreenAITools {
		t.Fatalf("Current = %v, want AITools", got)
	}
	if navigator.Depth() != 1 {
		t.Errorf("tab selection changed depth to %d", navigator.Depth())
	}

	// Pushed screens cover the tab bar: selection is ignored until the
	// push stack unwinds.
	navigator.Push(ScreenAIChat, nil)
	navigator.SelectTab(ScreenSettings)
	if got := navigator.Current().Screen; got != ScreenAIChat {
		t.Errorf("Current = %v, want AIChat", got)
	}
	navigator.Pop()
	if got := navigator.Current().Screen; got != ScreenAITools {
		t.Errorf("Current = %v after pop, want AITools", got)
	}

	// Non-tab screens cannot become the tab root.
	navigator.SelectTab(ScreenAddFood)
	if got := navigator.Current().Screen; got != ScreenAITools {
		t.Errorf("Current = %v, want AITools", got)
	}
}

func TestPushParamsTravelWithFrame(t *testing.T) {
	store, navigator := newResolved(t)
	store.Set(session.Identity{ID: "u1"})

	navigator.Push(ScreenAddFood, Params{"code": "0123456789"})
	frame := navigator.Current()
	if frame.Screen != ScreenAddFood {
		t.Fatalf("Current = %v, want AddFood", frame.Screen)
	}
	if frame.Params["code"] != "0123456789" {
		t.Errorf("Params = %v, want the pushed product code", frame.Params)
	}
}

func TestSessionSetDuringInitializationResolves(t *testing.T) {
	store := session.NewStore()
	navigator := New(store)

	store.Set(session.Identity{ID: "u1"})
	if navigator.Phase() != PhaseAuthenticated {
		t.Fatalf("phase = %v, want authenticated", navigator.Phase())
	}
	if got := navigator.Current().Screen; got != ScreenHome {
		t.Errorf("Current = %v, want Home", got)
	}
}
