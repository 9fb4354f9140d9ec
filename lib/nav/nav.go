// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"sync"

	"github.com/foodwallet/foodwallet/lib/session"
)

// Phase is the navigator's super-state.
type Phase int

const (
	// PhaseInitializing lasts from process start until the first
	// authentication determination. The navigator renders the loading
	// screen and accepts no navigation actions.
	PhaseInitializing Phase = iota
	// PhaseUnauthenticated is active while the session store is empty.
	PhaseUnauthenticated
	// PhaseAuthenticated is active while the session store holds an
	// identity.
	PhaseAuthenticated
)

// String returns the phase name for logs and test failures.
func (phase Phase) String() string {
	switch phase {
	case PhaseInitializing:
		return "initializing"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Screen names one entry in the fixed screen registry.
type Screen int

const (
	// ScreenLoading is the neutral view shown during PhaseInitializing.
	ScreenLoading Screen = iota

	// Unauthenticated graph.
	ScreenLogin
	ScreenRegister

	// Authenticated graph: the five primary tabs.
	ScreenHome
	ScreenPantry
	ScreenScanner
	ScreenAITools
	ScreenSettings

	// Authenticated graph: push-only screens reachable from any tab.
	ScreenAddFood
	ScreenAIChat
	ScreenAIRecipe
)

// String returns the screen's route name.
func (screen Screen) String() string {
	switch screen {
	case ScreenLoading:
		return "Loading"
	case ScreenLogin:
		return "Login"
	case ScreenRegister:
		return "Register"
	case ScreenHome:
		return "Home"
	case ScreenPantry:
		return "Pantry"
	case ScreenScanner:
		return "Scanner"
	case ScreenAITools:
		return "AITools"
	case ScreenSettings:
		return "Settings"
	case ScreenAddFood:
		return "AddFood"
	case ScreenAIChat:
		return "AIChat"
	case ScreenAIRecipe:
		return "AIRecipe"
	}
	return "unknown"
}

// InAuthenticatedGraph reports whether the screen belongs to the
// authenticated graph. ScreenLoading belongs to neither graph.
func (screen Screen) InAuthenticatedGraph() bool {
	return screen >= ScreenHome
}

// IsTab reports whether the screen is one of the five primary tabs.
func (screen Screen) IsTab() bool {
	return screen >= ScreenHome && screen <= ScreenSettings
}

// Params is the optional parameter bag attached to a pushed frame,
// such as the product record handed to the AddFood screen. The
// navigator treats it as opaque.
type Params map[string]any

// Frame is one entry in the navigation stack.
type Frame struct {
	Screen Screen
	Params Params
}

// Navigator selects between the two screen graphs from the session
// state and maintains the push stack within the active graph.
//
// The bottom frame is always the active graph's home: Login when
// unauthenticated, the active tab when authenticated. The whole stack
// is discarded whenever the graph selection changes; it is never
// carried across that boundary.
type Navigator struct {
	mu    sync.Mutex
	phase Phase
	stack []Frame
}

// New creates a Navigator in PhaseInitializing, subscribed to the
// given session store. The phase stays at initializing until the first
// call to [Navigator.Resolve] or the first session mutation, whichever
// comes first.
func New(store *session.Store) *Navigator {
	navigator := &Navigator{phase: PhaseInitializing}
	store.Subscribe(func(_ session.Identity, ok bool) {
		navigator.apply(ok)
	})
	return navigator
}

// Resolve records the first authentication determination. Called by
// the application root once the startup session probe completes;
// authenticated reports whether a session was found. Resolve after the
// initializing phase has already ended is a no-op.
func (navigator *Navigator) Resolve(authenticated bool) {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	if navigator.phase != PhaseInitializing {
		return
	}
	navigator.enterGraph(authenticated)
}

// apply re-evaluates the graph selection after a session mutation.
// Runs inside the session store's synchronous notification, so the
// phase switch and stack reset are atomic with respect to Current.
func (navigator *Navigator) apply(authenticated bool) {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()

	switch {
	case authenticated && navigator.phase != PhaseAuthenticated:
		navigator.enterGraph(true)
	case !authenticated && navigator.phase == PhaseAuthenticated,
		!authenticated && navigator.phase == PhaseInitializing:
		navigator.enterGraph(false)
	}
	// Same graph: the store holds only the latest value and the stack
	// is untouched (last-write-wins, no queued transitions).
}

// enterGraph switches phase and reinitializes the stack at the new
// graph's home. Caller holds the mutex.
func (navigator *Navigator) enterGraph(authenticated bool) {
	if authenticated {
		navigator.phase = PhaseAuthenticated
		navigator.stack = []Frame{{Screen: ScreenHome}}
	} else {
		navigator.phase = PhaseUnauthenticated
		navigator.stack = []Frame{{Screen: ScreenLogin}}
	}
}

// Phase returns the current super-state.
func (navigator *Navigator) Phase() Phase {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	return navigator.phase
}

// Current returns the frame the client should render: the loading
// frame during initialization, otherwise the top of the stack.
func (navigator *Navigator) Current() Frame {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	if navigator.phase == PhaseInitializing {
		return Frame{Screen: ScreenLoading}
	}
	return navigator.stack[len(navigator.stack)-1]
}

// Depth returns the stack depth, or 0 during initialization.
func (navigator *Navigator) Depth() int {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	return len(navigator.stack)
}

// Push puts a screen on top of the stack and reports whether it did.
// Ignored during initialization and when the screen does not belong to
// the active graph.
func (navigator *Navigator) Push(screen Screen, params Params) bool {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	if !navigator.allows(screen) {
		return false
	}
	navigator.stack = append(navigator.stack, Frame{Screen: screen, Params: params})
	return true
}

// Pop removes the top frame. The bottom frame is never popped: the
// active graph always has its home on screen.
func (navigator *Navigator) Pop() {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	if len(navigator.stack) > 1 {
		navigator.stack = navigator.stack[:len(navigator.stack)-1]
	}
}

// Replace swaps the top frame for the given screen. When the
// replacement equals the frame directly beneath it, the duplicate
// collapses into a pop, so Register replaced by Login lands back on
// the original Login frame with no residue. Ignored under the same
// conditions as Push.
func (navigator *Navigator) Replace(screen Screen, params Params) {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	if !navigator.allows(screen) {
		return
	}
	top := len(navigator.stack) - 1
	if top > 0 && navigator.stack[top-1].Screen == screen {
		navigator.stack = navigator.stack[:top]
		return
	}
	navigator.stack[top] = Frame{Screen: screen, Params: params}
}

// SelectTab switches the active tab. Only meaningful in the
// authenticated phase with no pushed frames covering the tab bar;
// otherwise ignored. The tab frame is the stack bottom, so tab
// selection is independent of the push/pop discipline above it.
// Reports whether the switch happened.
func (navigator *Navigator) SelectTab(tab Screen) bool {
	navigator.mu.Lock()
	defer navigator.mu.Unlock()
	if navigator.phase != PhaseAuthenticated || !tab.IsTab() {
		return false
	}
	if len(navigator.stack) != 1 {
		return false
	}
	navigator.stack[0] = Frame{Screen: tab}
	return true
}

// allows reports whether a push/replace of the screen is valid for the
// current phase. Caller holds the mutex.
func (navigator *Navigator) allows(screen Screen) bool {
	switch navigator.phase {
	case PhaseUnauthenticated:
		return screen == ScreenLogin || screen == ScreenRegister
	case PhaseAuthenticated:
		return screen.InAuthenticatedGraph()
	}
	return false
}
