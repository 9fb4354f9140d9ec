// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/nav"
	"github.com/foodwallet/foodwallet/lib/session"
	"github.com/foodwallet/foodwallet/lib/theme"
)

// Model is the top-level bubbletea model. It owns the shared stores,
// routes messages to the screen sub-models, and renders the frame
// around whichever screen the navigator says is current.
type Model struct {
	session   *session.Store
	theme     *theme.Store
	navigator *nav.Navigator
	client    Gateway
	calls     *callRegistry
	logger    *slog.Logger

	keys    KeyMap
	styles  styleSet
	spinner spinner.Model

	width  int
	height int

	// notice is the transient status bar message; noticeSeq ties each
	// notice to its fade timer.
	notice    string
	noticeSeq int

	// alert is the latest warn/error log record shown in the status
	// bar.
	alert      string
	alertLevel slog.Level
	alertSeq   int

	login    loginModel
	register registerModel
	home     homeModel
	pantry   pantryModel
	scanner  scannerModel
	addFood  addFoodModel
	aiTools  aiToolsModel
	chat     chatModel
	recipe   recipeModel
	settings settingsModel
}

// New assembles the top-level model around the shared stores.
func New(sessions *session.Store, themes *theme.Store, navigator *nav.Navigator, client Gateway, logger *slog.Logger) Model {
	loading := spinner.New(spinner.WithSpinner(spinner.Dot))

	model := Model{
		session:   sessions,
		theme:     themes,
		navigator: navigator,
		client:    client,
		calls:     newCallRegistry(),
		logger:    logger,
		keys:      DefaultKeyMap,
		styles:    newStyleSet(themes.Get()),
		spinner:   loading,
		login:     newLoginModel(),
		register:  newRegisterModel(),
		scanner:   newScannerModel(),
		addFood:   newAddFoodModel(),
		chat:      newChatModel(),
	}
	return model
}

// Init starts the spinner and the session probe that ends the
// initializing phase.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.spinner.Tick, probeSession)
}

// probeSession resolves the stored session. The client keeps no
// credentials on disk, so the probe always reports "no session"; it
// exists so startup resolves the navigator through the same path a
// persisted-session client would.
func probeSession() tea.Msg {
	return sessionProbeMsg{ok: false}
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.layoutChat()
		return model, nil

	case spinner.TickMsg:
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command

	case tea.KeyMsg:
		return model.handleKey(message)

	case sessionProbeMsg:
		return model.handleSessionProbe(message)

	case loginResultMsg:
		return model.handleLoginResult(message)

	case registerResultMsg:
		if canceled(message.err) {
			return model, nil
		}
		command := model.handleRegisterResult(message)
		return model, command

	case kpisMsg:
		if canceled(message.err) {
			return model, nil
		}
		model.handleKPIs(message)
		return model, nil

	case pantryItemsMsg:
		if canceled(message.err) {
			return model, nil
		}
		model.handlePantryItems(message)
		return model, nil

	case itemSavedMsg:
		if canceled(message.err) {
			return model, nil
		}
		command := model.handleItemSaved(message)
		return model, command

	case itemUpdatedMsg:
		if canceled(message.err) {
			return model, nil
		}
		command := model.handleItemUpdated(message)
		return model, command

	case lookupResultMsg:
		if canceled(message.err) {
			return model, nil
		}
		model.handleLookupResult(message)
		return model, nil

	case chatHistoryMsg:
		if canceled(message.err) {
			return model, nil
		}
		model.handleChatHistory(message)
		return model, nil

	case chatReplyMsg:
		if canceled(message.err) {
			return model, nil
		}
		command := model.handleChatReply(message)
		return model, command

	case recipesMsg:
		if canceled(message.err) {
			return model, nil
		}
		model.handleRecipes(message)
		return model, nil

	case recipePromptTickMsg:
		command := model.handleRecipePromptTick()
		return model, command

	case typingTickMsg:
		command := model.handleTypingTick(message)
		return model, command

	case noticeFadeMsg:
		if message.seq == model.noticeSeq {
			model.notice = ""
		}
		return model, nil

	case logRecordMsg:
		model.alert = message.Summary
		model.alertLevel = message.Level
		model.alertSeq++
		seq := model.alertSeq
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{seq: seq}
		})

	case logRecordFadeMsg:
		if message.seq == model.alertSeq {
			model.alert = ""
		}
		return model, nil
	}

	return model, nil
}

// canceled reports whether an error is a context cancellation, which
// means the screen that wanted the result is gone.
func canceled(err error) bool {
	return err != nil && errors.Is(err, context.Canceled)
}

// handleSessionProbe ends the initializing phase one way or the other.
func (model Model) handleSessionProbe(message sessionProbeMsg) (tea.Model, tea.Cmd) {
	if message.ok {
		model.session.Set(message.identity)
		command := model.enterAuthenticated()
		return model, command
	}
	model.navigator.Resolve(false)
	model.login.reset()
	return model, nil
}

// handleLoginResult finishes a credential exchange. Only a success
// touches the session store; failures stay on the login screen.
func (model Model) handleLoginResult(message loginResultMsg) (tea.Model, tea.Cmd) {
	if canceled(message.err) {
		return model, nil
	}
	model.calls.end(callLogin)
	model.login.busy = false

	if message.err != nil {
		if errors.Is(message.err, gateway.ErrInvalidCredentials) {
			model.login.errorText = "Email or password is incorrect."
		} else {
			model.login.errorText = "Login failed: " + message.err.Error()
		}
		return model, nil
	}

	model.logger.Info("logged in", "user", message.identity.ID)
	model.session.Set(message.identity)
	command := model.enterAuthenticated()
	return model, command
}

// enterAuthenticated resets the authenticated screens after a graph
// switch and kicks off the home screen's data load.
func (model *Model) enterAuthenticated() tea.Cmd {
	model.home.reset()
	model.pantry.reset()
	model.scanner.reset()
	model.aiTools.reset()
	model.settings.reset()
	model.chat.reset()
	model.recipe.reset()
	return model.enterHome()
}

// logout tears the session down: every in-flight call is canceled
// before the store clears so no authenticated response lands in the
// unauthenticated graph.
func (model *Model) logout() tea.Cmd {
	if model.navigator.Phase() != nav.PhaseAuthenticated {
		return nil
	}
	model.logger.Info("logging out")
	model.calls.cancelAll()

	client := model.client
	goodbye := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Logout(ctx)
		return nil
	}

	model.session.Clear()
	model.login.reset()
	return tea.Batch(goodbye, model.notify("Logged out."))
}

// notify shows a transient status bar message.
func (model *Model) notify(text string) tea.Cmd {
	model.notice = text
	model.noticeSeq++
	seq := model.noticeSeq
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}

// toggleTheme flips the palette and rebuilds everything derived from
// it.
func (model *Model) toggleTheme() {
	palette := model.theme.Toggle()
	model.styles = newStyleSet(palette)
	model.refreshChatViewport(false)
}

// selectTab switches the bottom-of-stack tab and runs the new tab's
// entry load.
func (model *Model) selectTab(tab nav.Screen) tea.Cmd {
	if !model.navigator.SelectTab(tab) {
		return nil
	}
	return model.enterTab(tab)
}

// enterTab resets a tab's state and returns its data load, if any.
func (model *Model) enterTab(tab nav.Screen) tea.Cmd {
	switch tab {
	case nav.ScreenHome:
		model.home.reset()
		return model.enterHome()
	case nav.ScreenPantry:
		model.pantry.reset()
		return model.enterPantry()
	case nav.ScreenScanner:
		model.scanner.reset()
	case nav.ScreenAITools:
		model.aiTools.reset()
	case nav.ScreenSettings:
		model.settings.reset()
	}
	return nil
}

// handleKey dispatches a key press: global bindings first, then the
// current screen.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := model.keys

	switch {
	case key.Matches(message, keys.Quit):
		model.calls.cancelAll()
		return model, tea.Quit
	case key.Matches(message, keys.ToggleTheme):
		model.toggleTheme()
		return model, nil
	case key.Matches(message, keys.Logout):
		command := model.logout()
		return model, command
	case key.Matches(message, keys.TabHome):
		command := model.selectTab(nav.ScreenHome)
		return model, command
	case key.Matches(message, keys.TabPantry):
		command := model.selectTab(nav.ScreenPantry)
		return model, command
	case key.Matches(message, keys.TabScanner):
		command := model.selectTab(nav.ScreenScanner)
		return model, command
	case key.Matches(message, keys.TabAITools):
		command := model.selectTab(nav.ScreenAITools)
		return model, command
	case key.Matches(message, keys.TabSettings):
		command := model.selectTab(nav.ScreenSettings)
		return model, command
	}

	switch model.navigator.Current().Screen {
	case nav.ScreenLogin:
		command := model.handleLoginKey(message)
		return model, command
	case nav.ScreenRegister:
		command := model.handleRegisterKey(message)
		return model, command
	case nav.ScreenHome:
		command := model.handleHomeKey(message)
		return model, command
	case nav.ScreenPantry:
		command := model.handlePantryKey(message)
		return model, command
	case nav.ScreenScanner:
		command := model.handleScannerKey(message)
		return model, command
	case nav.ScreenAITools:
		command := model.handleAIToolsKey(message)
		return model, command
	case nav.ScreenSettings:
		command := model.handleSettingsKey(message)
		return model, command
	case nav.ScreenAddFood:
		command := model.handleAddFoodKey(message)
		return model, command
	case nav.ScreenAIChat:
		command := model.handleChatKey(message)
		return model, command
	case nav.ScreenAIRecipe:
		command := model.handleRecipeKey(message)
		return model, command
	}
	return model, nil
}

// tabOrder is the tab bar, left to right.
var tabOrder = []struct {
	screen nav.Screen
	label  string
}{
	{nav.ScreenHome, "Home"},
	{nav.ScreenPantry, "Pantry"},
	{nav.ScreenScanner, "Scanner"},
	{nav.ScreenAITools, "AI Tools"},
	{nav.ScreenSettings, "Settings"},
}

func (model Model) View() string {
	current := model.navigator.Current()

	var body string
	switch current.Screen {
	case nav.ScreenLoading:
		body = lipgloss.NewStyle().Padding(2, 4).
			Render(model.spinner.View() + " Starting Food Wallet...")
	case nav.ScreenLogin:
		body = model.viewLogin()
	case nav.ScreenRegister:
		body = model.viewRegister()
	case nav.ScreenHome:
		body = model.viewHome()
	case nav.ScreenPantry:
		body = model.viewPantry()
	case nav.ScreenScanner:
		body = model.viewScanner()
	case nav.ScreenAITools:
		body = model.viewAITools()
	case nav.ScreenSettings:
		body = model.viewSettings()
	case nav.ScreenAddFood:
		body = model.viewAddFood()
	case nav.ScreenAIChat:
		body = model.viewChat()
	case nav.ScreenAIRecipe:
		body = model.viewRecipe()
	}

	var b strings.Builder
	b.WriteString(model.viewHeader(current))
	b.WriteString(body)
	b.WriteString("\n" + model.viewStatusBar(current))
	return b.String()
}

// viewHeader renders the title line, plus the tab bar when a tab is on
// screen.
func (model Model) viewHeader(current nav.Frame) string {
	var b strings.Builder
	b.WriteString(model.styles.header.Render("Food Wallet") + "\n")

	if model.navigator.Phase() == nav.PhaseAuthenticated && current.Screen.IsTab() {
		var tabs []string
		for _, entry := range tabOrder {
			if entry.screen == current.Screen {
				tabs = append(tabs, model.styles.tabActive.Render(entry.label))
			} else {
				tabs = append(tabs, model.styles.tab.Render(entry.label))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")
	}
	return b.String()
}

// viewStatusBar renders the transient notice, or the help line for the
// current screen.
func (model Model) viewStatusBar(current nav.Frame) string {
	if model.alert != "" {
		style := model.styles.warnText
		if model.alertLevel >= slog.LevelError {
			style = model.styles.errorText
		}
		return style.Render(" " + model.alert)
	}
	if model.notice != "" {
		return model.styles.successTag.Render(" " + model.notice)
	}

	var help string
	switch {
	case current.Screen == nav.ScreenLogin:
		help = "tab next field, enter confirm, C-t theme, C-c quit"
	case current.Screen == nav.ScreenRegister:
		help = "tab next field, enter confirm, esc back"
	case current.Screen.IsTab():
		help = "C-a/C-p/C-s/C-o/C-g tabs, C-t theme, C-l logout, C-c quit"
	default:
		help = "esc back, C-t theme, C-c quit"
	}
	return model.styles.help.Render(" " + help)
}
