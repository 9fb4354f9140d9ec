// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/nav"
)

// loginFocus identifies which element of the login screen has focus.
type loginFocus int

const (
	loginFocusEmail loginFocus = iota
	loginFocusPassword
	loginFocusSubmit
	loginFocusRegister
)

// loginModel is the unauthenticated home screen: credentials form plus
// the link to registration.
type loginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    loginFocus

	// busy is true while a login call is in flight.
	busy bool

	// errorText is the last failed login's message, shown inline under
	// the form and cleared on the next attempt.
	errorText string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return loginModel{email: email, password: password}
}

// reset restores the pristine form. Called when the unauthenticated
// graph is (re)entered.
func (login *loginModel) reset() {
	login.email.SetValue("")
	login.password.SetValue("")
	login.errorText = ""
	login.busy = false
	login.setFocus(loginFocusEmail)
}

func (login *loginModel) setFocus(focus loginFocus) {
	login.focus = focus
	login.email.Blur()
	login.password.Blur()
	switch focus {
	case loginFocusEmail:
		login.email.Focus()
	case loginFocusPassword:
		login.password.Focus()
	}
}

// handleKey processes a key press on the login screen. Returns the
// command to run, if any.
func (model *Model) handleLoginKey(message tea.KeyMsg) tea.Cmd {
	login := &model.login

	switch {
	case message.Type == tea.KeyTab, message.Type == tea.KeyDown:
		login.setFocus((login.focus + 1) % 4)
		return nil
	case message.Type == tea.KeyShiftTab, message.Type == tea.KeyUp:
		login.setFocus((login.focus + 3) % 4)
		return nil
	case message.Type == tea.KeyEnter:
		switch login.focus {
		case loginFocusRegister:
			model.navigator.Push(nav.ScreenRegister, nil)
			model.register.reset()
			return nil
		default:
			return model.startLogin()
		}
	}

	var command tea.Cmd
	switch login.focus {
	case loginFocusEmail:
		login.email, command = login.email.Update(message)
	case loginFocusPassword:
		login.password, command = login.password.Update(message)
	}
	return command
}

// startLogin issues the credential exchange. A failed call leaves the
// session untouched and surfaces the error on this screen only.
func (model *Model) startLogin() tea.Cmd {
	login := &model.login
	email := strings.TrimSpace(login.email.Value())
	password := login.password.Value()
	if email == "" || password == "" {
		login.errorText = "Enter your email and password."
		return nil
	}
	if login.busy {
		return nil
	}
	login.busy = true
	login.errorText = ""

	ctx := model.calls.begin(callLogin)
	client := model.client
	return func() tea.Msg {
		identity, err := client.Login(ctx, email, password)
		return loginResultMsg{identity: identity, err: err}
	}
}

// viewLogin renders the login screen.
func (model *Model) viewLogin() string {
	login := &model.login
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.appTitle.Render("Welcome to Food Wallet") + "\n")
	b.WriteString(styles.muted.Render("Reduce waste. Save money. Protect Earth.") + "\n\n")

	b.WriteString(styles.heading.Render("Login") + "\n")
	b.WriteString(login.email.View() + "\n")
	b.WriteString(login.password.View() + "\n\n")

	submit := "[ Login ]"
	if login.busy {
		submit = "[ " + model.spinner.View() + " Logging in ]"
	}
	if login.focus == loginFocusSubmit {
		b.WriteString(styles.button.Render(submit) + "\n")
	} else {
		b.WriteString(styles.muted.Render(submit) + "\n")
	}

	register := "Don't have an account? Register"
	if login.focus == loginFocusRegister {
		b.WriteString(styles.heading.Render("> " + register))
	} else {
		b.WriteString(styles.muted.Render("  " + register))
	}

	if login.errorText != "" {
		b.WriteString("\n\n" + styles.errorText.Render(login.errorText))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
