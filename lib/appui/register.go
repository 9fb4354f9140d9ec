// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/nav"
)

// registerFieldCount is the number of focusable elements: five inputs
// plus the submit button.
const registerFieldCount = 6

// registerModel is the account creation form.
type registerModel struct {
	inputs [5]textinput.Model
	focus  int
	busy   bool

	// errorLines holds server-side validation messages verbatim.
	errorLines []string
}

func newRegisterModel() registerModel {
	var register registerModel
	placeholders := [5]string{"First name", "Last name", "Email", "Password", "Confirm password"}
	for i := range register.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 120
		if i >= 3 {
			input.EchoMode = textinput.EchoPassword
		}
		register.inputs[i] = input
	}
	register.inputs[0].Focus()
	return register
}

func (register *registerModel) reset() {
	for i := range register.inputs {
		register.inputs[i].SetValue("")
		register.inputs[i].Blur()
	}
	register.inputs[0].Focus()
	register.focus = 0
	register.busy = false
	register.errorLines = nil
}

func (register *registerModel) setFocus(focus int) {
	register.focus = focus
	for i := range register.inputs {
		register.inputs[i].Blur()
	}
	if focus < len(register.inputs) {
		register.inputs[focus].Focus()
	}
}

func (model *Model) handleRegisterKey(message tea.KeyMsg) tea.Cmd {
	register := &model.register

	switch {
	case message.Type == tea.KeyEsc:
		model.navigator.Pop()
		return nil
	case message.Type == tea.KeyTab, message.Type == tea.KeyDown:
		register.setFocus((register.focus + 1) % registerFieldCount)
		return nil
	case message.Type == tea.KeyShiftTab, message.Type == tea.KeyUp:
		register.setFocus((register.focus + registerFieldCount - 1) % registerFieldCount)
		return nil
	case message.Type == tea.KeyEnter:
		if register.focus < len(register.inputs)-1 {
			register.setFocus(register.focus + 1)
			return nil
		}
		return model.startRegister()
	}

	if register.focus < len(register.inputs) {
		var command tea.Cmd
		register.inputs[register.focus], command = register.inputs[register.focus].Update(message)
		return command
	}
	return nil
}

// startRegister submits the signup form. Field validation is the
// backend's job; the client forwards its messages verbatim.
func (model *Model) startRegister() tea.Cmd {
	register := &model.register
	if register.busy {
		return nil
	}
	register.busy = true
	register.errorLines = nil

	registration := gateway.Registration{
		FirstName:       strings.TrimSpace(register.inputs[0].Value()),
		LastName:        strings.TrimSpace(register.inputs[1].Value()),
		Email:           strings.TrimSpace(register.inputs[2].Value()),
		Password:        register.inputs[3].Value(),
		ConfirmPassword: register.inputs[4].Value(),
	}

	ctx := model.calls.begin(callRegister)
	client := model.client
	return func() tea.Msg {
		return registerResultMsg{err: client.Register(ctx, registration)}
	}
}

func (model *Model) handleRegisterResult(message registerResultMsg) tea.Cmd {
	register := &model.register
	register.busy = false
	model.calls.end(callRegister)

	if message.err != nil {
		var validation *gateway.ValidationError
		if errors.As(message.err, &validation) {
			register.errorLines = validation.Messages
		} else {
			register.errorLines = []string{message.err.Error()}
		}
		return nil
	}

	// Hand off to login rather than logging in automatically; the
	// backend does not return credentials on signup.
	model.navigator.Replace(nav.ScreenLogin, nil)
	model.login.reset()
	return model.notify("Account created. Log in to continue.")
}

func (model *Model) viewRegister() string {
	register := &model.register
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.appTitle.Render("Create your account") + "\n\n")
	for i := range register.inputs {
		b.WriteString(register.inputs[i].View() + "\n")
	}
	b.WriteString("\n")

	submit := "[ Register ]"
	if register.busy {
		submit = "[ " + model.spinner.View() + " Registering ]"
	}
	if register.focus == registerFieldCount-1 {
		b.WriteString(styles.button.Render(submit))
	} else {
		b.WriteString(styles.muted.Render(submit))
	}

	for _, line := range register.errorLines {
		b.WriteString("\n" + styles.errorText.Render(line))
	}

	b.WriteString("\n\n" + styles.muted.Render("esc back to login"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
