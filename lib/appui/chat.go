// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/nav"
)

// chatGreeting is shown as the first assistant message when the stored
// history is empty.
const chatGreeting = "Hi! I'm your food assistant. Ask me about the items in " +
	"your pantry, what to cook, or how to store things so they last longer."

// chatModel is the assistant conversation screen.
type chatModel struct {
	viewport viewport.Model
	input    textinput.Model

	messages []gateway.ChatMessage
	loading  bool
	waiting  bool
	err      error

	// writer animates the newest assistant reply. Nil when nothing is
	// animating.
	writer *typewriter

	ready bool
}

func newChatModel() chatModel {
	input := textinput.New()
	input.Placeholder = "Ask about your food..."
	input.CharLimit = 500
	input.Focus()
	return chatModel{input: input}
}

func (chat *chatModel) reset() {
	chat.input.SetValue("")
	chat.input.Focus()
	chat.messages = nil
	chat.loading = false
	chat.waiting = false
	chat.err = nil
	chat.writer = nil
}

// pushChat navigates to the chat screen and starts the history load.
func (model *Model) pushChat() tea.Cmd {
	if !model.navigator.Push(nav.ScreenAIChat, nil) {
		return nil
	}
	model.chat.reset()
	return model.enterChat()
}

func (model *Model) enterChat() tea.Cmd {
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}
	model.chat.loading = true

	ctx := model.calls.begin(callChat)
	client := model.client
	userID := identity.ID
	return func() tea.Msg {
		messages, err := client.ChatHistory(ctx, userID)
		return chatHistoryMsg{messages: messages, err: err}
	}
}

func (model *Model) handleChatHistory(message chatHistoryMsg) {
	model.calls.end(callChat)
	chat := &model.chat
	chat.loading = false
	chat.err = message.err
	if message.err != nil {
		return
	}
	chat.messages = message.messages
	if len(chat.messages) == 0 {
		chat.messages = []gateway.ChatMessage{{
			ID:   uuid.NewString(),
			Role: gateway.RoleAssistant,
			Text: chatGreeting,
		}}
	}
	model.refreshChatViewport(true)
}

func (model *Model) handleChatKey(message tea.KeyMsg) tea.Cmd {
	chat := &model.chat

	switch message.Type {
	case tea.KeyEsc:
		model.calls.cancel(callChat)
		model.navigator.Pop()
		return nil
	case tea.KeyEnter:
		return model.startChatSend()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var command tea.Cmd
		chat.viewport, command = chat.viewport.Update(message)
		return command
	}

	var command tea.Cmd
	chat.input, command = chat.input.Update(message)
	return command
}

// startChatSend appends the user's message locally, then sends it. The
// reply comes back as the full updated history.
func (model *Model) startChatSend() tea.Cmd {
	chat := &model.chat
	text := strings.TrimSpace(chat.input.Value())
	if text == "" || chat.waiting {
		return nil
	}
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}

	chat.input.SetValue("")
	chat.waiting = true
	chat.err = nil
	chat.messages = append(chat.messages, gateway.ChatMessage{
		ID:   uuid.NewString(),
		Role: gateway.RoleUser,
		Text: text,
	})
	model.refreshChatViewport(true)

	ctx := model.calls.begin(callChat)
	client := model.client
	userID := identity.ID
	return func() tea.Msg {
		messages, err := client.SendChatMessage(ctx, userID, text)
		return chatReplyMsg{messages: messages, err: err}
	}
}

func (model *Model) handleChatReply(message chatReplyMsg) tea.Cmd {
	model.calls.end(callChat)
	chat := &model.chat
	chat.waiting = false

	if message.err != nil {
		chat.err = message.err
		return nil
	}
	chat.messages = message.messages

	// Animate the newest assistant reply. A reply that arrives while a
	// previous animation runs replaces the writer; the old ticks carry
	// the old message ID and fall through harmlessly.
	if last := lastAssistantMessage(chat.messages); last != nil {
		id := last.ID
		if id == "" {
			id = uuid.NewString()
			last.ID = id
		}
		chat.writer = newTypewriter(id, last.Text)
		model.refreshChatViewport(true)
		return typingTick(id)
	}
	model.refreshChatViewport(true)
	return nil
}

func (model *Model) handleTypingTick(message typingTickMsg) tea.Cmd {
	chat := &model.chat
	if chat.writer == nil || chat.writer.messageID != message.messageID {
		return nil
	}
	more := chat.writer.advance()
	model.refreshChatViewport(true)
	if !more {
		chat.writer = nil
		return nil
	}
	return typingTick(message.messageID)
}

// lastAssistantMessage returns a pointer to the final assistant entry,
// or nil if the history ends with a user message.
func lastAssistantMessage(messages []gateway.ChatMessage) *gateway.ChatMessage {
	if len(messages) == 0 {
		return nil
	}
	last := &messages[len(messages)-1]
	if last.Role != gateway.RoleAssistant {
		return nil
	}
	return last
}

// refreshChatViewport rebuilds the conversation transcript. Assistant
// replies render as markdown; the one being animated shows only its
// revealed prefix, as plain text until it completes.
func (model *Model) refreshChatViewport(gotoBottom bool) {
	chat := &model.chat
	if !chat.ready {
		return
	}
	width := chat.viewport.Width
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	for i, entry := range chat.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		if entry.Role == gateway.RoleUser {
			b.WriteString(model.styles.userBubble.Render("You: "+entry.Text) + "\n")
			continue
		}
		text := entry.Text
		if chat.writer != nil && chat.writer.messageID == entry.ID {
			b.WriteString(model.styles.botBubble.Render("Assistant:") + "\n")
			b.WriteString(chat.writer.visible() + "\n")
			continue
		}
		b.WriteString(model.styles.botBubble.Render("Assistant:") + "\n")
		b.WriteString(renderMarkdown(text, model.theme.Get(), width) + "\n")
	}
	chat.viewport.SetContent(b.String())
	if gotoBottom {
		chat.viewport.GotoBottom()
	}
}

// layoutChat sizes the viewport from the window dimensions.
func (model *Model) layoutChat() {
	chat := &model.chat
	height := model.height - 8
	if height < 4 {
		height = 4
	}
	width := model.width - 4
	if width < 20 {
		width = 20
	}
	chat.viewport.Width = width
	chat.viewport.Height = height
	chat.ready = true
	model.refreshChatViewport(true)
}

func (model *Model) viewChat() string {
	chat := &model.chat
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.heading.Render("AI Chat") + "\n")

	switch {
	case chat.loading:
		b.WriteString(model.spinner.View() + " Loading conversation...\n")
	case chat.err != nil:
		b.WriteString(styles.errorText.Render("Chat error: "+chat.err.Error()) + "\n")
	}

	if chat.ready {
		b.WriteString(chat.viewport.View() + "\n")
	}
	if chat.waiting {
		b.WriteString(model.spinner.View() + " Thinking...\n")
	}
	b.WriteString(chat.input.View())
	b.WriteString("\n" + styles.muted.Render("enter send, up/down scroll, esc back"))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
