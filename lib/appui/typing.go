// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// typingTickInterval is the reveal cadence for the typewriter
// animation on assistant replies.
const typingTickInterval = 30 * time.Millisecond

// typingChunk is how many runes each tick reveals.
const typingChunk = 2

// typewriter reveals an assistant message a few runes at a time. It is
// a finite sequence of partial strings driven by one scheduled tick
// per message: when a new reply supersedes this one, its ticks carry a
// different message ID and the stale ticks are dropped, so at most one
// animation runs at a time and an abandoned one stops on its next tick.
type typewriter struct {
	messageID string
	full      []rune
	shown     int
}

// newTypewriter starts an animation for the given message.
func newTypewriter(messageID, text string) *typewriter {
	return &typewriter{messageID: messageID, full: []rune(text)}
}

// advance reveals the next chunk and reports whether more remains.
func (writer *typewriter) advance() bool {
	writer.shown += typingChunk
	if writer.shown >= len(writer.full) {
		writer.shown = len(writer.full)
		return false
	}
	return true
}

// visible returns the currently revealed prefix.
func (writer *typewriter) visible() string {
	return string(writer.full[:writer.shown])
}

// done reports whether the full text is revealed.
func (writer *typewriter) done() bool {
	return writer.shown >= len(writer.full)
}

// typingTick schedules the next reveal tick for a message.
func typingTick(messageID string) tea.Cmd {
	return tea.Tick(typingTickInterval, func(time.Time) tea.Msg {
		return typingTickMsg{messageID: messageID}
	})
}
