// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import "testing"

func TestTypewriterRevealsInChunks(t *testing.T) {
	writer := newTypewriter("m1", "abcdefg")

	if writer.visible() != "" {
		t.Errorf("nothing should be visible before the first tick, got %q", writer.visible())
	}
	if !writer.advance() {
		t.Fatal("advance reported done with runes remaining")
	}
	if writer.visible() != "ab" {
		t.Errorf("first tick should reveal two runes, got %q", writer.visible())
	}

	for writer.advance() {
	}
	if writer.visible() != "abcdefg" {
		t.Errorf("full text not revealed, got %q", writer.visible())
	}
	if !writer.done() {
		t.Error("writer should report done after revealing everything")
	}
}

func TestTypewriterHandlesMultibyteRunes(t *testing.T) {
	writer := newTypewriter("m1", "héllo wörld")
	for writer.advance() {
	}
	if writer.visible() != "héllo wörld" {
		t.Errorf("multibyte text mangled: %q", writer.visible())
	}
}

func TestTypewriterEmptyMessage(t *testing.T) {
	writer := newTypewriter("m1", "")
	if writer.advance() {
		t.Error("an empty message should finish on its first tick")
	}
	if !writer.done() {
		t.Error("an empty message should be done immediately")
	}
}
